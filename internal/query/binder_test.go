package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindRewritesNamedPlaceholders(t *testing.T) {
	stmt, args, err := Bind(
		"INSERT INTO persons (first_name, last_name, email, phone) VALUES (:firstName, :lastName, :email, :phone)",
		map[string]any{
			"firstName": "A",
			"lastName":  "B",
			"email":     "a@b.com",
			"phone":     "555-0100",
		},
	)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO persons (first_name, last_name, email, phone) VALUES (?, ?, ?, ?)", stmt)
	assert.Equal(t, []any{"A", "B", "a@b.com", "555-0100"}, args)
}

func TestBindRepeatedPlaceholder(t *testing.T) {
	stmt, args, err := Bind(
		"SELECT id FROM event_dogs WHERE dog_id = :id OR event_id = :id",
		map[string]any{"id": uint64(7)},
	)
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM event_dogs WHERE dog_id = ? OR event_id = ?", stmt)
	assert.Equal(t, []any{uint64(7), uint64(7)}, args)
}

// A hostile value must come out as an ordinary argument; the statement
// text itself cannot change shape no matter what the value contains.
func TestBindInjectionTextStaysAValue(t *testing.T) {
	hostile := "1; DELETE FROM dogs; --"
	stmt, args, err := Bind(
		"UPDATE persons SET phone = :value WHERE id = :id",
		map[string]any{"value": hostile, "id": uint64(1)},
	)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE persons SET phone = ? WHERE id = ?", stmt)
	require.Len(t, args, 2)
	assert.Equal(t, hostile, args[0])
	assert.NotContains(t, stmt, "DELETE")
}

func TestBindMissingParam(t *testing.T) {
	_, _, err := Bind(
		"SELECT id FROM persons WHERE id = :id",
		map[string]any{},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingParam)
	assert.Contains(t, err.Error(), "id")
}

func TestBindRejectsUnsupportedKind(t *testing.T) {
	_, _, err := Bind(
		"UPDATE dogs SET name = :value WHERE id = :id",
		map[string]any{"value": map[string]any{"nope": true}, "id": uint64(1)},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadParamType)
}

func TestBindNullableAndScalarKinds(t *testing.T) {
	img := "http://example.com/rex.png"
	stmt, args, err := Bind(
		"UPDATE dogs SET image = :image, neutered = :neutered WHERE id = :id",
		map[string]any{"image": &img, "neutered": true, "id": 3},
	)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE dogs SET image = ?, neutered = ? WHERE id = ?", stmt)
	assert.Equal(t, []any{&img, true, 3}, args)

	// nil binds as SQL NULL.
	_, args, err = Bind("UPDATE dogs SET image = :image WHERE id = :id",
		map[string]any{"image": nil, "id": 3})
	require.NoError(t, err)
	assert.Nil(t, args[0])
}

func TestBindEscapedAndBareColons(t *testing.T) {
	stmt, args, err := Bind("SELECT '::' AS sep, id FROM events WHERE id = :id",
		map[string]any{"id": 1})
	require.NoError(t, err)
	assert.Equal(t, "SELECT ':' AS sep, id FROM events WHERE id = ?", stmt)
	assert.Len(t, args, 1)

	stmt, args, err = Bind("SELECT id FROM events WHERE location = : ", map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM events WHERE location = : ", stmt)
	assert.Empty(t, args)
}
