package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caninesocial/canine-convention/internal/handler"
	"github.com/caninesocial/canine-convention/internal/model"
)

// invoke runs a handler against a synthetic request and returns the
// recorder. Path params are given as name/value pairs.
func invoke(t *testing.T, h echo.HandlerFunc, method, target, body string, params ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.Equal(t, 0, len(params)%2, "params must be name/value pairs")
	names := make([]string, 0, len(params)/2)
	values := make([]string, 0, len(params)/2)
	for i := 0; i < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	require.NoError(t, h(c))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func newPersonFixture(t *testing.T) (*handler.PersonHandler, *memPersonStore, *memDogStore) {
	t.Helper()
	persons := newMemPersonStore()
	dogs := newMemDogStore(persons)
	return handler.NewPersonHandler(persons, dogs), persons, dogs
}

func TestPersonCreateReturnsID(t *testing.T) {
	h, store, _ := newPersonFixture(t)

	rec := invoke(t, h.Create, http.MethodPost, "/persons",
		`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","phone":"555-0100"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		ID uint64 `json:"id"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, uint64(1), body.ID)

	p, err := store.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.FirstName)
	assert.Equal(t, "ada@example.com", p.Email)
}

func TestPersonGet(t *testing.T) {
	h, store, _ := newPersonFixture(t)
	require.NoError(t, store.Create(context.Background(), &model.Person{FirstName: "Bo", LastName: "Diaz"}))

	rec := invoke(t, h.Get, http.MethodGet, "/person/1", "", "id", "1")
	require.Equal(t, http.StatusOK, rec.Code)
	var p model.Person
	decodeBody(t, rec, &p)
	assert.Equal(t, "Bo", p.FirstName)
	assert.Nil(t, p.Image)

	rec = invoke(t, h.Get, http.MethodGet, "/person/99", "", "id", "99")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = invoke(t, h.Get, http.MethodGet, "/person/zero", "", "id", "0")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPersonListEmpty(t *testing.T) {
	h, _, _ := newPersonFixture(t)

	rec := invoke(t, h.List, http.MethodGet, "/allPersons", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestPersonDogsListing(t *testing.T) {
	h, persons, dogs := newPersonFixture(t)
	require.NoError(t, persons.Create(context.Background(), &model.Person{FirstName: "Kim"}))

	// Existing owner with no dogs: empty array, not an error.
	rec := invoke(t, h.GetDogs, http.MethodGet, "/person/1/dogs", "", "id", "1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	require.NoError(t, dogs.Create(context.Background(), &model.Dog{PersonID: 1, Name: "Rex"}))
	require.NoError(t, dogs.Create(context.Background(), &model.Dog{PersonID: 1, Name: "Fido"}))

	rec = invoke(t, h.GetDogs, http.MethodGet, "/person/1/dogs", "", "id", "1")
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []model.Dog
	decodeBody(t, rec, &listed)
	require.Len(t, listed, 2)
	assert.Equal(t, "Rex", listed[0].Name)

	// Unknown owner is a 404 even though the dog list would be empty.
	rec = invoke(t, h.GetDogs, http.MethodGet, "/person/9/dogs", "", "id", "9")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPersonUpdateField(t *testing.T) {
	h, store, _ := newPersonFixture(t)
	require.NoError(t, store.Create(context.Background(), &model.Person{FirstName: "Old", Email: "old@example.com"}))

	rec := invoke(t, h.UpdateField, http.MethodPut, "/persons/email/1",
		`{"email":"new@example.com"}`, "field", "email", "id", "1")
	require.Equal(t, http.StatusOK, rec.Code)

	p, err := store.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", p.Email)

	// The body must be keyed by the field segment.
	rec = invoke(t, h.UpdateField, http.MethodPut, "/persons/email/1",
		`{"value":"x"}`, "field", "email", "id", "1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Field names outside the registry do not resolve.
	rec = invoke(t, h.UpdateField, http.MethodPut, "/persons/password/1",
		`{"password":"hunter2"}`, "field", "password", "id", "1")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Unknown person.
	rec = invoke(t, h.UpdateField, http.MethodPut, "/persons/email/7",
		`{"email":"x@example.com"}`, "field", "email", "id", "7")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPersonUpdateImageNull(t *testing.T) {
	h, store, _ := newPersonFixture(t)
	img := "cdn/ada.png"
	require.NoError(t, store.Create(context.Background(), &model.Person{FirstName: "Ada", Image: &img}))

	// JSON null clears the nullable column.
	rec := invoke(t, h.UpdateField, http.MethodPut, "/persons/image/1",
		`{"image":null}`, "field", "image", "id", "1")
	require.Equal(t, http.StatusOK, rec.Code)

	p, err := store.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, p.Image)
}
