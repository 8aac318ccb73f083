package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/caninesocial/canine-convention/internal/model"
	"github.com/caninesocial/canine-convention/internal/query"
)

// DogRepo encapsulates all database access for dogs.
type DogRepo struct {
	db *sql.DB
}

// NewDogRepo constructs a DogRepo bound to the given database.
func NewDogRepo(db *sql.DB) *DogRepo { return &DogRepo{db: db} }

// dogFields is the static registry for PUT /dog/:field/:id.
var dogFields = updateSpec{
	table:    "dogs",
	idColumn: "id",
	notFound: ErrDogNotFound,
	fields: map[string]string{
		"name":        "name",
		"birthdate":   "birthdate",
		"personality": "personality",
		"gender":      "gender",
		"neutered":    "neutered",
		"size":        "size",
		"image":       "image",
	},
}

// Create inserts a new dog and populates the generated ID. The owner
// reference is enforced by the store's foreign key; a violation comes
// back as ErrPersonNotFound.
func (r *DogRepo) Create(ctx context.Context, d *model.Dog) error {
	const q = `INSERT INTO dogs (person_id, name, birthdate, personality, gender, neutered, size, image)
	           VALUES (:personID, :name, :birthdate, :personality, :gender, :neutered, :size, :image)`
	stmt, args, err := query.Bind(q, map[string]any{
		"personID":    d.PersonID,
		"name":        d.Name,
		"birthdate":   d.Birthdate,
		"personality": d.Personality,
		"gender":      d.Gender,
		"neutered":    d.Neutered,
		"size":        d.Size,
		"image":       d.Image,
	})
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		if hasMySQLCode(err, "1452") {
			return ErrPersonNotFound
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	d.ID = uint64(id)
	return nil
}

// GetByID fetches one dog. It returns ErrDogNotFound when no row matches.
func (r *DogRepo) GetByID(ctx context.Context, id uint64) (*model.Dog, error) {
	// birthdate is formatted in SQL: the pool runs with parseTime, which
	// would otherwise surface DATE columns as time.Time.
	const q = `SELECT id, person_id, name, DATE_FORMAT(birthdate, '%Y-%m-%d'), personality, gender, neutered, size, image
	           FROM dogs WHERE id = :id`
	stmt, args, err := query.Bind(q, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	var d model.Dog
	var image sql.NullString
	if err := r.db.QueryRowContext(ctx, stmt, args...).Scan(
		&d.ID, &d.PersonID, &d.Name, &d.Birthdate, &d.Personality,
		&d.Gender, &d.Neutered, &d.Size, &image,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDogNotFound
		}
		return nil, err
	}
	if image.Valid {
		v := image.String
		d.Image = &v
	}
	return &d, nil
}

// ListByOwner returns every dog belonging to a person, ordered by id.
// A person with no dogs yields an empty slice; existence of the person
// is the caller's concern.
func (r *DogRepo) ListByOwner(ctx context.Context, personID uint64) ([]*model.Dog, error) {
	const q = `SELECT id, person_id, name, DATE_FORMAT(birthdate, '%Y-%m-%d'), personality, gender, neutered, size, image
	           FROM dogs WHERE person_id = :personID ORDER BY id`
	stmt, args, err := query.Bind(q, map[string]any{"personID": personID})
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Dog, 0)
	for rows.Next() {
		d := new(model.Dog)
		var image sql.NullString
		if err := rows.Scan(&d.ID, &d.PersonID, &d.Name, &d.Birthdate, &d.Personality,
			&d.Gender, &d.Neutered, &d.Size, &image); err != nil {
			return nil, err
		}
		if image.Valid {
			v := image.String
			d.Image = &v
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes one dog along with its join records, giving each
// affected event its spot back, and returns ErrDogNotFound when the id
// matches nothing. Everything runs in one transaction so the attendee
// counters and the join rows can never disagree.
func (r *DogRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	stmt, args, err := query.Bind(
		`UPDATE events SET attendees = attendees - 1
		 WHERE attendees > 0 AND id IN (SELECT event_id FROM event_dogs WHERE dog_id = :id)`,
		map[string]any{"id": id})
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, stmt, args...); err != nil {
		return err
	}

	stmt, args, err = query.Bind(`DELETE FROM event_dogs WHERE dog_id = :id`, map[string]any{"id": id})
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, stmt, args...); err != nil {
		return err
	}

	stmt, args, err = query.Bind(`DELETE FROM dogs WHERE id = :id`, map[string]any{"id": id})
	if err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, stmt, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrDogNotFound
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// UpdateField sets exactly one registered field on one dog.
func (r *DogRepo) UpdateField(ctx context.Context, field string, id uint64, value any) error {
	return dogFields.updateField(ctx, r.db, field, id, value)
}
