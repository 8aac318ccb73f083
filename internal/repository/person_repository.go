package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/caninesocial/canine-convention/internal/model"
	"github.com/caninesocial/canine-convention/internal/query"
)

// PersonRepo encapsulates all database access for persons. It depends on
// a sql.DB connection pool injected at startup.
type PersonRepo struct {
	db *sql.DB
}

// NewPersonRepo constructs a PersonRepo bound to the given database.
func NewPersonRepo(db *sql.DB) *PersonRepo { return &PersonRepo{db: db} }

// personFields is the static registry for PUT /persons/:field/:id. Route
// field names follow the public API, columns follow the schema.
var personFields = updateSpec{
	table:    "persons",
	idColumn: "id",
	notFound: ErrPersonNotFound,
	fields: map[string]string{
		"name":    "first_name",
		"surname": "last_name",
		"email":   "email",
		"phone":   "phone",
		"image":   "image",
	},
}

// Create inserts a new person and populates the generated ID.
func (r *PersonRepo) Create(ctx context.Context, p *model.Person) error {
	const q = `INSERT INTO persons (first_name, last_name, email, phone)
	           VALUES (:firstName, :lastName, :email, :phone)`
	stmt, args, err := query.Bind(q, map[string]any{
		"firstName": p.FirstName,
		"lastName":  p.LastName,
		"email":     p.Email,
		"phone":     p.Phone,
	})
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}

// GetByID fetches one person. It returns ErrPersonNotFound when no row
// matches.
func (r *PersonRepo) GetByID(ctx context.Context, id uint64) (*model.Person, error) {
	const q = `SELECT id, first_name, last_name, email, phone, image
	           FROM persons WHERE id = :id`
	stmt, args, err := query.Bind(q, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	var p model.Person
	var image sql.NullString
	if err := r.db.QueryRowContext(ctx, stmt, args...).Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Phone, &image,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPersonNotFound
		}
		return nil, err
	}
	if image.Valid {
		v := image.String
		p.Image = &v
	}
	return &p, nil
}

// ListAll returns every person ordered by id. An empty table yields an
// empty slice, not an error.
func (r *PersonRepo) ListAll(ctx context.Context) ([]*model.Person, error) {
	const q = `SELECT id, first_name, last_name, email, phone, image
	           FROM persons ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Person, 0)
	for rows.Next() {
		p := new(model.Person)
		var image sql.NullString
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Phone, &image); err != nil {
			return nil, err
		}
		if image.Valid {
			v := image.String
			p.Image = &v
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateField sets exactly one registered field on one person.
func (r *PersonRepo) UpdateField(ctx context.Context, field string, id uint64, value any) error {
	return personFields.updateField(ctx, r.db, field, id, value)
}
