package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/caninesocial/canine-convention/internal/model"
	"github.com/caninesocial/canine-convention/internal/query"
)

// joinRetries bounds how many times the join protocol restarts after a
// transient transaction failure before the fault is surfaced.
const joinRetries = 3

// EventRepo encapsulates all database access for events and the
// dog-event join records. Capacity is fixed at construction; the join
// protocol never admits a dog once an event's attendee count reaches it.
type EventRepo struct {
	db  *sql.DB
	cap int
}

// NewEventRepo constructs an EventRepo with the given attendee capacity.
func NewEventRepo(db *sql.DB, capacity int) *EventRepo {
	return &EventRepo{db: db, cap: capacity}
}

// Capacity returns the attendee cap this repository enforces.
func (r *EventRepo) Capacity() int { return r.cap }

// Create inserts a new event and populates the generated ID. Attendees
// starts at the schema default of zero.
func (r *EventRepo) Create(ctx context.Context, e *model.Event) error {
	const q = `INSERT INTO events (location) VALUES (:location)`
	stmt, args, err := query.Bind(q, map[string]any{"location": e.Location})
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
	e.ID = uint64(id)
	return nil
}

// GetByID fetches one event. It returns ErrEventNotFound when no row
// matches.
func (r *EventRepo) GetByID(ctx context.Context, id uint64) (*model.Event, error) {
	const q = `SELECT id, location, attendees FROM events WHERE id = :id`
	stmt, args, err := query.Bind(q, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	var e model.Event
	if err := r.db.QueryRowContext(ctx, stmt, args...).Scan(&e.ID, &e.Location, &e.Attendees); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &e, nil
}

// ListJoinable returns the ids of events that still have room, ordered
// by id. No open events is an empty slice, not an error.
func (r *EventRepo) ListJoinable(ctx context.Context) ([]model.EventRef, error) {
	const q = `SELECT id FROM events WHERE attendees < :cap ORDER BY id`
	stmt, args, err := query.Bind(q, map[string]any{"cap": r.cap})
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.EventRef, 0)
	for rows.Next() {
		var ref model.EventRef
		if err := rows.Scan(&ref.ID); err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Join admits a dog to an event while the attendee count is below
// capacity. The availability check, the join-record insert, and the
// counter increment all happen inside one transaction holding a row
// lock on the event, so two concurrent joins can never overbook. A
// transaction that loses a deadlock or times out waiting for the lock
// is restarted from the top a bounded number of times; nothing is ever
// partially applied. On success it returns the post-join event row.
func (r *EventRepo) Join(ctx context.Context, eventID, dogID uint64) (*model.Event, error) {
	var ev *model.Event
	var err error
	for attempt := 0; attempt < joinRetries; attempt++ {
		ev, err = r.joinOnce(ctx, eventID, dogID)
		if err == nil || !isRetryableTx(err) {
			return ev, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt+1) * 25 * time.Millisecond):
		}
	}
	return nil, err
}

func (r *EventRepo) joinOnce(ctx context.Context, eventID, dogID uint64) (*model.Event, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Locking read: holds the event row until commit so the count we act
	// on cannot change underneath us.
	stmt, args, err := query.Bind(
		`SELECT id, location, attendees FROM events WHERE id = :id FOR UPDATE`,
		map[string]any{"id": eventID})
	if err != nil {
		return nil, err
	}
	var ev model.Event
	if err := tx.QueryRowContext(ctx, stmt, args...).Scan(&ev.ID, &ev.Location, &ev.Attendees); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if ev.Attendees >= r.cap {
		return nil, ErrEventFull
	}

	stmt, args, err = query.Bind(
		`INSERT INTO event_dogs (dog_id, event_id) VALUES (:dogID, :eventID)`,
		map[string]any{"dogID": dogID, "eventID": eventID})
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, stmt, args...); err != nil {
		if hasMySQLCode(err, "1062") {
			return nil, ErrAlreadyJoined
		}
		if hasMySQLCode(err, "1452") {
			return nil, ErrDogNotFound
		}
		return nil, err
	}

	stmt, args, err = query.Bind(
		`UPDATE events SET attendees = attendees + 1 WHERE id = :id`,
		map[string]any{"id": eventID})
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, stmt, args...); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true
	ev.Attendees++
	return &ev, nil
}
