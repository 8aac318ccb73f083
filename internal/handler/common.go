// Package handler contains the HTTP adapters. Handlers validate path
// and body input, delegate to a store, and translate store outcomes to
// status codes: not-found sentinels become 404, join conflicts become
// 409, and anything else is logged server-side and answered with an
// opaque 500.
package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/caninesocial/canine-convention/internal/model"
	"github.com/caninesocial/canine-convention/internal/repository"
)

// The store interfaces are declared here, on the consumer side, so
// handler tests can substitute in-memory fakes. The repository types
// satisfy them.

// PersonStore is the persistence surface the person handlers need.
type PersonStore interface {
	Create(ctx context.Context, p *model.Person) error
	GetByID(ctx context.Context, id uint64) (*model.Person, error)
	ListAll(ctx context.Context) ([]*model.Person, error)
	UpdateField(ctx context.Context, field string, id uint64, value any) error
}

// DogStore is the persistence surface the dog handlers need.
type DogStore interface {
	Create(ctx context.Context, d *model.Dog) error
	GetByID(ctx context.Context, id uint64) (*model.Dog, error)
	ListByOwner(ctx context.Context, personID uint64) ([]*model.Dog, error)
	Delete(ctx context.Context, id uint64) error
	UpdateField(ctx context.Context, field string, id uint64, value any) error
}

// EventStore is the persistence surface the event handlers need.
type EventStore interface {
	Create(ctx context.Context, e *model.Event) error
	GetByID(ctx context.Context, id uint64) (*model.Event, error)
	ListJoinable(ctx context.Context) ([]model.EventRef, error)
	Join(ctx context.Context, eventID, dogID uint64) (*model.Event, error)
}

// parseID parses a positive numeric path parameter.
func parseID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// storeError translates a repository error into the client response.
// Expected outcomes map to 404/409 with their own message; everything
// else (including a binding fault that escaped development) is a server
// fault: full detail goes to the log, the client gets a generic body.
func storeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrPersonNotFound),
		errors.Is(err, repository.ErrDogNotFound),
		errors.Is(err, repository.ErrEventNotFound),
		errors.Is(err, repository.ErrUnknownField):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrEventFull),
		errors.Is(err, repository.ErrAlreadyJoined):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	default:
		log.Printf("storage fault: %s %s: %v", c.Request().Method, c.Path(), err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}

// bindFieldValue extracts the new value for PUT /<entity>/:field/:id.
// The body is a JSON object keyed by the field segment itself, e.g.
// PUT /persons/phone/7 with {"phone": "555-0199"}. A missing key is a
// client error; JSON null is a legal value (clears nullable columns).
func bindFieldValue(c echo.Context, field string) (any, bool, error) {
	var body map[string]any
	if err := c.Bind(&body); err != nil {
		return nil, false, c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	value, ok := body[field]
	if !ok {
		return nil, false, c.JSON(http.StatusBadRequest, echo.Map{"error": field + " is required"})
	}
	return value, true, nil
}
