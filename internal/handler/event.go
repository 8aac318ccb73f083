package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caninesocial/canine-convention/internal/model"
	"github.com/caninesocial/canine-convention/internal/queue"
)

// EventHandler serves the event endpoints. Publish, when set, is called
// after a committed join with the confirmation message; publishing is
// best effort and never delays or fails the client response.
type EventHandler struct {
	Events  EventStore
	Dogs    DogStore
	Publish func(ctx context.Context, msg queue.EventJoinedMessage) error
}

// NewEventHandler constructs an EventHandler and panics if a store is nil.
// The publisher is optional.
func NewEventHandler(events EventStore, dogs DogStore, publish func(ctx context.Context, msg queue.EventJoinedMessage) error) *EventHandler {
	if events == nil || dogs == nil {
		panic("nil store passed to NewEventHandler")
	}
	return &EventHandler{Events: events, Dogs: dogs, Publish: publish}
}

// Create handles POST /event and returns the generated id.
func (h *EventHandler) Create(c echo.Context) error {
	var body struct {
		Location string `json:"location"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	e := &model.Event{Location: body.Location}
	if err := h.Events.Create(c.Request().Context(), e); err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"id": e.ID})
}

// Get handles GET /event/:id and returns the row including the current
// attendee count.
func (h *EventHandler) Get(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	e, err := h.Events.GetByID(c.Request().Context(), id)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, e)
}

// List handles GET /events and returns the ids of events that still
// have room. No open events is an empty array, not 404.
func (h *EventHandler) List(c echo.Context) error {
	refs, err := h.Events.ListJoinable(c.Request().Context())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, refs)
}

// Join handles POST /event/join/:id. The dog must exist (404 otherwise);
// admission itself is decided by the store's join protocol, which
// answers full or duplicate with a conflict.
func (h *EventHandler) Join(c echo.Context) error {
	eventID, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		DogID uint64 `json:"dogID"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.DogID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "dogID is required"})
	}
	ctx := c.Request().Context()
	dog, err := h.Dogs.GetByID(ctx, body.DogID)
	if err != nil {
		return storeError(c, err)
	}
	ev, err := h.Events.Join(ctx, eventID, dog.ID)
	if err != nil {
		return storeError(c, err)
	}
	if h.Publish != nil {
		msg := queue.NewEventJoinedMessage(ev, dog)
		// Detached from the request context: the confirmation should go
		// out even if the client disconnects right after the commit.
		go func() { _ = h.Publish(context.Background(), msg) }()
	}
	return c.JSON(http.StatusOK, echo.Map{"id": ev.ID, "attendees": ev.Attendees})
}
