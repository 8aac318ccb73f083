package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // Echo web framework, handles routing

	"github.com/caninesocial/canine-convention/internal/handler" // handlers that implement the API logic
)

// RegisterRoutes registers the health and greeting endpoints on the
// provided Echo instance.
func RegisterRoutes(e *echo.Echo) {
	// "/healthz" can be used by load balancers or monitoring systems to
	// verify that the service is up and running.
	e.GET("/healthz", handler.Health)
	// "/" returns the service greeting.
	e.GET("/", handler.Hello)
}

// RegisterPersons registers all person endpoints.  The cache middleware
// is applied to read routes only and the invalidator to every mutation,
// so stale listings disappear as soon as data changes.
func RegisterPersons(e *echo.Echo, p *handler.PersonHandler, cached, invalidate echo.MiddlewareFunc) {
	// Create a person; the response carries the generated id.
	e.POST("/persons", p.Create, invalidate)
	// List every registered person.
	e.GET("/allPersons", p.List, cached)
	// Fetch a single person by id.
	e.GET("/person/:id", p.Get, cached)
	// List the dogs owned by a person.  Returns 404 when the person does
	// not exist and an empty array when they simply have no dogs.
	e.GET("/person/:id/dogs", p.GetDogs, cached)
	// Per-field updates: the URL segment names the field to change and the
	// JSON body carries the new value under that same name, e.g.
	// PUT /persons/email/7 with body {"email": "a@b.c"}.
	e.PUT("/persons/:field/:id", p.UpdateField, invalidate)
}

// RegisterDogs registers all dog endpoints.  Dog updates follow the same
// field-in-the-path convention as person updates.
func RegisterDogs(e *echo.Echo, d *handler.DogHandler, cached, invalidate echo.MiddlewareFunc) {
	e.POST("/dog", d.Create, invalidate)
	e.GET("/dog/:id", d.Get, cached)
	// Deleting a dog also releases its event spots.
	e.DELETE("/dog/:id", d.Delete, invalidate)
	e.PUT("/dog/:field/:id", d.UpdateField, invalidate)
}

// RegisterEvents registers meetup event endpoints, including the
// capacity-checked join operation.
func RegisterEvents(e *echo.Echo, ev *handler.EventHandler, cached, invalidate echo.MiddlewareFunc) {
	e.POST("/event", ev.Create, invalidate)
	e.GET("/event/:id", ev.Get, cached)
	// "/events" lists only events that still have room.
	e.GET("/events", ev.List, cached)
	// Join runs in a transaction; a full event answers 409 rather than
	// overbooking.
	e.POST("/event/join/:id", ev.Join, invalidate)
}
