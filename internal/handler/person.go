package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caninesocial/canine-convention/internal/model"
)

// PersonHandler serves the person endpoints. It needs the dog store as
// well because a person's dog listing checks that the person exists
// before returning the (possibly empty) sequence.
type PersonHandler struct {
	Persons PersonStore
	Dogs    DogStore
}

// NewPersonHandler constructs a PersonHandler and panics if a dependency is nil.
func NewPersonHandler(persons PersonStore, dogs DogStore) *PersonHandler {
	if persons == nil || dogs == nil {
		panic("nil store passed to NewPersonHandler")
	}
	return &PersonHandler{Persons: persons, Dogs: dogs}
}

// Create handles POST /persons and returns the generated id.
func (h *PersonHandler) Create(c echo.Context) error {
	var body struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	p := &model.Person{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Phone:     body.Phone,
	}
	if err := h.Persons.Create(c.Request().Context(), p); err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"id": p.ID})
}

// Get handles GET /person/:id.
func (h *PersonHandler) Get(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	p, err := h.Persons.GetByID(c.Request().Context(), id)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// List handles GET /allPersons.
func (h *PersonHandler) List(c echo.Context) error {
	persons, err := h.Persons.ListAll(c.Request().Context())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, persons)
}

// GetDogs handles GET /person/:id/dogs. A person with no dogs gets an
// empty array with 200; 404 means the person itself does not exist.
func (h *PersonHandler) GetDogs(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	if _, err := h.Persons.GetByID(ctx, id); err != nil {
		return storeError(c, err)
	}
	dogs, err := h.Dogs.ListByOwner(ctx, id)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, dogs)
}

// UpdateField handles PUT /persons/:field/:id. Which column a field
// name reaches is decided by the store's static registry; an
// unregistered field answers 404 like any other unroutable path.
func (h *PersonHandler) UpdateField(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	field := c.Param("field")
	value, ok, errResp := bindFieldValue(c, field)
	if !ok {
		return errResp
	}
	if err := h.Persons.UpdateField(c.Request().Context(), field, id, value); err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id})
}
