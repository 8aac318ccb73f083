package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caninesocial/canine-convention/internal/model"
)

// DogHandler serves the dog endpoints.
type DogHandler struct {
	Dogs DogStore
}

// NewDogHandler constructs a DogHandler and panics if the store is nil.
func NewDogHandler(dogs DogStore) *DogHandler {
	if dogs == nil {
		panic("nil store passed to NewDogHandler")
	}
	return &DogHandler{Dogs: dogs}
}

// Create handles POST /dog and returns the generated id. The owner
// reference must point at an existing person; the store answers a
// violation with 404.
func (h *DogHandler) Create(c echo.Context) error {
	var body struct {
		PersonID    uint64  `json:"personID"`
		Name        string  `json:"name"`
		Birthdate   string  `json:"birthdate"`
		Personality string  `json:"personality"`
		Gender      string  `json:"gender"`
		Neutered    bool    `json:"neutered"`
		Size        string  `json:"size"`
		Image       *string `json:"image"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.PersonID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "personID is required"})
	}
	d := &model.Dog{
		PersonID:    body.PersonID,
		Name:        body.Name,
		Birthdate:   body.Birthdate,
		Personality: body.Personality,
		Gender:      body.Gender,
		Neutered:    body.Neutered,
		Size:        body.Size,
		Image:       body.Image,
	}
	if err := h.Dogs.Create(c.Request().Context(), d); err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"id": d.ID})
}

// Get handles GET /dog/:id.
func (h *DogHandler) Get(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	d, err := h.Dogs.GetByID(c.Request().Context(), id)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

// Delete handles DELETE /dog/:id and echoes the deleted id.
func (h *DogHandler) Delete(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Dogs.Delete(c.Request().Context(), id); err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id})
}

// UpdateField handles PUT /dog/:field/:id.
func (h *DogHandler) UpdateField(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	field := c.Param("field")
	value, ok, errResp := bindFieldValue(c, field)
	if !ok {
		return errResp
	}
	if err := h.Dogs.UpdateField(c.Request().Context(), field, id, value); err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id})
}
