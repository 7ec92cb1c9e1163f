package api

import (
	"net/http"

	"github.com/mmynk/restapis/internal/models"
	"github.com/mmynk/restapis/internal/service"
)

type PersonHandler struct {
	responder
	persons *service.PersonService
}

func NewPersonHandler(persons *service.PersonService, strict bool) *PersonHandler {
	return &PersonHandler{responder: responder{strict: strict}, persons: persons}
}

// List handles GET /persons
//
// @Summary List persons
// @Tags Persons
// @Produce json
// @Success 200 {array} models.Person
// @Failure 500 {object} models.MessageResponse "Server Exception"
// @Failure 501 {object} models.MessageResponse "Database Exception"
// @Router /persons [get]
func (h *PersonHandler) List(w http.ResponseWriter, r *http.Request) {
	persons, err := h.persons.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	JSONResponse(w, http.StatusOK, persons)
}

// Create handles POST /persons. roles and dependents must be present but may be empty.
//
// @Summary Create a person
// @Tags Persons
// @Accept json
// @Produce json
// @Param person body models.PersonRequest true "Person's information"
// @Success 200 {object} models.Person
// @Failure 500 {object} models.MessageResponse "Server Exception"
// @Failure 501 {object} models.MessageResponse "Database Exception"
// @Router /persons [post]
func (h *PersonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.PersonRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	person, err := h.persons.Create(r.Context(), req.Person())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	JSONResponse(w, http.StatusOK, person)
}
