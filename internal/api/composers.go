package api

import (
	"net/http"

	"github.com/mmynk/restapis/internal/models"
	"github.com/mmynk/restapis/internal/service"
)

type ComposerHandler struct {
	responder
	composers *service.ComposerService
}

func NewComposerHandler(composers *service.ComposerService, strict bool) *ComposerHandler {
	return &ComposerHandler{responder: responder{strict: strict}, composers: composers}
}

// List handles GET /composers
//
// @Summary List composers
// @Tags Composers
// @Produce json
// @Success 200 {array} models.Composer
// @Failure 500 {object} models.MessageResponse "Server Exception"
// @Failure 501 {object} models.MessageResponse "Database Exception"
// @Router /composers [get]
func (h *ComposerHandler) List(w http.ResponseWriter, r *http.Request) {
	composers, err := h.composers.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	JSONResponse(w, http.StatusOK, composers)
}

// Get handles GET /composers/{id}. An unknown id is a 200 with a null body.
//
// @Summary Find a composer by id
// @Tags Composers
// @Produce json
// @Param id path string true "Composer document id"
// @Success 200 {object} models.Composer "The composer, or null"
// @Failure 500 {object} models.MessageResponse "Server Exception"
// @Failure 501 {object} models.MessageResponse "Database Exception"
// @Router /composers/{id} [get]
func (h *ComposerHandler) Get(w http.ResponseWriter, r *http.Request) {
	composer, err := h.composers.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	JSONResponse(w, http.StatusOK, composer)
}

// Create handles POST /composers
//
// @Summary Create a composer
// @Tags Composers
// @Accept json
// @Produce json
// @Param composer body models.ComposerRequest true "Composer's information"
// @Success 200 {object} models.Composer
// @Failure 500 {object} models.MessageResponse "Server Exception"
// @Failure 501 {object} models.MessageResponse "Database Exception"
// @Router /composers [post]
func (h *ComposerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ComposerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	composer, err := h.composers.Create(r.Context(), req.FirstName, req.LastName)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	JSONResponse(w, http.StatusOK, composer)
}

// Update handles PUT /composers/{id}
//
// @Summary Update a composer by id
// @Tags Composers
// @Accept json
// @Produce json
// @Param id path string true "Composer document id"
// @Param composer body models.ComposerRequest true "Composer's information"
// @Success 200 {object} models.Composer
// @Failure 401 {object} models.MessageResponse "Invalid composerId"
// @Failure 500 {object} models.MessageResponse "Server Exception"
// @Failure 501 {object} models.MessageResponse "Database Exception"
// @Router /composers/{id} [put]
func (h *ComposerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.ComposerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	composer, err := h.composers.Update(r.Context(), r.PathValue("id"), req.FirstName, req.LastName)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	JSONResponse(w, http.StatusOK, composer)
}

// Delete handles DELETE /composers/{id}
//
// @Summary Delete a composer by id
// @Tags Composers
// @Produce json
// @Param id path string true "Composer document id"
// @Success 200 {object} models.Composer "The deleted composer"
// @Failure 401 {object} models.MessageResponse "Invalid composerId"
// @Failure 500 {object} models.MessageResponse "Server Exception"
// @Failure 501 {object} models.MessageResponse "Database Exception"
// @Router /composers/{id} [delete]
func (h *ComposerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	composer, err := h.composers.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	JSONResponse(w, http.StatusOK, composer)
}
