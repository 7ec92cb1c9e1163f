package api

import (
	"net/http"

	"github.com/mmynk/restapis/internal/models"
	"github.com/mmynk/restapis/internal/service"
)

type TeamHandler struct {
	responder
	teams *service.TeamService
}

func NewTeamHandler(teams *service.TeamService, strict bool) *TeamHandler {
	return &TeamHandler{responder: responder{strict: strict}, teams: teams}
}

// List handles GET /teams
//
// @Summary List teams
// @Tags Teams
// @Produce json
// @Success 200 {array} models.Team
// @Failure 500 {object} models.MessageResponse "Server Exception"
// @Failure 501 {object} models.MessageResponse "Database Exception"
// @Router /teams [get]
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teams.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	JSONResponse(w, http.StatusOK, teams)
}

// Create handles POST /teams
//
// @Summary Create a team
// @Tags Teams
// @Accept json
// @Produce json
// @Param team body models.TeamRequest true "Team's information"
// @Success 200 {object} models.Team
// @Failure 500 {object} models.MessageResponse "Server Exception"
// @Failure 501 {object} models.MessageResponse "Database Exception"
// @Router /teams [post]
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.TeamRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	team, err := h.teams.Create(r.Context(), req.Name, req.Mascot)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	JSONResponse(w, http.StatusOK, team)
}

// AssignPlayer handles POST /teams/{id}/players
//
// @Summary Assign a player to a team
// @Tags Teams
// @Accept json
// @Produce json
// @Param id path string true "Team document id"
// @Param player body models.PlayerRequest true "Player's information"
// @Success 200 {object} models.Team "The updated team"
// @Failure 401 {object} models.MessageResponse "Invalid teamId"
// @Failure 500 {object} models.MessageResponse "Server Exception"
// @Failure 501 {object} models.MessageResponse "Database Exception"
// @Router /teams/{id}/players [post]
func (h *TeamHandler) AssignPlayer(w http.ResponseWriter, r *http.Request) {
	var req models.PlayerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	team, err := h.teams.AssignPlayer(r.Context(), r.PathValue("id"), req.Player())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	JSONResponse(w, http.StatusOK, team)
}

// ListPlayers handles GET /teams/{id}/players
//
// @Summary List a team's players
// @Tags Teams
// @Produce json
// @Param id path string true "Team document id"
// @Success 200 {array} models.Player
// @Failure 401 {object} models.MessageResponse "Invalid teamId"
// @Failure 500 {object} models.MessageResponse "Server Exception"
// @Failure 501 {object} models.MessageResponse "Database Exception"
// @Router /teams/{id}/players [get]
func (h *TeamHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.teams.ListPlayers(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	JSONResponse(w, http.StatusOK, players)
}

// Delete handles DELETE /teams/{id}
//
// @Summary Delete a team by id
// @Tags Teams
// @Produce json
// @Param id path string true "Team document id"
// @Success 200 {object} models.Team "The deleted team"
// @Failure 401 {object} models.MessageResponse "Invalid teamId"
// @Failure 500 {object} models.MessageResponse "Server Exception"
// @Failure 501 {object} models.MessageResponse "Database Exception"
// @Router /teams/{id} [delete]
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	team, err := h.teams.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	JSONResponse(w, http.StatusOK, team)
}
