package models

// Player is a player embedded in a team. Players are only ever appended.
type Player struct {
	FirstName string  `json:"firstName" bson:"firstName" validate:"required"`
	LastName  string  `json:"lastName" bson:"lastName" validate:"required"`
	Salary    float64 `json:"salary" bson:"salary"`
}

// Team is a team document.
type Team struct {
	ID      string   `json:"_id" bson:"_id"`
	Name    string   `json:"name" bson:"name" validate:"required"`
	Mascot  string   `json:"mascot" bson:"mascot" validate:"required"`
	Players []Player `json:"players" bson:"players" validate:"dive"`
}

// TeamRequest is the body of POST /teams.
type TeamRequest struct {
	Name   string `json:"name" validate:"required"`
	Mascot string `json:"mascot" validate:"required"`
}

// PlayerRequest is the body of POST /teams/{id}/players.
type PlayerRequest struct {
	FirstName string   `json:"firstName" validate:"required"`
	LastName  string   `json:"lastName" validate:"required"`
	Salary    *float64 `json:"salary" validate:"required"`
}

// Player converts a validated request into a player.
func (r PlayerRequest) Player() Player {
	return Player{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Salary:    deref(r.Salary),
	}
}
