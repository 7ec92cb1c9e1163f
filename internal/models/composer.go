package models

// Composer is a composer document.
type Composer struct {
	// ID is the store-assigned identifier.
	ID string `json:"_id" bson:"_id"`

	FirstName string `json:"firstName" bson:"firstName" validate:"required"`
	LastName  string `json:"lastName" bson:"lastName" validate:"required"`
}

// ComposerRequest is the body of POST /composers and PUT /composers/{id}.
type ComposerRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}
