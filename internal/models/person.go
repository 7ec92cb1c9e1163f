package models

// Role is a single role held by a person.
type Role struct {
	Text string `json:"text" bson:"text" validate:"required"`
}

// Dependent is a person's dependent.
type Dependent struct {
	FirstName string `json:"firstName" bson:"firstName" validate:"required"`
	LastName  string `json:"lastName" bson:"lastName" validate:"required"`
}

// Person is a person document.
// Roles and Dependents are required but may be empty.
type Person struct {
	ID         string      `json:"_id" bson:"_id"`
	FirstName  string      `json:"firstName" bson:"firstName" validate:"required"`
	LastName   string      `json:"lastName" bson:"lastName" validate:"required"`
	Roles      []Role      `json:"roles" bson:"roles" validate:"required,dive"`
	Dependents []Dependent `json:"dependents" bson:"dependents" validate:"required,dive"`
	BirthDate  string      `json:"birthDate" bson:"birthDate" validate:"required"`
}

// PersonRequest is the body of POST /persons.
type PersonRequest struct {
	FirstName  string      `json:"firstName" validate:"required"`
	LastName   string      `json:"lastName" validate:"required"`
	Roles      []Role      `json:"roles" validate:"required,dive"`
	Dependents []Dependent `json:"dependents" validate:"required,dive"`
	BirthDate  string      `json:"birthDate" validate:"required"`
}

// Person converts the request into a new (unsaved) person.
func (r PersonRequest) Person() *Person {
	return &Person{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Roles:      r.Roles,
		Dependents: r.Dependents,
		BirthDate:  r.BirthDate,
	}
}
