package models

// User is a registered account.
//
// Password only ever holds a bcrypt hash. Use Public before handing a user to a
// caller; the hash must never leave the server.
type User struct {
	ID           string `json:"_id" bson:"_id"`
	UserName     string `json:"userName" bson:"userName" validate:"required"`
	Password     string `json:"password" bson:"password" validate:"required"`
	EmailAddress string `json:"emailAddress" bson:"emailAddress" validate:"required"`
}

// PublicUser is the externally visible view of a User.
type PublicUser struct {
	ID           string `json:"_id"`
	UserName     string `json:"userName"`
	EmailAddress string `json:"emailAddress"`
}

// Public strips the password hash.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:           u.ID,
		UserName:     u.UserName,
		EmailAddress: u.EmailAddress,
	}
}

// SignupRequest is the body of POST /signup.
type SignupRequest struct {
	UserName     string `json:"userName" validate:"required"`
	Password     string `json:"password" validate:"required"`
	EmailAddress string `json:"emailAddress" validate:"required"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	UserName string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse acknowledges a login and carries the session token.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// MessageResponse is the body of every acknowledgment and every error.
type MessageResponse struct {
	Message string `json:"message"`
}
