package domain

import "errors"

const (
	RoleAdministrator = "admin"
	RoleBasic         = "basic"
)

// DefaultAge is assigned to every user created through the API.
const DefaultAge = 20

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrEmptyField = errors.New("required field is empty")

// User models a stored identity. Username is the table key; Password holds the
// SHA-512 digest, never the plaintext.
type User struct {
	Username string `json:"username" bson:"_id"`
	Password string `json:"password" bson:"password"`
	Age      int    `json:"age" bson:"age"`
	Role     string `json:"role" bson:"role"`
}

// NormalizeRole coerces a requested role into the allowed set. Anything
// outside it silently becomes RoleBasic.
func NormalizeRole(role string) string {
	switch role {
	case RoleAdministrator, RoleBasic:
		return role
	default:
		return RoleBasic
	}
}
