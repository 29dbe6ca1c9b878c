package session

import (
	"crypto/subtle"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/Hellothereeee2312/Portal/core"
	"github.com/Hellothereeee2312/Portal/core/portal"
)

var (
	// errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	errUnknownRole        = errors.New("unknown role")
)

type credential struct {
	username string
	password string
	user     portal.CurrentUser
}

// demo accounts: one fixed identity per role
var credentials = map[portal.Role]credential{
	portal.RoleStudent: {
		username: "student1",
		password: "1234",
		user:     portal.CurrentUser{ID: "S2023001", Name: "John Vhincent Mark Reyes", Role: portal.RoleStudent},
	},
	portal.RoleTeacher: {
		username: "admin",
		password: "12e",
		user:     portal.CurrentUser{ID: "T001", Name: "Mr. Chiong", Role: portal.RoleTeacher},
	},
}

// CredentialsError is returned on a failed login. Its message names the expected pair.
type CredentialsError struct {
	Role     portal.Role
	Username string
	Password string
}

func (e *CredentialsError) Error() string {
	return fmt.Sprintf("Invalid %s credentials. Use: %s / %s", e.Role, e.Username, e.Password)
}

func (e *CredentialsError) Unwrap() error { return ErrInvalidCredentials }

// Authenticate checks a username/password pair against the role's account.
func Authenticate(role portal.Role, username, password string) (portal.CurrentUser, error) {
	cred, ok := credentials[role]
	if !ok {
		return portal.CurrentUser{}, core.NewValidationError(errUnknownRole, core.FieldError{Field: "role", Error: errUnknownRole.Error()})
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(cred.username)) == 1
	pwdOK := subtle.ConstantTimeCompare([]byte(password), []byte(cred.password)) == 1
	if !(userOK && pwdOK) {
		return portal.CurrentUser{}, &CredentialsError{Role: role, Username: cred.username, Password: cred.password}
	}
	return cred.user, nil
}

// LoginRequest is the payload of a login attempt.
type LoginRequest struct {
	Role     portal.Role `json:"role" validate:"required,oneof=student teacher"`
	Username string      `json:"username" validate:"required"`
	Password string      `json:"password" validate:"required"`
}

func (lr *LoginRequest) Validate(validate *validator.Validate) error {
	lr.Role = portal.Role(core.CleanString(string(lr.Role), true /* lower */))
	lr.Username = core.CleanString(lr.Username)
	return validate.Struct(lr)
}
