package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("Invalid login credentials")
	ErrAlreadyRegistered  = errors.New("User already registered")
	ErrUserNotFound       = errors.New("User not found")
	ErrInvalidEmail       = errors.New("Invalid email")
	ErrWeakPassword       = errors.New("Password does not meet requirements")
)

// errorMessages maps auth errors to the fixed Spanish messages shown inline.
var errorMessages = map[string]string{
	ErrInvalidCredentials.Error(): "Email o contraseña incorrectos",
	ErrAlreadyRegistered.Error():  "Este email ya está registrado",
	ErrUserNotFound.Error():       "No existe una cuenta con este email",
	ErrInvalidEmail.Error():       "El formato del email no es válido",
	ErrWeakPassword.Error():       "La contraseña no cumple los requisitos mínimos",
	"Database error finding user": "Error de conexión con la base de datos. Por favor intenta de nuevo",
}

// Message translates an auth error for display. Unmapped errors fall back to
// a generic message.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if msg, ok := errorMessages[err.Error()]; ok {
		return msg
	}
	return "Ocurrió un error inesperado. Por favor intenta de nuevo"
}
