package auth

import (
	"os"
	"time"

	"github.com/SebastianPortocarrero/TFVitanza/models"
	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 24 * time.Hour

// issueJWT generates the session token for an authenticated user.
func issueJWT(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
		"name":    user.Name,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func issueGuestToken(guestID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": guestID,
		"role":    "guest",
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
