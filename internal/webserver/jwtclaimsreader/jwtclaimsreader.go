package jwtclaimsreader

import (
	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v4"
	"github.com/svera/corkboard/internal/webserver/model"
)

// SessionData returns the session data stored in the JWT token carried by
// the request, if any.
func SessionData(c *fiber.Ctx) model.Session {
	var session model.Session

	if t, ok := c.Locals("user").(*jwt.Token); ok {
		claims := t.Claims.(jwt.MapClaims)
		userData := claims["userdata"].(map[string]interface{})

		session = model.Session{
			ID:       uint(userData["id"].(float64)),
			Uuid:     userData["uuid"].(string),
			Name:     userData["name"].(string),
			Username: userData["username"].(string),
			Email:    userData["email"].(string),
			Phone:    userData["phone"].(string),
			Role:     int(userData["role"].(float64)),
		}
	}

	return session
}
