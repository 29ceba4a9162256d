package serverutils

import (
	"os"

	"shared-notes-be/internal/pkg/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JwtSecret returns the signing secret shared by token issuance and
// verification.
func JwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return []byte(secret)
}

// JwtMiddleware authenticates the request and stores the resolved user id
// in ctx.Locals("user_id"). Handlers never read ambient auth state beyond
// this explicit local.
func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return apperr.Unauthenticated("Authentication required")
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return JwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return apperr.Unauthenticated("Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return apperr.Unauthenticated("Invalid claims")
	}

	userIdStr, ok := claims["user_id"].(string)
	if !ok {
		return apperr.Unauthenticated("Invalid claims")
	}
	if _, err := uuid.Parse(userIdStr); err != nil {
		return apperr.Unauthenticated("Invalid claims")
	}

	ctx.Locals("user_id", userIdStr)
	return ctx.Next()
}
