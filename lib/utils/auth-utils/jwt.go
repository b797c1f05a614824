package authutils

import (
	"time"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/config"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// GetToken issues an access token carrying the caller's identity and system role.
func GetToken(userID, name, email string, role models.UserRole) (tokenString string, err error) {
	return signToken(config.Conf.Auth.JWTSecret, userID, name, email, role,
		time.Second*time.Duration(config.Conf.Auth.JWTExpireInSec))
}

func signToken(secret, userID, name, email string, role models.UserRole, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"name":  name,
		"sub":   userID,
		"email": email,
		"role":  string(role),
		"exp":   time.Now().Add(ttl).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.MapClaims{}
	}
	return claims
}

// GetStringClaim returns "" for a missing or non-string claim.
func GetStringClaim(ctx *fiber.Ctx, key string) string {
	value, _ := GetClaims(ctx)[key].(string)
	return value
}
