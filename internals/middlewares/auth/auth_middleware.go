package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// EmployeeClaims is the subset of the session token this service reads.
// Token issuance lives in the auth module, not here.
type EmployeeClaims struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

// OptionalJWT parses a Bearer token when present and stores the employee
// claims in Locals. A missing or invalid token is not an error here —
// consumers that need an identity handle the empty case themselves
// (the dashboard falls back to sample data).
func OptionalJWT(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := bearerToken(c)
		if raw == "" || secret == "" {
			return c.Next()
		}

		claims := &EmployeeClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return c.Next()
		}

		c.Locals("employee_id", claims.EmployeeID)
		c.Locals("full_name", claims.FullName)
		c.Locals("role", claims.Role)
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	h := c.Get(fiber.HeaderAuthorization)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// EmployeeIDFromCtx returns the signed-in employee id, or "" when anonymous.
func EmployeeIDFromCtx(c *fiber.Ctx) string {
	if v, ok := c.Locals("employee_id").(string); ok {
		return v
	}
	return ""
}

// FullNameFromCtx returns the signed-in display name, or "" when anonymous.
func FullNameFromCtx(c *fiber.Ctx) string {
	if v, ok := c.Locals("full_name").(string); ok {
		return v
	}
	return ""
}
