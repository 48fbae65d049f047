package middleware

import (
	"strings"

	"go-stockroom/internal/repository"
	"go-stockroom/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the bearer token and sets operator info in context.
// Mounted on mutating routes when write protection is enabled.
func RequireAuth(operatorRepo repository.OperatorRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		// Check strict session against DB
		operator, err := operatorRepo.FindByID(claims.OperatorID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Operator not found"})
		}

		if !operator.IsActive {
			return c.Status(401).JSON(fiber.Map{"error": "Operator account is inactive"})
		}

		if operator.TokenVersion != claims.TokenVersion {
			return c.Status(401).JSON(fiber.Map{"error": "Session expired (logged in on another device)"})
		}

		c.Locals("operator_id", claims.OperatorID.String())
		c.Locals("operator_email", claims.Email)
		c.Locals("operator_name", claims.Name)

		return c.Next()
	}
}

// Passthrough is used in place of RequireAuth when write protection is off.
func Passthrough() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Next()
	}
}
