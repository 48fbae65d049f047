package handler

import (
	"errors"
	"log"
	"net/url"
	"strconv"

	"go-stockroom/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

// parseID parses the :id path parameter. A non-numeric id behaves like an
// unknown one: the route targets nothing.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, apperr.ErrNotFound
	}
	return uint(id), nil
}

// respondError maps the error taxonomy onto HTTP. Validation failures carry
// the submitted values back so the form can be re-rendered prefilled.
func respondError(c *fiber.Ctx, err error, submitted interface{}) error {
	if ve, ok := apperr.AsValidation(err); ok {
		return c.Status(400).JSON(fiber.Map{
			"error":  "validation failed",
			"fields": ve.Fields,
			"values": submitted,
		})
	}
	if errors.Is(err, apperr.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "not found"})
	}
	if errors.Is(err, apperr.ErrConflict) {
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	}
	log.Printf("ERROR: %v", err)
	return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
}

// redirectWithMsg sends the post-submit redirect to a list view together with
// a user-visible confirmation message.
func redirectWithMsg(c *fiber.Ctx, path, msg string) error {
	return c.Redirect(path+"?msg="+url.QueryEscape(msg), fiber.StatusSeeOther)
}
