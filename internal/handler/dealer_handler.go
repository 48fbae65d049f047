package handler

import (
	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DealerHandler struct {
	service service.DealerService
}

func NewDealerHandler(s service.DealerService) *DealerHandler {
	return &DealerHandler{service: s}
}

// ListDealers handles GET /dealers?q=
func (h *DealerHandler) ListDealers(c *fiber.Ctx) error {
	dealers, err := h.service.ListDealers(c.Context(), c.Query("q"))
	if err != nil {
		return respondError(c, err, nil)
	}
	return c.JSON(dealers)
}

// NewDealerForm handles GET /dealer/add
func (h *DealerHandler) NewDealerForm(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"dealer": service.DealerRequest{}})
}

// CreateDealer handles POST /dealer/add
func (h *DealerHandler) CreateDealer(c *fiber.Ctx) error {
	var req service.DealerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid form body"})
	}

	if _, err := h.service.CreateDealer(c.Context(), &req); err != nil {
		return respondError(c, err, req)
	}
	return redirectWithMsg(c, "/dealers", "Dealer added successfully.")
}

// EditDealerForm handles GET /dealer/edit/:id
func (h *DealerHandler) EditDealerForm(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err, nil)
	}

	dealer, err := h.service.GetDealer(c.Context(), id)
	if err != nil {
		return respondError(c, err, nil)
	}
	return c.JSON(fiber.Map{"dealer": dealer})
}

// UpdateDealer handles POST /dealer/edit/:id
func (h *DealerHandler) UpdateDealer(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err, nil)
	}

	var req service.DealerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid form body"})
	}

	if _, err := h.service.UpdateDealer(c.Context(), id, &req); err != nil {
		return respondError(c, err, req)
	}
	return redirectWithMsg(c, "/dealers", "Dealer updated successfully.")
}

// DeleteDealer handles POST /dealer/delete/:id
func (h *DealerHandler) DeleteDealer(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err, nil)
	}

	if err := h.service.DeleteDealer(c.Context(), id); err != nil {
		return respondError(c, err, nil)
	}
	return redirectWithMsg(c, "/dealers", "Dealer deleted successfully.")
}
