package handler

import (
	"go-stockroom/internal/model"
	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StorageHandler struct {
	service       service.StorageService
	dealerService service.DealerService
}

func NewStorageHandler(s service.StorageService, dealers service.DealerService) *StorageHandler {
	return &StorageHandler{service: s, dealerService: dealers}
}

// ListStorage handles GET /storage?q=
func (h *StorageHandler) ListStorage(c *fiber.Ctx) error {
	storages, err := h.service.ListStorage(c.Context(), c.Query("q"))
	if err != nil {
		return respondError(c, err, nil)
	}
	return c.JSON(storages)
}

// formContext loads the choices the add/edit form needs: dealer dropdown and
// the fixed units list.
func (h *StorageHandler) formContext(c *fiber.Ctx) (fiber.Map, error) {
	dealers, err := h.dealerService.ListDealers(c.Context(), "")
	if err != nil {
		return nil, err
	}
	return fiber.Map{
		"dealers":    dealers,
		"units_list": model.UnitsList,
	}, nil
}

// NewStorageForm handles GET /storage/add
func (h *StorageHandler) NewStorageForm(c *fiber.Ctx) error {
	ctx, err := h.formContext(c)
	if err != nil {
		return respondError(c, err, nil)
	}
	return c.JSON(ctx)
}

// CreateStorage handles POST /storage/add
func (h *StorageHandler) CreateStorage(c *fiber.Ctx) error {
	var req service.StorageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid form body"})
	}

	if _, err := h.service.CreateStorage(c.Context(), &req); err != nil {
		return respondError(c, err, req)
	}
	return redirectWithMsg(c, "/storage", "Storage added successfully!")
}

// EditStorageForm handles GET /storage/edit/:id
func (h *StorageHandler) EditStorageForm(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err, nil)
	}

	storage, err := h.service.GetStorage(c.Context(), id)
	if err != nil {
		return respondError(c, err, nil)
	}
	ctx, err := h.formContext(c)
	if err != nil {
		return respondError(c, err, nil)
	}
	ctx["storage"] = storage
	return c.JSON(ctx)
}

// UpdateStorage handles POST /storage/edit/:id
func (h *StorageHandler) UpdateStorage(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err, nil)
	}

	var req service.StorageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid form body"})
	}

	if _, err := h.service.UpdateStorage(c.Context(), id, &req); err != nil {
		return respondError(c, err, req)
	}
	return redirectWithMsg(c, "/storage", "Storage updated!")
}

// DeleteStorage handles POST /storage/delete/:id
func (h *StorageHandler) DeleteStorage(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err, nil)
	}

	if err := h.service.DeleteStorage(c.Context(), id); err != nil {
		return respondError(c, err, nil)
	}
	return redirectWithMsg(c, "/storage", "Storage deleted.")
}
