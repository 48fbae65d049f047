package handler

import (
	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service        service.ProductService
	storageService service.StorageService
}

func NewProductHandler(s service.ProductService, storages service.StorageService) *ProductHandler {
	return &ProductHandler{service: s, storageService: storages}
}

// ListProducts handles GET /product
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts(c.Context())
	if err != nil {
		return respondError(c, err, nil)
	}
	return c.JSON(products)
}

// NewProductForm handles GET /product/add
func (h *ProductHandler) NewProductForm(c *fiber.Ctx) error {
	storages, err := h.storageService.ListStorage(c.Context(), "")
	if err != nil {
		return respondError(c, err, nil)
	}
	return c.JSON(fiber.Map{"storages": storages})
}

// CreateProduct handles POST /product/add
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req service.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid form body"})
	}

	if _, err := h.service.CreateProduct(c.Context(), &req); err != nil {
		return respondError(c, err, req)
	}
	return redirectWithMsg(c, "/product", "Product added successfully")
}

// EditProductForm handles GET /product/edit/:id
func (h *ProductHandler) EditProductForm(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err, nil)
	}

	product, err := h.service.GetProduct(c.Context(), id)
	if err != nil {
		return respondError(c, err, nil)
	}
	storages, err := h.storageService.ListStorage(c.Context(), "")
	if err != nil {
		return respondError(c, err, nil)
	}
	return c.JSON(fiber.Map{"product": product, "storages": storages})
}

// UpdateProduct handles POST /product/edit/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err, nil)
	}

	var req service.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid form body"})
	}

	if _, err := h.service.UpdateProduct(c.Context(), id, &req); err != nil {
		return respondError(c, err, req)
	}
	return redirectWithMsg(c, "/product", "Product updated successfully")
}

// DeleteProduct handles POST /product/delete/:id
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err, nil)
	}

	if err := h.service.DeleteProduct(c.Context(), id); err != nil {
		return respondError(c, err, nil)
	}
	return redirectWithMsg(c, "/product", "Product deleted.")
}
