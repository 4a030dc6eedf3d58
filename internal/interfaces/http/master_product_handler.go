package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/stokmebel/gudang-api/internal/application/dto"
	"github.com/stokmebel/gudang-api/internal/application/usecase"
	"github.com/stokmebel/gudang-api/internal/domain"
)

// MasterProductHandler maneja el catálogo maestro (protegido).
type MasterProductHandler struct {
	uc *usecase.MasterProductUseCase
}

// NewMasterProductHandler construye el handler.
func NewMasterProductHandler(uc *usecase.MasterProductUseCase) *MasterProductHandler {
	return &MasterProductHandler{uc: uc}
}

// Create godoc
// @Summary      Agregar entrada al catálogo maestro
// @Description  El duplicado se detecta por nombre+marca normalizados, no por igualdad literal.
// @Tags         master-products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMasterProductRequest  true  "name; brand, category, sizes opcionales"
// @Success      201   {object}  dto.MasterProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/master-products [post]
func (h *MasterProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMasterProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una entrada equivalente"})
		}
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener una entrada del catálogo maestro
// @Tags         master-products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "id de la entrada"
// @Success      200  {object}  dto.MasterProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/master-products/{id} [get]
func (h *MasterProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entrada no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar el catálogo maestro
// @Tags         master-products
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "texto de búsqueda"
// @Param        limit   query  int     false  "tamaño de página"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {object}  dto.MasterProductListResponse
// @Router       /api/master-products [get]
func (h *MasterProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Query("search"), page.Limit, page.Offset)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar una entrada del catálogo maestro (solo owner)
// @Tags         master-products
// @Security     Bearer
// @Param        id  path  string  true  "id de la entrada"
// @Success      204  "sin contenido"
// @Router       /api/master-products/{id} [delete]
func (h *MasterProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return storeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
