package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/stokmebel/gudang-api/internal/application/dto"
	"github.com/stokmebel/gudang-api/internal/application/label"
	"github.com/stokmebel/gudang-api/internal/domain"
)

// LabelHandler genera etiquetas de producto: TSPL para impresoras térmicas y hojas
// PDF para imprimir desde el navegador (protegido).
type LabelHandler struct {
	uc *label.LabelUseCase
}

// NewLabelHandler construye el handler.
func NewLabelHandler(uc *label.LabelUseCase) *LabelHandler {
	return &LabelHandler{uc: uc}
}

// LabelSheetRequest body para POST /api/labels/sheet.
type LabelSheetRequest struct {
	Items []LabelSheetItem `json:"items"`
}

// LabelSheetItem un código y cuántas copias de su etiqueta.
type LabelSheetItem struct {
	Barcode string `json:"barcode"`
	Copies  int    `json:"copies"`
}

// TSPL godoc
// @Summary      Programa TSPL de la etiqueta de un producto
// @Tags         labels
// @Security     Bearer
// @Produce      plain
// @Param        code  path  string  true  "código de barras del producto"
// @Success      200   {string}  string  "programa TSPL (50x40 mm)"
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/labels/tspl/{code} [get]
func (h *LabelHandler) TSPL(c *fiber.Ctx) error {
	out, err := h.uc.TSPL(c.Context(), c.Params("code"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return storeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(out)
}

// Sheet godoc
// @Summary      Hoja PDF de etiquetas
// @Description  Una etiqueta por página de 50x40 mm, repetida según las copias pedidas.
// @Tags         labels
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  LabelSheetRequest  true  "items: barcode + copies"
// @Success      200   {file}    file
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/labels/sheet [post]
func (h *LabelHandler) Sheet(c *fiber.Ctx) error {
	var in LabelSheetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	reqs := make([]label.SheetItem, 0, len(in.Items))
	for _, it := range in.Items {
		reqs = append(reqs, label.SheetItem{Barcode: it.Barcode, Copies: it.Copies})
	}
	pdf, err := h.uc.SheetPDF(c.Context(), reqs)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "items no puede estar vacío"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "algún código no existe"})
		}
		return storeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="labels.pdf"`)
	return c.Send(pdf)
}
