package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stokmebel/gudang-api/internal/application/dto"
	"github.com/stokmebel/gudang-api/internal/application/usecase"
)

// StockLogHandler lecturas del ledger de movimientos (protegido).
type StockLogHandler struct {
	uc *usecase.StockLogUseCase
}

// NewStockLogHandler construye el handler.
func NewStockLogHandler(uc *usecase.StockLogUseCase) *StockLogHandler {
	return &StockLogHandler{uc: uc}
}

// List godoc
// @Summary      Listar movimientos del ledger
// @Tags         stock-logs
// @Security     Bearer
// @Produce      json
// @Param        type        query  string  false  "incoming | outgoing"
// @Param        product_id  query  string  false  "filtrar por producto"
// @Param        from        query  string  false  "fecha inicial (RFC 3339)"
// @Param        to          query  string  false  "fecha final (RFC 3339)"
// @Param        limit       query  int     false  "tamaño de página"
// @Param        offset      query  int     false  "desplazamiento"
// @Success      200  {object}  dto.StockLogListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock-logs [get]
func (h *StockLogHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	from, err := parseTimeQuery(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser RFC 3339"})
	}
	to, err := parseTimeQuery(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser RFC 3339"})
	}

	out, err := h.uc.List(c.Query("type"), c.Query("product_id"), from, to, page.Limit, page.Offset)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(out)
}

func parseTimeQuery(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
