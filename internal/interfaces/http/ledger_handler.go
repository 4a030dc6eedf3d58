package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/stokmebel/gudang-api/internal/application/dto"
	"github.com/stokmebel/gudang-api/internal/application/ledger"
	"github.com/stokmebel/gudang-api/internal/application/usecase"
	"github.com/stokmebel/gudang-api/internal/domain"
	"github.com/stokmebel/gudang-api/pkg/logger"
)

// LedgerHandler maneja el protocolo de movimientos de stock (protegido).
type LedgerHandler struct {
	ledger *ledger.StockLedger
	log    *logger.Logger
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(l *ledger.StockLedger, log *logger.Logger) *LedgerHandler {
	return &LedgerHandler{ledger: l, log: log}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock
// @Description  Ingreso o egreso contra un código escaneado (producto o serial de unidad).
//
//	La mutación de cantidad y el registro del ledger confirman juntos.
//
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "code, type (incoming|outgoing), quantity; client_name obligatorio en outgoing"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/ledger/movements [post]
func (h *LedgerHandler) RegisterMovement(c *fiber.Ctx) error {
	actor := actorFrom(c)
	if actor.ID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	out, err := h.ledger.RegisterFromRequest(c.Context(), actor, in)
	if err != nil {
		h.log.Warn().
			Str("code", in.Code).
			Str("type", in.Type).
			Str("actor", actor.ID).
			Err(err).
			Msg("movimiento rechazado")
		return ledgerError(c, err)
	}

	h.log.Info().
		Str("movement_id", out.MovementID).
		Str("product_id", out.ProductID).
		Str("type", in.Type).
		Int64("new_quantity", out.NewQuantity).
		Str("actor", actor.ID).
		Msg("movimiento registrado")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Resolve godoc
// @Summary      Resolver un código escaneado
// @Description  Determina si el código identifica un producto o un serial de unidad
//
//	en bodega. Lectura pura, sin efectos.
//
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "código de barras o serial"
// @Success      200   {object}  dto.ResolveResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ledger/resolve/{code} [get]
func (h *LedgerHandler) Resolve(c *fiber.Ctx) error {
	code := c.Params("code")
	target, err := h.ledger.ResolveTarget(c.Context(), code)
	if err != nil {
		return ledgerError(c, err)
	}

	resp := dto.ResolveResponse{
		Kind:    target.Kind,
		Product: usecase.ToProductResponse(target.Product, GetRole(c)),
	}
	if target.Unit != nil {
		resp.Unit = &dto.UnitResponse{
			Serial:      target.Unit.Serial,
			ProductID:   target.Unit.ProductID,
			ProductName: target.Unit.ProductName,
			Status:      target.Unit.Status,
			LastMovedAt: target.Unit.LastMovedAt,
			LastMovedBy: target.Unit.LastMovedBy,
		}
	}
	return c.JSON(resp)
}

// Audit godoc
// @Summary      Verificar consistencia de un producto contra el ledger
// @Description  Reproduce el stock desde el ledger (ingresos menos egresos) y lo
//
//	compara con la cantidad actual. Una diferencia delata un registro perdido.
//
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "código de barras del producto"
// @Success      200   {object}  dto.AuditResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ledger/audit/{code} [get]
func (h *LedgerHandler) Audit(c *fiber.Ctx) error {
	code := c.Params("code")
	res, err := h.ledger.Audit(c.Context(), code)
	if err != nil {
		if errors.Is(err, domain.ErrUnitAlreadyOut) {
			// Auditar por serial entregado no tiene sentido; tratarlo como no encontrado.
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "código no reconocido"})
		}
		return ledgerError(c, err)
	}
	if !res.Consistent {
		h.log.Warn().
			Str("product_id", res.ProductID).
			Int64("quantity", res.Quantity).
			Int64("ledger_net", res.LedgerNet).
			Msg("inconsistencia entre stock y ledger")
	}
	return c.JSON(dto.AuditResponse{
		ProductID:  res.ProductID,
		Quantity:   res.Quantity,
		LedgerNet:  res.LedgerNet,
		Consistent: res.Consistent,
	})
}
