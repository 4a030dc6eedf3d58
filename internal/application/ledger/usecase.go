package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stokmebel/gudang-api/internal/domain"
	"github.com/stokmebel/gudang-api/internal/domain/catalog"
	"github.com/stokmebel/gudang-api/internal/domain/entity"
	"github.com/stokmebel/gudang-api/internal/domain/repository"
)

// StockLedger implementa el protocolo de movimientos de stock: resuelve el objetivo
// escaneado (producto o unidad serializada), valida, aplica el delta de cantidad con
// primitivas atómicas del store y agrega el registro inmutable del ledger — todo en
// una transacción vía TxRunner. No guarda estado propio; es seguro por petición.
type StockLedger struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	unitRepo    repository.UnitRepository
	logRepo     repository.StockLogRepository
}

// NewStockLedger construye el caso de uso.
func NewStockLedger(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	unitRepo repository.UnitRepository,
	logRepo repository.StockLogRepository,
) *StockLedger {
	return &StockLedger{
		txRunner:    txRunner,
		productRepo: productRepo,
		unitRepo:    unitRepo,
		logRepo:     logRepo,
	}
}

// Tipos de objetivo resuelto.
const (
	TargetProduct = "product"
	TargetUnit    = "unit"
)

// ResolvedTarget es el resultado normalizado de resolver un código escaneado.
// Kind == TargetUnit incluye tanto la unidad como su producto dueño.
type ResolvedTarget struct {
	Kind    string
	Product *entity.Product
	Unit    *entity.Unit
}

// Actor identifica quién ejecuta el movimiento. Siempre explícito en cada llamada;
// nunca se lee de un singleton de sesión.
type Actor struct {
	ID    string
	Label string
}

// CatalogData campos descriptivos para crear el producto cuando el código es nuevo.
type CatalogData struct {
	Name     string
	Brand    string
	Category string
	Sizes    string
	Material string
	Colors   string
}

// IncomingInput entrada para un ingreso de mercancía.
type IncomingInput struct {
	Code         string
	Quantity     int64
	Actor        Actor
	SupplierName string
	Note         string
	// Catalog se usa solo si el código no existe todavía (alta en primer ingreso).
	Catalog *CatalogData
}

// OutgoingInput entrada para un egreso hacia un cliente.
type OutgoingInput struct {
	Code          string
	Quantity      int64
	Actor         Actor
	ClientName    string
	ClientAddress string
	Note          string
}

// MovementResult resultado de un movimiento confirmado.
type MovementResult struct {
	MovementID  string
	ProductID   string
	NewQuantity int64
	UnitSerial  *string
}

// ResolveTarget determina si un código identifica un producto o un serial de unidad.
// Orden (gana el primero): clave de producto exacta → campo barcode (índice
// secundario, registros históricos) → serial de unidad con status "in" y su producto
// dueño. Lectura pura: repetirla sin escrituras intermedias da el mismo resultado.
// domain.ErrNotFound no es excepcional; el caller debe manejarlo (re-escanear).
func (l *StockLedger) ResolveTarget(_ context.Context, code string) (*ResolvedTarget, error) {
	return resolveWith(l.productRepo, l.unitRepo, code)
}

func resolveWith(productRepo repository.ProductRepository, unitRepo repository.UnitRepository, code string) (*ResolvedTarget, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.ErrNotFound
	}

	product, err := productRepo.GetByID(code)
	if err != nil {
		return nil, err
	}
	if product != nil {
		return &ResolvedTarget{Kind: TargetProduct, Product: product}, nil
	}

	product, err = productRepo.FindByBarcode(code)
	if err != nil {
		return nil, err
	}
	if product != nil {
		return &ResolvedTarget{Kind: TargetProduct, Product: product}, nil
	}

	unit, err := unitRepo.Get(code)
	if err != nil {
		return nil, err
	}
	if unit != nil {
		// Serial conocido pero ya entregado: más accionable que "no encontrado".
		if unit.Status != entity.UnitStatusIn {
			return nil, domain.ErrUnitAlreadyOut
		}
		owner, err := productRepo.GetByID(unit.ProductID)
		if err != nil {
			return nil, err
		}
		if owner == nil {
			owner, err = productRepo.FindByBarcode(unit.ProductID)
			if err != nil {
				return nil, err
			}
		}
		if owner != nil {
			return &ResolvedTarget{Kind: TargetUnit, Unit: unit, Product: owner}, nil
		}
	}

	return nil, domain.ErrNotFound
}

// ApplyIncoming registra un ingreso: crea el producto si el código es nuevo (sembrado
// con los datos de catálogo del caller) o incrementa su cantidad atómicamente, y
// agrega el registro "incoming" al ledger en la misma transacción.
// Un código que resuelve a un serial de unidad suma al producto dueño: el ingreso
// nunca apunta a un serial (el alta de unidades es una operación de catálogo aparte).
func (l *StockLedger) ApplyIncoming(ctx context.Context, in IncomingInput) (*MovementResult, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if in.Actor.ID == "" {
		return nil, domain.ErrInvalidInput
	}
	code := strings.TrimSpace(in.Code)
	if code == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var result *MovementResult

	err := l.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		unitRepo repository.UnitRepository,
		logRepo repository.StockLogRepository,
	) error {
		target, err := resolveWith(productRepo, unitRepo, code)
		if err != nil && err != domain.ErrNotFound {
			return err
		}

		var product *entity.Product
		var newQty int64

		if target == nil {
			// Primer ingreso de un código desconocido: alta del producto.
			product = newProductFromCatalog(code, in, now)
			if err := productRepo.Create(product); err != nil {
				return err
			}
			newQty = in.Quantity
		} else {
			product = target.Product
			newQty, err = productRepo.AddQuantity(product.ID, in.Quantity, in.Actor.ID)
			if err != nil {
				return err
			}
		}

		log := &entity.StockLog{
			ID:             uuid.New().String(),
			Type:           entity.MovementTypeIncoming,
			ProductID:      product.ID,
			ProductName:    product.Name,
			Barcode:        product.Barcode,
			Brand:          product.Brand,
			Category:       product.Category,
			Sizes:          product.Sizes,
			Quantity:       in.Quantity,
			SupplierName:   optional(in.SupplierName),
			Note:           optional(in.Note),
			HandledByID:    in.Actor.ID,
			HandledByLabel: in.Actor.Label,
			CreatedAt:      now,
		}
		if err := logRepo.Create(log); err != nil {
			return err
		}

		result = &MovementResult{
			MovementID:  log.ID,
			ProductID:   product.ID,
			NewQuantity: newQty,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ApplyOutgoing registra un egreso hacia un cliente. Para un serial de unidad la
// cantidad se fuerza a 1 (una unidad es indivisible) y el estado transiciona in → out
// por compare-and-set: un doble escaneo concurrente recibe ErrUnitAlreadyOut y no
// toca la cantidad del producto. El decremento es condicional en el store
// (quantity >= qty), así dos egresos concurrentes no pueden sobregirar bajo cero.
func (l *StockLedger) ApplyOutgoing(ctx context.Context, in OutgoingInput) (*MovementResult, error) {
	if strings.TrimSpace(in.ClientName) == "" {
		return nil, domain.ErrMissingCounterparty
	}
	code := strings.TrimSpace(in.Code)
	if code == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var result *MovementResult

	err := l.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		unitRepo repository.UnitRepository,
		logRepo repository.StockLogRepository,
	) error {
		target, err := resolveWith(productRepo, unitRepo, code)
		if err != nil {
			return err
		}

		qty := in.Quantity
		var unitSerial *string

		if target.Kind == TargetUnit {
			qty = 1 // una unidad serializada sale entera, ignore lo pedido
			note := fmt.Sprintf("Outgoing → %s", strings.TrimSpace(in.ClientName))
			ok, err := unitRepo.CompareAndSetStatus(
				target.Unit.Serial, entity.UnitStatusIn, entity.UnitStatusOut,
				in.Actor.ID, note,
			)
			if err != nil {
				return err
			}
			if !ok {
				return domain.ErrUnitAlreadyOut
			}
			serial := target.Unit.Serial
			unitSerial = &serial
		} else if qty <= 0 {
			return domain.ErrInvalidQuantity
		}

		newQty, err := productRepo.DeductIfAvailable(target.Product.ID, qty, in.Actor.ID)
		if err != nil {
			return err
		}

		clientName := strings.TrimSpace(in.ClientName)
		log := &entity.StockLog{
			ID:             uuid.New().String(),
			Type:           entity.MovementTypeOutgoing,
			ProductID:      target.Product.ID,
			ProductName:    target.Product.Name,
			Barcode:        target.Product.Barcode,
			Brand:          target.Product.Brand,
			Category:       target.Product.Category,
			Sizes:          target.Product.Sizes,
			UnitSerial:     unitSerial,
			Quantity:       qty,
			ClientName:     &clientName,
			ClientAddress:  optional(in.ClientAddress),
			Note:           optional(in.Note),
			HandledByID:    in.Actor.ID,
			HandledByLabel: in.Actor.Label,
			CreatedAt:      now,
		}
		if err := logRepo.Create(log); err != nil {
			return err
		}

		result = &MovementResult{
			MovementID:  log.ID,
			ProductID:   target.Product.ID,
			NewQuantity: newQty,
			UnitSerial:  unitSerial,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AuditResult compara el stock actual contra la suma del ledger.
type AuditResult struct {
	ProductID  string
	Quantity   int64
	LedgerNet  int64
	Consistent bool
}

// Audit reproduce el stock desde el ledger (sum incoming - sum outgoing) y lo compara
// con la cantidad actual. Una diferencia delata una mutación cuyo registro de
// auditoría falló; se expone para detección, nunca se corrige en silencio.
func (l *StockLedger) Audit(ctx context.Context, code string) (*AuditResult, error) {
	target, err := l.ResolveTarget(ctx, code)
	if err != nil {
		return nil, err
	}
	net, err := l.logRepo.NetDeltaByProduct(target.Product.ID)
	if err != nil {
		return nil, err
	}
	return &AuditResult{
		ProductID:  target.Product.ID,
		Quantity:   target.Product.Quantity,
		LedgerNet:  net,
		Consistent: target.Product.Quantity == net,
	}, nil
}

// newProductFromCatalog arma la entidad para el alta en primer ingreso. Los campos
// descriptivos se guardan en forma Pretty; sin datos de catálogo queda solo el código.
func newProductFromCatalog(code string, in IncomingInput, now time.Time) *entity.Product {
	p := &entity.Product{
		ID:        code,
		Barcode:   code,
		Name:      code,
		Quantity:  in.Quantity,
		CreatedAt: now,
		CreatedBy: in.Actor.ID,
		UpdatedAt: now,
		UpdatedBy: in.Actor.ID,
	}
	if c := in.Catalog; c != nil {
		if strings.TrimSpace(c.Name) != "" {
			p.Name = catalog.Pretty(c.Name)
		}
		p.Brand = catalog.Pretty(c.Brand)
		p.Category = catalog.Pretty(c.Category)
		p.Sizes = strings.TrimSpace(c.Sizes)
		p.Material = catalog.Pretty(c.Material)
		p.Colors = catalog.Pretty(c.Colors)
	}
	return p
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
