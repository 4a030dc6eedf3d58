package label

import (
	"context"

	"github.com/stokmebel/gudang-api/internal/domain"
	"github.com/stokmebel/gudang-api/internal/domain/entity"
	"github.com/stokmebel/gudang-api/internal/domain/repository"
)

// LabelUseCase arma etiquetas de producto: TSPL para impresoras térmicas y hojas PDF
// para impresión desde navegador. La resolución del código sigue el mismo orden del
// ledger (clave directa, luego campo barcode).
type LabelUseCase struct {
	productRepo repository.ProductRepository
	tspl        TSPLGenerator
	pdf         SheetPDFGenerator
}

// NewLabelUseCase construye el caso de uso.
func NewLabelUseCase(productRepo repository.ProductRepository, tspl TSPLGenerator, pdf SheetPDFGenerator) *LabelUseCase {
	return &LabelUseCase{productRepo: productRepo, tspl: tspl, pdf: pdf}
}

// TSPL genera el programa TSPL de la etiqueta de un producto.
func (uc *LabelUseCase) TSPL(_ context.Context, code string) (string, error) {
	p, err := uc.lookup(code)
	if err != nil {
		return "", err
	}
	return uc.tspl.Build(itemFromProduct(p)), nil
}

// SheetItem una entrada de la hoja de etiquetas: un código y cuántas copias.
type SheetItem struct {
	Barcode string
	Copies  int
}

// SheetPDF genera una hoja PDF con las etiquetas pedidas (una por página, repetida
// según copias). Códigos desconocidos cortan con ErrNotFound, sin PDF parcial.
func (uc *LabelUseCase) SheetPDF(ctx context.Context, reqs []SheetItem) ([]byte, error) {
	if len(reqs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	var items []Item
	for _, r := range reqs {
		copies := r.Copies
		if copies <= 0 {
			copies = 1
		}
		p, err := uc.lookup(r.Barcode)
		if err != nil {
			return nil, err
		}
		it := itemFromProduct(p)
		for i := 0; i < copies; i++ {
			items = append(items, it)
		}
	}
	return uc.pdf.Generate(ctx, items)
}

func (uc *LabelUseCase) lookup(code string) (*entity.Product, error) {
	p, err := uc.productRepo.GetByID(code)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p, err = uc.productRepo.FindByBarcode(code)
		if err != nil {
			return nil, err
		}
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func itemFromProduct(p *entity.Product) Item {
	barcode := p.Barcode
	if barcode == "" {
		barcode = p.ID
	}
	return Item{Name: p.Name, Sizes: p.Sizes, Brand: p.Brand, Barcode: barcode}
}
