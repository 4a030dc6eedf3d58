package label

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	applabel "github.com/stokmebel/gudang-api/internal/application/label"
)

var _ applabel.SheetPDFGenerator = (*MarotoSheetGenerator)(nil)

// MarotoSheetGenerator implementa label.SheetPDFGenerator usando Maroto v2.
// Cada etiqueta ocupa una página de 50x40 mm, el mismo formato que el programa
// TSPL, para imprimir en rollos desde el navegador.
type MarotoSheetGenerator struct{}

// NewMarotoSheetGenerator construye el generador.
func NewMarotoSheetGenerator() *MarotoSheetGenerator { return &MarotoSheetGenerator{} }

// Generate genera el PDF con una etiqueta por página.
func (g *MarotoSheetGenerator) Generate(_ context.Context, items []applabel.Item) ([]byte, error) {
	cfg := config.NewBuilder().
		WithDimensions(50, 40).
		WithLeftMargin(3).WithRightMargin(3).
		WithTopMargin(3).WithBottomMargin(2).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 7}).
		Build()

	m := maroto.New(cfg)

	for _, item := range items {
		m.AddPages(labelPage(item))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar hoja de etiquetas: %w", err)
	}
	return doc.GetBytes(), nil
}

// labelPage: QR a la izquierda, nombre/medidas/marca/código a la derecha.
func labelPage(item applabel.Item) core.Page {
	qrData := item.Barcode
	if qrData == "" {
		qrData = item.Name
	}

	textCol := col.New(7).Add(
		text.New(item.Name, props.Text{Style: fontstyle.Bold, Size: 8, Top: 1}),
		text.New(item.Sizes, props.Text{Size: 7, Top: 8}),
		text.New(item.Brand, props.Text{Size: 7, Top: 14}),
		text.New(item.Barcode, props.Text{Size: 7, Top: 20}),
	)

	return page.New().Add(
		row.New(34).Add(
			col.New(5).Add(code.NewQr(qrData, props.Rect{
				Percent: 95,
				Center:  true,
			})),
			textCol,
		),
	)
}
