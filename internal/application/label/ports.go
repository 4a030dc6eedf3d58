package label

import "context"

// Item contenido de una etiqueta 50x40: QR con el código de barras a la izquierda,
// texto a la derecha.
type Item struct {
	Name    string
	Sizes   string
	Brand   string
	Barcode string
}

// TSPLGenerator genera el programa TSPL de una etiqueta para impresoras térmicas.
type TSPLGenerator interface {
	Build(item Item) string
}

// SheetPDFGenerator genera un PDF con una etiqueta por página (hoja para imprimir
// desde el navegador cuando no hay impresora térmica).
type SheetPDFGenerator interface {
	Generate(ctx context.Context, items []Item) ([]byte, error)
}
