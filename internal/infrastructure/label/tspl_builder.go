// Package label implementa los generadores de etiquetas de producto: programa TSPL
// para impresoras térmicas de 203 dpi y hojas PDF vía Maroto.
package label

import (
	"fmt"
	"strings"

	applabel "github.com/stokmebel/gudang-api/internal/application/label"
)

var _ applabel.TSPLGenerator = (*TSPLBuilder)(nil)

// Geometría de la etiqueta 50x40 mm en dots. A 203 dpi, 1 mm ≈ 8 dots.
const (
	tsplGap    = 16  // 2 mm de separación entre etiquetas
	tsplQRX    = 24  // QR a 3 mm del borde izquierdo
	tsplQRY    = 24  // QR a 3 mm del borde superior
	tsplQRCell = 6   // tamaño de celda del QR
	tsplTextX  = 224 // columna de texto: QR (~25 mm) + canaleta
	tsplTextY  = 24  // primera línea de texto
	tsplLine   = 40  // interlineado ≈ 5 mm
)

// TSPLBuilder genera el programa TSPL de una etiqueta 50x40: QR a la izquierda,
// hasta cuatro líneas de texto a la derecha.
type TSPLBuilder struct{}

// NewTSPLBuilder construye el generador.
func NewTSPLBuilder() *TSPLBuilder { return &TSPLBuilder{} }

// Build arma el programa TSPL. Las líneas de texto vacías se omiten; el QR codifica
// el código de barras (o el nombre si no hay código).
func (b *TSPLBuilder) Build(item applabel.Item) string {
	qrData := item.Barcode
	if qrData == "" {
		qrData = item.Name
	}
	if qrData == "" {
		qrData = " "
	}

	lines := []string{
		"SIZE 50 mm,40 mm",
		fmt.Sprintf("GAP %d,0", tsplGap),
		"DIRECTION 1",
		"REFERENCE 0,0",
		"CLS",
		fmt.Sprintf(`QRCODE %d,%d,L,%d,A,0,"%s"`, tsplQRX, tsplQRY, tsplQRCell, escapeTSPL(qrData)),
	}

	y := tsplTextY
	for _, txt := range []string{item.Name, item.Sizes, item.Brand, item.Barcode} {
		if txt != "" {
			lines = append(lines, fmt.Sprintf(`TEXT %d,%d,"0",0,1,1,"%s"`, tsplTextX, y, escapeTSPL(txt)))
		}
		y += tsplLine
	}

	lines = append(lines, "PRINT 1,1")

	// TSPL espera CRLF como terminador de línea.
	return strings.Join(lines, "\r\n") + "\r\n"
}

// escapeTSPL reemplaza comillas dobles: TSPL las usa como delimitador y no tiene escape.
func escapeTSPL(s string) string {
	return strings.ReplaceAll(s, `"`, "'")
}
