package label

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	applabel "github.com/stokmebel/gudang-api/internal/application/label"
)

func TestTSPLBuilder_EtiquetaCompleta(t *testing.T) {
	b := NewTSPLBuilder()

	out := b.Build(applabel.Item{
		Name:    "Kasur Ortopedi",
		Sizes:   "160x200",
		Brand:   "Comforta",
		Barcode: "8991234567890",
	})

	lines := strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n")
	assert.Equal(t, "SIZE 50 mm,40 mm", lines[0])
	assert.Equal(t, "GAP 16,0", lines[1])
	assert.Equal(t, "DIRECTION 1", lines[2])
	assert.Equal(t, "REFERENCE 0,0", lines[3])
	assert.Equal(t, "CLS", lines[4])
	assert.Equal(t, `QRCODE 24,24,L,6,A,0,"8991234567890"`, lines[5])
	assert.Equal(t, `TEXT 224,24,"0",0,1,1,"Kasur Ortopedi"`, lines[6])
	assert.Equal(t, `TEXT 224,64,"0",0,1,1,"160x200"`, lines[7])
	assert.Equal(t, `TEXT 224,104,"0",0,1,1,"Comforta"`, lines[8])
	assert.Equal(t, `TEXT 224,144,"0",0,1,1,"8991234567890"`, lines[9])
	assert.Equal(t, "PRINT 1,1", lines[10])
	assert.True(t, strings.HasSuffix(out, "PRINT 1,1\r\n"))
}

func TestTSPLBuilder_LineasVaciasSeOmiten(t *testing.T) {
	b := NewTSPLBuilder()

	out := b.Build(applabel.Item{Name: "Sofa Bed", Barcode: "123"})

	// Sin sizes ni brand: el texto conserva sus posiciones fijas.
	assert.Contains(t, out, `TEXT 224,24,"0",0,1,1,"Sofa Bed"`)
	assert.NotContains(t, out, "TEXT 224,64")
	assert.NotContains(t, out, "TEXT 224,104")
	assert.Contains(t, out, `TEXT 224,144,"0",0,1,1,"123"`)
}

func TestTSPLBuilder_EscapaComillas(t *testing.T) {
	b := NewTSPLBuilder()

	out := b.Build(applabel.Item{Name: `Sofa 42" Plus`, Barcode: "X1"})

	assert.Contains(t, out, `"Sofa 42' Plus"`)
	assert.NotContains(t, out, `42"`)
}

func TestTSPLBuilder_QRUsaNombreSiNoHayCodigo(t *testing.T) {
	b := NewTSPLBuilder()

	out := b.Build(applabel.Item{Name: "Lemari Kayu"})

	assert.Contains(t, out, `QRCODE 24,24,L,6,A,0,"Lemari Kayu"`)
}
