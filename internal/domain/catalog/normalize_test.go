package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stokmebel/gudang-api/internal/domain/catalog"
)

func TestNorm_ColapsaYMayusculas(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "kasur", "KASUR"},
		{"espacios externos", "  sofa bed  ", "SOFA BED"},
		{"espacios internos", "lemari   2   pintu", "LEMARI 2 PINTU"},
		{"tabs y saltos", "meja\tmakan\njati", "MEJA MAKAN JATI"},
		{"vacío", "", ""},
		{"solo espacios", "   ", ""},
		{"ya normalizado", "SPRING BED", "SPRING BED"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, catalog.Norm(tc.in))
		})
	}
}

func TestPretty_TitulaSinBajarElResto(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"minúsculas", "sofa bed", "Sofa Bed"},
		{"espacios", "  lemari   pakaian ", "Lemari Pakaian"},
		// Pretty no baja las letras ya en mayúscula (solo eleva iniciales)
		{"siglas intactas", "kasur ORTHO 90x200", "Kasur ORTHO 90x200"},
		{"vacío", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, catalog.Pretty(tc.in))
		})
	}
}

func TestMatch_FormasEquivalentes(t *testing.T) {
	assert.True(t, catalog.Match("  sofa   bed ", "SOFA BED"))
	assert.True(t, catalog.Match("Kasur", "kasur"))
	assert.False(t, catalog.Match("kasur", "kasur lantai"))
}

// Norm es idempotente: aplicarla dos veces no cambia el resultado.
func TestNorm_Idempotente(t *testing.T) {
	in := "  meja   Makan  JATI "
	once := catalog.Norm(in)
	assert.Equal(t, once, catalog.Norm(once))
}
