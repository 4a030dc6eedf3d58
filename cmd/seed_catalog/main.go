// seed_catalog genera un script SQL para poblar el catálogo maestro a partir de un
// CSV con columnas: name,brand,category,sizes (con fila de encabezado).
//
// Uso: go run ./cmd/seed_catalog [ruta/catalog.csv]
// Por defecto busca catalog.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_catalog.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/stokmebel/gudang-api/internal/domain/catalog"
)

func main() {
	csvPath := "catalog.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if len(records) < 2 {
		fmt.Fprintln(os.Stderr, "El CSV no tiene filas de datos")
		os.Exit(1)
	}

	// Deduplicar por la forma normalizada de nombre+marca, igual que el caso de uso.
	seen := make(map[string]bool)
	type entry struct{ name, brand, category, sizes, normName, normBrand, normCategory string }
	var entries []entry
	for _, rec := range records[1:] {
		if len(rec) == 0 || strings.TrimSpace(rec[0]) == "" {
			continue
		}
		e := entry{name: catalog.Pretty(field(rec, 0))}
		e.brand = catalog.Pretty(field(rec, 1))
		e.category = catalog.Pretty(field(rec, 2))
		e.sizes = strings.TrimSpace(field(rec, 3))
		e.normName = catalog.Norm(e.name)
		e.normBrand = catalog.Norm(e.brand)
		e.normCategory = catalog.Norm(e.category)
		key := e.normName + "|" + e.normBrand
		if seen[key] {
			continue
		}
		seen[key] = true
		entries = append(entries, e)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_catalog.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogo maestro inicial\n")
	out.WriteString("-- Generado desde " + filepath.Base(csvPath) + "\n\n")
	for _, e := range entries {
		fmt.Fprintf(out,
			"INSERT INTO master_products (id, name, brand, category, sizes, norm_name, norm_brand, norm_category)\n"+
				"VALUES ('%s', '%s', '%s', '%s', '%s', '%s', '%s', '%s')\n"+
				"ON CONFLICT (norm_name, norm_brand) DO UPDATE SET category = EXCLUDED.category, sizes = EXCLUDED.sizes;\n",
			uuid.New().String(),
			escapeSQL(e.name), escapeSQL(e.brand), escapeSQL(e.category), escapeSQL(e.sizes),
			escapeSQL(e.normName), escapeSQL(e.normBrand), escapeSQL(e.normCategory),
		)
	}

	fmt.Printf("Generado %s: %d entradas\n", outPath, len(entries))
}

func field(rec []string, i int) string {
	if i < len(rec) {
		return rec[i]
	}
	return ""
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
