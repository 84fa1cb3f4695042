// Command seedrefs converts the reference-data Excel workbook into a SQL
// seed file for the lookup tables the report forms bind to.
// Expected sheets: Barangays, AgeCategories, FPMethods, Services,
// Indicators, Diseases, AppointmentCategories.
// Usage: go run ./cmd/seedrefs [workbook.xlsx]
// Output: db/seeds/reference_data.sql
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

type sheetSpec struct {
	sheet   string
	table   string
	columns []string
	// conflict is the unique column for ON CONFLICT; defaults to "name".
	conflict string
	// row converts one data row to SQL value expressions, or nil to skip.
	row func(row []string) []string
}

func run() error {
	xlsxPath := "reference_data.xlsx"
	if len(os.Args) > 1 {
		xlsxPath = os.Args[1]
	}
	outPath := "db/seeds/reference_data.sql"

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	specs := []sheetSpec{
		{
			sheet:   "Barangays",
			table:   "barangays",
			columns: []string{"name"},
			row: func(row []string) []string {
				name := strings.TrimSpace(cellVal(row, 0))
				if name == "" {
					return nil
				}
				return []string{quote(name)}
			},
		},
		{
			sheet:    "AgeCategories",
			table:    "age_categories",
			columns:  []string{"label"},
			conflict: "label",
			row: func(row []string) []string {
				label := strings.TrimSpace(cellVal(row, 0))
				if label == "" {
					return nil
				}
				return []string{quote(label)}
			},
		},
		{
			sheet:   "FPMethods",
			table:   "fp_methods",
			columns: []string{"name"},
			row: func(row []string) []string {
				name := strings.TrimSpace(cellVal(row, 0))
				if name == "" {
					return nil
				}
				return []string{quote(name)}
			},
		},
		{
			sheet:   "Services",
			table:   "services",
			columns: []string{"name"},
			row: func(row []string) []string {
				name := strings.TrimSpace(cellVal(row, 0))
				if name == "" {
					return nil
				}
				return []string{quote(name)}
			},
		},
		{
			// Indicators reference their service by name; parent indicators
			// by name within the same service. Resolved with subselects so
			// the seed stays order-independent.
			sheet:    "Indicators",
			table:    "indicators",
			columns:  []string{"service_id", "name", "parent_indicator_id"},
			conflict: "service_id, name",
			row: func(row []string) []string {
				serviceName := strings.TrimSpace(cellVal(row, 0))
				name := strings.TrimSpace(cellVal(row, 1))
				parentName := strings.TrimSpace(cellVal(row, 2))
				if serviceName == "" || name == "" {
					return nil
				}
				serviceRef := fmt.Sprintf("(SELECT id FROM services WHERE name = %s)", quote(serviceName))
				parentRef := "NULL"
				if parentName != "" {
					parentRef = fmt.Sprintf(
						"(SELECT id FROM indicators WHERE name = %s AND service_id = %s)",
						quote(parentName), serviceRef)
				}
				return []string{serviceRef, quote(name), parentRef}
			},
		},
		{
			sheet:   "Diseases",
			table:   "diseases",
			columns: []string{"name"},
			row: func(row []string) []string {
				name := strings.TrimSpace(cellVal(row, 0))
				if name == "" {
					return nil
				}
				return []string{quote(name)}
			},
		},
		{
			sheet:   "AppointmentCategories",
			table:   "appointment_categories",
			columns: []string{"name"},
			row: func(row []string) []string {
				name := strings.TrimSpace(cellVal(row, 0))
				if name == "" {
					return nil
				}
				return []string{quote(name)}
			},
		},
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	var b strings.Builder
	b.WriteString("-- Reference data seed generated from the FHSIS workbook.\n")
	b.WriteString("-- Run after migrations; safe to re-run.\n")
	b.WriteString("BEGIN;\n\n")

	total := 0
	for _, spec := range specs {
		n, err := writeSheet(&b, f, spec)
		if err != nil {
			return fmt.Errorf("sheet %s: %w", spec.sheet, err)
		}
		log.Printf("%s: %d rows", spec.sheet, n)
		total += n
	}

	b.WriteString("COMMIT;\n")

	if _, err := out.WriteString(b.String()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	log.Printf("Generated %d reference rows in %s", total, outPath)
	return nil
}

// writeSheet emits one multi-row INSERT per sheet. Row 0 is the header.
func writeSheet(b *strings.Builder, f *excelize.File, spec sheetSpec) (int, error) {
	rows, err := f.GetRows(spec.sheet)
	if err != nil {
		return 0, err
	}

	var values []string
	for i := 1; i < len(rows); i++ {
		vals := spec.row(rows[i])
		if vals == nil {
			continue
		}
		values = append(values, "  ("+strings.Join(vals, ", ")+")")
	}
	if len(values) == 0 {
		return 0, nil
	}

	conflict := spec.conflict
	if conflict == "" {
		conflict = "name"
	}
	fmt.Fprintf(b, "INSERT INTO %s (%s) VALUES\n", spec.table, strings.Join(spec.columns, ", "))
	b.WriteString(strings.Join(values, ",\n"))
	fmt.Fprintf(b, "\nON CONFLICT (%s) DO NOTHING;\n\n", conflict)
	return len(values), nil
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
