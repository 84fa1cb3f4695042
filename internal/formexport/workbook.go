// Package formexport renders consolidated monthly reports into the fixed
// M1/M2 workbook layouts the provincial health office expects.
package formexport

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"fhsis/internal/domain"
)

// Meta carries the header fields printed above every exported sheet.
type Meta struct {
	BarangayName string
	ReportMonth  int
	ReportYear   int
}

func (m Meta) periodLabel() string {
	return fmt.Sprintf("%s %d", time.Month(m.ReportMonth).String(), m.ReportYear)
}

// ageColumns is the fixed column order for age-bracketed sections.
var ageColumns = []string{"10-14", "15-19", "20-49", "Total"}

// fpCounterRows maps the six FP counters to their printed row labels, in
// form order.
var fpCounterRows = []struct {
	label string
	pick  func(domain.FPCounters) int
}{
	{"Current Users (Beginning Month)", func(c domain.FPCounters) int { return c.CurrentUsersBeginningMonth }},
	{"New Acceptors (Previous Month)", func(c domain.FPCounters) int { return c.NewAcceptorsPrevMonth }},
	{"Other Acceptors (Present Month)", func(c domain.FPCounters) int { return c.OtherAcceptorsPresentMonth }},
	{"Drop-outs (Present Month)", func(c domain.FPCounters) int { return c.DropOutsPresentMonth }},
	{"Current Users (End Month)", func(c domain.FPCounters) int { return c.CurrentUsersEndMonth }},
	{"New Acceptors (Present Month)", func(c domain.FPCounters) int { return c.NewAcceptorsPresentMonth }},
}

var fpTotalRows = []struct {
	label string
	pick  func(domain.FPTotals) int
}{
	{"Current Users (Beginning Month)", func(t domain.FPTotals) int { return t.TotalCurrentUsersBeginningMonth }},
	{"New Acceptors (Previous Month)", func(t domain.FPTotals) int { return t.TotalNewAcceptorsPrevMonth }},
	{"Other Acceptors (Present Month)", func(t domain.FPTotals) int { return t.TotalOtherAcceptorsPresentMonth }},
	{"Drop-outs (Present Month)", func(t domain.FPTotals) int { return t.TotalDropOutsPresentMonth }},
	{"Current Users (End Month)", func(t domain.FPTotals) int { return t.TotalCurrentUsersEndMonth }},
	{"New Acceptors (Present Month)", func(t domain.FPTotals) int { return t.TotalNewAcceptorsPresentMonth }},
}

// BuildM1Workbook lays out the M1 form: women of reproductive age, family
// planning by method, then the service data sections.
func BuildM1Workbook(meta Meta, fp *domain.FamilyPlanningReport, wra *domain.WRAReport, services []domain.ServiceIndicatorReport) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "M1"
	f.SetSheetName(f.GetSheetName(0), sheet)

	header, err := headerStyle(f)
	if err != nil {
		return nil, err
	}

	row := writeTitle(f, sheet, "FHSIS Report for the Month - M1", meta)

	// Section A. Women of Reproductive Age.
	if err := setRow(f, sheet, row, "A. Women of Reproductive Age"); err != nil {
		return nil, err
	}
	_ = f.SetCellStyle(sheet, cell(0, row), cell(0, row), header)
	row++
	if err := setRow(f, sheet, row, "Indicator", "10-14", "15-19", "20-49", "15-49", "Total"); err != nil {
		return nil, err
	}
	_ = f.SetCellStyle(sheet, cell(0, row), cell(5, row), header)
	row++
	if err := setRow(f, sheet, row, "Unmet need for modern FP",
		wra.AgeCategories["10-14"], wra.AgeCategories["15-19"], wra.AgeCategories["20-49"],
		wra.Age15To49, wra.Total); err != nil {
		return nil, err
	}
	row += 2

	// Section B. Family Planning, one block per method plus the totals block.
	if err := setRow(f, sheet, row, "B. Family Planning", "", "", "",
		fmt.Sprintf("Projected Population: %d", fp.ProjectedPopulation)); err != nil {
		return nil, err
	}
	_ = f.SetCellStyle(sheet, cell(0, row), cell(0, row), header)
	row++
	for _, method := range fp.Methods {
		row, err = writeFPBlock(f, sheet, row, header, method.MethodName, method.AgeCategories)
		if err != nil {
			return nil, err
		}
	}
	row, err = writeFPTotals(f, sheet, row, header, fp.Totals)
	if err != nil {
		return nil, err
	}
	row++

	// Section C. Service data, flat per indicator line.
	if err := setRow(f, sheet, row, "C. Services"); err != nil {
		return nil, err
	}
	_ = f.SetCellStyle(sheet, cell(0, row), cell(0, row), header)
	row++
	if err := setRow(f, sheet, row, "Service", "Indicator", "Male", "Female", "Total", "Remarks"); err != nil {
		return nil, err
	}
	_ = f.SetCellStyle(sheet, cell(0, row), cell(5, row), header)
	row++
	for _, svc := range services {
		if err := setRow(f, sheet, row, svc.ServiceName, svc.IndicatorName, svc.Male, svc.Female, svc.Total, svc.Remarks); err != nil {
			return nil, err
		}
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 40)
	_ = f.SetColWidth(sheet, "B", "F", 14)
	return f, nil
}

// BuildM2Workbook lays out the M2 morbidity form, one row per disease with
// M/F columns per age bracket.
func BuildM2Workbook(meta Meta, diseases []domain.DiseaseReport) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "M2"
	f.SetSheetName(f.GetSheetName(0), sheet)

	header, err := headerStyle(f)
	if err != nil {
		return nil, err
	}

	row := writeTitle(f, sheet, "FHSIS Report for the Month - M2 Morbidity Diseases", meta)

	head := []interface{}{"Disease"}
	for _, age := range ageColumns {
		head = append(head, age+" M", age+" F")
	}
	if err := setRow(f, sheet, row, head...); err != nil {
		return nil, err
	}
	_ = f.SetCellStyle(sheet, cell(0, row), cell(len(head)-1, row), header)
	row++

	for _, disease := range diseases {
		vals := []interface{}{disease.DiseaseName}
		for _, age := range ageColumns {
			c := disease.AgeCategories[age]
			vals = append(vals, c.M, c.F)
		}
		if err := setRow(f, sheet, row, vals...); err != nil {
			return nil, err
		}
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 40)
	return f, nil
}

func writeFPBlock(f *excelize.File, sheet string, row, header int, methodName string, cells map[string]domain.FPCounters) (int, error) {
	if err := setRow(f, sheet, row, methodName, "10-14", "15-19", "20-49", "Total"); err != nil {
		return row, err
	}
	if err := f.SetCellStyle(sheet, cell(0, row), cell(4, row), header); err != nil {
		return row, err
	}
	row++

	for _, counter := range fpCounterRows {
		vals := []interface{}{counter.label}
		for _, age := range ageColumns {
			vals = append(vals, counter.pick(cells[age]))
		}
		if err := setRow(f, sheet, row, vals...); err != nil {
			return row, err
		}
		row++
	}
	return row + 1, nil
}

func writeFPTotals(f *excelize.File, sheet string, row, header int, totals map[string]domain.FPTotals) (int, error) {
	if err := setRow(f, sheet, row, "All Methods (Total)", "10-14", "15-19", "20-49", "Total"); err != nil {
		return row, err
	}
	if err := f.SetCellStyle(sheet, cell(0, row), cell(4, row), header); err != nil {
		return row, err
	}
	row++

	for _, counter := range fpTotalRows {
		vals := []interface{}{counter.label}
		for _, age := range ageColumns {
			vals = append(vals, counter.pick(totals[age]))
		}
		if err := setRow(f, sheet, row, vals...); err != nil {
			return row, err
		}
		row++
	}
	return row + 1, nil
}

func writeTitle(f *excelize.File, sheet, title string, meta Meta) int {
	_ = f.SetCellValue(sheet, cell(0, 0), title)
	scope := "All Barangays"
	if meta.BarangayName != "" {
		scope = "Barangay: " + meta.BarangayName
	}
	_ = f.SetCellValue(sheet, cell(0, 1), scope)
	_ = f.SetCellValue(sheet, cell(0, 2), "For the month of "+meta.periodLabel())
	return 4
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
}

// setRow writes one row of values starting at column A.
func setRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	for col, v := range values {
		if err := f.SetCellValue(sheet, cell(col, row), v); err != nil {
			return err
		}
	}
	return nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row+1)
	return name
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition. Replaces
// non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns the attachment filename for an exported form.
// Format: {form}_{YYYY}_{MM}.xlsx, optionally prefixed with the barangay.
func BuildFilename(form string, meta Meta) string {
	base := fmt.Sprintf("%s_%04d_%02d", form, meta.ReportYear, meta.ReportMonth)
	if meta.BarangayName != "" {
		base = SanitizeFilename(meta.BarangayName) + "_" + base
	}
	return base + ".xlsx"
}
