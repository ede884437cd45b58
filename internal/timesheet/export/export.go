// Package export renders aggregated timesheet views into deterministic
// .xlsx workbooks: a summary sheet plus one sheet per entity with weekly
// day blocks, bold weekly totals and a grand total.
package export

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/domain"
	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/rollup"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/errors"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/logger"
)

var dayNames = [domain.DaysPerWeek]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// Serializer renders workbooks from aggregated structures
type Serializer struct {
	logger *logger.Logger
}

// NewSerializer creates a new Serializer
func NewSerializer(log *logger.Logger) *Serializer {
	return &Serializer{logger: log.WithComponent("export")}
}

type workbookStyles struct {
	header     int
	bold       int
	grandTotal int
}

func newStyles(f *excelize.File) (workbookStyles, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return workbookStyles{}, err
	}

	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return workbookStyles{}, err
	}

	grandTotal, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FCE4D6"}, Pattern: 1},
	})
	if err != nil {
		return workbookStyles{}, err
	}

	return workbookStyles{header: header, bold: bold, grandTotal: grandTotal}, nil
}

// ProjectWorkbook renders the per-project export: a summary sheet with one
// utilization row per project, then one sheet per project whose rows are
// the contributing users' weekly day blocks. The input ordering (already
// deterministic from the rollup engine) is preserved.
func (s *Serializer) ProjectWorkbook(utilizations []rollup.ProjectUtilization, recordsByProject map[string][]*domain.WeeklyRecord) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	styles, err := newStyles(f)
	if err != nil {
		return nil, errors.Internal(err)
	}

	if err := s.writeProjectSummary(f, styles, utilizations); err != nil {
		return nil, err
	}

	taken := map[string]bool{"summary": true}
	for _, util := range utilizations {
		records := recordsByProject[util.ProjectID]
		if len(records) == 0 {
			continue
		}
		name := uniqueSheetName(util.ProjectName, taken)
		if _, err := f.NewSheet(name); err != nil {
			return nil, errors.Internal(err)
		}
		if err := s.writeEntitySheet(f, styles, name, "User", records, func(r *domain.WeeklyRecord) string {
			return displayName(r.UserName, r.UserID)
		}); err != nil {
			return nil, err
		}
	}

	f.DeleteSheet("Sheet1")
	return s.render(f)
}

// UserWorkbook renders the per-user export: a summary sheet with one row
// per user, then one sheet per user whose rows are that user's weekly day
// blocks across projects.
func (s *Serializer) UserWorkbook(summaries []rollup.UserSummary, recordsByUser map[string][]*domain.WeeklyRecord) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	styles, err := newStyles(f)
	if err != nil {
		return nil, errors.Internal(err)
	}

	if err := s.writeUserSummary(f, styles, summaries); err != nil {
		return nil, err
	}

	taken := map[string]bool{"summary": true}
	for _, summary := range summaries {
		records := recordsByUser[summary.UserID]
		if len(records) == 0 {
			continue
		}
		name := uniqueSheetName(summary.UserName, taken)
		if _, err := f.NewSheet(name); err != nil {
			return nil, errors.Internal(err)
		}
		if err := s.writeEntitySheet(f, styles, name, "Project", records, func(r *domain.WeeklyRecord) string {
			return displayName(r.ProjectName, r.ProjectID)
		}); err != nil {
			return nil, err
		}
	}

	f.DeleteSheet("Sheet1")
	return s.render(f)
}

func (s *Serializer) writeProjectSummary(f *excelize.File, styles workbookStyles, utilizations []rollup.ProjectUtilization) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return errors.Internal(err)
	}

	f.SetColWidth(sheet, "A", "A", 28)
	f.SetColWidth(sheet, "B", "D", 16)

	headers := []string{"Project", "Allocated Hours", "Used Hours", "Utilization %"}
	for i, h := range headers {
		f.SetCellValue(sheet, cell(colName(i), 1), h)
		f.SetCellStyle(sheet, cell(colName(i), 1), cell(colName(i), 1), styles.header)
	}

	row := 2
	var totalUsed float64
	for _, util := range utilizations {
		f.SetCellValue(sheet, cell("A", row), util.ProjectName)
		f.SetCellValue(sheet, cell("B", row), util.AllocatedHours)
		f.SetCellValue(sheet, cell("C", row), util.UsedHours)
		f.SetCellValue(sheet, cell("D", row), util.Utilization)
		totalUsed += util.UsedHours
		row++
	}

	f.SetCellValue(sheet, cell("A", row), "Total")
	f.SetCellValue(sheet, cell("C", row), domain.Round2(totalUsed))
	f.SetCellStyle(sheet, cell("A", row), cell("D", row), styles.grandTotal)

	return nil
}

func (s *Serializer) writeUserSummary(f *excelize.File, styles workbookStyles, summaries []rollup.UserSummary) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return errors.Internal(err)
	}

	f.SetColWidth(sheet, "A", "A", 28)
	f.SetColWidth(sheet, "B", "C", 16)

	headers := []string{"User", "Total Hours", "Projects"}
	for i, h := range headers {
		f.SetCellValue(sheet, cell(colName(i), 1), h)
		f.SetCellStyle(sheet, cell(colName(i), 1), cell(colName(i), 1), styles.header)
	}

	row := 2
	var total float64
	for _, summary := range summaries {
		f.SetCellValue(sheet, cell("A", row), summary.UserName)
		f.SetCellValue(sheet, cell("B", row), summary.TotalHours)
		f.SetCellValue(sheet, cell("C", row), len(summary.Projects))
		total += summary.TotalHours
		row++
	}

	f.SetCellValue(sheet, cell("A", row), "Total")
	f.SetCellValue(sheet, cell("B", row), domain.Round2(total))
	f.SetCellStyle(sheet, cell("A", row), cell("C", row), styles.grandTotal)

	return nil
}

// writeEntitySheet writes the weekly day blocks for one entity sheet.
// Each block is five day rows (date labels derived through the calendar
// math, never reformatted elsewhere) followed by a bold weekly total row;
// the sheet closes with a grand total row.
func (s *Serializer) writeEntitySheet(f *excelize.File, styles workbookStyles, sheet, counterpartHeader string, records []*domain.WeeklyRecord, counterpart func(*domain.WeeklyRecord) string) error {
	f.SetColWidth(sheet, "A", "A", 16)
	f.SetColWidth(sheet, "B", "C", 14)
	f.SetColWidth(sheet, "D", "D", 24)
	f.SetColWidth(sheet, "E", "E", 10)

	headers := []string{"Week", "Date", "Day", counterpartHeader, "Hours"}
	for i, h := range headers {
		f.SetCellValue(sheet, cell(colName(i), 1), h)
		f.SetCellStyle(sheet, cell(colName(i), 1), cell(colName(i), 1), styles.header)
	}

	sorted := make([]*domain.WeeklyRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Year != sorted[j].Year {
			return sorted[i].Year < sorted[j].Year
		}
		if sorted[i].WeekNumber != sorted[j].WeekNumber {
			return sorted[i].WeekNumber < sorted[j].WeekNumber
		}
		return counterpart(sorted[i]) < counterpart(sorted[j])
	})

	row := 2
	var grandTotal float64
	for _, record := range sorted {
		weekStart := domain.MondayOf(record.Year, record.WeekNumber)
		weekLabel := fmt.Sprintf("Week %d (%d)", record.WeekNumber, record.Year)

		blockStart := row
		for i := 0; i < domain.DaysPerWeek; i++ {
			date := domain.DateOfWeekday(weekStart, i)
			f.SetCellValue(sheet, cell("B", row), date.Format("2006-01-02"))
			f.SetCellValue(sheet, cell("C", row), dayNames[i])
			f.SetCellValue(sheet, cell("D", row), counterpart(record))
			f.SetCellValue(sheet, cell("E", row), record.At(i))
			row++
		}
		f.SetCellValue(sheet, cell("A", blockStart), weekLabel)
		f.MergeCell(sheet, cell("A", blockStart), cell("A", row-1))

		weekTotal := record.DayHours.Total()
		grandTotal += weekTotal

		f.SetCellValue(sheet, cell("D", row), "Weekly total")
		f.SetCellValue(sheet, cell("E", row), domain.Round2(weekTotal))
		f.SetCellStyle(sheet, cell("A", row), cell("E", row), styles.bold)
		row++
	}

	f.SetCellValue(sheet, cell("D", row), "Grand total")
	f.SetCellValue(sheet, cell("E", row), domain.Round2(grandTotal))
	f.SetCellStyle(sheet, cell("A", row), cell("E", row), styles.grandTotal)

	return nil
}

func (s *Serializer) render(f *excelize.File) (*bytes.Buffer, error) {
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error().Err(err).Msg("failed to render workbook")
		return nil, errors.Internal(err)
	}
	return buf, nil
}

// Filename builds a download file name for the given export scope
func Filename(kind string, at time.Time) string {
	return fmt.Sprintf("timesheets_%s_%s.xlsx", kind, at.UTC().Format("2006-01-02"))
}

// sheetName sanitizes an entity name into a valid sheet name. Excel
// limits names to 31 characters and forbids a handful of characters.
func sheetName(name string) string {
	replacer := strings.NewReplacer(":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", " ", "]", " ")
	cleaned := strings.TrimSpace(replacer.Replace(name))
	if cleaned == "" {
		cleaned = "Sheet"
	}
	if len(cleaned) > 31 {
		cleaned = cleaned[:31]
	}
	if cleaned == "Summary" {
		cleaned = cleaned[:len(cleaned)-1] + "_"
	}
	return cleaned
}

// uniqueSheetName sanitizes the entity name and suffixes it with a
// counter when another entity in the same workbook already claimed it.
// Sheet names are case-insensitive in the xlsx format, so the taken set
// is keyed on the lowercased name.
func uniqueSheetName(name string, taken map[string]bool) string {
	base := sheetName(name)
	candidate := base
	for n := 2; taken[strings.ToLower(candidate)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		trimmed := base
		if len(trimmed)+len(suffix) > 31 {
			trimmed = trimmed[:31-len(suffix)]
		}
		candidate = trimmed + suffix
	}
	taken[strings.ToLower(candidate)] = true
	return candidate
}

func displayName(name *string, fallback string) string {
	if name != nil && *name != "" {
		return *name
	}
	return fallback
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
