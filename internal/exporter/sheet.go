package exporter

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ColumnFormat is the number format of a data column
type ColumnFormat int

const (
	// FormatPlain leaves numbers in the General format
	FormatPlain ColumnFormat = iota
	// FormatMoney displays numbers as dollars and cents
	FormatMoney
)

// CurrencyNumFmt is the number format code applied to money cells
const CurrencyNumFmt = `"$"#,##0.00_-`

// widthPadding is added to the longest value of a column
const widthPadding = 2

// SheetWriter is the spreadsheet capability used by XLSXExporter
type SheetWriter interface {
	// WriteHeader writes the header row. It must be called before WriteRow.
	WriteHeader(names []string) error
	WriteRow(values []any) error
	// SetColumnFormat sets the number format of data cells in col (1-based)
	SetColumnFormat(col int, format ColumnFormat) error
	// AutosizeColumns sizes every column to its longest value plus padding
	AutosizeColumns() error
	Save(path string) error
	Write(w io.Writer) error
	Close() error
}

// excelSheet is a SheetWriter backed by a single-sheet excelize workbook
type excelSheet struct {
	file          *excelize.File
	sheet         string
	nextRow       int
	widths        []int
	formats       map[int]ColumnFormat
	headerStyle   int
	currencyStyle int
}

// NewExcelSheet creates a workbook whose only sheet is named sheetName
func NewExcelSheet(sheetName string) (SheetWriter, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet %q: %w", sheetName, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	numFmt := CurrencyNumFmt
	currencyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create currency style: %w", err)
	}

	return &excelSheet{
		file:          f,
		sheet:         sheetName,
		nextRow:       1,
		formats:       make(map[int]ColumnFormat),
		headerStyle:   headerStyle,
		currencyStyle: currencyStyle,
	}, nil
}

func (s *excelSheet) WriteHeader(names []string) error {
	if s.nextRow != 1 {
		return fmt.Errorf("header must be the first row, next row is %d", s.nextRow)
	}
	if len(names) == 0 {
		return fmt.Errorf("header has no columns")
	}

	row := make([]any, len(names))
	for i, n := range names {
		row[i] = n
	}
	if err := s.setRow(row); err != nil {
		return err
	}

	last, err := excelize.CoordinatesToCellName(len(names), 1)
	if err != nil {
		return err
	}
	if err := s.file.SetCellStyle(s.sheet, "A1", last, s.headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	s.nextRow++
	return nil
}

func (s *excelSheet) WriteRow(values []any) error {
	if s.nextRow == 1 {
		return fmt.Errorf("header must be written before data rows")
	}
	if err := s.setRow(values); err != nil {
		return err
	}
	for col, format := range s.formats {
		if col <= len(values) {
			if err := s.applyFormat(col, format, s.nextRow, s.nextRow); err != nil {
				return err
			}
		}
	}
	s.nextRow++
	return nil
}

func (s *excelSheet) SetColumnFormat(col int, format ColumnFormat) error {
	if col < 1 {
		return fmt.Errorf("invalid column %d", col)
	}
	s.formats[col] = format
	// restyle rows already written
	if s.nextRow > 2 {
		return s.applyFormat(col, format, 2, s.nextRow-1)
	}
	return nil
}

func (s *excelSheet) AutosizeColumns() error {
	for i, w := range s.widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := s.file.SetColWidth(s.sheet, name, name, float64(w+widthPadding)); err != nil {
			return fmt.Errorf("failed to set width of column %s: %w", name, err)
		}
	}
	return nil
}

func (s *excelSheet) Save(path string) error {
	return s.file.SaveAs(path)
}

func (s *excelSheet) Write(w io.Writer) error {
	return s.file.Write(w)
}

func (s *excelSheet) Close() error {
	return s.file.Close()
}

// setRow writes values at the next row and tracks column widths
func (s *excelSheet) setRow(values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, s.nextRow)
	if err != nil {
		return err
	}
	if err := s.file.SetSheetRow(s.sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", s.nextRow, err)
	}

	for i, v := range values {
		if i >= len(s.widths) {
			s.widths = append(s.widths, make([]int, i-len(s.widths)+1)...)
		}
		if n := len(cellText(v)); n > s.widths[i] {
			s.widths[i] = n
		}
	}
	return nil
}

// applyFormat styles rows first..last of col
func (s *excelSheet) applyFormat(col int, format ColumnFormat, first, last int) error {
	style := 0
	if format == FormatMoney {
		style = s.currencyStyle
	}
	top, err := excelize.CoordinatesToCellName(col, first)
	if err != nil {
		return err
	}
	bottom, err := excelize.CoordinatesToCellName(col, last)
	if err != nil {
		return err
	}
	if err := s.file.SetCellStyle(s.sheet, top, bottom, style); err != nil {
		return fmt.Errorf("failed to format %s:%s: %w", top, bottom, err)
	}
	return nil
}
