package parser

import (
	"bytes"
	"errors"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/pymefin/edocuenta/internal/classify"
	"github.com/pymefin/edocuenta/internal/models"
)

// SpreadsheetAdapter reads xlsx and legacy xls workbooks. Only the
// first sheet is consulted and its first row must be the headers.
type SpreadsheetAdapter struct {
	classifier *classify.Classifier
}

// NewSpreadsheetAdapter builds a spreadsheet adapter around the shared
// classifier.
func NewSpreadsheetAdapter(classifier *classify.Classifier) *SpreadsheetAdapter {
	return &SpreadsheetAdapter{classifier: classifier}
}

// Extract loads the workbook and parses its rows. A workbook neither
// reader can open is a fatal error; individual rows that do not parse
// are skipped.
func (a *SpreadsheetAdapter) Extract(data []byte, filename string) (*Extraction, error) {
	rows, err := readWorkbookRows(data, filename)
	if err != nil {
		return nil, err
	}

	ext := &Extraction{Bank: models.BankExcel}
	if len(rows) == 0 {
		return ext, nil
	}

	cols := mapColumns(rows[0], spreadsheetAliases)
	for _, record := range rows[1:] {
		txn, ok := transactionFromRow(record, cols, a.classifier)
		if !ok {
			continue
		}
		ext.Transactions = append(ext.Transactions, txn)
	}

	return ext, nil
}

// readWorkbookRows picks the reader from the filename extension and
// falls back to the other engine when that one cannot open the data,
// because uploads are routinely misnamed.
func readWorkbookRows(data []byte, filename string) ([][]string, error) {
	if strings.HasSuffix(strings.ToLower(filename), ".xls") {
		rows, err := readXLSRows(data)
		if err == nil {
			return rows, nil
		}
		return readXLSXRows(data)
	}

	rows, err := readXLSXRows(data)
	if err == nil {
		return rows, nil
	}
	return readXLSRows(data)
}

func readXLSXRows(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	return f.GetRows(sheets[0])
}

func readXLSRows(data []byte) ([][]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, err
	}
	if wb.NumSheets() == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, errors.New("workbook first sheet is unreadable")
	}

	var rows [][]string
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		var cells []string
		for j := 0; j < row.LastCol(); j++ {
			cells = append(cells, row.Col(j))
		}
		rows = append(rows, cells)
	}
	return rows, nil
}
