package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pymefin/edocuenta/internal/classify"
	"github.com/pymefin/edocuenta/internal/models"
)

// CSVAdapter reads delimiter-separated statement exports. The first
// row is taken as headers; the delimiter is sniffed from the content.
type CSVAdapter struct {
	classifier *classify.Classifier
}

// NewCSVAdapter builds a CSV adapter around the shared classifier.
func NewCSVAdapter(classifier *classify.Classifier) *CSVAdapter {
	return &CSVAdapter{classifier: classifier}
}

// Extract parses the CSV body row by row. Unreadable rows are recorded
// as diagnostics and skipped; only undecodable bytes abort the import.
func (a *CSVAdapter) Extract(data []byte, filename string) (*Extraction, error) {
	if !utf8.Valid(data) {
		return nil, ErrInvalidEncoding
	}
	content := string(data)

	reader := csv.NewReader(strings.NewReader(content))
	reader.Comma = sniffDelimiter(content)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	ext := &Extraction{Bank: models.BankCSV, RawText: content}

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return ext, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}
	cols := mapColumns(header, csvAliases)

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			ext.Diagnostics = append(ext.Diagnostics, fmt.Sprintf("fila descartada: %v", err))
			continue
		}

		txn, ok := transactionFromRow(record, cols, a.classifier)
		if !ok {
			continue
		}
		ext.Transactions = append(ext.Transactions, txn)
	}

	return ext, nil
}

// csvDelimiters in sniffing order; ties keep the earlier candidate.
var csvDelimiters = []rune{',', ';', '\t', '|'}

// sniffDelimiter counts each candidate in the first 1000 characters of
// the content and returns the most frequent one, defaulting to comma.
func sniffDelimiter(content string) rune {
	sample := content
	if len(sample) > 1000 {
		sample = sample[:1000]
	}

	best := ','
	bestCount := 0
	for _, candidate := range csvDelimiters {
		if count := strings.Count(sample, string(candidate)); count > bestCount {
			bestCount = count
			best = candidate
		}
	}
	return best
}
