package parser

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pymefin/edocuenta/internal/classify"
	"github.com/pymefin/edocuenta/internal/models"
	"github.com/pymefin/edocuenta/internal/parse"
)

// columnMap holds the resolved index of each logical column, -1 when
// the header row named no such column.
type columnMap struct {
	date        int
	description int
	charge      int
	credit      int
	balance     int
	reference   int
}

// columnAliases lists the header substrings that select each logical
// column for one tabular source.
type columnAliases struct {
	date        []string
	description []string
	charge      []string
	credit      []string
	balance     []string
	reference   []string
}

// csvAliases covers the headers banks use in CSV exports.
var csvAliases = columnAliases{
	date:        []string{"fecha", "date"},
	description: []string{"descripcion", "concepto", "description"},
	charge:      []string{"cargo", "debito", "debit"},
	credit:      []string{"abono", "credito", "credit"},
	balance:     []string{"saldo", "balance"},
}

// spreadsheetAliases extends the CSV set with the wording seen in
// Excel exports, which also carry a reference column.
var spreadsheetAliases = columnAliases{
	date:        []string{"fecha", "date"},
	description: []string{"descripcion", "concepto", "description", "detalle"},
	charge:      []string{"cargo", "debito", "debit", "egreso", "retiro"},
	credit:      []string{"abono", "credito", "credit", "ingreso", "deposito"},
	balance:     []string{"saldo", "balance"},
	reference:   []string{"referencia", "ref", "numero", "folio"},
}

// mapColumns resolves a header row against an alias set. Matching is by
// lower-cased substring, and for each logical column the first header
// containing any alias wins.
func mapColumns(headers []string, aliases columnAliases) columnMap {
	return columnMap{
		date:        findColumn(headers, aliases.date),
		description: findColumn(headers, aliases.description),
		charge:      findColumn(headers, aliases.charge),
		credit:      findColumn(headers, aliases.credit),
		balance:     findColumn(headers, aliases.balance),
		reference:   findColumn(headers, aliases.reference),
	}
}

func findColumn(headers []string, options []string) int {
	for i, header := range headers {
		h := strings.ToLower(strings.TrimSpace(header))
		for _, option := range options {
			if strings.Contains(h, option) {
				return i
			}
		}
	}
	return -1
}

// transactionFromRow builds one transaction from a tabular row. A row
// without a resolvable date or description column, or whose date cell
// does not parse, is silently skipped per the false return.
func transactionFromRow(record []string, cols columnMap, classifier *classify.Classifier) (models.Transaction, bool) {
	if cols.date < 0 || cols.description < 0 {
		return models.Transaction{}, false
	}

	date, ok := parse.Date(field(record, cols.date))
	if !ok {
		return models.Transaction{}, false
	}

	description := field(record, cols.description)
	txn := models.Transaction{
		Date:              date,
		Description:       description,
		Reference:         strings.TrimSpace(field(record, cols.reference)),
		Charge:            parse.Amount(field(record, cols.charge)),
		Credit:            parse.Amount(field(record, cols.credit)),
		CleanDescription:  strings.TrimSpace(description),
		SuggestedCategory: classifier.Categorize(description),
		TaxID:             classifier.ExtractTaxID(description),
	}

	if cols.balance >= 0 {
		if raw := strings.TrimSpace(field(record, cols.balance)); raw != "" {
			txn.BalanceAfter = decimal.NullDecimal{Decimal: parse.Amount(raw), Valid: true}
		}
	}

	return txn, true
}

// field returns the idx'th cell, or "" when the row is shorter.
func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}
