package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pymefin/edocuenta/internal/models"
	"github.com/pymefin/edocuenta/internal/parse"
)

// bbvaLinePattern matches the movement rows BBVA prints: a day-first
// date, a description, then up to three amounts in cargo, abono, saldo
// order. Any of the amounts may be absent; they fill left to right.
var bbvaLinePattern = regexp.MustCompile(`^(\d{2}/\d{2}/\d{4})\s+(.+?)(?:\s+([\d,]+\.\d{2}))?(?:\s+([\d,]+\.\d{2}))?(?:\s+([\d,]+\.\d{2}))?\s*$`)

// parseBBVA reads the movement table line by line. Lines that do not
// look like movements (headers, footers, page furniture) simply do not
// match.
func (a *PDFAdapter) parseBBVA(text string) []models.Transaction {
	var txns []models.Transaction

	for _, line := range strings.Split(text, "\n") {
		m := bbvaLinePattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}

		date, ok := parse.Date(m[1])
		if !ok {
			continue
		}

		description := strings.TrimSpace(m[2])
		txn := models.Transaction{
			Date:              date,
			Description:       description,
			Charge:            parse.Amount(m[3]),
			Credit:            parse.Amount(m[4]),
			SuggestedCategory: a.classifier.Categorize(description),
		}
		if m[5] != "" {
			txn.BalanceAfter = decimal.NullDecimal{Decimal: parse.Amount(m[5]), Valid: true}
		}

		txns = append(txns, txn)
	}

	return txns
}
