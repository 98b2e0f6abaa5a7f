package importer

import (
	"regexp"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pymefin/edocuenta/internal/models"
	"github.com/pymefin/edocuenta/internal/parse"
	"github.com/pymefin/edocuenta/internal/parser"
)

// Balance labels as Mexican statements print them, with the English
// variants some banks mix in. The amount group tolerates a currency
// symbol and integer amounts.
var (
	openingBalancePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)saldo\s*(?:anterior|inicial|previous)[\s:]*\$?\s*([\d,]+\.?\d*)`),
		regexp.MustCompile(`(?i)saldo\s*al\s*inicio[\s:]*\$?\s*([\d,]+\.?\d*)`),
	}
	closingBalancePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)saldo\s*(?:final|actual|current)[\s:]*\$?\s*([\d,]+\.?\d*)`),
		regexp.MustCompile(`(?i)saldo\s*al\s*corte[\s:]*\$?\s*([\d,]+\.?\d*)`),
	}
)

// buildStatement assembles the normalized statement from one adapter
// extraction. Transactions are sorted ascending by date with a stable
// sort, so rows sharing a date keep their parse order.
func buildStatement(ext *parser.Extraction, currency string) *models.Statement {
	stmt := &models.Statement{
		Bank:          ext.Bank,
		AccountNumber: ext.AccountNumber,
		Currency:      currency,
	}

	if len(ext.Transactions) == 0 {
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		stmt.PeriodStart = today
		stmt.PeriodEnd = today
		return stmt
	}

	txns := make([]models.Transaction, len(ext.Transactions))
	copy(txns, ext.Transactions)
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.Before(txns[j].Date)
	})

	stmt.Transactions = txns
	stmt.PeriodStart = txns[0].Date
	stmt.PeriodEnd = txns[len(txns)-1].Date
	for _, txn := range txns {
		stmt.TotalCharges = stmt.TotalCharges.Add(txn.Charge)
		stmt.TotalCredits = stmt.TotalCredits.Add(txn.Credit)
	}

	stmt.OpeningBalance = resolveOpeningBalance(ext.RawText, txns)
	stmt.ClosingBalance = resolveClosingBalance(ext.RawText, txns, stmt)
	return stmt
}

// resolveOpeningBalance prefers the balance printed on the document,
// then the first transaction's reported running balance, then zero.
func resolveOpeningBalance(rawText string, txns []models.Transaction) decimal.Decimal {
	if amount, ok := findBalance(rawText, openingBalancePatterns); ok {
		return amount
	}
	if first := txns[0].BalanceAfter; first.Valid {
		return first.Decimal
	}
	return decimal.Decimal{}
}

// resolveClosingBalance prefers the printed balance, then the last
// transaction's running balance, then derives it from the opening
// balance and the totals.
func resolveClosingBalance(rawText string, txns []models.Transaction, stmt *models.Statement) decimal.Decimal {
	if amount, ok := findBalance(rawText, closingBalancePatterns); ok {
		return amount
	}
	if last := txns[len(txns)-1].BalanceAfter; last.Valid {
		return last.Decimal
	}
	return stmt.OpeningBalance.Add(stmt.TotalCredits).Sub(stmt.TotalCharges)
}

func findBalance(text string, patterns []*regexp.Regexp) (decimal.Decimal, bool) {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return parse.Amount(m[1]), true
		}
	}
	return decimal.Decimal{}, false
}
