package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statement is the normalized result of importing one file.
type Statement struct {
	Bank           string          `json:"banco"`
	AccountNumber  string          `json:"cuenta,omitempty"`
	Currency       string          `json:"moneda"`
	PeriodStart    time.Time       `json:"fecha_inicio"`
	PeriodEnd      time.Time       `json:"fecha_fin"`
	OpeningBalance decimal.Decimal `json:"saldo_inicial"`
	ClosingBalance decimal.Decimal `json:"saldo_final"`
	Transactions   []Transaction   `json:"transacciones"`
	TotalCharges   decimal.Decimal `json:"total_cargos"`
	TotalCredits   decimal.Decimal `json:"total_abonos"`
}

// balanceTolerance absorbs cent-level rounding in bank-reported balances.
var balanceTolerance = decimal.NewFromFloat(0.01)

// BalanceVerified reports whether opening balance plus credits minus
// charges lands within one cent of the closing balance. A false result
// is advisory; it never blocks an import.
func (s Statement) BalanceVerified() bool {
	expected := s.OpeningBalance.Add(s.TotalCredits).Sub(s.TotalCharges)
	return expected.Sub(s.ClosingBalance).Abs().LessThan(balanceTolerance)
}

// CategoryTotals aggregates the rows of one category.
type CategoryTotals struct {
	Count        int             `json:"cantidad"`
	TotalCharges decimal.Decimal `json:"cargos"`
	TotalCredits decimal.Decimal `json:"abonos"`
	Net          decimal.Decimal `json:"neto"`
}

// CategorySummary maps a category name to its aggregate totals.
type CategorySummary map[string]CategoryTotals

// SummarizeByCategory recomputes the per-category rollup from the
// statement's transactions. Rows without a category count under
// CategoryOther.
func (s Statement) SummarizeByCategory() CategorySummary {
	summary := make(CategorySummary)
	for _, txn := range s.Transactions {
		cat := txn.SuggestedCategory
		if cat == "" {
			cat = CategoryOther
		}
		totals := summary[cat]
		totals.Count++
		totals.TotalCharges = totals.TotalCharges.Add(txn.Charge)
		totals.TotalCredits = totals.TotalCredits.Add(txn.Credit)
		totals.Net = totals.TotalCredits.Sub(totals.TotalCharges)
		summary[cat] = totals
	}
	return summary
}
