package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single normalized statement row. Charge and Credit
// are non-negative; a row may legally carry zero on both sides when the
// source line had no recognizable amounts.
type Transaction struct {
	Date               time.Time           `json:"fecha"`
	Description        string              `json:"descripcion"`
	Reference          string              `json:"referencia,omitempty"`
	Charge             decimal.Decimal     `json:"cargo"`
	Credit             decimal.Decimal     `json:"abono"`
	BalanceAfter       decimal.NullDecimal `json:"saldo,omitempty"`
	CleanDescription   string              `json:"concepto_limpio,omitempty"`
	SuggestedCategory  string              `json:"categoria_sugerida"`
	IsInternalTransfer bool                `json:"es_transferencia_interna"`
	CounterpartyName   string              `json:"beneficiario_detectado,omitempty"`
	TaxID              string              `json:"rfc_detectado,omitempty"`
}

// Kind labels the direction of a transaction.
type Kind string

const (
	KindCharge  Kind = "cargo"
	KindCredit  Kind = "abono"
	KindNeutral Kind = "neutral"
)

// Kind reports which side of the account the row moves. Rows with equal
// charge and credit (normally both zero) are neutral.
func (t Transaction) Kind() Kind {
	switch {
	case t.Charge.GreaterThan(t.Credit):
		return KindCharge
	case t.Credit.GreaterThan(t.Charge):
		return KindCredit
	default:
		return KindNeutral
	}
}

// Net returns the signed effect of the row, credits positive.
func (t Transaction) Net() decimal.Decimal {
	return t.Credit.Sub(t.Charge)
}

// Categories assigned by the classifier. The names are the labels the
// downstream analytics consume; CategoryOther is the fallback for rows
// no rule matches.
const (
	CategoryInternalTransfers = "transferencias_internas"
	CategorySuppliers         = "proveedores"
	CategoryPayroll           = "nominas"
	CategoryTaxes             = "impuestos"
	CategoryUtilities         = "servicios"
	CategoryClients           = "clientes"
	CategoryFinancing         = "financiamiento"
	CategoryOther             = "other"
)

// Bank placeholders used when no institution can be detected. Tabular
// sources carry the format name instead of a bank.
const (
	BankUnknown = "UNKNOWN"
	BankBBVA    = "BBVA"
	BankCSV     = "CSV"
	BankExcel   = "EXCEL"
)

// CurrencyMXN is the default statement currency.
const CurrencyMXN = "MXN"
