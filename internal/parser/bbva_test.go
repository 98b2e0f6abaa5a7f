package parser

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pymefin/edocuenta/internal/classify"
	"github.com/pymefin/edocuenta/internal/models"
)

func newTestPDFAdapter() *PDFAdapter {
	return NewPDFAdapter(classify.NewBankDetector(), classify.NewClassifier())
}

func TestParseBBVA(t *testing.T) {
	adapter := newTestPDFAdapter()

	text := `ESTADO DE CUENTA BBVA BANCOMER
Periodo: marzo 2024
01/03/2024 PAGO FACTURA PROVEEDOR ACME 1,500.00 0.00 8,500.00
05/03/2024 SPEI NOMINA EMPLEADOS 2,000.00 0.00 6,500.00
12/03/2024 COMISION BANCARIA 58.00
TOTAL DEL PERIODO 10,000.00`

	txns := adapter.parseBBVA(text)
	require.Len(t, txns, 3)

	first := txns[0]
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, "PAGO FACTURA PROVEEDOR ACME", first.Description)
	assert.True(t, first.Charge.Equal(decimal.RequireFromString("1500.00")))
	assert.True(t, first.Credit.IsZero())
	require.True(t, first.BalanceAfter.Valid)
	assert.True(t, first.BalanceAfter.Decimal.Equal(decimal.RequireFromString("8500.00")))
	assert.Equal(t, models.CategorySuppliers, first.SuggestedCategory)

	second := txns[1]
	assert.Equal(t, models.CategoryPayroll, second.SuggestedCategory)
	assert.True(t, second.Charge.Equal(decimal.RequireFromString("2000.00")))

	// Single-amount lines fill the charge side and carry no balance
	third := txns[2]
	assert.Equal(t, models.CategoryUtilities, third.SuggestedCategory)
	assert.True(t, third.Charge.Equal(decimal.RequireFromString("58.00")))
	assert.False(t, third.BalanceAfter.Valid)
}

// Two amounts fill cargo then abono, leaving the balance null.
func TestParseBBVATwoAmounts(t *testing.T) {
	adapter := newTestPDFAdapter()

	txns := adapter.parseBBVA("05/03/2024 SPEI RECIBIDO 0.00 3,000.00")
	require.Len(t, txns, 1)

	assert.True(t, txns[0].Charge.IsZero())
	assert.True(t, txns[0].Credit.Equal(decimal.RequireFromString("3000.00")))
	assert.False(t, txns[0].BalanceAfter.Valid)
}

func TestParseBBVASkipsBadDates(t *testing.T) {
	adapter := newTestPDFAdapter()

	txns := adapter.parseBBVA("99/99/2024 MOVIMIENTO IMPOSIBLE 100.00")
	assert.Empty(t, txns)
}
