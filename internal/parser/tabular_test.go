package parser

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pymefin/edocuenta/internal/classify"
)

func TestFindColumn(t *testing.T) {
	headers := []string{"No. Movimiento", "Fecha Operacion", "Concepto", "Cargo", "Abono"}

	assert.Equal(t, 1, findColumn(headers, []string{"fecha", "date"}))
	assert.Equal(t, 2, findColumn(headers, []string{"descripcion", "concepto", "description"}))
	assert.Equal(t, 3, findColumn(headers, []string{"cargo", "debito", "debit"}))
	assert.Equal(t, -1, findColumn(headers, []string{"saldo", "balance"}))
	assert.Equal(t, -1, findColumn(headers, nil))
}

// The first header containing any alias wins, even when a later header
// is an exact match.
func TestFindColumnFirstHeaderWins(t *testing.T) {
	headers := []string{"fecha valor", "fecha"}
	assert.Equal(t, 0, findColumn(headers, []string{"fecha"}))
}

func TestTransactionFromRow(t *testing.T) {
	classifier := classify.NewClassifier()
	cols := mapColumns(
		[]string{"Fecha", "Detalle", "Retiro", "Ingreso", "Saldo", "Folio"},
		spreadsheetAliases,
	)

	record := []string{"15/03/2024", "Factura GODE561231GR8 consultoria", "2,500.00", "", "7,500.00", "F-1001"}
	txn, ok := transactionFromRow(record, cols, classifier)
	require.True(t, ok)

	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), txn.Date)
	assert.Equal(t, "Factura GODE561231GR8 consultoria", txn.Description)
	assert.Equal(t, "F-1001", txn.Reference)
	assert.True(t, txn.Charge.Equal(decimal.RequireFromString("2500.00")))
	assert.True(t, txn.Credit.IsZero())
	require.True(t, txn.BalanceAfter.Valid)
	assert.True(t, txn.BalanceAfter.Decimal.Equal(decimal.RequireFromString("7500.00")))
	assert.Equal(t, "GODE561231GR8", txn.TaxID)
}

func TestTransactionFromRowSkips(t *testing.T) {
	classifier := classify.NewClassifier()

	t.Run("unparseable date", func(t *testing.T) {
		cols := mapColumns([]string{"fecha", "descripcion"}, csvAliases)
		_, ok := transactionFromRow([]string{"pronto", "algo"}, cols, classifier)
		assert.False(t, ok)
	})

	t.Run("missing date column", func(t *testing.T) {
		cols := mapColumns([]string{"descripcion", "cargo"}, csvAliases)
		_, ok := transactionFromRow([]string{"algo", "100.00"}, cols, classifier)
		assert.False(t, ok)
	})

	t.Run("short row yields empty cells", func(t *testing.T) {
		cols := mapColumns([]string{"fecha", "descripcion", "cargo", "abono", "saldo"}, csvAliases)
		txn, ok := transactionFromRow([]string{"15/03/2024", "Venta mostrador"}, cols, classifier)
		require.True(t, ok)
		assert.True(t, txn.Charge.IsZero())
		assert.False(t, txn.BalanceAfter.Valid)
	})
}

// An empty balance cell means no reported balance, not a zero balance.
func TestTransactionFromRowEmptyBalance(t *testing.T) {
	classifier := classify.NewClassifier()
	cols := mapColumns([]string{"fecha", "descripcion", "saldo"}, csvAliases)

	txn, ok := transactionFromRow([]string{"15/03/2024", "Cobro venta", "  "}, cols, classifier)
	require.True(t, ok)
	assert.False(t, txn.BalanceAfter.Valid)
}
