package parser

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pymefin/edocuenta/internal/models"
)

func TestParseGeneric(t *testing.T) {
	adapter := newTestPDFAdapter()

	text := `BANCO REGIONAL ESTADO DE CUENTA
CARGO COMISION MANEJO 15/03/2024 1,200.00
SPEI ABONO CLIENTE 20/03/2024 REF 9912 3,000.00
sin fecha ni monto en esta linea`

	txns := adapter.parseGeneric(text)
	require.Len(t, txns, 2)

	first := txns[0]
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, "CARGO COMISION MANEJO", first.Description)
	assert.True(t, first.Charge.Equal(decimal.RequireFromString("1200.00")))
	assert.True(t, first.Credit.IsZero())
	assert.Equal(t, models.CategoryOther, first.SuggestedCategory)

	second := txns[1]
	assert.Equal(t, "SPEI ABONO CLIENTE", second.Description)
	assert.True(t, second.Charge.IsZero())
	assert.True(t, second.Credit.Equal(decimal.RequireFromString("3000.00")))
}

// Lines whose description names both sides put the amount on both.
func TestParseGenericBothKeywords(t *testing.T) {
	adapter := newTestPDFAdapter()

	txns := adapter.parseGeneric("CARGO Y ABONO MIXTO 15/03/2024 500.00")
	require.Len(t, txns, 1)

	assert.True(t, txns[0].Charge.Equal(decimal.RequireFromString("500.00")))
	assert.True(t, txns[0].Credit.Equal(decimal.RequireFromString("500.00")))
}

// Without the cargo or abono keywords a row still lands, amounts zero.
func TestParseGenericNoKeywords(t *testing.T) {
	adapter := newTestPDFAdapter()

	txns := adapter.parseGeneric("RETIRO CAJERO 20/03/2024 450.00")
	require.Len(t, txns, 1)

	assert.True(t, txns[0].Charge.IsZero())
	assert.True(t, txns[0].Credit.IsZero())
	assert.Equal(t, "RETIRO CAJERO", txns[0].Description)
}

func TestParseGenericTruncatesDescription(t *testing.T) {
	adapter := newTestPDFAdapter()

	long := strings.Repeat("X", 150)
	txns := adapter.parseGeneric(long + " 15/03/2024 100.00")
	require.Len(t, txns, 1)

	assert.Len(t, txns[0].Description, 100)
}
