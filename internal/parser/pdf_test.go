package parser

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pymefin/edocuenta/internal/extractor"
	"github.com/pymefin/edocuenta/internal/models"
)

// statementPDF builds a one-stream document the raw scanner can read.
// Each line becomes its own Tj string separated by a Td reposition.
func statementPDF(lines ...string) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n1 0 obj\n<< /Length 0 >>\nstream\nBT\n/F1 10 Tf\n1 0 0 1 50 700 Td\n")
	for i, line := range lines {
		if i > 0 {
			buf.WriteString("0 -14 Td\n")
		}
		fmt.Fprintf(&buf, "(%s) Tj\n", line)
	}
	buf.WriteString("ET\nendstream\nendobj\n%%EOF\n")
	return buf.Bytes()
}

func TestPDFAdapterBBVA(t *testing.T) {
	adapter := newTestPDFAdapter()
	data := statementPDF(
		"ESTADO DE CUENTA BBVA BANCOMER",
		"No. Cuenta: 01234567890",
		"01/03/2024 PAGO FACTURA PROVEEDOR ACME 1,500.00 0.00 8,500.00",
		"05/03/2024 DEPOSITO CLIENTE MAYORISTA 0.00 3,000.00 11,500.00",
	)

	extraction, err := adapter.Extract(data, "marzo.pdf")
	require.NoError(t, err)

	assert.Equal(t, models.BankBBVA, extraction.Bank)
	assert.Equal(t, "01234567890", extraction.AccountNumber)
	assert.Contains(t, extraction.RawText, "PAGO FACTURA PROVEEDOR ACME")
	require.Len(t, extraction.Transactions, 2)

	assert.True(t, extraction.Transactions[0].Charge.Equal(decimal.RequireFromString("1500.00")))
	assert.Equal(t, models.CategorySuppliers, extraction.Transactions[0].SuggestedCategory)
	assert.True(t, extraction.Transactions[1].Credit.Equal(decimal.RequireFromString("3000.00")))
	assert.Equal(t, models.CategoryClients, extraction.Transactions[1].SuggestedCategory)
}

// Statements from banks without a dedicated parser go through the
// generic line scan and keep the UNKNOWN bank label.
func TestPDFAdapterUnknownBank(t *testing.T) {
	adapter := newTestPDFAdapter()
	data := statementPDF(
		"BANCO REGIONAL DEL NORTE ESTADO DE CUENTA",
		"CARGO COMISION MANEJO DE CUENTA 15/03/2024 1,200.00",
	)

	extraction, err := adapter.Extract(data, "marzo.pdf")
	require.NoError(t, err)

	assert.Equal(t, models.BankUnknown, extraction.Bank)
	assert.Empty(t, extraction.AccountNumber)
	require.Len(t, extraction.Transactions, 1)
	assert.True(t, extraction.Transactions[0].Charge.Equal(decimal.RequireFromString("1200.00")))
	assert.Equal(t, models.CategoryOther, extraction.Transactions[0].SuggestedCategory)
}

func TestPDFAdapterUnreadable(t *testing.T) {
	adapter := newTestPDFAdapter()

	_, err := adapter.Extract([]byte("not a pdf"), "roto.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, extractor.ErrNoReadableText)
}
