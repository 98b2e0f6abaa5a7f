package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pymefin/edocuenta/internal/models"
)

func TestCategorize(t *testing.T) {
	classifier := NewClassifier()

	tests := []struct {
		name        string
		description string
		want        string
	}{
		{"internal transfer", "TRASPASO ENTRE CUENTAS PROPIAS", models.CategoryInternalTransfers},
		{"spei own account", "SPEI CUENTA PROPIA 012345", models.CategoryInternalTransfers},
		{"supplier invoice", "PAGO FACTURA A-1023", models.CategorySuppliers},
		{"supplier transfer", "TRANSFERENCIA A PROVEEDOR ACME SA", models.CategorySuppliers},
		{"payroll", "Pago de nómina a empleado", models.CategoryPayroll},
		{"payroll unaccented", "DISPERSION NOMINA QUINCENAL", models.CategoryPayroll},
		{"taxes", "PAGO PROVISIONAL ISR", models.CategoryTaxes},
		{"utilities", "COMISIÓN BANCARIA MANEJO DE CUENTA", models.CategoryUtilities},
		{"clients", "DEPOSITO CLIENTE MUEBLERIA LOPEZ", models.CategoryClients},
		{"financing", "AMORTIZACIÓN CREDITO PYME", models.CategoryFinancing},
		{"no match", "RETIRO CAJERO AUTOMATICO", models.CategoryOther},
		{"empty", "", models.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Categorize(tt.description))
		})
	}
}

// Rule order decides ties: a description mentioning both an internal
// transfer and a supplier resolves to the earlier rule.
func TestCategorizePrecedence(t *testing.T) {
	classifier := NewClassifier()

	got := classifier.Categorize("TRANSFERENCIA ENTRE CUENTAS PARA PAGO PROVEEDOR")
	assert.Equal(t, models.CategoryInternalTransfers, got)
}

func TestExtractTaxID(t *testing.T) {
	classifier := NewClassifier()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"persona fisica 13 chars", "PAGO FACTURA GODE561231GR8 GRACIAS", "GODE561231GR8"},
		{"persona moral 12 chars", "TRANSFERENCIA ABC010101AB9", "ABC010101AB9"},
		{"lower case input", "factura de gode561231gr8", "GODE561231GR8"},
		{"embedded in longer run", "REF GODE561231GR89X SUC 4", ""},
		{"no rfc", "PAGO DE SERVICIOS", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.ExtractTaxID(tt.text))
		})
	}
}
