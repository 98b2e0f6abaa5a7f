package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pymefin/edocuenta/internal/models"
)

func TestDetect(t *testing.T) {
	detector := NewBankDetector()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"bbva by name", "Estado de Cuenta BBVA México", "BBVA"},
		{"bbva by legacy name", "BANCOMER S.A. Institución de Banca Múltiple", "BBVA"},
		{"santander", "Banco Santander México", "SANTANDER"},
		{"banorte", "GRUPO FINANCIERO BANORTE", "BANORTE"},
		{"banamex", "Citibanamex cuenta de cheques", "BANAMEX"},
		{"scotiabank", "scotia wealth management", "SCOTIABANK"},
		{"azteca", "BANCO AZTECA SA", "BANCOAZTECA"},
		{"routing code", "CLABE 058597000012345678", "BANORTE"},
		{"unknown", "estado de cuenta generico", models.BankUnknown},
		{"empty", "", models.BankUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.Detect(tt.text))
		})
	}
}

// The marker table is ordered, so a BBVA marker that is a prefix of
// another bank's marker resolves to BBVA.
func TestDetectOrder(t *testing.T) {
	detector := NewBankDetector()
	assert.Equal(t, "BBVA", detector.Detect("sucursal 0140"))
}
