// Package classify identifies the issuing institution of a statement
// and assigns spending categories to transaction descriptions. Both
// classifiers carry fixed rule tables built at construction; nothing
// mutates after New, so one instance is safe to share across imports.
package classify

import (
	"strings"

	"github.com/pymefin/edocuenta/internal/models"
)

// bankRule pairs an institution name with the markers that identify it
// in statement text. Markers mix marketing names with ABM routing
// prefixes as they appear in SPEI transfer descriptions.
type bankRule struct {
	name    string
	markers []string
}

// BankDetector matches statement text against an ordered marker table.
// Order matters: the first institution with a marker present wins, so
// BBVA's "014" is checked before Santander's "0140".
type BankDetector struct {
	rules []bankRule
}

// NewBankDetector builds a detector covering the Mexican institutions
// whose statements the importer understands.
func NewBankDetector() *BankDetector {
	return &BankDetector{rules: []bankRule{
		{models.BankBBVA, []string{"bbva", "bancomer", "014"}},
		{"SANTANDER", []string{"santander", "0140", "banco santander"}},
		{"BANORTE", []string{"banorte", "banorte-ixe", "058"}},
		{"HSBC", []string{"hsbc", "021"}},
		{"BANAMEX", []string{"banamex", "citibanamex", "002"}},
		{"SCOTIABANK", []string{"scotiabank", "044", "scotia"}},
		{"BANCOAZTECA", []string{"banco azteca", "062"}},
		{"INBURSA", []string{"inbursa", "036"}},
		{"INTERACCIONES", []string{"interacciones", "060"}},
		{"BANREGIO", []string{"banregio", "059"}},
		{"AFIRME", []string{"afirme", "061"}},
		{"MONEX", []string{"monex", "056"}},
		{"MULTIVA", []string{"multiva", "049"}},
	}}
}

// Detect returns the name of the first institution with a marker in
// text, or models.BankUnknown when none matches.
func (d *BankDetector) Detect(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range d.rules {
		for _, marker := range rule.markers {
			if strings.Contains(lower, marker) {
				return rule.name
			}
		}
	}
	return models.BankUnknown
}
