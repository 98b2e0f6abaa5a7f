package classify

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pymefin/edocuenta/internal/models"
)

// categoryRule pairs a category with the description patterns that
// select it.
type categoryRule struct {
	category string
	patterns []*regexp.Regexp
}

// Classifier assigns spending categories to transaction descriptions
// and pulls RFC taxpayer ids out of free text. Rules run in declaration
// order and the first match wins, so internal transfers shadow the
// broader supplier and client rules.
type Classifier struct {
	rules []categoryRule
}

// NewClassifier builds the classifier with the SMB category rules.
func NewClassifier() *Classifier {
	return &Classifier{rules: []categoryRule{
		{models.CategoryInternalTransfers, compileAll(
			`transferencia.*misma empresa`,
			`traspaso.*cuenta`,
			`spei.*propia`,
			`transferencia entre cuentas`,
		)},
		{models.CategorySuppliers, compileAll(
			`pago.*proveedor`,
			`factura`,
			`pago a [\w\s]+`,
			`transferencia.*proveedor`,
		)},
		{models.CategoryPayroll, compileAll(
			`n[oó]mina`,
			`pago.*sueldo`,
			`salario`,
			`transferencia.*empleado`,
			`spei.*nomin`,
		)},
		{models.CategoryTaxes, compileAll(
			`sat`,
			`impuesto`,
			`iva`,
			`isr`,
			`pago provisional`,
			`declaraci[oó]n`,
		)},
		{models.CategoryUtilities, compileAll(
			`luz`,
			`agua`,
			`tel[eé]fono`,
			`internet`,
			`comisi[oó]n bancaria`,
			`cuota`,
			`mantenimiento`,
		)},
		{models.CategoryClients, compileAll(
			`pago.*cliente`,
			`deposito.*cliente`,
			`transferencia.*cliente`,
			`venta`,
			`cobro`,
		)},
		{models.CategoryFinancing, compileAll(
			`pago.*cr[eé]dito`,
			`amortizaci[oó]n`,
			`intereses`,
			`comisi[oó]n.*apertura`,
		)},
	}}
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}
	return compiled
}

// Categorize returns the category of the first rule matching the
// lower-cased description, or models.CategoryOther when none does.
func (c *Classifier) Categorize(description string) string {
	lower := strings.ToLower(description)
	for _, rule := range c.rules {
		for _, re := range rule.patterns {
			if re.MatchString(lower) {
				return rule.category
			}
		}
	}
	return models.CategoryOther
}

// rfcPattern matches the SAT taxpayer id shape: three or four letters,
// a six digit date, and a two or three character homoclave. The word
// boundaries keep it from firing inside longer reference numbers.
var rfcPattern = regexp.MustCompile(`\b[A-Z&Ñ]{3,4}[0-9]{6}[A-Z0-9]{2,3}\b`)

// ExtractTaxID returns the first RFC-shaped token found in text, upper
// cased, or "" when nothing of the right length is present. The check
// is structural only; no checksum validation is applied.
func (c *Classifier) ExtractTaxID(text string) string {
	m := rfcPattern.FindString(strings.ToUpper(text))
	if l := utf8.RuneCountInString(m); l == 12 || l == 13 {
		return m
	}
	return ""
}
