package parser

import (
	"regexp"
	"strings"

	"github.com/pymefin/edocuenta/internal/models"
	"github.com/pymefin/edocuenta/internal/parse"
)

// genericLinePattern finds a date-like token followed somewhere on the
// line by an amount with two decimals. It is deliberately loose; it is
// the last resort for banks without a dedicated parser.
var genericLinePattern = regexp.MustCompile(`(\d{1,2}[/-]\d{1,2}[/-]\d{2,4}).*?(\d{1,3}(?:,\d{3})*\.\d{2})`)

// maxGenericDescription caps the reconstructed description length.
const maxGenericDescription = 100

// parseGeneric scans every line for a date and an amount. The text
// around the match becomes the description, and the cargo and abono
// keywords in it decide which side the amount lands on. Rows parsed
// this way are not classified; the caller gets them under the default
// category.
func (a *PDFAdapter) parseGeneric(text string) []models.Transaction {
	var txns []models.Transaction

	for _, line := range strings.Split(text, "\n") {
		m := genericLinePattern.FindStringSubmatchIndex(line)
		if m == nil {
			continue
		}

		date, ok := parse.Date(line[m[2]:m[3]])
		if !ok {
			continue
		}

		description := strings.TrimSpace(line[:m[0]] + line[m[1]:])
		amount := parse.Amount(line[m[4]:m[5]])

		lower := strings.ToLower(description)
		txn := models.Transaction{
			Date:              date,
			Description:       truncateRunes(description, maxGenericDescription),
			SuggestedCategory: models.CategoryOther,
		}
		if strings.Contains(lower, "cargo") {
			txn.Charge = amount
		}
		if strings.Contains(lower, "abono") {
			txn.Credit = amount
		}

		txns = append(txns, txn)
	}

	return txns
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
