package parser

import (
	"regexp"

	"github.com/pymefin/edocuenta/internal/classify"
	"github.com/pymefin/edocuenta/internal/extractor"
	"github.com/pymefin/edocuenta/internal/models"
)

// PDFAdapter extracts transactions from statement PDFs. The issuing
// bank is detected from the page text; banks with a dedicated line
// parser get it, everything else falls through to the generic one.
type PDFAdapter struct {
	detector   *classify.BankDetector
	classifier *classify.Classifier
}

// NewPDFAdapter builds a PDF adapter around the shared detector and
// classifier.
func NewPDFAdapter(detector *classify.BankDetector, classifier *classify.Classifier) *PDFAdapter {
	return &PDFAdapter{detector: detector, classifier: classifier}
}

// Extract pulls the text out of the PDF, identifies the bank and runs
// the matching line parser. The only fatal error is a document no
// extraction method can read.
func (a *PDFAdapter) Extract(data []byte, filename string) (*Extraction, error) {
	text, err := extractor.Text(data)
	if err != nil {
		return nil, err
	}

	bank := a.detector.Detect(text)

	var txns []models.Transaction
	switch bank {
	case models.BankBBVA:
		txns = a.parseBBVA(text)
	default:
		txns = a.parseGeneric(text)
	}

	return &Extraction{
		Bank:          bank,
		AccountNumber: extractAccountNumber(text),
		Transactions:  txns,
		RawText:       text,
	}, nil
}

// Account number labels as Mexican banks print them. The masked form
// keeps only the visible last four digits.
var accountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)cuenta[:\s]+(\d{10,20})`),
	regexp.MustCompile(`(?i)no\.?\s*cuenta[:\s]+(\d{10,20})`),
	regexp.MustCompile(`(?i)account[:\s]+(\d{10,20})`),
	regexp.MustCompile(`\*{4,}(\d{4})`),
}

func extractAccountNumber(text string) string {
	for _, re := range accountPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}
