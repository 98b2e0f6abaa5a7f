// Package parser converts raw statement files into normalized
// transactions. Each source format has its own adapter; the importer
// picks one from the declared file type and wraps whatever fatal error
// it returns with the failing pipeline stage.
package parser

import (
	"errors"

	"github.com/pymefin/edocuenta/internal/models"
)

// ErrInvalidEncoding reports text input that is not valid UTF-8. The
// whole file is rejected because a mangled encoding corrupts every row.
var ErrInvalidEncoding = errors.New("file content is not valid utf-8")

// Extraction is everything an adapter recovered from one file. RawText
// is populated only for sources that carry loose text around the rows
// (PDF pages, the CSV body); the statement builder mines it for the
// printed balances and the account number patterns.
type Extraction struct {
	Bank          string
	AccountNumber string
	Transactions  []models.Transaction
	RawText       string
	Diagnostics   []string
}

// Adapter reads statement bytes in one source format. Fatal errors are
// reserved for whole-input failures; row-level problems become
// diagnostics on the Extraction.
type Adapter interface {
	Extract(data []byte, filename string) (*Extraction, error)
}
