// Package importer runs the import pipeline end to end: it picks the
// adapter for the declared file type, parses the bytes and assembles
// the normalized statement. One call processes one file; nothing is
// shared between calls, so concurrent imports need no locking.
package importer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pymefin/edocuenta/internal/classify"
	"github.com/pymefin/edocuenta/internal/extractor"
	"github.com/pymefin/edocuenta/internal/models"
	"github.com/pymefin/edocuenta/internal/parser"
)

// ErrUnsupportedFormat is returned before any parsing when the
// declared file type has no adapter.
var ErrUnsupportedFormat = errors.New("unsupported file type")

// Stage names the pipeline phase an import failed in.
type Stage string

const (
	// StageFormat covers file type selection, before any bytes are read.
	StageFormat Stage = "formato"
	// StageDecode covers undecodable content: bad encodings, workbooks
	// no engine can open.
	StageDecode Stage = "decodificacion"
	// StageExtract covers documents with no machine-readable text.
	StageExtract Stage = "extraccion"
)

// ImportError wraps a fatal import failure with the stage it happened
// in. Row-level problems never surface here; those become diagnostics.
type ImportError struct {
	Stage Stage
	Err   error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("etapa %s: %v", e.Stage, e.Err)
}

func (e *ImportError) Unwrap() error { return e.Err }

// Result is the outcome of one import call.
type Result struct {
	ImportID    uuid.UUID
	Statement   *models.Statement
	Diagnostics []string
	Duration    time.Duration
}

// Options configures an Importer. The zero value is usable: MXN
// currency and a silent logger.
type Options struct {
	Currency string
	Logger   zerolog.Logger
}

// Importer owns one set of adapters and runs imports against them. The
// adapters are stateless, so a single Importer serves concurrent calls.
type Importer struct {
	pdf      *parser.PDFAdapter
	csv      *parser.CSVAdapter
	sheets   *parser.SpreadsheetAdapter
	currency string
	log      zerolog.Logger
}

// New builds an Importer with a shared bank detector and classifier
// behind all three adapters.
func New(opts Options) *Importer {
	if opts.Currency == "" {
		opts.Currency = models.CurrencyMXN
	}

	detector := classify.NewBankDetector()
	classifier := classify.NewClassifier()

	return &Importer{
		pdf:      parser.NewPDFAdapter(detector, classifier),
		csv:      parser.NewCSVAdapter(classifier),
		sheets:   parser.NewSpreadsheetAdapter(classifier),
		currency: opts.Currency,
		log:      opts.Logger,
	}
}

// Import parses one file and returns its normalized statement. The
// fileType decides the adapter: pdf, csv, or excel (xlsx and xls are
// accepted as synonyms). Unknown types fail in StageFormat before any
// bytes are touched.
func (i *Importer) Import(data []byte, fileType, filename string) (*Result, error) {
	start := time.Now()

	adapter, err := i.adapterFor(fileType)
	if err != nil {
		return nil, err
	}

	extraction, err := adapter.Extract(data, filename)
	if err != nil {
		return nil, wrapStage(err)
	}

	for _, diag := range extraction.Diagnostics {
		i.log.Debug().Str("archivo", filename).Str("detalle", diag).Msg("fila descartada")
	}

	statement := buildStatement(extraction, i.currency)
	result := &Result{
		ImportID:    uuid.New(),
		Statement:   statement,
		Diagnostics: extraction.Diagnostics,
		Duration:    time.Since(start),
	}

	i.log.Info().
		Str("archivo", filename).
		Str("banco", statement.Bank).
		Int("transacciones", len(statement.Transactions)).
		Int("descartadas", len(result.Diagnostics)).
		Bool("balance_verificado", statement.BalanceVerified()).
		Dur("duracion", result.Duration).
		Msg("importacion terminada")

	return result, nil
}

func (i *Importer) adapterFor(fileType string) (parser.Adapter, error) {
	switch strings.ToLower(fileType) {
	case "pdf":
		return i.pdf, nil
	case "csv":
		return i.csv, nil
	case "excel", "xlsx", "xls":
		return i.sheets, nil
	}
	return nil, &ImportError{
		Stage: StageFormat,
		Err:   fmt.Errorf("%w: %q", ErrUnsupportedFormat, fileType),
	}
}

// wrapStage classifies a fatal adapter error into its pipeline stage.
func wrapStage(err error) error {
	stage := StageDecode
	if errors.Is(err, extractor.ErrNoReadableText) {
		stage = StageExtract
	}
	return &ImportError{Stage: stage, Err: err}
}

// DetectFileType maps a filename extension to the declared type Import
// expects. Callers that let users upload arbitrary files use this
// before calling Import.
func DetectFileType(filename string) (string, error) {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".pdf"):
		return "pdf", nil
	case strings.HasSuffix(lower, ".csv"):
		return "csv", nil
	case strings.HasSuffix(lower, ".xlsx"), strings.HasSuffix(lower, ".xls"):
		return "excel", nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
}
