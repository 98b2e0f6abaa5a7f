package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/pymefin/edocuenta/internal/config"
	"github.com/pymefin/edocuenta/internal/importer"
	"github.com/pymefin/edocuenta/internal/logger"
	"github.com/pymefin/edocuenta/internal/models"
	"github.com/pymefin/edocuenta/internal/writer"
)

const version = "1.0.0"

func main() {
	typeFlag := flag.String("type", "", "File type: pdf, csv, excel (detected from the extension if omitted)")
	outputFlag := flag.String("output", "", "Write the normalized statement to this CSV path")
	metadataFlag := flag.Bool("metadata", true, "Include statement metadata rows in the output CSV")
	limitFlag := flag.Int("limit", 0, "Print a preview of the first N transactions")
	versionFlag := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Importador de estados de cuenta bancarios

Convierte estados de cuenta (PDF, CSV, Excel) de bancos mexicanos en
transacciones normalizadas y clasificadas por categoria.

Usage:
  edocuenta [flags] <archivo> [archivo2 ...]

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Detectar el formato por la extension
  edocuenta estado_marzo.pdf

  # Forzar el tipo y exportar el CSV normalizado
  edocuenta --type=csv --output=normalizado.csv movimientos.txt

  # Vista previa de las primeras 10 transacciones
  edocuenta --limit=10 estado.xlsx

Formatos soportados:
  pdf    - Estados de cuenta PDF (BBVA con parser dedicado, resto generico)
  csv    - Exportes delimitados con fila de encabezados
  excel  - Libros xlsx y xls (primera hoja)
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("edocuenta v%s\n", version)
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	if *outputFlag != "" && flag.NArg() > 1 {
		fatalf("--output requiere un solo archivo de entrada\n")
	}

	cfg := config.Load()
	imp := importer.New(importer.Options{
		Currency: cfg.Currency,
		Logger:   logger.New(cfg.LogLevel),
	})

	opts := fileOptions{
		fileType: *typeFlag,
		output:   *outputFlag,
		metadata: *metadataFlag,
		limit:    *limitFlag,
		maxBytes: cfg.MaxFileBytes(),
	}

	for _, inputPath := range flag.Args() {
		if err := processFile(inputPath, opts, imp); err != nil {
			fmt.Fprintf(os.Stderr, "Error procesando %s: %v\n", inputPath, err)
			os.Exit(1)
		}
	}
}

type fileOptions struct {
	fileType string
	output   string
	metadata bool
	limit    int
	maxBytes int64
}

func processFile(inputPath string, opts fileOptions, imp *importer.Importer) error {
	info, err := os.Stat(inputPath)
	if err != nil {
		return fmt.Errorf("no se pudo leer el archivo: %w", err)
	}
	if info.Size() > opts.maxBytes {
		return fmt.Errorf("el archivo excede el limite de %d MB", opts.maxBytes/(1024*1024))
	}

	fileType := opts.fileType
	if fileType == "" {
		fileType, err = importer.DetectFileType(inputPath)
		if err != nil {
			return err
		}
	}

	fmt.Printf("Procesando: %s (%s)\n", inputPath, fileType)

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("no se pudo leer el archivo: %w", err)
	}

	result, err := imp.Import(data, fileType, inputPath)
	if err != nil {
		return err
	}

	printSummary(result)

	if opts.limit > 0 {
		printPreview(result.Statement, opts.limit)
	}

	if opts.output != "" {
		w := &writer.CSVWriter{IncludeMetadata: opts.metadata}
		if err := w.WriteToFile(opts.output, result.Statement); err != nil {
			return err
		}
		fmt.Printf("  Salida: %s\n", opts.output)
	}

	return nil
}

func printSummary(result *importer.Result) {
	stmt := result.Statement

	fmt.Printf("  Banco: %s\n", stmt.Bank)
	if stmt.AccountNumber != "" {
		fmt.Printf("  Cuenta: %s\n", stmt.AccountNumber)
	}
	fmt.Printf("  Periodo: %s - %s\n",
		stmt.PeriodStart.Format("02/01/2006"), stmt.PeriodEnd.Format("02/01/2006"))

	fmt.Printf("  Transacciones: %d", len(stmt.Transactions))
	if n := len(result.Diagnostics); n > 0 {
		fmt.Printf(" (%d filas descartadas)", n)
	}
	fmt.Println()

	fmt.Printf("  Cargos: $%s  Abonos: $%s\n",
		stmt.TotalCharges.StringFixed(2), stmt.TotalCredits.StringFixed(2))
	fmt.Printf("  Saldo inicial: $%s  Saldo final: $%s\n",
		stmt.OpeningBalance.StringFixed(2), stmt.ClosingBalance.StringFixed(2))
	verified := "no"
	if stmt.BalanceVerified() {
		verified = "si"
	}
	fmt.Printf("  Balance verificado: %s\n", verified)

	summary := stmt.SummarizeByCategory()
	if len(summary) > 0 {
		fmt.Println("  Resumen por categoria:")
		categories := make([]string, 0, len(summary))
		for cat := range summary {
			categories = append(categories, cat)
		}
		sort.Strings(categories)
		for _, cat := range categories {
			totals := summary[cat]
			fmt.Printf("    %-25s %3d mov  cargos %12s  abonos %12s\n",
				cat, totals.Count,
				totals.TotalCharges.StringFixed(2), totals.TotalCredits.StringFixed(2))
		}
	}

	for _, diag := range result.Diagnostics {
		fmt.Printf("  Aviso: %s\n", diag)
	}
}

func printPreview(stmt *models.Statement, limit int) {
	if limit > len(stmt.Transactions) {
		limit = len(stmt.Transactions)
	}
	if limit == 0 {
		return
	}

	fmt.Println("  Vista previa:")
	for _, txn := range stmt.Transactions[:limit] {
		amount := txn.Charge
		if txn.Kind() == models.KindCredit {
			amount = txn.Credit
		}
		fmt.Printf("    %s  %-7s  $%11s  %s\n",
			txn.Date.Format("02/01/2006"), string(txn.Kind()),
			amount.StringFixed(2), txn.Description)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
