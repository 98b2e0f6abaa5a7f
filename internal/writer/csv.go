package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"

	"github.com/pymefin/edocuenta/internal/models"
)

const dateLayout = "02/01/2006"

// CSVWriter writes a normalized statement to CSV format.
type CSVWriter struct {
	IncludeMetadata bool
}

// WriteToFile writes the statement to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, stmt *models.Statement) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, stmt)
}

// Write writes the statement in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, stmt *models.Statement) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	// Statement metadata as comment rows ahead of the column header
	if w.IncludeMetadata {
		writer.Write([]string{"# Banco", stmt.Bank})
		if stmt.AccountNumber != "" {
			writer.Write([]string{"# Cuenta", stmt.AccountNumber})
		}
		writer.Write([]string{"# Moneda", stmt.Currency})
		writer.Write([]string{"# Periodo", fmt.Sprintf("%s - %s",
			stmt.PeriodStart.Format(dateLayout), stmt.PeriodEnd.Format(dateLayout))})
		writer.Write([]string{"# Saldo inicial", stmt.OpeningBalance.StringFixed(2)})
		writer.Write([]string{"# Saldo final", stmt.ClosingBalance.StringFixed(2)})
		writer.Write([]string{"# Balance verificado", yesNo(stmt.BalanceVerified())})
	}

	header := []string{"Fecha", "Descripcion", "Categoria", "Referencia", "Cargo", "Abono", "Saldo", "RFC"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, txn := range stmt.Transactions {
		row := []string{
			txn.Date.Format(dateLayout),
			txn.Description,
			txn.SuggestedCategory,
			txn.Reference,
			formatAmount(txn.Charge),
			formatAmount(txn.Credit),
			formatBalance(txn.BalanceAfter),
			txn.TaxID,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}

// formatAmount renders a movement amount, leaving the unused side of
// the cargo/abono pair blank.
func formatAmount(amount decimal.Decimal) string {
	if amount.IsZero() {
		return ""
	}
	return amount.StringFixed(2)
}

func formatBalance(balance decimal.NullDecimal) string {
	if !balance.Valid {
		return ""
	}
	return balance.Decimal.StringFixed(2)
}

func yesNo(v bool) string {
	if v {
		return "si"
	}
	return "no"
}
