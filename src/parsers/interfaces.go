package parsers

import (
	"io"

	"github.com/username/fopzvit/src/models"
)

// StatementParser turns an uploaded bank statement into normalized
// payments according to an import config.
type StatementParser interface {
	Parse(file io.Reader, config *models.ImportConfig) ([]models.ParsedPayment, error)
}
