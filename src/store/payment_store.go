package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/username/fopzvit/src/models"
)

var ErrPaymentNotFound = errors.New("payment not found")

// Dates cross the storage boundary as ISO-8601 strings.
const dateStorageLayout = time.RFC3339

// PaymentStore persists payments in SQLite.
type PaymentStore struct {
	db *sql.DB
}

func NewPaymentStore(db *sql.DB) *PaymentStore {
	return &PaymentStore{db: db}
}

func (s *PaymentStore) Insert(p *models.Payment) error {
	_, err := s.db.Exec(`INSERT INTO payments
		(id, date, currency_code, amount, amount_uah, counterparty, counterparty_account, description, exchange_rate)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Date.Format(dateStorageLayout), p.CurrencyCode, p.Amount, p.AmountUAH,
		p.Counterparty, p.CounterpartyAccount, p.Description, p.ExchangeRate)
	if err != nil {
		return fmt.Errorf("error inserting payment %s: %w", p.ID, err)
	}
	return nil
}

// InsertBatch inserts payments inside one transaction; used by the
// spreadsheet importer so a failed import leaves no partial rows.
func (s *PaymentStore) InsertBatch(payments []models.Payment) error {
	dbTx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("error beginning database transaction: %w", err)
	}
	defer dbTx.Rollback()

	stmt, err := dbTx.Prepare(`INSERT INTO payments
		(id, date, currency_code, amount, amount_uah, counterparty, counterparty_account, description, exchange_rate)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("error preparing insert statement: %w", err)
	}
	defer stmt.Close()

	for _, p := range payments {
		if _, err := stmt.Exec(p.ID, p.Date.Format(dateStorageLayout), p.CurrencyCode, p.Amount, p.AmountUAH,
			p.Counterparty, p.CounterpartyAccount, p.Description, p.ExchangeRate); err != nil {
			return fmt.Errorf("error inserting payment %s: %w", p.ID, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("error committing payments: %w", err)
	}
	return nil
}

// GetByID returns one payment or ErrPaymentNotFound.
func (s *PaymentStore) GetByID(id string) (*models.Payment, error) {
	row := s.db.QueryRow(`SELECT id, date, currency_code, amount, amount_uah,
		counterparty, counterparty_account, description, exchange_rate
		FROM payments WHERE id = ?`, id)
	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("error querying payment %s: %w", id, err)
	}
	return p, nil
}

func (s *PaymentStore) Delete(id string) error {
	res, err := s.db.Exec("DELETE FROM payments WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("error deleting payment %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking delete result for payment %s: %w", id, err)
	}
	if affected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

// ListAll returns every stored payment, newest first.
func (s *PaymentStore) ListAll() ([]models.Payment, error) {
	return s.list(`SELECT id, date, currency_code, amount, amount_uah,
		counterparty, counterparty_account, description, exchange_rate
		FROM payments ORDER BY date DESC, id DESC`)
}

// ListByYear returns the payments whose date falls in the given
// calendar year, oldest first.
func (s *PaymentStore) ListByYear(year int) ([]models.Payment, error) {
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC).Format(dateStorageLayout)
	end := time.Date(year+1, 1, 1, 0, 0, 0, 0, time.UTC).Format(dateStorageLayout)
	return s.list(`SELECT id, date, currency_code, amount, amount_uah,
		counterparty, counterparty_account, description, exchange_rate
		FROM payments WHERE date >= ? AND date < ? ORDER BY date ASC, id ASC`, start, end)
}

func (s *PaymentStore) list(query string, args ...interface{}) ([]models.Payment, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying payments: %w", err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning payment: %w", err)
		}
		payments = append(payments, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over payments: %w", err)
	}
	return payments, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPayment(row rowScanner) (*models.Payment, error) {
	var p models.Payment
	var dateStr string
	var account, description sql.NullString
	var rate sql.NullFloat64

	if err := row.Scan(&p.ID, &dateStr, &p.CurrencyCode, &p.Amount, &p.AmountUAH,
		&p.Counterparty, &account, &description, &rate); err != nil {
		return nil, err
	}

	date, err := time.Parse(dateStorageLayout, dateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid stored payment date %q: %w", dateStr, err)
	}
	p.Date = date
	p.CounterpartyAccount = account.String
	p.Description = description.String
	p.ExchangeRate = rate.Float64
	return &p, nil
}
