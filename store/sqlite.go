package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jagravi04/easy-bill-creator-app/billing"
	"github.com/jagravi04/easy-bill-creator-app/models"
	"github.com/samber/lo"
)

const invoiceSelectQuery = `SELECT id, invoice_number, client_name, client_email, client_address,
		issue_date, due_date, subtotal, tax, total, status, notes, created_at, updated_at
		FROM invoices`

const lineItemSelectQuery = `SELECT id, description, quantity, rate, amount
		FROM line_items WHERE invoice_id = ? ORDER BY position`

// SQLiteStore keeps invoices in a SQLite database opened by db.Open.
type SQLiteStore struct {
	db  *sql.DB
	ids billing.IDGenerator
	now func() time.Time
}

// NewSQLiteStore wraps a migrated database. A nil generator defaults to UUIDs.
func NewSQLiteStore(db *sql.DB, ids billing.IDGenerator) *SQLiteStore {
	if ids == nil {
		ids = billing.UUIDGenerator{}
	}
	return &SQLiteStore{db: db, ids: ids, now: time.Now}
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func scanInvoice(scanner interface{ Scan(...any) error }) (models.Invoice, error) {
	var (
		inv                  models.Invoice
		createdAt, updatedAt string
	)
	err := scanner.Scan(&inv.ID, &inv.InvoiceNumber, &inv.ClientName, &inv.ClientEmail, &inv.ClientAddress,
		&inv.IssueDate, &inv.DueDate, &inv.Subtotal, &inv.Tax, &inv.Total, &inv.Status, &inv.Notes,
		&createdAt, &updatedAt)
	if err != nil {
		return inv, err
	}
	if inv.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return inv, errors.Wrap(err, "parsing created_at")
	}
	if inv.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return inv, errors.Wrap(err, "parsing updated_at")
	}
	return inv, nil
}

func loadItems(ctx context.Context, q queryer, invoiceID string) ([]models.LineItem, error) {
	rows, err := q.QueryContext(ctx, lineItemSelectQuery, invoiceID)
	if err != nil {
		return nil, errors.Wrap(err, "querying line items")
	}
	defer rows.Close()

	items := []models.LineItem{}
	for rows.Next() {
		var item models.LineItem
		if err := rows.Scan(&item.ID, &item.Description, &item.Quantity, &item.Rate, &item.Amount); err != nil {
			return nil, errors.Wrap(err, "scanning line item")
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func getInvoice(ctx context.Context, q queryer, id string) (models.Invoice, error) {
	inv, err := scanInvoice(q.QueryRowContext(ctx, invoiceSelectQuery+" WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Invoice{}, notFound(id)
		}
		return models.Invoice{}, errors.Wrap(err, "querying invoice")
	}
	if inv.Items, err = loadItems(ctx, q, id); err != nil {
		return models.Invoice{}, err
	}
	return inv, nil
}

func writeItems(ctx context.Context, q queryer, invoiceID string, items []models.LineItem) error {
	if _, err := q.ExecContext(ctx, "DELETE FROM line_items WHERE invoice_id = ?", invoiceID); err != nil {
		return errors.Wrap(err, "clearing line items")
	}
	for pos, item := range items {
		_, err := q.ExecContext(ctx, `INSERT INTO line_items (invoice_id, position, id, description, quantity, rate, amount)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			invoiceID, pos, item.ID, item.Description, item.Quantity, item.Rate.String(), int64(item.Amount))
		if err != nil {
			return errors.Wrap(err, "inserting line item")
		}
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func (s *SQLiteStore) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return errors.Wrap(tx.Commit(), "committing transaction")
}

func (s *SQLiteStore) Add(ctx context.Context, inv models.Invoice) (models.Invoice, error) {
	inv = inv.Clone()
	inv.ID = s.ids.NewID()
	inv.CreatedAt = s.now().UTC()
	inv.UpdatedAt = inv.CreatedAt
	if inv.Items == nil {
		inv.Items = []models.LineItem{}
	}

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO invoices (id, invoice_number, client_name, client_email, client_address,
			issue_date, due_date, subtotal, tax, total, status, notes, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			inv.ID, inv.InvoiceNumber, inv.ClientName, inv.ClientEmail, inv.ClientAddress,
			inv.IssueDate, inv.DueDate, int64(inv.Subtotal), int64(inv.Tax), int64(inv.Total), string(inv.Status), inv.Notes,
			formatTime(inv.CreatedAt), formatTime(inv.UpdatedAt))
		if err != nil {
			return errors.Wrap(err, "inserting invoice")
		}
		return writeItems(ctx, tx, inv.ID, inv.Items)
	})
	if err != nil {
		return models.Invoice{}, err
	}
	return inv, nil
}

// Update reads, checks and writes inside one transaction. The pool holds a
// single connection, so concurrent updates are serialized.
func (s *SQLiteStore) Update(ctx context.Context, id string, patch models.InvoicePatch, checks ...Check) (models.Invoice, error) {
	var updated models.Invoice
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		current, err := getInvoice(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := runChecks(current, checks); err != nil {
			return err
		}
		updated = current.Apply(patch)
		updated.UpdatedAt = s.now().UTC()

		_, err = tx.ExecContext(ctx, `UPDATE invoices SET invoice_number = ?, client_name = ?, client_email = ?,
			client_address = ?, issue_date = ?, due_date = ?, subtotal = ?, tax = ?, total = ?, status = ?,
			notes = ?, updated_at = ? WHERE id = ?`,
			updated.InvoiceNumber, updated.ClientName, updated.ClientEmail, updated.ClientAddress,
			updated.IssueDate, updated.DueDate, int64(updated.Subtotal), int64(updated.Tax), int64(updated.Total), string(updated.Status),
			updated.Notes, formatTime(updated.UpdatedAt), id)
		if err != nil {
			return errors.Wrap(err, "updating invoice")
		}
		if patch.Items != nil {
			return writeItems(ctx, tx, id, updated.Items)
		}
		return nil
	})
	if err != nil {
		return models.Invoice{}, err
	}
	return updated, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM invoices WHERE id = ?", id)
		if err != nil {
			return errors.Wrap(err, "deleting invoice")
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return notFound(id)
		}
		// Explicit for DSNs opened without foreign key enforcement.
		_, err = tx.ExecContext(ctx, "DELETE FROM line_items WHERE invoice_id = ?", id)
		return errors.Wrap(err, "deleting line items")
	})
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (models.Invoice, error) {
	return getInvoice(ctx, s.db, id)
}

// List narrows by status in SQL and applies the search with
// ListFilter.Match, so results agree with MemoryStore for any input.
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]models.Invoice, error) {
	query := invoiceSelectQuery
	var args []any
	if filter.Status != "" {
		query += " WHERE status = ?"
		args = append(args, string(filter.Status))
	}
	query += " ORDER BY rowid"

	invoices, err := s.scanAll(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	invoices = lo.Filter(invoices, func(inv models.Invoice, _ int) bool {
		return filter.Match(inv)
	})
	// Items are loaded after the invoice rows are closed; the pool holds a
	// single connection.
	for i := range invoices {
		if invoices[i].Items, err = loadItems(ctx, s.db, invoices[i].ID); err != nil {
			return nil, err
		}
	}
	return invoices, nil
}

func (s *SQLiteStore) scanAll(ctx context.Context, query string, args ...any) ([]models.Invoice, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "querying invoices")
	}
	defer rows.Close()

	invoices := []models.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scanning invoice")
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}
