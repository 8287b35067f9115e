package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL.
type InvoiceRepo struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository construye el adaptador de persistencia para facturas.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepo {
	return &InvoiceRepo{pool: pool}
}

// List devuelve todas las facturas ordenadas por id ascendente.
func (r *InvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, comp_code FROM invoices ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.CompCode); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// GetByID obtiene una factura por id. Devuelve (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	query := `
		SELECT id, comp_code, amt, paid, add_date, paid_date
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// ListIDsByCompany devuelve los ids de factura de una empresa.
func (r *InvoiceRepo) ListIDsByCompany(ctx context.Context, compCode string) ([]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM invoices WHERE comp_code = $1 ORDER BY id`, compCode)
	if err != nil {
		return nil, fmt.Errorf("list invoice ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan invoice id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Create persiste la factura. La base asigna id, paid=false y add_date=now;
// los valores generados quedan en inv. La existencia de comp_code la valida
// la foreign key, no un pre-chequeo.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	query := `
		INSERT INTO invoices (comp_code, amt)
		VALUES ($1, $2)
		RETURNING id, comp_code, amt, paid, add_date, paid_date`
	err := r.pool.QueryRow(ctx, query, inv.CompCode, inv.Amt).Scan(
		&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: company %q", domain.ErrInvalidReference, inv.CompCode)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Update escribe amt, paid y paid_date y devuelve la fila resultante.
// Cero filas (RETURNING vacío) = el id no existe.
func (r *InvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) (*entity.Invoice, error) {
	query := `
		UPDATE invoices SET amt = $2, paid = $3, paid_date = $4
		WHERE id = $1
		RETURNING id, comp_code, amt, paid, add_date, paid_date`
	var out entity.Invoice
	err := r.pool.QueryRow(ctx, query, inv.ID, inv.Amt, inv.Paid, inv.PaidDate).Scan(
		&out.ID, &out.CompCode, &out.Amt, &out.Paid, &out.AddDate, &out.PaidDate,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("%w: invoice %d", domain.ErrNotFound, inv.ID)
		}
		return nil, fmt.Errorf("update invoice: %w", err)
	}
	return &out, nil
}

// Delete elimina una factura por id.
func (r *InvoiceRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: invoice %d", domain.ErrNotFound, id)
	}
	return nil
}
