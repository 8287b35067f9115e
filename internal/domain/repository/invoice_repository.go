package repository

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	// List devuelve todas las facturas ordenadas por id ascendente.
	List(ctx context.Context) ([]*entity.Invoice, error)
	// GetByID devuelve (nil, nil) si el id no existe.
	GetByID(ctx context.Context, id int64) (*entity.Invoice, error)
	// ListIDsByCompany devuelve los ids de factura de una empresa (vacío si no tiene).
	ListIDsByCompany(ctx context.Context, compCode string) ([]int64, error)
	// Create persiste la factura; la base asigna id y add_date y los deja en inv.
	// Devuelve domain.ErrInvalidReference si comp_code no existe.
	Create(ctx context.Context, inv *entity.Invoice) error
	// Update escribe amt, paid y paid_date y devuelve la fila resultante.
	// Devuelve domain.ErrNotFound si el id no existe.
	Update(ctx context.Context, inv *entity.Invoice) (*entity.Invoice, error)
	// Delete devuelve domain.ErrNotFound si no eliminó filas.
	Delete(ctx context.Context, id int64) error
}
