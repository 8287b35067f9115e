package repository

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	List(ctx context.Context) ([]*entity.Company, error)
	// GetByCode devuelve (nil, nil) si el código no existe.
	GetByCode(ctx context.Context, code string) (*entity.Company, error)
	// Create devuelve domain.ErrDuplicate si el código ya existe
	// (detectado en la violación de constraint, sin pre-chequeo).
	Create(ctx context.Context, company *entity.Company) error
	// Update devuelve domain.ErrNotFound si la escritura no afectó filas.
	Update(ctx context.Context, company *entity.Company) error
	// Delete devuelve domain.ErrNotFound si no eliminó filas.
	Delete(ctx context.Context, code string) error
}
