package repository

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// IndustryRepository define el puerto de persistencia para Industry y su
// asociación con empresas.
type IndustryRepository interface {
	// List devuelve pares (nombre de sector, código de empresa) vía left join:
	// sectores sin empresas aparecen con CompanyCode nil.
	List(ctx context.Context) ([]*entity.IndustryListing, error)
	// Create devuelve domain.ErrDuplicate si el código ya existe.
	Create(ctx context.Context, ind *entity.Industry) error
	// ListNamesByCompany devuelve los nombres de sector asociados a una empresa.
	ListNamesByCompany(ctx context.Context, compCode string) ([]string, error)
	// Associate inserta el par (industry_code, company_code).
	// Devuelve domain.ErrInvalidReference si alguno de los códigos no existe
	// y domain.ErrDuplicate si la asociación ya estaba registrada.
	Associate(ctx context.Context, assoc *entity.IndustryCompany) error
}
