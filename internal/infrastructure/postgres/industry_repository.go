package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

var _ repository.IndustryRepository = (*IndustryRepo)(nil)

// IndustryRepo implementación del puerto IndustryRepository sobre PostgreSQL.
type IndustryRepo struct {
	pool *pgxpool.Pool
}

// NewIndustryRepository construye el adaptador de persistencia para sectores.
func NewIndustryRepository(pool *pgxpool.Pool) *IndustryRepo {
	return &IndustryRepo{pool: pool}
}

// List devuelve cada par sector-empresa; sectores sin empresas asociadas
// aparecen una vez con CompanyCode nil (left join).
func (r *IndustryRepo) List(ctx context.Context) ([]*entity.IndustryListing, error) {
	query := `
		SELECT i.name, ic.company_code
		FROM industries AS i
		LEFT JOIN industries_companies AS ic
		ON i.code = ic.industry_code`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list industries: %w", err)
	}
	defer rows.Close()

	var list []*entity.IndustryListing
	for rows.Next() {
		var row entity.IndustryListing
		if err := rows.Scan(&row.Name, &row.CompanyCode); err != nil {
			return nil, fmt.Errorf("scan industry: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

// Create persiste un nuevo sector.
func (r *IndustryRepo) Create(ctx context.Context, ind *entity.Industry) error {
	query := `INSERT INTO industries (code, name) VALUES ($1, $2)`
	_, err := r.pool.Exec(ctx, query, ind.Code, ind.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: industry %q", domain.ErrDuplicate, ind.Code)
		}
		return fmt.Errorf("insert industry: %w", err)
	}
	return nil
}

// ListNamesByCompany devuelve los nombres de sector asociados a una empresa.
// Join interno: una empresa sin asociaciones produce lista vacía, no [null].
func (r *IndustryRepo) ListNamesByCompany(ctx context.Context, compCode string) ([]string, error) {
	query := `
		SELECT i.name
		FROM industries_companies AS ic
		JOIN industries AS i ON ic.industry_code = i.code
		WHERE ic.company_code = $1
		ORDER BY i.name`
	rows, err := r.pool.Query(ctx, query, compCode)
	if err != nil {
		return nil, fmt.Errorf("list industries by company: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan industry name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Associate inserta el par sector-empresa. Las foreign keys validan ambos
// códigos; el primary key compuesto evita duplicar la asociación.
func (r *IndustryRepo) Associate(ctx context.Context, assoc *entity.IndustryCompany) error {
	query := `INSERT INTO industries_companies (industry_code, company_code) VALUES ($1, $2)`
	_, err := r.pool.Exec(ctx, query, assoc.IndustryCode, assoc.CompanyCode)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: industry %q / company %q", domain.ErrInvalidReference, assoc.IndustryCode, assoc.CompanyCode)
		}
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: association %q-%q", domain.ErrDuplicate, assoc.IndustryCode, assoc.CompanyCode)
		}
		return fmt.Errorf("insert association: %w", err)
	}
	return nil
}
