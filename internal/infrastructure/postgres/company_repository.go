package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

// List devuelve todas las empresas (code, name), sin orden garantizado.
func (r *CompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	rows, err := r.pool.Query(ctx, `SELECT code, name FROM companies`)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.Code, &c.Name); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// GetByCode obtiene una empresa por código. Devuelve (nil, nil) si no existe.
func (r *CompanyRepo) GetByCode(ctx context.Context, code string) (*entity.Company, error) {
	query := `
		SELECT code, name, description
		FROM companies WHERE code = $1`
	var c entity.Company
	err := r.pool.QueryRow(ctx, query, code).Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// Create persiste una nueva empresa. La unicidad del código la valida el
// constraint de la tabla, no un pre-chequeo.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (code, name, description)
		VALUES ($1, $2, $3)`
	_, err := r.pool.Exec(ctx, query, company.Code, company.Name, company.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: company %q", domain.ErrDuplicate, company.Code)
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// Update actualiza nombre y descripción. La existencia se comprueba después
// de escribir: cero filas afectadas = no existe.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, description = $3
		WHERE code = $1`
	cmd, err := r.pool.Exec(ctx, query, company.Code, company.Name, company.Description)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: company %q", domain.ErrNotFound, company.Code)
	}
	return nil
}

// Delete elimina una empresa por código.
func (r *CompanyRepo) Delete(ctx context.Context, code string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE code = $1`, code)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: company %q", domain.ErrNotFound, code)
	}
	return nil
}
