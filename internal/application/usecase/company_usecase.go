package usecase

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
	"github.com/jhoicas/biztime-api/pkg/slug"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	companies  repository.CompanyRepository
	invoices   repository.InvoiceRepository
	industries repository.IndustryRepository
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
// Facturas y sectores se necesitan para armar el detalle de una empresa.
func NewCompanyUseCase(
	companies repository.CompanyRepository,
	invoices repository.InvoiceRepository,
	industries repository.IndustryRepository,
) *CompanyUseCase {
	return &CompanyUseCase{companies: companies, invoices: invoices, industries: industries}
}

// List devuelve todas las empresas (code, name).
func (uc *CompanyUseCase) List(ctx context.Context) (*dto.CompanyListResponse, error) {
	list, err := uc.companies.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyListItem, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CompanyListItem{Code: c.Code, Name: c.Name})
	}
	return &dto.CompanyListResponse{Companies: items}, nil
}

// Get arma el detalle de una empresa: datos propios más los ids de sus
// facturas y los nombres de sus sectores. Tres consultas secuenciales, sin
// transacción. Colecciones vacías serializan [], nunca null.
func (uc *CompanyUseCase) Get(ctx context.Context, code string) (*dto.CompanyDetailResponse, error) {
	company, err := uc.companies.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	ids, err := uc.invoices.ListIDsByCompany(ctx, code)
	if err != nil {
		return nil, err
	}
	names, err := uc.industries.ListNamesByCompany(ctx, code)
	if err != nil {
		return nil, err
	}

	if ids == nil {
		ids = []int64{}
	}
	if names == nil {
		names = []string{}
	}
	return &dto.CompanyDetailResponse{Company: dto.CompanyDetail{
		Code:        company.Code,
		Name:        company.Name,
		Description: company.Description,
		Invoices:    ids,
		Industries:  names,
	}}, nil
}

// Create crea una empresa derivando el código del nombre. La colisión de
// código la detecta el constraint de la tabla (domain.ErrDuplicate).
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	code := slug.Make(in.Name)
	if code == "" {
		return nil, domain.ErrInvalidInput
	}
	company := &entity.Company{
		Code:        code,
		Name:        in.Name,
		Description: in.Description,
	}
	if err := uc.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	return companyToResponse(company), nil
}

// Update actualiza nombre y descripción; el código no cambia. La existencia
// se comprueba tras escribir (cero filas = domain.ErrNotFound).
func (uc *CompanyUseCase) Update(ctx context.Context, code string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company := &entity.Company{
		Code:        code,
		Name:        in.Name,
		Description: in.Description,
	}
	if err := uc.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return companyToResponse(company), nil
}

// Delete elimina una empresa por código.
func (uc *CompanyUseCase) Delete(ctx context.Context, code string) (*dto.DeleteCompanyResponse, error) {
	if err := uc.companies.Delete(ctx, code); err != nil {
		return nil, err
	}
	return &dto.DeleteCompanyResponse{Msg: "Deleted!"}, nil
}

func companyToResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{Company: dto.CompanyBody{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
	}}
}
