package usecase

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
	"github.com/jhoicas/biztime-api/pkg/slug"
)

// IndustryUseCase aplica reglas de negocio para sectores y su asociación
// con empresas.
type IndustryUseCase struct {
	industries repository.IndustryRepository
}

// NewIndustryUseCase construye el caso de uso con el puerto de persistencia.
func NewIndustryUseCase(industries repository.IndustryRepository) *IndustryUseCase {
	return &IndustryUseCase{industries: industries}
}

// List devuelve cada par sector-empresa; sectores sin empresas asociadas
// aparecen con company_code null.
func (uc *IndustryUseCase) List(ctx context.Context) (*dto.IndustryListResponse, error) {
	list, err := uc.industries.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IndustryListItem, 0, len(list))
	for _, row := range list {
		items = append(items, dto.IndustryListItem{Name: row.Name, CompanyCode: row.CompanyCode})
	}
	return &dto.IndustryListResponse{Industries: items}, nil
}

// Create crea un sector derivando el código del nombre.
func (uc *IndustryUseCase) Create(ctx context.Context, in dto.CreateIndustryRequest) (*dto.IndustryResponse, error) {
	code := slug.Make(in.Name)
	if code == "" {
		return nil, domain.ErrInvalidInput
	}
	ind := &entity.Industry{Code: code, Name: in.Name}
	if err := uc.industries.Create(ctx, ind); err != nil {
		return nil, err
	}
	return &dto.IndustryResponse{Industries: dto.IndustryBody{Code: ind.Code, Name: ind.Name}}, nil
}

// Associate registra que una empresa opera en un sector. Ambos códigos los
// validan las foreign keys (domain.ErrInvalidReference).
func (uc *IndustryUseCase) Associate(ctx context.Context, industryCode, companyCode string) (*dto.AssociationResponse, error) {
	assoc := &entity.IndustryCompany{IndustryCode: industryCode, CompanyCode: companyCode}
	if err := uc.industries.Associate(ctx, assoc); err != nil {
		return nil, err
	}
	return &dto.AssociationResponse{Industries: dto.AssociationBody{
		IndustryCode: assoc.IndustryCode,
		CompanyCode:  assoc.CompanyCode,
	}}, nil
}
