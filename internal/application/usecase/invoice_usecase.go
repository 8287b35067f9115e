package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// InvoiceUseCase aplica reglas de negocio para facturas, incluida la regla de
// fechado de pago en Update.
type InvoiceUseCase struct {
	invoices  repository.InvoiceRepository
	companies repository.CompanyRepository
	now       func() time.Time
}

// NewInvoiceUseCase construye el caso de uso con los puertos de persistencia.
func NewInvoiceUseCase(invoices repository.InvoiceRepository, companies repository.CompanyRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices, companies: companies, now: time.Now}
}

// List devuelve todas las facturas (id, comp_code) ordenadas por id.
func (uc *InvoiceUseCase) List(ctx context.Context) (*dto.InvoiceListResponse, error) {
	list, err := uc.invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceListItem, 0, len(list))
	for _, inv := range list {
		items = append(items, dto.InvoiceListItem{ID: inv.ID, CompCode: inv.CompCode})
	}
	return &dto.InvoiceListResponse{Invoices: items}, nil
}

// Get devuelve una factura con su empresa anidada.
func (uc *InvoiceUseCase) Get(ctx context.Context, id int64) (*dto.InvoiceDetailResponse, error) {
	inv, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companies.GetByCode(ctx, inv.CompCode)
	if err != nil {
		return nil, err
	}
	if company == nil {
		// comp_code es foreign key: si la fila existe, la empresa existe
		return nil, domain.ErrNotFound
	}
	return &dto.InvoiceDetailResponse{Invoice: dto.InvoiceDetail{
		ID:       inv.ID,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
		Company: dto.CompanyBody{
			Code:        company.Code,
			Name:        company.Name,
			Description: company.Description,
		},
	}}, nil
}

// Create crea una factura sin pagar. id y add_date los asigna la base;
// comp_code lo valida la foreign key (domain.ErrInvalidReference).
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.CompCode == "" || in.Amt == nil {
		return nil, domain.ErrInvalidInput
	}
	inv := &entity.Invoice{
		CompCode: in.CompCode,
		Amt:      *in.Amt,
	}
	if err := uc.invoices.Create(ctx, inv); err != nil {
		return nil, err
	}
	return invoiceToResponse(inv), nil
}

// Update cambia amt y paid aplicando la regla de fechado:
//
//   - sin paid_date y paid pasa a true  -> paid_date = hoy (primer pago)
//   - paid pasa a false                 -> paid_date = null (despagar borra la fecha)
//   - en cualquier otro caso            -> paid_date se conserva
//
// paid omitido en el body se trata como "sin cambio" sobre el valor actual.
// Lectura y escritura son dos sentencias sin transacción: dos updates
// concurrentes al mismo id pueden pisarse y gana el último.
func (uc *InvoiceUseCase) Update(ctx context.Context, id int64, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.Amt == nil {
		return nil, domain.ErrInvalidInput
	}

	current, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}

	paid := current.Paid
	if in.Paid != nil {
		paid = *in.Paid
	}

	paidDate := current.PaidDate
	switch {
	case paidDate == nil && paid:
		today := uc.now()
		paidDate = &today
	case !paid:
		paidDate = nil
	}

	updated, err := uc.invoices.Update(ctx, &entity.Invoice{
		ID:       id,
		Amt:      *in.Amt,
		Paid:     paid,
		PaidDate: paidDate,
	})
	if err != nil {
		return nil, err
	}
	return invoiceToResponse(updated), nil
}

// Delete elimina una factura por id.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id int64) (*dto.DeleteInvoiceResponse, error) {
	if err := uc.invoices.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &dto.DeleteInvoiceResponse{Status: "deleted"}, nil
}

func invoiceToResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{Invoice: dto.InvoiceBody{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
	}}
}
