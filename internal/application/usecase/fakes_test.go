package usecase_test

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Reproducen el contrato de
// los adaptadores PostgreSQL: (nil, nil) para lecturas sin fila, ErrNotFound
// tras escrituras sin filas afectadas, ErrDuplicate/ErrInvalidReference donde
// los constraints lo harían.

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

var _ repository.CompanyRepository = (*fakeCompanyRepo)(nil)

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[string]*entity.Company)}
}

func (f *fakeCompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	var codes []string
	for code := range f.companies {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	var list []*entity.Company
	for _, code := range codes {
		c := *f.companies[code]
		list = append(list, &c)
	}
	return list, nil
}

func (f *fakeCompanyRepo) GetByCode(ctx context.Context, code string) (*entity.Company, error) {
	c, ok := f.companies[code]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	if _, ok := f.companies[company.Code]; ok {
		return fmt.Errorf("%w: company %q", domain.ErrDuplicate, company.Code)
	}
	cp := *company
	f.companies[company.Code] = &cp
	return nil
}

func (f *fakeCompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	if _, ok := f.companies[company.Code]; !ok {
		return fmt.Errorf("%w: company %q", domain.ErrNotFound, company.Code)
	}
	cp := *company
	f.companies[company.Code] = &cp
	return nil
}

func (f *fakeCompanyRepo) Delete(ctx context.Context, code string) error {
	if _, ok := f.companies[code]; !ok {
		return fmt.Errorf("%w: company %q", domain.ErrNotFound, code)
	}
	delete(f.companies, code)
	return nil
}

type fakeInvoiceRepo struct {
	companies *fakeCompanyRepo // para simular la foreign key comp_code
	invoices  map[int64]*entity.Invoice
	nextID    int64
}

var _ repository.InvoiceRepository = (*fakeInvoiceRepo)(nil)

func newFakeInvoiceRepo(companies *fakeCompanyRepo) *fakeInvoiceRepo {
	return &fakeInvoiceRepo{companies: companies, invoices: make(map[int64]*entity.Invoice), nextID: 1}
}

func (f *fakeInvoiceRepo) sortedIDs() []int64 {
	ids := make([]int64, 0, len(f.invoices))
	for id := range f.invoices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (f *fakeInvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	var list []*entity.Invoice
	for _, id := range f.sortedIDs() {
		cp := *f.invoices[id]
		list = append(list, &cp)
	}
	return list, nil
}

func (f *fakeInvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	inv, ok := f.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeInvoiceRepo) ListIDsByCompany(ctx context.Context, compCode string) ([]int64, error) {
	var ids []int64
	for _, id := range f.sortedIDs() {
		if f.invoices[id].CompCode == compCode {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (f *fakeInvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	if _, ok := f.companies.companies[inv.CompCode]; !ok {
		return fmt.Errorf("%w: company %q", domain.ErrInvalidReference, inv.CompCode)
	}
	inv.ID = f.nextID
	f.nextID++
	inv.Paid = false
	inv.PaidDate = nil
	inv.AddDate = time.Now()
	cp := *inv
	f.invoices[inv.ID] = &cp
	return nil
}

func (f *fakeInvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) (*entity.Invoice, error) {
	current, ok := f.invoices[inv.ID]
	if !ok {
		return nil, fmt.Errorf("%w: invoice %d", domain.ErrNotFound, inv.ID)
	}
	current.Amt = inv.Amt
	current.Paid = inv.Paid
	current.PaidDate = inv.PaidDate
	cp := *current
	return &cp, nil
}

func (f *fakeInvoiceRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.invoices[id]; !ok {
		return fmt.Errorf("%w: invoice %d", domain.ErrNotFound, id)
	}
	delete(f.invoices, id)
	return nil
}

type fakeIndustryRepo struct {
	companies  *fakeCompanyRepo // para simular la foreign key company_code
	industries map[string]*entity.Industry
	assocs     []entity.IndustryCompany
}

var _ repository.IndustryRepository = (*fakeIndustryRepo)(nil)

func newFakeIndustryRepo(companies *fakeCompanyRepo) *fakeIndustryRepo {
	return &fakeIndustryRepo{companies: companies, industries: make(map[string]*entity.Industry)}
}

func (f *fakeIndustryRepo) List(ctx context.Context) ([]*entity.IndustryListing, error) {
	var codes []string
	for code := range f.industries {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	var list []*entity.IndustryListing
	for _, code := range codes {
		ind := f.industries[code]
		matched := false
		for _, a := range f.assocs {
			if a.IndustryCode == code {
				cc := a.CompanyCode
				list = append(list, &entity.IndustryListing{Name: ind.Name, CompanyCode: &cc})
				matched = true
			}
		}
		if !matched {
			list = append(list, &entity.IndustryListing{Name: ind.Name, CompanyCode: nil})
		}
	}
	return list, nil
}

func (f *fakeIndustryRepo) Create(ctx context.Context, ind *entity.Industry) error {
	if _, ok := f.industries[ind.Code]; ok {
		return fmt.Errorf("%w: industry %q", domain.ErrDuplicate, ind.Code)
	}
	cp := *ind
	f.industries[ind.Code] = &cp
	return nil
}

func (f *fakeIndustryRepo) ListNamesByCompany(ctx context.Context, compCode string) ([]string, error) {
	var names []string
	for _, a := range f.assocs {
		if a.CompanyCode == compCode {
			names = append(names, f.industries[a.IndustryCode].Name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (f *fakeIndustryRepo) Associate(ctx context.Context, assoc *entity.IndustryCompany) error {
	if _, ok := f.industries[assoc.IndustryCode]; !ok {
		return fmt.Errorf("%w: industry %q", domain.ErrInvalidReference, assoc.IndustryCode)
	}
	if _, ok := f.companies.companies[assoc.CompanyCode]; !ok {
		return fmt.Errorf("%w: company %q", domain.ErrInvalidReference, assoc.CompanyCode)
	}
	for _, a := range f.assocs {
		if a == *assoc {
			return fmt.Errorf("%w: association %q-%q", domain.ErrDuplicate, a.IndustryCode, a.CompanyCode)
		}
	}
	f.assocs = append(f.assocs, *assoc)
	return nil
}
