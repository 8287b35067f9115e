package dto

// CreateCompanyRequest body para POST /companies. El código no se acepta del
// cliente: se deriva del nombre.
type CreateCompanyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateCompanyRequest body para PUT /companies/:code.
type UpdateCompanyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CompanyBody empresa en respuestas de creación y actualización.
type CompanyBody struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CompanyResponse envoltura {company: {...}}.
type CompanyResponse struct {
	Company CompanyBody `json:"company"`
}

// CompanyListItem fila del listado de empresas.
type CompanyListItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CompanyListResponse envoltura {companies: [...]}.
type CompanyListResponse struct {
	Companies []CompanyListItem `json:"companies"`
}

// CompanyDetail empresa con sus colecciones auxiliares. Invoices e Industries
// serializan [] cuando están vacías, nunca null.
type CompanyDetail struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Invoices    []int64  `json:"invoices"`
	Industries  []string `json:"industries"`
}

// CompanyDetailResponse envoltura {company: {...}} para GET /companies/:code.
type CompanyDetailResponse struct {
	Company CompanyDetail `json:"company"`
}

// DeleteCompanyResponse confirmación de borrado.
type DeleteCompanyResponse struct {
	Msg string `json:"msg"`
}
