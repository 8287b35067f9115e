package dto

// CreateIndustryRequest body para POST /industries.
type CreateIndustryRequest struct {
	Name string `json:"name"`
}

// AssociateIndustryRequest body para POST /industries/:industry_code.
type AssociateIndustryRequest struct {
	CompanyCode string `json:"company_code"`
}

// IndustryBody sector en la respuesta de creación.
type IndustryBody struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// IndustryResponse envoltura {industries: {...}} (en singular el recurso,
// plural la clave: contrato histórico del API).
type IndustryResponse struct {
	Industries IndustryBody `json:"industries"`
}

// IndustryListItem fila del listado: sector y empresa asociada, o company_code
// null para sectores sin empresas.
type IndustryListItem struct {
	Name        string  `json:"name"`
	CompanyCode *string `json:"company_code"`
}

// IndustryListResponse envoltura {industries: [...]}.
type IndustryListResponse struct {
	Industries []IndustryListItem `json:"industries"`
}

// AssociationBody par sector-empresa creado.
type AssociationBody struct {
	IndustryCode string `json:"industry_code"`
	CompanyCode  string `json:"company_code"`
}

// AssociationResponse envoltura {industries: {...}} para la asociación.
type AssociationResponse struct {
	Industries AssociationBody `json:"industries"`
}
