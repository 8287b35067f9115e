package entity

// Industry representa un sector económico. Código derivado del nombre igual
// que en Company.
type Industry struct {
	Code string
	Name string
}

// IndustryCompany asocia una empresa a un sector (N a N, sin atributos propios).
type IndustryCompany struct {
	IndustryCode string
	CompanyCode  string
}

// IndustryListing fila del listado de sectores: un sector sin empresas
// asociadas aparece con CompanyCode nil (left join).
type IndustryListing struct {
	Name        string
	CompanyCode *string
}
