package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest body para POST /invoices. Amt es puntero para
// distinguir "ausente" de cero (presence check).
type CreateInvoiceRequest struct {
	CompCode string           `json:"comp_code"`
	Amt      *decimal.Decimal `json:"amt"`
}

// UpdateInvoiceRequest body para PUT /invoices/:id. Paid nil significa
// "sin cambio": se conserva el flag actual y su paid_date.
type UpdateInvoiceRequest struct {
	Amt  *decimal.Decimal `json:"amt"`
	Paid *bool            `json:"paid"`
}

// InvoiceBody factura en respuestas de creación y actualización.
type InvoiceBody struct {
	ID       int64           `json:"id"`
	CompCode string          `json:"comp_code"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
}

// InvoiceResponse envoltura {invoice: {...}}.
type InvoiceResponse struct {
	Invoice InvoiceBody `json:"invoice"`
}

// InvoiceListItem fila del listado de facturas.
type InvoiceListItem struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// InvoiceListResponse envoltura {invoices: [...]}.
type InvoiceListResponse struct {
	Invoices []InvoiceListItem `json:"invoices"`
}

// InvoiceDetail factura con su empresa anidada para GET /invoices/:id.
type InvoiceDetail struct {
	ID       int64           `json:"id"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
	Company  CompanyBody     `json:"company"`
}

// InvoiceDetailResponse envoltura {invoice: {...}}.
type InvoiceDetailResponse struct {
	Invoice InvoiceDetail `json:"invoice"`
}

// DeleteInvoiceResponse confirmación de borrado.
type DeleteInvoiceResponse struct {
	Status string `json:"status"`
}
