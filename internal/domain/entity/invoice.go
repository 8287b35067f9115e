package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa una factura de una empresa.
//
// Invariante: PaidDate != nil si y solo si Paid es true. Una vez marcada como
// pagada la fecha se conserva en actualizaciones posteriores que sigan pagadas;
// despagar la borra siempre.
type Invoice struct {
	ID       int64
	CompCode string
	Amt      decimal.Decimal
	Paid     bool
	AddDate  time.Time  // la asigna la base de datos al insertar; inmutable
	PaidDate *time.Time // nil = sin pagar
}
