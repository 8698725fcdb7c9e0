// internal/asignacion/model.go
package asignacion

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Asignacion vincula un detalle facturable de una orden con el trabajador que
// lo ejecuta y el monto que se le debe por ese trabajo.
//
// Cancelado=true significa "liquidado/pagado" (la terminología viene invertida
// del sistema de origen), y solo el motor de pagos escribe ese campo junto con
// PagoID. Mientras Cancelado=false, PagoID es siempre NULL.
type Asignacion struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	OrdenDetalleID  uint            `gorm:"not null;uniqueIndex" json:"ordenDetalleId"`
	TrabajadorID    uint            `gorm:"not null;index" json:"trabajadorId"`
	FechaAsignacion time.Time       `gorm:"not null" json:"fechaAsignacion"`
	FechaEntrega    *time.Time      `json:"fechaEntrega"`
	Monto           decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"monto"`
	Notas           string          `gorm:"size:500" json:"notas"`
	Cancelado       bool            `gorm:"not null;default:false;index" json:"cancelado"`
	PagoID          *uint           `gorm:"index" json:"pagoId"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Migrate crea la tabla en la base de datos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Asignacion{})
}
