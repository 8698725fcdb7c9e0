// internal/pago/model.go
package pago

import (
	"time"

	"github.com/TallerGestion/api-taller/internal/asignacion"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Pago agrupa las asignaciones liquidadas de un trabajador en un único total
// a pagar. Subtotal y Total se recalculan siempre desde los montos vigentes
// de los miembros; del cliente solo se acepta el descuento.
type Pago struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	TrabajadorID uint            `gorm:"not null;index" json:"trabajadorId"`
	Fecha        time.Time       `gorm:"not null" json:"fecha"`
	Notas        string          `gorm:"size:500" json:"notas"`
	Subtotal     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"subtotal"`
	Descuento    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"descuento"`
	Total        decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total"`
	CreadorID    uint            `gorm:"not null" json:"creadorId"`

	// Asociación con las asignaciones liquidadas bajo este pago
	Asignaciones []asignacion.Asignacion `gorm:"foreignKey:PagoID" json:"asignaciones"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate crea la tabla en la base de datos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Pago{})
}
