package ordendetalle

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrdenDetalle es una línea facturable de una orden del taller. Este paquete
// es solo de lectura para el motor de liquidación: el CRUD de órdenes vive
// en otro sistema y aquí únicamente se consulta.
type OrdenDetalle struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrdenID     uint            `gorm:"not null;index" json:"ordenId"`
	Descripcion string          `gorm:"size:255;not null" json:"descripcion"`
	Costo       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"costo"`
	Terminado   bool            `gorm:"not null;default:false" json:"terminado"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Migrate crea la tabla en la base de datos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&OrdenDetalle{})
}
