package usuario

import (
	"time"

	"gorm.io/gorm"
)

// Usuario es la cuenta que opera el panel administrativo. Su ID alimenta los
// campos de auditoría (creador de un pago) y no se interpreta más allá de eso.
type Usuario struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nombre    string    `gorm:"size:100;not null" json:"nombre"`
	Email     string    `gorm:"size:255;not null;unique" json:"email"`
	Clave     string    `gorm:"size:255;not null" json:"-"`
	EsAdmin   bool      `gorm:"not null;default:false" json:"esAdmin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate crea la tabla en la base de datos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}
