package trabajador

import (
	"time"

	"gorm.io/gorm"
)

// Estado del trabajador en la nómina. Se usa un enum con transiciones
// explícitas en lugar de un booleano para poder sumar estados futuros
// (p. ej. "archivado") sin cambiar la columna.
type Estado string

const (
	EstadoActivo   Estado = "activo"
	EstadoInactivo Estado = "inactivo"
)

// transiciones permitidas: desde → hacia
var transiciones = map[Estado][]Estado{
	EstadoActivo:   {EstadoInactivo},
	EstadoInactivo: {EstadoActivo},
}

// Valido indica si el valor corresponde a un estado conocido.
func (e Estado) Valido() bool {
	_, ok := transiciones[e]
	return ok
}

// PuedeTransicionar indica si el cambio desde → hacia está permitido.
func PuedeTransicionar(desde, hacia Estado) bool {
	for _, h := range transiciones[desde] {
		if h == hacia {
			return true
		}
	}
	return false
}

// Trabajador es un registro del directorio de personal del taller.
type Trabajador struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nombre    string    `gorm:"size:100;not null" json:"nombre"`
	Apellido  string    `gorm:"size:100" json:"apellido"`
	Telefono  string    `gorm:"size:30" json:"telefono"`
	Estado    Estado    `gorm:"size:20;not null;default:'activo';index" json:"estado"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NombreCompleto es el nombre para mostrar en pantallas y reportes.
func (t *Trabajador) NombreCompleto() string {
	if t.Apellido == "" {
		return t.Nombre
	}
	return t.Nombre + " " + t.Apellido
}

// Migrate crea la tabla en la base de datos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Trabajador{})
}
