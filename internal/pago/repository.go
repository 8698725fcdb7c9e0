// internal/pago/repository.go
package pago

import (
	"errors"

	"github.com/TallerGestion/api-taller/internal/apperr"
	"gorm.io/gorm"
)

// Repository encapsula las lecturas sobre pagos. Las escrituras pasan por el
// Servicio, que es el único autorizado a mover Cancelado/PagoID.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// BuscarPorID devuelve un pago con sus asignaciones miembro precargadas.
func (r *Repository) BuscarPorID(id uint) (*Pago, error) {
	var p Pago
	err := r.DB.
		Preload("Asignaciones").
		First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NoEncontrado("pago %d no existe", id)
		}
		return nil, apperr.Almacenamiento("error al buscar pago", err)
	}
	return &p, nil
}

// ListarPorTrabajador devuelve los pagos emitidos a un trabajador.
func (r *Repository) ListarPorTrabajador(trabajadorID uint) ([]Pago, error) {
	var lista []Pago
	err := r.DB.
		Where("trabajador_id = ?", trabajadorID).
		Order("fecha DESC, id DESC").
		Find(&lista).Error
	if err != nil {
		return nil, apperr.Almacenamiento("error al listar pagos", err)
	}
	return lista, nil
}
