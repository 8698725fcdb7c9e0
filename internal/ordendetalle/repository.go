package ordendetalle

import (
	"errors"

	"github.com/TallerGestion/api-taller/internal/apperr"
	"gorm.io/gorm"
)

// Repository expone las consultas de solo lectura sobre detalles de orden.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// BuscarPorID devuelve un detalle por su ID.
func (r *Repository) BuscarPorID(id uint) (*OrdenDetalle, error) {
	var d OrdenDetalle
	if err := r.DB.First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NoEncontrado("detalle de orden %d no existe", id)
		}
		return nil, apperr.Almacenamiento("error al buscar detalle de orden", err)
	}
	return &d, nil
}

// ListarPorOrden devuelve los detalles facturables de una orden.
func (r *Repository) ListarPorOrden(ordenID uint) ([]OrdenDetalle, error) {
	var lista []OrdenDetalle
	err := r.DB.
		Where("orden_id = ?", ordenID).
		Order("id ASC").
		Find(&lista).Error
	if err != nil {
		return nil, apperr.Almacenamiento("error al listar detalles de orden", err)
	}
	return lista, nil
}
