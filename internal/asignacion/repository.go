// internal/asignacion/repository.go
package asignacion

import (
	"errors"
	"time"

	"github.com/TallerGestion/api-taller/internal/apperr"
	"github.com/TallerGestion/api-taller/internal/ordendetalle"
	"github.com/TallerGestion/api-taller/internal/trabajador"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository es la única fuente de verdad de las asignaciones por detalle de
// orden. Nunca toca el estado de los pagos: Cancelado y PagoID pertenecen al
// motor de pagos.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// DatosAsignacion son los campos que el llamador controla al asignar o editar.
type DatosAsignacion struct {
	TrabajadorID    uint
	FechaAsignacion time.Time
	FechaEntrega    *time.Time
	Monto           decimal.Decimal
	Notas           string
}

func (d *DatosAsignacion) validar() error {
	if d.TrabajadorID == 0 {
		return apperr.Validacion("el trabajador es obligatorio")
	}
	if d.FechaAsignacion.IsZero() {
		return apperr.Validacion("la fecha de asignación es obligatoria")
	}
	if d.Monto.IsNegative() {
		return apperr.Validacion("el monto no puede ser negativo")
	}
	return nil
}

// existeTrabajador verifica la referencia contra el directorio de personal.
func (r *Repository) existeTrabajador(id uint) error {
	var cuenta int64
	if err := r.DB.Model(&trabajador.Trabajador{}).Where("id = ?", id).Count(&cuenta).Error; err != nil {
		return apperr.Almacenamiento("error al verificar trabajador", err)
	}
	if cuenta == 0 {
		return apperr.NoEncontrado("trabajador %d no existe", id)
	}
	return nil
}

// Asignar crea la asignación para un detalle de orden, o reemplaza la
// existente en el mismo registro: un detalle nunca tiene dos asignaciones
// vivas. Si la existente ya está liquidada, primero hay que sacarla de su
// pago; aquí se rechaza con conflicto.
func (r *Repository) Asignar(ordenDetalleID uint, datos DatosAsignacion) (*Asignacion, error) {
	if err := datos.validar(); err != nil {
		return nil, err
	}
	if err := r.existeTrabajador(datos.TrabajadorID); err != nil {
		return nil, err
	}

	var cuenta int64
	if err := r.DB.Model(&ordendetalle.OrdenDetalle{}).Where("id = ?", ordenDetalleID).Count(&cuenta).Error; err != nil {
		return nil, apperr.Almacenamiento("error al verificar detalle de orden", err)
	}
	if cuenta == 0 {
		return nil, apperr.NoEncontrado("detalle de orden %d no existe", ordenDetalleID)
	}

	var existente Asignacion
	err := r.DB.Where("orden_detalle_id = ?", ordenDetalleID).First(&existente).Error
	switch {
	case err == nil:
		if existente.Cancelado {
			if existente.PagoID != nil {
				return nil, apperr.Conflicto("la asignación del detalle %d ya está liquidada en el pago %d", ordenDetalleID, *existente.PagoID)
			}
			return nil, apperr.Conflicto("la asignación del detalle %d ya está liquidada", ordenDetalleID)
		}
		existente.TrabajadorID = datos.TrabajadorID
		existente.FechaAsignacion = datos.FechaAsignacion
		existente.FechaEntrega = datos.FechaEntrega
		existente.Monto = datos.Monto
		existente.Notas = datos.Notas
		if err := r.DB.Save(&existente).Error; err != nil {
			return nil, apperr.Almacenamiento("error al reemplazar asignación", err)
		}
		return &existente, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		a := &Asignacion{
			OrdenDetalleID:  ordenDetalleID,
			TrabajadorID:    datos.TrabajadorID,
			FechaAsignacion: datos.FechaAsignacion,
			FechaEntrega:    datos.FechaEntrega,
			Monto:           datos.Monto,
			Notas:           datos.Notas,
		}
		if err := r.DB.Create(a).Error; err != nil {
			return nil, apperr.Almacenamiento("error al crear asignación", err)
		}
		return a, nil
	default:
		return nil, apperr.Almacenamiento("error al buscar asignación existente", err)
	}
}

// CambiosAsignacion son los campos editables en una actualización parcial.
// Un puntero nil significa "no tocar". OrdenDetalleID es inmutable.
type CambiosAsignacion struct {
	TrabajadorID    *uint
	FechaAsignacion *time.Time
	FechaEntrega    *time.Time
	BorrarEntrega   bool
	Monto           *decimal.Decimal
	Notas           *string
}

// Actualizar aplica una edición parcial a una asignación sin liquidar.
func (r *Repository) Actualizar(id uint, cambios CambiosAsignacion) (*Asignacion, error) {
	a, err := r.BuscarPorID(id)
	if err != nil {
		return nil, err
	}
	if a.Cancelado {
		return nil, apperr.Conflicto("la asignación %d está liquidada; quítela del pago antes de editarla", id)
	}

	if cambios.TrabajadorID != nil {
		if err := r.existeTrabajador(*cambios.TrabajadorID); err != nil {
			return nil, err
		}
		a.TrabajadorID = *cambios.TrabajadorID
	}
	if cambios.FechaAsignacion != nil {
		if cambios.FechaAsignacion.IsZero() {
			return nil, apperr.Validacion("la fecha de asignación es obligatoria")
		}
		a.FechaAsignacion = *cambios.FechaAsignacion
	}
	if cambios.FechaEntrega != nil {
		a.FechaEntrega = cambios.FechaEntrega
	} else if cambios.BorrarEntrega {
		a.FechaEntrega = nil
	}
	if cambios.Monto != nil {
		if cambios.Monto.IsNegative() {
			return nil, apperr.Validacion("el monto no puede ser negativo")
		}
		a.Monto = *cambios.Monto
	}
	if cambios.Notas != nil {
		a.Notas = *cambios.Notas
	}

	if err := r.DB.Save(a).Error; err != nil {
		return nil, apperr.Almacenamiento("error al actualizar asignación", err)
	}
	return a, nil
}

// Eliminar borra una asignación sin liquidar.
func (r *Repository) Eliminar(id uint) error {
	a, err := r.BuscarPorID(id)
	if err != nil {
		return err
	}
	if a.Cancelado {
		return apperr.Conflicto("la asignación %d está liquidada; quítela del pago antes de borrarla", id)
	}
	res := r.DB.Delete(&Asignacion{}, id)
	if res.Error != nil {
		return apperr.Almacenamiento("error al borrar asignación", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NoEncontrado("asignación %d no existe", id)
	}
	return nil
}

// BuscarPorID devuelve una asignación por su ID.
func (r *Repository) BuscarPorID(id uint) (*Asignacion, error) {
	var a Asignacion
	if err := r.DB.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NoEncontrado("asignación %d no existe", id)
		}
		return nil, apperr.Almacenamiento("error al buscar asignación", err)
	}
	return &a, nil
}

// BuscarPorOrdenDetalle devuelve la asignación vigente de un detalle, o
// no-encontrado si el detalle no tiene asignación.
func (r *Repository) BuscarPorOrdenDetalle(ordenDetalleID uint) (*Asignacion, error) {
	var a Asignacion
	if err := r.DB.Where("orden_detalle_id = ?", ordenDetalleID).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NoEncontrado("el detalle %d no tiene asignación", ordenDetalleID)
		}
		return nil, apperr.Almacenamiento("error al buscar asignación", err)
	}
	return &a, nil
}
