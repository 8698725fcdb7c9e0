// internal/asignacion/consulta.go
package asignacion

import (
	"time"

	"github.com/TallerGestion/api-taller/internal/apperr"
	"gorm.io/gorm"
)

// Consulta es el servicio de lectura que alimenta tanto la pantalla de
// asignación como las pantallas de pago. No tiene efectos secundarios: cada
// llamada deriva su resultado del estado de la tabla en ese momento, así que
// repetir la consulta es siempre seguro.
type Consulta struct {
	DB *gorm.DB
}

func NewConsulta(db *gorm.DB) *Consulta {
	return &Consulta{DB: db}
}

// Filtro combina criterios con semántica AND; los campos nil no filtran.
// Desde/Hasta acotan FechaAsignacion de forma inclusiva. Terminado filtra por
// el estado de terminación del detalle de orden, no por Cancelado.
type Filtro struct {
	TrabajadorID *uint
	Desde        *time.Time
	Hasta        *time.Time
	Terminado    *bool
}

// Filtrar devuelve las asignaciones que cumplen todos los criterios,
// ordenadas por fecha de asignación.
func (c *Consulta) Filtrar(f Filtro) ([]Asignacion, error) {
	q := c.DB.Model(&Asignacion{})

	if f.TrabajadorID != nil {
		q = q.Where("asignacions.trabajador_id = ?", *f.TrabajadorID)
	}
	if f.Desde != nil {
		q = q.Where("asignacions.fecha_asignacion >= ?", *f.Desde)
	}
	if f.Hasta != nil {
		q = q.Where("asignacions.fecha_asignacion <= ?", *f.Hasta)
	}
	if f.Terminado != nil {
		q = q.Joins("JOIN orden_detalles ON orden_detalles.id = asignacions.orden_detalle_id").
			Where("orden_detalles.terminado = ?", *f.Terminado)
	}

	var lista []Asignacion
	if err := q.Order("asignacions.fecha_asignacion ASC, asignacions.id ASC").Find(&lista).Error; err != nil {
		return nil, apperr.Almacenamiento("error al filtrar asignaciones", err)
	}
	return lista, nil
}

// PendientesPorTrabajador devuelve las asignaciones sin liquidar de un
// trabajador; es la lista de candidatas de la pantalla de pago.
func (c *Consulta) PendientesPorTrabajador(trabajadorID uint) ([]Asignacion, error) {
	var lista []Asignacion
	err := c.DB.
		Where("trabajador_id = ? AND cancelado = ?", trabajadorID, false).
		Order("fecha_asignacion ASC, id ASC").
		Find(&lista).Error
	if err != nil {
		return nil, apperr.Almacenamiento("error al listar asignaciones pendientes", err)
	}
	return lista, nil
}

// PagadasEnPago devuelve las asignaciones de un trabajador liquidadas bajo un
// pago concreto. En modo edición la pantalla las fusiona con las pendientes
// para que los renglones propios del pago sigan visibles y preseleccionados.
func (c *Consulta) PagadasEnPago(trabajadorID, pagoID uint) ([]Asignacion, error) {
	var lista []Asignacion
	err := c.DB.
		Where("trabajador_id = ? AND pago_id = ?", trabajadorID, pagoID).
		Order("fecha_asignacion ASC, id ASC").
		Find(&lista).Error
	if err != nil {
		return nil, apperr.Almacenamiento("error al listar asignaciones del pago", err)
	}
	return lista, nil
}
