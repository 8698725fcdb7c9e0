// internal/reporte/service.go
package reporte

import (
	"time"

	"github.com/TallerGestion/api-taller/internal/apperr"
	"github.com/TallerGestion/api-taller/internal/trabajador"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Servicio arma el reporte de mano de obra por trabajador para una orden.
// Es solo lectura: una función pura del estado actual, pensada para la
// pantalla de impresión/exportación.
type Servicio struct {
	DB *gorm.DB
}

func NewServicio(db *gorm.DB) *Servicio {
	return &Servicio{DB: db}
}

// RenglonAsignacion es una asignación con la descripción del detalle ya unida.
type RenglonAsignacion struct {
	AsignacionID    uint            `json:"asignacionId"`
	OrdenDetalleID  uint            `json:"ordenDetalleId"`
	Descripcion     string          `json:"descripcion"`
	FechaAsignacion time.Time       `json:"fechaAsignacion"`
	Monto           decimal.Decimal `json:"monto"`
	Cancelado       bool            `json:"cancelado"`
}

// ResumenTrabajador agrupa los renglones de un trabajador y su total, sin
// distinguir si las asignaciones ya fueron pagadas.
type ResumenTrabajador struct {
	TrabajadorID uint                `json:"trabajadorId"`
	Nombre       string              `json:"nombre"`
	Renglones    []RenglonAsignacion `json:"renglones"`
	Total        decimal.Decimal     `json:"total"`
}

type filaReporte struct {
	TrabajadorID    uint
	Nombre          string
	Apellido        string
	AsignacionID    uint
	OrdenDetalleID  uint
	Descripcion     string
	FechaAsignacion time.Time
	Monto           decimal.Decimal
	Cancelado       bool
}

// PorTrabajadorParaOrden devuelve, por cada trabajador con al menos una
// asignación contra un detalle de la orden, sus renglones y la suma de montos.
func (s *Servicio) PorTrabajadorParaOrden(ordenID uint) ([]ResumenTrabajador, error) {
	var filas []filaReporte
	err := s.DB.
		Table("asignacions").
		Select("trabajadors.id AS trabajador_id, trabajadors.nombre, trabajadors.apellido, " +
			"asignacions.id AS asignacion_id, asignacions.orden_detalle_id, " +
			"orden_detalles.descripcion, asignacions.fecha_asignacion, " +
			"asignacions.monto, asignacions.cancelado").
		Joins("JOIN orden_detalles ON orden_detalles.id = asignacions.orden_detalle_id").
		Joins("JOIN trabajadors ON trabajadors.id = asignacions.trabajador_id").
		Where("orden_detalles.orden_id = ?", ordenID).
		Order("trabajadors.nombre ASC, trabajadors.apellido ASC, asignacions.id ASC").
		Scan(&filas).Error
	if err != nil {
		return nil, apperr.Almacenamiento("error al consultar reporte", err)
	}

	var resumenes []ResumenTrabajador
	indice := make(map[uint]int)
	for _, f := range filas {
		i, ok := indice[f.TrabajadorID]
		if !ok {
			tr := trabajador.Trabajador{Nombre: f.Nombre, Apellido: f.Apellido}
			resumenes = append(resumenes, ResumenTrabajador{
				TrabajadorID: f.TrabajadorID,
				Nombre:       tr.NombreCompleto(),
				Total:        decimal.Zero,
			})
			i = len(resumenes) - 1
			indice[f.TrabajadorID] = i
		}
		resumenes[i].Renglones = append(resumenes[i].Renglones, RenglonAsignacion{
			AsignacionID:    f.AsignacionID,
			OrdenDetalleID:  f.OrdenDetalleID,
			Descripcion:     f.Descripcion,
			FechaAsignacion: f.FechaAsignacion,
			Monto:           f.Monto,
			Cancelado:       f.Cancelado,
		})
		resumenes[i].Total = resumenes[i].Total.Add(f.Monto)
	}
	return resumenes, nil
}
