package asignacion

import (
	"time"

	"github.com/TallerGestion/api-taller/internal/apperr"
	"github.com/TallerGestion/api-taller/internal/utils"
	"github.com/shopspring/decimal"
)

// AsignarDTO es el payload de POST /asignaciones. Las fechas viajan como
// "2006-01-02" (fechas calendario, sin hora).
type AsignarDTO struct {
	OrdenDetalleID  uint            `json:"ordenDetalleId"`
	TrabajadorID    uint            `json:"trabajadorId"`
	FechaAsignacion string          `json:"fechaAsignacion"`
	FechaEntrega    string          `json:"fechaEntrega"`
	Monto           decimal.Decimal `json:"monto"`
	Notas           string          `json:"notas"`
}

func (in *AsignarDTO) aDatos() (DatosAsignacion, error) {
	var datos DatosAsignacion
	if in.FechaAsignacion == "" {
		return datos, apperr.Validacion("la fecha de asignación es obligatoria")
	}
	fecha, err := utils.ParseFecha(in.FechaAsignacion)
	if err != nil {
		return datos, apperr.Validacion("fecha de asignación inválida: %q", in.FechaAsignacion)
	}
	var entrega *time.Time
	if in.FechaEntrega != "" {
		fe, err := utils.ParseFecha(in.FechaEntrega)
		if err != nil {
			return datos, apperr.Validacion("fecha de entrega inválida: %q", in.FechaEntrega)
		}
		entrega = &fe
	}
	datos = DatosAsignacion{
		TrabajadorID:    in.TrabajadorID,
		FechaAsignacion: fecha,
		FechaEntrega:    entrega,
		Monto:           in.Monto,
		Notas:           in.Notas,
	}
	return datos, nil
}

// ActualizarDTO es el payload de PATCH /asignaciones/{id}; los campos
// ausentes no se tocan. Una fecha de entrega vacía ("") la borra.
type ActualizarDTO struct {
	TrabajadorID    *uint            `json:"trabajadorId"`
	FechaAsignacion *string          `json:"fechaAsignacion"`
	FechaEntrega    *string          `json:"fechaEntrega"`
	Monto           *decimal.Decimal `json:"monto"`
	Notas           *string          `json:"notas"`
}

func (in *ActualizarDTO) aCambios() (CambiosAsignacion, error) {
	var cambios CambiosAsignacion
	cambios.TrabajadorID = in.TrabajadorID
	cambios.Monto = in.Monto
	cambios.Notas = in.Notas

	if in.FechaAsignacion != nil {
		fecha, err := utils.ParseFecha(*in.FechaAsignacion)
		if err != nil {
			return cambios, apperr.Validacion("fecha de asignación inválida: %q", *in.FechaAsignacion)
		}
		cambios.FechaAsignacion = &fecha
	}
	if in.FechaEntrega != nil {
		if *in.FechaEntrega == "" {
			cambios.BorrarEntrega = true
		} else {
			fe, err := utils.ParseFecha(*in.FechaEntrega)
			if err != nil {
				return cambios, apperr.Validacion("fecha de entrega inválida: %q", *in.FechaEntrega)
			}
			cambios.FechaEntrega = &fe
		}
	}
	return cambios, nil
}
