// internal/pago/dto.go
package pago

import (
	"github.com/TallerGestion/api-taller/internal/apperr"
	"github.com/TallerGestion/api-taller/internal/utils"
	"github.com/shopspring/decimal"
)

// CrearPagoDTO es el payload de POST /pagos.
type CrearPagoDTO struct {
	TrabajadorID  uint            `json:"trabajadorId"`
	Fecha         string          `json:"fecha"`
	Descuento     decimal.Decimal `json:"descuento"`
	Notas         string          `json:"notas"`
	AsignacionIDs []uint          `json:"asignacionIds"`
}

func (in *CrearPagoDTO) aCrearPago(creadorID uint) (CrearPago, error) {
	var req CrearPago
	if in.TrabajadorID == 0 {
		return req, apperr.Validacion("el trabajador es obligatorio")
	}
	if in.Fecha == "" {
		return req, apperr.Validacion("la fecha del pago es obligatoria")
	}
	fecha, err := utils.ParseFecha(in.Fecha)
	if err != nil {
		return req, apperr.Validacion("fecha de pago inválida: %q", in.Fecha)
	}
	req = CrearPago{
		TrabajadorID:  in.TrabajadorID,
		Fecha:         fecha,
		Descuento:     in.Descuento,
		Notas:         in.Notas,
		AsignacionIDs: in.AsignacionIDs,
		CreadorID:     creadorID,
	}
	return req, nil
}

// ActualizarPagoDTO es el payload de PATCH /pagos/{id}; los campos ausentes
// no se tocan. asignacionIds ausente conserva los miembros actuales.
type ActualizarPagoDTO struct {
	Fecha         *string          `json:"fecha"`
	Descuento     *decimal.Decimal `json:"descuento"`
	Notas         *string          `json:"notas"`
	AsignacionIDs []uint           `json:"asignacionIds"`
}

func (in *ActualizarPagoDTO) aActualizarPago() (ActualizarPago, error) {
	var req ActualizarPago
	if in.Fecha != nil {
		fecha, err := utils.ParseFecha(*in.Fecha)
		if err != nil {
			return req, apperr.Validacion("fecha de pago inválida: %q", *in.Fecha)
		}
		req.Fecha = &fecha
	}
	req.Descuento = in.Descuento
	req.Notas = in.Notas
	req.AsignacionIDs = in.AsignacionIDs
	return req, nil
}
