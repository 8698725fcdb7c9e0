// internal/pago/servicio.go
package pago

import (
	"errors"
	"time"

	"github.com/TallerGestion/api-taller/internal/apperr"
	"github.com/TallerGestion/api-taller/internal/asignacion"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Servicio es el motor de liquidación: el único escritor de Cancelado y
// PagoID en las asignaciones. Cada operación corre dentro de una sola
// transacción; o queda el estado previo o el posterior, nunca una mezcla.
//
// La marca de liquidación se toma con un UPDATE condicional
// (WHERE cancelado = false): de dos liquidaciones concurrentes sobre la
// misma asignación gana exactamente una y la otra recibe conflicto.
type Servicio struct {
	DB *gorm.DB
}

func NewServicio(db *gorm.DB) *Servicio {
	return &Servicio{DB: db}
}

// CrearPago son los datos ya validados en el borde HTTP para emitir un pago.
type CrearPago struct {
	TrabajadorID  uint
	Fecha         time.Time
	Descuento     decimal.Decimal
	Notas         string
	AsignacionIDs []uint
	CreadorID     uint
}

// ActualizarPago edita un pago emitido. AsignacionIDs nil conserva los
// miembros actuales; un puntero nil deja el campo como está.
type ActualizarPago struct {
	Fecha         *time.Time
	Descuento     *decimal.Decimal
	Notas         *string
	AsignacionIDs []uint
}

// Crear emite un pago nuevo: valida los miembros, calcula el subtotal desde
// los montos vigentes, persiste el pago y marca cada miembro como liquidado.
func (s *Servicio) Crear(req CrearPago) (*Pago, error) {
	ids := dedupe(req.AsignacionIDs)
	if len(ids) == 0 {
		return nil, apperr.Validacion("un pago requiere al menos una asignación")
	}
	if req.Descuento.IsNegative() {
		return nil, apperr.Validacion("el descuento no puede ser negativo")
	}
	if req.Fecha.IsZero() {
		return nil, apperr.Validacion("la fecha del pago es obligatoria")
	}

	tx := s.DB.Begin()
	if tx.Error != nil {
		return nil, apperr.Almacenamiento("no se pudo iniciar la transacción", tx.Error)
	}

	p, err := s.crearEnTx(tx, req, ids)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		return nil, apperr.Almacenamiento("no se pudo confirmar la transacción", err)
	}
	return p, nil
}

func (s *Servicio) crearEnTx(tx *gorm.DB, req CrearPago, ids []uint) (*Pago, error) {
	miembros, err := cargarMiembros(tx, ids)
	if err != nil {
		return nil, err
	}

	subtotal := decimal.Zero
	for i := range miembros {
		m := &miembros[i]
		if m.TrabajadorID != req.TrabajadorID {
			return nil, apperr.Validacion("la asignación %d pertenece a otro trabajador", m.ID)
		}
		if m.Cancelado {
			return nil, apperr.Conflicto("la asignación %d ya está liquidada en otro pago", m.ID)
		}
		subtotal = subtotal.Add(m.Monto)
	}
	if req.Descuento.GreaterThan(subtotal) {
		return nil, apperr.Validacion("el descuento %s supera el subtotal %s", req.Descuento, subtotal)
	}

	p := &Pago{
		TrabajadorID: req.TrabajadorID,
		Fecha:        req.Fecha,
		Notas:        req.Notas,
		Subtotal:     subtotal,
		Descuento:    req.Descuento,
		Total:        subtotal.Sub(req.Descuento),
		CreadorID:    req.CreadorID,
	}
	if err := tx.Create(p).Error; err != nil {
		return nil, apperr.Almacenamiento("error al crear pago", err)
	}

	for _, id := range ids {
		if err := liquidar(tx, id, p.ID); err != nil {
			return nil, err
		}
	}

	if err := tx.Where("pago_id = ?", p.ID).Order("id ASC").Find(&p.Asignaciones).Error; err != nil {
		return nil, apperr.Almacenamiento("error al recargar asignaciones del pago", err)
	}
	return p, nil
}

// Actualizar edita un pago en el lugar: des-liquida los miembros que salen,
// liquida los que entran y recalcula subtotal y total, todo en una
// transacción.
func (s *Servicio) Actualizar(pagoID uint, req ActualizarPago) (*Pago, error) {
	if req.Descuento != nil && req.Descuento.IsNegative() {
		return nil, apperr.Validacion("el descuento no puede ser negativo")
	}

	tx := s.DB.Begin()
	if tx.Error != nil {
		return nil, apperr.Almacenamiento("no se pudo iniciar la transacción", tx.Error)
	}

	p, err := s.actualizarEnTx(tx, pagoID, req)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		return nil, apperr.Almacenamiento("no se pudo confirmar la transacción", err)
	}
	return p, nil
}

func (s *Servicio) actualizarEnTx(tx *gorm.DB, pagoID uint, req ActualizarPago) (*Pago, error) {
	var p Pago
	if err := tx.First(&p, pagoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NoEncontrado("pago %d no existe", pagoID)
		}
		return nil, apperr.Almacenamiento("error al buscar pago", err)
	}

	var actuales []uint
	if err := tx.Model(&asignacion.Asignacion{}).Where("pago_id = ?", pagoID).Pluck("id", &actuales).Error; err != nil {
		return nil, apperr.Almacenamiento("error al cargar miembros actuales", err)
	}

	nuevos := actuales
	if req.AsignacionIDs != nil {
		nuevos = dedupe(req.AsignacionIDs)
	}
	if len(nuevos) == 0 {
		return nil, apperr.Validacion("un pago debe conservar al menos una asignación")
	}

	miembros, err := cargarMiembros(tx, nuevos)
	if err != nil {
		return nil, err
	}

	subtotal := decimal.Zero
	for i := range miembros {
		m := &miembros[i]
		if m.TrabajadorID != p.TrabajadorID {
			return nil, apperr.Validacion("la asignación %d pertenece a otro trabajador", m.ID)
		}
		if m.Cancelado && (m.PagoID == nil || *m.PagoID != pagoID) {
			return nil, apperr.Conflicto("la asignación %d está liquidada en otro pago", m.ID)
		}
		subtotal = subtotal.Add(m.Monto)
	}

	descuento := p.Descuento
	if req.Descuento != nil {
		descuento = *req.Descuento
	}
	if descuento.GreaterThan(subtotal) {
		return nil, apperr.Validacion("el descuento %s supera el subtotal %s", descuento, subtotal)
	}

	// des-liquidar los que salen
	for _, id := range diferencia(actuales, nuevos) {
		if err := desliquidar(tx, id, pagoID); err != nil {
			return nil, err
		}
	}
	// liquidar los que entran
	for _, id := range diferencia(nuevos, actuales) {
		if err := liquidar(tx, id, pagoID); err != nil {
			return nil, err
		}
	}

	if req.Fecha != nil {
		p.Fecha = *req.Fecha
	}
	if req.Notas != nil {
		p.Notas = *req.Notas
	}
	p.Descuento = descuento
	p.Subtotal = subtotal
	p.Total = subtotal.Sub(descuento)

	if err := tx.Save(&p).Error; err != nil {
		return nil, apperr.Almacenamiento("error al actualizar pago", err)
	}

	if err := tx.Where("pago_id = ?", p.ID).Order("id ASC").Find(&p.Asignaciones).Error; err != nil {
		return nil, apperr.Almacenamiento("error al recargar asignaciones del pago", err)
	}
	return &p, nil
}

// Eliminar des-liquida todos los miembros y borra el pago, en una transacción.
func (s *Servicio) Eliminar(pagoID uint) error {
	tx := s.DB.Begin()
	if tx.Error != nil {
		return apperr.Almacenamiento("no se pudo iniciar la transacción", tx.Error)
	}

	var p Pago
	if err := tx.First(&p, pagoID).Error; err != nil {
		_ = tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NoEncontrado("pago %d no existe", pagoID)
		}
		return apperr.Almacenamiento("error al buscar pago", err)
	}

	err := tx.Model(&asignacion.Asignacion{}).
		Where("pago_id = ?", pagoID).
		Updates(map[string]interface{}{"cancelado": false, "pago_id": nil}).Error
	if err != nil {
		_ = tx.Rollback()
		return apperr.Almacenamiento("error al des-liquidar asignaciones", err)
	}

	if err := tx.Delete(&Pago{}, pagoID).Error; err != nil {
		_ = tx.Rollback()
		return apperr.Almacenamiento("error al borrar pago", err)
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		return apperr.Almacenamiento("no se pudo confirmar la transacción", err)
	}
	return nil
}

/* ============================= helpers ============================= */

// liquidar marca una asignación como pagada bajo pagoID. El WHERE condicional
// sobre cancelado es el candado contra liquidaciones concurrentes.
func liquidar(tx *gorm.DB, asignacionID, pagoID uint) error {
	res := tx.Model(&asignacion.Asignacion{}).
		Where("id = ? AND cancelado = ? AND pago_id IS NULL", asignacionID, false).
		Updates(map[string]interface{}{"cancelado": true, "pago_id": pagoID})
	if res.Error != nil {
		return apperr.Almacenamiento("error al liquidar asignación", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.Conflicto("la asignación %d ya fue liquidada por otra operación", asignacionID)
	}
	return nil
}

// desliquidar revierte la marca, solo si la asignación pertenece a este pago.
func desliquidar(tx *gorm.DB, asignacionID, pagoID uint) error {
	res := tx.Model(&asignacion.Asignacion{}).
		Where("id = ? AND pago_id = ?", asignacionID, pagoID).
		Updates(map[string]interface{}{"cancelado": false, "pago_id": nil})
	if res.Error != nil {
		return apperr.Almacenamiento("error al des-liquidar asignación", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.Conflicto("la asignación %d ya no pertenece al pago %d", asignacionID, pagoID)
	}
	return nil
}

// cargarMiembros trae las asignaciones referenciadas y exige que existan todas.
func cargarMiembros(tx *gorm.DB, ids []uint) ([]asignacion.Asignacion, error) {
	var miembros []asignacion.Asignacion
	if err := tx.Where("id IN ?", ids).Find(&miembros).Error; err != nil {
		return nil, apperr.Almacenamiento("error al cargar asignaciones", err)
	}
	if len(miembros) != len(ids) {
		vistos := make(map[uint]bool, len(miembros))
		for _, m := range miembros {
			vistos[m.ID] = true
		}
		for _, id := range ids {
			if !vistos[id] {
				return nil, apperr.NoEncontrado("asignación %d no existe", id)
			}
		}
	}
	return miembros, nil
}

func dedupe(ids []uint) []uint {
	vistos := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 || vistos[id] {
			continue
		}
		vistos[id] = true
		out = append(out, id)
	}
	return out
}

// diferencia devuelve los elementos de a que no están en b.
func diferencia(a, b []uint) []uint {
	en := make(map[uint]bool, len(b))
	for _, id := range b {
		en[id] = true
	}
	var out []uint
	for _, id := range a {
		if !en[id] {
			out = append(out, id)
		}
	}
	return out
}
