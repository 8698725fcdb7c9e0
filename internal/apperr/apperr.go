package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Tipo clasifica el error para que el cliente sepa si reintentar o corregir.
type Tipo string

const (
	TipoValidacion     Tipo = "validacion"
	TipoConflicto      Tipo = "conflicto"
	TipoNoEncontrado   Tipo = "no_encontrado"
	TipoAlmacenamiento Tipo = "almacenamiento"
)

// Error es el error estructurado que devuelven repositorios y servicios.
type Error struct {
	Tipo    Tipo   `json:"tipo"`
	Mensaje string `json:"error"`
	Causa   error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Causa != nil {
		return fmt.Sprintf("%s: %s: %v", e.Tipo, e.Mensaje, e.Causa)
	}
	return fmt.Sprintf("%s: %s", e.Tipo, e.Mensaje)
}

func (e *Error) Unwrap() error { return e.Causa }

// Validacion: entrada faltante, malformada o fuera de rango. No se reintenta.
func Validacion(formato string, args ...interface{}) *Error {
	return &Error{Tipo: TipoValidacion, Mensaje: fmt.Sprintf(formato, args...)}
}

// Conflicto: el estado actual del registro impide la operación; el cliente
// debe recargar y reintentar con datos frescos.
func Conflicto(formato string, args ...interface{}) *Error {
	return &Error{Tipo: TipoConflicto, Mensaje: fmt.Sprintf(formato, args...)}
}

// NoEncontrado: el registro referenciado no existe.
func NoEncontrado(formato string, args ...interface{}) *Error {
	return &Error{Tipo: TipoNoEncontrado, Mensaje: fmt.Sprintf(formato, args...)}
}

// Almacenamiento: la transacción no pudo confirmarse; el estado previo se
// conserva. No se reintenta automáticamente.
func Almacenamiento(mensaje string, causa error) *Error {
	return &Error{Tipo: TipoAlmacenamiento, Mensaje: mensaje, Causa: causa}
}

// Es indica si err es un *Error del tipo dado.
func Es(err error, t Tipo) bool {
	var e *Error
	return errors.As(err, &e) && e.Tipo == t
}

// De extrae el *Error envuelto, o nil si no hay ninguno.
func De(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// StatusHTTP traduce el tipo de error al código de respuesta.
func StatusHTTP(err error) int {
	switch e := De(err); {
	case e == nil:
		return http.StatusInternalServerError
	case e.Tipo == TipoValidacion:
		return http.StatusBadRequest
	case e.Tipo == TipoConflicto:
		return http.StatusConflict
	case e.Tipo == TipoNoEncontrado:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
