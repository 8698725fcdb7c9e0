package utils

import (
	"crypto/rand"
	"encoding/json"
	"math/big"
	"net/http"
	"time"

	"github.com/TallerGestion/api-taller/internal/apperr"
)

// ResponderJSON escribe v como JSON con el status indicado.
func ResponderJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ResponderError traduce el error estructurado a su status HTTP y lo escribe
// como {"tipo": ..., "error": ...}. Errores no clasificados salen como 500
// con mensaje genérico para no filtrar detalles internos.
func ResponderError(w http.ResponseWriter, err error) {
	status := apperr.StatusHTTP(err)
	e := apperr.De(err)
	if e == nil {
		e = apperr.Almacenamiento("error interno", nil)
	}
	ResponderJSON(w, status, e)
}

// ParseFecha interpreta una fecha calendario "2006-01-02" (día local, sin hora).
func ParseFecha(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// GenerarClaveTemporal genera una clave aleatoria segura de 12 caracteres.
func GenerarClaveTemporal() (string, error) {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	length := 12
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		if err != nil {
			return "", err
		}
		result[i] = chars[num.Int64()]
	}
	return string(result), nil
}
