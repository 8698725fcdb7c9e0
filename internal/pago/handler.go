package pago

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/TallerGestion/api-taller/internal/apperr"
	"github.com/TallerGestion/api-taller/internal/auth"
	"github.com/TallerGestion/api-taller/internal/utils"
	"github.com/gorilla/mux"
)

type Handler struct {
	Servicio *Servicio
	Repo     *Repository
}

func NewHandler(servicio *Servicio, repo *Repository) *Handler {
	return &Handler{Servicio: servicio, Repo: repo}
}

// POST /pagos
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var in CrearPagoDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.ResponderError(w, apperr.Validacion("JSON mal formado"))
		return
	}
	req, err := in.aCrearPago(auth.UsuarioDesdeContexto(r.Context()))
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	p, err := h.Servicio.Crear(req)
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, p)
}

// PATCH /pagos/{id}
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderError(w, apperr.Validacion("ID de pago inválido"))
		return
	}
	var in ActualizarPagoDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.ResponderError(w, apperr.Validacion("JSON mal formado"))
		return
	}
	req, err := in.aActualizarPago()
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	p, err := h.Servicio.Actualizar(uint(id), req)
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, p)
}

// GET /pagos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderError(w, apperr.Validacion("ID de pago inválido"))
		return
	}
	p, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, p)
}

// GET /pagos/por-trabajador/{trabajadorId}
func (h *Handler) ListarPorTrabajador(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["trabajadorId"])
	if err != nil {
		utils.ResponderError(w, apperr.Validacion("ID de trabajador inválido"))
		return
	}
	lista, err := h.Repo.ListarPorTrabajador(uint(id))
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, lista)
}

// DELETE /pagos/{id}
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderError(w, apperr.Validacion("ID de pago inválido"))
		return
	}
	if err := h.Servicio.Eliminar(uint(id)); err != nil {
		utils.ResponderError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
