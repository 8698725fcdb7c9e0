package trabajador

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/TallerGestion/api-taller/internal/apperr"
	"github.com/TallerGestion/api-taller/internal/utils"
	"github.com/gorilla/mux"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

type trabajadorRequest struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Telefono string `json:"telefono"`
}

// GET /trabajadores?estado=
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	estado := Estado(r.URL.Query().Get("estado"))
	lista, err := h.Repo.Listar(estado)
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, lista)
}

// POST /trabajadores
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var req trabajadorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderError(w, apperr.Validacion("JSON mal formado"))
		return
	}
	t := &Trabajador{Nombre: req.Nombre, Apellido: req.Apellido, Telefono: req.Telefono}
	if err := h.Repo.Crear(t); err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, t)
}

// PUT /trabajadores/{id}
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderError(w, apperr.Validacion("ID de trabajador inválido"))
		return
	}
	var req trabajadorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderError(w, apperr.Validacion("JSON mal formado"))
		return
	}
	t, err := h.Repo.Actualizar(uint(id), req.Nombre, req.Apellido, req.Telefono)
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, t)
}

// DELETE /trabajadores/{id}: baja lógica, transición a inactivo.
func (h *Handler) Desactivar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderError(w, apperr.Validacion("ID de trabajador inválido"))
		return
	}
	t, err := h.Repo.CambiarEstado(uint(id), EstadoInactivo)
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, t)
}

// PATCH /trabajadores/{id}/estado
func (h *Handler) CambiarEstado(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderError(w, apperr.Validacion("ID de trabajador inválido"))
		return
	}
	var payload struct {
		Estado Estado `json:"estado"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.ResponderError(w, apperr.Validacion("JSON mal formado"))
		return
	}
	t, err := h.Repo.CambiarEstado(uint(id), payload.Estado)
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, t)
}
