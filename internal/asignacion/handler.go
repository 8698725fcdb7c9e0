package asignacion

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/TallerGestion/api-taller/internal/apperr"
	"github.com/TallerGestion/api-taller/internal/utils"
	"github.com/gorilla/mux"
)

type Handler struct {
	Repo     *Repository
	Consulta *Consulta
}

func NewHandler(repo *Repository, consulta *Consulta) *Handler {
	return &Handler{Repo: repo, Consulta: consulta}
}

// POST /asignaciones
func (h *Handler) Asignar(w http.ResponseWriter, r *http.Request) {
	var in AsignarDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.ResponderError(w, apperr.Validacion("JSON mal formado"))
		return
	}
	if in.OrdenDetalleID == 0 {
		utils.ResponderError(w, apperr.Validacion("el detalle de orden es obligatorio"))
		return
	}
	datos, err := in.aDatos()
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	a, err := h.Repo.Asignar(in.OrdenDetalleID, datos)
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, a)
}

// PATCH /asignaciones/{id}
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderError(w, apperr.Validacion("ID de asignación inválido"))
		return
	}
	var in ActualizarDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.ResponderError(w, apperr.Validacion("JSON mal formado"))
		return
	}
	cambios, err := in.aCambios()
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	a, err := h.Repo.Actualizar(uint(id), cambios)
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, a)
}

// DELETE /asignaciones/{id}
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderError(w, apperr.Validacion("ID de asignación inválido"))
		return
	}
	if err := h.Repo.Eliminar(uint(id)); err != nil {
		utils.ResponderError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /asignaciones/por-detalle/{id}
func (h *Handler) BuscarPorDetalle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderError(w, apperr.Validacion("ID de detalle inválido"))
		return
	}
	a, err := h.Repo.BuscarPorOrdenDetalle(uint(id))
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, a)
}

// GET /asignaciones?trabajadorId=&desde=&hasta=&terminado=
func (h *Handler) Filtrar(w http.ResponseWriter, r *http.Request) {
	var f Filtro
	q := r.URL.Query()

	if v := q.Get("trabajadorId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			utils.ResponderError(w, apperr.Validacion("trabajadorId inválido"))
			return
		}
		tid := uint(id)
		f.TrabajadorID = &tid
	}
	if v := q.Get("desde"); v != "" {
		fecha, err := utils.ParseFecha(v)
		if err != nil {
			utils.ResponderError(w, apperr.Validacion("fecha 'desde' inválida: %q", v))
			return
		}
		f.Desde = &fecha
	}
	if v := q.Get("hasta"); v != "" {
		fecha, err := utils.ParseFecha(v)
		if err != nil {
			utils.ResponderError(w, apperr.Validacion("fecha 'hasta' inválida: %q", v))
			return
		}
		f.Hasta = &fecha
	}
	if v := q.Get("terminado"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			utils.ResponderError(w, apperr.Validacion("terminado inválido: %q", v))
			return
		}
		f.Terminado = &b
	}

	lista, err := h.Consulta.Filtrar(f)
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, lista)
}

// GET /asignaciones/pendientes/{trabajadorId}
func (h *Handler) Pendientes(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["trabajadorId"])
	if err != nil {
		utils.ResponderError(w, apperr.Validacion("ID de trabajador inválido"))
		return
	}
	lista, err := h.Consulta.PendientesPorTrabajador(uint(id))
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, lista)
}

// GET /asignaciones/pagadas/{trabajadorId}/{pagoId}
func (h *Handler) Pagadas(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tid, err := strconv.Atoi(vars["trabajadorId"])
	if err != nil {
		utils.ResponderError(w, apperr.Validacion("ID de trabajador inválido"))
		return
	}
	pid, err := strconv.Atoi(vars["pagoId"])
	if err != nil {
		utils.ResponderError(w, apperr.Validacion("ID de pago inválido"))
		return
	}
	lista, err := h.Consulta.PagadasEnPago(uint(tid), uint(pid))
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, lista)
}
