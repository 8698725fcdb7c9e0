package reporte

import (
	"net/http"
	"strconv"

	"github.com/TallerGestion/api-taller/internal/apperr"
	"github.com/TallerGestion/api-taller/internal/utils"
)

type Handler struct {
	Servicio *Servicio
}

func NewHandler(servicio *Servicio) *Handler {
	return &Handler{Servicio: servicio}
}

// GET /reportes/pagos-por-trabajador?ordenId=
func (h *Handler) PorTrabajadorParaOrden(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query().Get("ordenId")
	if v == "" {
		utils.ResponderError(w, apperr.Validacion("ordenId es obligatorio"))
		return
	}
	id, err := strconv.Atoi(v)
	if err != nil {
		utils.ResponderError(w, apperr.Validacion("ordenId inválido"))
		return
	}
	resumenes, err := h.Servicio.PorTrabajadorParaOrden(uint(id))
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, resumenes)
}
