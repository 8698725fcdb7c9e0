package ordendetalle

import (
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

// GET /ordenes/{id}/detalles
func (h *Handler) ListarPorOrden(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderError(w, apperr.Validacion("ID de orden inválido"))
		return
	}
	lista, err := h.Repo.ListarPorOrden(uint(id))
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, lista)
}
