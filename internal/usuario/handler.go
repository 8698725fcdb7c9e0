package usuario

import (
	"encoding/json"
	"net/http"

	"github.com/TallerGestion/api-taller/internal/apperr"
	"github.com/TallerGestion/api-taller/internal/auth"
	"github.com/TallerGestion/api-taller/internal/utils"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

type loginRequest struct {
	Email string `json:"email"`
	Clave string `json:"clave"`
}

type crearUsuarioRequest struct {
	Nombre  string `json:"nombre"`
	Email   string `json:"email"`
	Clave   string `json:"clave"`
	EsAdmin bool   `json:"esAdmin"`
}

// Login genera un JWT para credenciales válidas.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	user, err := h.Repo.BuscarPorEmail(req.Email)
	if err != nil {
		http.Error(w, "credenciales inválidas", http.StatusUnauthorized)
		return
	}

	if !utils.CheckClave(user.Clave, req.Clave) {
		http.Error(w, "clave incorrecta", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerarToken(user.ID, user.EsAdmin)
	if err != nil {
		http.Error(w, "error al generar token", http.StatusInternalServerError)
		return
	}

	utils.ResponderJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Crear registra un usuario nuevo (solo admin).
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var req crearUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderError(w, apperr.Validacion("JSON mal formado"))
		return
	}
	if req.Nombre == "" || req.Email == "" {
		utils.ResponderError(w, apperr.Validacion("nombre y email son obligatorios"))
		return
	}
	if req.Clave == "" {
		clave, err := utils.GenerarClaveTemporal()
		if err != nil {
			utils.ResponderError(w, apperr.Almacenamiento("error al generar clave temporal", err))
			return
		}
		req.Clave = clave
	}

	hash, err := utils.HashClave(req.Clave)
	if err != nil {
		utils.ResponderError(w, apperr.Almacenamiento("error al cifrar clave", err))
		return
	}

	u := &Usuario{Nombre: req.Nombre, Email: req.Email, Clave: hash, EsAdmin: req.EsAdmin}
	if err := h.Repo.Crear(u); err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, u)
}
