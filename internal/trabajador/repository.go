package trabajador

import (
	"errors"

	"github.com/TallerGestion/api-taller/internal/apperr"
	"gorm.io/gorm"
)

// Repository encapsula el acceso a datos del directorio de trabajadores.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Crear registra un trabajador nuevo; entra como activo salvo que se indique otro estado.
func (r *Repository) Crear(t *Trabajador) error {
	if t.Nombre == "" {
		return apperr.Validacion("el nombre del trabajador es obligatorio")
	}
	if t.Estado == "" {
		t.Estado = EstadoActivo
	}
	if !t.Estado.Valido() {
		return apperr.Validacion("estado desconocido: %q", t.Estado)
	}
	if err := r.DB.Create(t).Error; err != nil {
		return apperr.Almacenamiento("error al crear trabajador", err)
	}
	return nil
}

// BuscarPorID devuelve un trabajador por su ID.
func (r *Repository) BuscarPorID(id uint) (*Trabajador, error) {
	var t Trabajador
	if err := r.DB.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NoEncontrado("trabajador %d no existe", id)
		}
		return nil, apperr.Almacenamiento("error al buscar trabajador", err)
	}
	return &t, nil
}

// Listar devuelve todos los trabajadores, opcionalmente filtrados por estado.
func (r *Repository) Listar(estado Estado) ([]Trabajador, error) {
	var lista []Trabajador
	q := r.DB.Order("nombre ASC, apellido ASC")
	if estado != "" {
		if !estado.Valido() {
			return nil, apperr.Validacion("estado desconocido: %q", estado)
		}
		q = q.Where("estado = ?", estado)
	}
	if err := q.Find(&lista).Error; err != nil {
		return nil, apperr.Almacenamiento("error al listar trabajadores", err)
	}
	return lista, nil
}

// Actualizar modifica los datos de contacto; el estado se cambia solo por CambiarEstado.
func (r *Repository) Actualizar(id uint, nombre, apellido, telefono string) (*Trabajador, error) {
	t, err := r.BuscarPorID(id)
	if err != nil {
		return nil, err
	}
	if nombre == "" {
		return nil, apperr.Validacion("el nombre del trabajador es obligatorio")
	}
	t.Nombre = nombre
	t.Apellido = apellido
	t.Telefono = telefono
	if err := r.DB.Save(t).Error; err != nil {
		return nil, apperr.Almacenamiento("error al actualizar trabajador", err)
	}
	return t, nil
}

// CambiarEstado aplica una transición explícita del enum de estados.
func (r *Repository) CambiarEstado(id uint, hacia Estado) (*Trabajador, error) {
	t, err := r.BuscarPorID(id)
	if err != nil {
		return nil, err
	}
	if !hacia.Valido() {
		return nil, apperr.Validacion("estado desconocido: %q", hacia)
	}
	if t.Estado == hacia {
		return t, nil
	}
	if !PuedeTransicionar(t.Estado, hacia) {
		return nil, apperr.Conflicto("transición de estado no permitida: %s → %s", t.Estado, hacia)
	}
	if err := r.DB.Model(t).Update("estado", hacia).Error; err != nil {
		return nil, apperr.Almacenamiento("error al cambiar estado", err)
	}
	t.Estado = hacia
	return t, nil
}
