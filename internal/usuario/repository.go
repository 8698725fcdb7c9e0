package usuario

import (
	"errors"

	"github.com/TallerGestion/api-taller/internal/apperr"
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Crear(u *Usuario) error {
	if err := r.DB.Create(u).Error; err != nil {
		return apperr.Almacenamiento("error al crear usuario", err)
	}
	return nil
}

func (r *Repository) BuscarPorEmail(email string) (*Usuario, error) {
	var u Usuario
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NoEncontrado("usuario no existe")
		}
		return nil, apperr.Almacenamiento("error al buscar usuario", err)
	}
	return &u, nil
}
