package trabajador

import (
	"testing"

	"github.com/TallerGestion/api-taller/internal/apperr"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func abrirDBPrueba(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, Migrate(db))
	return db
}

func TestCrearEntraComoActivo(t *testing.T) {
	repo := NewRepository(abrirDBPrueba(t))

	tr := &Trabajador{Nombre: "Juan", Apellido: "Pérez"}
	require.NoError(t, repo.Crear(tr))

	assert.NotZero(t, tr.ID)
	assert.Equal(t, EstadoActivo, tr.Estado)
	assert.Equal(t, "Juan Pérez", tr.NombreCompleto())
}

func TestCrearSinNombre(t *testing.T) {
	repo := NewRepository(abrirDBPrueba(t))

	err := repo.Crear(&Trabajador{})
	assert.True(t, apperr.Es(err, apperr.TipoValidacion))
}

func TestListarFiltraPorEstado(t *testing.T) {
	repo := NewRepository(abrirDBPrueba(t))

	require.NoError(t, repo.Crear(&Trabajador{Nombre: "Ana"}))
	require.NoError(t, repo.Crear(&Trabajador{Nombre: "Luis"}))
	inactivo := &Trabajador{Nombre: "Mario", Estado: EstadoInactivo}
	require.NoError(t, repo.Crear(inactivo))

	activos, err := repo.Listar(EstadoActivo)
	require.NoError(t, err)
	assert.Len(t, activos, 2)

	todos, err := repo.Listar("")
	require.NoError(t, err)
	assert.Len(t, todos, 3)

	_, err = repo.Listar("archivado")
	assert.True(t, apperr.Es(err, apperr.TipoValidacion))
}

func TestCambiarEstado(t *testing.T) {
	repo := NewRepository(abrirDBPrueba(t))

	tr := &Trabajador{Nombre: "Ana"}
	require.NoError(t, repo.Crear(tr))

	// baja lógica
	tr, err := repo.CambiarEstado(tr.ID, EstadoInactivo)
	require.NoError(t, err)
	assert.Equal(t, EstadoInactivo, tr.Estado)

	// reactivación
	tr, err = repo.CambiarEstado(tr.ID, EstadoActivo)
	require.NoError(t, err)
	assert.Equal(t, EstadoActivo, tr.Estado)

	// mismo estado: no-op
	tr, err = repo.CambiarEstado(tr.ID, EstadoActivo)
	require.NoError(t, err)
	assert.Equal(t, EstadoActivo, tr.Estado)

	// estado desconocido
	_, err = repo.CambiarEstado(tr.ID, "archivado")
	assert.True(t, apperr.Es(err, apperr.TipoValidacion))

	// trabajador inexistente
	_, err = repo.CambiarEstado(999, EstadoInactivo)
	assert.True(t, apperr.Es(err, apperr.TipoNoEncontrado))
}

func TestTransiciones(t *testing.T) {
	assert.True(t, PuedeTransicionar(EstadoActivo, EstadoInactivo))
	assert.True(t, PuedeTransicionar(EstadoInactivo, EstadoActivo))
	assert.False(t, PuedeTransicionar(EstadoActivo, EstadoActivo))
	assert.False(t, Estado("archivado").Valido())
}
