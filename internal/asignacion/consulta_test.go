package asignacion

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// arma un tablero de prueba: dos trabajadores, detalles terminados y
// pendientes, asignaciones en varias fechas.
func sembrarEscenario(t *testing.T) (*gorm.DB, *Consulta, uint, uint) {
	t.Helper()
	db := abrirDBPrueba(t)
	repo := NewRepository(db)
	tidJuan := sembrarTrabajador(t, db, "Juan")
	tidAna := sembrarTrabajador(t, db, "Ana")

	crear := func(ordenID uint, desc, dia string, tid uint, monto string, terminado bool) *Asignacion {
		did := sembrarDetalle(t, db, ordenID, desc)
		if terminado {
			require.NoError(t, db.Table("orden_detalles").Where("id = ?", did).Update("terminado", true).Error)
		}
		a, err := repo.Asignar(did, DatosAsignacion{
			TrabajadorID:    tid,
			FechaAsignacion: fecha(dia),
			Monto:           decimal.RequireFromString(monto),
		})
		require.NoError(t, err)
		return a
	}

	crear(1, "Motor", "2026-03-01", tidJuan, "100.00", true)
	crear(1, "Caja", "2026-03-10", tidJuan, "150.00", false)
	crear(1, "Frenos", "2026-03-20", tidAna, "50.00", true)
	crear(2, "Pintura", "2026-04-05", tidJuan, "300.00", false)

	return db, NewConsulta(db), tidJuan, tidAna
}

func TestFiltrarSinCriterios(t *testing.T) {
	_, consulta, _, _ := sembrarEscenario(t)

	todas, err := consulta.Filtrar(Filtro{})
	require.NoError(t, err)
	assert.Len(t, todas, 4)
}

func TestFiltrarCombinaConAND(t *testing.T) {
	_, consulta, tidJuan, _ := sembrarEscenario(t)

	desde := fecha("2026-03-01")
	hasta := fecha("2026-03-31")
	lista, err := consulta.Filtrar(Filtro{TrabajadorID: &tidJuan, Desde: &desde, Hasta: &hasta})
	require.NoError(t, err)
	require.Len(t, lista, 2)
	for _, a := range lista {
		assert.Equal(t, tidJuan, a.TrabajadorID)
	}
}

func TestFiltrarLimitesInclusivos(t *testing.T) {
	_, consulta, _, _ := sembrarEscenario(t)

	// los límites caen exactamente sobre fechas de asignación
	desde := fecha("2026-03-10")
	hasta := fecha("2026-03-20")
	lista, err := consulta.Filtrar(Filtro{Desde: &desde, Hasta: &hasta})
	require.NoError(t, err)
	assert.Len(t, lista, 2)
}

func TestFiltrarPorTerminado(t *testing.T) {
	_, consulta, _, _ := sembrarEscenario(t)

	terminado := true
	lista, err := consulta.Filtrar(Filtro{Terminado: &terminado})
	require.NoError(t, err)
	assert.Len(t, lista, 2)

	terminado = false
	lista, err = consulta.Filtrar(Filtro{Terminado: &terminado})
	require.NoError(t, err)
	assert.Len(t, lista, 2)
}

func TestFiltrarEsIdempotente(t *testing.T) {
	_, consulta, tidJuan, _ := sembrarEscenario(t)

	primera, err := consulta.Filtrar(Filtro{TrabajadorID: &tidJuan})
	require.NoError(t, err)
	segunda, err := consulta.Filtrar(Filtro{TrabajadorID: &tidJuan})
	require.NoError(t, err)
	assert.Equal(t, primera, segunda)
}

func TestPendientesYPagadas(t *testing.T) {
	db, consulta, tidJuan, _ := sembrarEscenario(t)

	pendientes, err := consulta.PendientesPorTrabajador(tidJuan)
	require.NoError(t, err)
	require.Len(t, pendientes, 3)

	// se liquida una de ellas bajo el pago 5
	liquidarManual(t, db, pendientes[0].ID, 5)

	quedan, err := consulta.PendientesPorTrabajador(tidJuan)
	require.NoError(t, err)
	assert.Len(t, quedan, 2)

	pagadas, err := consulta.PagadasEnPago(tidJuan, 5)
	require.NoError(t, err)
	require.Len(t, pagadas, 1)
	assert.Equal(t, pendientes[0].ID, pagadas[0].ID)
	assert.True(t, pagadas[0].Cancelado)

	// el filtro por terminado no mira Cancelado
	terminado := true
	lista, err := consulta.Filtrar(Filtro{Terminado: &terminado})
	require.NoError(t, err)
	assert.Len(t, lista, 2)
}
