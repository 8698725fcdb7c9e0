package asignacion

import (
	"testing"
	"time"

	"github.com/TallerGestion/api-taller/internal/apperr"
	"github.com/TallerGestion/api-taller/internal/ordendetalle"
	"github.com/TallerGestion/api-taller/internal/trabajador"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
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
	require.NoError(t, trabajador.Migrate(db))
	require.NoError(t, ordendetalle.Migrate(db))
	require.NoError(t, Migrate(db))
	return db
}

func sembrarTrabajador(t *testing.T, db *gorm.DB, nombre string) uint {
	t.Helper()
	tr := &trabajador.Trabajador{Nombre: nombre, Estado: trabajador.EstadoActivo}
	require.NoError(t, db.Create(tr).Error)
	return tr.ID
}

func sembrarDetalle(t *testing.T, db *gorm.DB, ordenID uint, descripcion string) uint {
	t.Helper()
	d := &ordendetalle.OrdenDetalle{OrdenID: ordenID, Descripcion: descripcion}
	require.NoError(t, db.Create(d).Error)
	return d.ID
}

func fecha(s string) time.Time {
	f, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return f
}

func datosValidos(trabajadorID uint) DatosAsignacion {
	return DatosAsignacion{
		TrabajadorID:    trabajadorID,
		FechaAsignacion: fecha("2026-03-10"),
		Monto:           decimal.RequireFromString("150.00"),
	}
}

func TestAsignarCrea(t *testing.T) {
	db := abrirDBPrueba(t)
	repo := NewRepository(db)
	tid := sembrarTrabajador(t, db, "Juan")
	did := sembrarDetalle(t, db, 1, "Cambio de bujías")

	a, err := repo.Asignar(did, datosValidos(tid))
	require.NoError(t, err)

	assert.NotZero(t, a.ID)
	assert.Equal(t, did, a.OrdenDetalleID)
	assert.False(t, a.Cancelado)
	assert.Nil(t, a.PagoID)
	assert.Equal(t, "150.00", a.Monto.StringFixed(2))
}

func TestAsignarReemplazaSinDuplicar(t *testing.T) {
	db := abrirDBPrueba(t)
	repo := NewRepository(db)
	tid1 := sembrarTrabajador(t, db, "Juan")
	tid2 := sembrarTrabajador(t, db, "Ana")
	did := sembrarDetalle(t, db, 1, "Alineación")

	a1, err := repo.Asignar(did, datosValidos(tid1))
	require.NoError(t, err)

	datos := datosValidos(tid2)
	datos.Monto = decimal.RequireFromString("80.00")
	a2, err := repo.Asignar(did, datos)
	require.NoError(t, err)

	// mismo registro, nunca dos asignaciones vivas por detalle
	assert.Equal(t, a1.ID, a2.ID)
	assert.Equal(t, tid2, a2.TrabajadorID)
	assert.Equal(t, "80.00", a2.Monto.StringFixed(2))

	var cuenta int64
	require.NoError(t, db.Model(&Asignacion{}).Where("orden_detalle_id = ?", did).Count(&cuenta).Error)
	assert.EqualValues(t, 1, cuenta)
}

func TestAsignarValidaciones(t *testing.T) {
	db := abrirDBPrueba(t)
	repo := NewRepository(db)
	tid := sembrarTrabajador(t, db, "Juan")
	did := sembrarDetalle(t, db, 1, "Frenos")

	casos := []struct {
		nombre string
		datos  DatosAsignacion
	}{
		{"sin trabajador", DatosAsignacion{FechaAsignacion: fecha("2026-03-10"), Monto: decimal.NewFromInt(10)}},
		{"sin fecha", DatosAsignacion{TrabajadorID: tid, Monto: decimal.NewFromInt(10)}},
		{"monto negativo", DatosAsignacion{TrabajadorID: tid, FechaAsignacion: fecha("2026-03-10"), Monto: decimal.NewFromInt(-1)}},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			_, err := repo.Asignar(did, c.datos)
			assert.True(t, apperr.Es(err, apperr.TipoValidacion))
		})
	}

	_, err := repo.Asignar(did, datosValidos(999))
	assert.True(t, apperr.Es(err, apperr.TipoNoEncontrado))

	_, err = repo.Asignar(999, datosValidos(tid))
	assert.True(t, apperr.Es(err, apperr.TipoNoEncontrado))
}

func liquidarManual(t *testing.T, db *gorm.DB, id, pagoID uint) {
	t.Helper()
	require.NoError(t, db.Model(&Asignacion{}).Where("id = ?", id).
		Updates(map[string]interface{}{"cancelado": true, "pago_id": pagoID}).Error)
}

func TestLiquidadaRechazaEdiciones(t *testing.T) {
	db := abrirDBPrueba(t)
	repo := NewRepository(db)
	tid := sembrarTrabajador(t, db, "Juan")
	did := sembrarDetalle(t, db, 1, "Suspensión")

	a, err := repo.Asignar(did, datosValidos(tid))
	require.NoError(t, err)
	liquidarManual(t, db, a.ID, 7)

	_, err = repo.Asignar(did, datosValidos(tid))
	assert.True(t, apperr.Es(err, apperr.TipoConflicto))

	monto := decimal.RequireFromString("99.00")
	_, err = repo.Actualizar(a.ID, CambiosAsignacion{Monto: &monto})
	assert.True(t, apperr.Es(err, apperr.TipoConflicto))

	err = repo.Eliminar(a.ID)
	assert.True(t, apperr.Es(err, apperr.TipoConflicto))
}

// Una fila liquidada sin referencia de pago (dato corrupto) rechaza el
// reemplazo igual, sin tocar el puntero.
func TestLiquidadaSinPagoRechazaReemplazo(t *testing.T) {
	db := abrirDBPrueba(t)
	repo := NewRepository(db)
	tid := sembrarTrabajador(t, db, "Juan")
	did := sembrarDetalle(t, db, 1, "Suspensión")

	a, err := repo.Asignar(did, datosValidos(tid))
	require.NoError(t, err)
	require.NoError(t, db.Model(&Asignacion{}).Where("id = ?", a.ID).
		Update("cancelado", true).Error)

	_, err = repo.Asignar(did, datosValidos(tid))
	assert.True(t, apperr.Es(err, apperr.TipoConflicto))
}

func TestActualizarParcial(t *testing.T) {
	db := abrirDBPrueba(t)
	repo := NewRepository(db)
	tid := sembrarTrabajador(t, db, "Juan")
	did := sembrarDetalle(t, db, 1, "Llantas")

	datos := datosValidos(tid)
	datos.Notas = "original"
	a, err := repo.Asignar(did, datos)
	require.NoError(t, err)

	monto := decimal.RequireFromString("200.00")
	a, err = repo.Actualizar(a.ID, CambiosAsignacion{Monto: &monto})
	require.NoError(t, err)

	// solo cambió el monto
	assert.Equal(t, "200.00", a.Monto.StringFixed(2))
	assert.Equal(t, tid, a.TrabajadorID)
	assert.Equal(t, "original", a.Notas)
	assert.Equal(t, did, a.OrdenDetalleID)

	entrega := fecha("2026-03-20")
	a, err = repo.Actualizar(a.ID, CambiosAsignacion{FechaEntrega: &entrega})
	require.NoError(t, err)
	require.NotNil(t, a.FechaEntrega)

	a, err = repo.Actualizar(a.ID, CambiosAsignacion{BorrarEntrega: true})
	require.NoError(t, err)
	assert.Nil(t, a.FechaEntrega)

	negativo := decimal.NewFromInt(-5)
	_, err = repo.Actualizar(a.ID, CambiosAsignacion{Monto: &negativo})
	assert.True(t, apperr.Es(err, apperr.TipoValidacion))
}

func TestEliminarYBuscar(t *testing.T) {
	db := abrirDBPrueba(t)
	repo := NewRepository(db)
	tid := sembrarTrabajador(t, db, "Juan")
	did := sembrarDetalle(t, db, 1, "Pintura")

	a, err := repo.Asignar(did, datosValidos(tid))
	require.NoError(t, err)

	encontrada, err := repo.BuscarPorOrdenDetalle(did)
	require.NoError(t, err)
	assert.Equal(t, a.ID, encontrada.ID)

	require.NoError(t, repo.Eliminar(a.ID))

	_, err = repo.BuscarPorOrdenDetalle(did)
	assert.True(t, apperr.Es(err, apperr.TipoNoEncontrado))

	err = repo.Eliminar(a.ID)
	assert.True(t, apperr.Es(err, apperr.TipoNoEncontrado))
}
