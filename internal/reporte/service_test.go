package reporte

import (
	"testing"
	"time"

	"github.com/TallerGestion/api-taller/internal/asignacion"
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
	require.NoError(t, asignacion.Migrate(db))
	return db
}

func sembrarAsignacion(t *testing.T, db *gorm.DB, ordenID, tid uint, desc, monto string, cancelado bool) {
	t.Helper()
	d := &ordendetalle.OrdenDetalle{OrdenID: ordenID, Descripcion: desc}
	require.NoError(t, db.Create(d).Error)
	a := &asignacion.Asignacion{
		OrdenDetalleID:  d.ID,
		TrabajadorID:    tid,
		FechaAsignacion: time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local),
		Monto:           decimal.RequireFromString(monto),
		Cancelado:       cancelado,
	}
	require.NoError(t, db.Create(a).Error)
}

func TestPorTrabajadorParaOrden(t *testing.T) {
	db := abrirDBPrueba(t)

	ana := &trabajador.Trabajador{Nombre: "Ana", Apellido: "Gómez"}
	require.NoError(t, db.Create(ana).Error)
	beto := &trabajador.Trabajador{Nombre: "Beto"}
	require.NoError(t, db.Create(beto).Error)

	// orden 1: dos renglones de Ana (uno ya pagado) y uno de Beto
	sembrarAsignacion(t, db, 1, ana.ID, "Cambio de aceite", "100.00", false)
	sembrarAsignacion(t, db, 1, ana.ID, "Revisión general", "250.50", true)
	sembrarAsignacion(t, db, 1, beto.ID, "Latonería", "80.00", false)
	// orden 2: no debe aparecer
	sembrarAsignacion(t, db, 2, ana.ID, "Pintura", "999.00", false)

	servicio := NewServicio(db)
	resumenes, err := servicio.PorTrabajadorParaOrden(1)
	require.NoError(t, err)
	require.Len(t, resumenes, 2)

	// orden alfabético por nombre
	assert.Equal(t, "Ana Gómez", resumenes[0].Nombre)
	assert.Equal(t, ana.ID, resumenes[0].TrabajadorID)
	require.Len(t, resumenes[0].Renglones, 2)
	// el total suma sin importar el estado de liquidación
	assert.Equal(t, "350.50", resumenes[0].Total.StringFixed(2))
	assert.Equal(t, "Cambio de aceite", resumenes[0].Renglones[0].Descripcion)

	assert.Equal(t, "Beto", resumenes[1].Nombre)
	assert.Equal(t, "80.00", resumenes[1].Total.StringFixed(2))
}

func TestOrdenSinAsignaciones(t *testing.T) {
	db := abrirDBPrueba(t)

	servicio := NewServicio(db)
	resumenes, err := servicio.PorTrabajadorParaOrden(42)
	require.NoError(t, err)
	assert.Empty(t, resumenes)
}
