package main

import (
	"log"
	"net/http"
	"os"

	"github.com/TallerGestion/api-taller/internal/asignacion"
	"github.com/TallerGestion/api-taller/internal/auth"
	"github.com/TallerGestion/api-taller/internal/logger"
	"github.com/TallerGestion/api-taller/internal/ordendetalle"
	"github.com/TallerGestion/api-taller/internal/pago"
	"github.com/TallerGestion/api-taller/internal/reporte"
	"github.com/TallerGestion/api-taller/internal/trabajador"
	"github.com/TallerGestion/api-taller/internal/usuario"
	"github.com/TallerGestion/api-taller/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	// .env es opcional; en producción las variables vienen del entorno
	_ = godotenv.Load()

	zaplog, err := logger.NewZapLog()
	if err != nil {
		log.Fatal("Error al iniciar logger:", err)
	}
	defer func() { _ = zaplog.Sync() }()

	database, err := db.GetDB()
	if err != nil {
		zaplog.Fatal("error al conectar a la base", zap.Error(err))
	}

	// AutoMigrate para todos los modelos
	if err := database.AutoMigrate(
		&usuario.Usuario{},
		&trabajador.Trabajador{},
		&ordendetalle.OrdenDetalle{},
		&asignacion.Asignacion{},
		&pago.Pago{},
	); err != nil {
		zaplog.Fatal("error en AutoMigrate", zap.Error(err))
	}

	// Handlers
	usuarioHandler := usuario.NewHandler(usuario.NewRepository(database))
	trabajadorHandler := trabajador.NewHandler(trabajador.NewRepository(database))
	detalleHandler := ordendetalle.NewHandler(ordendetalle.NewRepository(database))
	asignacionHandler := asignacion.NewHandler(asignacion.NewRepository(database), asignacion.NewConsulta(database))
	pagoHandler := pago.NewHandler(pago.NewServicio(database), pago.NewRepository(database))
	reporteHandler := reporte.NewHandler(reporte.NewServicio(database))

	// Router
	r := mux.NewRouter()
	r.Use(logger.RequestLogMdlw(zaplog))

	// Ruta pública
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")

	// Rutas autenticadas
	api := r.PathPrefix("/").Subrouter()
	api.Use(auth.MiddlewareAutenticacion)

	// Usuarios (solo admin)
	api.Handle("/usuarios", auth.RequireAdmin(http.HandlerFunc(usuarioHandler.Crear))).Methods("POST")

	// Directorio de trabajadores
	api.HandleFunc("/trabajadores", trabajadorHandler.Listar).Methods("GET")
	api.HandleFunc("/trabajadores", trabajadorHandler.Crear).Methods("POST")
	api.HandleFunc("/trabajadores/{id}", trabajadorHandler.Actualizar).Methods("PUT")
	api.HandleFunc("/trabajadores/{id}", trabajadorHandler.Desactivar).Methods("DELETE")
	api.HandleFunc("/trabajadores/{id}/estado", trabajadorHandler.CambiarEstado).Methods("PATCH")

	// Detalles de orden (solo lectura)
	api.HandleFunc("/ordenes/{id}/detalles", detalleHandler.ListarPorOrden).Methods("GET")

	// Asignaciones de mano de obra
	api.HandleFunc("/asignaciones", asignacionHandler.Asignar).Methods("POST")
	api.HandleFunc("/asignaciones", asignacionHandler.Filtrar).Methods("GET")
	api.HandleFunc("/asignaciones/por-detalle/{id}", asignacionHandler.BuscarPorDetalle).Methods("GET")
	api.HandleFunc("/asignaciones/pendientes/{trabajadorId}", asignacionHandler.Pendientes).Methods("GET")
	api.HandleFunc("/asignaciones/pagadas/{trabajadorId}/{pagoId}", asignacionHandler.Pagadas).Methods("GET")
	api.HandleFunc("/asignaciones/{id}", asignacionHandler.Actualizar).Methods("PATCH")
	api.HandleFunc("/asignaciones/{id}", asignacionHandler.Eliminar).Methods("DELETE")

	// Pagos de mano de obra
	api.HandleFunc("/pagos", pagoHandler.Crear).Methods("POST")
	api.HandleFunc("/pagos/por-trabajador/{trabajadorId}", pagoHandler.ListarPorTrabajador).Methods("GET")
	api.HandleFunc("/pagos/{id}", pagoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/pagos/{id}", pagoHandler.Actualizar).Methods("PATCH")
	api.HandleFunc("/pagos/{id}", pagoHandler.Eliminar).Methods("DELETE")

	// Reportes
	api.HandleFunc("/reportes/pagos-por-trabajador", reporteHandler.PorTrabajadorParaOrden).Methods("GET")

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	zaplog.Info("servidor escuchando", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, corsHandler.Handler(r)); err != nil {
		zaplog.Fatal("servidor detenido", zap.Error(err))
	}
}
