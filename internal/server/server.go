// Package server arranca cualquiera de los tres servicios: configuración, logger, métricas,
// pool de PostgreSQL, aplicación Fiber y apagado ordenado.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/inventory-services/internal/infrastructure/metrics"
	"github.com/jhoicas/inventory-services/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/inventory-services/internal/interfaces/http"
	"github.com/jhoicas/inventory-services/pkg/config"
	"github.com/jhoicas/inventory-services/pkg/logger"
)

// Deps dependencias compartidas que recibe cada servicio para registrar sus rutas.
type Deps struct {
	Config  *config.Config
	Log     *logger.Logger
	Pool    *pgxpool.Pool
	Metrics *metrics.Metrics
	App     *fiber.App
}

// bootstrap carga la configuración y construye el logger del servicio. Si la configuración falla
// devuelve igualmente un logger de arranque (JSON, nivel info) para reportar el error.
func bootstrap(service string, defaultPort int, out io.Writer) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(service, defaultPort)
	if err != nil {
		return nil, logger.New(logger.Config{Env: "production", Service: service, Out: out}),
			fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: service,
		Out:     out,
	})
	return cfg, log, nil
}

// Run carga la configuración, abre el pool, llama a register y sirve hasta SIGINT/SIGTERM.
func Run(service string, defaultPort int, register func(d Deps)) {
	cfg, log, err := bootstrap(service, defaultPort, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando servicio")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.BootstrapSchema {
		if err := postgres.ApplySchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("aplicar esquema")
		}
		log.Info().Msg("esquema aplicado")
	}

	m := metrics.New(service)
	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:             cfg.App.Name,
		CORSAllowOrigins: cfg.HTTP.CORSAllowOrigins,
		Log:              log,
		Observer:         m,
	})

	// Swagger UI en local: http://localhost:<port>/docs
	if !httpRouter.MountSwagger(app, cfg.Swagger.FilePath, cfg.App.Name) {
		log.Warn().Str("file", cfg.Swagger.FilePath).Msg("swagger deshabilitado: archivo no encontrado")
	}
	httpRouter.MountCommon(app, service, m.Handler())

	register(Deps{Config: cfg, Log: log, Pool: pool, Metrics: m, App: app})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("servicio detenido")
}
