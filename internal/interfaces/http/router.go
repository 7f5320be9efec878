package http

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jhoicas/inventory-services/internal/application/dto"
	"github.com/jhoicas/inventory-services/pkg/logger"
)

// AppConfig opciones comunes a los tres servicios.
type AppConfig struct {
	Name             string
	CORSAllowOrigins string
	Log              *logger.Logger
	Observer         RequestObserver // puede ser nil
}

// NewApp construye la aplicación Fiber con recover, request id, CORS y access log.
// Los errores que escapan de los handlers (ruta inexistente, body demasiado grande) salen
// con el mismo sobre JSON que el resto.
func NewApp(cfg AppConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return c.Status(fe.Code).JSON(dto.Fail(fe.Message))
			}
			return writeError(c, cfg.Log, err)
		},
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: strings.Join([]string{
			fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete, fiber.MethodOptions,
		}, ","),
		AllowHeaders: "Content-Type,Authorization",
	}))
	app.Use(AccessLog(cfg.Log, cfg.Observer))
	return app
}

// MountCommon registra GET /health y GET /metrics.
func MountCommon(app *fiber.App, service string, metrics http.Handler) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{
			Status:    "healthy",
			Service:   service,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	})
	if metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(metrics))
	}
}

// MountSwagger sirve la UI de Swagger en /docs si el archivo existe. Devuelve false si no se montó.
func MountSwagger(app *fiber.App, filePath, title string) bool {
	if _, err := os.Stat(filePath); err != nil {
		return false
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    title,
	}))
	return true
}

// ProductsRouter registra las rutas del servicio de productos.
func ProductsRouter(app *fiber.App, h *ProductHandler) {
	products := app.Group("/api/products")
	products.Get("/categories/list", h.Categories)
	products.Get("/", h.List)
	products.Post("/", h.Create)
	products.Get("/:id", h.GetByID)
	products.Put("/:id", h.Update)
	products.Delete("/:id", h.Delete)
}

// StockRouter registra las rutas del servicio de stock.
func StockRouter(app *fiber.App, h *StockHandler) {
	stock := app.Group("/api/stock")
	stock.Get("/", h.List)
	stock.Get("/product/:productId", h.GetByProduct)
	stock.Put("/product/:productId/thresholds", h.UpdateThresholds)
	stock.Post("/in", h.In)
	stock.Post("/out", h.Out)
	stock.Get("/movements/:productId?", h.Movements)
	stock.Get("/alerts/low", h.LowStock)
}

// SuppliersRouter registra las rutas del servicio de proveedores.
func SuppliersRouter(app *fiber.App, h *SupplierHandler) {
	suppliers := app.Group("/api/suppliers")
	suppliers.Get("/cities/list", h.Cities)
	suppliers.Get("/", h.List)
	suppliers.Post("/", h.Create)
	suppliers.Get("/:id", h.GetByID)
	suppliers.Put("/:id", h.Update)
	suppliers.Delete("/:id", h.Delete)
	suppliers.Get("/:id/products", h.Products)
	suppliers.Post("/:id/products", h.AssociateProduct)
	suppliers.Delete("/:id/products/:productId", h.DisassociateProduct)
}
