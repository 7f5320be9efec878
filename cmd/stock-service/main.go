package main

import (
	"github.com/jhoicas/inventory-services/internal/application/inventory"
	"github.com/jhoicas/inventory-services/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/inventory-services/internal/interfaces/http"
	"github.com/jhoicas/inventory-services/internal/server"
)

func main() {
	server.Run("stock-service", 3002, func(d server.Deps) {
		productRepo := postgres.NewProductRepository(d.Pool)
		stockRepo := postgres.NewStockRepository(d.Pool)
		movementRepo := postgres.NewStockMovementRepository(d.Pool)
		txRunner := postgres.NewTxRunner(d.Pool)

		registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, productRepo, d.Metrics)
		stockQueryUC := inventory.NewStockQueryUseCase(stockRepo, movementRepo, d.Metrics)

		httpRouter.StockRouter(d.App, httpRouter.NewStockHandler(registerMovementUC, stockQueryUC, d.Log))
	})
}
