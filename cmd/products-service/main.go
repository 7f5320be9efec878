package main

import (
	"github.com/jhoicas/inventory-services/internal/application/usecase"
	"github.com/jhoicas/inventory-services/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/inventory-services/internal/interfaces/http"
	"github.com/jhoicas/inventory-services/internal/server"
)

func main() {
	server.Run("products-service", 3001, func(d server.Deps) {
		productRepo := postgres.NewProductRepository(d.Pool)
		txRunner := postgres.NewTxRunner(d.Pool)
		productUC := usecase.NewProductUseCase(productRepo, txRunner)

		httpRouter.ProductsRouter(d.App, httpRouter.NewProductHandler(productUC, d.Log))
	})
}
