package main

import (
	"github.com/jhoicas/inventory-services/internal/application/usecase"
	"github.com/jhoicas/inventory-services/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/inventory-services/internal/interfaces/http"
	"github.com/jhoicas/inventory-services/internal/server"
)

func main() {
	server.Run("suppliers-service", 3003, func(d server.Deps) {
		supplierRepo := postgres.NewSupplierRepository(d.Pool)
		productRepo := postgres.NewProductRepository(d.Pool)
		supplierUC := usecase.NewSupplierUseCase(supplierRepo, productRepo)

		httpRouter.SuppliersRouter(d.App, httpRouter.NewSupplierHandler(supplierUC, d.Log))
	})
}
