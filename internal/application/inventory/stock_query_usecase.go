package inventory

import (
	"context"

	"github.com/jhoicas/inventory-services/internal/application/dto"
	"github.com/jhoicas/inventory-services/internal/domain"
	"github.com/jhoicas/inventory-services/internal/domain/entity"
	invdomain "github.com/jhoicas/inventory-services/internal/domain/inventory"
	"github.com/jhoicas/inventory-services/internal/domain/repository"
)

// StockQueryUseCase lecturas del stock y del libro de movimientos. No tiene efectos secundarios
// sobre los datos; el estado LOW/NORMAL/HIGH se calcula en cada lectura.
type StockQueryUseCase struct {
	stockRepo repository.StockRepository
	movRepo   repository.StockMovementRepository
	levels    StockLevelObserver
}

// NewStockQueryUseCase construye el caso de uso. levels puede ser nil.
func NewStockQueryUseCase(
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
	levels StockLevelObserver,
) *StockQueryUseCase {
	return &StockQueryUseCase{stockRepo: stockRepo, movRepo: movRepo, levels: levels}
}

// List devuelve todo el inventario enriquecido, ordenado por nombre de producto.
func (uc *StockQueryUseCase) List(ctx context.Context) ([]dto.StockResponse, error) {
	list, err := uc.stockRepo.ListDetails(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockResponse, 0, len(list))
	for _, d := range list {
		if uc.levels != nil {
			uc.levels.SetStockLevel(d.ProductID, d.ProductName, d.Quantity)
		}
		out = append(out, toStockResponse(d))
	}
	return out, nil
}

// GetByProduct devuelve el stock de un producto o domain.ErrNotFound.
func (uc *StockQueryUseCase) GetByProduct(ctx context.Context, productID string) (*dto.StockResponse, error) {
	d, err := uc.stockRepo.GetDetail(ctx, productID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.NotFound("Stock", productID)
	}
	out := toStockResponse(d)
	return &out, nil
}

// Movements devuelve el historial, más reciente primero, limitado a entity.MovementHistoryLimit.
// productID vacío devuelve los movimientos de todos los productos.
func (uc *StockQueryUseCase) Movements(ctx context.Context, productID string) ([]dto.StockMovementResponse, error) {
	list, err := uc.movRepo.ListRecent(ctx, productID, entity.MovementHistoryLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.StockMovementResponse{
			ID:               m.ID,
			ProductID:        m.ProductID,
			ProductName:      m.ProductName,
			SKU:              m.SKU,
			MovementType:     m.Type,
			Quantity:         m.Quantity,
			Reason:           m.Reason,
			PreviousQuantity: m.PreviousQuantity,
			NewQuantity:      m.NewQuantity,
			CreatedAt:        m.CreatedAt,
		})
	}
	return out, nil
}

// LowStock devuelve los productos con quantity <= min_stock, menor cantidad primero.
func (uc *StockQueryUseCase) LowStock(ctx context.Context) ([]dto.StockResponse, error) {
	list, err := uc.stockRepo.ListLow(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toStockResponse(d))
	}
	return out, nil
}

// UpdateThresholds cambia min_stock/max_stock. No exige min <= max.
func (uc *StockQueryUseCase) UpdateThresholds(ctx context.Context, productID string, in dto.UpdateThresholdsRequest) (*dto.StockResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if err := uc.stockRepo.UpdateThresholds(ctx, productID, *in.MinStock, *in.MaxStock); err != nil {
		return nil, err
	}
	return uc.GetByProduct(ctx, productID)
}

func toStockResponse(d *entity.StockDetail) dto.StockResponse {
	return dto.StockResponse{
		ProductID:   d.ProductID,
		ProductName: d.ProductName,
		SKU:         d.SKU,
		Price:       d.Price,
		Quantity:    d.Quantity,
		MinStock:    d.MinStock,
		MaxStock:    d.MaxStock,
		Status:      string(invdomain.Classify(d.Quantity, d.MinStock, d.MaxStock)),
		UpdatedAt:   d.UpdatedAt,
	}
}
