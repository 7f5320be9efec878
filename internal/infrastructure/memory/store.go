// Package memory implementa los puertos de persistencia en memoria. Reproduce el bloqueo por fila
// de stock (equivalente a SELECT ... FOR UPDATE) para que el motor de movimientos se comporte igual
// que sobre PostgreSQL. Lo usan las pruebas de casos de uso y de handlers.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/inventory-services/internal/application/inventory"
	"github.com/jhoicas/inventory-services/internal/application/usecase"
	"github.com/jhoicas/inventory-services/internal/domain/entity"
	"github.com/jhoicas/inventory-services/internal/domain/repository"
)

// Ensure Store implements the transaction ports.
var (
	_ inventory.TxRunner      = (*Store)(nil)
	_ usecase.CatalogTxRunner = (*Store)(nil)
)

type movementRow struct {
	seq int64
	m   entity.StockMovement
}

// Store guarda productos, stock, movimientos y proveedores en mapas protegidos por un RWMutex.
type Store struct {
	mu        sync.RWMutex
	products  map[string]entity.Product
	stock     map[string]entity.Stock
	movements []movementRow
	suppliers map[string]entity.Supplier
	links     map[linkKey]entity.ProductSupplier
	seq       int64

	lockMu   sync.Mutex
	rowLocks map[string]chan struct{}
}

type linkKey struct {
	supplierID string
	productID  string
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		products:  make(map[string]entity.Product),
		stock:     make(map[string]entity.Stock),
		suppliers: make(map[string]entity.Supplier),
		links:     make(map[linkKey]entity.ProductSupplier),
		rowLocks:  make(map[string]chan struct{}),
	}
}

// Products devuelve el repositorio de productos fuera de transacción.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Stock devuelve el repositorio de stock fuera de transacción.
func (s *Store) Stock() *StockRepo { return &StockRepo{s: s} }

// Movements devuelve el repositorio del libro de movimientos fuera de transacción.
func (s *Store) Movements() *StockMovementRepo { return &StockMovementRepo{s: s} }

// Suppliers devuelve el repositorio de proveedores.
func (s *Store) Suppliers() *SupplierRepo { return &SupplierRepo{s: s} }

// Run ejecuta fn con repositorios atados a una transacción. Las escrituras se aplican juntas
// al confirmar; si fn falla no se aplica ninguna. Los bloqueos de fila se liberan siempre.
func (s *Store) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	stockRepo repository.StockRepository,
) error) error {
	return s.inTx(ctx, func(t *tx) error {
		return fn(&StockMovementRepo{s: s, tx: t}, &StockRepo{s: s, tx: t})
	})
}

// RunCatalog ejecuta fn con repositorios de producto y stock en la misma transacción.
func (s *Store) RunCatalog(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
) error) error {
	return s.inTx(ctx, func(t *tx) error {
		return fn(&ProductRepo{s: s, tx: t}, &StockRepo{s: s, tx: t})
	})
}

func (s *Store) inTx(ctx context.Context, fn func(t *tx) error) error {
	t := &tx{held: make(map[string]struct{}), stock: make(map[string]entity.Stock)}
	defer s.releaseAll(t)

	if err := fn(t); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.commit(t)
}

// tx acumula las escrituras pendientes y los bloqueos tomados.
type tx struct {
	held    map[string]struct{}
	stock   map[string]entity.Stock // filas bloqueadas y su valor pendiente
	checks  []func() error
	applies []func()
}

func (t *tx) add(check func() error, apply func()) {
	if check != nil {
		t.checks = append(t.checks, check)
	}
	t.applies = append(t.applies, apply)
}

func (s *Store) commit(t *tx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, check := range t.checks {
		if err := check(); err != nil {
			return err
		}
	}
	for _, apply := range t.applies {
		apply()
	}
	return nil
}

// lockRow toma el bloqueo de la fila de stock del producto, esperando si otra tx lo tiene.
func (s *Store) lockRow(ctx context.Context, t *tx, productID string) error {
	if _, ok := t.held[productID]; ok {
		return nil
	}
	s.lockMu.Lock()
	ch, ok := s.rowLocks[productID]
	if !ok {
		ch = make(chan struct{}, 1)
		s.rowLocks[productID] = ch
	}
	s.lockMu.Unlock()

	select {
	case ch <- struct{}{}:
		t.held[productID] = struct{}{}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) unlockRow(productID string) {
	s.lockMu.Lock()
	ch := s.rowLocks[productID]
	s.lockMu.Unlock()
	<-ch
}

func (s *Store) releaseAll(t *tx) {
	for id := range t.held {
		s.unlockRow(id)
	}
	t.held = nil
}

// withRowLock ejecuta fn con la fila bloqueada, como hace un UPDATE en autocommit.
func (s *Store) withRowLock(ctx context.Context, productID string, fn func() error) error {
	t := &tx{held: make(map[string]struct{})}
	if err := s.lockRow(ctx, t, productID); err != nil {
		return err
	}
	defer s.releaseAll(t)
	return fn()
}
