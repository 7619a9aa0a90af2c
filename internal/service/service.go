package service

import (
	"context"

	"moviles/internal/model"
)

// ProductoService defines persistence operations for productos.
type ProductoService interface {
	// List retrieves every producto.
	List(ctx context.Context) ([]model.Producto, error)

	// Get retrieves a single producto by ID, or nil when it does not exist.
	Get(ctx context.Context, id int64) (*model.Producto, error)

	// Save inserts or overwrites a producto and returns the stored record.
	Save(ctx context.Context, p *model.Producto) (*model.Producto, error)

	// Delete removes a producto by ID.
	Delete(ctx context.Context, id int64) error
}
