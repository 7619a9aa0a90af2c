package repository

import (
	"context"

	"moviles/internal/model"
)

// ProductoRepository defines the interface for producto data access operations.
type ProductoRepository interface {
	// ListAll retrieves every producto in storage order.
	ListAll(ctx context.Context) ([]model.Producto, error)

	// FindByID retrieves a single producto by its ID.
	// Returns nil without error when no producto has that ID.
	FindByID(ctx context.Context, id int64) (*model.Producto, error)

	// Save inserts the producto when its ID is zero and overwrites the stored
	// row otherwise. The stored record is returned with its ID populated.
	Save(ctx context.Context, p *model.Producto) (*model.Producto, error)

	// DeleteByID removes the producto with the given ID. Missing IDs are ignored.
	DeleteByID(ctx context.Context, id int64) error
}
