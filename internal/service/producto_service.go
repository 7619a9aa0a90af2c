package service

import (
	"context"
	"errors"
	"fmt"

	"moviles/internal/model"
	"moviles/internal/repository"

	"github.com/rs/zerolog"
)

// productoService implements ProductoService.
type productoService struct {
	repo   repository.ProductoRepository
	logger zerolog.Logger
}

// NewProductoService creates a new producto service.
func NewProductoService(repo repository.ProductoRepository, logger zerolog.Logger) ProductoService {
	return &productoService{
		repo:   repo,
		logger: logger.With().Str("service", "producto").Logger(),
	}
}

// List retrieves every producto.
func (s *productoService) List(ctx context.Context) ([]model.Producto, error) {
	productos, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list productos")
		return nil, fmt.Errorf("failed to list productos: %w", err)
	}

	s.logger.Debug().Int("count", len(productos)).Msg("retrieved productos")

	return productos, nil
}

// Get retrieves a single producto by ID.
func (s *productoService) Get(ctx context.Context, id int64) (*model.Producto, error) {
	producto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("producto_id", id).Msg("failed to get producto by ID")
		return nil, fmt.Errorf("failed to get producto: %w", err)
	}

	if producto == nil {
		s.logger.Debug().Int64("producto_id", id).Msg("producto not found")
	}

	return producto, nil
}

// Save inserts or overwrites a producto.
func (s *productoService) Save(ctx context.Context, p *model.Producto) (*model.Producto, error) {
	saved, err := s.repo.Save(ctx, p)
	if err != nil {
		if errors.Is(err, model.ErrProductoNotFound) {
			return nil, err
		}
		s.logger.Error().Err(err).Msg("failed to save producto")
		return nil, fmt.Errorf("failed to save producto: %w", err)
	}

	s.logger.Debug().Int64("producto_id", saved.ID).Msg("producto saved")

	return saved, nil
}

// Delete removes a producto by ID.
func (s *productoService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("producto_id", id).Msg("failed to delete producto")
		return fmt.Errorf("failed to delete producto: %w", err)
	}

	s.logger.Debug().Int64("producto_id", id).Msg("producto deleted")

	return nil
}
