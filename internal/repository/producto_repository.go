package repository

import (
	"context"
	"errors"
	"fmt"

	"moviles/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const productoColumns = "id, nombre, codigo, descripcion, precio, estado"

// productoRepository implements the ProductoRepository interface using PostgreSQL.
type productoRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductoRepository creates a new PostgreSQL-backed producto repository.
func NewProductoRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductoRepository {
	return &productoRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "producto").Logger(),
	}
}

func scanProducto(row pgx.Row) (*model.Producto, error) {
	var p model.Producto
	if err := row.Scan(&p.ID, &p.Nombre, &p.Codigo, &p.Descripcion, &p.Precio, &p.Estado); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListAll retrieves every producto ordered by ID.
func (r *productoRepository) ListAll(ctx context.Context) ([]model.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query productos")
		return nil, fmt.Errorf("failed to query productos: %w", err)
	}
	defer rows.Close()

	productos := []model.Producto{}
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan producto row")
			return nil, fmt.Errorf("failed to scan producto: %w", err)
		}
		productos = append(productos, *p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating producto rows")
		return nil, fmt.Errorf("error iterating productos: %w", err)
	}

	return productos, nil
}

// FindByID retrieves a single producto by its ID.
func (r *productoRepository) FindByID(ctx context.Context, id int64) (*model.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1`

	p, err := scanProducto(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("producto_id", id).Msg("producto not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("producto_id", id).Msg("failed to query producto")
		return nil, fmt.Errorf("failed to query producto: %w", err)
	}

	return p, nil
}

// Save inserts or overwrites a producto.
func (r *productoRepository) Save(ctx context.Context, p *model.Producto) (*model.Producto, error) {
	if p == nil {
		return nil, fmt.Errorf("producto is nil")
	}
	if p.ID == 0 {
		return r.insert(ctx, p)
	}
	return r.update(ctx, p)
}

func (r *productoRepository) insert(ctx context.Context, p *model.Producto) (*model.Producto, error) {
	query := `
		INSERT INTO productos (nombre, codigo, descripcion, precio, estado)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + productoColumns

	saved, err := scanProducto(r.pool.QueryRow(ctx, query,
		p.Nombre, p.Codigo, p.Descripcion, p.Precio, p.Estado))
	if err != nil {
		r.logger.Error().Err(err).Str("codigo", p.Codigo).Msg("failed to insert producto")
		return nil, fmt.Errorf("failed to insert producto: %w", err)
	}

	r.logger.Debug().Int64("producto_id", saved.ID).Msg("producto inserted")

	return saved, nil
}

func (r *productoRepository) update(ctx context.Context, p *model.Producto) (*model.Producto, error) {
	query := `
		UPDATE productos
		SET nombre = $2, codigo = $3, descripcion = $4, precio = $5, estado = $6
		WHERE id = $1
		RETURNING ` + productoColumns

	saved, err := scanProducto(r.pool.QueryRow(ctx, query,
		p.ID, p.Nombre, p.Codigo, p.Descripcion, p.Precio, p.Estado))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Warn().Int64("producto_id", p.ID).Msg("producto vanished before update")
			return nil, model.ErrProductoNotFound
		}
		r.logger.Error().Err(err).Int64("producto_id", p.ID).Msg("failed to update producto")
		return nil, fmt.Errorf("failed to update producto: %w", err)
	}

	return saved, nil
}

// DeleteByID removes a producto by its ID.
func (r *productoRepository) DeleteByID(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("producto_id", id).Msg("failed to delete producto")
		return fmt.Errorf("failed to delete producto: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Int64("producto_id", id).Msg("delete of missing producto ignored")
	}

	return nil
}
