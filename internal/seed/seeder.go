package seed

import (
	"context"
	"fmt"

	"moviles/internal/service"

	"github.com/rs/zerolog"
)

// Seeder imports a catalogue into an empty store.
type Seeder struct {
	loader  Loader
	service service.ProductoService
	logger  zerolog.Logger
}

// NewSeeder creates a new catalogue seeder.
func NewSeeder(loader Loader, service service.ProductoService, logger zerolog.Logger) *Seeder {
	return &Seeder{
		loader:  loader,
		service: service,
		logger:  logger.With().Str("component", "seeder").Logger(),
	}
}

// Run loads the catalogue at path and saves every producto in it, returning
// how many were created. Nothing is imported when the store already holds
// productos. IDs in the catalogue are ignored.
func (s *Seeder) Run(ctx context.Context, path string) (int, error) {
	existing, err := s.service.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to inspect store before seeding: %w", err)
	}

	if len(existing) > 0 {
		s.logger.Info().
			Int("existing", len(existing)).
			Msg("store is not empty, skipping catalogue import")
		return 0, nil
	}

	productos, err := s.loader.Load(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("failed to load catalogue: %w", err)
	}

	created := 0
	for i := range productos {
		p := productos[i]
		p.ID = 0

		if _, err := s.service.Save(ctx, &p); err != nil {
			return created, fmt.Errorf("failed to import producto %q: %w", p.Codigo, err)
		}
		created++
	}

	s.logger.Info().Int("created", created).Str("path", path).Msg("catalogue imported")

	return created, nil
}
