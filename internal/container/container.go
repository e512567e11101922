package container

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"triz/standards/internal/catalog"
	"triz/standards/internal/config"
	"triz/standards/internal/domain"
	"triz/standards/internal/menu"
	"triz/standards/internal/repository"
	"triz/standards/internal/service"

	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config     *config.Config
	Catalog    *domain.Catalog
	Details    *domain.DetailStore
	Repository repository.DetailRepository

	Service *service.Service
}

// New loads the catalog and the detail store and wires the lookup service
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	repo, err := repository.NewDetailRepository(
		cfg.Details.Path,
		repository.Format(cfg.Details.Format),
		cfg.Details.Schema,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize detail repository: %w", err)
	}
	container.Repository = repo

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		cat, err := catalog.Load(gctx, cfg.Catalog.Path, cfg.Catalog.Root)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
		container.Catalog = cat
		return nil
	})

	g.Go(func() error {
		store, err := repo.Load(gctx)
		if err != nil {
			if !errors.Is(err, repository.ErrNoDetailStore) || cfg.Details.Required {
				return err
			}
			log.Warnf("⚠️ %v; descriptions will not be resolved", err)
			store = domain.EmptyDetailStore()
		}
		container.Details = store
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Infof("✅ Loaded %d categories and %d detail entries",
		container.Catalog.Categories.Len(), container.Details.Len())

	container.Service = service.NewService(container.Catalog, container.Details, cfg.Details.Schema)

	return container, nil
}

// Run executes one interactive lookup
func (c *Container) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	state, err := menu.New(c.Service, in, out).Run(ctx)
	if err != nil {
		return err
	}
	log.Debugf("Lookup finished in state %s", state)
	return nil
}
