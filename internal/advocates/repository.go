package advocates

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/advocates/pkg/pagination"
)

type repo struct {
	store      Store
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates the advocate System over store.
func New(
	store Store,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		store:      store,
		logger:     logger.With("system", "advocates"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

// List runs the count and page reads concurrently against one Filter.
// Either failure cancels the other and fails the call; no partial result is returned.
func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
) (*pagination.PageResult[Advocate], error) {
	page.Normalize(r.pagination)
	filter := NewFilter(page.SearchTerm)

	var (
		total int
		data  []Advocate
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		total, err = r.store.Count(gctx, filter)
		return err
	})

	g.Go(func() error {
		var err error
		data, err = r.store.Page(gctx, filter, page.Sort, page.Offset(), page.PageSize)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := pagination.NewPageResult(data, total, page.Page, page.PageSize)
	return &result, nil
}
