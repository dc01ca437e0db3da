package advocates

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/JaimeStill/advocates/pkg/query"
	"github.com/JaimeStill/advocates/pkg/repository"
)

var tracer = otel.Tracer("github.com/JaimeStill/advocates/internal/advocates")

// Store reads advocate records. Count and Page must apply the same Filter
// so the total and the page describe one result set.
type Store interface {
	Count(ctx context.Context, f Filter) (int, error)
	Page(ctx context.Context, f Filter, order []query.SortField, offset, limit int) ([]Advocate, error)
}

type pgStore struct {
	db      *sql.DB
	metrics *Metrics
}

// NewStore creates a PostgreSQL-backed Store. metrics may be nil.
func NewStore(db *sql.DB, metrics *Metrics) Store {
	return &pgStore{
		db:      db,
		metrics: metrics,
	}
}

func (s *pgStore) Count(ctx context.Context, f Filter) (total int, err error) {
	ctx, end := s.observe(ctx, "count", f)
	defer func() { end(err) }()

	q, args := f.Apply(query.NewBuilder(projection)).BuildCount()
	total, err = repository.QueryOne(ctx, s.db, q, args, repository.ScanInt)
	if err != nil {
		return 0, fmt.Errorf("count advocates: %w", err)
	}
	return total, nil
}

func (s *pgStore) Page(
	ctx context.Context,
	f Filter,
	order []query.SortField,
	offset, limit int,
) (page []Advocate, err error) {
	ctx, end := s.observe(ctx, "page", f,
		attribute.Int("offset", offset),
		attribute.Int("limit", limit),
	)
	defer func() { end(err) }()

	qb := f.Apply(query.NewBuilder(projection, defaultSort))
	if len(order) > 0 {
		qb.OrderByFields(order)
	}

	q, args := qb.BuildSlice(offset, limit)
	page, err = repository.QueryMany(ctx, s.db, q, args, scanAdvocate)
	if err != nil {
		return nil, fmt.Errorf("query advocates: %w", err)
	}
	return page, nil
}

// observe starts a span and a timer for a store read. The returned func ends both.
func (s *pgStore) observe(
	ctx context.Context,
	op string,
	f Filter,
	attrs ...attribute.KeyValue,
) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := tracer.Start(ctx, "advocates."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(append(attrs, attribute.Bool("match_all", f.MatchAll()))...),
	)

	return ctx, func(err error) {
		s.metrics.ObserveQuery(op, err, time.Since(start))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}
