package finder

import (
	"context"
	"encoding/binary"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/dgryski/go-farm"
	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lowpoint/grid"
	"github.com/katalvlaran/lowpoint/lowpoint"
)

// Finder answers lowpoint queries. It is safe for concurrent use.
type Finder struct {
	opts    options
	cache   *ristretto.Cache[uint64, *lowpoint.Result] // nil when disabled
	metrics *metrics
}

// New builds a Finder. It fails only if the cache cannot be created or the
// metrics cannot be registered.
func New(opts ...Option) (*Finder, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	m, err := newMetrics(o.registerer)
	if err != nil {
		return nil, err
	}
	f := &Finder{opts: o, metrics: m}

	if o.cacheSize > 0 {
		f.cache, err = ristretto.NewCache(&ristretto.Config[uint64, *lowpoint.Result]{
			NumCounters:        o.cacheSize * 10,
			MaxCost:            o.cacheSize,
			BufferItems:        64,
			IgnoreInternalCost: true,
		})
		if err != nil {
			return nil, errors.Wrap(err, "finder: creating cache")
		}
	}
	return f, nil
}

// Find returns the lowest point reachable from (row, col) on g.
// Errors from lowpoint (ErrNilGrid, ErrInvalidStart) are returned wrapped.
func (f *Finder) Find(ctx context.Context, g *grid.Grid, row, col int) (*lowpoint.Result, error) {
	if g == nil {
		f.metrics.failures.Inc()
		return nil, lowpoint.ErrNilGrid
	}
	return f.find(ctx, g, g.Fingerprint(), row, col)
}

// FindAll runs one query per start and returns results in the same order.
// At most WithWorkers searches run at once. The first error aborts the batch.
func (f *Finder) FindAll(ctx context.Context, g *grid.Grid, starts []grid.Cell) ([]*lowpoint.Result, error) {
	if g == nil {
		f.metrics.failures.Inc()
		return nil, lowpoint.ErrNilGrid
	}
	fp := g.Fingerprint()
	results := make([]*lowpoint.Result, len(starts))

	eg, ctx := errgroup.WithContext(ctx)
	if f.opts.workers > 0 {
		eg.SetLimit(f.opts.workers)
	}
	for i, s := range starts {
		i, s := i, s
		eg.Go(func() error {
			res, err := f.find(ctx, g, fp, s.Row, s.Col)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	glog.Infof("Batch of %d queries on %dx%d grid complete", len(starts), g.Rows(), g.Columns())
	return results, nil
}

func (f *Finder) find(ctx context.Context, g *grid.Grid, fp uint64, row, col int) (*lowpoint.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := f.key(fp, row, col)
	if f.cache != nil {
		if res, ok := f.cache.Get(key); ok {
			f.metrics.cacheHits.Inc()
			return res.Clone(), nil
		}
	}

	id := uuid.New()
	glog.V(2).Infof("Query %s: start (%d,%d) on %dx%d grid, tie-break %s",
		id, row, col, g.Rows(), g.Columns(), f.opts.tieBreak)

	res, err := lowpoint.FindLowestPoint(g, row, col, lowpoint.WithTieBreak(f.opts.tieBreak))
	if err != nil {
		f.metrics.failures.Inc()
		glog.Warningf("Query %s failed: %v", id, err)
		return nil, errors.Wrapf(err, "query %s", id)
	}

	f.metrics.queries.Inc()
	f.metrics.terminals.Observe(float64(res.Terminals))
	glog.V(2).Infof("Query %s: %v altitude %d after %d terminals",
		id, res.Cell, res.Altitude, res.Terminals)

	if f.cache != nil {
		f.cache.Set(key, res.Clone(), 1)
	}
	return res, nil
}

// key hashes the grid fingerprint, start and tie-break rule.
func (f *Finder) key(fp uint64, row, col int) uint64 {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[0:], fp)
	binary.LittleEndian.PutUint64(buf[8:], uint64(row))
	binary.LittleEndian.PutUint64(buf[16:], uint64(col))
	binary.LittleEndian.PutUint64(buf[24:], uint64(f.opts.tieBreak))
	return farm.Fingerprint64(buf[:])
}

// Wait blocks until pending cache writes are applied.
func (f *Finder) Wait() {
	if f.cache != nil {
		f.cache.Wait()
	}
}

// Close releases the cache. The Finder must not be used afterwards.
func (f *Finder) Close() {
	if f.cache != nil {
		f.cache.Close()
	}
}

// AllCells lists every cell of g in row-major order.
func AllCells(g *grid.Grid) []grid.Cell {
	cells := make([]grid.Cell, 0, g.Size())
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Columns(); c++ {
			cells = append(cells, grid.Cell{Row: r, Col: c})
		}
	}
	return cells
}
