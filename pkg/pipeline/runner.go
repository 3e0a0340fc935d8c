package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartframe/pkg/cache"
	"github.com/matzehuels/chartframe/pkg/drawing"
	"github.com/matzehuels/chartframe/pkg/errors"
	"github.com/matzehuels/chartframe/pkg/layout"
	"github.com/matzehuels/chartframe/pkg/observability"
	"github.com/matzehuels/chartframe/pkg/spec"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → layout → export pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}
	r.applyLogger(&opts)

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	s, err := r.Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Spec = s
	result.Stats.LoadTime = time.Since(loadStart)

	canonical, err := s.CanonicalJSON()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "hash chart spec")
	}
	result.SpecHash = cache.Hash(canonical)

	width, height := opts.Dimensions(s)
	r.Logger.Info("loaded spec",
		"width", width,
		"height", height,
		"duration", result.Stats.LoadTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	l, layoutHit, err := r.ComputeLayoutWithCacheInfo(ctx, s, result.SpecHash, opts)
	if err != nil {
		return nil, err
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"interior", l.Interior,
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Export
	if opts.OutputPath != "" {
		exportStart := time.Now()
		if err := r.Export(ctx, l, opts.OutputPath); err != nil {
			return nil, err
		}
		result.Stats.ExportTime = time.Since(exportStart)

		r.Logger.Info("exported layout",
			"path", opts.OutputPath,
			"duration", result.Stats.ExportTime)
	}

	return result, nil
}

// Load parses the chart spec from the configured source.
func (r *Runner) Load(ctx context.Context, opts Options) (*spec.Spec, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	var (
		s   *spec.Spec
		err error
	)
	if opts.SpecPath != "" {
		s, err = spec.Load(opts.SpecPath)
	} else {
		s, err = spec.Parse(opts.SpecData)
	}
	observability.Layout().OnSpecLoad(ctx, opts.SpecPath, err)
	return s, err
}

// ComputeLayoutWithCacheInfo computes a layout with caching and returns
// cache hit info. specHash must be the content hash of s.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, s *spec.Spec, specHash string, opts Options) (layout.Layout, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return layout.Layout{}, false, err
	}
	r.applyLogger(&opts)

	width, height := opts.Dimensions(s)
	cacheKey := r.Keyer.LayoutKey(specHash, width, height)

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			cached, err := layout.Unmarshal(data)
			if err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return cached, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	// Compute layout
	l, err := r.ComputeLayout(ctx, s, opts)
	if err != nil {
		return layout.Layout{}, false, err
	}

	// Cache the result
	if data, err := layout.Marshal(l); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout); err == nil {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}

	return l, false, nil // Cache miss
}

// ComputeLayout builds the chart layout for the spec without caching.
func (r *Runner) ComputeLayout(ctx context.Context, s *spec.Spec, opts Options) (layout.Layout, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return layout.Layout{}, err
	}

	width, height := opts.Dimensions(s)
	observability.Layout().OnLayoutStart(ctx, width, height)
	start := time.Now()

	xSpec, err := s.X.AsRanged()
	if err != nil {
		observability.Layout().OnLayoutComplete(ctx, width, height, time.Since(start), err)
		return layout.Layout{}, err
	}
	ySpec, err := s.Y.AsRanged()
	if err != nil {
		observability.Layout().OnLayoutComplete(ctx, width, height, time.Since(start), err)
		return layout.Layout{}, err
	}

	root := drawing.NewArea(opts.Backend, width, height)
	chartCtx, err := s.Builder(root).Build(xSpec, ySpec)
	if err != nil {
		observability.Layout().OnLayoutComplete(ctx, width, height, time.Since(start), err)
		return layout.Layout{}, err
	}

	l := layout.FromContext(chartCtx, width, height, s.CaptionText(), s.Insets())
	observability.Layout().OnLayoutComplete(ctx, width, height, time.Since(start), nil)
	return l, nil
}

// Export writes the layout to the given path as JSON.
func (r *Runner) Export(ctx context.Context, l layout.Layout, path string) error {
	err := layout.WriteFile(l, path)
	size := 0
	if err == nil {
		if data, merr := layout.Marshal(l); merr == nil {
			size = len(data)
		}
	}
	observability.Layout().OnExport(ctx, path, size, err)
	return err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
