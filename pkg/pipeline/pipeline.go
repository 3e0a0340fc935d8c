// Package pipeline provides the core layout pipeline for Chartframe.
//
// This package implements the complete load → layout → export pipeline that
// can be used by CLI and API components. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Parse and validate the TOML chart spec
//  2. Layout: Carve the canvas into margin, caption, label areas, and the
//     plot interior, and bind the coordinate system
//  3. Export: Serialize the layout to JSON, optionally writing it to a file
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    SpecPath: "chart.toml",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Layout.Interior)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartframe/pkg/drawing"
	"github.com/matzehuels/chartframe/pkg/errors"
	"github.com/matzehuels/chartframe/pkg/layout"
	"github.com/matzehuels/chartframe/pkg/spec"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = spec.DefaultWidth

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = spec.DefaultHeight
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the layout pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options. Exactly one of SpecPath or SpecData must be set.
	SpecPath string `json:"spec_path,omitempty"`
	SpecData []byte `json:"spec_data,omitempty"`

	// Layout options. Zero values defer to the spec's canvas section.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	// Refresh bypasses the cache and recomputes the layout.
	Refresh bool `json:"refresh,omitempty"`

	// Export options. Empty means no file output.
	OutputPath string `json:"output_path,omitempty"`

	// Runtime options (not serialized)
	Backend drawing.Backend `json:"-"`
	Logger  *log.Logger     `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Spec is the parsed chart spec.
	Spec *spec.Spec

	// SpecHash is the content hash of the spec.
	SpecHash string

	// Layout is the computed chart layout.
	Layout layout.Layout

	// Stats contains timing information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	LoadTime   time.Duration
	LayoutTime time.Duration
	ExportTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.SpecPath == "" && len(o.SpecData) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "spec_path or spec_data is required")
	}
	if o.SpecPath != "" && len(o.SpecData) > 0 {
		return errors.New(errors.ErrCodeInvalidInput, "spec_path and spec_data are mutually exclusive")
	}
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "canvas override must be non-negative, got %dx%d", o.Width, o.Height)
	}
	if o.OutputPath != "" {
		if err := errors.ValidateOutputPath(o.OutputPath); err != nil {
			return err
		}
	}
	if o.Backend == nil {
		o.Backend = drawing.NewNullBackend()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Dimensions returns the effective canvas size for a loaded spec,
// applying any overrides from the options.
func (o *Options) Dimensions(s *spec.Spec) (width, height int) {
	width, height = s.Canvas.Width, s.Canvas.Height
	if o.Width > 0 {
		width = o.Width
	}
	if o.Height > 0 {
		height = o.Height
	}
	return width, height
}
