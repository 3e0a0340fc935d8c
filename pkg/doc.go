// Package pkg provides the core libraries for Chartframe chart layout.
//
// # Overview
//
// Chartframe carves a pixel canvas into the regions of a chart: outer
// margins, an optional caption band, per-side axis label areas, and the
// plot interior, with a coordinate system bound to the interior. The pkg
// directory is organized into four main areas:
//
//  1. [chart], [drawing], [coord] - Domain logic (builder, area carving, axes)
//  2. [cache], [store] - Infrastructure (layout caching, persistence)
//  3. [spec], [layout] - Serialization (TOML input, JSON output)
//  4. [pipeline] - Orchestration (load → layout → export)
//
// # Architecture
//
// The typical data flow through Chartframe:
//
//	TOML chart spec
//	         ↓
//	    [spec] package (parse + validate)
//	         ↓
//	    [chart] package (builder: margins, caption, label areas)
//	         ↓
//	    [drawing] + [coord] packages (area carving, coordinate binding)
//	         ↓
//	    [layout] package (JSON output)
//
// # Quick Start
//
// Build a chart layout directly:
//
//	import (
//	    "github.com/matzehuels/chartframe/pkg/chart"
//	    "github.com/matzehuels/chartframe/pkg/coord"
//	    "github.com/matzehuels/chartframe/pkg/drawing"
//	)
//
//	// 1. Create the root drawing area
//	root := drawing.NewArea(nil, 800, 600)
//
//	// 2. Configure and build the chart
//	ctx, _ := chart.On(root).
//	    Margin(10).
//	    XLabelAreaSize(50).
//	    YLabelAreaSize(60).
//	    Build(coord.Lin(0, 10), coord.Lin(0, 100))
//
//	// 3. Map data points to pixels
//	px, py := ctx.DrawingArea.Translate(5, 50)
//
// Or run the full pipeline from a spec file:
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	result, _ := runner.Execute(ctx, pipeline.Options{SpecPath: "chart.toml"})
//
// # Main Packages
//
// ## Domain Logic
//
// [chart] - The chart builder and built chart context. Accumulates margins,
// caption, and label area configuration, then carves the canvas in a fixed
// order (margin, caption, label bands, inset overlays) and binds the
// coordinate system.
//
// [drawing] - Pixel rectangles and drawing areas. Areas support margin
// shrinking, titling, breakpoint splitting, and edge strips. A Backend
// estimates text extents; NullBackend serves headless use.
//
// [coord] - Coordinate ranges (linear, log, time, category) and the
// Cartesian product that maps data values to interior pixels.
//
// ## Serialization
//
// [spec] - TOML chart specs: canvas, margins, caption, label areas, axes.
//
// [layout] - The JSON wire format for computed layouts, used for file
// output, API responses, caching, and persistence.
//
// ## Infrastructure
//
// [cache] - Layout caching keyed by spec content hash. FileCache for CLI
// usage, RedisCache for shared server deployments, NullCache to disable.
//
// [store] - Persistence for named layouts. MemoryStore for development,
// MongoStore for production.
//
// [errors] - Structured error codes shared by CLI and API.
//
// [observability] - Optional hooks for metrics and tracing without hard
// backend dependencies.
//
// [buildinfo] - Build-time version information injected via ldflags.
//
// ## Orchestration
//
// [pipeline] - The load → layout → export runner with caching, used by
// both the CLI and the HTTP API.
package pkg
