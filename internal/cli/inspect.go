package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartframe/pkg/layout"
	"github.com/matzehuels/chartframe/pkg/pipeline"
)

// inspectCommand creates the inspect command for browsing layout regions.
func (c *CLI) inspectCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "inspect [layout.json|chart.toml]",
		Short: "Browse the regions of a chart layout",
		Long: `Browse the regions of a chart layout.

The inspect command shows each region of a layout: the plot interior, the
per-side label areas, the caption, and the pixel ranges of the coordinate
system. Given a layout.json it reads the file directly; given a TOML spec
it computes the layout first.

By default inspect opens an interactive browser. Use --plain for
script-friendly output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], plain)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print regions without the interactive browser")

	return cmd
}

// runInspect loads or computes the layout and presents its regions.
func (c *CLI) runInspect(ctx context.Context, input string, plain bool) error {
	l, err := c.loadLayout(ctx, input)
	if err != nil {
		return err
	}

	if plain {
		printLayoutPlain(l)
		return nil
	}
	return runRegionBrowser(l)
}

// loadLayout reads a layout file, or computes the layout when given a spec.
func (c *CLI) loadLayout(ctx context.Context, input string) (layout.Layout, error) {
	if filepath.Ext(input) == ".json" {
		l, err := layout.ReadFile(input)
		if err != nil {
			return layout.Layout{}, fmt.Errorf("load layout %s: %w", input, err)
		}
		return l, nil
	}

	runner, err := c.newRunner(false)
	if err != nil {
		return layout.Layout{}, fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	result, err := runner.Execute(ctx, pipeline.Options{
		SpecPath: input,
		Logger:   c.Logger,
	})
	if err != nil {
		return layout.Layout{}, fmt.Errorf("compute layout: %w", err)
	}
	return result.Layout, nil
}

// printLayoutPlain prints the layout regions as key-value lines.
func printLayoutPlain(l layout.Layout) {
	printKeyValue("canvas", fmt.Sprintf("%dx%d", l.Width, l.Height))
	if l.Caption != "" {
		printKeyValue("caption", l.Caption)
	}
	printKeyValue("interior", formatRegion(l.Interior))
	for _, row := range labelRows(l) {
		printKeyValue(row.name, row.detail)
	}
	printKeyValue("x range", fmt.Sprintf("[%d, %d)", l.XRange.Start, l.XRange.End))
	printKeyValue("y range", fmt.Sprintf("[%d, %d)", l.YRange.Start, l.YRange.End))
}

// labelRow is one label area prepared for display.
type labelRow struct {
	name   string
	detail string
}

// labelRows collects the present label areas in display order.
func labelRows(l layout.Layout) []labelRow {
	var rows []labelRow
	for _, side := range []struct {
		name string
		area *layout.LabelArea
	}{
		{"top", l.Top},
		{"bottom", l.Bottom},
		{"left", l.Left},
		{"right", l.Right},
	} {
		if side.area == nil {
			continue
		}
		detail := formatRegion(side.area.Region)
		if side.area.Inset {
			detail += " (inset)"
		}
		rows = append(rows, labelRow{name: side.name + " labels", detail: detail})
	}
	return rows
}
