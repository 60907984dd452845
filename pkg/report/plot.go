package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/kmilcz/chargeevolve-go/internal/constants"
	"github.com/kmilcz/chargeevolve-go/pkg/geometry"
	"github.com/kmilcz/chargeevolve-go/pkg/population"
)

// SavePlot renders the region outline and the charge positions to an
// image file (format chosen by extension). With showIndices each charge
// is annotated with its index.
func SavePlot(path string, region geometry.Region, config population.Configuration, showIndices bool) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Minimum-energy configuration, %d charges in a %s", len(config), region.Name())
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	boundary := region.Boundary(constants.BoundarySegments)
	outline := make(plotter.XYs, len(boundary))
	for i, pt := range boundary {
		outline[i].X = pt.X
		outline[i].Y = pt.Y
	}
	line, err := plotter.NewLine(outline)
	if err != nil {
		return fmt.Errorf("failed to build region outline: %w", err)
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = color.Black

	charges := make(plotter.XYs, len(config))
	for i, pt := range config {
		charges[i].X = pt.X
		charges[i].Y = pt.Y
	}
	scatter, err := plotter.NewScatter(charges)
	if err != nil {
		return fmt.Errorf("failed to build charge scatter: %w", err)
	}
	scatter.GlyphStyle.Radius = vg.Points(4)
	scatter.GlyphStyle.Color = color.RGBA{R: 220, A: 255}

	p.Add(line, scatter)

	if showIndices {
		labels := plotter.XYLabels{XYs: charges, Labels: make([]string, len(config))}
		for i := range labels.Labels {
			labels.Labels[i] = fmt.Sprintf("%d", i)
		}
		labelPlot, err := plotter.NewLabels(labels)
		if err != nil {
			return fmt.Errorf("failed to build charge labels: %w", err)
		}
		p.Add(labelPlot)
	}

	// Pad the axes 25% beyond the region so the outline never touches the
	// frame.
	b := region.Bounds()
	padX := 0.25 * (b.MaxX - b.MinX) / 2
	padY := 0.25 * (b.MaxY - b.MinY) / 2
	p.X.Min, p.X.Max = b.MinX-padX, b.MaxX+padX
	p.Y.Min, p.Y.Max = b.MinY-padY, b.MaxY+padY

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
