package plot

import (
	"image/color"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/NeilNjae/pci/pkg/data"
)

// Options titles a two class scatter plot.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	Size   vg.Length
}

// AgeOptions labels the ages plot: the woman's age across, the man's age up.
var AgeOptions = Options{Title: "Ages of matches", XLabel: "woman", YLabel: "man", Size: 6 * vg.Inch}

// Points converts two dimensional records into plot points.
func Points(records []data.Record) (plotter.XYs, error) {
	pts := make(plotter.XYs, len(records))
	for i, r := range records {
		if len(r.Data) != 2 {
			return nil, errors.Errorf("record %d has %d features, a scatter plot needs 2", i, len(r.Data))
		}
		pts[i].X = r.Data[0]
		pts[i].Y = r.Data[1]
	}
	return pts, nil
}

// Scatter builds a plot with one series for matches and one for non-matches.
func Scatter(records []data.Record, opts Options) (*plot.Plot, error) {
	matches, nonMatches := data.Partition(records)

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel

	series := []struct {
		name  string
		rows  []data.Record
		color color.Color
		shape draw.GlyphDrawer
	}{
		{"match", matches, color.RGBA{R: 50, G: 50, B: 255, A: 255}, draw.CircleGlyph{}},
		{"no match", nonMatches, color.RGBA{R: 255, A: 255}, draw.CrossGlyph{}},
	}
	for _, s := range series {
		pts, err := Points(s.rows)
		if err != nil {
			return nil, err
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, errors.Wrap(err, s.name)
		}
		sc.Color = s.color
		sc.Shape = s.shape
		p.Add(sc)
		p.Legend.Add(s.name, sc)
	}
	return p, nil
}

// AgeMatches saves a scatter plot of records to path. The format follows the extension.
func AgeMatches(records []data.Record, path string) error {
	return Save(records, AgeOptions, path)
}

// Save renders records with opts and writes the image to path.
func Save(records []data.Record, opts Options, path string) error {
	p, err := Scatter(records, opts)
	if err != nil {
		return err
	}
	size := opts.Size
	if size == 0 {
		size = 4 * vg.Inch
	}
	return p.Save(size, size, path)
}
