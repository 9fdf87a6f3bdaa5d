package diagram

import (
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportSection writes the designed cross section to an image file. The
// format follows the file extension: png, svg or pdf.
func ExportSection(data SectionData, filename string) error {
	p := plot.New()
	p.Title.Text = "Beam Section Design"
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Depth (mm)"

	outline := sectionOutline(data)
	line, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.Black
	p.Add(line)

	block, err := plotter.NewPolygon(compressionBlock(data))
	if err != nil {
		return err
	}
	block.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	block.LineStyle.Color = color.RGBA{B: 139, A: 255}
	p.Add(block)

	// Neutral axis
	na, err := plotter.NewLine(plotter.XYs{
		{X: leftEdge(data), Y: data.Depth - data.Xu},
		{X: rightEdge(data), Y: data.Depth - data.Xu},
	})
	if err != nil {
		return err
	}
	na.LineStyle.Color = color.RGBA{R: 200, A: 255}
	na.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(na)

	// Steel markers at mid-width
	steel, err := plotter.NewScatter(steelPoints(data))
	if err != nil {
		return err
	}
	steel.GlyphStyle.Shape = draw.CircleGlyph{}
	steel.GlyphStyle.Radius = vg.Points(4)
	steel.GlyphStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	p.Add(steel)

	switch ext := filepath.Ext(filename); ext {
	case ".png", ".svg", ".pdf":
		return p.Save(15*vg.Centimeter, 15*vg.Centimeter, filename)
	default:
		return fmt.Errorf("unsupported image format %q (use png, svg or pdf)", ext)
	}
}

func leftEdge(data SectionData) float64 {
	if data.FlangeWidth > data.Width {
		return -(data.FlangeWidth - data.Width) / 2
	}
	return 0
}

func rightEdge(data SectionData) float64 {
	return leftEdge(data) + maxWidth(data)
}

func maxWidth(data SectionData) float64 {
	if data.FlangeWidth > data.Width {
		return data.FlangeWidth
	}
	return data.Width
}

// sectionOutline traces the section boundary, web-centred under the flange
// for T sections.
func sectionOutline(data SectionData) plotter.XYs {
	d := data.Depth
	if data.FlangeWidth <= data.Width {
		w := data.Width
		return plotter.XYs{
			{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: d}, {X: 0, Y: d}, {X: 0, Y: 0},
		}
	}
	bf := data.FlangeWidth
	bw := data.Width
	df := data.FlangeDepth
	off := (bf - bw) / 2
	return plotter.XYs{
		{X: off, Y: 0},
		{X: off + bw, Y: 0},
		{X: off + bw, Y: d - df},
		{X: bf, Y: d - df},
		{X: bf, Y: d},
		{X: 0, Y: d},
		{X: 0, Y: d - df},
		{X: off, Y: d - df},
		{X: off, Y: 0},
	}
}

// compressionBlock shades the concrete above the neutral axis.
func compressionBlock(data SectionData) plotter.XYs {
	d := data.Depth
	top := d
	bottom := d - data.Xu
	if data.FlangeWidth <= data.Width || data.Xu <= data.FlangeDepth {
		w := maxWidth(data)
		l := 0.0
		if data.FlangeWidth <= data.Width {
			w = data.Width
		}
		return plotter.XYs{
			{X: l, Y: bottom}, {X: l + w, Y: bottom}, {X: l + w, Y: top}, {X: l, Y: top},
		}
	}
	// Block reaches into the web: flange slab plus a web stem.
	bf := data.FlangeWidth
	bw := data.Width
	df := data.FlangeDepth
	off := (bf - bw) / 2
	return plotter.XYs{
		{X: off, Y: bottom},
		{X: off + bw, Y: bottom},
		{X: off + bw, Y: d - df},
		{X: bf, Y: d - df},
		{X: bf, Y: top},
		{X: 0, Y: top},
		{X: 0, Y: d - df},
		{X: off, Y: d - df},
	}
}

func steelPoints(data SectionData) plotter.XYs {
	mid := leftEdge(data) + maxWidth(data)/2
	pts := plotter.XYs{{X: mid, Y: data.Depth - data.TensionDepth}}
	if data.CompArea > 0 {
		pts = append(pts, plotter.XY{X: mid, Y: data.Depth - data.CompDepth})
	}
	return pts
}
