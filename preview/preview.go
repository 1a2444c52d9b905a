// Package preview rasterizes planar solids for quick visual inspection.
//
// Only 2-D solids can be drawn. Boundaries become stroked segments clipped to
// their interval domains; the interior can optionally be shaded by
// classifying every pixel center with brep.Solid.ContainsPoint.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"sort"

	"golang.org/x/image/vector"

	"github.com/gogpu/sweep/brep"
)

var (
	// ErrNotPlanar is returned for solids that are not 2-dimensional.
	ErrNotPlanar = errors.New("preview: solid is not 2-dimensional")

	// ErrEmpty is returned when a solid has nothing to draw.
	ErrEmpty = errors.New("preview: nothing to draw")
)

// unboundedReach clips domains that extend to infinity.
const unboundedReach = 1e3

// Options control rendering.
type Options struct {
	Width  int
	Height int

	// Margin is the empty border around the drawing, as a fraction of the
	// image size.
	Margin float64

	// Stroke is the outline width in pixels.
	Stroke float32

	// Fill shades pixels inside the solid with Interior.
	Fill bool

	Background color.Color
	Outline    color.Color
	Interior   color.Color
}

// DefaultOptions returns a 512×512 white canvas with black outlines.
func DefaultOptions() Options {
	return Options{
		Width:      512,
		Height:     512,
		Margin:     0.05,
		Stroke:     1.5,
		Fill:       true,
		Background: color.White,
		Outline:    color.Black,
		Interior:   color.RGBA{R: 0x9e, G: 0xc5, B: 0xe8, A: 0xff},
	}
}

// Segment is a drawn piece of a boundary line.
type Segment struct {
	A, B brep.Vec
}

// Outline returns the visible segments of a 2-D solid's boundaries.
func Outline(s *brep.Solid) ([]Segment, error) {
	if s.Dimension != 2 {
		return nil, fmt.Errorf("%w: dimension %d", ErrNotPlanar, s.Dimension)
	}
	var out []Segment
	for i, b := range s.Boundaries {
		if b.Domain == nil || b.Domain.Dimension != 1 {
			return nil, fmt.Errorf("preview: boundary %d: domain is not an interval", i)
		}
		for _, iv := range intervals(b.Domain) {
			out = append(out, Segment{
				A: b.Manifold.Evaluate(brep.Vec{iv[0]}),
				B: b.Manifold.Evaluate(brep.Vec{iv[1]}),
			})
		}
	}
	return out, nil
}

// intervals lists the covered parameter ranges of a 1-D solid in order.
func intervals(d *brep.Solid) [][2]float64 {
	type end struct {
		at       float64
		entering bool
	}
	ends := make([]end, 0, len(d.Boundaries))
	for _, b := range d.Boundaries {
		h := b.Manifold
		// The point on a 1-D hyperplane is its position; the normal points out.
		ends = append(ends, end{at: h.Point[0], entering: h.Normal[0] < 0})
	}
	sort.Slice(ends, func(i, j int) bool { return ends[i].at < ends[j].at })

	var out [][2]float64
	inside := d.ContainsInfinity
	start := -unboundedReach
	for _, e := range ends {
		switch {
		case e.entering && !inside:
			start, inside = e.at, true
		case !e.entering && inside:
			if e.at > start {
				out = append(out, [2]float64{start, e.at})
			}
			inside = false
		}
	}
	if inside {
		out = append(out, [2]float64{start, unboundedReach})
	}
	return out
}

// viewport maps solid coordinates to pixels with a uniform scale and y up.
type viewport struct {
	minX, minY float64
	scale      float64
	offX, offY float64
	height     float64
}

func fit(segs []Segment, opts Options) (viewport, error) {
	if len(segs) == 0 {
		return viewport{}, ErrEmpty
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, s := range segs {
		for _, p := range []brep.Vec{s.A, s.B} {
			minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
			minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
		}
	}
	w := float64(opts.Width) * (1 - 2*opts.Margin)
	h := float64(opts.Height) * (1 - 2*opts.Margin)
	dx := math.Max(maxX-minX, 1e-9)
	dy := math.Max(maxY-minY, 1e-9)
	scale := math.Min(w/dx, h/dy)
	return viewport{
		minX:   minX,
		minY:   minY,
		scale:  scale,
		offX:   (float64(opts.Width) - dx*scale) / 2,
		offY:   (float64(opts.Height) - dy*scale) / 2,
		height: float64(opts.Height),
	}, nil
}

func (v viewport) toPixel(p brep.Vec) (x, y float64) {
	return (p[0]-v.minX)*v.scale + v.offX, v.height - ((p[1]-v.minY)*v.scale + v.offY)
}

func (v viewport) toSolid(x, y float64) brep.Vec {
	return brep.Vec{(x-v.offX)/v.scale + v.minX, (v.height-y-v.offY)/v.scale + v.minY}
}

// Render draws a 2-D solid.
func Render(s *brep.Solid, opts Options) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("preview: invalid size %dx%d", opts.Width, opts.Height)
	}
	segs, err := Outline(s)
	if err != nil {
		return nil, err
	}
	vp, err := fit(segs, opts)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	if opts.Fill {
		interior := color.RGBAModel.Convert(opts.Interior)
		for y := 0; y < opts.Height; y++ {
			for x := 0; x < opts.Width; x++ {
				if s.ContainsPoint(vp.toSolid(float64(x)+0.5, float64(y)+0.5)) {
					img.Set(x, y, interior)
				}
			}
		}
	}

	z := vector.NewRasterizer(opts.Width, opts.Height)
	half := float64(opts.Stroke) / 2
	for _, sg := range segs {
		ax, ay := vp.toPixel(sg.A)
		bx, by := vp.toPixel(sg.B)
		dx, dy := bx-ax, by-ay
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		// Every quad is wound the same way so overlaps never cancel.
		nx, ny := -dy/l*half, dx/l*half
		z.MoveTo(float32(ax+nx), float32(ay+ny))
		z.LineTo(float32(bx+nx), float32(by+ny))
		z.LineTo(float32(bx-nx), float32(by-ny))
		z.LineTo(float32(ax-nx), float32(ay-ny))
		z.ClosePath()
	}
	z.Draw(img, img.Bounds(), image.NewUniform(opts.Outline), image.Point{})
	return img, nil
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SavePNG writes img to a PNG file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
