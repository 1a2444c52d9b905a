package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/sweep"
	"github.com/gogpu/sweep/brep"
	"github.com/gogpu/sweep/preview"
)

var errProfile = errors.New("exactly one of --interval, --box, --polygon is required")

type pathFlags struct {
	interval string
	box      string
	polygon  string
	path     string
	out      string
	png      string
}

func newPathCmd(a *app) *cobra.Command {
	var f pathFlags

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Extrude a profile along a polyline path",
		Long: `Builds a profile solid and extrudes it along a path one dimension up.
Points are space-separated, coordinates comma-separated:

  --interval -1,1              1-D profile
  --box "0,1 0,2"              axis-aligned box, one lo,hi pair per axis
  --polygon "0,0 1,0 0,1"      2-D polygon, counter-clockwise
  --path "0,0,0 0.5,0,1"       the last coordinate must change on every segment`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPath(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.interval, "interval", "", "1-D profile lo,hi")
	cmd.Flags().StringVar(&f.box, "box", "", "box profile as lo,hi pairs")
	cmd.Flags().StringVar(&f.polygon, "polygon", "", "2-D polygon profile")
	cmd.Flags().StringVar(&f.path, "path", "", "extrusion path")
	cmd.Flags().StringVarP(&f.out, "out", "o", "extrusion.json", "output JSON file")
	cmd.Flags().StringVar(&f.png, "png", "", "also render a 2-D result to this PNG file")
	_ = cmd.MarkFlagRequired("path")
	return cmd
}

func (a *app) runPath(cmd *cobra.Command, f pathFlags) error {
	profile, err := buildProfile(f)
	if err != nil {
		return err
	}
	path, err := parsePoints(f.path)
	if err != nil {
		return fmt.Errorf("--path: %w", err)
	}

	solid, err := sweep.ExtrudePath(profile, path)
	if err != nil {
		return err
	}
	if err := brep.SaveFile(f.out, solid); err != nil {
		return err
	}
	a.printer.Fprintf(cmd.OutOrStdout(), "extruded %d-D profile along %d segments: %d boundaries -> %s\n",
		profile.Dimension, len(path)-1, len(solid.Boundaries), f.out)

	if f.png != "" {
		img, err := preview.Render(solid, preview.DefaultOptions())
		if err != nil {
			return err
		}
		if err := preview.SavePNG(f.png, img); err != nil {
			return err
		}
		a.printer.Fprintf(cmd.OutOrStdout(), "preview -> %s\n", f.png)
	}
	return nil
}

func buildProfile(f pathFlags) (*brep.Solid, error) {
	set := 0
	for _, s := range []string{f.interval, f.box, f.polygon} {
		if s != "" {
			set++
		}
	}
	if set != 1 {
		return nil, errProfile
	}

	switch {
	case f.interval != "":
		v, err := parseVec(f.interval)
		if err != nil {
			return nil, fmt.Errorf("--interval: %w", err)
		}
		if len(v) != 2 || v[0] >= v[1] {
			return nil, fmt.Errorf("--interval: want lo,hi with lo < hi, got %q", f.interval)
		}
		return brep.Interval(v[0], v[1]), nil

	case f.box != "":
		pairs, err := parsePoints(f.box)
		if err != nil {
			return nil, fmt.Errorf("--box: %w", err)
		}
		bounds := make([][2]float64, len(pairs))
		for i, p := range pairs {
			if len(p) != 2 || p[0] >= p[1] {
				return nil, fmt.Errorf("--box: axis %d: want lo,hi with lo < hi", i)
			}
			bounds[i] = [2]float64{p[0], p[1]}
		}
		return brep.Hypercube(bounds), nil

	default:
		points, err := parsePoints(f.polygon)
		if err != nil {
			return nil, fmt.Errorf("--polygon: %w", err)
		}
		for i, p := range points {
			if len(p) != 2 {
				return nil, fmt.Errorf("--polygon: point %d has %d coordinates, want 2", i, len(p))
			}
		}
		return brep.FacetedPolygon(points)
	}
}

// parsePoints reads space-separated points of comma-separated coordinates.
func parsePoints(s string) ([]brep.Vec, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, errors.New("no points")
	}
	points := make([]brep.Vec, len(fields))
	for i, field := range fields {
		v, err := parseVec(field)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		points[i] = v
	}
	return points, nil
}

func parseVec(s string) (brep.Vec, error) {
	parts := strings.Split(s, ",")
	v := make(brep.Vec, len(parts))
	for i, p := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		v[i] = x
	}
	return v, nil
}
