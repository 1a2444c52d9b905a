package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/sweep/brep"
	"github.com/gogpu/sweep/preview"
)

func newPreviewCmd(a *app) *cobra.Command {
	var (
		out    string
		size   int
		noFill bool
	)

	cmd := &cobra.Command{
		Use:   "preview SOLID",
		Short: "Render a 2-D solid saved as JSON to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			solid, err := brep.LoadFile(args[0])
			if err != nil {
				return err
			}
			opts := preview.DefaultOptions()
			opts.Width, opts.Height = size, size
			opts.Fill = !noFill
			img, err := preview.Render(solid, opts)
			if err != nil {
				return err
			}
			if err := preview.SavePNG(out, img); err != nil {
				return err
			}
			a.printer.Fprintf(cmd.OutOrStdout(), "%d boundaries rendered at %dx%d -> %s\n",
				len(solid.Boundaries), size, size, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "preview.png", "output PNG file")
	cmd.Flags().IntVar(&size, "size", 512, "image width and height in pixels")
	cmd.Flags().BoolVar(&noFill, "no-fill", false, "draw outlines only")
	return cmd
}
