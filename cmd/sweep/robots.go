package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/sweep"
	"github.com/gogpu/sweep/brep"
	"github.com/gogpu/sweep/rig"
)

func newRobotsCmd(a *app) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "robots SCENE",
		Short: "Sweep the robots of a YAML scene through time",
		Long: `Loads a scene file, sweeps every robot through the scene's sample
times concurrently and writes one 4-D solid per robot to the output
directory as <name>.json.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRobots(cmd, args[0], outDir)
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory for the swept solids")
	return cmd
}

type robotJob struct {
	name string
	mech rig.Mechanism
}

// resolveRobots names every robot and resolves its mechanism, so that no
// sweep starts unless the whole scene is buildable.
func resolveRobots(scene *rig.Scene) ([]robotJob, error) {
	jobs := make([]robotJob, len(scene.Robots))
	for i, entry := range scene.Robots {
		name := entry.Name
		if name == "" {
			name = fmt.Sprintf("robot%d", i+1)
		}
		mech, err := entry.Mechanism()
		if err != nil {
			return nil, err
		}
		jobs[i] = robotJob{name: name, mech: mech}
	}
	return jobs, nil
}

type robotResult struct {
	name    string
	path    string
	solid   *brep.Solid
	elapsed time.Duration
}

func (a *app) runRobots(cmd *cobra.Command, scenePath, outDir string) error {
	scene, err := rig.LoadScene(scenePath)
	if err != nil {
		return err
	}
	times, err := scene.SampleTimes()
	if err != nil {
		return err
	}
	jobs, err := resolveRobots(scene)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	results := make([]robotResult, len(jobs))
	g, ctx := errgroup.WithContext(cmd.Context())
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			solid, err := sweep.ExtrudeTime(rig.SolidAt(job.mech), times)
			if err != nil {
				return fmt.Errorf("robot %q: %w", job.name, err)
			}
			path := filepath.Join(outDir, job.name+".json")
			if err := brep.SaveFile(path, solid); err != nil {
				return fmt.Errorf("robot %q: %w", job.name, err)
			}
			results[i] = robotResult{name: job.name, path: path, solid: solid, elapsed: time.Since(start)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, r := range results {
		a.printer.Fprintf(out, "%s: %d boundaries over %d samples in %v -> %s\n",
			r.name, len(r.solid.Boundaries), len(times), r.elapsed.Round(time.Microsecond), r.path)
	}
	return nil
}
