package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/philipparndt/golines/internal/view"
	"github.com/philipparndt/golines/pkg/ingest"
	"github.com/philipparndt/golines/pkg/viewer"
	"github.com/spf13/cobra"
)

var (
	snapshotWidth  int
	snapshotHeight int
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <file> <out.png>",
	Short: "Render a polyline file to a PNG image",
	Long:  "Render the data fitted to the image without opening a window. The same line shading as the viewer is used.",
	Args:  cobra.ExactArgs(2),
	RunE:  runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)

	snapshotCmd.Flags().IntVar(&snapshotWidth, "width", 1280, "Image width in pixels")
	snapshotCmd.Flags().IntVar(&snapshotHeight, "height", 800, "Image height in pixels")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}

	mls, err := ingest.Load(args[0], ingest.Options{Column: cfg.Data.Column})
	if err != nil {
		return err
	}
	mls = view.Prepare(mls, cfg.Data)

	style := view.StyleFrom(cfg.Style)
	scene := view.NewScene(mls, view.SceneOptions{
		Color:        style.Line,
		RandomColors: style.RandomColors,
		Rand:         rand.New(rand.NewPCG(1, 2)),
		MaxSegments:  cfg.Renderer.Capacity,
	})
	if scene.Segments() == 0 {
		return fmt.Errorf("%s: no segments to draw", args[0])
	}
	log.Debug("rendering snapshot", "segments", scene.Segments(), "width", snapshotWidth, "height", snapshotHeight)

	img, err := view.Snapshot(scene, style, snapshotWidth, snapshotHeight, cfg.Camera.FitMargin)
	if err != nil {
		return err
	}
	if err := viewer.SavePNG(args[1], img); err != nil {
		return err
	}

	fmt.Printf("Wrote %dx%d image with %d segments to %s\n", snapshotWidth, snapshotHeight, scene.Segments(), args[1])
	return nil
}
