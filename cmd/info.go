package cmd

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/philipparndt/golines/pkg/analysis"
	"github.com/philipparndt/golines/pkg/ingest"
	"github.com/spf13/cobra"
)

var infoTop int

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display statistics about a polyline file",
	Long:  "Show polyline, point and segment counts, the bounding box and segment length statistics.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().IntVarP(&infoTop, "longest", "n", 5, "Number of longest segments to list")
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	filename := args[0]

	mls, err := ingest.Load(filename, ingest.Options{Column: cfg.Data.Column})
	if err != nil {
		return err
	}
	log.Debug("loaded", "path", filename, "polylines", len(mls))

	result := analysis.Analyze(mls, infoTop)

	fmt.Println("Polyline File Information")
	fmt.Println("=========================")
	fmt.Printf("File: %s\n", filename)
	fmt.Printf("Format: %s\n\n", ingest.DetectFormat(filename))

	fmt.Println("Statistics:")
	fmt.Printf("  Polylines: %d\n", result.Polylines)
	fmt.Printf("  Points: %d\n", result.Points)
	fmt.Printf("  Segments: %d\n", result.Segments)
	fmt.Printf("  Zero-length segments: %d\n\n", result.Degenerate)

	if result.Points == 0 {
		return nil
	}

	size := result.Size()
	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", formatPoint(result.Bound.Min))
	fmt.Printf("  Max: %s\n", formatPoint(result.Bound.Max))
	fmt.Printf("  Center: %s\n", formatPoint(result.Bound.Center()))
	fmt.Printf("  Centroid: %s\n", formatPoint(result.Centroid))
	fmt.Printf("  Width (X): %.6f units\n", size[0])
	fmt.Printf("  Height (Y): %.6f units\n\n", size[1])

	if result.Segments == 0 {
		return nil
	}

	fmt.Println("Segment Lengths:")
	fmt.Printf("  Total: %.6f units\n", result.TotalLength)
	fmt.Printf("  Minimum: %.6f units\n", result.MinSegment)
	fmt.Printf("  Maximum: %.6f units\n", result.MaxSegment)
	fmt.Printf("  Average: %.6f units\n", result.AvgSegment)

	if len(result.Longest) > 0 {
		fmt.Printf("\nTop %d Longest Segments:\n", len(result.Longest))
		for i, s := range result.Longest {
			fmt.Printf("  %d. %.6f units  %s -> %s  (polyline %d)\n",
				i+1, s.Length, formatPoint(s.From), formatPoint(s.To), s.Polyline)
		}
	}
	return nil
}

func formatPoint(p orb.Point) string {
	return fmt.Sprintf("(%.6f, %.6f)", p[0], p[1])
}
