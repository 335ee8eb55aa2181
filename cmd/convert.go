package cmd

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/philipparndt/golines/pkg/ingest"
	"github.com/spf13/cobra"
)

var (
	decimateEvery    int
	decimateSimplify float64
	extractNormalize bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <csv> <out>",
	Short: "Extract WKT polylines from a CSV file",
	Long: `Read LINESTRING and MULTILINESTRING geometries from a CSV column and write
them as text (.txt) or binary (.bin). The column is chosen with --column by
header name or index, or with data.column in the configuration.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if ingest.DetectFormat(args[0]) != ingest.FormatCSV {
			return fmt.Errorf("%s: expected a .csv file", args[0])
		}
		return transform(cmd, args[0], args[1], func(mls orb.MultiLineString) orb.MultiLineString {
			if extractNormalize {
				return ingest.Normalize(mls)
			}
			return mls
		})
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert between polyline file formats",
	Long:  "Convert polylines between text (.txt) and binary (.bin). CSV input is accepted as well.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return transform(cmd, args[0], args[1], nil)
	},
}

var decimateCmd = &cobra.Command{
	Use:   "decimate <in> <out>",
	Short: "Keep every n-th point",
	Long:  "Reduce the point count by keeping every n-th point, optionally simplifying the result with Douglas-Peucker.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if decimateEvery < 1 {
			return fmt.Errorf("--every must be at least 1, got %d", decimateEvery)
		}
		if decimateSimplify < 0 {
			return fmt.Errorf("--simplify must not be negative, got %g", decimateSimplify)
		}
		return transform(cmd, args[0], args[1], func(mls orb.MultiLineString) orb.MultiLineString {
			mls = ingest.Decimate(mls, decimateEvery)
			if decimateSimplify > 0 {
				mls = ingest.Simplify(mls, decimateSimplify)
			}
			return mls
		})
	},
}

func init() {
	rootCmd.AddCommand(extractCmd, convertCmd, decimateCmd)

	extractCmd.Flags().BoolVar(&extractNormalize, "normalize", false, "Scale coordinates by the largest value per axis")
	decimateCmd.Flags().IntVarP(&decimateEvery, "every", "e", 10, "Keep every n-th point")
	decimateCmd.Flags().Float64Var(&decimateSimplify, "simplify", 0, "Douglas-Peucker tolerance, 0 disables")
}

// transform loads in, applies fn and writes the result to out. The CSV
// column comes from the configuration, which --column overrides.
func transform(cmd *cobra.Command, in, out string, fn func(orb.MultiLineString) orb.MultiLineString) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	mls, err := ingest.Load(in, ingest.Options{Column: cfg.Data.Column})
	if err != nil {
		return err
	}
	before := ingest.PointCount(mls)
	if fn != nil {
		mls = fn(mls)
	}
	log.Debug("transformed", "in", in, "out", out, "polylines", len(mls))
	if err := ingest.Save(out, mls); err != nil {
		return err
	}

	fmt.Printf("Wrote %d polylines to %s\n", len(mls), out)
	fmt.Printf("  Points: %d -> %d\n", before, ingest.PointCount(mls))
	return nil
}
