package cmd

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/philipparndt/golines/internal/app"
	"github.com/philipparndt/golines/pkg/ingest"
	"github.com/spf13/cobra"
)

var (
	randomCount  int
	randomPoints int
	randomExtent float64
	randomSeed   uint64
	randomOut    string
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "View randomly generated polylines",
	Long:  "Generate random polylines and open them in the viewer, or write them to a file with --out.",
	Args:  cobra.NoArgs,
	RunE:  runRandom,
}

func init() {
	rootCmd.AddCommand(randomCmd)

	randomCmd.Flags().IntVarP(&randomCount, "count", "n", 1000, "Number of polylines")
	randomCmd.Flags().IntVarP(&randomPoints, "points", "p", 10, "Points per polyline")
	randomCmd.Flags().Float64Var(&randomExtent, "extent", 1, "Coordinates are spread over [-extent, extent]")
	randomCmd.Flags().Uint64Var(&randomSeed, "seed", 0, "Random seed, 0 picks one from the clock")
	randomCmd.Flags().StringVarP(&randomOut, "out", "o", "", "Write the polylines to a .txt or .bin file instead of viewing them")
}

func runRandom(cmd *cobra.Command, args []string) error {
	if randomCount <= 0 || randomPoints < 2 {
		return fmt.Errorf("need at least one polyline of two points, got %d x %d", randomCount, randomPoints)
	}

	seed := randomSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	mls := ingest.Random(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), randomCount, randomPoints, randomExtent)

	if randomOut != "" {
		if err := ingest.Save(randomOut, mls); err != nil {
			return err
		}
		fmt.Printf("Wrote %d polylines (%d points) to %s\n", len(mls), ingest.PointCount(mls), randomOut)
		return nil
	}

	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	log.Info("generated random polylines", "count", randomCount, "points", randomPoints, "seed", seed)
	return app.Run(cmd.Context(), app.Options{Config: cfg, Data: mls, Log: log})
}
