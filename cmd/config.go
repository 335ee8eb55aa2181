package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config <out.yaml>",
	Short: "Write the effective configuration",
	Long: `Write the configuration the viewer would run with as YAML: the defaults,
overlaid with --config and the command line flags. The output is a complete
starting point for a configuration file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := setup(cmd)
		if err != nil {
			return err
		}
		if err := cfg.Save(args[0]); err != nil {
			return err
		}
		fmt.Printf("Wrote configuration to %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
