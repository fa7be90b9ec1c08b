package main

import (
	"fmt"
	"os"

	"github.com/antonrybalko/record-demo-go/internal/app"
	"github.com/antonrybalko/record-demo-go/internal/config"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "record-demo failed: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the record-demo command
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "record-demo",
		Short:         "Run the record and string collection demo",
		Version:       app.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			service, err := app.NewService(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize service: %w", err)
			}
			defer service.Cleanup()

			return service.Run(cmd.Context(), cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.String("config", "", "path to a config file")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.StringP("output", "o", config.OutputText, "report format (text, yaml)")
	flags.String("name", "test", "record name")
	flags.Int("value", 10, "initial record value")
	flags.Int("increment", 5, "amount added to the record value")
	flags.String("items", "", "YAML file with the input items")
	flags.Bool("filter-empty", true, "drop items that are empty after trimming")
	flags.String("target", "item2", "item to search for in the processed items")

	return cmd
}
