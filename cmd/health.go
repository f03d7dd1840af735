package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zyarat-mobile/zyarat/internal/config"
	"github.com/zyarat-mobile/zyarat/internal/scanapi"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check whether the analysis server is reachable and ready",
		Example: `  # Probe the server configured via ZYARAT_API_URL
  zyarat health`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			client := scanapi.New(cfg)

			result := client.Probe(cmd.Context())
			if !result.Ready {
				return fmt.Errorf("analysis server at %s is not ready: %s", cfg.APIURL, result.Detail)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Analysis server at %s is ready\n", cfg.APIURL)
			return nil
		},
	}
}
