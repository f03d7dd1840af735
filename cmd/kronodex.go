package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zyarat-mobile/zyarat/internal/export"
	"github.com/zyarat-mobile/zyarat/internal/kronodex"
)

func newKronodexCmd() *cobra.Command {
	var kronodexPath string

	cmd := &cobra.Command{
		Use:   "kronodex",
		Short: "Manage the collection of saved artifact scans",
	}
	cmd.PersistentFlags().StringVar(&kronodexPath, "kronodex", "kronodex.yaml", "Path to the Kronodex collection file")

	cmd.AddCommand(newKronodexListCmd(&kronodexPath))
	cmd.AddCommand(newKronodexExportCmd(&kronodexPath))
	cmd.AddCommand(newKronodexRemoveCmd(&kronodexPath))

	return cmd
}

func newKronodexListCmd(kronodexPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List collected artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := kronodex.Load(*kronodexPath)
			if err != nil {
				return err
			}

			items := store.Items()
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Your Kronodex is empty. Scan an artifact with --save to start collecting.")
				return nil
			}

			for _, item := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s — %s (scanned %s)\n",
					item.Title, item.Period, item.ScanDate.Format("2006-01-02"))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d artifacts collected\n", len(items))
			return nil
		},
	}
}

func newKronodexExportCmd(kronodexPath *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the collection to YAML or Parquet",
		Example: `  # Export to YAML
  zyarat kronodex export --output collection.yaml

  # Export to Parquet for analysis tooling
  zyarat kronodex export --output collection.parquet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := kronodex.Load(*kronodexPath)
			if err != nil {
				return err
			}
			if err := export.Write(store.Items(), output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d artifacts to %s\n", store.Len(), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "kronodex-export.yaml", "Destination file (.yaml or .parquet)")

	return cmd
}

func newKronodexRemoveCmd(kronodexPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <title>",
		Short: "Remove an artifact from the collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := kronodex.Load(*kronodexPath)
			if err != nil {
				return err
			}
			if !store.Remove(args[0]) {
				return fmt.Errorf("%q is not in your Kronodex", args[0])
			}
			if err := kronodex.Save(store, *kronodexPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	}
}
