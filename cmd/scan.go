package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zyarat-mobile/zyarat/internal/config"
	"github.com/zyarat-mobile/zyarat/internal/imageprep"
	"github.com/zyarat-mobile/zyarat/internal/kronodex"
	"github.com/zyarat-mobile/zyarat/internal/relay"
	"github.com/zyarat-mobile/zyarat/internal/scanapi"
	"github.com/zyarat-mobile/zyarat/internal/scanner"
)

func newScanCmd() *cobra.Command {
	var save bool
	var kronodexPath string

	cmd := &cobra.Command{
		Use:   "scan <image>",
		Short: "Analyze a photo of an artifact",
		Long: `Runs the full scan pipeline on a photo: probes the analysis server,
downsizes and re-encodes the image, uploads it, and prints the analysis
result. With --save, a recognized artifact is added to the Kronodex file.`,
		Example: `  # Scan a photo
  zyarat scan mosaic.jpg

  # Scan and save a recognized artifact to the collection
  zyarat scan mosaic.jpg --save

  # Use a specific collection file
  zyarat scan mosaic.jpg --save --kronodex ~/zyarat/kronodex.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			imagePath := args[0]
			raw, err := os.ReadFile(imagePath)
			if err != nil {
				return fmt.Errorf("failed to read image: %w", err)
			}

			cfg := config.Load()
			client := scanapi.New(cfg)
			store := relay.New()
			session := scanner.NewSession(
				client,
				imageprep.New(cfg.MaxImageWidth, cfg.JPEGQuality),
				client,
				store,
			)

			if err := session.StartCapture(); err != nil {
				return err
			}
			if err := session.Analyze(cmd.Context(), raw, imagePath); err != nil {
				return err
			}

			// The CLI plays both screens: the capture flow staged the result,
			// the results flow takes it.
			value, ok := store.TakeAndClear(relay.ResultKey)
			if !ok {
				return fmt.Errorf("scan succeeded but no result was staged")
			}
			payload := value.(scanner.ResultPayload)

			out, err := json.MarshalIndent(payload.ArtifactData, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to render result: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			result := payload.ArtifactData
			if !result.Recognized() {
				fmt.Fprintf(cmd.OutOrStdout(), "\nNot recognized as a Tunisian artifact. Possible identification: %s\n",
					result.PossibleIdentification)
				return nil
			}

			if !save {
				return nil
			}

			collection, err := kronodex.Load(kronodexPath)
			if err != nil {
				return err
			}
			entry := kronodex.NewEntry(result.Artifact, payload.ImageURI)
			if err := collection.Add(entry); err != nil {
				// Already collected: report, nothing changed.
				fmt.Fprintln(cmd.OutOrStdout(), err.Error())
				return nil
			}
			if err := kronodex.Save(collection, kronodexPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s added to your Kronodex (%d items)\n",
				entry.Title, collection.Len())
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Save a recognized artifact to the Kronodex")
	cmd.Flags().StringVar(&kronodexPath, "kronodex", "kronodex.yaml", "Path to the Kronodex collection file")

	return cmd
}
