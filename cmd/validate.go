package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/content"
)

var validateCmd = &cobra.Command{
	Use:   "validate [content-file]",
	Short: "Check a content file without building",
	Long: `Decodes the content file strictly, rejecting unknown keys, and prints
warnings for values the renderer will skip or degrade, such as highlights
that do not occur in their text or unknown color tags.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			path = cfg.ContentFile
		}

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening content file: %w", err)
		}
		defer f.Close()

		store, err := content.Decode(f, true)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		warnings := store.Validate()
		if len(warnings) == 0 {
			fmt.Printf("%s: ok\n", path)
			return nil
		}
		fmt.Printf("%s: %d warning(s)\n", path, len(warnings))
		for _, w := range warnings {
			fmt.Printf("  %s\n", w)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
