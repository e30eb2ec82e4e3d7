package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"treekit/pkg/translate"
)

var translateOpts struct {
	source     string
	sourceLang string
	targetLang string
	apiKey     string
	endpoint   string
	yes        bool
}

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate the names of a directory's subdirectories via a remote API",
	Long: `Translate lists the immediate subdirectories of --source, submits their
names to the translation service in one call, and renames each directory to
its translation after a confirmation prompt. The combined size of the
submitted names must stay under 128 KiB.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiKey := translateOpts.apiKey
		if apiKey == "" {
			var err error
			apiKey, err = translate.LoadAPIKey()
			if err != nil {
				return err
			}
		}

		client := translate.NewClient(translateOpts.endpoint, apiKey, logger)

		confirm := func(preview string) (bool, error) {
			fmt.Print(preview)
			if translateOpts.yes {
				return true, nil
			}
			fmt.Print("Proceed? (y/n): ")
			reader := bufio.NewReader(os.Stdin)
			response, err := reader.ReadString('\n')
			if err != nil {
				return false, err
			}
			response = strings.TrimSpace(strings.ToLower(response))
			return response == "y" || response == "yes", nil
		}

		renamed, err := client.RenameAll(cmd.Context(), translateOpts.source,
			translateOpts.sourceLang, translateOpts.targetLang, confirm, logger)
		if err != nil {
			return err
		}

		fmt.Printf("Renamed %d directories\n", renamed)
		return nil
	},
}

func init() {
	translateCmd.Flags().StringVarP(&translateOpts.source, "source", "s", ".", "Directory whose subdirectories are renamed")
	translateCmd.Flags().StringVar(&translateOpts.sourceLang, "from", "EN", "Source language code")
	translateCmd.Flags().StringVar(&translateOpts.targetLang, "to", "DE", "Target language code")
	translateCmd.Flags().StringVar(&translateOpts.apiKey, "api-key", "", "Translation API key (default: TRANSLATE_API_KEY or .env)")
	translateCmd.Flags().StringVar(&translateOpts.endpoint, "endpoint", "", "Translation service endpoint (default: the public API)")
	translateCmd.Flags().BoolVarP(&translateOpts.yes, "yes", "y", false, "Skip the rename confirmation prompt")

	RootCmd.AddCommand(translateCmd)
}
