package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"sift/internal/domain"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the search directory and count eligible files",
	Long: `Verify that the search directory exists and report how many files are
eligible for scanning under the configured extension selection.

Examples:
  sift check
  sift check -d /data/captures`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	rootDir := GetRootDir()

	searchUC, err := newSearchUseCase(cfg.Search)
	if err != nil {
		return err
	}

	count, err := searchUC.Check(rootDir)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDirectory) {
			return fmt.Errorf("directory does not exist or is not a directory: %s", rootDir)
		}
		return err
	}

	fmt.Printf("Ready - found %d searchable files in %s\n", count, rootDir)
	return nil
}
