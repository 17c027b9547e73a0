package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"sift/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "sift",
	Short: "Sift - search file contents with tiered relevance ranking",
	Long: `Sift locates files under a directory tree whose text matches a query,
ranks them by match strength (exact phrase, proximity phrase, all keywords),
and prints a bounded report with contextual snippets. No index is kept;
every query re-scans the tree.

Example usage:
  sift search -q "pulse width"      # Search the current directory
  sift check                        # Validate directory and count files
  sift history                      # Show recent queries`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./sift.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
