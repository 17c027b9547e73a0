package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"sift/config"
	"sift/internal/adapter/store"
)

var historyCount int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent search queries",
	Long: `List recent queries recorded for this directory, newest first.

Examples:
  sift history
  sift history -n 50`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyCount, "count", "n", 20, "number of entries to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	rootDir := GetRootDir()

	dbPath := config.HistoryDBPath(rootDir)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("No search history yet.")
		return nil
	}

	hs, err := store.NewHistoryStore(dbPath, cfg.History.MaxEntries)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer hs.Close()

	entries, err := hs.Recent(historyCount)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("No search history yet.")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %-40q  %d matches (%d files scanned)\n",
			e.When.Format("2006-01-02 15:04:05"), e.Query, e.TotalMatches, e.Stats.FilesScanned)
	}
	return nil
}
