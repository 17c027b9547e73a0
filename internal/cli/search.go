package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"sift/config"
	"sift/internal/adapter/fs"
	"sift/internal/adapter/matcher"
	"sift/internal/adapter/store"
	"sift/internal/domain"
	"sift/internal/usecase"
)

var (
	searchQuery      string
	searchExts       []string
	searchJSON       bool
	searchNoHistory  bool
	searchMaxResults int
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search file contents under a directory",
	Long: `Scan the directory tree for files whose content matches the query.
Results are grouped by match strength: exact phrase first, then proximity
phrase (all words within 50 words of each other), then bare keyword
co-occurrence.

Examples:
  sift search -q "antenna gain"
  sift search -q "calibration drift" --ext .log --ext .csv
  sift search -q "sweep rate" --json`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "search query (required)")
	searchCmd.Flags().StringArrayVar(&searchExts, "ext", nil, "file extensions to search (overrides config)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output match records as JSON")
	searchCmd.Flags().BoolVar(&searchNoHistory, "no-history", false, "do not record this query in history")
	searchCmd.Flags().IntVar(&searchMaxResults, "max-results", 0, "maximum results to display (default from config)")
	searchCmd.MarkFlagRequired("query")
}

// searchResult is the JSON shape of one match for --json output.
type searchResult struct {
	Path    string `json:"path"`
	Name    string `json:"name"`
	Size    int64  `json:"size"`
	Tier    string `json:"tier"`
	Score   int    `json:"score"`
	Snippet string `json:"snippet"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	rootDir := GetRootDir()

	sc := cfg.Search
	if len(searchExts) > 0 {
		sc.Extensions = searchExts
	}
	if searchMaxResults > 0 {
		sc.MaxResultsDisplayed = searchMaxResults
	}

	searchUC, err := newSearchUseCase(sc)
	if err != nil {
		return err
	}

	var progress usecase.ProgressFunc
	var bar *progressbar.ProgressBar
	if !searchJSON {
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetDescription("Scanning"),
			progressbar.OptionShowCount(),
			progressbar.OptionSpinnerType(14),
		)
		progress = func(scanned int, currentFile string) {
			bar.Add(1)
		}
	}

	report, err := searchUC.Search(rootDir, searchQuery, progress)
	if bar != nil {
		bar.Finish()
		fmt.Println()
	}
	if err != nil {
		if errors.Is(err, domain.ErrEmptyQuery) {
			return fmt.Errorf("empty query: %w", err)
		}
		if errors.Is(err, domain.ErrInvalidDirectory) || errors.Is(err, domain.ErrNoExtensions) {
			return fmt.Errorf("cannot search %s: %w", rootDir, err)
		}
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		results := make([]searchResult, 0, len(report.Records))
		for _, rec := range report.Records {
			results = append(results, searchResult{
				Path:    rec.Path,
				Name:    rec.DisplayName,
				Size:    rec.SizeBytes,
				Tier:    rec.Tier.Label(),
				Score:   rec.Score,
				Snippet: rec.Snippet,
			})
		}
		output, _ := json.MarshalIndent(results, "", "  ")
		fmt.Println(string(output))
	} else {
		fmt.Println(report.Rendered)
	}

	if cfg.History.Enabled && !searchNoHistory {
		recordHistory(rootDir, cfg, report)
	}

	return nil
}

func newSearchUseCase(sc config.SearchConfig) (*usecase.SearchUseCase, error) {
	enum, err := fs.NewEnumerator(sc.Extensions, sc.Excludes, sc.MaxFileBytes, sc.MaxFilesScanned)
	if err != nil {
		return nil, err
	}
	m := matcher.NewMatcher(sc.MaxSnippetChars)
	return usecase.NewSearchUseCase(enum, fs.Reader{}, m, sc.MaxResultsDisplayed, sc.MaxResponseChars), nil
}

// recordHistory appends the completed search to the history database.
// History failures are warnings; they never fail the search itself.
func recordHistory(rootDir string, cfg *config.Config, report domain.SearchReport) {
	if err := config.EnsureSiftDir(rootDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create history dir: %v\n", err)
		return
	}
	hs, err := store.NewHistoryStore(config.HistoryDBPath(rootDir), cfg.History.MaxEntries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history: %v\n", err)
		return
	}
	defer hs.Close()

	entry := domain.HistoryEntry{
		Query:        report.Query,
		When:         time.Now(),
		Stats:        report.Stats,
		TotalMatches: report.TotalMatches(),
	}
	if err := hs.Append(entry); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not record history: %v\n", err)
	}
}
