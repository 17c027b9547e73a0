package domain

import "errors"

// Pre-scan failures. Everything past these two is recovered per file and
// reported through ScanStats counters instead of aborting the scan.
var (
	ErrEmptyQuery = errors.New("provide meaningful search terms (2+ characters)")

	ErrInvalidDirectory = errors.New("invalid search directory")

	ErrNoExtensions = errors.New("no file extensions selected")
)
