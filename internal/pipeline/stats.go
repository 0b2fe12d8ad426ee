package pipeline

// RunStats tracks aggregate counters across a batch run. Per-file table and
// image counters are scoped to processFile; only the totals accumulate here.
type RunStats struct {
	Total       int // files enumerated
	Current     int // 1-based index of the file in progress
	Files       int // files fully processed
	Tables      int // table extensions exported
	Images      int // image extensions rendered
	SkippedExts int // extensions with unusual dimensions
	Failed      int // files that hit the error boundary
}
