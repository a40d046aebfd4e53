package domain

// Reasons reported alongside search results.
const (
	ReasonEmptyQuery = "empty query → showing all datasets"
	ReasonKeyword    = "keyword search"
)

// SearchResult is the outcome of a catalog search: the matching assets in
// catalog order and a fixed diagnostic describing the rule that selected them.
type SearchResult struct {
	Assets []Asset
	Reason string
}

// Searcher maps a raw query string to a SearchResult.
type Searcher interface {
	Search(rawQuery string) SearchResult
}
