package domain

import "strings"

// QueryKind tells a caller what to do with a resolved query
type QueryKind int

const (
	QueryRedirect QueryKind = iota // Query names an entry exactly
	QuerySearch                    // Query is a substring search
)

func (k QueryKind) String() string {
	switch k {
	case QueryRedirect:
		return "Redirect"
	case QuerySearch:
		return "SearchResults"
	default:
		return "Unknown"
	}
}

// QueryResult is the outcome of resolving a user query against the entry index
type QueryResult struct {
	Kind    QueryKind
	Title   string   // Canonical title, set for QueryRedirect
	Results []string // Matching titles in index order, set for QuerySearch
}

// Redirect reports whether the query named an entry exactly
func (r QueryResult) Redirect() (string, bool) {
	return r.Title, r.Kind == QueryRedirect
}

// ResolveQuery turns a raw query into a redirect or a list of search results.
//
// Comparison is case-insensitive using strings.ToLower, which applies Unicode
// simple lowercasing only. Whitespace is significant and an empty query
// matches every title.
func ResolveQuery(query string, titles []string) QueryResult {
	if title, ok := ReconcileTitle(query, titles); ok {
		return QueryResult{Kind: QueryRedirect, Title: title}
	}
	return QueryResult{Kind: QuerySearch, Results: MatchTitles(query, titles)}
}

// MatchTitles returns the titles containing query, ignoring case.
// The result preserves stored casing and index order and is never nil.
func MatchTitles(query string, titles []string) []string {
	q := strings.ToLower(query)
	matches := make([]string, 0, len(titles))
	for _, title := range titles {
		if strings.Contains(strings.ToLower(title), q) {
			matches = append(matches, title)
		}
	}
	return matches
}

// ReconcileTitle maps a title of any casing to its canonical stored casing
func ReconcileTitle(title string, titles []string) (string, bool) {
	t := strings.ToLower(title)
	for _, existing := range titles {
		if strings.ToLower(existing) == t {
			return existing, true
		}
	}
	return "", false
}

// SameTitle reports whether two titles name the same entry
func SameTitle(a, b string) bool {
	return strings.ToLower(a) == strings.ToLower(b)
}
