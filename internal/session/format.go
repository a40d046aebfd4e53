package session

import (
	"strings"

	"catalog-explorer/internal/domain"
)

// NoMatches is the reply body used when a search selects nothing.
const NoMatches = "No datasets matched."

// FormatReply renders a search result as assistant chat text: the search
// reason, a blank line, then one bullet per asset with its owner.
func FormatReply(res domain.SearchResult) string {
	var b strings.Builder
	b.WriteString("🔎 Search reason: ")
	b.WriteString(res.Reason)
	b.WriteString("\n\n")
	if len(res.Assets) == 0 {
		b.WriteString(NoMatches)
		return b.String()
	}
	for i, a := range res.Assets {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("• ")
		b.WriteString(a.Name)
		b.WriteString(" — owner: ")
		b.WriteString(a.Owner)
	}
	return b.String()
}
