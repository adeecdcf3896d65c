package safety

import "strings"

// Gate classifies messages against a catalog. Stateless apart from the
// injected catalog; Classify is a pure function of its input.
type Gate struct {
	catalog *Catalog
}

func NewGate(catalog *Catalog) *Gate {
	return &Gate{catalog: catalog}
}

// Classify scans the message against each category in priority order and
// returns the first category with a matching phrase. Matching is
// case-insensitive plain substring containment — a phrase inside a longer
// unrelated word still matches. That over-triggering bias is intentional
// and must not be tightened to word-boundary or fuzzy matching.
func (g *Gate) Classify(message string) (Category, bool) {
	text := strings.ToLower(message)
	for _, entry := range g.catalog.entries {
		for _, phrase := range entry.phrases {
			if strings.Contains(text, phrase) {
				return entry.category, true
			}
		}
	}
	return "", false
}
