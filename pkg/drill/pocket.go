package drill

import (
	"strings"

	"pokerdrills-server/pkg/deck"
)

// DefaultAcceptablePockets are the starting hands worth drilling on
var DefaultAcceptablePockets = []string{
	"AA", "AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "AKo",
	"KK", "KQs", "KJs", "KTs", "K9s", "K8s", "K7s", "K6s", "K5s", "K4s", "AQo", "KQo",
	"QQ", "QJs", "QTs", "Q9s", "Q8s", "Q7s", "Q6s", "Q5s", "AJo", "KJo", "QJo", "JJ",
	"99", "88", "77", "66", "55", "44", "33", "22",
}

func pocketRank(r deck.Rank) string {
	if r == deck.Ten {
		return "T"
	}

	return r.String()
}

// PocketNotation returns the shorthand for two pocket cards, i.e., AA, AKs or T9o
// The higher rank comes first. Pairs have no suited suffix.
func PocketNotation(a, b deck.Card) string {
	if a.Rank < b.Rank {
		a, b = b, a
	}

	if a.Rank == b.Rank {
		return pocketRank(a.Rank) + pocketRank(b.Rank)
	}

	suited := "o"
	if a.Suit == b.Suit {
		suited = "s"
	}

	return pocketRank(a.Rank) + pocketRank(b.Rank) + suited
}

// Filter decides which pockets may be dealt
type Filter map[string]bool

// NewFilter returns a filter that accepts the given pocket notations
func NewFilter(pockets []string) Filter {
	f := make(Filter, len(pockets))
	for _, p := range pockets {
		if len(p) < 2 {
			continue
		}

		f[strings.ToUpper(p[:2])+strings.ToLower(p[2:])] = true
	}

	return f
}

// Accepts returns true if the two cards are an acceptable pocket
// An empty filter accepts everything.
func (f Filter) Accepts(a, b deck.Card) bool {
	if len(f) == 0 {
		return true
	}

	return f[PocketNotation(a, b)]
}
