package poker

import (
	"sort"

	"pokerdrills-server/pkg/deck"
)

type rule struct {
	category Category
	detect   Detector
}

// precedence is the order the detectors are consulted in, best hand first
// Two pair and flush also match some higher hands, so this order decides the result and must not change.
var precedence = [...]rule{
	{StraightFlush, HasStraightFlush},
	{FourOfAKind, HasFourOfAKind},
	{FullHouse, HasFullHouse},
	{Flush, HasFlush},
	{Straight, HasStraight},
	{ThreeOfAKind, HasThreeOfAKind},
	{TwoPair, HasTwoPair},
	{Pair, HasPair},
}

// DetectorFor returns the detector for a category
// HighCard has no detector since every card set holds a high card.
func DetectorFor(c Category) (Detector, bool) {
	for _, r := range precedence {
		if r.category == c {
			return r.detect, true
		}
	}

	return nil, false
}

// Classify returns the best hand category the cards make
// It never fails. Cards are expected to be free of duplicates, which is not checked.
func Classify(cards []deck.Card) Category {
	for _, r := range precedence {
		if r.detect(cards) {
			return r.category
		}
	}

	return HighCard
}

// ClassifyTokens parses the tokens and classifies the resulting cards
func ClassifyTokens(tokens ...string) (Category, error) {
	cards, err := deck.ParseCards(tokens...)
	if err != nil {
		return HighCard, err
	}

	return Classify(cards), nil
}

// Matches returns every category the cards satisfy, best first
// HighCard is always the last entry.
func Matches(cards []deck.Card) []Category {
	matches := make([]Category, 0, len(precedence)+1)
	for _, r := range precedence {
		if r.detect(cards) {
			matches = append(matches, r.category)
		}
	}

	return append(matches, HighCard)
}

// HandAnalyzer can analyze a card set
type HandAnalyzer struct {
	cards   deck.Hand
	hand    Category
	matches []Category
}

// NewHandAnalyzer will return a new HandAnalyzer instance
// The cards are copied, so later changes to the slice do not affect the analysis.
func NewHandAnalyzer(cards []deck.Card) *HandAnalyzer {
	newCards := deck.Hand(cards).Clone()
	sort.Sort(newCards)

	h := &HandAnalyzer{
		cards:   newCards,
		matches: Matches(newCards),
	}

	h.hand = h.matches[0]
	return h
}

// GetHand will return the best hand category the cards make
func (h *HandAnalyzer) GetHand() Category {
	return h.hand
}

// Has returns true if the cards satisfy the category, even if a better one was found
func (h *HandAnalyzer) Has(c Category) bool {
	for _, m := range h.matches {
		if m == c {
			return true
		}
	}

	return false
}

// Cards returns the analyzed cards, sorted by suit and rank
func (h *HandAnalyzer) Cards() deck.Hand {
	return h.cards.Clone()
}
