package poker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned when a label does not name a hand category
var ErrUnknownCategory = errors.New("unknown hand category")

// Category is a poker hand category, i.e., full house
// Categories are ordered by poker rank, a higher value beats a lower one.
type Category int

// Constants for category
const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// Categories returns every category, highest ranked first
func Categories() []Category {
	return []Category{
		StraightFlush,
		FourOfAKind,
		FullHouse,
		Flush,
		Straight,
		ThreeOfAKind,
		TwoPair,
		Pair,
		HighCard,
	}
}

// String returns the label of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "high card"
	case Pair:
		return "pair"
	case TwoPair:
		return "two pair"
	case ThreeOfAKind:
		return "three of a kind"
	case Straight:
		return "straight"
	case Flush:
		return "flush"
	case FullHouse:
		return "full house"
	case FourOfAKind:
		return "four of a kind"
	case StraightFlush:
		return "straight flush"
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}

// Valid returns true if c is one of the nine categories
func (c Category) Valid() bool {
	return c >= HighCard && c <= StraightFlush
}

// Beats returns true if c outranks o
func (c Category) Beats(o Category) bool {
	return c > o
}

var categoryAliases = map[string]Category{
	"quads":    FourOfAKind,
	"trips":    ThreeOfAKind,
	"one pair": Pair,
}

// ParseCategory returns the category for a label
// Matching ignores case and surrounding whitespace, and accepts common aliases (quads, trips).
func ParseCategory(label string) (Category, error) {
	s := strings.ToLower(strings.TrimSpace(label))
	for _, c := range Categories() {
		if c.String() == s {
			return c, nil
		}
	}

	if c, ok := categoryAliases[s]; ok {
		return c, nil
	}

	return HighCard, fmt.Errorf("%w: %q", ErrUnknownCategory, label)
}

// MarshalText encodes the category as its label
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}

	return []byte(c.String()), nil
}

// UnmarshalText decodes a category label
func (c *Category) UnmarshalText(text []byte) error {
	cat, err := ParseCategory(string(text))
	if err != nil {
		return err
	}

	*c = cat
	return nil
}
