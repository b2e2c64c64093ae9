package deck

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidCardToken is returned when a string does not decode to a rank and suit
var ErrInvalidCardToken = errors.New("invalid card token")

// Rank is the face value of a card
type Rank int

// face cards
const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14

	HighAce = Ace
	LowAce  Rank = 1
)

// Valid returns true if the rank is one of the thirteen card ranks
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// AceLow returns the rank where Ace is considered low instead of high
func (r Rank) AceLow() Rank {
	if r == Ace {
		return LowAce
	}

	return r
}

// Less orders ranks with Ace high
func (r Rank) Less(o Rank) bool {
	return r < o
}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace, LowAce:
		return "A"
	default:
		return strconv.Itoa(int(r))
	}
}

// Suit represents a card suit
// The ordinal values are only used for indexing, suits have no order in poker
type Suit int

// suit constants
const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades

	NumSuits = 4
)

// Suits returns every suit
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

// Valid returns true for the four known suits
func (s Suit) Valid() bool {
	return s >= Clubs && s <= Spades
}

// Letter returns the single letter used in card tokens
func (s Suit) Letter() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	default:
		panic(fmt.Sprintf("unknown suit: %d", s))
	}
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "clubs"
	case Diamonds:
		return "diamonds"
	case Hearts:
		return "hearts"
	case Spades:
		return "spades"
	default:
		panic(fmt.Sprintf("unknown suit: %d", s))
	}
}

// Card is an individual playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// String returns the compact token for the card, i.e., AS or 10H
func (c Card) String() string {
	return c.Rank.String() + c.Suit.Letter()
}

// Symbol returns the card with a suit symbol, i.e., A♠
func (c Card) Symbol() string {
	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return c.Rank.String() + suit
}

// MarshalText encodes the card as its token
func (c Card) MarshalText() ([]byte, error) {
	if !c.Rank.Valid() || !c.Suit.Valid() {
		return nil, fmt.Errorf("%w: rank %d suit %d", ErrInvalidCardToken, c.Rank, c.Suit)
	}

	return []byte(c.String()), nil
}

// UnmarshalText decodes a card token
func (c *Card) UnmarshalText(text []byte) error {
	card, err := ParseCard(string(text))
	if err != nil {
		return err
	}

	*c = card
	return nil
}

// ParseCard returns a Card from a token in the format of <rank><suit>
// Rank is one of 2-9, 10 (or T), J, Q, K, A. Suit is one of C, D, H, S. Case is ignored.
func ParseCard(token string) (Card, error) {
	s := strings.ToUpper(strings.TrimSpace(token))
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCardToken, token)
	}

	var suit Suit
	switch s[len(s)-1] {
	case 'C':
		suit = Clubs
	case 'D':
		suit = Diamonds
	case 'H':
		suit = Hearts
	case 'S':
		suit = Spades
	default:
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCardToken, token)
	}

	rank, ok := parseRank(s[:len(s)-1])
	if !ok {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCardToken, token)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

func parseRank(s string) (Rank, bool) {
	switch s {
	case "10", "T":
		return Ten, true
	case "J":
		return Jack, true
	case "Q":
		return Queen, true
	case "K":
		return King, true
	case "A":
		return Ace, true
	}

	// "10" is the only two-character rank
	if len(s) != 1 || s[0] < '2' || s[0] > '9' {
		return 0, false
	}

	return Rank(s[0] - '0'), true
}

// ParseCards parses each token into a card
// The first invalid token fails the whole set.
func ParseCards(tokens ...string) ([]Card, error) {
	cards := make([]Card, len(tokens))
	for i, token := range tokens {
		card, err := ParseCard(token)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardsFromString returns a slice of cards from a comma separated list of tokens
// It panics on an invalid token and should be used for fixtures only.
func CardsFromString(s string) []Card {
	if s == "" {
		return []Card{}
	}

	cards, err := ParseCards(strings.Split(s, ",")...)
	if err != nil {
		panic(fmt.Sprintf("could not parse cards `%s`: %v", s, err))
	}

	return cards
}

// CardsToString will convert a slice of cards to a string in the format of 2C,3H,4S,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.String()
	}

	return strings.Join(c, ",")
}
