package deck

import (
	"errors"
	"fmt"

	"pokerdrills-server/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are not enough cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck
type Deck struct {
	Cards []Card `json:"cards"`
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{}
	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits() {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle will rebuild and shuffle the deck using the provided generator
func (d *Deck) Shuffle(gen rng.Generator) {
	// we always want to shuffle from a full deck
	d.buildDeck()

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Draw will draw the next n cards
// If there are not enough cards, an ErrEndOfDeck is returned and the deck is untouched.
func (d *Deck) Draw(n int) (Hand, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot draw %d cards", n)
	}

	if len(d.Cards) < n {
		return nil, ErrEndOfDeck
	}

	cards := make(Hand, n)
	copy(cards, d.Cards[:n])
	d.Cards = d.Cards[n:]

	return cards, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
