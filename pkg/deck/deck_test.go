package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pokerdrills-server/internal/rng"
)

func TestNew(t *testing.T) {
	d := New()

	assert.Equal(t, 52, d.CardsLeft())
	assert.Equal(t, Card{Rank: 2, Suit: Clubs}, d.Cards[0])
	assert.Equal(t, Card{Rank: 14, Suit: Spades}, d.Cards[51])

	seen := make(map[Card]bool)
	for _, card := range d.Cards {
		seen[card] = true
	}
	assert.Len(t, seen, 52)
}

func TestDeck_Shuffle(t *testing.T) {
	d1 := New()
	d1.Shuffle(rng.NewSeeded(1))

	d2 := New()
	d2.Shuffle(rng.NewSeeded(1))

	assert.Equal(t, d1.Cards, d2.Cards)
	assert.NotEqual(t, New().Cards, d1.Cards)
	assert.ElementsMatch(t, New().Cards, d1.Cards)

	// shuffling after a draw restores the full deck
	_, _ = d1.Draw(7)
	d1.Shuffle(rng.NewSeeded(2))
	assert.Equal(t, 52, d1.CardsLeft())
}

func TestDeck_Draw(t *testing.T) {
	d := New()

	assert.True(t, d.CanDraw(52))
	assert.False(t, d.CanDraw(53))

	cards, err := d.Draw(2)
	assert.NoError(t, err)
	assert.Equal(t, "2C,3C", cards.String())
	assert.Equal(t, 50, d.CardsLeft())

	cards, err = d.Draw(50)
	assert.NoError(t, err)
	assert.Len(t, cards, 50)
	assert.False(t, d.CanDraw(1))

	cards, err = d.Draw(1)
	assert.Equal(t, ErrEndOfDeck, err)
	assert.Nil(t, cards)

	_, err = d.Draw(-1)
	assert.Error(t, err)
}
