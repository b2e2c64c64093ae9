package drill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pokerdrills-server/pkg/deck"
)

func cards(s string) (deck.Card, deck.Card) {
	c := deck.CardsFromString(s)
	return c[0], c[1]
}

func TestPocketNotation(t *testing.T) {
	assert.Equal(t, "AA", PocketNotation(cards("AS,AH")))
	assert.Equal(t, "AKs", PocketNotation(cards("KS,AS")))
	assert.Equal(t, "AKo", PocketNotation(cards("AD,KS")))
	assert.Equal(t, "T9o", PocketNotation(cards("9C,10D")))
	assert.Equal(t, "TT", PocketNotation(cards("10C,10D")))
	assert.Equal(t, "32s", PocketNotation(cards("2H,3H")))
}

func TestFilter_Accepts(t *testing.T) {
	f := NewFilter(DefaultAcceptablePockets)
	assert.True(t, f.Accepts(cards("AS,AH")))
	assert.True(t, f.Accepts(cards("10S,AS")))
	assert.True(t, f.Accepts(cards("2C,2D")))
	assert.True(t, f.Accepts(cards("QD,JC")))
	assert.False(t, f.Accepts(cards("10D,AS")))
	assert.False(t, f.Accepts(cards("7C,2D")))
	assert.False(t, f.Accepts(cards("3S,KS")))

	f = NewFilter([]string{"aks", "x"})
	assert.True(t, f.Accepts(cards("AS,KS")))
	assert.False(t, f.Accepts(cards("AS,KD")))

	assert.True(t, Filter{}.Accepts(cards("7C,2D")))
}
