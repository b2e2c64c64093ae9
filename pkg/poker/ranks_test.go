package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pokerdrills-server/pkg/deck"
)

func setOf(ranks ...deck.Rank) rankSet {
	var s rankSet
	for _, r := range ranks {
		s.add(r)
	}

	return s
}

func TestRankSet(t *testing.T) {
	a := assert.New(t)

	s := setOf(deck.Two, deck.Ace, deck.Two)
	a.True(s.has(deck.Two))
	a.True(s.has(deck.Ace))
	a.False(s.has(deck.King))
	a.Equal(2, s.len())
}

func TestRankSet_hasWheel(t *testing.T) {
	a := assert.New(t)

	a.True(setOf(deck.Ace, deck.Two, deck.Three, deck.Four, deck.Five).hasWheel())
	a.True(setOf(deck.Ace, deck.Two, deck.Three, deck.Four, deck.Five, deck.Nine).hasWheel())
	a.False(setOf(deck.Two, deck.Three, deck.Four, deck.Five, deck.Six).hasWheel())
	a.False(setOf(deck.King, deck.Two, deck.Three, deck.Four, deck.Five).hasWheel())
}

func TestRankSet_hasRun(t *testing.T) {
	a := assert.New(t)

	a.True(setOf(deck.Ten, deck.Jack, deck.Queen, deck.King, deck.Ace).hasRun())
	a.True(setOf(deck.Ace, deck.Two, deck.Three, deck.Four, deck.Five).hasRun())
	a.True(setOf(deck.Two, deck.Four, deck.Five, deck.Six, deck.Seven, deck.Eight).hasRun())
	a.False(setOf(deck.Jack, deck.Queen, deck.King, deck.Ace, deck.Two).hasRun())
	a.False(setOf(deck.Two, deck.Three, deck.Four, deck.Five).hasRun())
	a.False(rankSet(0).hasRun())

	// the high run never treats the ace as low
	a.False(setOf(deck.Ace, deck.Two, deck.Three, deck.Four, deck.Five).hasHighRun())

	for low := deck.Two; low <= deck.Ten; low++ {
		a.True(setOf(low, low+1, low+2, low+3, low+4).hasHighRun(), "run starting at %s", low)
	}
}

func TestCountRanks(t *testing.T) {
	a := assert.New(t)

	counts := countRanks(deck.CardsFromString("AC,AD,AH,KS,KD,2C"))
	a.Equal(3, counts[deck.Ace])
	a.Equal(2, counts[deck.King])
	a.Equal(1, counts[deck.Two])
	a.Equal(0, counts[deck.Three])
	a.Equal(2, counts.ranksWith(2))
	a.True(counts.hasExactly(3))
	a.False(counts.hasExactly(4))
	a.Equal(setOf(deck.Ace, deck.King, deck.Two), counts.distinct())

	// malformed cards are ignored rather than panicking
	counts = countRanks([]deck.Card{{Rank: 0, Suit: deck.Clubs}, {Rank: 99, Suit: deck.Spades}})
	a.Equal(0, counts.ranksWith(1))
}

func TestGroupSuits(t *testing.T) {
	a := assert.New(t)

	g := groupSuits(deck.CardsFromString("2H,3H,4H,5H,7H,6C,AS"))
	a.Equal(5, g.counts[deck.Hearts])
	a.Equal(1, g.counts[deck.Clubs])
	a.Equal([]deck.Suit{deck.Hearts}, g.flushSuits())
	a.False(g.hasStraightFlush())

	g = groupSuits([]deck.Card{{Rank: deck.Ace, Suit: deck.Suit(7)}})
	a.Empty(g.flushSuits())
}
