package poker

import "pokerdrills-server/pkg/deck"

// runLength is the number of consecutive ranks that make a straight
const runLength = 5

// rankSet is a set of ranks with bit n set for rank n
type rankSet uint16

// wheel is A-2-3-4-5, with the ace playing low
const wheel = rankSet(1<<deck.Ace | 1<<deck.Two | 1<<deck.Three | 1<<deck.Four | 1<<deck.Five)

func (s *rankSet) add(r deck.Rank) {
	*s |= 1 << uint(r)
}

func (s rankSet) has(r deck.Rank) bool {
	return s&(1<<uint(r)) != 0
}

func (s rankSet) len() int {
	n := 0
	for r := deck.Two; r <= deck.Ace; r++ {
		if s.has(r) {
			n++
		}
	}

	return n
}

// hasWheel returns true if A, 2, 3, 4 and 5 are all present
func (s rankSet) hasWheel() bool {
	return s&wheel == wheel
}

// hasHighRun returns true if five consecutive ranks are present with the ace high
func (s rankSet) hasHighRun() bool {
	run := s
	for i := 1; i < runLength; i++ {
		run &= s >> uint(i)
	}

	return run != 0
}

// hasRun returns true if the set contains a straight, the ace playing high or low
func (s rankSet) hasRun() bool {
	return s.hasHighRun() || s.hasWheel()
}

// rankCounts is the number of cards held of each rank, indexed by rank
type rankCounts [deck.Ace + 1]int

func countRanks(cards []deck.Card) rankCounts {
	var counts rankCounts
	for _, card := range cards {
		if card.Rank.Valid() {
			counts[card.Rank]++
		}
	}

	return counts
}

// ranksWith returns the number of ranks that have at least n cards
func (c *rankCounts) ranksWith(n int) int {
	found := 0
	for r := deck.Two; r <= deck.Ace; r++ {
		if c[r] >= n {
			found++
		}
	}

	return found
}

// hasExactly returns true if some rank has exactly n cards
func (c *rankCounts) hasExactly(n int) bool {
	for r := deck.Two; r <= deck.Ace; r++ {
		if c[r] == n {
			return true
		}
	}

	return false
}

// distinct returns the set of ranks present regardless of suit
func (c *rankCounts) distinct() rankSet {
	var s rankSet
	for r := deck.Two; r <= deck.Ace; r++ {
		if c[r] > 0 {
			s.add(r)
		}
	}

	return s
}

// suitGroups holds the cards of each suit, indexed by suit
type suitGroups struct {
	counts [deck.NumSuits]int
	ranks  [deck.NumSuits]rankSet
}

func groupSuits(cards []deck.Card) suitGroups {
	var g suitGroups
	for _, card := range cards {
		if !card.Suit.Valid() || !card.Rank.Valid() {
			continue
		}

		g.counts[card.Suit]++
		g.ranks[card.Suit].add(card.Rank)
	}

	return g
}

// flushSuits returns the suits holding at least five cards
func (g *suitGroups) flushSuits() []deck.Suit {
	var suits []deck.Suit
	for _, suit := range deck.Suits() {
		if g.counts[suit] >= runLength {
			suits = append(suits, suit)
		}
	}

	return suits
}

// hasStraightFlush returns true if a single suit holds a straight
func (g *suitGroups) hasStraightFlush() bool {
	for _, suit := range g.flushSuits() {
		if g.ranks[suit].hasRun() {
			return true
		}
	}

	return false
}
