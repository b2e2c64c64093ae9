package poker

import "pokerdrills-server/pkg/deck"

// Detector reports whether a card set contains a hand category
// Detectors are pure and may run concurrently on the same cards.
type Detector func(cards []deck.Card) bool

// HasStraightFlush returns true if five cards of one suit form a straight
// The ace plays high (10-J-Q-K-A) or low (A-2-3-4-5).
func HasStraightFlush(cards []deck.Card) bool {
	g := groupSuits(cards)
	return g.hasStraightFlush()
}

// HasFourOfAKind returns true if a rank appears four or more times
func HasFourOfAKind(cards []deck.Card) bool {
	counts := countRanks(cards)
	return counts.ranksWith(4) > 0
}

// HasFullHouse returns true if a rank with three or more cards can be paired with a different rank
// Four of a kind plus a pair counts, since three of the four make the trips.
func HasFullHouse(cards []deck.Card) bool {
	counts := countRanks(cards)
	for trips := deck.Two; trips <= deck.Ace; trips++ {
		if counts[trips] < 3 {
			continue
		}

		for pair := deck.Two; pair <= deck.Ace; pair++ {
			if pair != trips && counts[pair] >= 2 {
				return true
			}
		}
	}

	return false
}

// HasFlush returns true if a suit holds five or more cards that do not make a straight flush
func HasFlush(cards []deck.Card) bool {
	g := groupSuits(cards)
	if len(g.flushSuits()) == 0 {
		return false
	}

	return !g.hasStraightFlush()
}

// HasStraight returns true if five consecutive ranks are present in any suits
// A straight flush is also a straight.
func HasStraight(cards []deck.Card) bool {
	counts := countRanks(cards)
	return counts.distinct().hasRun()
}

// HasThreeOfAKind returns true if a rank appears exactly three times
func HasThreeOfAKind(cards []deck.Card) bool {
	counts := countRanks(cards)
	return counts.hasExactly(3)
}

// HasTwoPair returns true if two or more ranks appear at least twice
func HasTwoPair(cards []deck.Card) bool {
	counts := countRanks(cards)
	return counts.ranksWith(2) >= 2
}

// HasPair returns true if a rank appears exactly twice
func HasPair(cards []deck.Card) bool {
	counts := countRanks(cards)
	return counts.hasExactly(2)
}
