package mux

import (
	"fmt"
	"net/http"

	"pokerdrills-server/pkg/deck"
	"pokerdrills-server/pkg/poker"
)

const minCards = 5
const maxCards = 7

var errCardCount = fmt.Errorf("between %d and %d cards are required", minCards, maxCards)

// parseCardSet parses the tokens and rejects duplicate cards
func parseCardSet(tokens []string) (deck.Hand, error) {
	cards, err := deck.ParseCards(tokens...)
	if err != nil {
		return nil, err
	}

	hand := make(deck.Hand, 0, len(cards))
	for _, card := range cards {
		if hand.HasCard(card) {
			return nil, fmt.Errorf("duplicate card: %s", card)
		}

		hand.AddCard(card)
	}

	return hand, nil
}

func (m *Mux) getCategory() http.HandlerFunc {
	payload := poker.Categories()

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, payload)
	}
}

type postClassifyPayload struct {
	Cards []string `json:"cards"`
}

type postClassifyResponse struct {
	Cards   deck.Hand        `json:"cards"`
	Hand    poker.Category   `json:"hand"`
	Matches []poker.Category `json:"matches"`
}

func (m *Mux) postClassify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postClassifyPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if n := len(pp.Cards); n < minCards || n > maxCards {
			writeJSONError(w, http.StatusBadRequest, errCardCount)
			return
		}

		cards, err := parseCardSet(pp.Cards)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		analyzer := poker.NewHandAnalyzer(cards)
		matches := make([]poker.Category, 0, len(poker.Categories()))
		for _, c := range poker.Categories() {
			if analyzer.Has(c) {
				matches = append(matches, c)
			}
		}

		writeJSON(w, http.StatusOK, postClassifyResponse{
			Cards:   cards,
			Hand:    analyzer.GetHand(),
			Matches: matches,
		})
	}
}
