package mux

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"pokerdrills-server/pkg/deck"
	"pokerdrills-server/pkg/drill"
	"pokerdrills-server/pkg/poker"
)

func (m *Mux) getDrill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		problem, err := m.drills.Next()
		if err != nil {
			writeJSONError(w, http.StatusServiceUnavailable, err)
			return
		}

		writeJSON(w, http.StatusOK, problem)
	}
}

type postDrillGradePayload struct {
	Pocket    []string `json:"pocket"`
	Community []string `json:"community"`
	Guess     string   `json:"guess"`
}

func (m *Mux) postDrillGrade() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postDrillGradePayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		guess, err := poker.ParseCategory(pp.Guess)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		cards, err := parseCardSet(append(append([]string{}, pp.Pocket...), pp.Community...))
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		if len(pp.Pocket) != drill.PocketSize || len(pp.Community) != drill.CommunitySize {
			writeJSONError(w, http.StatusBadRequest, drill.ErrBadBoard)
			return
		}

		result, err := drill.GradeCards(cards[:drill.PocketSize], cards[drill.PocketSize:], guess)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		logrus.WithFields(logrus.Fields{
			"board":   deck.CardsToString(cards),
			"guess":   result.Guess.String(),
			"answer":  result.Answer.String(),
			"correct": result.Correct,
		}).Debug("graded drill")

		writeJSON(w, http.StatusOK, result)
	}
}
