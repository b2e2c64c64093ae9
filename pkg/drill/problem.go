package drill

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"pokerdrills-server/pkg/deck"
	"pokerdrills-server/pkg/poker"
)

// card counts for a hold'em board
const (
	PocketSize    = 2
	CommunitySize = 5
)

// ErrBadBoard is returned when a problem is built from the wrong number of cards
var ErrBadBoard = errors.New("a problem needs 2 pocket cards and 5 community cards")

// Problem is a single drill: name the best hand on the board
type Problem struct {
	ID        uuid.UUID `json:"id"`
	Pocket    deck.Hand `json:"pocket"`
	Community deck.Hand `json:"community"`

	answer poker.Category
}

// NewProblem classifies the board and returns a problem for it
func NewProblem(pocket, community deck.Hand) (*Problem, error) {
	if len(pocket) != PocketSize || len(community) != CommunitySize {
		return nil, fmt.Errorf("%w: got %d and %d", ErrBadBoard, len(pocket), len(community))
	}

	p := &Problem{
		ID:        uuid.New(),
		Pocket:    pocket.Clone(),
		Community: community.Clone(),
	}

	p.answer = poker.Classify(p.Cards())
	return p, nil
}

// Cards returns the pocket and community cards together
func (p *Problem) Cards() deck.Hand {
	cards := make(deck.Hand, 0, len(p.Pocket)+len(p.Community))
	cards = append(cards, p.Pocket...)
	return append(cards, p.Community...)
}

// Answer returns the best hand on the board
func (p *Problem) Answer() poker.Category {
	return p.answer
}

// Result is the outcome of a guess
type Result struct {
	Correct bool           `json:"correct"`
	Guess   poker.Category `json:"guess"`
	Answer  poker.Category `json:"answer"`
}

// Grade checks a guess against the answer
func (p *Problem) Grade(guess poker.Category) Result {
	return Result{
		Correct: guess == p.answer,
		Guess:   guess,
		Answer:  p.answer,
	}
}
