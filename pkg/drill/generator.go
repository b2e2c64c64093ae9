package drill

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"pokerdrills-server/internal/rng"
	"pokerdrills-server/pkg/deck"
	"pokerdrills-server/pkg/poker"
)

// ErrNoHighRankingHand is returned when no three of a kind or better was dealt within the retry limit
var ErrNoHighRankingHand = errors.New("could not deal a high-ranking hand")

// ErrNoAcceptablePocket is returned when no acceptable pocket was dealt within the retry limit
var ErrNoAcceptablePocket = errors.New("could not deal an acceptable pocket")

// MinHighRanking is the weakest hand that counts as high-ranking
const MinHighRanking = poker.ThreeOfAKind

// Options controls how problems are dealt
type Options struct {
	// HighRankingOdds is N in the 1 in N chance to force a high-ranking hand. Zero disables it.
	HighRankingOdds int
	// MaxRetries bounds the number of boards dealt for a single problem
	MaxRetries int
	// Pockets restricts the pockets of ordinary problems
	Pockets Filter
}

// DefaultOptions returns the standard drill settings
func DefaultOptions() Options {
	return Options{
		HighRankingOdds: 5,
		MaxRetries:      500,
		Pockets:         NewFilter(DefaultAcceptablePockets),
	}
}

// Generator deals drill problems
// It is safe for concurrent use.
type Generator struct {
	mu   sync.Mutex
	rng  rng.Generator
	deck *deck.Deck
	opts Options
}

// NewGenerator returns a new generator
func NewGenerator(gen rng.Generator, opts Options) *Generator {
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 1
	}

	return &Generator{
		rng:  gen,
		deck: deck.New(),
		opts: opts,
	}
}

// Next deals a new problem
func (g *Generator) Next() (*Problem, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.opts.HighRankingOdds > 0 && g.rng.Intn(g.opts.HighRankingOdds) == 0 {
		return g.dealUntil(ErrNoHighRankingHand, func(p *Problem) bool {
			return p.Answer() >= MinHighRanking
		})
	}

	return g.dealUntil(ErrNoAcceptablePocket, func(p *Problem) bool {
		return g.opts.Pockets.Accepts(p.Pocket[0], p.Pocket[1])
	})
}

func (g *Generator) dealUntil(exhausted error, accept func(p *Problem) bool) (*Problem, error) {
	for attempt := 1; attempt <= g.opts.MaxRetries; attempt++ {
		p, err := g.deal()
		if err != nil {
			return nil, err
		}

		if accept(p) {
			logrus.WithFields(logrus.Fields{
				"id":       p.ID,
				"board":    p.Cards().String(),
				"hand":     p.Answer().String(),
				"attempts": attempt,
			}).Debug("dealt drill problem")

			return p, nil
		}
	}

	return nil, fmt.Errorf("%w after %d attempts", exhausted, g.opts.MaxRetries)
}

func (g *Generator) deal() (*Problem, error) {
	g.deck.Shuffle(g.rng)

	pocket, err := g.deck.Draw(PocketSize)
	if err != nil {
		return nil, err
	}

	community, err := g.deck.Draw(CommunitySize)
	if err != nil {
		return nil, err
	}

	return NewProblem(pocket, community)
}

// GradeCards classifies a board supplied by the caller and grades the guess against it
func GradeCards(pocket, community deck.Hand, guess poker.Category) (Result, error) {
	p, err := NewProblem(pocket, community)
	if err != nil {
		return Result{}, err
	}

	return p.Grade(guess), nil
}
