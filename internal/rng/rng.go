package rng

// Generator provides a simple random number
// Implementations used by the HTTP server must be safe for concurrent use.
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}
