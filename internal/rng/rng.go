// Package rng abstracts the randomness behind the card issuer so
// tests can deal deterministic hands.
package rng

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}
