// Package idgen hands out encounter and entity IDs
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// Sequential generates prefix_1, prefix_2, ... and is safe for concurrent use.
// Used by tests and by the CLI when a seed makes a run reproducible.
type Sequential struct {
	prefix  string
	counter atomic.Uint64
}

// NewSequential creates a new sequential generator
func NewSequential(prefix string) *Sequential {
	return &Sequential{prefix: prefix}
}

// Generate creates the next sequential ID
func (g *Sequential) Generate() string {
	n := strconv.FormatUint(g.counter.Add(1), 10)
	if g.prefix == "" {
		return n
	}
	return g.prefix + "_" + n
}

// UUID generates random UUIDs with an optional prefix
type UUID struct {
	prefix string
}

// NewUUID creates a new UUID generator
func NewUUID(prefix string) *UUID {
	return &UUID{prefix: prefix}
}

// Generate creates a new UUID-based ID
func (g *UUID) Generate() string {
	id := uuid.NewString()
	if g.prefix == "" {
		return id
	}
	return g.prefix + "_" + id
}
