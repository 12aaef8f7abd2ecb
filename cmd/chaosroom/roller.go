package main

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// seededRoller replays the same rolls for the same seed
type seededRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ dice.Roller = (*seededRoller)(nil)

func newSeededRoller(seed uint64) *seededRoller {
	return &seededRoller{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *seededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("invalid die size: %d", size)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(size) + 1, nil
}

func (r *seededRoller) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, fmt.Errorf("invalid die count: %d", count)
	}

	results := make([]int, count)
	for i := range results {
		n, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = n
	}
	return results, nil
}
