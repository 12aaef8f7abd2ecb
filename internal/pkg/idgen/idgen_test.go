package idgen_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/chaos-room/internal/pkg/idgen"
)

func TestSequential(t *testing.T) {
	gen := idgen.NewSequential("enc")

	assert.Equal(t, "enc_1", gen.Generate())
	assert.Equal(t, "enc_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestSequentialConcurrent(t *testing.T) {
	gen := idgen.NewSequential("p")

	var (
		mu   sync.Mutex
		seen = make(map[string]bool)
		wg   sync.WaitGroup
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := gen.Generate()
			mu.Lock()
			seen[id] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 50)
}

func TestUUID(t *testing.T) {
	id := idgen.NewUUID("enc").Generate()
	require.True(t, strings.HasPrefix(id, "enc_"))

	_, err := uuid.Parse(strings.TrimPrefix(id, "enc_"))
	assert.NoError(t, err)

	bare := idgen.NewUUID("").Generate()
	_, err = uuid.Parse(bare)
	assert.NoError(t, err)
	assert.NotEqual(t, bare, idgen.NewUUID("").Generate())
}
