package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-atlas/internal/pkg/idgen"
)

func TestSequentialGenerator(t *testing.T) {
	g := idgen.NewSequential(idgen.PrefixToken)
	assert.Equal(t, "tok_1", g.Generate())
	assert.Equal(t, "tok_2", g.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestPrefixedGeneratorIsUnique(t *testing.T) {
	g := idgen.NewPrefixed(idgen.PrefixZone)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := g.Generate()
		assert.True(t, strings.HasPrefix(id, "zone_"))
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestUUIDGenerator(t *testing.T) {
	assert.True(t, strings.HasPrefix(idgen.NewUUID("out").Generate(), "out_"))
	assert.Len(t, idgen.NewUUID("").Generate(), 36)
}
