package progress

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextIncompleteWalksInOrder(t *testing.T) {
	modules := []ModuleRef{{ID: 10, Name: "Roots"}, {ID: 11, Name: "Leaves"}, {ID: 12, Name: "Flowers"}}

	next := NextIncomplete(modules, map[uint]bool{})
	assert.Equal(t, NextModule{ModuleID: 10, ModuleName: "Roots", IsFirstModule: true}, next)

	next = NextIncomplete(modules, map[uint]bool{10: true})
	assert.Equal(t, NextModule{ModuleID: 11, ModuleName: "Leaves", IsFirstModule: false}, next)

	next = NextIncomplete(modules, map[uint]bool{10: true, 11: true, 12: true})
	assert.True(t, next.Completed)
}

func TestNextIncompleteSkipsGaps(t *testing.T) {
	modules := []ModuleRef{{ID: 1}, {ID: 2}, {ID: 3}}

	next := NextIncomplete(modules, map[uint]bool{1: true, 3: true})
	assert.Equal(t, uint(2), next.ModuleID)
	assert.False(t, next.Completed)
}

func TestNextIncompleteRandomSubsets(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for n := 1; n <= 6; n++ {
		modules := make([]ModuleRef, n)
		ids := make(map[uint]bool, n)
		for i := range modules {
			modules[i] = ModuleRef{ID: uint(100 + i*3)}
			ids[modules[i].ID] = true
		}

		for trial := 0; trial < 50; trial++ {
			done := map[uint]bool{}
			for _, m := range modules {
				if rng.Intn(2) == 0 {
					done[m.ID] = true
				}
			}

			next := NextIncomplete(modules, done)
			if len(done) == n {
				require.True(t, next.Completed, "n=%d done=%v", n, done)
				continue
			}
			require.False(t, next.Completed, "n=%d done=%v", n, done)
			require.True(t, ids[next.ModuleID], "module %d not in course", next.ModuleID)
			require.False(t, done[next.ModuleID])
		}
	}
}

func TestNextModuleJSON(t *testing.T) {
	b, err := json.Marshal(NextModule{ModuleID: 11, ModuleName: "Leaves"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"module_id":11,"module_name":"Leaves","is_first_module":false}`, string(b))

	b, err = json.Marshal(NextModule{Completed: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"completed":true}`, string(b))
}
