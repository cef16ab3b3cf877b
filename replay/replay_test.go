package replay_test

import (
	"testing"

	"github.com/katalvlaran/primstep/prim_kruskal"
	"github.com/katalvlaran/primstep/replay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSteps(t *testing.T) []prim_kruskal.Step {
	t.Helper()
	res, err := prim_kruskal.PrimDense([][]float64{
		{0, 2, 0, 6, 0},
		{2, 0, 3, 8, 5},
		{0, 3, 0, 0, 7},
		{6, 8, 0, 0, 9},
		{0, 5, 7, 9, 0},
	}, 0, prim_kruskal.WithHistory())
	require.NoError(t, err)
	require.Len(t, res.Steps, 8)

	return res.Steps
}

// TestController_Clamps walks past both ends.
func TestController_Clamps(t *testing.T) {
	c := replay.New(sampleSteps(t))
	assert.Equal(t, 8, c.Len())
	assert.Equal(t, 0, c.Index())

	assert.False(t, c.Apply(replay.Prev), "prev at first step must not move")
	assert.Equal(t, 0, c.Index())

	for i := 1; i < 8; i++ {
		assert.True(t, c.Apply(replay.Next))
		assert.Equal(t, i, c.Index())
	}
	assert.True(t, c.AtEnd())
	assert.False(t, c.Apply(replay.Next), "next at last step must not move")
	assert.Equal(t, 7, c.Index())

	assert.True(t, c.Apply(replay.Prev))
	assert.Equal(t, 6, c.Index())
	assert.False(t, c.Exited())
}

// TestController_Quit freezes the controller.
func TestController_Quit(t *testing.T) {
	c := replay.New(sampleSteps(t))
	c.Apply(replay.Next)
	assert.True(t, c.Apply(replay.Quit))
	assert.True(t, c.Exited())

	assert.False(t, c.Apply(replay.Next))
	assert.False(t, c.Apply(replay.Quit))
	assert.Equal(t, 1, c.Index())
}

func TestController_Empty(t *testing.T) {
	c := replay.New(nil)
	_, ok := c.Current()
	assert.False(t, ok)
	assert.Empty(t, c.Caption())
	assert.False(t, c.Apply(replay.Next))
	assert.False(t, c.Apply(replay.Prev))
}

func TestKeyCommand(t *testing.T) {
	cases := map[string]replay.Command{
		"right": replay.Next, "d": replay.Next, "D": replay.Next,
		"left": replay.Prev, "a": replay.Prev,
		"q": replay.Quit, "ctrl+c": replay.Quit,
	}
	for key, want := range cases {
		got, ok := replay.KeyCommand(key)
		require.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}
	_, ok := replay.KeyCommand("x")
	assert.False(t, ok)

	assert.Equal(t, "next", replay.Next.String())
	assert.Equal(t, "prev", replay.Prev.String())
	assert.Equal(t, "quit", replay.Quit.String())
	assert.Equal(t, "Command(9)", replay.Command(9).String())
}

// TestDescribe checks captions for start, accepted and stale steps.
func TestDescribe(t *testing.T) {
	steps := sampleSteps(t)

	assert.Equal(t,
		"Step 1/8: start at vertex 0\nFrontier: [(0, 0, -1)]\nTree: []",
		replay.Describe(steps[0], 0, len(steps)))

	assert.Equal(t,
		"Step 3/8: chosen edge 1 -> 2 (weight 3)\n"+
			"Frontier: [(3, 2, 1) (5, 4, 1) (6, 3, 0) (8, 3, 1)]\n"+
			"Tree: [0 - 1 (weight 2) 1 - 2 (weight 3)]",
		replay.Describe(steps[2], 2, len(steps)))

	c := replay.New(steps)
	for !c.AtEnd() {
		c.Apply(replay.Next)
	}
	assert.Equal(t,
		"Step 8/8: skip edge 4 -> 3 (weight 9), vertex 3 already in tree\n"+
			"Frontier: [(9, 3, 4)]\n"+
			"Tree: [0 - 1 (weight 2) 1 - 2 (weight 3) 1 - 4 (weight 5) 0 - 3 (weight 6)]",
		c.Caption())
}
