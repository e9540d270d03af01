package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-2048/internal/grid"
)

func TestOpenWithoutStore(t *testing.T) {
	g := Open(nil, DefaultRules(), WithSeed(1))
	assert.Equal(t, DefaultRules(), g.Rules())

	s := g.State()
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 0, s.HighScore)
	assert.Len(t, s.Grid.EmptyCells(), 14)

	// Play a few moves in memory only
	for _, d := range grid.Directions {
		_, err := g.Swipe(d)
		require.NoError(t, err)
	}
}

func TestOpenFreshUsesStoredHighScore(t *testing.T) {
	store := &memStore{high: 2048}
	g := Open(store, DefaultRules(), WithSeed(1))

	s := g.State()
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 2048, s.HighScore)
	assert.Equal(t, PhasePlaying, s.Phase)
}

func TestOpenResumesSavedGame(t *testing.T) {
	saved := grid.Grid{
		{2, 0, 0, 0},
		{0, 4, 0, 0},
		{0, 0, 8, 0},
		{0, 0, 0, 16},
	}
	store := &memStore{
		progress: &Progress{Grid: saved, Score: 64},
		high:     32,
	}

	g := Open(store, DefaultRules(), WithSeed(1))
	s := g.State()
	assert.Equal(t, saved, s.Grid)
	assert.Equal(t, 64, s.Score)
	assert.Equal(t, 64, s.HighScore)
}

func TestOpenFallsBackOnMalformedProgress(t *testing.T) {
	tests := []struct {
		name  string
		store *memStore
	}{
		{
			name: "wrong size",
			store: &memStore{
				progress: &Progress{Grid: grid.New(3), Score: 10},
				high:     99,
			},
		},
		{
			name: "bad values",
			store: &memStore{
				progress: &Progress{Grid: grid.Grid{{3, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}, Score: 10},
				high:     99,
			},
		},
		{
			name: "unreadable",
			store: &memStore{
				progressErr: errors.New("corrupt json"),
				high:        99,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Open(tt.store, DefaultRules(), WithSeed(1))
			s := g.State()
			assert.Equal(t, 0, s.Score)
			assert.Equal(t, 99, s.HighScore)
			assert.Equal(t, 4, s.Grid.Size())
			assert.Len(t, s.Grid.EmptyCells(), 14)
		})
	}
}

func TestOpenHighScoreReadFailure(t *testing.T) {
	store := &memStore{loadErr: errors.New("disk gone")}
	g := Open(store, DefaultRules(), WithSeed(1))
	assert.Equal(t, 0, g.State().HighScore)
}

func TestSwipePersistsMovingSwipe(t *testing.T) {
	store := &memStore{
		progress: &Progress{Grid: grid.Grid{
			{2, 2, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		}},
	}
	g := Open(store, DefaultRules(), WithSeed(1))

	out, err := g.Swipe(grid.Left)
	require.NoError(t, err)
	require.True(t, out.Moved)

	assert.Equal(t, 1, store.saves)
	assert.Equal(t, 1, store.highSaves)
	assert.Equal(t, 4, store.high)
	require.NotNil(t, store.progress)
	assert.Equal(t, out.State.Grid, store.progress.Grid)
	assert.Equal(t, 4, store.progress.Score)
	assert.Equal(t, 1, g.Moves())
}

func TestSwipeNoMoveSkipsPersistence(t *testing.T) {
	start := grid.Grid{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	store := &memStore{progress: &Progress{Grid: start, Score: 8}, high: 8}
	g := Open(store, DefaultRules(), WithSeed(1))

	out, err := g.Swipe(grid.Left)
	require.NoError(t, err)
	assert.False(t, out.Moved)
	assert.False(t, out.GameOver)

	assert.Zero(t, store.saves)
	assert.Zero(t, store.highSaves)

	s := g.State()
	assert.Equal(t, start, s.Grid)
	assert.Equal(t, 8, s.Score)
	assert.Equal(t, 8, s.HighScore)
	assert.Zero(t, g.Moves())
}

func TestSwipeKeepsPlayingWhenStorageFails(t *testing.T) {
	store := &memStore{
		progress: &Progress{Grid: grid.Grid{
			{2, 2, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		}},
		writeErr: errors.New("read-only filesystem"),
	}
	g := Open(store, DefaultRules(), WithSeed(1))

	out, err := g.Swipe(grid.Left)
	require.NoError(t, err)
	assert.True(t, out.Moved)
	assert.Equal(t, 4, g.State().Score)
	assert.Equal(t, 1, store.saves)
}

func TestSwipeGameOverRecordsAndRejects(t *testing.T) {
	store := &memStore{progress: &Progress{Grid: nearlyTerminal(), Score: 500}, high: 900}
	g := Open(store, DefaultRules(), WithSource(scripted{index: 0, float: 0.5}))

	out, err := g.Swipe(grid.Left)
	require.NoError(t, err)
	require.True(t, out.GameOver)

	require.Len(t, store.results, 1)
	assert.Equal(t, Result{Score: 504, MaxTile: 32, Moves: 1}, store.results[0])

	// Further swipes are rejected and change nothing
	saves := store.saves
	for _, d := range grid.Directions {
		_, err := g.Swipe(d)
		assert.ErrorIs(t, err, ErrGameOver)
	}
	assert.Equal(t, saves, store.saves)
	assert.Equal(t, 504, g.State().Score)
}

func TestRestartClearsProgressKeepsHighScore(t *testing.T) {
	store := &memStore{progress: &Progress{Grid: nearlyTerminal(), Score: 500}, high: 900}
	g := Open(store, DefaultRules(), WithSource(scripted{index: 0, float: 0.5}))

	_, err := g.Swipe(grid.Left)
	require.NoError(t, err)
	require.True(t, g.State().GameOver())

	s := g.Restart()
	assert.Equal(t, PhasePlaying, s.Phase)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 900, s.HighScore)
	assert.Equal(t, 1, store.clears)
	assert.Nil(t, store.progress)
	assert.Equal(t, 900, store.high)
	assert.Zero(t, g.Moves())
}

func TestStateReturnsCopy(t *testing.T) {
	g := Open(nil, DefaultRules(), WithSeed(5))
	s := g.State()
	s.Grid[0][0] = 1024

	assert.NotEqual(t, 1024, g.State().Grid[0][0])
}

func TestSwipeReturnsCopy(t *testing.T) {
	store := &memStore{progress: &Progress{Grid: grid.Grid{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}}}
	g := Open(store, DefaultRules(), WithSeed(5))

	out, err := g.Swipe(grid.Left)
	require.NoError(t, err)
	require.True(t, out.Moved)
	require.Equal(t, 4, out.State.Grid[0][0])

	out.State.Grid[0][0] = 1024
	assert.Equal(t, 4, g.State().Grid[0][0])
}

func TestRejectedSwipeReturnsCopy(t *testing.T) {
	store := &memStore{progress: &Progress{Grid: nearlyTerminal(), Score: 500}, high: 900}
	g := Open(store, DefaultRules(), WithSource(scripted{index: 0, float: 0.5}))

	_, err := g.Swipe(grid.Left)
	require.NoError(t, err)

	out, err := g.Swipe(grid.Up)
	require.ErrorIs(t, err, ErrGameOver)
	before := out.State.Grid[0][0]
	out.State.Grid[0][0] = 1024
	assert.Equal(t, before, g.State().Grid[0][0])
}

func TestOpenPersistsHighScoreRaisedBySavedGame(t *testing.T) {
	store := &memStore{progress: &Progress{Grid: grid.Grid{
		{2, 0, 0, 0},
		{0, 4, 0, 0},
		{0, 0, 8, 0},
		{0, 0, 0, 16},
	}, Score: 500}, high: 100}

	g := Open(store, DefaultRules(), WithSeed(1))
	assert.Equal(t, 500, g.State().HighScore)
	assert.Equal(t, 1, store.highSaves)
	assert.Equal(t, 500, store.high)

	// Restart without any merge keeps the raised value in the store
	g.Restart()
	reopened := Open(store, DefaultRules(), WithSeed(1))
	assert.Equal(t, 500, reopened.State().HighScore)
}

func TestOpenLeavesHigherStoredHighScore(t *testing.T) {
	store := &memStore{progress: &Progress{Grid: grid.Grid{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, Score: 40}, high: 900}

	g := Open(store, DefaultRules(), WithSeed(1))
	assert.Equal(t, 900, g.State().HighScore)
	assert.Zero(t, store.highSaves)
}
