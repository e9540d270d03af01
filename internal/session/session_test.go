package session

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-2048/internal/grid"
)

// memStore is an in-memory Store that counts writes.
type memStore struct {
	progress    *Progress
	high        int
	results     []Result
	saves       int
	highSaves   int
	clears      int
	loadErr     error
	writeErr    error
	progressErr error
}

func (m *memStore) LoadProgress() (Progress, bool, error) {
	if m.progressErr != nil {
		return Progress{}, false, m.progressErr
	}
	if m.progress == nil {
		return Progress{}, false, nil
	}
	return *m.progress, true, nil
}

func (m *memStore) LoadHighScore() (int, error) {
	if m.loadErr != nil {
		return 0, m.loadErr
	}
	return m.high, nil
}

func (m *memStore) SaveProgress(p Progress) error {
	m.saves++
	if m.writeErr != nil {
		return m.writeErr
	}
	m.progress = &Progress{Grid: p.Grid.Clone(), Score: p.Score}
	return nil
}

func (m *memStore) SaveHighScore(score int) error {
	m.highSaves++
	if m.writeErr != nil {
		return m.writeErr
	}
	m.high = score
	return nil
}

func (m *memStore) ClearProgress() error {
	m.clears++
	if m.writeErr != nil {
		return m.writeErr
	}
	m.progress = nil
	return nil
}

func (m *memStore) RecordGame(r Result) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.results = append(m.results, r)
	return nil
}

var _ Store = (*memStore)(nil)

func seeded() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// nearlyTerminal is a full board whose only move is merging the two 2s in
// the bottom row. Sliding left frees (3,3); whether the game ends depends
// on the value spawned there.
func nearlyTerminal() grid.Grid {
	return grid.Grid{
		{4, 8, 4, 8},
		{8, 4, 8, 4},
		{4, 8, 16, 32},
		{8, 16, 2, 2},
	}
}

func TestNewGame(t *testing.T) {
	s := NewGame(DefaultRules(), 120, seeded())

	assert.Equal(t, 4, s.Grid.Size())
	assert.Len(t, s.Grid.EmptyCells(), 14)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 120, s.HighScore)
	assert.Equal(t, PhasePlaying, s.Phase)
}

func TestNewGameCustomSize(t *testing.T) {
	rules := Rules{Size: 6, StartTiles: 3, FourChance: 0}
	s := NewGame(rules, 0, seeded())

	assert.Equal(t, 6, s.Grid.Size())
	assert.Len(t, s.Grid.EmptyCells(), 33)
	assert.Equal(t, 2*3, s.Grid.Sum())
}

func TestHandleSwipeNoMove(t *testing.T) {
	s := State{
		Grid: grid.Grid{
			{4, 2, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		},
		Score:     10,
		HighScore: 50,
		Phase:     PhasePlaying,
	}
	before := s.Grid.Clone()

	out, err := HandleSwipe(s, grid.Left, DefaultRules(), seeded())
	require.NoError(t, err)
	assert.False(t, out.Moved)
	assert.False(t, out.GameOver)
	assert.Equal(t, s, out.State)
	assert.Equal(t, before, s.Grid)
}

func TestHandleSwipeScoresMergesOnly(t *testing.T) {
	s := State{
		Grid: grid.Grid{
			{2, 2, 2, 2},
			{0, 0, 0, 0},
			{0, 0, 0, 8},
			{0, 0, 0, 0},
		},
		Score:     4,
		HighScore: 100,
		Phase:     PhasePlaying,
	}

	out, err := HandleSwipe(s, grid.Left, DefaultRules(), seeded())
	require.NoError(t, err)
	assert.True(t, out.Moved)
	assert.Equal(t, 8, out.ScoreGained)
	assert.Equal(t, 12, out.State.Score)
	assert.Equal(t, 100, out.State.HighScore)
	assert.False(t, out.HighScoreRaised)

	// Merged grid plus exactly one spawned tile
	require.True(t, out.HasSpawn)
	assert.Len(t, out.State.Grid.EmptyCells(), 16-3-1)
	v := out.State.Grid[out.Spawned.Row][out.Spawned.Col]
	assert.Contains(t, []int{2, 4}, v)
	assert.Equal(t, 4+4+8+v, out.State.Grid.Sum())

	// Input state is untouched
	assert.Equal(t, []int{2, 2, 2, 2}, s.Grid[0])
	assert.Equal(t, 4, s.Score)
}

func TestHandleSwipeRaisesHighScore(t *testing.T) {
	s := State{
		Grid: grid.Grid{
			{64, 64, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		},
		Score:     100,
		HighScore: 150,
		Phase:     PhasePlaying,
	}

	out, err := HandleSwipe(s, grid.Right, DefaultRules(), seeded())
	require.NoError(t, err)
	assert.Equal(t, 228, out.State.Score)
	assert.Equal(t, 228, out.State.HighScore)
	assert.True(t, out.HighScoreRaised)
}

func TestHandleSwipeDetectsGameOver(t *testing.T) {
	s := State{Grid: nearlyTerminal(), Score: 0, Phase: PhasePlaying}

	// The only empty cell after merging left is (3,3); a 2 leaves no move.
	rng := scripted{index: 0, float: 0.5}
	out, err := HandleSwipe(s, grid.Left, DefaultRules(), rng)
	require.NoError(t, err)
	assert.True(t, out.Moved)
	assert.Equal(t, 4, out.ScoreGained)
	assert.Equal(t, grid.Grid{
		{4, 8, 4, 8},
		{8, 4, 8, 4},
		{4, 8, 16, 32},
		{8, 16, 4, 2},
	}, out.State.Grid)
	assert.True(t, out.GameOver)
	assert.Equal(t, PhaseGameOver, out.State.Phase)
}

func TestHandleSwipeSpawnKeepsGameAlive(t *testing.T) {
	s := State{Grid: nearlyTerminal(), Phase: PhasePlaying}

	// A spawned 4 next to the merged 4 leaves a move open.
	rng := scripted{index: 0, float: 0.01}
	out, err := HandleSwipe(s, grid.Left, DefaultRules(), rng)
	require.NoError(t, err)
	assert.Equal(t, 4, out.State.Grid[3][3])
	assert.False(t, out.GameOver)
	assert.Equal(t, PhasePlaying, out.State.Phase)
}

func TestHandleSwipeRejectedAfterGameOver(t *testing.T) {
	s := State{
		Grid: grid.Grid{
			{2, 4},
			{4, 2},
		},
		Score:     30,
		HighScore: 30,
		Phase:     PhaseGameOver,
	}

	for _, d := range grid.Directions {
		out, err := HandleSwipe(s, d, DefaultRules(), seeded())
		assert.ErrorIs(t, err, ErrGameOver)
		assert.Equal(t, s, out.State)
		assert.False(t, out.Moved)
	}
}

func TestRestartKeepsHighScore(t *testing.T) {
	s := State{Grid: nearlyTerminal(), Score: 300, HighScore: 500, Phase: PhaseGameOver}

	next := Restart(s, DefaultRules(), seeded())
	assert.Equal(t, 0, next.Score)
	assert.Equal(t, 500, next.HighScore)
	assert.Equal(t, PhasePlaying, next.Phase)
	assert.Len(t, next.Grid.EmptyCells(), 14)
}

func TestScoreNeverDecreases(t *testing.T) {
	rules := DefaultRules()
	rng := seeded()
	s := NewGame(rules, 0, rng)

	for i := 0; i < 500; i++ {
		dir := grid.Directions[i%4]
		out, err := HandleSwipe(s, dir, rules, rng)
		if errors.Is(err, ErrGameOver) {
			prevHigh := s.HighScore
			s = Restart(s, rules, rng)
			require.Equal(t, 0, s.Score)
			require.Equal(t, prevHigh, s.HighScore)
			continue
		}
		require.NoError(t, err)
		require.GreaterOrEqual(t, out.State.Score, s.Score)
		require.GreaterOrEqual(t, out.State.HighScore, out.State.Score)
		s = out.State
	}
}

func TestResume(t *testing.T) {
	p := Progress{Grid: grid.Grid{{2, 0}, {0, 0}}, Score: 80}

	s := Resume(p, 40)
	assert.Equal(t, 80, s.Score)
	assert.Equal(t, 80, s.HighScore)
	assert.Equal(t, PhasePlaying, s.Phase)

	terminal := Progress{Grid: grid.Grid{{2, 4}, {4, 2}}, Score: 12}
	assert.Equal(t, PhaseGameOver, Resume(terminal, 100).Phase)
}

func TestProgressValidate(t *testing.T) {
	rules := DefaultRules()

	assert.NoError(t, Progress{Grid: grid.New(4), Score: 0}.Validate(rules))
	assert.Error(t, Progress{Grid: grid.New(3), Score: 0}.Validate(rules))
	assert.Error(t, Progress{Grid: grid.New(4), Score: -1}.Validate(rules))
	assert.Error(t, Progress{Grid: grid.Grid{{3, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}}.Validate(rules))
}

// scripted is a grid.Source returning fixed values.
type scripted struct {
	index int
	float float64
}

func (s scripted) Intn(n int) int {
	return s.index % n
}

func (s scripted) Float64() float64 {
	return s.float
}
