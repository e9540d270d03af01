package grid

// DefaultFourChance is the probability that a spawned tile is a 4.
const DefaultFourChance = 0.1

// Source is the randomness used for spawning.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// SpawnRandomTile places a 2 (90%) or 4 (10%) on a random empty cell.
// A full grid is returned unchanged.
func SpawnRandomTile(g Grid, rng Source) Grid {
	out, _, _ := Spawn(g, rng, DefaultFourChance)
	return out
}

// Spawn places a new tile on a uniformly chosen empty cell. The tile is a 4
// with probability fourChance and a 2 otherwise. It returns the new grid,
// the cell that was filled and whether a tile was placed; when g has no
// empty cell, g itself is returned.
func Spawn(g Grid, rng Source, fourChance float64) (Grid, Cell, bool) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return g, Cell{}, false
	}

	cell := empty[rng.Intn(len(empty))]

	value := 2
	if rng.Float64() < fourChance {
		value = 4
	}

	out := g.Clone()
	out[cell.Row][cell.Col] = value
	return out, cell, true
}
