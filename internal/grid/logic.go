package grid

// LineResult is the outcome of sliding a single line toward index 0.
type LineResult struct {
	Line        []int
	ScoreGained int
	Changed     bool
}

// MoveResult is the outcome of applying a direction to a grid.
type MoveResult struct {
	Grid        Grid
	Moved       bool
	ScoreGained int
}

// CompactAndMergeLine slides a line toward index 0 and merges equal neighbors.
// A tile produced by a merge never merges again in the same pass, so
// [2 2 2 2] becomes [4 4 0 0].
func CompactAndMergeLine(line []int) LineResult {
	result := make([]int, len(line))
	score := 0
	writePos := 0
	lastMerged := false

	for _, v := range line {
		if v == 0 {
			continue
		}

		if writePos > 0 && !lastMerged && result[writePos-1] == v {
			// Merge with previous tile
			result[writePos-1] += v
			score += result[writePos-1]
			lastMerged = true
			continue
		}

		result[writePos] = v
		writePos++
		lastMerged = false
	}

	changed := false
	for i := range line {
		if line[i] != result[i] {
			changed = true
			break
		}
	}

	return LineResult{Line: result, ScoreGained: score, Changed: changed}
}

// Rotate returns g turned a quarter turn counter-clockwise.
// Column n-1 becomes row 0, read top to bottom.
func Rotate(g Grid) Grid {
	n := len(g)
	out := New(n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out[r][c] = g[c][n-1-r]
		}
	}
	return out
}

// rotateN applies k counter-clockwise quarter turns.
func rotateN(g Grid, k int) Grid {
	k = ((k % 4) + 4) % 4
	if k == 0 {
		return g.Clone()
	}
	out := g
	for i := 0; i < k; i++ {
		out = Rotate(out)
	}
	return out
}

// ApplyDirection slides every line of g in dir.
// The grid is rotated so that dir points toward column 0, each row is
// merged, and the result is rotated back.
func ApplyDirection(g Grid, dir Direction) MoveResult {
	mustBeSquare(g)
	if !dir.Valid() {
		panic("grid: invalid direction " + dir.String())
	}

	k := dir.rotations()
	rotated := rotateN(g, k)

	moved := false
	total := 0
	for r, row := range rotated {
		res := CompactAndMergeLine(row)
		rotated[r] = res.Line
		total += res.ScoreGained
		if res.Changed {
			moved = true
		}
	}

	return MoveResult{
		Grid:        rotateN(rotated, 4-k),
		Moved:       moved,
		ScoreGained: total,
	}
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(g Grid) bool {
	for _, row := range g {
		for _, v := range row {
			if v == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if any adjacent tiles hold equal values.
func HasPossibleMerge(g Grid) bool {
	n := len(g)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			val := g[r][c]
			// Check right neighbor
			if c < n-1 && g[r][c+1] == val {
				return true
			}
			// Check bottom neighbor
			if r < n-1 && g[r+1][c] == val {
				return true
			}
		}
	}
	return false
}

// IsTerminal returns true if no direction can change the grid.
func IsTerminal(g Grid) bool {
	mustBeSquare(g)
	return !HasEmptyCell(g) && !HasPossibleMerge(g)
}
