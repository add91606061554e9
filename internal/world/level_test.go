package world

import "testing"

// tag is a wall payload whose clones can be told apart by pointer identity.
type tag struct {
	label string
}

func (t tag) Clone() tag {
	return t
}

func TestDefaultElevation(t *testing.T) {
	level := New[struct{}, Unit](10, 10, 10.0)
	for x := 0; x < 10; x++ {
		level.SetZ(x, x, 42.0)
	}

	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			want := 10.0
			if x == y {
				want = 42.0
			}
			if got := level.Z(x, y); got != want {
				t.Errorf("Z(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestTilePayloads(t *testing.T) {
	type biome struct{ name string }
	level := New[biome, Unit](4, 4, 0.0)

	if got := level.Data(2, 3); got.name != "" {
		t.Errorf("fresh payload = %+v, want zero value", got)
	}

	level.SetData(2, 3, biome{name: "marsh"})
	if got := level.Data(2, 3); got.name != "marsh" {
		t.Errorf("Data(2,3).name = %q, want %q", got.name, "marsh")
	}
	if got := level.Data(3, 2); got.name != "" {
		t.Errorf("Data(3,2) = %+v, want zero value", got)
	}
}

func TestOutOfBoundsPanics(t *testing.T) {
	cases := []struct {
		name string
		call func(level *Level[struct{}, Unit])
	}{
		{"Z x too large", func(l *Level[struct{}, Unit]) { l.Z(10, 0) }},
		{"Z y too large", func(l *Level[struct{}, Unit]) { l.Z(0, 10) }},
		{"Z negative", func(l *Level[struct{}, Unit]) { l.Z(-1, 0) }},
		{"Wall out of bounds", func(l *Level[struct{}, Unit]) { l.Wall(10, 0, Left) }},
		{"Data out of bounds", func(l *Level[struct{}, Unit]) { l.Data(0, -1) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic on out-of-bounds access")
				}
			}()
			tc.call(New[struct{}, Unit](10, 10, 0.0))
		})
	}
}

func TestMoves(t *testing.T) {
	level := New[struct{}, Unit](10, 10, 0.0)

	// Staying in place is always legal.
	for _, p := range []Position{{0, 0}, {5, 5}, {9, 9}} {
		if !level.IsMovePossible(p, p) {
			t.Errorf("IsMovePossible(%v, %v) = false, want true", p, p)
		}
	}

	// Adjacent, open edges.
	steps := []struct{ from, to Position }{
		{Position{0, 0}, Position{1, 0}},
		{Position{1, 0}, Position{1, 1}},
		{Position{1, 1}, Position{0, 1}},
		{Position{0, 1}, Position{0, 0}},
	}
	for _, s := range steps {
		if !level.IsMovePossible(s.from, s.to) {
			t.Errorf("IsMovePossible(%v, %v) = false, want true", s.from, s.to)
		}
	}

	// Not adjacent.
	if level.IsMovePossible(Position{0, 0}, Position{2, 0}) {
		t.Error("move to non-adjacent tile should be impossible")
	}

	// Destination outside the level.
	if level.IsMovePossible(Position{9, 9}, Position{9, 10}) {
		t.Error("move outside the level should be impossible")
	}

	// A wall blocks the step, seen from both sides.
	wall := Unit{}
	level.SetWall(0, 0, Right, &wall)
	if level.IsMovePossible(Position{0, 0}, Position{1, 0}) {
		t.Error("move across a wall should be impossible")
	}
	if level.IsMovePossible(Position{1, 0}, Position{0, 0}) {
		t.Error("move across a wall should be impossible from the far side too")
	}
}

func TestDiagonalMoves(t *testing.T) {
	level := New[struct{}, Unit](10, 10, 0.0)

	if !level.IsMovePossible(Position{0, 0}, Position{1, 1}) {
		t.Fatal("diagonal move on an empty level should be possible")
	}

	// Block the x-then-y path only: the y-then-x path still opens the move.
	wall := Unit{}
	level.SetWall(0, 0, Right, &wall)
	if !level.IsMovePossible(Position{0, 0}, Position{1, 1}) {
		t.Error("diagonal move should survive one blocked L-path")
	}

	// Block the second path as well.
	other := Unit{}
	level.SetWall(0, 1, Right, &other)
	if level.IsMovePossible(Position{0, 0}, Position{1, 1}) {
		t.Error("diagonal move with both L-paths blocked should be impossible")
	}

	// The orthogonal step shared with the blocked paths is unaffected.
	if !level.IsMovePossible(Position{0, 0}, Position{0, 1}) {
		t.Error("orthogonal step should remain possible")
	}
}

func TestBorderWalls(t *testing.T) {
	level := New[struct{}, tag](20, 20, 0.0)
	level.AddBorderWalls(tag{label: "border"})

	checks := []struct {
		x, y int
		dir  Direction
	}{
		{4, 0, Bottom},
		{6, 19, Top},
		{0, 12, Left},
		{19, 7, Right},
	}
	for _, c := range checks {
		got := level.Wall(c.x, c.y, c.dir)
		if got == nil {
			t.Errorf("Wall(%d,%d,%v) = nil, want border wall", c.x, c.y, c.dir)
		} else if got.label != "border" {
			t.Errorf("Wall(%d,%d,%v).label = %q, want %q", c.x, c.y, c.dir, got.label, "border")
		}
	}

	// No interior edge gains a wall as a side effect.
	for _, dir := range []Direction{Left, Right, Top, Bottom} {
		if level.Wall(2, 2, dir) != nil {
			t.Errorf("interior tile (2,2) has unexpected %v wall", dir)
		}
	}
}

func TestCliffWalls(t *testing.T) {
	level := New[struct{}, Unit](10, 10, 0.0)
	level.SetZ(1, 1, 10.0)
	level.AddCliffWalls(1.0, Unit{})

	// Flat ground stays open.
	if !level.IsMovePossible(Position{0, 0}, Position{1, 0}) {
		t.Error("move on flat ground should be possible")
	}

	// Every step onto or off the spike is blocked.
	blocked := []struct{ from, to Position }{
		{Position{1, 0}, Position{1, 1}},
		{Position{1, 1}, Position{1, 2}},
		{Position{0, 1}, Position{1, 1}},
		{Position{1, 1}, Position{2, 1}},
		{Position{2, 1}, Position{1, 1}},
	}
	for _, s := range blocked {
		if level.IsMovePossible(s.from, s.to) {
			t.Errorf("IsMovePossible(%v, %v) = true, want false across cliff", s.from, s.to)
		}
	}
}

func TestCliffThresholdInclusive(t *testing.T) {
	level := New[struct{}, Unit](3, 3, 0.0)
	level.SetZ(1, 1, 1.0)
	level.AddCliffWalls(1.0, Unit{})

	// Difference exactly equal to the threshold still raises a wall.
	if level.IsMovePossible(Position{0, 1}, Position{1, 1}) {
		t.Error("elevation difference equal to threshold should raise a wall")
	}
}

func TestCliffWallsSkipBorderPairs(t *testing.T) {
	level := New[struct{}, Unit](3, 3, 0.0)
	// A cliff along the last row and column: outside the interior scan.
	level.SetZ(2, 2, 10.0)
	level.AddCliffWalls(1.0, Unit{})

	if level.HasWall(2, 1, Top) {
		t.Error("pair in the last column should not be scanned")
	}
	if level.HasWall(1, 2, Right) {
		t.Error("pair in the last row should not be scanned")
	}
}
