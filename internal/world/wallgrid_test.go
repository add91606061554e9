package world

import "testing"

func TestEdgeAliasing(t *testing.T) {
	grid := NewWallGrid[tag](8, 8)

	wall := tag{label: "shared"}
	grid.Set(3, 4, Right, &wall)
	if got := grid.At(4, 4, Left); got != &wall {
		t.Errorf("At(4,4,Left) = %v, want the slot written via (3,4,Right)", got)
	}

	grid.Set(5, 2, Top, &wall)
	if got := grid.At(5, 3, Bottom); got != &wall {
		t.Errorf("At(5,3,Bottom) = %v, want the slot written via (5,2,Top)", got)
	}

	// Clearing through the alias clears the edge.
	grid.Set(4, 4, Left, nil)
	if grid.At(3, 4, Right) != nil {
		t.Error("clearing (4,4,Left) should clear (3,4,Right)")
	}
}

func TestSetAndClearWall(t *testing.T) {
	grid := NewWallGrid[tag](4, 4)

	if grid.At(1, 1, Top) != nil {
		t.Fatal("fresh grid should have no walls")
	}

	wall := tag{label: "w"}
	grid.Set(1, 1, Top, &wall)
	if grid.At(1, 1, Top) == nil {
		t.Error("wall should be present after Set")
	}

	grid.Set(1, 1, Top, nil)
	if grid.At(1, 1, Top) != nil {
		t.Error("wall should be absent after clearing")
	}
}

func TestAddBorderDuplicatesPayload(t *testing.T) {
	grid := NewWallGrid[tag](5, 5)
	grid.AddBorder(tag{label: "border"})

	// Every boundary edge holds its own copy.
	seen := map[*tag]bool{}
	for x := 0; x < 5; x++ {
		for _, w := range []*tag{grid.At(x, 0, Bottom), grid.At(x, 4, Top)} {
			if w == nil {
				t.Fatalf("missing border wall in column %d", x)
			}
			if seen[w] {
				t.Error("border edges should not share a payload instance")
			}
			seen[w] = true
		}
	}
	for y := 0; y < 5; y++ {
		for _, w := range []*tag{grid.At(0, y, Left), grid.At(4, y, Right)} {
			if w == nil {
				t.Fatalf("missing border wall in row %d", y)
			}
			if seen[w] {
				t.Error("border edges should not share a payload instance")
			}
			seen[w] = true
		}
	}

	// Mutating one copy leaves the others alone.
	grid.At(0, 0, Left).label = "mutated"
	if grid.At(0, 1, Left).label != "border" {
		t.Error("mutating one border payload affected another")
	}
}

func TestWallGridBoundsPanics(t *testing.T) {
	grid := NewWallGrid[Unit](4, 4)
	defer func() {
		if recover() == nil {
			t.Error("expected panic on out-of-bounds edge access")
		}
	}()
	grid.At(4, 0, Left)
}
