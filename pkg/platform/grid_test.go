package platform

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, err := New(size); err == nil {
			t.Errorf("Expected error for size %d", size)
		}
	}
}

func TestNew_AllEmpty(t *testing.T) {
	g, err := New(4)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if g.Size() != 4 {
		t.Errorf("Expected size 4, got %d", g.Size())
	}
	if got := g.Count(Empty); got != 16 {
		t.Errorf("Expected 16 empty cells, got %d", got)
	}
}

func TestGrid_AtSet(t *testing.T) {
	g, _ := New(3)
	g.Set(1, 2, Rolling)
	g.Set(2, 0, Fixed)

	if g.At(1, 2) != Rolling {
		t.Errorf("Expected rolling at (1,2), got %v", g.At(1, 2))
	}
	if g.At(2, 0) != Fixed {
		t.Errorf("Expected fixed at (2,0), got %v", g.At(2, 0))
	}
	if g.At(0, 0) != Empty {
		t.Errorf("Expected empty at (0,0), got %v", g.At(0, 0))
	}
}

func TestGrid_AtOutOfRangePanics(t *testing.T) {
	g, _ := New(3)

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for out-of-range access")
		}
	}()
	g.At(0, 3)
}

func TestGrid_CloneIsIndependent(t *testing.T) {
	g := mustParse(t, exampleInput, 10)
	snapshot := g.Clone()

	if !g.Equal(snapshot) {
		t.Fatal("Expected clone to equal original")
	}

	snapshot.Tilt(North)

	if g.Equal(snapshot) {
		t.Error("Expected tilting the clone to leave the original untouched")
	}
	if diff := cmp.Diff(exampleInput, g.String()); diff != "" {
		t.Errorf("Original grid changed (-want +got):\n%s", diff)
	}
}

func TestGrid_Equal(t *testing.T) {
	a, _ := New(3)
	b, _ := New(3)
	c, _ := New(4)

	if !a.Equal(b) {
		t.Error("Expected equal empty grids")
	}
	if a.Equal(c) {
		t.Error("Expected grids of different size to differ")
	}
	if a.Equal(nil) {
		t.Error("Expected grid not to equal nil")
	}

	b.Set(0, 0, Fixed)
	if a.Equal(b) {
		t.Error("Expected grids with different cells to differ")
	}
}

func TestGrid_String(t *testing.T) {
	g, _ := New(2)
	g.Set(0, 1, Rolling)
	g.Set(1, 0, Fixed)

	if diff := cmp.Diff(".O\n#.\n", g.String()); diff != "" {
		t.Errorf("Unexpected rendering (-want +got):\n%s", diff)
	}
}

func TestGrid_Count(t *testing.T) {
	g := mustParse(t, exampleInput, 10)

	if got := g.Count(Rolling); got != 18 {
		t.Errorf("Expected 18 rolling boulders, got %d", got)
	}
	if got := g.Count(Fixed); got != 17 {
		t.Errorf("Expected 17 fixed rocks, got %d", got)
	}
	if total := g.Count(Rolling) + g.Count(Fixed) + g.Count(Empty); total != 100 {
		t.Errorf("Expected 100 cells in total, got %d", total)
	}
}

func TestCell_String(t *testing.T) {
	tests := []struct {
		cell Cell
		want string
	}{
		{Empty, "."},
		{Fixed, "#"},
		{Rolling, "O"},
		{Cell('x'), "Cell(0x78)"},
	}

	for _, tt := range tests {
		if got := tt.cell.String(); got != tt.want {
			t.Errorf("Cell(%q).String() = %q, want %q", byte(tt.cell), got, tt.want)
		}
	}
}
