package platform

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTilt_NorthExample(t *testing.T) {
	want := `OOOO.#.O..
OO..#....#
OO..O##..O
O..#.OO...
........#.
..#....#.#
..O..#.O.O
..O.......
#....###..
#....#....
`

	for _, strategy := range []Strategy{StrategyScan, StrategySettle} {
		t.Run(string(strategy), func(t *testing.T) {
			g := mustParse(t, exampleInput, 10)
			strategy.Apply(g, North)

			if diff := cmp.Diff(want, g.String()); diff != "" {
				t.Errorf("Unexpected grid after north tilt (-want +got):\n%s", diff)
			}
			if got := g.Load(); got != 136 {
				t.Errorf("Expected load 136, got %d", got)
			}
		})
	}
}

func TestTilt_SingleRowScenario(t *testing.T) {
	tests := []struct {
		name      string
		direction Direction
		wantRow   string
	}{
		{name: "east stops at fixed rock", direction: East, wantRow: "....O#...."},
		{name: "west already at edge", direction: West, wantRow: "O....#...."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustParse(t, "O....#....\n", 10)
			g.Tilt(tt.direction)

			got := g.String()[:10]
			if diff := cmp.Diff(tt.wantRow, got); diff != "" {
				t.Errorf("Unexpected first row (-want +got):\n%s", diff)
			}
			if g.Count(Rolling) != 1 {
				t.Errorf("Expected exactly one boulder, got %d", g.Count(Rolling))
			}
		})
	}
}

func TestTilt_EachDirection(t *testing.T) {
	input := "...\n.O.\n...\n"

	tests := []struct {
		direction Direction
		want      string
	}{
		{North, ".O.\n...\n...\n"},
		{South, "...\n...\n.O.\n"},
		{West, "...\nO..\n...\n"},
		{East, "...\n..O\n...\n"},
	}

	for _, tt := range tests {
		t.Run(tt.direction.String(), func(t *testing.T) {
			g := mustParse(t, input, 3)
			g.Tilt(tt.direction)
			if diff := cmp.Diff(tt.want, g.String()); diff != "" {
				t.Errorf("Unexpected grid (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTilt_StacksAgainstObstacles(t *testing.T) {
	g := mustParse(t, "#...\n.#..\nOO..\nO...\n", 4)
	g.Tilt(North)

	want := "#...\nO#..\nOO..\n....\n"
	if diff := cmp.Diff(want, g.String()); diff != "" {
		t.Errorf("Unexpected grid (-want +got):\n%s", diff)
	}
}

func TestTilt_FixedCellsNeverMove(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := randomGrid(rng, 12)
	before := g.Clone()

	for _, d := range Directions {
		g.Tilt(d)
	}

	for row := 0; row < g.Size(); row++ {
		for col := 0; col < g.Size(); col++ {
			if (before.At(row, col) == Fixed) != (g.At(row, col) == Fixed) {
				t.Fatalf("Fixed cell changed at (%d,%d)", row, col)
			}
		}
	}
	if before.Count(Rolling) != g.Count(Rolling) {
		t.Errorf("Boulder count changed from %d to %d", before.Count(Rolling), g.Count(Rolling))
	}
}

func TestTilt_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		g := randomGrid(rng, 1+rng.Intn(15))
		for _, d := range Directions {
			for _, strategy := range []Strategy{StrategyScan, StrategySettle} {
				once := g.Clone()
				strategy.Apply(once, d)
				twice := once.Clone()
				strategy.Apply(twice, d)

				if !once.Equal(twice) {
					t.Fatalf("%s tilt %s not idempotent:\n%s\nvs\n%s", strategy, d, once, twice)
				}
			}
		}
	}
}

func TestTilt_MatchesSettle(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 100; i++ {
		g := randomGrid(rng, 1+rng.Intn(20))
		for _, d := range Directions {
			scanned := g.Clone()
			scanned.Tilt(d)
			settled := g.Clone()
			settled.Settle(d)

			if diff := cmp.Diff(settled.String(), scanned.String()); diff != "" {
				t.Fatalf("Tilt and Settle disagree for %s (-settle +tilt):\n%s", d, diff)
			}
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{in: "north", want: North},
		{in: "W", want: West},
		{in: " South ", want: South},
		{in: "e", want: East},
		{in: "up", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDirection(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{in: "", want: StrategyScan},
		{in: "scan", want: StrategyScan},
		{in: "SETTLE", want: StrategySettle},
		{in: "bubble", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseStrategy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseStrategy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStrategy(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
