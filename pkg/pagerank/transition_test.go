package pagerank

import (
	"errors"
	"math"
	"testing"

	"github.com/surfrank/surfrank/pkg/linkgraph"
)

// buildGraph constructs a graph from pages and from→to pairs.
func buildGraph(t *testing.T, pages []string, links [][2]string) *linkgraph.Graph {
	t.Helper()
	g := linkgraph.New()
	for _, p := range pages {
		if err := g.AddPage(p); err != nil {
			t.Fatalf("AddPage(%q): %v", p, err)
		}
	}
	for _, l := range links {
		if err := g.AddLink(l[0], l[1]); err != nil {
			t.Fatalf("AddLink(%q, %q): %v", l[0], l[1], err)
		}
	}
	return g
}

// threePages is the reference corpus shape: a→b, b→a and b→c, c dangling.
func threePages(t *testing.T) *linkgraph.Graph {
	t.Helper()
	return buildGraph(t,
		[]string{"a", "b", "c"},
		[][2]string{{"a", "b"}, {"b", "a"}, {"b", "c"}})
}

func TestTransition(t *testing.T) {
	tests := []struct {
		name    string
		page    string
		damping float64
		want    Distribution
	}{
		{
			name:    "single link target",
			page:    "a",
			damping: 0.85,
			// teleport share 0.15/3 = 0.05 each, 0.85 follows the only link.
			want: Distribution{"a": 0.05, "b": 0.90, "c": 0.05},
		},
		{
			name:    "two link targets",
			page:    "b",
			damping: 0.85,
			want:    Distribution{"a": 0.475, "b": 0.05, "c": 0.475},
		},
		{
			name:    "dangling page is uniform",
			page:    "c",
			damping: 0.85,
			want:    Distribution{"a": 1.0 / 3, "b": 1.0 / 3, "c": 1.0 / 3},
		},
		{
			name:    "zero damping ignores links",
			page:    "a",
			damping: 0,
			want:    Distribution{"a": 1.0 / 3, "b": 1.0 / 3, "c": 1.0 / 3},
		},
		{
			name:    "full damping ignores teleport",
			page:    "a",
			damping: 1,
			want:    Distribution{"a": 0, "b": 1, "c": 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := threePages(t)
			got, err := Transition(g, tt.page, tt.damping)
			if err != nil {
				t.Fatalf("Transition() error = %v", err)
			}
			if len(got) != g.PageCount() {
				t.Fatalf("covers %d pages, want %d", len(got), g.PageCount())
			}
			for id, want := range tt.want {
				if math.Abs(got[id]-want) > 1e-9 {
					t.Errorf("p(%s) = %v, want %v", id, got[id], want)
				}
			}
			if sum := got.Sum(); math.Abs(sum-1) > 1e-9 {
				t.Errorf("Sum() = %v, want 1", sum)
			}
		})
	}
}

func TestTransitionSumsToOneAcrossDampings(t *testing.T) {
	g := threePages(t)
	for _, damping := range []float64{0, 0.15, 0.5, 0.85, 0.999} {
		for _, page := range g.Pages() {
			dist, err := Transition(g, page, damping)
			if err != nil {
				t.Fatalf("Transition(%s, %v) error = %v", page, damping, err)
			}
			if sum := dist.Sum(); math.Abs(sum-1) > 1e-9 {
				t.Errorf("Transition(%s, %v) sums to %v", page, damping, sum)
			}
		}
	}
}

func TestTransitionErrors(t *testing.T) {
	tests := []struct {
		name    string
		graph   func(t *testing.T) *linkgraph.Graph
		page    string
		damping float64
		wantErr error
	}{
		{
			name:    "unknown page",
			graph:   threePages,
			page:    "ghost",
			damping: 0.85,
			wantErr: ErrUnknownPage,
		},
		{
			name:    "damping below range",
			graph:   threePages,
			page:    "a",
			damping: -0.1,
			wantErr: ErrInvalidDamping,
		},
		{
			name:    "damping above range",
			graph:   threePages,
			page:    "a",
			damping: 1.1,
			wantErr: ErrInvalidDamping,
		},
		{
			name: "empty graph",
			graph: func(t *testing.T) *linkgraph.Graph {
				return linkgraph.New()
			},
			page:    "a",
			damping: 0.85,
			wantErr: ErrEmptyGraph,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Transition(tt.graph(t), tt.page, tt.damping)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Transition() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
