package pagerank

import (
	"errors"
	"math"
	"math/rand/v2"
	"reflect"
	"testing"
)

func TestSampleSumsToOne(t *testing.T) {
	g := threePages(t)
	for _, n := range []int{1, 10, 1000, 10000} {
		est, err := Sample(g, SampleOptions{Samples: n})
		if err != nil {
			t.Fatalf("Sample(n=%d) error = %v", n, err)
		}
		if sum := est.Sum(); math.Abs(sum-1) > 1e-9 {
			t.Errorf("Sample(n=%d) sums to %v, want 1", n, sum)
		}
		for id, p := range est {
			if p <= 0 || p > 1 {
				t.Errorf("Sample(n=%d) p(%s) = %v out of (0,1]", n, id, p)
			}
		}
	}
}

func TestSampleSingleDraw(t *testing.T) {
	// With n=1 only the start page is ever visited, at probability 1.
	g := threePages(t)
	est, err := Sample(g, SampleOptions{Samples: 1})
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	if len(est) != 1 {
		t.Fatalf("Sample(n=1) visited %d pages, want 1", len(est))
	}
	for id, p := range est {
		if p != 1.0 {
			t.Errorf("p(%s) = %v, want 1.0", id, p)
		}
		if !g.HasPage(id) {
			t.Errorf("sampled unknown page %q", id)
		}
	}
}

func TestSampleOmitsUnvisitedPages(t *testing.T) {
	// A short walk over a large graph cannot touch every page; the missing
	// ones must be absent from the estimate, not present at zero.
	pages := make([]string, 50)
	for i := range pages {
		pages[i] = string(rune('a'+i/26)) + string(rune('a'+i%26)) + ".html"
	}
	g := buildGraph(t, pages, nil)

	est, err := Sample(g, SampleOptions{Samples: 5})
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	if len(est) > 5 {
		t.Errorf("5 draws visited %d pages", len(est))
	}
	for id, p := range est {
		if p == 0 {
			t.Errorf("page %s present with probability 0", id)
		}
	}
}

func TestSampleDeterministicForSeed(t *testing.T) {
	g := threePages(t)

	first, err := Sample(g, SampleOptions{Samples: 2000, Seed: 7})
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	second, err := Sample(g, SampleOptions{Samples: 2000, Seed: 7})
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same seed produced different estimates:\n%v\n%v", first, second)
	}

	other, err := Sample(g, SampleOptions{Samples: 2000, Seed: 8})
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	if reflect.DeepEqual(first, other) {
		t.Errorf("different seeds produced identical estimates")
	}
}

func TestSampleInjectedSource(t *testing.T) {
	g := threePages(t)
	rng := rand.New(rand.NewPCG(1, 2))
	est, err := Sample(g, SampleOptions{Samples: 100, Rand: rng})
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	if sum := est.Sum(); math.Abs(sum-1) > 1e-9 {
		t.Errorf("Sum() = %v, want 1", sum)
	}
}

func TestSampleSymmetricPair(t *testing.T) {
	// Two pages linking only to each other are interchangeable, so both
	// ranks must approach 0.5 within sampling noise.
	g := buildGraph(t, []string{"a", "b"}, [][2]string{{"a", "b"}, {"b", "a"}})

	est, err := Sample(g, SampleOptions{Samples: 10000})
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	for _, id := range []string{"a", "b"} {
		if math.Abs(est[id]-0.5) > 0.05 {
			t.Errorf("p(%s) = %v, want 0.5 ± 0.05", id, est[id])
		}
	}
}

func TestSampleSinglePage(t *testing.T) {
	g := buildGraph(t, []string{"only.html"}, nil)
	est, err := Sample(g, SampleOptions{Samples: 100})
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	if est["only.html"] != 1.0 {
		t.Errorf("p(only.html) = %v, want 1.0", est["only.html"])
	}
}

func TestSampleErrors(t *testing.T) {
	t.Run("empty graph", func(t *testing.T) {
		_, err := Sample(buildGraph(t, nil, nil), SampleOptions{})
		if !errors.Is(err, ErrEmptyGraph) {
			t.Errorf("Sample() error = %v, want %v", err, ErrEmptyGraph)
		}
	})
	t.Run("negative samples", func(t *testing.T) {
		_, err := Sample(threePages(t), SampleOptions{Samples: -1})
		if !errors.Is(err, ErrInvalidSampleCount) {
			t.Errorf("Sample() error = %v, want %v", err, ErrInvalidSampleCount)
		}
	})
	t.Run("damping out of range", func(t *testing.T) {
		_, err := Sample(threePages(t), SampleOptions{Damping: 1.5})
		if !errors.Is(err, ErrInvalidDamping) {
			t.Errorf("Sample() error = %v, want %v", err, ErrInvalidDamping)
		}
	})
}
