package render

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestToDOT(t *testing.T) {
	g, _, iterated := twoEstimates(t)

	dot := ToDOT(g, iterated, DOTOptions{})
	for _, want := range []string{
		"digraph pagerank {",
		`"a.html" -> "b.html";`,
		`label="a.html"`,
		// b.html holds the maximum rank, so its fill is fully saturated.
		`"b.html" [label="b.html", fillcolor="0.55 0.650 1.000"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q in:\n%s", want, dot)
		}
	}
}

func TestToDOTDetailedLabels(t *testing.T) {
	g, _, iterated := twoEstimates(t)

	dot := ToDOT(g, iterated, DOTOptions{Detailed: true})
	if !strings.Contains(dot, `label="a.html\n0.2000"`) {
		t.Errorf("ToDOT(Detailed) missing rank label in:\n%s", dot)
	}
}

func TestToDOTWithoutRanks(t *testing.T) {
	g, _, _ := twoEstimates(t)

	dot := ToDOT(g, nil, DOTOptions{})
	if strings.Contains(dot, "fillcolor=\"0.55") {
		t.Errorf("ToDOT(nil ranks) still shaded nodes:\n%s", dot)
	}
}

func TestNewReport(t *testing.T) {
	g, sampled, iterated := twoEstimates(t)

	r := NewReport(g, sampled, iterated)
	if r.PageCount != 3 || r.LinkCount != 1 {
		t.Errorf("counts = %d pages %d links, want 3 and 1", r.PageCount, r.LinkCount)
	}
	if len(r.Pages) != 3 {
		t.Fatalf("len(Pages) = %d, want 3", len(r.Pages))
	}
	for i := 1; i < len(r.Pages); i++ {
		if r.Pages[i-1].ID >= r.Pages[i].ID {
			t.Errorf("pages not sorted: %s before %s", r.Pages[i-1].ID, r.Pages[i].ID)
		}
	}

	// c.html was never visited by the sampler; the field must be absent,
	// not zero.
	for _, pr := range r.Pages {
		if pr.ID == "c.html" && pr.Sampled != nil {
			t.Errorf("Sampled(c.html) = %v, want nil", *pr.Sampled)
		}
		if pr.ID == "a.html" && (pr.Sampled == nil || *pr.Sampled != 0.25) {
			t.Errorf("Sampled(a.html) = %v, want 0.25", pr.Sampled)
		}
	}
}

func TestReportJSONOmitsUnsampled(t *testing.T) {
	g, sampled, iterated := twoEstimates(t)

	data, err := NewReport(g, sampled, iterated).MarshalIndent()
	if err != nil {
		t.Fatalf("MarshalIndent() error = %v", err)
	}

	var decoded struct {
		Pages []map[string]json.RawMessage `json:"pages"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	for _, page := range decoded.Pages {
		var id string
		if err := json.Unmarshal(page["id"], &id); err != nil {
			t.Fatalf("decode id: %v", err)
		}
		_, hasSampled := page["sampled"]
		if id == "c.html" && hasSampled {
			t.Errorf("c.html serialized a sampled value")
		}
		if id == "a.html" && !hasSampled {
			t.Errorf("a.html lost its sampled value")
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	svg := []byte(`<?xml version="1.0"?>` + "\n" +
		`<svg width="134pt" height="38pt" viewBox="0.00 0.00 134.00 38.00" xmlns="http://www.w3.org/2000/svg">` +
		`<g></g></svg>`)

	got := string(normalizeViewBox(svg))
	if !strings.Contains(got, `viewBox="0 0 134.00 38.00"`) {
		t.Errorf("viewBox not zeroed: %s", got)
	}
	if !strings.Contains(got, `width="134" height="38"`) {
		t.Errorf("pixel dimensions missing: %s", got)
	}
}

func TestNormalizeViewBoxPassthrough(t *testing.T) {
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"><g></g></svg>`)
	if got := normalizeViewBox(svg); string(got) != string(svg) {
		t.Errorf("SVG without viewBox was rewritten: %s", got)
	}
}
