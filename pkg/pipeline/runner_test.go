package pipeline

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/surfrank/surfrank/pkg/errors"
	"github.com/surfrank/surfrank/pkg/pagerank"
	"github.com/surfrank/surfrank/pkg/render"
)

// testCorpus writes a three-page corpus to a temp directory.
func testCorpus(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	pages := map[string]string{
		"index.html":  `<a href="go.html">Go</a><a href="python.html">Python</a>`,
		"go.html":     `<a href="index.html">home</a>`,
		"python.html": `<a href="index.html">home</a>`,
	}
	for name, body := range pages {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func testRunner() *Runner {
	return NewRunner(log.New(io.Discard))
}

func TestRunnerExecute(t *testing.T) {
	res, err := testRunner().Execute(context.Background(), Options{
		CorpusDir: testCorpus(t),
		Formats:   []string{FormatTable, FormatJSON, FormatDOT},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if res.RunID == "" {
		t.Error("RunID is empty")
	}
	if len(res.GraphHash) != 64 {
		t.Errorf("GraphHash = %q, want 64 hex chars", res.GraphHash)
	}
	if res.Stats.PageCount != 3 || res.Stats.LinkCount != 4 {
		t.Errorf("stats = %d pages %d links, want 3 and 4", res.Stats.PageCount, res.Stats.LinkCount)
	}
	for _, format := range []string{FormatTable, FormatJSON, FormatDOT} {
		if len(res.Artifacts[format]) == 0 {
			t.Errorf("artifact %s is empty", format)
		}
	}

	// Defaults flow through into the report.
	if res.Report.Damping != pagerank.DefaultDamping {
		t.Errorf("Report.Damping = %v, want %v", res.Report.Damping, pagerank.DefaultDamping)
	}
	if res.Report.Samples != pagerank.DefaultSamples {
		t.Errorf("Report.Samples = %d, want %d", res.Report.Samples, pagerank.DefaultSamples)
	}
	if res.Report.Seed != pagerank.DefaultSeed {
		t.Errorf("Report.Seed = %d, want %d", res.Report.Seed, pagerank.DefaultSeed)
	}
	if res.Report.RunID != res.RunID {
		t.Errorf("Report.RunID = %q, want %q", res.Report.RunID, res.RunID)
	}

	var decoded render.Report
	if err := json.Unmarshal(res.Artifacts[FormatJSON], &decoded); err != nil {
		t.Fatalf("JSON artifact does not decode: %v", err)
	}
	if len(decoded.Pages) != 3 {
		t.Errorf("report has %d pages, want 3", len(decoded.Pages))
	}
}

func TestRunnerExecuteReproducible(t *testing.T) {
	dir := testCorpus(t)
	runner := testRunner()

	first, err := runner.Execute(context.Background(), Options{CorpusDir: dir})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	second, err := runner.Execute(context.Background(), Options{CorpusDir: dir})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if first.GraphHash != second.GraphHash {
		t.Errorf("same corpus hashed differently: %s vs %s", first.GraphHash, second.GraphHash)
	}
	if first.RunID == second.RunID {
		t.Errorf("two runs share RunID %s", first.RunID)
	}
	// The default seed makes the sampled estimate identical across runs.
	for id, p := range first.Sampled {
		if second.Sampled[id] != p {
			t.Errorf("sampled(%s) differs across runs: %v vs %v", id, p, second.Sampled[id])
		}
	}
	if string(first.Artifacts[FormatTable]) != string(second.Artifacts[FormatTable]) {
		t.Errorf("table artifact differs across runs")
	}
}

func TestRunnerExecuteMissingCorpus(t *testing.T) {
	_, err := testRunner().Execute(context.Background(), Options{
		CorpusDir: filepath.Join(t.TempDir(), "nope"),
	})
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("Execute() error = %v, want code %s", err, errors.ErrCodeInvalidPath)
	}
}

func TestRunnerExecuteCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testRunner().Execute(ctx, Options{CorpusDir: testCorpus(t)})
	if err == nil || !stderrors.Is(err, context.Canceled) {
		t.Errorf("Execute() error = %v, want %v", err, context.Canceled)
	}
}

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		wantCode errors.Code
	}{
		{name: "missing corpus", opts: Options{}, wantCode: errors.ErrCodeInvalidInput},
		{name: "damping one", opts: Options{CorpusDir: "x", Damping: 1}, wantCode: errors.ErrCodeInvalidParameter},
		{name: "negative damping", opts: Options{CorpusDir: "x", Damping: -0.1}, wantCode: errors.ErrCodeInvalidParameter},
		{name: "negative samples", opts: Options{CorpusDir: "x", Samples: -5}, wantCode: errors.ErrCodeInvalidParameter},
		{name: "negative tolerance", opts: Options{CorpusDir: "x", Tolerance: -1e-4}, wantCode: errors.ErrCodeInvalidParameter},
		{name: "unknown format", opts: Options{CorpusDir: "x", Formats: []string{"pdf"}}, wantCode: errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("ValidateAndSetDefaults() error = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{CorpusDir: "corpus"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}
	if opts.Damping != pagerank.DefaultDamping {
		t.Errorf("Damping = %v, want %v", opts.Damping, pagerank.DefaultDamping)
	}
	if opts.Samples != pagerank.DefaultSamples {
		t.Errorf("Samples = %d, want %d", opts.Samples, pagerank.DefaultSamples)
	}
	if opts.Tolerance != pagerank.DefaultTolerance {
		t.Errorf("Tolerance = %v, want %v", opts.Tolerance, pagerank.DefaultTolerance)
	}
	if opts.Seed != pagerank.DefaultSeed {
		t.Errorf("Seed = %d, want %d", opts.Seed, pagerank.DefaultSeed)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatTable {
		t.Errorf("Formats = %v, want [table]", opts.Formats)
	}
	if opts.Logger == nil {
		t.Error("Logger is nil after defaults")
	}
}

func TestValidateFormat(t *testing.T) {
	for _, format := range []string{FormatTable, FormatJSON, FormatDOT, FormatSVG} {
		if err := ValidateFormat(format); err != nil {
			t.Errorf("ValidateFormat(%s) = %v, want nil", format, err)
		}
	}
	if err := ValidateFormat("pdf"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ValidateFormat(pdf) = %v, want code %s", err, errors.ErrCodeInvalidFormat)
	}
}
