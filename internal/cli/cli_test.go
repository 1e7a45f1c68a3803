package cli

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"testing"

	charmlog "github.com/charmbracelet/log"

	"github.com/EmiliaRusso00/SAT-Chains/pkg/cnf"
	"github.com/EmiliaRusso00/SAT-Chains/pkg/embed"
	"github.com/EmiliaRusso00/SAT-Chains/pkg/graph"
)

func writeGraph(t *testing.T, dir, name string, g *graph.Graph) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := graph.WriteFile(g, path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadProblem(t *testing.T) {
	dir := t.TempDir()
	logical := writeGraph(t, dir, "k3.json", graph.Complete(3))
	physical := writeGraph(t, dir, "c4.json", graph.Cycle(4))

	p, err := loadProblem(logical, physical, "", "subset")
	if err != nil {
		t.Fatalf("loadProblem() = %v", err)
	}
	if len(p.Logical.Nodes()) != 3 || len(p.Physical.Nodes()) != 4 {
		t.Errorf("loaded %d logical and %d physical nodes, want 3 and 4",
			len(p.Logical.Nodes()), len(p.Physical.Nodes()))
	}
	if p.Mode != embed.ModeSubset {
		t.Errorf("mode = %s, want subset", p.Mode)
	}

	if _, err := loadProblem(logical, physical, "", "bogus"); err == nil {
		t.Error("loadProblem() accepted an unknown mode")
	}
	if _, err := loadProblem(filepath.Join(dir, "missing.json"), physical, "", "subset"); err == nil {
		t.Error("loadProblem() succeeded on a missing logical graph")
	}
}

func TestRunEncode(t *testing.T) {
	dir := t.TempDir()
	logical := writeGraph(t, dir, "k2.json", graph.Complete(2))
	physical := writeGraph(t, dir, "p3.json", graph.Path(3))

	out := filepath.Join(dir, "instance.cnf")
	opts := &encodeOpts{mode: "subset", output: out, dedup: true}
	if err := runEncode(context.Background(), opts, logical, physical); err != nil {
		t.Fatalf("runEncode() = %v", err)
	}

	f, err := cnf.ParseFile(out)
	if err != nil {
		t.Fatalf("ParseFile() = %v", err)
	}
	if f.NumVars() != 6 || f.Len() == 0 {
		t.Errorf("parsed %d variables and %d clauses", f.NumVars(), f.Len())
	}
}

func TestBuildTopology(t *testing.T) {
	tests := []struct {
		args      []string
		nodes     int
		edges     int
		wantError bool
	}{
		{[]string{"path", "4"}, 4, 3, false},
		{[]string{"cycle", "4"}, 4, 4, false},
		{[]string{"complete", "3"}, 3, 3, false},
		{[]string{"grid", "2", "3"}, 6, 7, false},
		{[]string{"grid", "2"}, 0, 0, true},
		{[]string{"path", "2", "3"}, 0, 0, true},
		{[]string{"path", "x"}, 0, 0, true},
		{[]string{"torus", "4"}, 0, 0, true},
	}
	for _, tt := range tests {
		g, err := buildTopology(tt.args)
		if tt.wantError {
			if err == nil {
				t.Errorf("buildTopology(%v) succeeded, want error", tt.args)
			}
			continue
		}
		if err != nil {
			t.Errorf("buildTopology(%v) = %v", tt.args, err)
			continue
		}
		if len(g.Nodes()) != tt.nodes || len(g.Edges()) != tt.edges {
			t.Errorf("buildTopology(%v): %d nodes %d edges, want %d and %d",
				tt.args, len(g.Nodes()), len(g.Edges()), tt.nodes, tt.edges)
		}
	}
}

func TestLoggerContext(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Fatal("loggerFromContext() returned nil without an attached logger")
	}

	var buf bytes.Buffer
	logger := newLogger(&buf, charmlog.DebugLevel)
	ctx := withLogger(context.Background(), logger)
	if loggerFromContext(ctx) != logger {
		t.Error("loggerFromContext() did not return the attached logger")
	}

	logger.Debug("visible at debug level")
	if buf.Len() == 0 {
		t.Error("debug message was filtered at debug level")
	}

	quiet := newLogger(io.Discard, charmlog.InfoLevel)
	tracker := newProgress(quiet)
	tracker.done("finished") // must not panic
}
