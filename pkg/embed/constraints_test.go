package embed

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/EmiliaRusso00/SAT-Chains/pkg/graph"
)

func TestParseSpec(t *testing.T) {
	spec, err := parseSpec([]byte(`
default_allowed_expansions = [2, 1, 2]
max_total_qubits = 6

[per_node]
0 = [3]
7 = [1, 2]

[fixed_mapping]
1 = [4, 2]
`))
	if err != nil {
		t.Fatalf("parseSpec() = %v", err)
	}

	if got := spec.SizesFor(3); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("SizesFor(3) = %v, want [1 2]", got)
	}
	if got := spec.SizesFor(0); !slices.Equal(got, []int{3}) {
		t.Errorf("SizesFor(0) = %v, want [3]", got)
	}
	if got := spec.RequiredFor(1); !slices.Equal(got, []graph.Node{2, 4}) {
		t.Errorf("RequiredFor(1) = %v, want [2 4]", got)
	}
	if spec.RequiredFor(0) != nil {
		t.Errorf("RequiredFor(0) = %v, want nil", spec.RequiredFor(0))
	}
	if spec.MaxTotalQubits != 6 {
		t.Errorf("MaxTotalQubits = %d, want 6", spec.MaxTotalQubits)
	}
}

func TestParseSpec_Errors(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"Syntax", `default_allowed_expansions = [`},
		{"NonNumericKey", "[per_node]\nfoo = [1]"},
		{"NegativeKey", "[fixed_mapping]\n-1 = [0]"},
		{"ZeroSize", `default_allowed_expansions = [0]`},
		{"NegativePerNodeSize", "[per_node]\n2 = [-1]"},
		{"NegativeBudget", `max_total_qubits = -3`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseSpec([]byte(tt.toml)); err == nil {
				t.Error("parseSpec() accepted invalid input")
			}
		})
	}
}

func TestLoadSpec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "constraints.toml")
	if err := os.WriteFile(path, []byte("default_allowed_expansions = [1, 2]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	spec, err := LoadSpec(path)
	if err != nil {
		t.Fatalf("LoadSpec() = %v", err)
	}
	if got := spec.SizesFor(0); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("SizesFor(0) = %v, want [1 2]", got)
	}

	if _, err := LoadSpec(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadSpec() succeeded on a missing file")
	}
}

func TestSpecZeroValue(t *testing.T) {
	var spec Spec
	if err := spec.Validate(); err != nil {
		t.Fatalf("Validate() = %v on the zero value", err)
	}
	if got := spec.SizesFor(9); !slices.Equal(got, []int{1}) {
		t.Errorf("SizesFor(9) = %v, want [1]", got)
	}
	if spec.RequiredFor(9) != nil {
		t.Errorf("RequiredFor(9) = %v, want nil", spec.RequiredFor(9))
	}
}
