package embed

import (
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/EmiliaRusso00/SAT-Chains/pkg/graph"
)

// Spec is the embedding constraint configuration.
//
// The zero value means: every logical node may use chains of size 1 only,
// nothing is pinned, and the total qubit count is unbounded.
type Spec struct {
	// DefaultSizes is the set of permitted chain sizes for logical nodes
	// without a PerNode override. Empty means {1}.
	DefaultSizes []int

	// PerNode overrides the permitted chain sizes for individual nodes.
	PerNode map[graph.Node][]int

	// Fixed maps a logical node to physical nodes its chain must contain.
	Fixed map[graph.Node][]graph.Node

	// MaxTotalQubits bounds the sum of chosen chain sizes across the whole
	// assignment. Zero means unbounded.
	MaxTotalQubits int
}

// SizesFor returns the permitted chain sizes for n, sorted ascending and
// deduplicated. Falls back to DefaultSizes, then to {1}.
func (s *Spec) SizesFor(n graph.Node) []int {
	sizes := s.PerNode[n]
	if len(sizes) == 0 {
		sizes = s.DefaultSizes
	}
	if len(sizes) == 0 {
		return []int{1}
	}
	sizes = slices.Clone(sizes)
	slices.Sort(sizes)
	return slices.Compact(sizes)
}

// RequiredFor returns the physical nodes the chain of n must contain,
// sorted ascending. Nil if nothing is pinned.
func (s *Spec) RequiredFor(n graph.Node) []graph.Node {
	req := s.Fixed[n]
	if len(req) == 0 {
		return nil
	}
	req = slices.Clone(req)
	slices.Sort(req)
	return slices.Compact(req)
}

// Validate rejects non-positive chain sizes and a negative qubit bound.
func (s *Spec) Validate() error {
	check := func(where string, sizes []int) error {
		for _, size := range sizes {
			if size < 1 {
				return fmt.Errorf("%s: chain size %d is not positive", where, size)
			}
		}
		return nil
	}
	if err := check("default_allowed_expansions", s.DefaultSizes); err != nil {
		return err
	}
	for n, sizes := range s.PerNode {
		if err := check(fmt.Sprintf("per_node[%d]", n), sizes); err != nil {
			return err
		}
	}
	if s.MaxTotalQubits < 0 {
		return fmt.Errorf("max_total_qubits: %d is negative", s.MaxTotalQubits)
	}
	return nil
}

// =============================================================================
// TOML Loading
// =============================================================================

// specFile is the on-disk TOML shape. Table keys are strings in TOML, so
// node IDs arrive as strings and are converted during Load:
//
//	default_allowed_expansions = [1, 2]
//	max_total_qubits = 6
//
//	[per_node]
//	0 = [2, 3]
//
//	[fixed_mapping]
//	1 = [4]
type specFile struct {
	DefaultSizes   []int            `toml:"default_allowed_expansions"`
	PerNode        map[string][]int `toml:"per_node"`
	Fixed          map[string][]int `toml:"fixed_mapping"`
	MaxTotalQubits int              `toml:"max_total_qubits"`
}

// LoadSpec reads and validates a constraint spec from a TOML file.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return parseSpec(data)
}

func parseSpec(data []byte) (*Spec, error) {
	var file specFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse constraints: %w", err)
	}

	spec := &Spec{
		DefaultSizes:   file.DefaultSizes,
		MaxTotalQubits: file.MaxTotalQubits,
	}
	if len(file.PerNode) > 0 {
		spec.PerNode = make(map[graph.Node][]int, len(file.PerNode))
		for key, sizes := range file.PerNode {
			n, err := parseNodeKey("per_node", key)
			if err != nil {
				return nil, err
			}
			spec.PerNode[n] = sizes
		}
	}
	if len(file.Fixed) > 0 {
		spec.Fixed = make(map[graph.Node][]graph.Node, len(file.Fixed))
		for key, ids := range file.Fixed {
			n, err := parseNodeKey("fixed_mapping", key)
			if err != nil {
				return nil, err
			}
			required := make([]graph.Node, len(ids))
			for i, id := range ids {
				required[i] = graph.Node(id)
			}
			spec.Fixed[n] = required
		}
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

func parseNodeKey(table, key string) (graph.Node, error) {
	id, err := strconv.Atoi(key)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("%s: key %q is not a node ID", table, key)
	}
	return graph.Node(id), nil
}
