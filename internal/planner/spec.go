package planner

import (
	"fmt"
	"strconv"
	"strings"
)

// BatchSpec is a parsed batch-size specification.
//
// Repeating mode holds a single size in Sizes[0] that applies indefinitely;
// explicit mode holds the ordered list of sizes to apply once.
type BatchSpec struct {
	Sizes     []int
	Repeating bool
}

// ParseBatchSpec parses a specification string: either a single positive
// integer ("5", repeating mode) or a comma-separated list of positive
// integers ("3,4,5", explicit mode). Whitespace around values is ignored.
func ParseBatchSpec(s string) (BatchSpec, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return BatchSpec{}, fmt.Errorf("empty batch spec")
	}

	if !strings.Contains(s, ",") {
		n, err := parseSize(s)
		if err != nil {
			return BatchSpec{}, err
		}
		return BatchSpec{Sizes: []int{n}, Repeating: true}, nil
	}

	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := parseSize(part)
		if err != nil {
			return BatchSpec{}, fmt.Errorf("invalid batch spec %q: %w", s, err)
		}
		sizes = append(sizes, n)
	}
	return BatchSpec{Sizes: sizes}, nil
}

func parseSize(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid batch size %q", strings.TrimSpace(s))
	}
	if n <= 0 {
		return 0, fmt.Errorf("batch size must be positive (got %d)", n)
	}
	return n, nil
}

// Total returns the sum of the specified sizes.
func (s BatchSpec) Total() int {
	total := 0
	for _, n := range s.Sizes {
		total += n
	}
	return total
}

// String renders the spec back in the table grammar.
func (s BatchSpec) String() string {
	parts := make([]string, len(s.Sizes))
	for i, n := range s.Sizes {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
