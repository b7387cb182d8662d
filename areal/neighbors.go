package areal

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseNeighbors parses a bracketed, comma-separated list of 1-based
// neighbor indices (e.g. "[2,3,5]") and returns the 0-based indices.
// An empty list "[]" is valid and denotes an island area. Malformed
// strings are an error, never an empty neighbor list.
func ParseNeighbors(s string) ([]int, error) {
	t := strings.TrimSpace(s)
	if len(t) < 2 || t[0] != '[' || t[len(t)-1] != ']' {
		return nil, fmt.Errorf("neighbor list %q: expected bracketed list", s)
	}
	inner := strings.TrimSpace(t[1 : len(t)-1])
	if strings.ContainsAny(inner, "[]") {
		return nil, fmt.Errorf("neighbor list %q: unbalanced brackets", s)
	}
	if inner == "" {
		return []int{}, nil
	}
	tokens := strings.Split(inner, ",")
	nbs := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, fmt.Errorf("neighbor list %q: bad index %q: %v", s, tok, err)
		}
		if v < 1 {
			return nil, fmt.Errorf("neighbor list %q: index %d is not 1-based", s, v)
		}
		// convert to 0-based before any graph construction
		nbs = append(nbs, v-1)
	}
	return nbs, nil
}
