package ingest

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrAmbiguousIdentPrefix marks an identifier set mixing more than one
// prefix, e.g. ["10/1", "11/2"]. Such sets cannot be compressed into a
// single range string.
var ErrAmbiguousIdentPrefix = errors.New("idents carry more than one prefix")

// AbbreviateIdents compresses identifiers sharing one "prefix/suffix" form
// into a range string:
//
//	["10/133", "10/134", "10/135"] -> "10/133-135"
//	["10/133", "10/135"]           -> "10/133,135"
//
// Consecutive suffixes collapse into a dash range; disjoint runs join with
// commas. An empty input yields an empty string; mixed prefixes fail with
// ErrAmbiguousIdentPrefix.
func AbbreviateIdents(idents []string) (string, error) {
	if len(idents) == 0 {
		return "", nil
	}

	prefix := 0
	suffixes := make([]int, len(idents))
	for i, ident := range idents {
		p, s, err := splitIdent(ident)
		if err != nil {
			return "", err
		}
		if i == 0 {
			prefix = p
		} else if p != prefix {
			return "", fmt.Errorf("%w: %d and %d", ErrAmbiguousIdentPrefix, prefix, p)
		}
		suffixes[i] = s
	}

	var parts []string
	runStart, prev := suffixes[0], suffixes[0]
	flush := func() {
		if runStart == prev {
			parts = append(parts, strconv.Itoa(runStart))
			return
		}
		parts = append(parts, strconv.Itoa(runStart)+"-"+strconv.Itoa(prev))
	}
	for _, s := range suffixes[1:] {
		if s == prev+1 {
			prev = s
			continue
		}
		flush()
		runStart, prev = s, s
	}
	flush()

	return strconv.Itoa(prefix) + "/" + strings.Join(parts, ","), nil
}

func splitIdent(ident string) (prefix, suffix int, err error) {
	p, s, found := strings.Cut(ident, "/")
	if !found {
		return 0, 0, fmt.Errorf("ident %q is not prefix/suffix form", ident)
	}
	prefix, err = strconv.Atoi(p)
	if err != nil {
		return 0, 0, fmt.Errorf("ident %q has non-numeric prefix", ident)
	}
	suffix, err = strconv.Atoi(s)
	if err != nil {
		return 0, 0, fmt.Errorf("ident %q has non-numeric suffix", ident)
	}
	return prefix, suffix, nil
}
