// SPDX-License-Identifier: MIT
// Package: primstep/builder
//
// parse.go — textual topology specs for command-line use.
//
// Grammar: kind ":" n [ ":" p ]
//
//	complete:6   path:5   cycle:7   star:4   wheel:6   sparse:8:0.4

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseKind turns a textual spec into a Constructor.
//
// Errors: ErrUnknownKind for an unrecognized kind; ErrBadKindSpec for a
// malformed count or probability, or for n above MaxVertices. The remaining
// range checks (minimum n, p in [0,1]) happen when the returned Constructor runs.
func ParseKind(spec string) (Constructor, error) {
	parts := strings.Split(strings.TrimSpace(spec), ":")
	kind := strings.ToLower(parts[0])

	wantParts := 2
	if kind == "sparse" {
		wantParts = 3
	}
	switch kind {
	case "complete", "path", "cycle", "star", "wheel", "sparse":
	default:
		return nil, fmt.Errorf("ParseKind(%q): %w", spec, ErrUnknownKind)
	}
	if len(parts) != wantParts {
		return nil, fmt.Errorf("ParseKind(%q): want %d fields, got %d: %w", spec, wantParts, len(parts), ErrBadKindSpec)
	}

	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("ParseKind(%q): n: %w", spec, ErrBadKindSpec)
	}
	if n > MaxVertices {
		return nil, fmt.Errorf("ParseKind(%q): n > %d: %w: %w", spec, MaxVertices, ErrBadKindSpec, ErrTooManyVertices)
	}

	switch kind {
	case "complete":
		return Complete(n), nil
	case "path":
		return Path(n), nil
	case "cycle":
		return Cycle(n), nil
	case "star":
		return Star(n), nil
	case "wheel":
		return Wheel(n), nil
	default: // sparse
		p, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("ParseKind(%q): p: %w", spec, ErrBadKindSpec)
		}

		return RandomSparse(n, p), nil
	}
}
