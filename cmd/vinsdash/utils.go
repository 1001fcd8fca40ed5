package main

import (
	"fmt"
	"strings"
)

// parseRenameSpecs parses repeated old=new flag values into a rename map.
func parseRenameSpecs(specs []string) (map[string]string, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	rename := make(map[string]string, len(specs))
	for _, spec := range specs {
		from, to, ok := strings.Cut(spec, "=")
		if !ok || from == "" || to == "" {
			return nil, fmt.Errorf("invalid rename %q, expected old=new", spec)
		}
		rename[from] = to
	}
	return rename, nil
}
