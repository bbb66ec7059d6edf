/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package oidef

import (
	"embed"
	"strconv"
	"strings"
)

//go:embed defs/*.def
var defsFS embed.FS

// Provide constructs a registry preloaded with the published OI-FITS table
// definitions (revisions 1 and 2 where the standard defines both).
func Provide() (*Registry, error) {
	reg := NewRegistry()

	entries, err := defsFS.ReadDir("defs")
	if err != nil {
		// embedded directory, unreachable unless the build is broken
		return nil, err
	}
	for _, e := range entries {
		name, revn, err := parseDefFileName(e.Name())
		if err != nil {
			return nil, err
		}
		content, err := defsFS.ReadFile("defs/" + e.Name())
		if err != nil {
			return nil, err
		}
		if _, err := reg.Register(name, revn, string(content)); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// Definition files are named `<extension>.<revision>.def`, lower-case,
// e.g. `oi_vis2.2.def`.
func parseDefFileName(fileName string) (name string, revn int, err error) {
	base := strings.TrimSuffix(fileName, ".def")
	dot := strings.LastIndex(base, ".")
	if dot < 0 {
		return "", 0, ErrSchema("definition file «%s» has no revision suffix", fileName)
	}
	revn, err = strconv.Atoi(base[dot+1:])
	if err != nil {
		return "", 0, ErrSchema("definition file «%s» has malformed revision suffix", fileName)
	}
	return strings.ToUpper(base[:dot]), revn, nil
}
