/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package oidef

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Definition-table grammar.
//
// A table is two sections of definition rows separated by a divider row of
// dashes: keyword rows before the divider, column rows after. Each row is
// `NAME FORMAT DESCRIPTION…` where the description may end in a bracketed
// unit, e.g. `EFF_WAVE D(W) effective wavelength of channel [m]`.

var defLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Divider", Pattern: `-{3,}`},
	{Name: "Unit", Pattern: `\[[^\]\r\n]*\]`},
	{Name: "Word", Pattern: `[^\s\[\]]+`},
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

type defRowAST struct {
	Name   string   `parser:"@Word"`
	Format string   `parser:"@Word"`
	Descr  []string `parser:"(@Word | @Unit)*"`
}

type defTableAST struct {
	Keywords []*defRowAST `parser:"(@@ EOL)*"`
	Divider  string       `parser:"@Divider EOL"`
	Columns  []*defRowAST `parser:"(@@ EOL)*"`
}

var defParser = participle.MustBuild[defTableAST](
	participle.Lexer(defLexer),
	participle.Elide("Whitespace"),
)

// parseDefTable parses a definition table and appends the resulting field
// definitions to the schema in declaration order, keyword rows first.
func parseDefTable(s *Schema, def string) error {
	ast, err := defParser.ParseString(s.String(), normalizeDefText(def))
	if err != nil {
		return ErrSchema("%v: %s", s, err)
	}

	for _, row := range ast.Keywords {
		if err := analyseDefRow(s, FieldRole_Keyword, row); err != nil {
			return err
		}
	}
	for _, row := range ast.Columns {
		if err := analyseDefRow(s, FieldRole_Column, row); err != nil {
			return err
		}
	}
	return nil
}

// Blank lines carry no rows; strip them so the grammar only sees one EOL
// per row. A missing final newline is tolerated.
func normalizeDefText(def string) string {
	lines := strings.Split(def, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n") + "\n"
}

func analyseDefRow(s *Schema, role FieldRole, row *defRowAST) error {
	name := strings.ToUpper(row.Name)
	if len(name) > MaxFieldNameLen {
		return ErrSchema("%v: field name «%s» too long (%d chars, max is %d)", s, name, len(name), MaxFieldNameLen)
	}

	key := NormalizeKey(name)
	if name == RevnName {
		key = RevnKey
	}

	dk, required, mult, err := parseFormat(s, role, name, row.Format)
	if err != nil {
		return err
	}

	descr, unit := splitDescr(row.Descr)

	return s.appendField(newFieldDef(name, key, role, dk, required, mult, unit, descr))
}

// parseFormat analyses a FORMAT token: an optional `?` prefix, one
// elementary-type letter and, for column rows only, a parenthesized
// dimension token (a positive integer, `W` or `W,W`).
func parseFormat(s *Schema, role FieldRole, name, format string) (dk DataKind, required bool, mult int, err error) {
	required = true
	t := format
	if strings.HasPrefix(t, "?") {
		required = false
		t = t[1:]
	}
	if t == "" {
		return DataKind_null, false, 0, ErrSchema("%v: field «%s» has empty format", s, name)
	}

	dk = DataKindByLetter(rune(t[0]))
	if dk == DataKind_null {
		return DataKind_null, false, 0, ErrSchema("%v: field «%s» has unrecognized type letter «%c»", s, name, t[0])
	}
	dim := t[1:]

	if role == FieldRole_Keyword {
		if dim != "" {
			return DataKind_null, false, 0, ErrSchema("%v: keyword «%s» must not carry dimension token «%s»", s, name, dim)
		}
		return dk, required, 0, nil
	}

	if !strings.HasPrefix(dim, "(") || !strings.HasSuffix(dim, ")") {
		return DataKind_null, false, 0, ErrSchema("%v: column «%s» has malformed dimension token «%s»", s, name, dim)
	}
	switch body := dim[1 : len(dim)-1]; body {
	case "W":
		mult = MultWave
	case "W,W":
		mult = MultDoubleWave
	default:
		n, e := strconv.Atoi(body)
		if (e != nil) || (n < 1) {
			return DataKind_null, false, 0, ErrSchema("%v: column «%s» has malformed dimension token «%s»", s, name, dim)
		}
		mult = n
	}
	return dk, required, mult, nil
}

// splitDescr joins description tokens and peels a trailing bracketed unit,
// if any.
func splitDescr(tokens []string) (descr, unit string) {
	if n := len(tokens); n > 0 {
		if last := tokens[n-1]; strings.HasPrefix(last, "[") && strings.HasSuffix(last, "]") {
			unit = last[1 : len(last)-1]
			tokens = tokens[:n-1]
		}
	}
	return strings.Join(tokens, " "), unit
}
