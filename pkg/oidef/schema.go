/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package oidef

import "fmt"

// Schema describes the field layout of one extension kind at one format
// revision. Schemas are built by Registry.Register and immutable afterwards.
type Schema struct {
	reg           *Registry
	kind          ExtKind
	revn          int
	fields        map[string]*FieldDef
	fieldsOrdered []string
}

func newSchema(reg *Registry, kind ExtKind, revn int) *Schema {
	return &Schema{
		reg:    reg,
		kind:   kind,
		revn:   revn,
		fields: make(map[string]*FieldDef),
	}
}

func (s *Schema) Kind() ExtKind { return s.kind }

func (s *Schema) Revn() int { return s.revn }

// Field returns the definition for a field key. Returns nil if the key is
// not declared at this revision.
func (s *Schema) Field(key string) *FieldDef {
	return s.fields[key]
}

// Fields enumerates field definitions in declaration order.
func (s *Schema) Fields(cb func(*FieldDef)) {
	for _, key := range s.fieldsOrdered {
		cb(s.fields[key])
	}
}

func (s *Schema) FieldCount() int {
	return len(s.fieldsOrdered)
}

// KnownKey returns whether the key is declared by any registered revision
// of this schema's kind. Used for cross-revision tolerance when cloning.
func (s *Schema) KnownKey(key string) bool {
	return s.reg.knownKey(s.kind, key)
}

func (s *Schema) String() string {
	return fmt.Sprintf("%s (revision %d)", s.kind.Name(), s.revn)
}

func (s *Schema) appendField(f *FieldDef) error {
	if _, ok := s.fields[f.key]; ok {
		return ErrSchema("%v: field «%s» redeclared", s, f.name)
	}
	s.fields[f.key] = f
	s.fieldsOrdered = append(s.fieldsOrdered, f.key)
	return nil
}
