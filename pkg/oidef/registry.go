/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package oidef

import (
	"fmt"
	"sync"
)

type schemaKey struct {
	kind ExtKind
	revn int
}

// Registry stores extension schemas keyed by (kind, revision).
//
// The intended lifecycle is populate-then-read: all registrations complete
// before concurrent lookups start. Registration is nevertheless guarded by
// an exclusive lock, so late registration does not corrupt readers.
type Registry struct {
	locker  sync.RWMutex
	schemas map[schemaKey]*Schema
	known   map[ExtKind]map[string]bool
}

// NewRegistry constructs an empty schema registry.
func NewRegistry() *Registry {
	return &Registry{
		schemas: make(map[schemaKey]*Schema),
		known:   make(map[ExtKind]map[string]bool),
	}
}

// Register parses a definition table and stores it as the schema for the
// named extension at the given revision.
//
// The name must be a well-formed extension name token naming one of the
// known kinds, the revision must be positive and the (kind, revision) pair
// must not be registered yet. On any failure no partial schema is inserted.
func (reg *Registry) Register(name string, revn int, def string) (*Schema, error) {
	if ok, err := ValidExtName(name); !ok {
		return nil, err
	}
	kind := ParseExtKind(name)
	if kind == ExtKind_null {
		return nil, ErrSchema("unknown extension «%s»", name)
	}
	if revn < 1 {
		return nil, ErrSchema("%s: revision %d out of range, must be ≥ 1", name, revn)
	}

	s := newSchema(reg, kind, revn)
	if err := parseDefTable(s, def); err != nil {
		return nil, err
	}

	reg.locker.Lock()
	defer reg.locker.Unlock()

	k := schemaKey{kind, revn}
	if _, ok := reg.schemas[k]; ok {
		return nil, ErrSchema("%v already registered", s)
	}
	reg.schemas[k] = s

	known := reg.known[kind]
	if known == nil {
		known = make(map[string]bool)
		reg.known[kind] = known
	}
	for _, key := range s.fieldsOrdered {
		known[key] = true
	}

	return s, nil
}

// Schema returns the schema registered for (kind, revn). Returns nil if
// none is registered.
func (reg *Registry) Schema(kind ExtKind, revn int) *Schema {
	reg.locker.RLock()
	defer reg.locker.RUnlock()

	return reg.schemas[schemaKey{kind, revn}]
}

// MustSchema returns the schema registered for (kind, revn). Panics if
// none is registered; for callers that require the schema to exist.
func (reg *Registry) MustSchema(kind ExtKind, revn int) *Schema {
	s := reg.Schema(kind, revn)
	if s == nil {
		panic(fmt.Errorf("no schema for %s revision %d: %w", kind.TrimString(), revn, ErrSchemaNotFoundError))
	}
	return s
}

// Schemas enumerates registered schemas. Enumeration order is undefined.
func (reg *Registry) Schemas(cb func(*Schema)) {
	reg.locker.RLock()
	defer reg.locker.RUnlock()

	for _, s := range reg.schemas {
		cb(s)
	}
}

func (reg *Registry) SchemaCount() int {
	reg.locker.RLock()
	defer reg.locker.RUnlock()

	return len(reg.schemas)
}

func (reg *Registry) knownKey(kind ExtKind, key string) bool {
	reg.locker.RLock()
	defer reg.locker.RUnlock()

	return reg.known[kind][key]
}
