/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package oidef

import (
	"errors"
	"fmt"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrSchemaError = errors.New("invalid schema")

func ErrSchema(msg string, args ...any) error {
	return EnrichError(ErrSchemaError, msg, args...)
}

var ErrSchemaNotFoundError = errors.New("schema not found")

func ErrSchemaNotFound(kind ExtKind, revn int) error {
	return EnrichError(ErrSchemaNotFoundError, "%s revision %d", kind.TrimString(), revn)
}
