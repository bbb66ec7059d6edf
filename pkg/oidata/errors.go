/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package oidata

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

var ErrValidationError = errors.New("not valid")

func ErrValidation(msg string, args ...any) error {
	return EnrichError(ErrValidationError, msg, args...)
}

var ErrReferenceError = errors.New("invalid reference")

func ErrReference(msg string, args ...any) error {
	return EnrichError(ErrReferenceError, msg, args...)
}

var ErrSelectionError = errors.New("no match")

func ErrSelection(msg string, args ...any) error {
	return EnrichError(ErrSelectionError, msg, args...)
}
