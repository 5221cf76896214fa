// seehuhn.de/go/colorimetry - colour space conversions and colour differences
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package colorimetry

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every error which reports invalid
// arguments, for use with [errors.Is].
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError is returned when an operation is called with a NaN or
// infinite component, a value outside the domain of a colour space, an
// empty list of colours, or an unknown name.
type InvalidInputError struct {
	Op      string
	Field   string
	Message string

	// Err (optional) is the underlying error.
	Err error
}

func (e *InvalidInputError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s: %s", e.Op, e.Field, e.Message)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is allows to use [errors.Is] with [ErrInvalidInput] and with
// *InvalidInputError targets.
func (e *InvalidInputError) Is(target error) bool {
	if target == ErrInvalidInput {
		return true
	}
	_, ok := target.(*InvalidInputError)
	return ok
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

// NewInvalidInputError creates a new InvalidInputError.
// The sub-packages use this to report errors in the same way as this
// package.
func NewInvalidInputError(op, field, format string, args ...any) *InvalidInputError {
	return &InvalidInputError{
		Op:      op,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}
