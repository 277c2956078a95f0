// SPDX-License-Identifier: EPL-2.0

package edit

import "errors"

var (
	// ErrUnknownOp is returned for an operation other than crop or remove.
	ErrUnknownOp = errors.New("unknown edit operation")

	// ErrNoBuffer is returned when a Session is edited before it holds audio.
	ErrNoBuffer = errors.New("session has no audio loaded")
)
