// SPDX-License-Identifier: EPL-2.0

package edit

import (
	"fmt"
	"strings"

	"github.com/ik5/audcut/audio"
)

// Op names a region edit.
type Op string

const (
	OpCrop   Op = "crop"
	OpRemove Op = "remove"
)

// ParseOp parses an operation name, ignoring case and surrounding spaces.
func ParseOp(s string) (Op, error) {
	switch op := Op(strings.ToLower(strings.TrimSpace(s))); op {
	case OpCrop, OpRemove:
		return op, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOp, s)
	}
}

// Apply runs op on b with region r.
func Apply(b *audio.Buffer, op Op, r audio.Region) (*audio.Buffer, error) {
	switch op {
	case OpCrop:
		return Crop(b, r)
	case OpRemove:
		return Remove(b, r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, string(op))
	}
}
