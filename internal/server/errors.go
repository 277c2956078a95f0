// SPDX-License-Identifier: EPL-2.0

package server

import (
	"errors"
	"net/http"

	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/edit"
)

var (
	// ErrBadRequest marks malformed parameters or messages.
	ErrBadRequest = errors.New("bad request")

	// ErrNoAudio is returned when a websocket session is edited before a load.
	ErrNoAudio = edit.ErrNoBuffer
)

// Error kinds reported to clients.
const (
	KindMalformedBuffer   = "malformed_buffer"
	KindUnsupportedFormat = "unsupported_format"
	KindCorruptData       = "corrupt_data"
	KindBadRequest        = "bad_request"
	KindNoAudio           = "no_audio"
	KindTooLarge          = "too_large"
	KindInternal          = "internal"
)

// classify maps an error onto a client-facing kind and HTTP status.
func classify(err error) (string, int) {
	var tooLarge *http.MaxBytesError

	switch {
	case errors.As(err, &tooLarge):
		return KindTooLarge, http.StatusRequestEntityTooLarge
	case errors.Is(err, audio.ErrUnsupportedFormat):
		return KindUnsupportedFormat, http.StatusUnsupportedMediaType
	case errors.Is(err, audio.ErrCorruptData):
		return KindCorruptData, http.StatusUnprocessableEntity
	case errors.Is(err, audio.ErrMalformedBuffer):
		return KindMalformedBuffer, http.StatusUnprocessableEntity
	case errors.Is(err, ErrBadRequest), errors.Is(err, edit.ErrUnknownOp):
		return KindBadRequest, http.StatusBadRequest
	case errors.Is(err, ErrNoAudio):
		return KindNoAudio, http.StatusConflict
	default:
		return KindInternal, http.StatusInternalServerError
	}
}
