// SPDX-License-Identifier: EPL-2.0

package server

import (
	"encoding/json"

	"github.com/ik5/audcut/audio"
)

// Message types exchanged on the websocket.
const (
	TypeHello    = "hello"
	TypeLoad     = "load"
	TypeLoaded   = "loaded"
	TypeCrop     = "crop"
	TypeRemove   = "remove"
	TypeEdited   = "edited"
	TypeExport   = "export"
	TypeExported = "exported"
	TypeError    = "error"
)

// Message is the envelope of every text frame.
type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// inbound keeps the payload raw until the type is known.
type inbound struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hello is sent once a session is open.
type Hello struct {
	Session string   `json:"session"`
	Server  string   `json:"server"`
	Formats []string `json:"formats"`
}

// LoadRequest announces the MIME type of the next binary frame.
type LoadRequest struct {
	Mime string `json:"mime"`
}

// RegionRequest carries a selection in seconds. A nil End selects up to the
// end of the audio.
type RegionRequest struct {
	Start float64  `json:"start"`
	End   *float64 `json:"end,omitempty"`
}

// BufferInfo describes the current buffer of a session.
type BufferInfo struct {
	Session    string  `json:"session"`
	SampleRate int     `json:"sample_rate"`
	Channels   int     `json:"channels"`
	Frames     int     `json:"frames"`
	Seconds    float64 `json:"seconds"`
	Edits      int     `json:"edits"`
	Bytes      int     `json:"bytes,omitempty"`
}

// ErrorPayload reports a failed request.
type ErrorPayload struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func bufferInfo(id string, b *audio.Buffer, edits int) BufferInfo {
	return BufferInfo{
		Session:    id,
		SampleRate: b.SampleRate,
		Channels:   b.NumChannels(),
		Frames:     b.NumFrames(),
		Seconds:    b.Seconds(),
		Edits:      edits,
	}
}
