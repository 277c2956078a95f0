// SPDX-License-Identifier: EPL-2.0

package edit

import (
	"sync"

	"github.com/ik5/audcut/audio"
)

// Session threads a buffer through a sequence of edits: every edit is applied
// to the result of the previous one. Buffers are immutable, so the lock only
// guards which buffer is current.
type Session struct {
	mtx   sync.RWMutex
	buf   *audio.Buffer
	edits int
}

// NewSession starts a session on a copy of b. A nil b leaves the session
// empty until Load.
func NewSession(b *audio.Buffer) *Session {
	return &Session{buf: b.Clone()}
}

// Load replaces the current buffer with a copy of b and resets the edit count.
func (s *Session) Load(b *audio.Buffer) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.buf = b.Clone()
	s.edits = 0
}

// Buffer returns the current buffer, or nil when nothing is loaded.
func (s *Session) Buffer() *audio.Buffer {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return s.buf
}

// Edits returns how many edits were applied since the last Load.
func (s *Session) Edits() int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return s.edits
}

// Crop crops the current buffer to r.
func (s *Session) Crop(r audio.Region) (*audio.Buffer, error) {
	return s.Apply(OpCrop, r)
}

// Remove cuts r out of the current buffer.
func (s *Session) Remove(r audio.Region) (*audio.Buffer, error) {
	return s.Apply(OpRemove, r)
}

// Apply runs op on the current buffer and makes the result current.
// On failure the current buffer is left unchanged.
func (s *Session) Apply(op Op, r audio.Region) (*audio.Buffer, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.buf == nil {
		return nil, ErrNoBuffer
	}

	out, err := Apply(s.buf, op, r)
	if err != nil {
		return nil, err
	}

	s.buf = out
	s.edits++
	return out, nil
}
