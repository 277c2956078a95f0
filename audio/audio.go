// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"mime"
	"sort"
	"strings"
	"sync"
)

// Source is a decoded PCM stream, as produced by a format decoder.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples, nominally in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg").
// Aliases map MIME types and file extensions onto format keys.
type Registry struct {
	codecs  map[string]Decoder
	aliases map[string]string

	mtx *sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs:  make(map[string]Decoder),
		aliases: make(map[string]string),
		mtx:     &sync.RWMutex{},
	}
}

// Register stores d under format. Any aliases (MIME types, extensions with
// or without the leading dot) resolve to the same format in Lookup.
func (r *Registry) Register(format string, d Decoder, aliases ...string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	format = normalizeHint(format)
	r.codecs[format] = d
	for _, a := range aliases {
		r.aliases[normalizeHint(a)] = format
	}
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	d, ok := r.codecs[normalizeHint(format)]
	return d, ok
}

// Lookup resolves a hint that may be a format key, a file extension or a
// MIME type (parameters are ignored) and returns the format key with its decoder.
func (r *Registry) Lookup(hint string) (string, Decoder, bool) {
	key := normalizeHint(hint)
	if key == "" {
		return "", nil, false
	}

	r.mtx.RLock()
	defer r.mtx.RUnlock()

	if d, ok := r.codecs[key]; ok {
		return key, d, true
	}
	if format, ok := r.aliases[key]; ok {
		d, ok := r.codecs[format]
		return format, d, ok
	}
	return "", nil, false
}

// Formats returns the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	formats := make([]string, 0, len(r.codecs))
	for f := range r.codecs {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}

func normalizeHint(hint string) string {
	hint = strings.TrimSpace(hint)
	if strings.Contains(hint, "/") {
		if mt, _, err := mime.ParseMediaType(hint); err == nil {
			hint = mt
		}
	}
	return strings.ToLower(strings.TrimPrefix(hint, "."))
}
