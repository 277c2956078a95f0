// SPDX-License-Identifier: EPL-2.0

package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/ik5/audcut"
	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/edit"
	"github.com/ik5/audcut/formats/wav"
)

// handleEdit decodes the request body, applies one optional edit and answers
// with the result as a WAV file.
//
//	POST /edit?op=crop&start=1.5&end=4
//
// op is crop, remove, export or empty (export). start defaults to 0 and end
// to the end of the audio. The MIME hint comes from the mime query parameter
// or the Content-Type header.
func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		s.writeError(w, fmt.Errorf("%w: method %s", ErrBadRequest, r.Method), http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()

	op, region, err := parseEdit(q.Get("op"), q.Get("start"), q.Get("end"))
	if err != nil {
		s.writeError(w, err, 0)
		return
	}

	hint := q.Get("mime")
	if hint == "" {
		hint = r.Header.Get("Content-Type")
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.config.MaxUploadBytes))
	if err != nil {
		s.writeError(w, err, 0)
		return
	}

	buf, err := audcut.DecodeWith(s.registry, bytes.NewReader(data), hint)
	if err != nil {
		s.writeError(w, err, 0)
		return
	}
	s.debugf("decoded %d bytes (%s): %d Hz, %d channels, %d frames",
		len(data), hint, buf.SampleRate, buf.NumChannels(), buf.NumFrames())

	if op != "" {
		buf, err = edit.Apply(buf, op, region)
		if err != nil {
			s.writeError(w, err, 0)
			return
		}
	}

	out, err := wav.Encode(buf)
	if err != nil {
		s.writeError(w, err, 0)
		return
	}

	w.Header().Set("Content-Type", "audio/wav")
	w.Header().Set("Content-Length", strconv.Itoa(len(out)))
	w.Header().Set("X-Audio-Frames", strconv.Itoa(buf.NumFrames()))
	if _, err := w.Write(out); err != nil {
		log.Printf("Error writing edit response: %v", err)
	}
}

// handleFormats lists the decodable format keys.
func (s *Server) handleFormats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		s.writeError(w, fmt.Errorf("%w: method %s", ErrBadRequest, r.Method), http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.registry.Formats()); err != nil {
		log.Printf("Error writing formats: %v", err)
	}
}

// parseEdit reads the op and region parameters shared by HTTP and websocket
// requests. An empty op, or "export", means no edit.
func parseEdit(opName, start, end string) (edit.Op, audio.Region, error) {
	region := audio.Region{Start: 0, End: math.Inf(1)}

	var op edit.Op
	if opName != "" && opName != TypeExport {
		var err error
		if op, err = edit.ParseOp(opName); err != nil {
			return "", region, err
		}
	}

	if start != "" {
		v, err := strconv.ParseFloat(start, 64)
		if err != nil {
			return "", region, fmt.Errorf("%w: start %q", ErrBadRequest, start)
		}
		region.Start = v
	}
	if end != "" {
		v, err := strconv.ParseFloat(end, 64)
		if err != nil {
			return "", region, fmt.Errorf("%w: end %q", ErrBadRequest, end)
		}
		region.End = v
	}

	return op, region, nil
}

// writeError answers with a JSON ErrorPayload. A zero status is derived
// from the error.
func (s *Server) writeError(w http.ResponseWriter, err error, status int) {
	kind, derived := classify(err)
	if status == 0 {
		status = derived
	}

	s.debugf("request failed (%s): %v", kind, err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorPayload{Kind: kind, Message: err.Error()}); err != nil {
		log.Printf("Error writing error response: %v", err)
	}
}
