// SPDX-License-Identifier: EPL-2.0

package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/ik5/audcut"
	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/edit"
	"github.com/ik5/audcut/formats/wav"
)

// session is one websocket client editing one piece of audio.
type session struct {
	id   string
	conn *websocket.Conn
	edit *edit.Session

	// MIME hint for the next binary frame
	mime string
}

// handleWebSocket handles WebSocket connections
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if !s.track() {
		http.Error(w, "shutting down", http.StatusServiceUnavailable)
		return
	}
	defer s.wg.Done()

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	log.Printf("New WebSocket connection from %s", r.RemoteAddr)

	s.handleConnection(conn)
}

// handleConnection serves one session until the client goes away.
//
// Text frames carry a Message. A binary frame is the audio file to load,
// decoded with the MIME type of the last load message. Every edit and export
// is answered with an info message followed by the WAV file as a binary frame.
func (s *Server) handleConnection(conn *websocket.Conn) {
	defer conn.Close()

	conn.SetReadLimit(s.config.MaxUploadBytes)

	sess := &session{
		id:   uuid.New().String(),
		conn: conn,
		edit: edit.NewSession(nil),
	}

	if !s.addSession(sess) {
		log.Printf("Rejecting session %s: server is shutting down", sess.id)
		return
	}

	defer func() {
		s.sessionsMu.Lock()
		delete(s.sessions, sess.id)
		s.sessionsMu.Unlock()
		log.Printf("Session closed: %s", sess.id)
	}()

	hello := Hello{Session: sess.id, Server: s.serverID, Formats: s.registry.Formats()}
	if err := s.send(sess, TypeHello, hello); err != nil {
		log.Printf("Error sending hello: %v", err)
		return
	}

	for {
		kind, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			return
		}

		switch kind {
		case websocket.BinaryMessage:
			err = s.handleLoad(sess, data)
		case websocket.TextMessage:
			err = s.handleMessage(sess, data)
		default:
			continue
		}

		if err == nil {
			continue
		}

		// Request failures are reported and the session stays open;
		// only write failures end it.
		var cerr *connError
		if errors.As(err, &cerr) {
			log.Printf("Error writing to session %s: %v", sess.id, cerr.err)
			return
		}
		if err := s.sendError(sess, err); err != nil {
			log.Printf("Error writing to session %s: %v", sess.id, err)
			return
		}
	}
}

func (s *Server) handleMessage(sess *session, data []byte) error {
	var msg inbound
	if err := json.Unmarshal(data, &msg); err != nil {
		return fmt.Errorf("%w: %w", ErrBadRequest, err)
	}

	s.debugf("session %s: %s", sess.id, msg.Type)

	switch msg.Type {
	case TypeLoad:
		var req LoadRequest
		if err := decodePayload(msg.Payload, &req); err != nil {
			return err
		}
		sess.mime = req.Mime
		return nil

	case TypeCrop, TypeRemove:
		var req RegionRequest
		if err := decodePayload(msg.Payload, &req); err != nil {
			return err
		}
		op, err := edit.ParseOp(msg.Type)
		if err != nil {
			return err
		}
		if _, err := sess.edit.Apply(op, regionOf(req)); err != nil {
			return err
		}
		return s.sendBuffer(sess, TypeEdited)

	case TypeExport:
		if sess.edit.Buffer() == nil {
			return ErrNoAudio
		}
		return s.sendBuffer(sess, TypeExported)

	default:
		return fmt.Errorf("%w: unknown message type %q", ErrBadRequest, msg.Type)
	}
}

// handleLoad decodes a binary frame and makes it the session's buffer.
func (s *Server) handleLoad(sess *session, data []byte) error {
	buf, err := audcut.DecodeWith(s.registry, bytes.NewReader(data), sess.mime)
	if err != nil {
		return err
	}

	sess.edit.Load(buf)
	log.Printf("Session %s loaded %d Hz, %d channels, %d frames",
		sess.id, buf.SampleRate, buf.NumChannels(), buf.NumFrames())

	return s.send(sess, TypeLoaded, bufferInfo(sess.id, buf, 0))
}

// sendBuffer sends the info message of type typ followed by the encoded
// current buffer.
func (s *Server) sendBuffer(sess *session, typ string) error {
	buf := sess.edit.Buffer()

	out, err := wav.Encode(buf)
	if err != nil {
		return err
	}

	info := bufferInfo(sess.id, buf, sess.edit.Edits())
	info.Bytes = len(out)
	if err := s.send(sess, typ, info); err != nil {
		return err
	}

	if err := sess.conn.WriteMessage(websocket.BinaryMessage, out); err != nil {
		return &connError{err: err}
	}
	return nil
}

func (s *Server) sendError(sess *session, err error) error {
	kind, _ := classify(err)
	s.debugf("session %s failed (%s): %v", sess.id, kind, err)

	return s.send(sess, TypeError, ErrorPayload{Kind: kind, Message: err.Error()})
}

// send writes a Message as a text frame.
func (s *Server) send(sess *session, typ string, payload any) error {
	data, err := json.Marshal(Message{Type: typ, Payload: payload})
	if err != nil {
		return fmt.Errorf("marshal %s: %w", typ, err)
	}

	if err := sess.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return &connError{err: err}
	}
	return nil
}

// connError marks a failed write; the connection is unusable after it.
type connError struct {
	err error
}

func (e *connError) Error() string { return e.err.Error() }
func (e *connError) Unwrap() error { return e.err }

// regionOf converts a request region; a missing end means the end of the audio.
func regionOf(req RegionRequest) audio.Region {
	r := audio.Region{Start: req.Start, End: math.Inf(1)}
	if req.End != nil {
		r.End = *req.End
	}
	return r
}

// decodePayload unmarshals an optional payload into dst.
func decodePayload(raw json.RawMessage, dst any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	return nil
}
