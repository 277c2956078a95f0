// SPDX-License-Identifier: EPL-2.0

// Package server exposes the decode, edit and encode pipeline over HTTP.
//
// Endpoints:
//   - POST /edit?op=crop|remove|export&start=S&end=E with the audio file as
//     the body; answers with the result as audio/wav
//   - GET /formats lists the decodable format keys
//   - GET /ws opens an editing session over a websocket
//
// A websocket session holds one buffer and applies every edit to the result
// of the previous one. Text frames carry a Message:
//
//	{"type": "load", "payload": {"mime": "audio/mpeg"}}
//	{"type": "crop", "payload": {"start": 1.5, "end": 4}}
//	{"type": "remove", "payload": {"start": 0, "end": 0.5}}
//	{"type": "export"}
//
// A binary frame from the client is the file to load. Edits and exports are
// answered with an info message followed by the WAV file as a binary frame.
// Failures produce an error message with a kind such as unsupported_format,
// and the session stays open.
package server
