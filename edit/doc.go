// SPDX-License-Identifier: EPL-2.0

// Package edit implements sample-accurate region edits on audio.Buffer values.
//
// Crop keeps the selected frames, Remove drops them and joins what is left:
//
//	clip, err := edit.Crop(buf, audio.Region{Start: 1.5, End: 4})
//	rest, err := edit.Remove(buf, audio.Region{Start: 1.5, End: 4})
//
// Both are pure: the input buffer is not modified and the output never shares
// storage with it. Regions are clamped to the buffer, so the only failure is
// an input that does not pass audio.Buffer.Validate.
//
// A Session applies edits one after another, each on the previous result.
package edit
