// SPDX-License-Identifier: EPL-2.0

// Command audcut crops, removes and exports regions of audio files as
// 16-bit PCM WAV.
//
//	audcut info input.mp3
//	audcut crop -start 1.5 -end 4 -o clip.wav input.mp3
//	audcut remove -start 0 -end 0.25 -o trimmed.wav input.flac
//	audcut export -o input.wav input.ogg
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/ik5/audcut"
	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/edit"
	"github.com/ik5/audcut/formats/wav"
)

const usage = `usage: audcut <command> [flags] <input>

commands:
  info     print format, channels, sample rate and duration
  crop     keep only [-start, -end)
  remove   cut [-start, -end) out and join the rest
  export   re-encode the whole input

input may be "-" for stdin. Run "audcut <command> -h" for flags.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	cmd, args := args[0], args[1:]

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	mimeHint := fs.String("mime", "", "input MIME type or extension (default: input file extension)")

	var (
		start, end *float64
		outPath    *string
	)
	switch cmd {
	case "info":
	case string(edit.OpCrop), string(edit.OpRemove):
		start = fs.Float64("start", 0, "region start in seconds")
		end = fs.Float64("end", math.Inf(1), "region end in seconds (default: end of input)")
		fallthrough
	case "export":
		outPath = fs.String("o", "-", `output WAV file, "-" for stdout`)
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", cmd, usage)
		return 2
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(stderr, "%s: expected exactly one input\n", cmd)
		return 2
	}

	inPath := fs.Arg(0)
	data, err := readInput(inPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", cmd, err)
		return 1
	}

	hint := *mimeHint
	if hint == "" && inPath != "-" {
		hint = filepath.Ext(inPath)
	}

	buf, err := audcut.DecodeBytes(data, hint)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", cmd, err)
		return 1
	}

	if cmd == "info" {
		printInfo(stdout, inPath, data, buf)
		return 0
	}

	if start != nil {
		// bounds outside the file select up to its edges
		region := audio.Region{Start: max(*start, 0), End: min(*end, buf.Seconds())}

		buf, err = edit.Apply(buf, edit.Op(cmd), region)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", cmd, err)
			return 1
		}
		fmt.Fprintf(stderr, "%s: %.3fs selected\n", cmd, region.Len())
	}

	if err := writeOutput(*outPath, stdout, buf); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", cmd, err)
		return 1
	}

	if *outPath != "-" {
		fmt.Fprintf(stderr, "Wrote: %s (%d frames, %v)\n", *outPath, buf.NumFrames(), buf.Duration())
	}
	return 0
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, stdout io.Writer, buf *audio.Buffer) error {
	if path == "-" || path == "" {
		return wav.Write(stdout, buf)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := wav.Write(f, buf); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printInfo(w io.Writer, name string, data []byte, buf *audio.Buffer) {
	fmt.Fprintf(w, "file:        %s\n", name)
	fmt.Fprintf(w, "format:      %s\n", formatName(data))
	fmt.Fprintf(w, "sample rate: %d Hz\n", buf.SampleRate)
	fmt.Fprintf(w, "channels:    %d\n", buf.NumChannels())
	fmt.Fprintf(w, "frames:      %d\n", buf.NumFrames())
	fmt.Fprintf(w, "duration:    %v\n", buf.Duration())

	// WAV headers carry the stored bit depth
	if h, err := wav.ReadHeader(bytes.NewReader(data)); err == nil {
		fmt.Fprintf(w, "bit depth:   %d\n", h.BitsPerSample)
	}
}

func formatName(data []byte) string {
	if f := audio.Sniff(data[:min(len(data), audio.SniffLen)]); f != "" {
		return f
	}
	return "unknown"
}
