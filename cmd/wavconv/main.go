// SPDX-License-Identifier: EPL-2.0

// Command wavconv inspects WAV files and converts WAV, AIFF, MP3 and Ogg
// Vorbis input to WAV.
//
//	wavconv info <file.wav>...
//	wavconv convert [-depth N] [-float] [-buffer N] <input> <output.wav>
//	wavconv formats
//
// Convert defaults come from WAVCONV_BYTE_DEPTH, WAVCONV_FLOAT and
// WAVCONV_BUFFER_FRAMES, read from the environment or a .env file.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"github.com/ik5/wavio/audio"
	"github.com/ik5/wavio/formats/aiff"
	"github.com/ik5/wavio/formats/mp3"
	"github.com/ik5/wavio/formats/vorbis"
	"github.com/ik5/wavio/formats/wav"
)

const usage = `usage:
  wavconv [-env file] [-v] info <file.wav>...
  wavconv [-env file] [-v] convert [-depth N] [-float] [-buffer N] <input> <output.wav>
  wavconv formats`

func main() {
	log.SetFlags(0)
	log.SetPrefix("wavconv: ")

	if err := run(os.Args[1:], os.Stdout, os.Getenv); err != nil {
		log.Fatalln("error:", err)
	}
}

func newRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	return reg
}

func run(args []string, stdout io.Writer, getenv func(string) string) error {
	fs := flag.NewFlagSet("wavconv", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	envFile := fs.String("env", defaultEnvFile, "file with WAVCONV_* defaults")
	verbose := fs.Bool("v", false, "log WAV session details to stderr")

	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, usage)
	}

	if fs.NArg() == 0 {
		return errors.New(usage)
	}

	var opts []wav.Option
	if *verbose {
		opts = append(opts, wav.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "info":
		return runInfo(rest, stdout, opts)
	case "convert":
		cfg, err := loadConfig(*envFile, getenv)
		if err != nil {
			return err
		}
		return runConvert(rest, stdout, cfg, opts)
	case "formats":
		for _, f := range newRegistry().Formats() {
			fmt.Fprintln(stdout, f)
		}
		return nil
	default:
		return errors.Errorf("unknown command %q\n%s", cmd, usage)
	}
}
