// SPDX-License-Identifier: EPL-2.0

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/ik5/wavio"
	"github.com/ik5/wavio/formats/wav"
)

func runConvert(args []string, stdout io.Writer, cfg config, opts []wav.Option) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	depth := fs.Int("depth", cfg.ByteDepth, "output bytes per sample")
	asFloat := fs.Bool("float", cfg.Float, "write IEEE float samples")
	buffer := fs.Int("buffer", cfg.BufferFrames, "frames per read")

	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "convert")
	}

	if fs.NArg() != 2 {
		return errors.New("convert: need <input> and <output.wav>")
	}
	inPath, outPath := fs.Arg(0), fs.Arg(1)

	dec, ok := newRegistry().ForPath(inPath)
	if !ok {
		return errors.Errorf("convert: unsupported input format %q", filepath.Ext(inPath))
	}

	if err := wavio.PreflightWritable(outPath); err != nil {
		return errors.Wrap(err, "convert")
	}

	in, err := os.Open(inPath)
	if err != nil {
		return errors.Wrap(err, "convert")
	}

	src, err := dec.Decode(in)
	if err != nil {
		in.Close()
		return errors.Wrapf(err, "decoding %s", inPath)
	}

	out, err := os.Create(outPath)
	if err != nil {
		src.Close()
		return errors.Wrap(err, "convert")
	}

	target := wavio.Target{ByteDepth: *depth, SamplesAreInts: !*asFloat, BufferFrames: *buffer}
	// Convert closes src, which closes in
	frames, err := wavio.Convert(out, src, target, opts...)
	if err != nil {
		return errors.Wrapf(err, "converting %s to %s", inPath, outPath)
	}

	fmt.Fprintf(stdout, "wrote %s: %d frames\n", outPath, frames)
	return nil
}
