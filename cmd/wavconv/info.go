// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/ik5/wavio/formats/wav"
)

func runInfo(paths []string, stdout io.Writer, opts []wav.Option) error {
	if len(paths) == 0 {
		return errors.New("info: no input files")
	}

	for _, path := range paths {
		md, err := readMetadata(path, opts)
		if err != nil {
			return errors.Wrapf(err, "info %s", path)
		}

		var duration time.Duration
		if md.SampleRate > 0 {
			duration = time.Duration(md.NumSamples) * time.Second / time.Duration(md.SampleRate)
		}

		fmt.Fprintf(stdout, "%s: %s, %d frames (%s), %d data bytes", path, md.Format, md.NumSamples, duration, md.SampleDataSize)
		if md.HasFact {
			fmt.Fprintf(stdout, ", fact %d", md.FactSamples)
		}
		fmt.Fprintln(stdout)
	}

	return nil
}

func readMetadata(path string, opts []wav.Option) (wav.Metadata, error) {
	r, err := wav.Open(path, opts...)
	if err != nil {
		return wav.Metadata{}, err
	}

	if err := r.PrepareToRead(); err != nil {
		return wav.Metadata{}, err
	}
	defer r.Finish()

	return r.Metadata()
}
