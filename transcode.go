// SPDX-License-Identifier: EPL-2.0

package wavio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/wavio/audio"
	"github.com/ik5/wavio/formats/wav"
)

// DefaultBufferFrames is the number of frames moved per read when the caller
// does not choose.
const DefaultBufferFrames = 4096

// Transcode reads src until io.EOF and appends every frame to dst, which must
// already have started writing. It returns the number of frames written by
// this call. The source must match the writer's channel count and sample
// rate. Transcode neither finishes dst nor closes src.
func Transcode(dst *wav.Writer, src audio.Source, bufFrames int) (uint32, error) {
	if src == nil {
		return 0, ErrNilSource
	}

	f := dst.Format()
	if src.Channels() != f.NumChannels {
		return 0, fmt.Errorf("%w: source has %d, WAV has %d", ErrChannelMismatch, src.Channels(), f.NumChannels)
	}
	if src.SampleRate() != int(f.SampleRate) {
		return 0, fmt.Errorf("%w: source is %d Hz, WAV is %d Hz", ErrSampleRateMismatch, src.SampleRate(), f.SampleRate)
	}

	if bufFrames <= 0 {
		bufFrames = DefaultBufferFrames
	}

	buf := make([]int16, bufFrames*f.NumChannels)
	start := dst.NumSamplesWritten()

	for {
		n, err := src.ReadInt16s(buf)
		if n > 0 {
			if werr := dst.WriteFramesInt16(buf[:n]); werr != nil {
				return dst.NumSamplesWritten() - start, fmt.Errorf("writing frames: %w", werr)
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return dst.NumSamplesWritten() - start, fmt.Errorf("reading source: %w", err)
		}
	}

	return dst.NumSamplesWritten() - start, nil
}

// Target selects the sample layout Convert writes.
type Target struct {
	ByteDepth      int
	SamplesAreInts bool
	BufferFrames   int // 0 means DefaultBufferFrames
}

// Convert writes src as a complete WAV file to store in the layout t names,
// taking the sample rate and channel count from src. It owns both ends: the
// store is finalized and closed, and src is closed, whatever the outcome.
func Convert(store wav.WriteStore, src audio.Source, t Target, opts ...wav.Option) (frames uint32, err error) {
	if src == nil {
		return 0, ErrNilSource
	}

	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing source: %w", cerr)
		}
	}()

	cfg := wav.Format{
		SampleRate:     uint32(src.SampleRate()),
		NumChannels:    src.Channels(),
		SamplesAreInts: t.SamplesAreInts,
		ByteDepth:      t.ByteDepth,
	}

	w, err := wav.NewWriter(store, cfg, opts...)
	if err != nil {
		if store != nil {
			_ = store.Close()
		}
		return 0, err
	}

	if err := w.StartWriting(); err != nil {
		return 0, err
	}

	frames, err = Transcode(w, src, t.BufferFrames)
	if err != nil {
		// finalizes what was written; after a failed write the store is already closed
		_ = w.Close()
		return frames, err
	}

	if err := w.Finish(); err != nil {
		return frames, err
	}

	return frames, nil
}
