// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ik5/wavio/audio"
)

// Reader is a read session over one WAV byte store. It moves through
// initialized -> ready (PrepareToRead) -> streaming -> finished (Finish) and
// rejects calls made out of that order. A Reader is not safe for concurrent
// use.
type Reader struct {
	store  io.ReadSeekCloser
	logger *slog.Logger
	state  state

	md        Metadata
	bytesRead uint32
	scratch   []byte
}

// NewReader starts a read session that takes ownership of store.
func NewReader(store io.ReadSeekCloser, opts ...Option) (*Reader, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	o := newOptions(opts)

	return &Reader{
		store:  store,
		logger: o.logger,
		state:  stateInitialized,
	}, nil
}

// Open opens the file at path and starts a read session over it.
func Open(path string, opts ...Option) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	return NewReader(f, opts...)
}

// PrepareToRead parses the file metadata and positions the store at the
// first byte of sample data. Metadata is available afterwards.
func (r *Reader) PrepareToRead() error {
	if err := r.state.requireInitialized(); err != nil {
		return err
	}

	md, err := ParseMetadata(r.store)
	if err != nil {
		return failAndClose(r.logger, r.store, "prepare", r.finishWith(err))
	}

	r.md = md
	r.state = stateReady
	r.logger.Debug("wav metadata parsed",
		"format", md.Format.String(),
		"sample_data_size", md.SampleDataSize,
		"num_samples", md.NumSamples,
	)

	return nil
}

// Metadata returns what PrepareToRead learned about the file.
func (r *Reader) Metadata() (Metadata, error) {
	switch r.state {
	case stateReady, stateStreaming, stateFinished:
		if r.md.NumChannels == 0 {
			return Metadata{}, ErrNotReady
		}
		return r.md, nil
	case stateUninitialized:
		return Metadata{}, ErrNotInitialized
	default:
		return Metadata{}, ErrNotReady
	}
}

// SampleRate returns the sample rate in Hz, or 0 before PrepareToRead.
func (r *Reader) SampleRate() int { return int(r.md.SampleRate) }

// Channels returns the channel count, or 0 before PrepareToRead.
func (r *Reader) Channels() int { return r.md.NumChannels }

// BytesRead returns how much sample data has been consumed so far.
func (r *Reader) BytesRead() uint32 { return r.bytesRead }

func (r *Reader) remaining() uint32 { return r.md.SampleDataSize - r.bytesRead }

// ReadData fills p entirely with the next len(p) bytes of sample data.
// Asking for more than what is left of the data subchunk fails with
// ErrBeyondSampleData and leaves the session usable; a store that ends early
// fails with ErrTruncated and closes the session.
func (r *Reader) ReadData(p []byte) (int, error) {
	if err := r.state.requireStreamable(); err != nil {
		return 0, err
	}

	if uint64(len(p)) > uint64(r.remaining()) {
		return 0, fmt.Errorf("%w: requested %d bytes, %d remain", ErrBeyondSampleData, len(p), r.remaining())
	}

	r.state = stateStreaming

	n, err := io.ReadFull(r.store, p)
	r.bytesRead += uint32(n)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			err = fmt.Errorf("%w: read %d of %d bytes", ErrTruncated, n, len(p))
		} else {
			err = fmt.Errorf("reading sample data: %w", err)
		}
		return n, failAndClose(r.logger, r.store, "read", r.finishWith(err))
	}

	return n, nil
}

// ReadFramesInt16 reads len(dst)/channels frames and converts them to int16.
// dst must hold whole frames and may not extend past the sample data.
func (r *Reader) ReadFramesInt16(dst []int16) error {
	if err := r.state.requireStreamable(); err != nil {
		return err
	}

	channels := r.md.NumChannels
	if len(dst)%channels != 0 {
		return fmt.Errorf("%w: %d samples for %d channels", ErrPartialFrame, len(dst), channels)
	}

	return r.readFrames(dst, len(dst)/channels)
}

// ReadInt16s implements audio.Source. It converts as many whole frames as fit
// in dst, returning a short count on the last chunk and io.EOF afterwards.
func (r *Reader) ReadInt16s(dst []int16) (int, error) {
	if err := r.state.requireStreamable(); err != nil {
		return 0, err
	}

	channels := r.md.NumChannels
	if len(dst)%channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	left := int(r.remaining() / uint32(r.md.FrameSize()))
	if left == 0 {
		return 0, io.EOF
	}

	frames := min(len(dst)/channels, left)
	if err := r.readFrames(dst, frames); err != nil {
		return 0, err
	}

	return frames * channels, nil
}

func (r *Reader) readFrames(dst []int16, frames int) error {
	frameSize := r.md.FrameSize()
	need := frames * frameSize
	if cap(r.scratch) < need {
		r.scratch = make([]byte, need)
	}
	buf := r.scratch[:need]

	if _, err := r.ReadData(buf); err != nil {
		return err
	}

	channels := r.md.NumChannels
	for i := range frames {
		ch1, ch2, err := DecodeFrame(buf[i*frameSize:], r.md.ByteDepth, channels, r.md.SamplesAreInts)
		if err != nil {
			return err
		}

		dst[i*channels] = ch1
		if channels == 2 {
			dst[i*channels+1] = ch2
		}
	}

	return nil
}

// Int16FrameAt decodes frame index of data, a buffer of sample bytes in this
// file's native layout, without touching the store.
func (r *Reader) Int16FrameAt(data []byte, index int) (ch1, ch2 int16, err error) {
	md, err := r.Metadata()
	if err != nil {
		return 0, 0, err
	}

	return frameAt(md.Format, data, index)
}

// Finish ends the session and closes the store.
func (r *Reader) Finish() error {
	switch r.state {
	case stateUninitialized:
		return ErrNotInitialized
	case stateFinished:
		return ErrAlreadyFinished
	}

	r.state = stateFinished
	if err := r.store.Close(); err != nil {
		return fmt.Errorf("closing store: %w", err)
	}

	r.logger.Debug("wav read finished", "bytes_read", r.bytesRead)
	return nil
}

// Close is Finish, for use as an io.Closer.
func (r *Reader) Close() error { return r.Finish() }

func (r *Reader) finishWith(err error) error {
	r.state = stateFinished
	return err
}

func frameAt(f Format, data []byte, index int) (ch1, ch2 int16, err error) {
	frame, err := frameBytes(data, f.FrameSize(), index)
	if err != nil {
		return 0, 0, err
	}

	return DecodeFrame(frame, f.ByteDepth, f.NumChannels, f.SamplesAreInts)
}

// frameBytes returns the bytes of frame index in data. The index is compared
// against the whole-frame count before any offset is computed.
func frameBytes(data []byte, frameSize, index int) ([]byte, error) {
	frames := len(data) / frameSize
	if index < 0 || index >= frames {
		return nil, fmt.Errorf("%w: frame %d of %d", ErrFrameIndexOutOfRange, index, frames)
	}

	off := index * frameSize
	return data[off : off+frameSize], nil
}
