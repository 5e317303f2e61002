// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
)

// WriteStore is the byte store a Writer streams into. Finish reads headers
// back, so it must be readable as well as writable and seekable; *os.File
// opened by os.Create qualifies.
type WriteStore interface {
	io.ReadWriteSeeker
	io.Closer
}

// encodeChunkFrames bounds the scratch buffer used by WriteFramesInt16.
const encodeChunkFrames = 4096

// Writer is a write session over one WAV byte store. It moves through
// initialized -> ready (StartWriting) -> streaming -> finished (Finish).
// Sizes in the RIFF, fact and data headers are unknown until Finish
// patches them. A Writer is not safe for concurrent use.
type Writer struct {
	store  WriteStore
	logger *slog.Logger
	state  state

	format     Format
	numSamples uint32
	scratch    []byte
}

// NewWriter validates cfg and starts a write session that takes ownership
// of store. Nothing is written until StartWriting.
func NewWriter(store WriteStore, cfg Format, opts ...Option) (*Writer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if store == nil {
		return nil, ErrNilStore
	}

	o := newOptions(opts)

	return &Writer{
		store:  store,
		logger: o.logger,
		state:  stateInitialized,
		format: cfg,
	}, nil
}

// Create validates cfg, then creates (or truncates) the file at path and
// starts a write session over it.
func Create(path string, cfg Format, opts ...Option) (*Writer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}

	return NewWriter(f, cfg, opts...)
}

// Format returns the configured sample format.
func (w *Writer) Format() Format { return w.format }

// NumSamplesWritten returns the number of frames written so far.
func (w *Writer) NumSamplesWritten() uint32 { return w.numSamples }

// SampleDataWrittenSize returns the number of sample bytes written so far.
func (w *Writer) SampleDataWrittenSize() uint32 {
	return w.numSamples * uint32(w.format.FrameSize())
}

func (w *Writer) factSize() uint64 {
	if w.format.SamplesAreInts {
		return 0
	}
	return FactSubchunkSize
}

// riffSize is the value of the RIFF size field for a file holding frames.
func (w *Writer) riffSize(frames uint64) uint64 {
	return 4 + FormatSubchunkSize + w.factSize() + SubchunkHeaderSize + frames*uint64(w.format.FrameSize())
}

// StartWriting emits the RIFF header, fmt subchunk, fact subchunk (float
// formats only) and the data subchunk header, with sizes left at zero.
func (w *Writer) StartWriting() error {
	if err := w.state.requireInitialized(); err != nil {
		return err
	}

	header := make([]byte, 0, RIFFHeaderSize+FormatSubchunkSize+FactSubchunkSize+SubchunkHeaderSize)
	header = append(header, RIFFHeader{ChunkID: riffID, FormatName: waveID}.bytes()...)
	header = append(header, newFormatSubchunk(w.format).bytes()...)
	if !w.format.SamplesAreInts {
		header = append(header, FactSubchunk{}.bytes()...)
	}
	header = append(header, SubchunkHeader{ID: dataID}.bytes()...)

	if _, err := w.store.Seek(0, io.SeekStart); err != nil {
		w.state = stateFinished
		return failAndClose(w.logger, w.store, "start", fmt.Errorf("seeking to start: %w", err))
	}

	if _, err := w.store.Write(header); err != nil {
		w.state = stateFinished
		return failAndClose(w.logger, w.store, "start", fmt.Errorf("writing header: %w", err))
	}

	w.state = stateReady
	w.logger.Debug("wav header written", "format", w.format.String())

	return nil
}

// checkCapacity rejects writes that would push the frame count or the RIFF
// size past what their 32-bit header fields can hold.
func (w *Writer) checkCapacity(frames uint64) error {
	total := uint64(w.numSamples) + frames
	if total > math.MaxUint32 || w.riffSize(total) > math.MaxUint32 {
		return fmt.Errorf("%w: %d + %d frames", ErrSampleCountOverflow, w.numSamples, frames)
	}
	return nil
}

// WriteData appends raw sample bytes in the configured native layout.
// len(p) must be a whole number of frames; otherwise nothing is written and
// the session stays usable. Overflow and I/O failures close the session.
func (w *Writer) WriteData(p []byte) error {
	if err := w.state.requireStreamable(); err != nil {
		return err
	}

	frameSize := w.format.FrameSize()
	if len(p)%frameSize != 0 {
		return fmt.Errorf("%w: %d bytes with %d byte frames", ErrPartialFrame, len(p), frameSize)
	}

	frames := uint64(len(p) / frameSize)
	if err := w.checkCapacity(frames); err != nil {
		w.state = stateFinished
		return failAndClose(w.logger, w.store, "write", err)
	}

	return w.writeFrames(p, frames)
}

func (w *Writer) writeFrames(p []byte, frames uint64) error {
	w.state = stateStreaming

	if _, err := w.store.Write(p); err != nil {
		w.state = stateFinished
		return failAndClose(w.logger, w.store, "write", fmt.Errorf("writing sample data: %w", err))
	}

	w.numSamples += uint32(frames)
	return nil
}

// WriteFramesInt16 encodes interleaved int16 samples into the configured
// native layout and appends them. len(samples) must be a whole number of
// frames.
func (w *Writer) WriteFramesInt16(samples []int16) error {
	if err := w.state.requireStreamable(); err != nil {
		return err
	}

	channels := w.format.NumChannels
	if len(samples)%channels != 0 {
		return fmt.Errorf("%w: %d samples for %d channels", ErrPartialFrame, len(samples), channels)
	}

	frames := len(samples) / channels
	if err := w.checkCapacity(uint64(frames)); err != nil {
		w.state = stateFinished
		return failAndClose(w.logger, w.store, "write", err)
	}

	frameSize := w.format.FrameSize()
	if cap(w.scratch) < min(frames, encodeChunkFrames)*frameSize {
		w.scratch = make([]byte, min(frames, encodeChunkFrames)*frameSize)
	}

	for start := 0; start < frames; start += encodeChunkFrames {
		end := min(start+encodeChunkFrames, frames)
		buf := w.scratch[:(end-start)*frameSize]

		for i := start; i < end; i++ {
			var ch2 int16
			if channels == 2 {
				ch2 = samples[i*2+1]
			}
			if err := w.PutInt16FrameAt(buf, i-start, samples[i*channels], ch2); err != nil {
				return err
			}
		}

		if err := w.writeFrames(buf, uint64(end-start)); err != nil {
			return err
		}
	}

	return nil
}

// PutInt16FrameAt encodes one frame into data, a buffer of sample bytes in
// the configured native layout, at frame position index. For mono formats
// ch2 is ignored.
func (w *Writer) PutInt16FrameAt(data []byte, index int, ch1, ch2 int16) error {
	if w.state == stateUninitialized {
		return ErrNotInitialized
	}

	f := w.format
	frame, err := frameBytes(data, f.FrameSize(), index)
	if err != nil {
		return err
	}

	return EncodeFrame(frame, ch1, ch2, f.ByteDepth, f.NumChannels, f.SamplesAreInts)
}

// Finish patches the RIFF size, the fact sample count (float formats) and the
// data size with what was actually written, then closes the store. The store
// is closed on failure too. A second call fails with ErrAlreadyFinished.
func (w *Writer) Finish() error {
	switch w.state {
	case stateUninitialized:
		return ErrNotInitialized
	case stateFinished:
		return ErrAlreadyFinished
	case stateInitialized:
		return ErrNotReady
	}

	w.state = stateFinished

	if err := w.finalize(); err != nil {
		return failAndClose(w.logger, w.store, "finish", err)
	}

	if err := w.store.Close(); err != nil {
		return fmt.Errorf("closing store: %w", err)
	}

	w.logger.Debug("wav write finished", "num_samples", w.numSamples, "data_size", w.SampleDataWrittenSize())
	return nil
}

func (w *Writer) finalize() error {
	if _, err := w.store.Seek(riffSizeFieldOffset, io.SeekStart); err != nil {
		return fmt.Errorf("seeking to RIFF size: %w", err)
	}

	size := make([]byte, 4)
	binary.LittleEndian.PutUint32(size, uint32(w.riffSize(uint64(w.numSamples))))
	if _, err := w.store.Write(size); err != nil {
		return fmt.Errorf("updating RIFF size: %w", err)
	}

	if !w.format.SamplesAreInts {
		if _, err := locateFromStart(w.store, factID); err != nil {
			return fmt.Errorf("locating fact subchunk: %w", err)
		}

		if _, err := w.store.Write(FactSubchunk{NumSamplesPerChannel: w.numSamples}.bytes()); err != nil {
			return fmt.Errorf("updating fact subchunk: %w", err)
		}
	}

	if _, err := locateFromStart(w.store, dataID); err != nil {
		return fmt.Errorf("locating data subchunk: %w", err)
	}

	hdr := SubchunkHeader{ID: dataID, Size: w.SampleDataWrittenSize()}
	if _, err := w.store.Write(hdr.bytes()); err != nil {
		return fmt.Errorf("updating data subchunk header: %w", err)
	}

	return nil
}

// Close finishes a started session. A session that never called
// StartWriting is abandoned and its store closed without writing anything.
func (w *Writer) Close() error {
	if w.state != stateInitialized {
		return w.Finish()
	}

	w.state = stateFinished
	if err := w.store.Close(); err != nil {
		return fmt.Errorf("closing store: %w", err)
	}
	return nil
}
