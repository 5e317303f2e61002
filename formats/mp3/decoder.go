// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/wavio/audio"
)

// go-mp3 always decodes to interleaved stereo.
const channels = 2

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	closer     io.Closer
	done       bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func (s *source) ReadInt16s(dst []int16) (int, error) {
	if len(dst)%channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}
	if s.done {
		return 0, io.EOF
	}

	// go-mp3 yields 16-bit little-endian PCM
	bytesNeeded := len(dst) * 2
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	n, err := io.ReadFull(s.dec, s.buf)
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		s.done = true
	case err != nil:
		return 0, fmt.Errorf("decoding mp3 frames: %w", err)
	}

	// a trailing partial frame is dropped
	samples := n / (2 * channels) * channels
	for i := range samples {
		dst[i] = int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
	}

	if s.done {
		return samples, io.EOF
	}

	return samples, nil
}

// Decoder reads MP3 streams through hajimehoshi/go-mp3.
type Decoder struct{}

// Decode parses the first MP3 frame of r. If r is an io.Closer the returned
// Source closes it.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3Stream, err)
	}

	closer, _ := r.(io.Closer)

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
		closer:     closer,
	}, nil
}
