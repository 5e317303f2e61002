// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/wavio/audio"
	"github.com/ik5/wavio/utils"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	floatBuf   []float32
	closer     io.Closer
	done       bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// ReadInt16s keeps calling the decoder until dst is full or the stream ends,
// since oggvorbis returns at most one packet of values per Read.
func (s *source) ReadInt16s(dst []int16) (int, error) {
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}
	if s.done {
		return 0, io.EOF
	}

	if cap(s.floatBuf) < len(dst) {
		s.floatBuf = make([]float32, len(dst))
	}
	buf := s.floatBuf[:len(dst)]

	filled := 0
	for filled < len(buf) {
		n, err := s.dec.Read(buf[filled:])
		filled += n

		if errors.Is(err, io.EOF) {
			s.done = true
			break
		}
		if err != nil {
			return 0, fmt.Errorf("decoding vorbis packets: %w", err)
		}
		if n == 0 {
			return 0, io.ErrNoProgress
		}
	}

	// values come out interleaved, a trailing partial frame is dropped
	filled -= filled % s.channels
	for i := range filled {
		dst[i] = utils.Float32ToInt16(buf[i])
	}

	if s.done {
		return filled, io.EOF
	}

	return filled, nil
}

// Decoder reads Ogg Vorbis streams through jfreymuth/oggvorbis.
type Decoder struct{}

// Decode parses the Vorbis headers of r. If r is an io.Closer the returned
// Source closes it.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisStream, err)
	}

	if dec.Channels() < 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrNotVorbisStream, dec.Channels())
	}

	closer, _ := r.(io.Closer)

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		floatBuf:   make([]float32, 4096),
		closer:     closer,
	}, nil
}
