// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"

	goaudio "github.com/go-audio/audio"
)

// MinSampleRate is the lowest sample rate a Writer accepts.
const MinSampleRate = 8000

// Format describes how samples are stored in a WAV file.
type Format struct {
	SampleRate     uint32
	NumChannels    int
	SamplesAreInts bool // false for 32 or 64-bit IEEE float samples
	ByteDepth      int  // bytes per sample of a single channel
}

// FrameSize is the number of bytes in one interleaved frame.
func (f Format) FrameSize() int { return f.NumChannels * f.ByteDepth }

// Validate checks f against the combinations a Writer can emit.
func (f Format) Validate() error {
	if f.NumChannels != 1 && f.NumChannels != 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidChannels, f.NumChannels)
	}

	if f.SampleRate < MinSampleRate {
		return fmt.Errorf("%w: got %d", ErrInvalidSampleRate, f.SampleRate)
	}

	if !validDepth(f.ByteDepth, f.SamplesAreInts) {
		return fmt.Errorf("%w: %d byte %s", ErrInvalidByteDepth, f.ByteDepth, kindName(f.SamplesAreInts))
	}

	return nil
}

// GoAudio converts f to the go-audio format descriptor.
func (f Format) GoAudio() *goaudio.Format {
	return &goaudio.Format{
		NumChannels: f.NumChannels,
		SampleRate:  int(f.SampleRate),
	}
}

func (f Format) String() string {
	return fmt.Sprintf("%d Hz, %d ch, %d-bit %s", f.SampleRate, f.NumChannels, f.ByteDepth*8, kindName(f.SamplesAreInts))
}

func validDepth(byteDepth int, samplesAreInts bool) bool {
	if samplesAreInts {
		return byteDepth >= 1 && byteDepth <= 4
	}
	return byteDepth == 4 || byteDepth == 8
}

func kindName(samplesAreInts bool) string {
	if samplesAreInts {
		return "int"
	}
	return "float"
}

// Metadata is what a Reader learns from the header of a file.
type Metadata struct {
	Format

	SampleDataSize uint32 // declared payload size of the data subchunk
	NumSamples     uint32 // frames in the data subchunk
	FactSamples    uint32 // per-channel count from the fact subchunk
	HasFact        bool
}
