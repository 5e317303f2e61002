// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// mockSource is a test helper producing a fixed number of silent frames.
type mockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
}

func newSilentSource(sampleRate, channels, totalSamples int) *mockSource {
	return &mockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
	}
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) Close() error    { return nil }

func (m *mockSource) ReadInt16s(dst []int16) (int, error) {
	if len(dst)%m.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalSamples-m.generated)
	clear(dst[:frames*m.channels])
	m.generated += frames

	return frames * m.channels, nil
}
