// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"

	"github.com/ik5/wavio/internal/audiotest"
)

// rawChunk is one subchunk of a hand-built fixture.
type rawChunk struct {
	id      string
	payload []byte
	size    *uint32 // overrides the declared size when set
}

// buildRIFF assembles a RIFF/WAVE file from chunks, padding odd payloads.
func buildRIFF(chunks ...rawChunk) []byte {
	body := new(bytes.Buffer)
	for _, c := range chunks {
		body.WriteString(c.id)
		size := uint32(len(c.payload))
		if c.size != nil {
			size = *c.size
		}
		binary.Write(body, binary.LittleEndian, size)
		body.Write(c.payload)
		if len(c.payload)%2 == 1 {
			body.WriteByte(0)
		}
	}

	buf := new(bytes.Buffer)
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(4+body.Len()))
	buf.WriteString("WAVE")
	buf.Write(body.Bytes())

	return buf.Bytes()
}

func fmtChunk(audioFormat uint16, channels int, sampleRate int, bitsPerSample int) rawChunk {
	blockAlign := channels * bitsPerSample / 8

	payload := new(bytes.Buffer)
	binary.Write(payload, binary.LittleEndian, audioFormat)
	binary.Write(payload, binary.LittleEndian, uint16(channels))
	binary.Write(payload, binary.LittleEndian, uint32(sampleRate))
	binary.Write(payload, binary.LittleEndian, uint32(sampleRate*blockAlign))
	binary.Write(payload, binary.LittleEndian, uint16(blockAlign))
	binary.Write(payload, binary.LittleEndian, uint16(bitsPerSample))

	return rawChunk{id: "fmt ", payload: payload.Bytes()}
}

func factChunk(samples uint32) rawChunk {
	payload := make([]byte, 4)
	binary.LittleEndian.PutUint32(payload, samples)
	return rawChunk{id: "fact", payload: payload}
}

func dataChunk(payload []byte) rawChunk {
	return rawChunk{id: "data", payload: payload}
}

func int16Payload(samples ...int16) []byte {
	b := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(b[2*i:], uint16(s))
	}
	return b
}

// createWAVFile builds a canonical 16-bit PCM file.
func createWAVFile(sampleRate, channels int, samples []int16) []byte {
	return buildRIFF(
		fmtChunk(AudioFormatPCM, channels, sampleRate, 16),
		dataChunk(int16Payload(samples...)),
	)
}

// preparedReader returns a reader over data that has already parsed its
// metadata, along with its store.
func preparedReader(data []byte) (*Reader, *audiotest.Store, error) {
	store := audiotest.NewStore(data)
	r, err := NewReader(store)
	if err != nil {
		return nil, store, err
	}
	return r, store, r.PrepareToRead()
}

func uint32p(v uint32) *uint32 { return &v }
