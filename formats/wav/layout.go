// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"

	"github.com/go-audio/riff"
)

// Sizes in bytes of the fixed RIFF/WAVE structures, headers included.
const (
	RIFFHeaderSize      = 12
	SubchunkHeaderSize  = 8
	FormatSubchunkSize  = 24
	FactSubchunkSize    = 12
	formatPayloadSize   = 16
	factPayloadSize     = 4
	riffSizeFieldOffset = 4
	firstSubchunkOffset = RIFFHeaderSize
)

// Audio format codes of the fmt subchunk.
const (
	AudioFormatPCM   uint16 = 1
	AudioFormatFloat uint16 = 3
)

var (
	riffID = riff.RiffID
	waveID = riff.WavFormatID
	fmtID  = riff.FmtID
	dataID = riff.DataFormatID
	factID = [4]byte{'f', 'a', 'c', 't'}
)

// RIFFHeader is the container envelope at the very start of the file.
type RIFFHeader struct {
	ChunkID       [4]byte // "RIFF"
	FileSizeLess8 uint32
	FormatName    [4]byte // "WAVE"
}

func (h RIFFHeader) bytes() []byte {
	b := make([]byte, RIFFHeaderSize)
	copy(b[0:4], h.ChunkID[:])
	binary.LittleEndian.PutUint32(b[4:8], h.FileSizeLess8)
	copy(b[8:12], h.FormatName[:])
	return b
}

func parseRIFFHeader(b []byte) RIFFHeader {
	var h RIFFHeader
	copy(h.ChunkID[:], b[0:4])
	h.FileSizeLess8 = binary.LittleEndian.Uint32(b[4:8])
	copy(h.FormatName[:], b[8:12])
	return h
}

// SubchunkHeader prefixes every subchunk. Size excludes the header itself.
type SubchunkHeader struct {
	ID   [4]byte
	Size uint32
}

func (h SubchunkHeader) bytes() []byte {
	b := make([]byte, SubchunkHeaderSize)
	copy(b[0:4], h.ID[:])
	binary.LittleEndian.PutUint32(b[4:8], h.Size)
	return b
}

// FormatSubchunk is the payload of the "fmt " subchunk.
type FormatSubchunk struct {
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

func newFormatSubchunk(f Format) FormatSubchunk {
	audioFormat := AudioFormatPCM
	if !f.SamplesAreInts {
		audioFormat = AudioFormatFloat
	}

	return FormatSubchunk{
		AudioFormat:   audioFormat,
		NumChannels:   uint16(f.NumChannels),
		SampleRate:    f.SampleRate,
		ByteRate:      f.SampleRate * uint32(f.NumChannels*f.ByteDepth),
		BlockAlign:    uint16(f.NumChannels * f.ByteDepth),
		BitsPerSample: uint16(f.ByteDepth * 8),
	}
}

// bytes encodes the whole subchunk, header included.
func (fs FormatSubchunk) bytes() []byte {
	b := make([]byte, FormatSubchunkSize)
	copy(b[0:4], fmtID[:])
	binary.LittleEndian.PutUint32(b[4:8], formatPayloadSize)
	binary.LittleEndian.PutUint16(b[8:10], fs.AudioFormat)
	binary.LittleEndian.PutUint16(b[10:12], fs.NumChannels)
	binary.LittleEndian.PutUint32(b[12:16], fs.SampleRate)
	binary.LittleEndian.PutUint32(b[16:20], fs.ByteRate)
	binary.LittleEndian.PutUint16(b[20:22], fs.BlockAlign)
	binary.LittleEndian.PutUint16(b[22:24], fs.BitsPerSample)
	return b
}

// parseFormatPayload decodes the 16 byte payload that follows the header.
func parseFormatPayload(b []byte) FormatSubchunk {
	return FormatSubchunk{
		AudioFormat:   binary.LittleEndian.Uint16(b[0:2]),
		NumChannels:   binary.LittleEndian.Uint16(b[2:4]),
		SampleRate:    binary.LittleEndian.Uint32(b[4:8]),
		ByteRate:      binary.LittleEndian.Uint32(b[8:12]),
		BlockAlign:    binary.LittleEndian.Uint16(b[12:14]),
		BitsPerSample: binary.LittleEndian.Uint16(b[14:16]),
	}
}

// FactSubchunk carries the per-channel sample count of float files.
type FactSubchunk struct {
	NumSamplesPerChannel uint32
}

func (fc FactSubchunk) bytes() []byte {
	b := make([]byte, FactSubchunkSize)
	copy(b[0:4], factID[:])
	binary.LittleEndian.PutUint32(b[4:8], factPayloadSize)
	binary.LittleEndian.PutUint32(b[8:12], fc.NumSamplesPerChannel)
	return b
}

func parseFactPayload(b []byte) FactSubchunk {
	return FactSubchunk{NumSamplesPerChannel: binary.LittleEndian.Uint32(b[0:4])}
}
