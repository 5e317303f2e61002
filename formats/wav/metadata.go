// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"
)

// ParseMetadata reads the RIFF header and the fmt, fact and data subchunks of
// store, in whatever order they appear. On success the store is positioned at
// the first byte of sample data.
func ParseMetadata(store io.ReadSeeker) (Metadata, error) {
	var md Metadata

	if _, err := store.Seek(0, io.SeekStart); err != nil {
		return md, fmt.Errorf("seeking to RIFF header: %w", err)
	}

	buf := make([]byte, FormatSubchunkSize)
	if err := readFull(store, buf[:RIFFHeaderSize], "RIFF header"); err != nil {
		if errors.Is(err, ErrTruncated) {
			return md, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}
		return md, err
	}

	rh := parseRIFFHeader(buf)
	if rh.ChunkID != riffID || rh.FormatName != waveID {
		return md, ErrNotWavFile
	}

	fs, err := readFormatSubchunk(store, buf)
	if err != nil {
		return md, err
	}

	md.Format, err = formatFromSubchunk(fs)
	if err != nil {
		return md, err
	}

	if !md.SamplesAreInts {
		md.FactSamples, md.HasFact, err = readFactSubchunk(store, buf)
		if err != nil {
			return md, err
		}
	}

	size, err := locateFromStart(store, dataID)
	if err != nil {
		return md, fmt.Errorf("locating data subchunk: %w", err)
	}

	if _, err := store.Seek(SubchunkHeaderSize, io.SeekCurrent); err != nil {
		return md, fmt.Errorf("seeking to sample data: %w", err)
	}

	frameSize := uint32(md.FrameSize())
	if size%frameSize != 0 {
		return md, fmt.Errorf("%w: %d bytes with %d byte frames", ErrPartialSampleData, size, frameSize)
	}

	md.SampleDataSize = size
	md.NumSamples = size / frameSize

	return md, nil
}

func readFormatSubchunk(store io.ReadSeeker, buf []byte) (FormatSubchunk, error) {
	size, err := locateFromStart(store, fmtID)
	if err != nil {
		return FormatSubchunk{}, fmt.Errorf("locating fmt subchunk: %w", err)
	}

	if size < formatPayloadSize {
		return FormatSubchunk{}, fmt.Errorf("%w: fmt payload is %d bytes", ErrMalformedSubchunk, size)
	}

	if err := readFull(store, buf[:FormatSubchunkSize], "fmt subchunk"); err != nil {
		return FormatSubchunk{}, err
	}

	return parseFormatPayload(buf[SubchunkHeaderSize:FormatSubchunkSize]), nil
}

func formatFromSubchunk(fs FormatSubchunk) (Format, error) {
	f := Format{
		SampleRate:  fs.SampleRate,
		NumChannels: int(fs.NumChannels),
		ByteDepth:   int(fs.BitsPerSample / 8),
	}

	switch fs.AudioFormat {
	case AudioFormatPCM:
		f.SamplesAreInts = true
	case AudioFormatFloat:
		f.SamplesAreInts = false
	default:
		return f, fmt.Errorf("%w: audio format code %d", ErrUnsupportedFormat, fs.AudioFormat)
	}

	if f.NumChannels != 1 && f.NumChannels != 2 {
		return f, fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, f.NumChannels)
	}

	if fs.BitsPerSample%8 != 0 || !validDepth(f.ByteDepth, f.SamplesAreInts) {
		return f, fmt.Errorf("%w: %d-bit %s", ErrUnsupportedFormat, fs.BitsPerSample, kindName(f.SamplesAreInts))
	}

	return f, nil
}

// readFactSubchunk tolerates a missing fact subchunk.
func readFactSubchunk(store io.ReadSeeker, buf []byte) (uint32, bool, error) {
	size, err := locateFromStart(store, factID)
	if errors.Is(err, ErrSubchunkNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("locating fact subchunk: %w", err)
	}

	if size < factPayloadSize {
		return 0, false, fmt.Errorf("%w: fact payload is %d bytes", ErrMalformedSubchunk, size)
	}

	if err := readFull(store, buf[:FactSubchunkSize], "fact subchunk"); err != nil {
		return 0, false, err
	}

	return parseFactPayload(buf[SubchunkHeaderSize:FactSubchunkSize]).NumSamplesPerChannel, true, nil
}

// readFull maps a short read to ErrTruncated.
func readFull(r io.Reader, p []byte, what string) error {
	_, err := io.ReadFull(r, p)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: reading %s", ErrTruncated, what)
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", what, err)
	}
	return nil
}
