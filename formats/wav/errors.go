// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

// Configuration errors, reported before any I/O.
var (
	ErrInvalidChannels   = errors.New("number of channels must be 1 or 2")
	ErrInvalidSampleRate = errors.New("sample rate must be at least 8000 Hz")
	ErrInvalidByteDepth  = errors.New("invalid byte depth for sample kind")
	ErrNilStore          = errors.New("nil byte store")
)

// Sequencing errors.
var (
	ErrNotInitialized  = errors.New("session not initialized")
	ErrNotReady        = errors.New("session not ready for streaming")
	ErrAlreadyStarted  = errors.New("session already started")
	ErrAlreadyFinished = errors.New("session already finished")
)

// Container errors.
var (
	ErrNotWavFile        = errors.New("not a WAV file")
	ErrSubchunkNotFound  = errors.New("subchunk not found")
	ErrUnsupportedFormat = errors.New("unsupported WAV sample format")
	ErrMalformedSubchunk = errors.New("malformed subchunk")
	ErrPartialSampleData = errors.New("sample data size is not a whole number of frames")
)

// Streaming and argument errors.
var (
	ErrTruncated            = errors.New("unexpected end of store")
	ErrSampleCountOverflow  = errors.New("sample count overflow")
	ErrPartialFrame         = errors.New("data is not a whole number of frames")
	ErrBeyondSampleData     = errors.New("read past end of sample data")
	ErrFrameIndexOutOfRange = errors.New("frame index out of range")
)
