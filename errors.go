// SPDX-License-Identifier: EPL-2.0

package wavio

import "errors"

var (
	// ErrChannelMismatch indicates the source and the WAV file disagree on the
	// channel count.
	ErrChannelMismatch = errors.New("source channel count does not match WAV format")

	// ErrSampleRateMismatch indicates the source and the WAV file disagree on
	// the sample rate.
	ErrSampleRateMismatch = errors.New("source sample rate does not match WAV format")

	// ErrNilSource indicates a nil audio.Source.
	ErrNilSource = errors.New("nil audio source")

	// ErrPathIsDirectory indicates an output path that names a directory.
	ErrPathIsDirectory = errors.New("output path is a directory")
)
