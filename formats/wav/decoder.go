// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ik5/wavio/audio"
)

// Decoder adapts Reader to the audio.Decoder interface.
type Decoder struct{}

// Decode starts a read session over r and parses its metadata. Readers that
// cannot seek are buffered in memory first. If r is an io.Closer the
// returned Source closes it.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	store, err := asReadSeekCloser(r)
	if err != nil {
		return nil, err
	}

	rd, err := NewReader(store)
	if err != nil {
		return nil, err
	}

	if err := rd.PrepareToRead(); err != nil {
		return nil, err
	}

	return rd, nil
}

func asReadSeekCloser(r io.Reader) (io.ReadSeekCloser, error) {
	if r == nil {
		return nil, ErrNilStore
	}

	if rsc, ok := r.(io.ReadSeekCloser); ok {
		return rsc, nil
	}

	if rs, ok := r.(io.ReadSeeker); ok {
		return nopCloser{rs}, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	return nopCloser{bytes.NewReader(data)}, nil
}

type nopCloser struct {
	io.ReadSeeker
}

func (nopCloser) Close() error { return nil }
