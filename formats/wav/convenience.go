// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
)

// Encode writes a complete WAV file holding the interleaved samples to store,
// encoded in the native layout cfg describes. The store is closed whether or
// not Encode succeeds.
func Encode(store WriteStore, cfg Format, samples []int16) error {
	w, err := NewWriter(store, cfg)
	if err != nil {
		if store != nil {
			_ = store.Close()
		}
		return err
	}

	if err := w.StartWriting(); err != nil {
		return err
	}

	if err := w.WriteFramesInt16(samples); err != nil {
		// a rejected partial frame leaves the session open
		_ = w.Close()
		return err
	}

	return w.Finish()
}

// DecodeAll reads every frame of store as interleaved int16 samples. The
// store is closed whether or not DecodeAll succeeds.
func DecodeAll(store io.ReadSeekCloser) (Metadata, []int16, error) {
	r, err := NewReader(store)
	if err != nil {
		return Metadata{}, nil, err
	}

	if err := r.PrepareToRead(); err != nil {
		return Metadata{}, nil, err
	}

	md, _ := r.Metadata()
	samples := make([]int16, int(md.NumSamples)*md.NumChannels)
	if err := r.ReadFramesInt16(samples); err != nil {
		_ = r.Close()
		return md, nil, err
	}

	if err := r.Finish(); err != nil {
		return md, nil, fmt.Errorf("finishing read: %w", err)
	}

	return md, samples, nil
}
