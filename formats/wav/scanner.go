// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// LocateSubchunk walks subchunks from the current position of store until it
// finds one whose id matches exactly. On success the store is positioned at
// the start of that subchunk's header and its declared payload size is
// returned. Running off the end of the store yields ErrSubchunkNotFound;
// any other failure is returned wrapped and is never ErrSubchunkNotFound.
//
// Subchunks with an odd declared size are followed by a pad byte, which is
// skipped along with the payload.
func LocateSubchunk(store io.ReadSeeker, id [4]byte) (uint32, error) {
	// the parser reads straight from store, so seeks below stay in step with it
	parser := riff.New(store)

	for {
		chunkID, size, err := parser.IDnSize()
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, fmt.Errorf("%w: %q", ErrSubchunkNotFound, id[:])
		}
		if err != nil {
			return 0, fmt.Errorf("reading subchunk header while looking for %q: %w", id[:], err)
		}

		hdr := SubchunkHeader{ID: chunkID, Size: size}
		if hdr.ID == id {
			if _, err := store.Seek(-SubchunkHeaderSize, io.SeekCurrent); err != nil {
				return 0, fmt.Errorf("rewinding to subchunk %q: %w", id[:], err)
			}
			return hdr.Size, nil
		}

		skip := int64(hdr.Size)
		if hdr.Size%2 == 1 {
			skip++
		}

		if _, err := store.Seek(skip, io.SeekCurrent); err != nil {
			return 0, fmt.Errorf("skipping subchunk %q: %w", hdr.ID[:], err)
		}
	}
}

// locateFromStart rewinds to the first subchunk before scanning.
func locateFromStart(store io.ReadSeeker, id [4]byte) (uint32, error) {
	if _, err := store.Seek(firstSubchunkOffset, io.SeekStart); err != nil {
		return 0, fmt.Errorf("seeking to first subchunk: %w", err)
	}

	return LocateSubchunk(store, id)
}
