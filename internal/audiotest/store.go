// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Store is an in-memory seekable byte store usable wherever a file is.
// ReadErr, WriteErr and SeekErr, when set, are returned by the matching
// operation to simulate a failing device.
type Store struct {
	data   []byte
	offset int64
	closed bool

	ReadErr  error
	WriteErr error
	SeekErr  error
}

// NewStore returns a store pre-filled with a copy of data, positioned at 0.
func NewStore(data []byte) *Store {
	return &Store{data: append([]byte(nil), data...)}
}

// Bytes returns the current contents. It stays valid after Close.
func (s *Store) Bytes() []byte { return s.data }

// Closed reports whether Close was called.
func (s *Store) Closed() bool { return s.closed }

// Offset returns the current position.
func (s *Store) Offset() int64 { return s.offset }

func (s *Store) Read(p []byte) (int, error) {
	if s.closed {
		return 0, os.ErrClosed
	}
	if s.ReadErr != nil {
		return 0, s.ReadErr
	}
	if s.offset >= int64(len(s.data)) {
		return 0, io.EOF
	}

	n := copy(p, s.data[s.offset:])
	s.offset += int64(n)

	return n, nil
}

func (s *Store) Write(p []byte) (int, error) {
	if s.closed {
		return 0, os.ErrClosed
	}
	if s.WriteErr != nil {
		return 0, s.WriteErr
	}

	end := s.offset + int64(len(p))
	if end > int64(len(s.data)) {
		grown := make([]byte, end)
		copy(grown, s.data)
		s.data = grown
	}

	copy(s.data[s.offset:], p)
	s.offset = end

	return len(p), nil
}

func (s *Store) Seek(offset int64, whence int) (int64, error) {
	if s.closed {
		return 0, os.ErrClosed
	}
	if s.SeekErr != nil {
		return 0, s.SeekErr
	}

	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = s.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(s.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, errors.New("negative position")
	}

	s.offset = newOffset
	return newOffset, nil
}

func (s *Store) Close() error {
	if s.closed {
		return os.ErrClosed
	}

	s.closed = true
	return nil
}
