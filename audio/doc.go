// SPDX-License-Identifier: EPL-2.0

// Package audio provides the shared streaming primitives of wavio.
//
// # Source Interface
//
// Every decoder hands back a Source producing canonical interleaved int16
// samples:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadInt16s(dst []int16) (int, error)
//	    Close() error
//	}
//
// dst must hold whole frames, so its length has to be a multiple of
// Channels(); otherwise ErrInvalidDstSize is returned.
//
// # Format Registry
//
// The registry maps format keys (usually file extensions) to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.ForPath("input.WAV")
//
// Register and Get are safe for concurrent use. Sources themselves are not.
//
// # Reading Loop
//
// Sources return io.EOF once drained:
//
//	for {
//	    n, err := source.ReadInt16s(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
