// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"
	"io"

	"github.com/ik5/wavio/audio"
	"github.com/ik5/wavio/internal/audiotest"
)

// Example_readLoop demonstrates draining a Source in fixed size chunks.
func Example_readLoop() {
	source := audiotest.NewSineSource(8000, 2, 8000, 440.0) // 1 second stereo

	buf := make([]int16, 1024) // 512 frames per call
	total := 0

	for {
		n, err := source.ReadInt16s(buf)
		total += n

		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	fmt.Printf("Samples: %d\n", total)
	fmt.Printf("Frames: %d\n", total/source.Channels())
	// Output:
	// Samples: 16000
	// Frames: 8000
}

// Example_registry shows format lookup by file name.
func Example_registry() {
	registry := audio.NewRegistry()
	registry.Register("wav", nil)
	registry.Register("aiff", nil)

	_, ok := registry.ForPath("take1.WAV")
	fmt.Println("wav:", ok)

	_, ok = registry.ForPath("take1.flac")
	fmt.Println("flac:", ok)

	fmt.Println(registry.Formats())
	// Output:
	// wav: true
	// flac: false
	// [aiff wav]
}
