// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/wavio/formats/wav"
	"github.com/ik5/wavio/internal/audiotest"
)

// Example_writer shows the write session: configure, start, stream, finish.
func Example_writer() {
	store := audiotest.NewStore(nil)

	w, err := wav.NewWriter(store, wav.Format{
		SampleRate:     8000,
		NumChannels:    1,
		SamplesAreInts: true,
		ByteDepth:      2,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if err := w.StartWriting(); err != nil {
		fmt.Println("error:", err)
		return
	}

	if err := w.WriteFramesInt16([]int16{100, -100, 32767, -32768}); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("Frames:", w.NumSamplesWritten())
	fmt.Println("Data bytes:", w.SampleDataWrittenSize())

	if err := w.Finish(); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("File bytes:", len(store.Bytes()))

	// Output:
	// Frames: 4
	// Data bytes: 8
	// File bytes: 52
}

// Example_reader shows the read session over a file produced by Encode.
func Example_reader() {
	store := audiotest.NewStore(nil)
	cfg := wav.Format{SampleRate: 48000, NumChannels: 2, SamplesAreInts: false, ByteDepth: 4}
	if err := wav.Encode(store, cfg, []int16{1000, -1000, 2000, -2000, 3000, -3000}); err != nil {
		fmt.Println("error:", err)
		return
	}

	r, err := wav.NewReader(audiotest.NewStore(store.Bytes()))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer r.Close()

	if err := r.PrepareToRead(); err != nil {
		fmt.Println("error:", err)
		return
	}

	md, _ := r.Metadata()
	fmt.Println("Format:", md.Format)
	fmt.Println("Frames:", md.NumSamples, "Fact:", md.FactSamples)

	buf := make([]int16, 4)
	for {
		n, err := r.ReadInt16s(buf)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(buf[:n])
	}

	// Output:
	// Format: 48000 Hz, 2 ch, 32-bit float
	// Frames: 3 Fact: 3
	// [1000 -1000 2000 -2000]
	// [3000 -3000]
}

// ExampleLocateSubchunk finds the data subchunk of a file.
func ExampleLocateSubchunk() {
	store := audiotest.NewStore(nil)
	cfg := wav.Format{SampleRate: 8000, NumChannels: 1, SamplesAreInts: true, ByteDepth: 1}
	if err := wav.Encode(store, cfg, make([]int16, 5)); err != nil {
		fmt.Println("error:", err)
		return
	}

	in := audiotest.NewStore(store.Bytes())
	if _, err := in.Seek(wav.RIFFHeaderSize, io.SeekStart); err != nil {
		fmt.Println("error:", err)
		return
	}

	size, err := wav.LocateSubchunk(in, [4]byte{'d', 'a', 't', 'a'})
	fmt.Println(size, in.Offset(), err)

	_, err = wav.LocateSubchunk(in, [4]byte{'L', 'I', 'S', 'T'})
	fmt.Println(errors.Is(err, wav.ErrSubchunkNotFound))

	// Output:
	// 5 36 <nil>
	// true
}
