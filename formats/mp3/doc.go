// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams into int16 samples so they can be
// transcoded to WAV.
//
// Decoding is done by github.com/hajimehoshi/go-mp3, which always produces
// interleaved 16-bit stereo at the stream's own sample rate:
//
//	src, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // errors.Is(err, mp3.ErrNotMP3Stream)
//	}
//	defer src.Close()
//
//	buf := make([]int16, 4096)
//	n, err := src.ReadInt16s(buf)
package mp3
