// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams into int16 samples so they can
// be transcoded to WAV.
//
// Decoding is done by github.com/jfreymuth/oggvorbis. Its float32 output is
// scaled to int16, rounded and clamped the same way the WAV float codec
// does it.
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // errors.Is(err, vorbis.ErrNotVorbisStream)
//	}
//	defer src.Close()
//
//	buf := make([]int16, 4096*src.Channels())
//	n, err := src.ReadInt16s(buf)
package vorbis
