// SPDX-License-Identifier: EPL-2.0

// Package wavio reads and writes WAV (RIFF/WAVE) files and moves audio from
// other formats into them.
//
// The codec itself lives in formats/wav: a Reader and a Writer session over a
// seekable byte store, the chunk scanner, and the per-frame sample codec that
// maps 8, 16, 24 and 32-bit integer or 32 and 64-bit float samples to int16.
//
// This package adds the glue between any audio.Source and a wav.Writer:
//
//	src, _ := mp3.Decoder{}.Decode(in)
//	out, _ := os.Create("out.wav")
//
//	frames, err := wavio.Convert(out, src, wavio.Target{ByteDepth: 3, SamplesAreInts: true})
//
// Convert owns the whole write session. Transcode only pumps frames into a
// session the caller has started, for when headers and finalization are
// handled elsewhere. Neither resamples nor mixes channels: the WAV file gets
// the source's rate and channel count, and a mismatch is an error.
//
// # Supported Inputs
//
//   - WAV via formats/wav
//   - AIFF (8, 16, 24 and 32-bit PCM) via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// PreflightWritable checks that an output path can be created before any
// decoding starts.
package wavio
