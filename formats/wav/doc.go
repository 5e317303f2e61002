// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE files in a streaming fashion.
//
// Integer PCM with 1 to 4 bytes per sample and IEEE float with 4 or 8 bytes
// per sample are supported, mono or stereo. Samples can be moved as raw
// native bytes or converted to and from interleaved int16.
//
// # Reading
//
// A Reader is a session over a seekable store. PrepareToRead locates the
// fmt, fact and data subchunks in any order and leaves the store at the first
// sample byte; ReadData can then be called repeatedly with buffers of any
// size:
//
//	r, err := wav.Open("in.wav")
//	if err != nil {
//	    // Handle error
//	}
//	if err := r.PrepareToRead(); err != nil {
//	    // Handle error
//	}
//	md, _ := r.Metadata()
//
//	samples := make([]int16, int(md.NumSamples)*md.NumChannels)
//	err = r.ReadFramesInt16(samples)
//	r.Finish()
//
// # Writing
//
// A Writer validates its Format before touching the store, writes the headers
// on StartWriting and patches the sizes on Finish:
//
//	w, err := wav.Create("out.wav", wav.Format{
//	    SampleRate:     44100,
//	    NumChannels:    2,
//	    SamplesAreInts: true,
//	    ByteDepth:      3,
//	})
//	w.StartWriting()
//	w.WriteFramesInt16(samples)
//	w.Finish()
//
// Encode and DecodeAll wrap a whole session in one call.
//
// # Sample Conversion
//
// DecodeFrame and EncodeFrame convert single frames:
//   - 8-bit PCM is unsigned and re-centred around zero
//   - 16-bit PCM is copied
//   - 24 and 32-bit PCM keep their 16 most significant bits
//   - float samples are scaled by 32767, rounded and clamped
//
// Everything but 8-bit survives an int16 round trip unchanged.
//
// # Sessions
//
// Sessions enforce initialized -> ready -> streaming -> finished. Calls made
// out of order return ErrNotInitialized, ErrNotReady, ErrAlreadyStarted or
// ErrAlreadyFinished. I/O failures while streaming or finishing close the
// store before the error is returned.
//
// # File Format
//
//   - RIFF header (12 bytes)
//   - fmt subchunk (24 bytes): audio format, channels, sample rate, bit depth
//   - fact subchunk (12 bytes, float only): samples per channel
//   - data subchunk: 8 byte header followed by the samples
//
// Other subchunks are skipped when reading.
package wav
