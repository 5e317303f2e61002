// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files into int16 samples so they can be
// transcoded to WAV.
//
// Decoding is done by github.com/go-audio/aiff. The Decoder accepts 8, 16,
// 24 and 32-bit PCM and narrows every sample to 16 bits by shifting:
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // ErrNotAiffFile, ErrUnsupportedBitDepth or ErrUnsupportedAiffLayout
//	}
//	defer src.Close()
//
//	buf := make([]int16, 4096*src.Channels())
//	n, err := src.ReadInt16s(buf)
//
// AIFF-C (compressed) files are not supported.
package aiff
