// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/wavio/utils"
)

// DecodeFrame converts the first frame of src, stored with the given native
// layout, to int16 samples. A mono frame reports silence on ch2.
func DecodeFrame(src []byte, byteDepth, numChannels int, samplesAreInts bool) (ch1, ch2 int16, err error) {
	if err := checkFrameLayout(len(src), byteDepth, numChannels, samplesAreInts); err != nil {
		return 0, 0, err
	}

	ch1 = decodeSample(src[:byteDepth], samplesAreInts)
	if numChannels == 2 {
		ch2 = decodeSample(src[byteDepth:2*byteDepth], samplesAreInts)
	}

	return ch1, ch2, nil
}

// EncodeFrame is the dual of DecodeFrame: it stores ch1 (and ch2 for stereo)
// into the first frame of dst using the given native layout.
func EncodeFrame(dst []byte, ch1, ch2 int16, byteDepth, numChannels int, samplesAreInts bool) error {
	if err := checkFrameLayout(len(dst), byteDepth, numChannels, samplesAreInts); err != nil {
		return err
	}

	encodeSample(dst[:byteDepth], ch1, samplesAreInts)
	if numChannels == 2 {
		encodeSample(dst[byteDepth:2*byteDepth], ch2, samplesAreInts)
	}

	return nil
}

func checkFrameLayout(n, byteDepth, numChannels int, samplesAreInts bool) error {
	if numChannels != 1 && numChannels != 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidChannels, numChannels)
	}

	if !validDepth(byteDepth, samplesAreInts) {
		return fmt.Errorf("%w: %d byte %s", ErrInvalidByteDepth, byteDepth, kindName(samplesAreInts))
	}

	if n < byteDepth*numChannels {
		return fmt.Errorf("%w: have %d bytes, frame is %d", ErrPartialFrame, n, byteDepth*numChannels)
	}

	return nil
}

// decodeSample expects len(b) to be a valid byte depth for the kind.
func decodeSample(b []byte, samplesAreInts bool) int16 {
	if !samplesAreInts {
		if len(b) == 4 {
			return utils.Float32ToInt16(math.Float32frombits(binary.LittleEndian.Uint32(b)))
		}
		return utils.Float64ToInt16(math.Float64frombits(binary.LittleEndian.Uint64(b)))
	}

	switch len(b) {
	case 1:
		// 8-bit PCM is unsigned, centred on 128
		return int16(int(b[0])-128) << 8
	case 2:
		return int16(binary.LittleEndian.Uint16(b))
	case 3:
		return int16(goaudio.Int24LETo32(b) >> 8)
	default:
		return int16(int32(binary.LittleEndian.Uint32(b)) >> 16)
	}
}

func encodeSample(b []byte, v int16, samplesAreInts bool) {
	if !samplesAreInts {
		x := utils.Int16ToFloat64(v)
		if len(b) == 4 {
			binary.LittleEndian.PutUint32(b, math.Float32bits(float32(x)))
		} else {
			binary.LittleEndian.PutUint64(b, math.Float64bits(x))
		}
		return
	}

	switch len(b) {
	case 1:
		b[0] = uint8(int(v)>>8 + 128)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(v))
	case 3:
		copy(b, goaudio.Int32toInt24LEBytes(int32(v)<<8))
	default:
		binary.LittleEndian.PutUint32(b, uint32(int32(v)<<16))
	}
}
