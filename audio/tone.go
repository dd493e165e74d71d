package audio

import (
	"encoding/binary"
	"math"

	"github.com/chewxy/math32"

	"github.com/gosdl/sdl3/internal/fail"
)

// SineTone synthesizes a sine wave ready for Stream.PutData: frames
// sample frames at the given frequency, interleaved across the spec's
// channels. Only FormatF32 and FormatS16 specs are supported.
func SineTone(spec Spec, freq, amplitude float32, frames int) ([]byte, error) {
	if spec.Freq <= 0 || spec.Channels <= 0 {
		return nil, fail.InvalidParam("spec")
	}
	if frames < 0 {
		return nil, fail.InvalidParam("frames")
	}

	step := 2 * math32.Pi * freq / float32(spec.Freq)
	switch spec.Format {
	case FormatF32:
		buf := make([]byte, frames*int(spec.Channels)*4)
		for i := 0; i < frames; i++ {
			s := amplitude * math32.Sin(step*float32(i))
			bits := math.Float32bits(s)
			for c := 0; c < int(spec.Channels); c++ {
				off := (i*int(spec.Channels) + c) * 4
				binary.LittleEndian.PutUint32(buf[off:], bits)
			}
		}
		return buf, nil
	case FormatS16:
		buf := make([]byte, frames*int(spec.Channels)*2)
		for i := 0; i < frames; i++ {
			s := amplitude * math32.Sin(step*float32(i))
			v := int16(s * float32(math.MaxInt16))
			for c := 0; c < int(spec.Channels); c++ {
				off := (i*int(spec.Channels) + c) * 2
				binary.LittleEndian.PutUint16(buf[off:], uint16(v))
			}
		}
		return buf, nil
	default:
		return nil, fail.InvalidParam("format")
	}
}
