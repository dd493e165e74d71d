package audio

// Format describes a sample encoding. Values mirror SDL_AudioFormat: the
// low byte is the sample bit width, with flag bits for float, big-endian,
// and signed encodings.
type Format uint16

const (
	FormatUnknown Format = 0x0000
	FormatU8      Format = 0x0008
	FormatS8      Format = 0x8008
	FormatS16LE   Format = 0x8010
	FormatS16BE   Format = 0x9010
	FormatS32LE   Format = 0x8020
	FormatS32BE   Format = 0x9020
	FormatF32LE   Format = 0x8120
	FormatF32BE   Format = 0x9120
)

// Native-endian aliases matching SDL_AUDIO_S16, SDL_AUDIO_S32, and
// SDL_AUDIO_F32 on little-endian targets.
const (
	FormatS16 = FormatS16LE
	FormatS32 = FormatS32LE
	FormatF32 = FormatF32LE
)

const (
	formatMaskBits   = 0x00FF
	formatMaskFloat  = 0x0100
	formatMaskBig    = 0x1000
	formatMaskSigned = 0x8000
)

// Native returns the SDL representation of the format. FormatUnknown maps
// back to SDL's reserved zero value.
func (f Format) Native() uint16 { return uint16(f) }

// FormatFromNative converts an SDL_AudioFormat value. SDL's reserved zero
// value comes back as FormatUnknown.
func FormatFromNative(v uint16) Format { return Format(v) }

// BitSize returns the bits per sample.
func (f Format) BitSize() int { return int(f & formatMaskBits) }

// ByteSize returns the bytes per sample.
func (f Format) ByteSize() int { return f.BitSize() / 8 }

// IsFloat reports whether samples are floating point.
func (f Format) IsFloat() bool { return f&formatMaskFloat != 0 }

// IsBigEndian reports whether samples are big-endian.
func (f Format) IsBigEndian() bool { return f&formatMaskBig != 0 }

// IsSigned reports whether samples are signed integers (or float).
func (f Format) IsSigned() bool { return f&formatMaskSigned != 0 }

func (f Format) String() string {
	switch f {
	case FormatU8:
		return "u8"
	case FormatS8:
		return "s8"
	case FormatS16LE:
		return "s16le"
	case FormatS16BE:
		return "s16be"
	case FormatS32LE:
		return "s32le"
	case FormatS32BE:
		return "s32be"
	case FormatF32LE:
		return "f32le"
	case FormatF32BE:
		return "f32be"
	default:
		return "unknown"
	}
}

// Spec describes a stream format, mirroring SDL_AudioSpec.
type Spec struct {
	Format   Format
	Channels int32
	Freq     int32
}

// FrameSize returns the bytes per sample frame (one sample per channel).
func (s Spec) FrameSize() int { return s.Format.ByteSize() * int(s.Channels) }
