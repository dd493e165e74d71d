// Package audio binds SDL3's audio device and stream API.
//
// SDL3 routes all audio through streams: open a stream on a device with
// the format the application produces, push sample data with PutData, and
// SDL converts and mixes into whatever the hardware wants. Initialize the
// audio subsystem first with sdl3.Init(sdl3.InitAudio).
package audio

/*
#cgo pkg-config: sdl3
#include <SDL3/SDL.h>
*/
import "C"

import (
	"unsafe"

	_ "github.com/gosdl/sdl3" // registers the native error store
	"github.com/gosdl/sdl3/internal/fail"
)

// DeviceID identifies an audio device. The zero value is SDL's reserved
// invalid id.
type DeviceID uint32

// Default device ids, usable wherever a concrete DeviceID is accepted.
const (
	DefaultPlaybackDevice  DeviceID = 0xFFFFFFFF
	DefaultRecordingDevice DeviceID = 0xFFFFFFFE
)

// PlaybackDevices returns the available playback devices.
func PlaybackDevices() ([]DeviceID, error) {
	var count C.int
	ids := C.SDL_GetAudioPlaybackDevices(&count)
	if ids == nil {
		return nil, fail.Err()
	}
	defer C.SDL_free(unsafe.Pointer(ids))

	native := unsafe.Slice(ids, int(count))
	out := make([]DeviceID, len(native))
	for i, id := range native {
		out[i] = DeviceID(id)
	}
	return out, nil
}

// RecordingDevices returns the available recording devices.
func RecordingDevices() ([]DeviceID, error) {
	var count C.int
	ids := C.SDL_GetAudioRecordingDevices(&count)
	if ids == nil {
		return nil, fail.Err()
	}
	defer C.SDL_free(unsafe.Pointer(ids))

	native := unsafe.Slice(ids, int(count))
	out := make([]DeviceID, len(native))
	for i, id := range native {
		out[i] = DeviceID(id)
	}
	return out, nil
}

// Name returns the device's human-readable name.
func (d DeviceID) Name() (string, error) {
	name := C.SDL_GetAudioDeviceName(C.SDL_AudioDeviceID(d))
	if name == nil {
		return "", fail.Err()
	}
	return C.GoString(name), nil
}

// Stream wraps one SDL_AudioStream handle bound to a device. The handle is
// valid until Destroy.
type Stream struct {
	ptr *C.SDL_AudioStream
}

// OpenDeviceStream opens a device and binds a new stream to it in one
// step. spec is the format the application will produce (for playback) or
// wants to consume (for recording); pass nil to use the device's format.
// The stream starts paused; call Resume once ready to feed it.
func OpenDeviceStream(dev DeviceID, spec *Spec) (*Stream, error) {
	var cSpec *C.SDL_AudioSpec
	if spec != nil {
		cSpec = &C.SDL_AudioSpec{
			format:   C.SDL_AudioFormat(spec.Format),
			channels: C.int(spec.Channels),
			freq:     C.int(spec.Freq),
		}
	}
	ptr := C.SDL_OpenAudioDeviceStream(C.SDL_AudioDeviceID(dev), cSpec, nil, nil)
	if ptr == nil {
		return nil, fail.Err()
	}
	return &Stream{ptr: ptr}, nil
}

// Destroy unbinds the stream, closes the device it opened, and invalidates
// the handle.
func (s *Stream) Destroy() {
	if s == nil || s.ptr == nil {
		return
	}
	C.SDL_DestroyAudioStream(s.ptr)
	s.ptr = nil
}

func (s *Stream) valid() bool { return s != nil && s.ptr != nil }

// PutData queues sample data in the stream's input format.
func (s *Stream) PutData(buf []byte) error {
	if !s.valid() {
		return fail.InvalidParam("stream")
	}
	if len(buf) == 0 {
		return nil
	}
	return fail.CheckBool(bool(C.SDL_PutAudioStreamData(s.ptr, unsafe.Pointer(&buf[0]), C.int(len(buf)))))
}

// GetData fills buf with converted data and returns the number of bytes
// written, which may be less than len(buf).
func (s *Stream) GetData(buf []byte) (int, error) {
	if !s.valid() {
		return 0, fail.InvalidParam("stream")
	}
	if len(buf) == 0 {
		return 0, nil
	}
	return fail.CheckCode(int(C.SDL_GetAudioStreamData(s.ptr, unsafe.Pointer(&buf[0]), C.int(len(buf)))))
}

// Available returns the number of converted bytes ready to read.
func (s *Stream) Available() (int, error) {
	if !s.valid() {
		return 0, fail.InvalidParam("stream")
	}
	return fail.CheckCode(int(C.SDL_GetAudioStreamAvailable(s.ptr)))
}

// Queued returns the number of bytes queued but not yet converted.
func (s *Stream) Queued() (int, error) {
	if !s.valid() {
		return 0, fail.InvalidParam("stream")
	}
	return fail.CheckCode(int(C.SDL_GetAudioStreamQueued(s.ptr)))
}

// Flush marks queued data as complete so it drains even if it is shorter
// than SDL's conversion window.
func (s *Stream) Flush() error {
	if !s.valid() {
		return fail.InvalidParam("stream")
	}
	return fail.CheckBool(bool(C.SDL_FlushAudioStream(s.ptr)))
}

// Clear drops all queued data.
func (s *Stream) Clear() error {
	if !s.valid() {
		return fail.InvalidParam("stream")
	}
	return fail.CheckBool(bool(C.SDL_ClearAudioStream(s.ptr)))
}

// Pause stops the device feeding this stream.
func (s *Stream) Pause() error {
	if !s.valid() {
		return fail.InvalidParam("stream")
	}
	return fail.CheckBool(bool(C.SDL_PauseAudioStreamDevice(s.ptr)))
}

// Resume starts the device feeding this stream. Streams opened with
// OpenDeviceStream begin paused.
func (s *Stream) Resume() error {
	if !s.valid() {
		return fail.InvalidParam("stream")
	}
	return fail.CheckBool(bool(C.SDL_ResumeAudioStreamDevice(s.ptr)))
}

// Format returns the stream's input and output formats.
func (s *Stream) Format() (src, dst Spec, err error) {
	if !s.valid() {
		return Spec{}, Spec{}, fail.InvalidParam("stream")
	}
	var cSrc, cDst C.SDL_AudioSpec
	if err := fail.CheckBool(bool(C.SDL_GetAudioStreamFormat(s.ptr, &cSrc, &cDst))); err != nil {
		return Spec{}, Spec{}, err
	}
	src = Spec{Format: Format(cSrc.format), Channels: int32(cSrc.channels), Freq: int32(cSrc.freq)}
	dst = Spec{Format: Format(cDst.format), Channels: int32(cDst.channels), Freq: int32(cDst.freq)}
	return src, dst, nil
}

// Gain returns the stream's gain multiplier (1.0 means unchanged).
func (s *Stream) Gain() (float32, error) {
	if !s.valid() {
		return 0, fail.InvalidParam("stream")
	}
	v := C.SDL_GetAudioStreamGain(s.ptr)
	if v < 0 {
		return 0, fail.Err()
	}
	return float32(v), nil
}

// SetGain sets the stream's gain multiplier.
func (s *Stream) SetGain(gain float32) error {
	if !s.valid() {
		return fail.InvalidParam("stream")
	}
	return fail.CheckBool(bool(C.SDL_SetAudioStreamGain(s.ptr, C.float(gain))))
}
