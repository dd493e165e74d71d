// Package tray manages system tray (notification area) icons and their
// menus.
//
// Entry callbacks fire on the thread running the event loop, so the
// process must keep pumping events for clicks to be delivered. All tray
// calls must happen on the main thread.
package tray

/*
#cgo pkg-config: sdl3
#include <stdlib.h>
#include <SDL3/SDL.h>

extern void goTrayEntryCallback(void *userdata, SDL_TrayEntry *entry);

static void sdl3HookTrayEntry(SDL_TrayEntry *entry) {
	SDL_SetTrayEntryCallback(entry, goTrayEntryCallback, NULL);
}
*/
import "C"

import (
	"image"
	"sync"
	"unsafe"

	_ "github.com/gosdl/sdl3" // registers the native error store
	"github.com/gosdl/sdl3/internal/fail"
	"github.com/gosdl/sdl3/internal/surface"
)

// EntryFlags describe the kind and initial state of a menu entry.
type EntryFlags uint32

const (
	EntryButton   EntryFlags = 0x00000001
	EntryCheckbox EntryFlags = 0x00000002
	EntrySubmenu  EntryFlags = 0x00000004
	EntryChecked  EntryFlags = 0x40000000
	EntryDisabled EntryFlags = 0x80000000
)

// callbacks maps native entry handles to Go callbacks. SDL invokes the
// exported bridge with the entry pointer, which keys the lookup.
var callbacks struct {
	sync.Mutex
	m map[uintptr]func()
}

func setCallback(entry *C.SDL_TrayEntry, fn func()) {
	callbacks.Lock()
	defer callbacks.Unlock()
	if callbacks.m == nil {
		callbacks.m = make(map[uintptr]func())
	}
	key := uintptr(unsafe.Pointer(entry))
	if fn == nil {
		delete(callbacks.m, key)
		return
	}
	callbacks.m[key] = fn
}

func dropCallback(entry *C.SDL_TrayEntry) {
	callbacks.Lock()
	defer callbacks.Unlock()
	delete(callbacks.m, uintptr(unsafe.Pointer(entry)))
}

// Tray wraps one SDL_Tray handle.
type Tray struct {
	ptr *C.SDL_Tray
}

// Create adds an icon to the system tray. icon may be nil for a
// label-only tray on platforms that allow it; tooltip may be empty.
func Create(icon image.Image, tooltip string) (*Tray, error) {
	var cTooltip *C.char
	if tooltip != "" {
		cTooltip = C.CString(tooltip)
		defer C.free(unsafe.Pointer(cTooltip))
	}

	var surf *C.SDL_Surface
	if icon != nil {
		pix, w, h := surface.RGBA(icon)
		cPix := C.CBytes(pix)
		defer C.free(cPix)
		surf = C.SDL_CreateSurfaceFrom(C.int(w), C.int(h), C.SDL_PIXELFORMAT_RGBA32, cPix, C.int(w*4))
		if surf == nil {
			return nil, fail.Err()
		}
		defer C.SDL_DestroySurface(surf)
	}

	ptr := C.SDL_CreateTray(surf, cTooltip)
	if ptr == nil {
		return nil, fail.Err()
	}
	return &Tray{ptr: ptr}, nil
}

func (t *Tray) valid() bool { return t != nil && t.ptr != nil }

// SetIcon replaces the tray's icon; nil removes it.
func (t *Tray) SetIcon(icon image.Image) error {
	if !t.valid() {
		return fail.InvalidParam("tray")
	}
	if icon == nil {
		C.SDL_SetTrayIcon(t.ptr, nil)
		return nil
	}
	pix, w, h := surface.RGBA(icon)
	cPix := C.CBytes(pix)
	defer C.free(cPix)
	surf := C.SDL_CreateSurfaceFrom(C.int(w), C.int(h), C.SDL_PIXELFORMAT_RGBA32, cPix, C.int(w*4))
	if surf == nil {
		return fail.Err()
	}
	defer C.SDL_DestroySurface(surf)
	C.SDL_SetTrayIcon(t.ptr, surf)
	return nil
}

// SetTooltip replaces the tray's tooltip; an empty string removes it.
func (t *Tray) SetTooltip(tooltip string) error {
	if !t.valid() {
		return fail.InvalidParam("tray")
	}
	var cTooltip *C.char
	if tooltip != "" {
		cTooltip = C.CString(tooltip)
		defer C.free(unsafe.Pointer(cTooltip))
	}
	C.SDL_SetTrayTooltip(t.ptr, cTooltip)
	return nil
}

// CreateMenu attaches a menu to the tray, replacing any existing one.
func (t *Tray) CreateMenu() (*Menu, error) {
	if !t.valid() {
		return nil, fail.InvalidParam("tray")
	}
	ptr := C.SDL_CreateTrayMenu(t.ptr)
	if ptr == nil {
		return nil, fail.Err()
	}
	return &Menu{ptr: ptr}, nil
}

// Menu returns the menu attached to the tray, or nil if none is set.
func (t *Tray) Menu() *Menu {
	if !t.valid() {
		return nil
	}
	ptr := C.SDL_GetTrayMenu(t.ptr)
	if ptr == nil {
		return nil
	}
	return &Menu{ptr: ptr}
}

// Destroy removes the tray icon and frees all its menus and entries.
func (t *Tray) Destroy() {
	if !t.valid() {
		return
	}
	C.SDL_DestroyTray(t.ptr)
	t.ptr = nil
}

// Menu wraps one SDL_TrayMenu handle. Menus are owned by their tray or
// parent entry and are freed with it.
type Menu struct {
	ptr *C.SDL_TrayMenu
}

func (m *Menu) valid() bool { return m != nil && m.ptr != nil }

// AppendEntry adds an entry at the end of the menu. An empty label
// inserts a separator.
func (m *Menu) AppendEntry(label string, flags EntryFlags) (*Entry, error) {
	return m.InsertEntry(-1, label, flags)
}

// InsertEntry adds an entry at the given position; -1 appends. An empty
// label inserts a separator.
func (m *Menu) InsertEntry(pos int, label string, flags EntryFlags) (*Entry, error) {
	if !m.valid() {
		return nil, fail.InvalidParam("menu")
	}
	var cLabel *C.char
	if label != "" {
		cLabel = C.CString(label)
		defer C.free(unsafe.Pointer(cLabel))
	}
	ptr := C.SDL_InsertTrayEntryAt(m.ptr, C.int(pos), cLabel, C.SDL_TrayEntryFlags(flags))
	if ptr == nil {
		return nil, fail.Err()
	}
	return &Entry{ptr: ptr}, nil
}

// Entry wraps one SDL_TrayEntry handle.
type Entry struct {
	ptr *C.SDL_TrayEntry
}

func (e *Entry) valid() bool { return e != nil && e.ptr != nil }

// Remove deletes the entry from its menu, along with any submenu.
func (e *Entry) Remove() {
	if !e.valid() {
		return
	}
	dropCallback(e.ptr)
	C.SDL_RemoveTrayEntry(e.ptr)
	e.ptr = nil
}

// SetLabel changes the entry's label.
func (e *Entry) SetLabel(label string) error {
	if !e.valid() {
		return fail.InvalidParam("entry")
	}
	cLabel := C.CString(label)
	defer C.free(unsafe.Pointer(cLabel))
	C.SDL_SetTrayEntryLabel(e.ptr, cLabel)
	return nil
}

// Label returns the entry's label, or the empty string for separators.
func (e *Entry) Label() string {
	if !e.valid() {
		return ""
	}
	return C.GoString(C.SDL_GetTrayEntryLabel(e.ptr))
}

// SetChecked sets the check state of a checkbox entry.
func (e *Entry) SetChecked(checked bool) error {
	if !e.valid() {
		return fail.InvalidParam("entry")
	}
	C.SDL_SetTrayEntryChecked(e.ptr, C.bool(checked))
	return nil
}

// Checked reports the check state of a checkbox entry.
func (e *Entry) Checked() bool {
	if !e.valid() {
		return false
	}
	return bool(C.SDL_GetTrayEntryChecked(e.ptr))
}

// SetEnabled enables or disables the entry.
func (e *Entry) SetEnabled(enabled bool) error {
	if !e.valid() {
		return fail.InvalidParam("entry")
	}
	C.SDL_SetTrayEntryEnabled(e.ptr, C.bool(enabled))
	return nil
}

// Enabled reports whether the entry accepts clicks.
func (e *Entry) Enabled() bool {
	if !e.valid() {
		return false
	}
	return bool(C.SDL_GetTrayEntryEnabled(e.ptr))
}

// OnClick registers fn to run when the entry is clicked; nil removes the
// callback. The callback runs on the event loop thread.
func (e *Entry) OnClick(fn func()) error {
	if !e.valid() {
		return fail.InvalidParam("entry")
	}
	setCallback(e.ptr, fn)
	if fn != nil {
		C.sdl3HookTrayEntry(e.ptr)
	} else {
		C.SDL_SetTrayEntryCallback(e.ptr, nil, nil)
	}
	return nil
}

// Click simulates a click on the entry, firing its callback.
func (e *Entry) Click() {
	if !e.valid() {
		return
	}
	C.SDL_ClickTrayEntry(e.ptr)
}

// CreateSubmenu attaches a submenu to an entry created with
// EntrySubmenu.
func (e *Entry) CreateSubmenu() (*Menu, error) {
	if !e.valid() {
		return nil, fail.InvalidParam("entry")
	}
	ptr := C.SDL_CreateTraySubmenu(e.ptr)
	if ptr == nil {
		return nil, fail.Err()
	}
	return &Menu{ptr: ptr}, nil
}
