//go:build windows

package alloc

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

// pageSize returns the system page size.
func pageSize() int {
	return os.Getpagesize()
}

// mapAnon commits length bytes of fresh read/write memory with VirtualAlloc.
func mapAnon(length int) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(length),
		windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), length), nil
}

// unmapAnon releases the whole region that starts at mem.
func unmapAnon(mem []byte, _ int) error {
	// Use unsafe.Pointer in a single expression to avoid linter warnings
	return windows.VirtualFree(uintptr(unsafe.Pointer(unsafe.SliceData(mem))), 0, windows.MEM_RELEASE)
}
