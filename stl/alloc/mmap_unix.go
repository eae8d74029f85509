//go:build unix

package alloc

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// pageSize returns the system page size.
func pageSize() int {
	return unix.Getpagesize()
}

// mapAnon creates a private anonymous read/write mapping of length bytes.
func mapAnon(length int) ([]byte, error) {
	return unix.Mmap(-1, 0, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

// unmapAnon removes the mapping that starts at mem.
//
// unix.Munmap identifies a mapping by its full extent, so the slice is
// re-extended to the mapped length first.
func unmapAnon(mem []byte, length int) error {
	return unix.Munmap(unsafe.Slice(unsafe.SliceData(mem), length))
}
