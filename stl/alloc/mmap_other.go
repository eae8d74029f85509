//go:build !unix && !windows

package alloc

import "os"

func pageSize() int {
	return os.Getpagesize()
}

func mapAnon(int) ([]byte, error) {
	return nil, ErrUnsupported
}

func unmapAnon([]byte, int) error {
	return ErrUnsupported
}
