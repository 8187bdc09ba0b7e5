// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows

package caption

import (
	"fmt"
	"os"
	"syscall"
)

func mmapFile(f *os.File) (mmapData, error) {
	st, err := f.Stat()
	if err != nil {
		return mmapData{}, err
	}
	size := st.Size()
	if size == 0 {
		// syscall.Mmap rejects a zero-length mapping; an empty index is
		// a legitimate (if useless) file, so hand back an empty slice.
		return mmapData{f: f, d: []byte{}}, nil
	}
	if int64(int(size)) != size {
		return mmapData{}, fmt.Errorf("caption: index file too large to map: %d bytes", size)
	}
	data, err := syscall.Mmap(int(f.Fd()), 0, int(size), syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		return mmapData{}, fmt.Errorf("caption: mmap %s: %w", f.Name(), err)
	}
	return mmapData{f: f, d: data}, nil
}

func unmmapFile(m *mmapData) error {
	if len(m.d) == 0 {
		return nil
	}
	return syscall.Munmap(m.d)
}
