// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package caption

import (
	"fmt"
	"os"
	"syscall"
	"unsafe"
)

func mmapFile(f *os.File) (mmapData, error) {
	st, err := f.Stat()
	if err != nil {
		return mmapData{}, err
	}
	size := st.Size()
	if size == 0 {
		return mmapData{f: f, d: []byte{}}, nil
	}

	low := uint32(size)
	high := uint32(size >> 32)
	h, err := syscall.CreateFileMapping(syscall.Handle(f.Fd()), nil, syscall.PAGE_READONLY, high, low, nil)
	if err != nil {
		return mmapData{}, fmt.Errorf("caption: CreateFileMapping %s: %w", f.Name(), err)
	}
	defer syscall.CloseHandle(h)

	addr, err := syscall.MapViewOfFile(h, syscall.FILE_MAP_READ, 0, 0, uintptr(size))
	if err != nil {
		return mmapData{}, fmt.Errorf("caption: MapViewOfFile %s: %w", f.Name(), err)
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), int(size))
	return mmapData{f: f, d: data}, nil
}

func unmmapFile(m *mmapData) error {
	if len(m.d) == 0 {
		return nil
	}
	addr := uintptr(unsafe.Pointer(&m.d[0]))
	return syscall.UnmapViewOfFile(addr)
}
