// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package caption

import "os"

// mmapData is a read-only view of a file mapped into memory. d aliases
// the file's bytes directly: reads against it copy nothing.
type mmapData struct {
	f *os.File
	d []byte
}

func mmapOpen(path string) (mmapData, error) {
	f, err := os.Open(path)
	if err != nil {
		return mmapData{}, err
	}
	m, err := mmapFile(f)
	if err != nil {
		f.Close()
		return mmapData{}, err
	}
	return m, nil
}

func (m *mmapData) Close() error {
	if m.d == nil {
		return nil
	}
	err := unmmapFile(m)
	m.d = nil
	if cerr := m.f.Close(); err == nil {
		err = cerr
	}
	return err
}
