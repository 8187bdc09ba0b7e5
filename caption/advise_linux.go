//go:build linux

package caption

import (
	"os"

	"golang.org/x/sys/unix"
)

// adviseRandomAccess hints the kernel that reads against the mapping
// will not follow a sequential pattern: lexicon binary search and the
// n-gram cursor scan jump around the file rather than streaming it, the
// same access pattern the pack's bucketteer reader advises for.
// Best-effort; failures are not fatal to opening the index.
func adviseRandomAccess(f *os.File) {
	if f == nil {
		return
	}
	_ = unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_RANDOM)
}
