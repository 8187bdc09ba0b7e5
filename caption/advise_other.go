//go:build !linux

package caption

import "os"

// adviseRandomAccess is a no-op outside Linux: posix_fadvise has no
// portable equivalent on Windows or BSD/Darwin worth shelling out for
// here.
func adviseRandomAccess(f *os.File) {}
