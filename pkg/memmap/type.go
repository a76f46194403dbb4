package memmap

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine is reported by ParseRegion for lines that are not
	// valid maps records. Callers are expected to skip such lines.
	ErrMalformedLine = errors.New("malformed maps line")
	// ErrAddressNotFound is reported when an address falls outside every
	// mapped region in the snapshot.
	ErrAddressNotFound = errors.New("address not in any mapped region")
)

// Permission strings as they appear in /proc/<pid>/maps.
const (
	PermExecPrivate = "r-xp"
	PermDataPrivate = "rw-p"
	PermReadPrivate = "r--p"
)

// Pseudo-pathnames the kernel uses for special regions.
const (
	LabelStack = "[stack]"
	LabelHeap  = "[heap]"
)

// AnonymousLabel is the display label for regions with no backing path.
const AnonymousLabel = "anonymous"

const sharedObjectSuffix = ".so"

// Region is one parsed maps record. Only the address range, the
// permission string and the pathname are retained; offset, device and
// inode are not consumed. An empty Pathname means an anonymous mapping.
type Region struct {
	StartAddr uint64
	EndAddr   uint64
	Perms     string
	Pathname  string
}

func (r *Region) String() string {
	if r == nil {
		return ""
	}
	return fmt.Sprintf("0x%016x-0x%016x %s %s", r.StartAddr, r.EndAddr, r.Perms, r.Pathname)
}

// Anonymous reports whether the region has no backing path.
func (r *Region) Anonymous() bool { return r.Pathname == "" }

// Contains reports whether addr falls inside the region. Both ends are
// inclusive; when two regions abut, the boundary address belongs to
// whichever comes first in maps order.
func (r *Region) Contains(addr uint64) bool {
	return addr >= r.StartAddr && addr <= r.EndAddr
}

type Kind string

const (
	StackKind        Kind = "stack"
	HeapKind         Kind = "heap"
	TextKind         Kind = "text (executable code)"
	SharedDataKind   Kind = "data in shared library"
	SharedRODataKind Kind = "read-only data in shared library"
	DataOrBssKind    Kind = "data or BSS"
	OtherKind        Kind = "other"
)

// Location describes where an address lives: the kind of region, its raw
// permission string, a display label for the backing path and the
// matched record itself. Label is AnonymousLabel for anonymous regions;
// for a path mapped more than once in the snapshot it carries the
// occurrence count, e.g. "/usr/lib/libc.so.6 [4]".
type Location struct {
	Kind   Kind
	Perms  string
	Label  string
	Region *Region
}

func (l *Location) String() string {
	if l == nil {
		return ""
	}
	return fmt.Sprintf("%s section, permissions: %s, associated file: %s", l.Kind, l.Perms, l.Label)
}
