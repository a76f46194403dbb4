package memmap

import "strings"

// Classify maps a permission string and backing pathname to a region
// kind. Rules are ordered: the stack and heap pseudo-labels win over any
// permission pattern, since e.g. the stack is also rw-p.
func Classify(perms, pathname string) Kind {
	switch {
	case strings.Contains(pathname, LabelStack):
		return StackKind
	case strings.Contains(pathname, LabelHeap):
		return HeapKind
	case perms == PermExecPrivate:
		return TextKind
	case perms == PermDataPrivate && strings.Contains(pathname, sharedObjectSuffix):
		return SharedDataKind
	case perms == PermReadPrivate && strings.Contains(pathname, sharedObjectSuffix):
		return SharedRODataKind
	case perms == PermDataPrivate:
		return DataOrBssKind
	default:
		return OtherKind
	}
}
