package memmap

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseRegion parses one maps record of the form
//
//	START-END PERMS OFFSET DEV INODE [PATHNAME]
//
// where START and END are hex. Only fields 0, 1 and 5 are consumed. The
// pathname, when present, is a single field: paths containing embedded
// whitespace are truncated at the first token. Lines with fewer than 5
// fields, a first field that is not exactly START-END, or non-hex
// addresses report ErrMalformedLine.
func ParseRegion(line string) (*Region, error) {
	parts := strings.Fields(line)
	if len(parts) < 5 {
		return nil, fmt.Errorf("%w: expected at least 5 fields, got %d", ErrMalformedLine, len(parts))
	}

	addrs := strings.Split(parts[0], "-")
	if len(addrs) != 2 {
		return nil, fmt.Errorf("%w: bad address range %q", ErrMalformedLine, parts[0])
	}

	start, err := strconv.ParseUint(addrs[0], 16, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: start address %q: %v", ErrMalformedLine, addrs[0], err)
	}
	end, err := strconv.ParseUint(addrs[1], 16, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: end address %q: %v", ErrMalformedLine, addrs[1], err)
	}

	r := &Region{
		StartAddr: start,
		EndAddr:   end,
		Perms:     parts[1],
	}
	if len(parts) > 5 {
		r.Pathname = parts[5]
	}
	return r, nil
}
