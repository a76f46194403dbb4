package memmap

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/samber/lo"
)

// Snapshot is one parsed view of a process's maps. It keeps the regions
// in file order together with the occurrence count of every backing
// path, so that repeated lookups against the same maps content don't
// re-scan the text. Snapshots are immutable once built.
type Snapshot struct {
	regions []*Region
	counts  map[string]int
}

// NewSnapshot parses lines into a snapshot. Malformed lines are skipped;
// they only ever show up at verbose log levels. Pseudo-labels such as
// [stack] count as backing paths for multiplicity purposes, anonymous
// mappings do not.
func NewSnapshot(lines []string) *Snapshot {
	regions := lo.FilterMap(lines, func(line string, _ int) (*Region, bool) {
		r, err := ParseRegion(line)
		if err != nil {
			glog.V(3).Infof("Skip maps line %q: %v", line, err)
			return nil, false
		}
		return r, true
	})
	counts := lo.CountValues(lo.FilterMap(regions, func(r *Region, _ int) (string, bool) {
		return r.Pathname, !r.Anonymous()
	}))
	return &Snapshot{regions: regions, counts: counts}
}

// Len returns the number of successfully parsed regions.
func (s *Snapshot) Len() int { return len(s.regions) }

// Resolve finds the first region in maps order containing addr and
// classifies it. It reports ErrAddressNotFound when addr is outside
// every region.
func (s *Snapshot) Resolve(addr uint64) (*Location, error) {
	for _, r := range s.regions {
		if !r.Contains(addr) {
			continue
		}
		return &Location{
			Kind:   Classify(r.Perms, r.Pathname),
			Perms:  r.Perms,
			Label:  s.label(r),
			Region: r,
		}, nil
	}
	return nil, fmt.Errorf("0x%x: %w", addr, ErrAddressNotFound)
}

func (s *Snapshot) label(r *Region) string {
	if r.Anonymous() {
		return AnonymousLabel
	}
	if n := s.counts[r.Pathname]; n > 1 {
		return fmt.Sprintf("%s [%d]", r.Pathname, n)
	}
	return r.Pathname
}

// Resolve classifies addr against a single use of lines. Callers
// resolving many addresses against the same maps content should build a
// Snapshot once instead.
func Resolve(addr uint64, lines []string) (*Location, error) {
	return NewSnapshot(lines).Resolve(addr)
}
