package memmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegion(t *testing.T) {
	parseTests := []struct {
		name string
		line string
		want *Region
	}{
		{
			name: "file backed mapping",
			line: "00400000-0040c000 r-xp 00000000 fc:01 123456 /usr/bin/cat",
			want: &Region{StartAddr: 0x400000, EndAddr: 0x40c000, Perms: "r-xp", Pathname: "/usr/bin/cat"},
		},
		{
			name: "anonymous mapping",
			line: "7f1200000000-7f1200021000 rw-p 00000000 00:00 0",
			want: &Region{StartAddr: 0x7f1200000000, EndAddr: 0x7f1200021000, Perms: "rw-p"},
		},
		{
			name: "stack pseudo label",
			line: "7ffc7a9c8000-7ffc7a9e9000 rw-p 00000000 00:00 0                          [stack]",
			want: &Region{StartAddr: 0x7ffc7a9c8000, EndAddr: 0x7ffc7a9e9000, Perms: "rw-p", Pathname: "[stack]"},
		},
		{
			// the pathname is a single field, anything past the first
			// token is dropped
			name: "path with embedded space is truncated",
			line: "08048000-08056000 r-xp 00000000 03:0c 64593 /opt/My App/bin",
			want: &Region{StartAddr: 0x08048000, EndAddr: 0x08056000, Perms: "r-xp", Pathname: "/opt/My"},
		},
	}
	for _, tt := range parseTests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRegion(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRegionMalformed(t *testing.T) {
	malformedTests := []struct {
		name string
		line string
	}{
		{name: "empty line", line: ""},
		{name: "free text", line: "invalid format line"},
		{name: "four fields", line: "00400000-0040c000 r-xp 00000000 fc:01"},
		{name: "range without separator", line: "00400000 r-xp 00000000 fc:01 123456"},
		{name: "range with two separators", line: "0040-0000-c000 r-xp 00000000 fc:01 123456"},
		{name: "non hex start", line: "zz400000-0040c000 r-xp 00000000 fc:01 123456"},
		{name: "non hex end", line: "00400000-zz40c000 r-xp 00000000 fc:01 123456"},
	}
	for _, tt := range malformedTests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRegion(tt.line)
			require.ErrorIs(t, err, ErrMalformedLine)
			assert.Nil(t, got)
		})
	}
}
