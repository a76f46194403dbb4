package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"reflect"
	"unsafe"

	"github.com/golang/glog"
	"github.com/vietanhduong/ptrinfo/pkg/memmap"
	"github.com/vietanhduong/ptrinfo/pkg/proc"
)

var global = [64]byte{1}

func main() {
	flag.Parse()

	lines, err := proc.SelfMapLines()
	if err != nil {
		glog.Errorf("Failed to read own maps: %v", err)
		os.Exit(1)
	}
	snap := memmap.NewSnapshot(lines)
	glog.Infof("Parsed %d mapped regions", snap.Len())

	local := 42
	heap := make([]byte, 1<<20)

	describe(snap, "function main.main", uint64(reflect.ValueOf(main).Pointer()))
	describe(snap, "package-level variable", uint64(uintptr(unsafe.Pointer(&global))))
	describe(snap, "local variable", uint64(uintptr(unsafe.Pointer(&local))))
	describe(snap, "1MiB allocation", uint64(uintptr(unsafe.Pointer(&heap[0]))))
}

func describe(snap *memmap.Snapshot, what string, addr uint64) {
	loc, err := snap.Resolve(addr)
	if errors.Is(err, memmap.ErrAddressNotFound) {
		fmt.Printf("%s at 0x%x does not belong to any known section\n", what, addr)
		return
	}
	fmt.Printf("%s at 0x%x is in the %s\n", what, addr, loc)
}
