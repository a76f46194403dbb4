package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/vietanhduong/ptrinfo/pkg/memmap"
	"github.com/vietanhduong/ptrinfo/pkg/proc"
)

func main() {
	var pid int
	var addrStr string
	flag.IntVar(&pid, "pid", -1, "Target process id. Defaults to the current process.")
	flag.StringVar(&addrStr, "addr", "", "Address to resolve (hex, optional 0x prefix)")
	flag.Parse()

	if addrStr == "" {
		glog.Errorf("No address is specified")
		os.Exit(1)
	}

	addr, err := strconv.ParseUint(strings.TrimPrefix(addrStr, "0x"), 16, 64)
	if err != nil {
		glog.Errorf("Invalid address %q: %v", addrStr, err)
		os.Exit(1)
	}

	var lines []string
	if pid == -1 {
		lines, err = proc.SelfMapLines()
	} else {
		lines, err = proc.ReadMapLines(pid)
	}
	if err != nil {
		glog.Errorf("Failed to read maps: %v", err)
		os.Exit(1)
	}

	loc, err := memmap.Resolve(addr, lines)
	if err != nil {
		if errors.Is(err, memmap.ErrAddressNotFound) {
			fmt.Printf("The address 0x%x does not belong to any known section.\n", addr)
			return
		}
		glog.Errorf("Failed to resolve address 0x%x: %v", addr, err)
		os.Exit(1)
	}

	fmt.Printf("The address 0x%x is in the %s\n", addr, loc)
}
