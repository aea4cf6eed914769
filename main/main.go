package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/IllusiveMan196/strbridge"
)

// Profiling harness for the conversion hot paths.
func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	input := strings.Repeat("café 日本語 \U0001F600 ", 256)
	for i := 0; i < 10000; i++ {
		buf := strbridge.RawFromUTF8(input)
		buf.Release()
		w, err := strbridge.WideFromUTF8(input)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := strbridge.UTF8FromWide(w); err != nil {
			log.Fatal(err)
		}
	}

	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Fatal(err)
	}
}
