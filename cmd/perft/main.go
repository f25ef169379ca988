package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"golang.org/x/exp/slices"

	"github.com/LFS6502/aperture/crosscheck"
	"github.com/LFS6502/aperture/movegen"
)

func main() {
	fen := flag.String("fen", movegen.StartFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	hashMB := flag.Int("hash", 0, "Perft cache size in MB (0 disables the cache)")
	verify := flag.Bool("verify", false, "Compare root move counts against dragontoothmg and exit 1 on mismatch")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos, err := movegen.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *verify {
		os.Exit(runVerify(*fen, *depth))
	}

	if *divide {
		div := movegen.PerftDivide(&pos, *depth)
		type kv struct {
			m movegen.Move
			n uint64
		}
		arr := make([]kv, 0, len(div))
		var sum uint64
		for m, n := range div {
			arr = append(arr, kv{m, n})
			sum += n
		}
		// Sort moves for stable output
		slices.SortFunc(arr, func(a, b kv) int { return strings.Compare(a.m.String(), b.m.String()) })
		for _, x := range arr {
			fmt.Printf("%s: %d\n", x.m, x.n)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var table *movegen.PerftTable
	if *hashMB > 0 {
		table = movegen.NewPerftTable(*hashMB)
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		if table != nil {
			table.Clear()
		}
		totalNodes += movegen.PerftCached(&pos, *depth, table)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}

func runVerify(fen string, depth int) int {
	report, err := crosscheck.Compare(fen, depth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "crosscheck: %v\n", err)
		return 2
	}
	fmt.Printf("movegen: %d  dragontoothmg: %d\n", report.Nodes, report.ReferenceNodes)
	if report.OK() {
		fmt.Println("OK")
		return 0
	}
	for _, mm := range report.Mismatches {
		fmt.Println(mm)
	}
	return 1
}
