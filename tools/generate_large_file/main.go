// Large transaction file generator
//
// This tool generates a large transaction CSV for performance testing and
// profiling. It emits a realistic mix of deposits, withdrawals and dispute
// traffic, including a share of records the engine will reject.
//
// Usage:
//
//	go run main.go > large.csv
//	go run main.go 20000000 > large.csv  # Specify target size in bytes
package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
)

const (
	defaultTargetSize = 10 * 1024 * 1024 // 10MB
	clientCount       = 500
)

func main() {
	targetSize := defaultTargetSize
	if len(os.Args) > 1 {
		size, err := strconv.Atoi(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid target size %q: %v\n", os.Args[1], err)
			os.Exit(1)
		}
		targetSize = size
	}

	rng := rand.New(rand.NewSource(42))
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	written, _ := fmt.Fprintln(w, "type, client, tx, amount")
	total := written

	// Transaction ids already emitted, so dispute traffic can reference
	// real history most of the time.
	var issued []uint32
	nextTx := uint32(1)

	for total < targetSize {
		client := rng.Intn(clientCount) + 1
		var line string

		switch roll := rng.Intn(100); {
		case roll < 60 || len(issued) == 0:
			amount := float64(rng.Intn(1_000_000)) / 100
			line = fmt.Sprintf("deposit, %d, %d, %.4f\n", client, nextTx, amount)
			issued = append(issued, nextTx)
			nextTx++
		case roll < 85:
			amount := float64(rng.Intn(1_000_000)) / 100
			line = fmt.Sprintf("withdrawal, %d, %d, %.4f\n", client, nextTx, amount)
			issued = append(issued, nextTx)
			nextTx++
		case roll < 93:
			tx := issued[rng.Intn(len(issued))]
			line = fmt.Sprintf("dispute, %d, %d,\n", client, tx)
		case roll < 97:
			tx := issued[rng.Intn(len(issued))]
			line = fmt.Sprintf("resolve, %d, %d,\n", client, tx)
		default:
			tx := issued[rng.Intn(len(issued))]
			line = fmt.Sprintf("chargeback, %d, %d,\n", client, tx)
		}

		n, err := w.WriteString(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
			os.Exit(1)
		}
		total += n
	}

	fmt.Fprintf(os.Stderr, "generated %d bytes, %d transactions\n", total, nextTx-1)
}
