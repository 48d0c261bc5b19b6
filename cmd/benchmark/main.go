package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/haavikko/sananmuunnos/pkg/envelope"
	"github.com/haavikko/sananmuunnos/pkg/headswap"
)

const (
	iterations = 100000
	warmup     = 1000
	boxWidth   = 62

	// ANSI color codes
	colorReset  = "\033[0m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

var line = strings.Repeat("─", boxWidth)

func main() {
	fmt.Printf("Iterations: %d (warmup: %d)\n", iterations, warmup)
	fmt.Println("Reference: 1 second = 1,000,000,000 ns")
	fmt.Println()

	// Test data
	pair := "fooma barbu"
	sentence := "vuoirkage mäölnö ja muita sanoja joita muunnetaan pareittain"
	longWord := strings.Repeat("abcde", 2000)
	manyWords := strings.Repeat("fooma barbu ", 500)

	printHeader("FULL TRANSFORM THROUGHPUT")
	bench("Word pair", 1, func() { headswap.TransformString(pair) })
	bench("Sentence (8 words)", 1, func() { headswap.TransformString(sentence) })
	bench("Long single word (10 kB)", 100, func() { headswap.TransformString(longWord) })
	bench("1000 words", 100, func() { headswap.TransformString(manyWords) })
	printFooter()
	fmt.Println()

	printHeader("COMPONENT BREAKDOWN")
	bench("Tokenizer only", 1, func() {
		tok := headswap.NewTokenizer(sentence)
		for {
			if _, ok, _ := tok.Next(); !ok {
				return
			}
		}
	})
	bench("Pairing stream", 1, func() {
		stream := headswap.Transform(sentence)
		for {
			if _, ok, _ := stream.Next(); !ok {
				return
			}
		}
	})
	quoted := []byte(`"vuoirkage mäölnö"`)
	bench("Envelope decode", 1, func() { envelope.Decode(quoted) })
	bench("Envelope encode", 1, func() { envelope.Encode(sentence) })
	printFooter()
}

// bench runs fn and prints its throughput. divisor scales the iteration
// count down for expensive inputs.
func bench(name string, divisor int, fn func()) {
	iters := iterations / divisor
	warm := warmup / divisor
	if warm == 0 {
		warm = 1
	}

	for i := 0; i < warm; i++ {
		fn()
	}

	start := time.Now()
	for i := 0; i < iters; i++ {
		fn()
	}
	elapsed := time.Since(start)

	opsPerSec := float64(iters) / elapsed.Seconds()
	nsPerOp := float64(elapsed.Nanoseconds()) / float64(iters)

	// Truncate name if too long
	displayName := name
	if len(displayName) > 26 {
		displayName = displayName[:26]
	}

	// Format with colors - build plain string for padding, colored for display
	plain := fmt.Sprintf("  %-26s %10.0f ops/sec %8.0f ns", displayName, opsPerSec, nsPerOp)
	padded := padLine(plain)

	colored := fmt.Sprintf("  %-26s %s%10.0f%s ops/sec %s%8.0f%s ns",
		displayName,
		colorGreen, opsPerSec, colorReset,
		colorYellow, nsPerOp, colorReset)

	extraPad := len(padded) - len(plain)
	if extraPad > 0 {
		colored += strings.Repeat(" ", extraPad)
	}

	fmt.Println(colorDim + "│" + colorReset + colored + colorDim + "│" + colorReset)
}

func padLine(content string) string {
	if len(content) >= boxWidth {
		return content[:boxWidth]
	}
	return content + strings.Repeat(" ", boxWidth-len(content))
}

func printHeader(title string) {
	fmt.Println(colorDim + "┌" + line + "┐" + colorReset)
	printTitleRow("  " + title)
	fmt.Println(colorDim + "├" + line + "┤" + colorReset)
}

func printFooter() {
	fmt.Println(colorDim + "└" + line + "┘" + colorReset)
}

func printTitleRow(content string) {
	fmt.Println(colorDim + "│" + colorReset + colorCyan + padLine(content) + colorReset + colorDim + "│" + colorReset)
}
