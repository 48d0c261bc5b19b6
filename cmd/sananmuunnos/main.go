package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/haavikko/sananmuunnos/pkg/envelope"
	"github.com/haavikko/sananmuunnos/pkg/headswap"
)

var useEnvelope = flag.Bool("envelope", false, "treat input and output as JSON-quoted strings")

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: sananmuunnos [-envelope] [text...]")
		fmt.Fprintln(os.Stderr, "       sananmuunnos [-envelope]            (interactive mode)")
		flag.PrintDefaults()
	}
	flag.Parse()

	// If text provided as arguments, transform and exit
	if flag.NArg() > 0 {
		out, err := transform(strings.Join(flag.Args(), " "))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(out)
		return
	}

	// Interactive mode
	fmt.Println("sananmuunnos (interactive mode)")
	fmt.Println("Type a sentence, press Enter to transform. Ctrl+C to exit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		out, err := transform(scanner.Text())
		if err != nil {
			fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
			continue
		}
		fmt.Printf("  %s\n\n", out)
	}
}

func transform(input string) (string, error) {
	if !*useEnvelope {
		return headswap.TransformString(input)
	}

	text, err := envelope.Decode([]byte(input))
	if err != nil {
		return "", err
	}
	out, err := headswap.TransformString(text)
	if err != nil {
		return "", err
	}
	encoded, err := envelope.Encode(out)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
