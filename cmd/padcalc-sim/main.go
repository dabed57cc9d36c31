// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command padcalc-sim runs the keypad calculator against a simulated keypad
// and display. Keys come from the terminal, or from a tape file with -i.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/ezrec/padcalc/config"
	"github.com/ezrec/padcalc/device"
	"github.com/ezrec/padcalc/hw"
	"github.com/ezrec/padcalc/keypad"
	"github.com/ezrec/padcalc/lcd"
)

func render(out io.Writer, screen *lcd.Screen, raw bool) {
	text := screen.String()
	if raw {
		text = "\x1b[H\x1b[2J" + strings.ReplaceAll(text, "\n", "\r\n")
	}
	fmt.Fprint(out, text)
}

func main() {
	var conf string
	var input string
	var verbose bool

	flag.StringVar(&conf, "c", "", ".star configuration file")
	flag.StringVar(&input, "i", "-", "Key tape input")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	cfg := config.Default()
	if len(conf) != 0 {
		var err error
		cfg, err = config.Load(conf)
		if err != nil {
			log.Fatalf("%v: %v", conf, err)
		}
	}
	cfg.Verbose = cfg.Verbose || verbose

	matrix := hw.NewMatrix()
	screen := lcd.NewScreen()
	layout := cfg.Layout

	tape := &keypad.Tape{
		Matrix: matrix,
		Layout: &layout,
	}

	raw := false
	if input == "-" {
		fd := int(os.Stdin.Fd())
		if term.IsTerminal(fd) {
			state, err := term.MakeRaw(fd)
			if err != nil {
				log.Fatalf("terminal: %v", err)
			}
			defer term.Restore(fd, state)
			raw = true
		}
		tape.Input = &keyReader{input: os.Stdin, layout: &layout}
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		tape.Input = inf
	}

	dev := device.NewDevice(matrix.Lines(), screen, hw.SystemClock{})
	cfg.Apply(dev)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := dev.Reset()
	if err != nil {
		log.Fatal(err)
	}
	render(os.Stdout, screen, raw)

	played := make(chan error, 1)
	go func() {
		played <- tape.Play(ctx)
		cancel()
	}()

	for {
		_, err = dev.Tick(ctx)
		if ctx.Err() != nil {
			break
		}
		if err != nil {
			log.Print(err)
			break
		}
		render(os.Stdout, screen, raw)
	}

	cancel()
	err = <-played
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Print(err)
	}
}
