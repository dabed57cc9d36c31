// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/ezrec/padcalc/config"
	"github.com/ezrec/padcalc/device"
	"github.com/ezrec/padcalc/hw"
	"github.com/ezrec/padcalc/lcd"
)

func pin(name string) gpio.PinIO {
	p := gpioreg.ByName(name)
	if p == nil {
		log.Fatalf("%v: no such pin", name)
	}
	return p
}

func main() {
	var conf string
	var verbose bool

	flag.StringVar(&conf, "c", "", ".star configuration file")
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

	_, err := host.Init()
	if err != nil {
		log.Fatalf("host: %v", err)
	}

	lines := &hw.PinLines{}
	for i, name := range cfg.Rows {
		lines.Rows[i] = pin(name)
	}
	for i, name := range cfg.Columns {
		lines.Cols[i] = pin(name)
	}

	display := &lcd.HD44780{
		RS:    pin(cfg.RS),
		E:     pin(cfg.E),
		Pulse: cfg.Pulse,
		Hold:  cfg.Hold,
	}
	for i, name := range cfg.Data {
		display.Data[i] = pin(name)
	}

	err = lines.Configure()
	if err != nil {
		log.Fatal(err)
	}

	err = display.Configure()
	if err != nil {
		log.Fatal(err)
	}

	dev := device.NewDevice(lines, display, hw.SystemClock{})
	cfg.Apply(dev)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = dev.Reset()
	if err != nil {
		log.Fatal(err)
	}

	err = dev.Run(ctx)
	if err != nil {
		log.Fatal(err)
	}
}
