// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/ezrec/ic10/chip"
	"github.com/ezrec/ic10/device"
	"github.com/ezrec/ic10/simulator"
	"github.com/ezrec/ic10/translate"
)

var f = translate.From

// pins collects repeated `-d slot=Kind` flags.
type pins map[uint]string

func (p pins) String() string {
	var list []string
	for slot, kind := range p {
		list = append(list, fmt.Sprintf("%d=%v", slot, kind))
	}
	return strings.Join(list, ",")
}

func (p pins) Set(value string) (err error) {
	slot, kind, ok := strings.Cut(value, "=")
	if !ok || len(kind) == 0 {
		err = errors.New(f("%v: expected slot=Kind", value))
		return
	}

	index, err := strconv.ParseUint(strings.TrimPrefix(slot, "d"), 10, 32)
	if err != nil {
		return
	}

	p[uint(index)] = kind
	return
}

// defines collects repeated `-D name=value` flags.
type defines map[string]float64

func (d defines) String() string {
	var list []string
	for name, value := range d {
		list = append(list, fmt.Sprintf("%v=%v", name, value))
	}
	return strings.Join(list, ",")
}

func (d defines) Set(value string) (err error) {
	name, number, ok := strings.Cut(value, "=")
	if !ok {
		err = errors.New(f("%v: expected name=value", value))
		return
	}

	d[name], err = strconv.ParseFloat(number, 64)
	return
}

func main() {
	var compile string
	var catalogue string
	var steps int
	var seed int64
	var lang string
	var verbose bool

	devices := pins{}
	predefines := defines{}

	flag.StringVar(&compile, "c", "", ".ic10 program to run")
	flag.StringVar(&catalogue, "catalogue", "", "device catalogue (.json or .toml)")
	flag.Var(devices, "d", "attach a device, slot=Kind (repeatable)")
	flag.Var(predefines, "D", "predefine an expression name, name=value (repeatable)")
	flag.IntVar(&steps, "n", 100000, "maximum steps to run")
	flag.Int64Var(&seed, "seed", 0, "seed for rand")
	flag.StringVar(&lang, "lang", "", "message language, overriding the locale")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatal(f("%v: Unknown arguments: %v", os.Args[0], flag.Args()))
	}

	if len(lang) != 0 {
		tag, err := language.Parse(lang)
		if err != nil {
			log.Fatalf("%v: %v", lang, err)
		}
		translate.SetLanguage(tag)
	}

	if len(compile) == 0 {
		log.Fatal(f("%v: no program given, use -c", os.Args[0]))
	}

	inf, err := os.Open(compile)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}
	defer inf.Close()

	asm := &chip.Assembler{Verbose: verbose}
	for name, value := range predefines {
		asm.Predefine(name, value)
	}
	prog, err := asm.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	sim := simulator.NewSimulator()
	sim.Verbose = verbose
	sim.Chip.Seed(seed)

	if len(devices) != 0 {
		if len(catalogue) == 0 {
			log.Fatal(f("%v: -d needs a -catalogue", os.Args[0]))
		}
		cat, err := device.LoadCatalogueFile(catalogue)
		if err != nil {
			log.Fatal(err)
		}
		for slot, kind := range devices {
			dev, err := cat.New(kind)
			if err != nil {
				log.Fatal(err)
			}
			err = sim.Chip.SetDevice(slot, dev)
			if err != nil {
				log.Fatal(err)
			}
		}
	}

	err = sim.LoadProgram(prog)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	status, err := sim.StepN(steps)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	fmt.Printf("%v after %d ticks\n", status, sim.Ticks)
	fmt.Print(sim.Chip.String())

	for slot, dev := range sim.Chip.Devices {
		if dev == nil {
			continue
		}
		for name := range dev.Names() {
			value, _ := dev.ReadInternal(name)
			fmt.Printf("d%d.%v: %v\n", slot, name, value)
		}
	}
}
