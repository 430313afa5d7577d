//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

package varislice

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

type Printer struct {
	Vendor         string
	Model          string
	NozzleDiameter []float64 // Per extruder, in mm
}

var (
	Printers = map[string](*Printer){}
)

func RegisterPrinter(name string, printer Printer) (err error) {
	_, ok := Printers[name]
	if ok {
		err = fmt.Errorf("name already exists in Printer list")
		return
	}

	Printers[name] = &printer

	return
}

func RegisterPrinters(printerMap map[string]Printer) (err error) {
	for name, printer := range printerMap {
		err = RegisterPrinter(name, printer)
		if err != nil {
			return
		}
	}

	return
}

func PrintPrinters() {
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Known printers:")
	fmt.Fprintln(os.Stderr)

	keys := []string{}
	for key := range Printers {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		item := Printers[key]

		nozzles := []string{}
		for _, dmr := range item.NozzleDiameter {
			nozzles = append(nozzles, strconv.FormatFloat(dmr, 'g', -1, 64))
		}

		fmt.Fprintf(os.Stderr, "    %-12s %s %s, nozzle %s mm\n", key, item.Vendor, item.Model, strings.Join(nozzles, ","))
	}
}

var defaultPrinters = map[string]Printer{
	"MK3S":      {Vendor: "Prusa", Model: "i3 MK3S+", NozzleDiameter: []float64{0.4}},
	"MK3S-0.6":  {Vendor: "Prusa", Model: "i3 MK3S+ 0.6n", NozzleDiameter: []float64{0.6}},
	"MK4":       {Vendor: "Prusa", Model: "MK4", NozzleDiameter: []float64{0.4}},
	"MINI":      {Vendor: "Prusa", Model: "MINI+", NozzleDiameter: []float64{0.4}},
	"XL-5T":     {Vendor: "Prusa", Model: "XL 5T", NozzleDiameter: []float64{0.4, 0.4, 0.4, 0.4, 0.4}},
	"Ender-3":   {Vendor: "Creality", Model: "Ender-3", NozzleDiameter: []float64{0.4}},
	"Ender-5":   {Vendor: "Creality", Model: "Ender-5", NozzleDiameter: []float64{0.4}},
	"Voron-2.4": {Vendor: "Voron", Model: "2.4", NozzleDiameter: []float64{0.4}},
}

func init() {
	err := RegisterPrinters(defaultPrinters)
	if err != nil {
		panic(err)
	}
}
