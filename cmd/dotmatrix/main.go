package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"github.com/dotmatrix-emu/dotmatrix/internal/gameboy"
	"github.com/dotmatrix-emu/dotmatrix/internal/joypad"
	"github.com/dotmatrix-emu/dotmatrix/internal/ppu/palette"
	"github.com/dotmatrix-emu/dotmatrix/pkg/display"
	_ "github.com/dotmatrix-emu/dotmatrix/pkg/display/sdl"
	"github.com/dotmatrix-emu/dotmatrix/pkg/display/web"
	"github.com/dotmatrix-emu/dotmatrix/pkg/log"
	"github.com/dotmatrix-emu/dotmatrix/pkg/perf"
	"github.com/dotmatrix-emu/dotmatrix/pkg/utils"
)

func main() {
	// start pprof
	go func() {
		err := http.ListenAndServe("localhost:6060", nil)
		if err != nil {
			return
		}
	}()

	logger := log.New()

	romFile := flag.String("rom", "", "The rom file to load")
	displayDriver := flag.String("driver", "auto", "The display driver to use. Can be auto, sdl or web")
	webAddr := flag.String("addr", web.Addr, "The listen address of the web driver")
	paletteName := flag.String("palette", "greyscale", "The palette to render with. Can be greyscale, green, red or yellow")
	perfFile := flag.String("perf", "", "Write a frame time plot to the given PNG file on exit")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	web.Addr = *webAddr

	switch strings.ToLower(*paletteName) {
	case "greyscale":
		palette.Current = palette.Greyscale
	case "green":
		palette.Current = palette.Green
	case "red":
		palette.Current = palette.Red
	case "yellow":
		palette.Current = palette.Yellow
	default:
		logger.Errorf("unknown palette %q", *paletteName)
		os.Exit(1)
	}

	// fall back to a file dialog when no rom was given
	if *romFile == "" {
		chosen, err := utils.AskForFile("Choose a ROM", ".")
		if err != nil {
			logger.Errorf("no rom file given")
			os.Exit(1)
		}
		*romFile = chosen
	}

	rom, err := utils.LoadFile(*romFile)
	if err != nil {
		logger.Errorf("unable to load rom: %v", err)
		os.Exit(1)
	}

	var opts []gameboy.Opt
	if *debug {
		opts = append(opts, gameboy.Debug())
	}
	gb := gameboy.NewGameBoy(rom, opts...)

	driver := display.GetDriver(*displayDriver)
	if driver == nil {
		logger.Errorf("invalid display driver %q", *displayDriver)
		os.Exit(1)
	}

	// create framebuffer and input channels
	fb := make(chan []byte, 60)
	pressed := make(chan joypad.Button, 10)
	released := make(chan joypad.Button, 10)
	stop := make(chan struct{})

	out := fb
	var recorder *perf.Recorder
	if *perfFile != "" {
		recorder = perf.NewRecorder()
		out = make(chan []byte, 60)
		go func() {
			for frame := range fb {
				recorder.Frame()
				out <- frame
			}
		}()
	}

	// start gameboy in a goroutine
	go gb.Start(fb, pressed, released, stop)

	if err := driver.Start(out, pressed, released); err != nil {
		logger.Errorf("display driver: %v", err)
		os.Exit(1)
	}
	close(stop)

	if recorder != nil {
		logger.Infof("average frame time: %s", recorder.Average())
		if err := recorder.WritePlot(*perfFile); err != nil {
			logger.Errorf("unable to write frame time plot: %v", err)
		}
	}
}
