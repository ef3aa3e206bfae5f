// Command nessdl is a minimal front-end for the nesforge core, built on
// go-sdl2. It loads a ROM, pumps SDL events, renders one completed frame
// per iteration as a streaming texture, and maps a fixed keyboard layout
// onto controller 1.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"nesforge/nes"
)

const (
	screenWidth  = 256
	screenHeight = 240
	windowScale  = 3
	frameTime    = 16639267 * time.Nanosecond // 1/60.0988 s, NTSC NES
)

var keymap = map[sdl.Keycode]nes.Button{
	sdl.K_z:         nes.ButtonA,
	sdl.K_x:         nes.ButtonB,
	sdl.K_BACKSLASH: nes.ButtonSelect,
	sdl.K_RETURN:    nes.ButtonStart,
	sdl.K_UP:        nes.ButtonUp,
	sdl.K_DOWN:      nes.ButtonDown,
	sdl.K_LEFT:      nes.ButtonLeft,
	sdl.K_RIGHT:     nes.ButtonRight,
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: nessdl <rom-path>")
		os.Exit(2)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "nessdl: %v\n", err)
		os.Exit(1)
	}

	console, err := nes.NewConsole(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nessdl: %v\n", err)
		var unsupported *nes.UnsupportedMapperError
		if errors.As(err, &unsupported) {
			os.Exit(2)
		}
		os.Exit(1)
	}
	console.OnWarning(func(err error) { log.Printf("warning: %v", err) })

	if err := run(console); err != nil {
		fmt.Fprintf(os.Stderr, "nessdl: %v\n", err)
		os.Exit(1)
	}
}

func run(console *nes.Console) error {
	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(
		"nesforge",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		screenWidth*windowScale, screenHeight*windowScale,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return err
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return err
	}
	defer renderer.Destroy()

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_RGB24, sdl.TEXTUREACCESS_STREAMING, screenWidth, screenHeight)
	if err != nil {
		return err
	}
	defer texture.Destroy()

	running := true
	for running && !console.Halted() {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				if button, ok := keymap[e.Keysym.Sym]; ok {
					console.SetButton(1, button, e.State == sdl.PRESSED)
				}
			}
		}

		next := time.Now().Add(frameTime)
		console.StepFrame()

		pixels := console.PPU.GetFramebufferRGB()
		if err := texture.Update(nil, unsafe.Pointer(&pixels[0]), screenWidth*3); err != nil {
			return err
		}
		renderer.Copy(texture, nil, nil)
		renderer.Present()

		if d := time.Until(next); d > 0 {
			time.Sleep(d)
		}
	}

	if console.Halted() {
		log.Printf("console halted: %v", console.Err())
	}
	return nil
}
