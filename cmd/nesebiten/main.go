// Command nesebiten is a minimal front-end for the nesforge core, built on
// Ebitengine. It loads a ROM, drives the console one frame per Update, and
// maps a fixed keyboard layout onto controller 1.
package main

import (
	"errors"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"nesforge/nes"
)

const (
	screenWidth  = 256
	screenHeight = 240
	windowScale  = 3
)

var keymap = map[ebiten.Key]nes.Button{
	ebiten.KeyZ:         nes.ButtonA,
	ebiten.KeyX:         nes.ButtonB,
	ebiten.KeyBackslash: nes.ButtonSelect,
	ebiten.KeyEnter:     nes.ButtonStart,
	ebiten.KeyUp:        nes.ButtonUp,
	ebiten.KeyDown:      nes.ButtonDown,
	ebiten.KeyLeft:      nes.ButtonLeft,
	ebiten.KeyRight:     nes.ButtonRight,
}

type game struct {
	console *nes.Console
	image   *image.RGBA
	halted  bool
}

func (g *game) Update() error {
	if g.halted {
		return nil
	}

	for key, button := range keymap {
		g.console.SetButton(1, button, ebiten.IsKeyPressed(key))
	}

	g.console.StepFrame()
	if g.console.Halted() {
		g.halted = true
		log.Printf("console halted: %v", g.console.Err())
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	rgb := g.console.PPU.GetFramebufferRGB()
	for i := 0; i < screenWidth*screenHeight; i++ {
		g.image.Pix[i*4+0] = rgb[i*3+0]
		g.image.Pix[i*4+1] = rgb[i*3+1]
		g.image.Pix[i*4+2] = rgb[i*3+2]
		g.image.Pix[i*4+3] = 0xFF
	}
	screen.WritePixels(g.image.Pix)
	if g.halted {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("halted: %v", g.console.Err()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: nesebiten <rom-path>")
		os.Exit(2)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "nesebiten: %v\n", err)
		os.Exit(1)
	}

	console, err := nes.NewConsole(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nesebiten: %v\n", err)
		var unsupported *nes.UnsupportedMapperError
		if errors.As(err, &unsupported) {
			os.Exit(2)
		}
		os.Exit(1)
	}
	console.OnWarning(func(err error) { log.Printf("warning: %v", err) })

	g := &game{
		console: console,
		image:   image.NewRGBA(image.Rect(0, 0, screenWidth, screenHeight)),
	}

	ebiten.SetWindowSize(screenWidth*windowScale, screenHeight*windowScale)
	ebiten.SetWindowTitle("nesforge")
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintf(os.Stderr, "nesebiten: %v\n", err)
		os.Exit(1)
	}
}
