// Package sdl provides an SDL2 backed display driver. Frames are
// streamed into an RGB24 texture and presented once per received
// framebuffer; keyboard events are translated into button events.
package sdl

import (
	"fmt"
	"image"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/draw"

	"github.com/dotmatrix-emu/dotmatrix/internal/joypad"
	"github.com/dotmatrix-emu/dotmatrix/internal/ppu"
	"github.com/dotmatrix-emu/dotmatrix/internal/ppu/palette"
	"github.com/dotmatrix-emu/dotmatrix/pkg/display"
	"github.com/dotmatrix-emu/dotmatrix/pkg/log"
	"github.com/dotmatrix-emu/dotmatrix/pkg/utils"
)

func init() {
	display.Install("sdl", &driver{
		scale: 4,
		Log:   log.New(),
		stop:  make(chan struct{}),
	})
}

// keyMap translates SDL scancodes to buttons.
var keyMap = map[sdl.Scancode]joypad.Button{
	sdl.SCANCODE_A:         joypad.ButtonA,
	sdl.SCANCODE_S:         joypad.ButtonB,
	sdl.SCANCODE_RETURN:    joypad.ButtonStart,
	sdl.SCANCODE_BACKSPACE: joypad.ButtonSelect,
	sdl.SCANCODE_RIGHT:     joypad.ButtonRight,
	sdl.SCANCODE_LEFT:      joypad.ButtonLeft,
	sdl.SCANCODE_UP:        joypad.ButtonUp,
	sdl.SCANCODE_DOWN:      joypad.ButtonDown,
}

type driver struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	scale int32
	Log   log.Logger

	stop chan struct{}
}

// Start opens the window and runs the render and event loops until
// the window is closed or the driver is stopped.
func (d *driver) Start(fb <-chan []byte, pressed, released chan<- joypad.Button) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("sdl: init: %w", err)
	}
	defer sdl.Quit()

	var err error
	d.window, err = sdl.CreateWindow("dotmatrix",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		ppu.ScreenWidth*d.scale, ppu.ScreenHeight*d.scale,
		sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("sdl: create window: %w", err)
	}
	defer d.window.Destroy()

	d.renderer, err = sdl.CreateRenderer(d.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return fmt.Errorf("sdl: create renderer: %w", err)
	}
	defer d.renderer.Destroy()

	// the framebuffer is already packed RGB24, so the texture can
	// take it without conversion
	d.texture, err = d.renderer.CreateTexture(sdl.PIXELFORMAT_RGB24, sdl.TEXTUREACCESS_STREAMING,
		ppu.ScreenWidth, ppu.ScreenHeight)
	if err != nil {
		return fmt.Errorf("sdl: create texture: %w", err)
	}
	defer d.texture.Destroy()

	frame := make([]byte, ppu.FrameBufferSize)
	for {
		select {
		case <-d.stop:
			return nil
		case f := <-fb:
			copy(frame, f)
			if err := d.texture.Update(nil, frame, ppu.ScreenWidth*3); err != nil {
				return fmt.Errorf("sdl: update texture: %w", err)
			}
			d.renderer.Clear()
			d.renderer.Copy(d.texture, nil, nil)
			d.renderer.Present()
		default:
			sdl.Delay(1)
		}

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				d.handleKey(e, frame, pressed, released)
			}
		}
	}
}

// Stop closes the render loop.
func (d *driver) Stop() error {
	close(d.stop)
	return nil
}

// handleKey translates a keyboard event into a button event, or
// handles one of the driver shortcuts: C cycles the palette, P
// saves a screenshot and V copies one to the clipboard.
func (d *driver) handleKey(e *sdl.KeyboardEvent, frame []byte, pressed, released chan<- joypad.Button) {
	if button, ok := keyMap[e.Keysym.Scancode]; ok {
		switch e.Type {
		case sdl.KEYDOWN:
			pressed <- button
		case sdl.KEYUP:
			released <- button
		}
		return
	}

	if e.Type != sdl.KEYDOWN {
		return
	}
	switch e.Keysym.Scancode {
	case sdl.SCANCODE_C:
		palette.CyclePalette()
	case sdl.SCANCODE_P:
		name := fmt.Sprintf("dotmatrix-%d.png", time.Now().Unix())
		if err := utils.SaveImage(frameImage(frame, d.scale), name); err != nil {
			d.Log.Errorf("sdl: save screenshot: %v", err)
		}
	case sdl.SCANCODE_V:
		if err := utils.CopyImage(frameImage(frame, d.scale)); err != nil {
			d.Log.Errorf("sdl: copy screenshot: %v", err)
		}
	}
}

// frameImage converts a packed RGB24 framebuffer to an image,
// scaled up to the window size.
func frameImage(frame []byte, scale int32) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, ppu.ScreenWidth, ppu.ScreenHeight))
	for i := 0; i < ppu.ScreenWidth*ppu.ScreenHeight; i++ {
		img.Pix[i*4] = frame[i*3]
		img.Pix[i*4+1] = frame[i*3+1]
		img.Pix[i*4+2] = frame[i*3+2]
		img.Pix[i*4+3] = 255
	}

	scaled := image.NewRGBA(image.Rect(0, 0, ppu.ScreenWidth*int(scale), ppu.ScreenHeight*int(scale)))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
	return scaled
}
