// Command nesbox is a thin SDL2 host for the nescore library: it opens a
// window, blits the PPU's finished frames to a texture, polls the
// keyboard into controller 1's button snapshot, and opens an audio device
// that renders the APU's per-channel output. It deliberately carries none
// of the debug views (pattern table, nametable, disassembly) the teacher's
// cmd/vnes keeps around; those are out of scope for this package.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	nescore "github.com/example/nescore"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	runtime.LockOSThread()
}

const (
	screenW = 256
	screenH = 240
	zoom    = 3
)

var keymap = map[sdl.Keycode]nescore.Button{
	sdl.K_z:         nescore.ButtonA,
	sdl.K_x:         nescore.ButtonB,
	sdl.K_RSHIFT:    nescore.ButtonSelect,
	sdl.K_RETURN:    nescore.ButtonStart,
	sdl.K_UP:        nescore.ButtonUp,
	sdl.K_DOWN:      nescore.ButtonDown,
	sdl.K_LEFT:      nescore.ButtonLeft,
	sdl.K_RIGHT:     nescore.ButtonRight,
}

func loadRom(path string) (*nescore.Cartridge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open rom: %s", err)
	}
	defer f.Close()

	return nescore.LoadINES(f)
}

func run(romPath string, trace bool) error {
	var traceOut io.Writer
	if trace {
		traceOut = os.Stderr
	}

	cartridge, err := loadRom(romPath)
	if err != nil {
		return err
	}

	console := nescore.NewConsole(cartridge, 0, traceOut)

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("unable to init sdl: %s", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow("nesbox", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		screenW*zoom, screenH*zoom, sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("unable to create window: %s", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return fmt.Errorf("unable to create renderer: %s", err)
	}
	defer renderer.Destroy()

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_RGB24, sdl.TEXTUREACCESS_STREAMING, screenW, screenH)
	if err != nil {
		return fmt.Errorf("unable to create texture: %s", err)
	}
	defer texture.Destroy()

	audio, err := openAudio(console)
	if err != nil {
		// Audio is best-effort: a machine with no working audio device
		// still gets a picture, per spec.md §7's "benign noise" class.
		fmt.Fprintln(os.Stderr, "nesbox: audio disabled:", err)
	} else {
		defer audio.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigchan := make(chan os.Signal, 1)
	signal.Notify(sigchan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigchan
		cancel()
	}()

	keys := make(chan nescore.Snapshot, 1)

	go func() {
		if err := console.Run(ctx, keys); err != nil {
			fmt.Fprintln(os.Stderr, "nesbox: console error:", err)
			cancel()
		}
	}()

	var snapshot nescore.Snapshot

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch evt := event.(type) {
			case *sdl.QuitEvent:
				cancel()
			case *sdl.KeyboardEvent:
				btn, ok := keymap[evt.Keysym.Sym]
				if !ok {
					continue
				}
				snapshot = snapshot.WithButton(btn, evt.Type == sdl.KEYDOWN)
				select {
				case keys <- snapshot:
				default:
					// Replace the pending snapshot with this newer one.
					select {
					case <-keys:
					default:
					}
					keys <- snapshot
				}
			}
		}

		frame := console.PPU.LastFrame()
		if frame != nil {
			texture.Update(nil, frame.Pix[:], screenW*3)
			renderer.Copy(texture, nil, nil)
			renderer.Present()
		}

		if audio != nil && sdl.GetQueuedAudioSize(audio.id) < 44100*2 {
			audio.queue(1024)
		}

		sdl.Delay(1)
	}
}

func main() {
	trace := flag.Bool("trace", false, "write a nestest-style CPU trace to stderr")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: nesbox [-trace] rom.nes")
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *trace); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
