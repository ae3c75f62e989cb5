package nes

import (
	"context"
	"io"
	"time"
)

// frameRate is the NTSC PPU/field rate the scheduler paces Run against,
// per spec.md §4.5.
const frameRate = 60.0988

// Console wires RAM, CPU, PPU, APU, and controller port 1 onto a
// single Bus and drives them at the fixed 3 PPU-ticks : 1 APU-tick : 1
// CPU-cycle ratio spec.md §4.5 specifies. It plays the role the teacher's
// Console type does in console.go, generalized from a single hardcoded
// 2-controller setup into the same shape but wired to this package's
// Bus/CPU/PPU/APU.
type Console struct {
	RAM         *RAM
	CPU         *CPU
	PPU         *PPU
	APU         *APU
	Bus         *Bus
	Controller1 *Controller

	trace *Tracer
}

// NewConsole builds a Console around cartridge, resets the CPU to pc (or
// to the cartridge's reset vector if pc is zero), and, if trace is
// non-nil, logs every retired instruction to it in nestest format.
func NewConsole(cartridge *Cartridge, pc uint16, trace io.Writer) *Console {
	c := &Console{
		RAM:         NewRAM(),
		CPU:         NewCPU(),
		PPU:         NewPPU(),
		APU:         NewAPU(),
		Controller1: &Controller{},
	}

	c.Bus = &Bus{
		RAM:         c.RAM,
		PPU:         c.PPU,
		APU:         c.APU,
		Cartridge:   cartridge,
		Controller1: c.Controller1,
		cpu:         c.CPU,
	}

	c.PPU.Cartridge = cartridge
	c.PPU.AttachCPU(c.CPU)
	c.APU.AttachCPU(c.CPU)

	c.CPU.Reset(c.Bus)
	if pc != 0 {
		c.CPU.PC = pc
	}

	if trace != nil {
		c.trace = NewTracer(trace, c.PPU)
	}

	return c
}

// Step runs one CPU.Step (either servicing one pending interrupt or
// executing one instruction) and advances the PPU three ticks, and the
// APU one tick, per CPU cycle spent, per spec.md §4.5. It returns the
// number of CPU cycles that step took.
func (c *Console) Step() (int, error) {
	cycles, err := c.CPU.Step(c.Bus, c.trace)
	if err != nil {
		return cycles, err
	}

	for i := 0; i < cycles; i++ {
		c.PPU.Tick()
		c.PPU.Tick()
		c.PPU.Tick()
		c.APU.Clock()
	}

	return cycles, nil
}

// Run drives the console in real time, pacing Step calls against the NTSC
// field rate and latching controller input from keys as it arrives.
// It returns when ctx is cancelled or a Step call returns a FatalError.
func (c *Console) Run(ctx context.Context, keys <-chan Snapshot) error {
	period := float64(time.Second) / frameRate
	ticker := time.NewTicker(time.Duration(period))
	defer ticker.Stop()

	startFrame := c.PPU.Frame

	for {
		select {
		case <-ctx.Done():
			return nil

		case s := <-keys:
			c.Controller1.Latch(s)

		case <-ticker.C:
			target := startFrame + 1
			for c.PPU.Frame < target {
				if _, err := c.Step(); err != nil {
					return err
				}
			}
			startFrame = target
		}
	}
}
