package nes

// Button indexes the eight bits of a controller snapshot, in read order:
// A, B, Select, Start, Up, Down, Left, Right.
type Button byte

const (
	ButtonA Button = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// Snapshot is an 8-bit packed controller state, one bit per Button. The
// host sends snapshots by value over the channel Console.Run reads, and Run
// passes each one to Controller.Latch on the simulation goroutine, so the
// controller's copy is never shared between goroutines.
type Snapshot byte

// Set reports whether the given button is held in this snapshot.
func (s Snapshot) Set(b Button) bool {
	return s&(1<<b) != 0
}

// WithButton returns a copy of the snapshot with b set to down/up.
func (s Snapshot) WithButton(b Button, down bool) Snapshot {
	if down {
		return s | (1 << b)
	}
	return s &^ (1 << b)
}

// Controller is the NES's 4021-style parallel-to-serial shift register. A
// write with bit 0 set resets the read index; while bit 0 stays set, every
// read resets it again (so the strobe can be held high to continuously
// sample button 0). Each read takes its bit from the snapshot most recently
// passed to Latch at the time of that read; a strobe does not take a copy
// of its own, so a Latch between two reads changes the bits that follow.
// Reads beyond the eighth return 1, per the real hardware's
// open-bus-pulled-high behavior on this port.
type Controller struct {
	latched Snapshot
	strobe  bool
	index   byte
}

// Latch records the current external button state. Console.Run calls it on
// the simulation goroutine for each snapshot the host sends; the next Read
// uses it.
func (c *Controller) Latch(s Snapshot) {
	c.latched = s
}

// Read returns the next bit (LSB of the returned byte) in the controller's
// serial read order.
func (c *Controller) Read() byte {
	var bit byte
	if c.index < 8 {
		if c.latched.Set(Button(c.index)) {
			bit = 1
		}
	} else {
		bit = 1
	}

	c.index++
	if c.strobe {
		c.index = 0
	}
	return bit
}

// Write updates the strobe flip-flop. Setting bit 0 resets the read index;
// clearing it allows the index to advance on subsequent reads.
func (c *Controller) Write(value byte) {
	c.strobe = value&1 == 1
	if c.strobe {
		c.index = 0
	}
}
