// Package mock simulates BH1750 devices on an I2C bus for development and tests.
package mock

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/quentinrf/bh1750/pkg/bh1750"
)

// ErrNoDevice is returned for transactions to an address nothing answers on
var ErrNoDevice = errors.New("mock: no device at address")

// Op is one recorded bus transaction
type Op struct {
	Addr  uint16
	Write []byte // bytes written, nil for reads
	Read  int    // bytes requested, 0 for writes
}

type device struct {
	baseLux   float64
	variation float64
	fixed     bool
	raw       uint16

	powered bool
	latched uint16
	short   bool
}

// Bus implements bh1750.Bus with simulated sensors. A device latches a new
// count when it receives a one-shot command while powered on, then powers
// itself down like the real chip.
type Bus struct {
	mu       sync.Mutex
	devices  map[uint16]*device
	rand     *rand.Rand
	ops      []Op
	writeErr error
	readErr  error
}

// NewBus returns a bus with no devices
func NewBus() *Bus {
	return &Bus{
		devices: make(map[uint16]*device),
		rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// AddSensor attaches a simulated sensor that sees baseLux ± variation
func (b *Bus) AddSensor(addr uint16, baseLux, variation float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.devices[addr] = &device{baseLux: baseLux, variation: variation}
}

// SetRaw attaches or pins a sensor to always measure raw
func (b *Bus) SetRaw(addr uint16, raw uint16) {
	b.mu.Lock()
	defer b.mu.Unlock()
	d, ok := b.devices[addr]
	if !ok {
		d = &device{}
		b.devices[addr] = d
	}
	d.fixed = true
	d.raw = raw
}

// ShortRead makes reads from addr return a single byte
func (b *Bus) ShortRead(addr uint16, on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if d, ok := b.devices[addr]; ok {
		d.short = on
	}
}

// FailWrites makes every write fail with err until cleared with nil
func (b *Bus) FailWrites(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.writeErr = err
}

// FailReads makes every read fail with err until cleared with nil
func (b *Bus) FailReads(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.readErr = err
}

// Ops returns the transactions seen so far
func (b *Bus) Ops() []Op {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Op(nil), b.ops...)
}

// Write implements bh1750.Bus
func (b *Bus) Write(addr uint16, p []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.ops = append(b.ops, Op{Addr: addr, Write: append([]byte{}, p...)})
	if b.writeErr != nil {
		return b.writeErr
	}
	d, ok := b.devices[addr]
	if !ok {
		return fmt.Errorf("%w 0x%02x", ErrNoDevice, addr)
	}

	for _, op := range p {
		switch op {
		case bh1750.PowerOn:
			d.powered = true
		case bh1750.OneTimeHighRes:
			if d.powered {
				d.latched = b.measure(d)
				d.powered = false
			}
		}
	}
	return nil
}

// Read implements bh1750.Bus
func (b *Bus) Read(addr uint16, n int) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.ops = append(b.ops, Op{Addr: addr, Read: n})
	if b.readErr != nil {
		return nil, b.readErr
	}
	d, ok := b.devices[addr]
	if !ok {
		return nil, fmt.Errorf("%w 0x%02x", ErrNoDevice, addr)
	}

	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], d.latched)
	if d.short {
		return buf[:1], nil
	}
	out := make([]byte, n)
	copy(out, buf[:])
	return out, nil
}

// measure returns the count the chip would produce, clamped to 16 bits
func (b *Bus) measure(d *device) uint16 {
	if d.fixed {
		return d.raw
	}
	lux := d.baseLux + (b.rand.Float64()-0.5)*2*d.variation
	raw := math.Round(lux * 1.2)
	switch {
	case raw < 0:
		return 0
	case raw > math.MaxUint16:
		return math.MaxUint16
	}
	return uint16(raw)
}
