// Package periph connects the BH1750 driver to a real I2C bus through periph.io.
package periph

import (
	"fmt"
	"sync"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

// Bus implements bh1750.Bus on top of a periph i2c.Bus.
// It is safe to share between sensors.
type Bus struct {
	mu    sync.Mutex
	bus   i2c.Bus
	close func() error
}

// Open initializes the host drivers and opens the named I2C bus.
// An empty name picks the first bus available.
func Open(name string) (*Bus, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize host: %w", err)
	}

	bc, err := i2creg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open i2c bus %q: %w", name, err)
	}

	return &Bus{bus: bc, close: bc.Close}, nil
}

// New wraps an already opened bus. Close does not close it.
func New(bus i2c.Bus) *Bus {
	return &Bus{bus: bus}
}

// SetSpeed changes the bus clock
func (b *Bus) SetSpeed(f physic.Frequency) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bus.SetSpeed(f)
}

// Write sends p to the device at addr as a single write transaction
func (b *Bus) Write(addr uint16, p []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bus.Tx(addr, p, nil)
}

// Read reads n bytes from the device at addr
func (b *Bus) Read(addr uint16, n int) ([]byte, error) {
	buf := make([]byte, n)

	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.bus.Tx(addr, nil, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (b *Bus) String() string {
	return b.bus.String()
}

// Close releases the bus if Open created it
func (b *Bus) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}
