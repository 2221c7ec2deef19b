// Package bh1750 drives a BH1750 ambient light sensor in one-time
// high-resolution mode over I2C.
//
// A measurement is two independent calls: Trigger powers the device on and
// starts a one-shot conversion, and ReadResult fetches and converts it.
// The driver never waits between them. Callers must let at least
// SettleTime elapse after Trigger before reading, either by sleeping or by
// yielding to other work. Reading early returns whatever the device last
// latched, which cannot be told apart from a genuinely dark reading.
package bh1750

import (
	"encoding/binary"
	"time"
)

// Device instructions
const (
	PowerOn        byte = 0b0000_0001
	OneTimeHighRes byte = 0b0010_0000
)

// SettleTime is the worst-case conversion time in one-time high-resolution
// mode (the typical value is 120ms)
const SettleTime = 180 * time.Millisecond

// Addresses selected by the ADDR pin
const (
	AddrLow  uint16 = 0x23 // ADDR low, the default
	AddrHigh uint16 = 0x5C // ADDR high
)

// Bus is the I2C transport the driver talks through. It is shared, not
// owned, and must serialize concurrent callers itself.
type Bus interface {
	// Write sends p to the device at addr
	Write(addr uint16, p []byte) error

	// Read reads n bytes from the device at addr
	Read(addr uint16, n int) ([]byte, error)
}

// Sensor is a handle to one physical BH1750
type Sensor struct {
	bus  Bus
	addr uint16
	dome bool
}

// Option configures a Sensor
type Option func(*Sensor)

// WithAddress sets the device address (AddrLow or AddrHigh)
func WithAddress(addr uint16) Option {
	return func(s *Sensor) {
		s.addr = addr
	}
}

// WithDomeCompensation enables correction for a diffuser dome over the sensor
func WithDomeCompensation(on bool) Option {
	return func(s *Sensor) {
		s.dome = on
	}
}

// New returns a handle to the sensor at AddrLow without dome compensation,
// unless opts say otherwise.
func New(bus Bus, opts ...Option) *Sensor {
	s := &Sensor{
		bus:  bus,
		addr: AddrLow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Addr returns the device address
func (s *Sensor) Addr() uint16 {
	return s.addr
}

// DomeCompensation reports whether readings are corrected for a dome
func (s *Sensor) DomeCompensation() bool {
	return s.dome
}

// Trigger powers the device on and starts a one-shot high-resolution
// measurement. The device powers itself down once the measurement is done.
func (s *Sensor) Trigger() error {
	for _, op := range [...]byte{PowerOn, OneTimeHighRes} {
		if err := s.bus.Write(s.addr, []byte{op}); err != nil {
			return &BusError{Op: "write", Addr: s.addr, Err: err}
		}
	}
	return nil
}

// ReadRaw reads the 16-bit measurement count. It must only be called
// SettleTime or more after Trigger.
func (s *Sensor) ReadRaw() (uint16, error) {
	buf, err := s.bus.Read(s.addr, 2)
	if err != nil {
		return 0, &BusError{Op: "read", Addr: s.addr, Err: err}
	}
	if len(buf) != 2 {
		return 0, &DecodeError{Addr: s.addr, Got: len(buf)}
	}
	return binary.BigEndian.Uint16(buf), nil
}

// ReadResult reads the measurement and returns it in lux
func (s *Sensor) ReadResult() (int, error) {
	raw, err := s.ReadRaw()
	if err != nil {
		return 0, err
	}
	return s.Convert(raw), nil
}

// Convert turns a raw count into lux using this sensor's dome setting
func (s *Sensor) Convert(raw uint16) int {
	return Lux(raw, s.dome)
}
