package bh1750

import (
	"errors"
	"fmt"
)

// ErrDecode is matched by every DecodeError
var ErrDecode = errors.New("bh1750: unexpected result length")

// BusError reports a transport failure. Err is the error the bus returned.
type BusError struct {
	Op   string
	Addr uint16
	Err  error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("bh1750: %s 0x%02x: %v", e.Op, e.Addr, e.Err)
}

func (e *BusError) Unwrap() error { return e.Err }

// DecodeError reports a read that completed with the wrong number of bytes,
// which usually means something other than a BH1750 answers at Addr.
type DecodeError struct {
	Addr uint16
	Got  int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("bh1750: read 0x%02x: got %d bytes, want 2", e.Addr, e.Got)
}

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }
