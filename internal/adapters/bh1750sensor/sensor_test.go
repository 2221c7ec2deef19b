package bh1750sensor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/quentinrf/bh1750/internal/adapters/mock"
	"github.com/quentinrf/bh1750/internal/domain"
	"github.com/quentinrf/bh1750/pkg/bh1750"
)

type closeCounter struct{ n int }

func (c *closeCounter) Close() error {
	c.n++
	return nil
}

func TestReadLight_WaitsSettleTime(t *testing.T) {
	bus := mock.NewBus()
	bus.SetRaw(bh1750.AddrLow, 404)
	s := New(bh1750.New(bus, bh1750.WithDomeCompensation(true)), nil)

	start := time.Now()
	sample, err := s.ReadLight(context.Background())
	if err != nil {
		t.Fatalf("ReadLight failed: %v", err)
	}

	if elapsed := time.Since(start); elapsed < bh1750.SettleTime {
		t.Errorf("read after %v, before the settle time", elapsed)
	}
	if sample.Raw != 404 || sample.Lux != 927 {
		t.Errorf("expected raw 404 / lux 927, got %d / %v", sample.Raw, sample.Lux)
	}

	ops := bus.Ops()
	if len(ops) != 3 || ops[2].Read != 2 {
		t.Errorf("expected two writes then one read, got %+v", ops)
	}
}

func TestReadLight_CancelledDuringSettle(t *testing.T) {
	bus := mock.NewBus()
	bus.SetRaw(bh1750.AddrLow, 100)
	s := New(bh1750.New(bus), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := s.ReadLight(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	for _, op := range bus.Ops() {
		if op.Read != 0 {
			t.Error("abandoned cycle must not read")
		}
	}
}

func TestReadLight_BusFailureIsUnavailable(t *testing.T) {
	bus := mock.NewBus()
	s := New(bh1750.New(bus), nil)

	_, err := s.ReadLight(context.Background())

	if !errors.Is(err, domain.ErrSensorUnavailable) {
		t.Errorf("expected ErrSensorUnavailable, got %v", err)
	}
	if !errors.Is(err, mock.ErrNoDevice) {
		t.Errorf("expected the bus error to be kept, got %v", err)
	}
}

func TestReadLight_DecodeFailure(t *testing.T) {
	bus := mock.NewBus()
	bus.SetRaw(bh1750.AddrLow, 100)
	bus.ShortRead(bh1750.AddrLow, true)
	s := New(bh1750.New(bus), nil)

	_, err := s.ReadLight(context.Background())
	if !errors.Is(err, bh1750.ErrDecode) {
		t.Errorf("expected ErrDecode, got %v", err)
	}
}

// Cycles on different devices share the bus without waiting on each other.
func TestReadLight_TwoSensorsOneBus(t *testing.T) {
	bus := mock.NewBus()
	bus.SetRaw(bh1750.AddrLow, 120)
	bus.SetRaw(bh1750.AddrHigh, 240)

	low := New(bh1750.New(bus), nil)
	high := New(bh1750.New(bus, bh1750.WithAddress(bh1750.AddrHigh)), nil)

	sensors := [2]*Sensor{low, high}
	var (
		wg      sync.WaitGroup
		samples [2]domain.Sample
		errs    [2]error
	)
	start := time.Now()
	for i := range sensors {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			samples[i], errs[i] = sensors[i].ReadLight(context.Background())
		}(i)
	}
	wg.Wait()

	if errs[0] != nil || errs[1] != nil {
		t.Fatalf("ReadLight failed: %v / %v", errs[0], errs[1])
	}
	if samples[0].Lux != 100 || samples[1].Lux != 200 {
		t.Errorf("expected 100 and 200 lux, got %v and %v", samples[0].Lux, samples[1].Lux)
	}
	if elapsed := time.Since(start); elapsed >= 2*bh1750.SettleTime {
		t.Errorf("cycles ran one after another (%v)", elapsed)
	}

	for _, op := range bus.Ops() {
		if op.Addr != bh1750.AddrLow && op.Addr != bh1750.AddrHigh {
			t.Errorf("unexpected address 0x%02x", op.Addr)
		}
	}
}

func TestClose(t *testing.T) {
	c := &closeCounter{}
	s := New(bh1750.New(mock.NewBus()), c)
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if c.n != 1 {
		t.Errorf("expected closer called once, got %d", c.n)
	}

	if err := New(bh1750.New(mock.NewBus()), nil).Close(); err != nil {
		t.Errorf("expected nil closer to be fine, got %v", err)
	}
}
