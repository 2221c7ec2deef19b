// Command luxread takes a single BH1750 reading and prints it.
//
// It is the plain blocking caller: trigger, sleep for the settle time, read.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/quentinrf/bh1750/internal/adapters/periph"
	"github.com/quentinrf/bh1750/internal/config"
	"github.com/quentinrf/bh1750/pkg/bh1750"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	busName := flag.String("bus", "", "I2C bus name (empty for the first one)")
	addrFlag := flag.String("addr", "0x23", "device address, 0x23 or 0x5c")
	dome := flag.Bool("dome", true, "compensate for a diffuser dome")
	raw := flag.Bool("raw", false, "also print the raw count")
	flag.Parse()

	addr, err := config.ParseAddr(*addrFlag)
	if err != nil {
		log.Fatal().Err(err).Str("addr", *addrFlag).Msg("invalid address")
	}

	bus, err := periph.Open(*busName)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open bus")
	}
	defer bus.Close()

	sensor := bh1750.New(bus,
		bh1750.WithAddress(addr),
		bh1750.WithDomeCompensation(*dome),
	)

	if err := sensor.Trigger(); err != nil {
		log.Fatal().Err(err).Msg("failed to start measurement")
	}
	time.Sleep(bh1750.SettleTime)

	count, err := sensor.ReadRaw()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read measurement")
	}

	fmt.Println("Lux:", sensor.Convert(count))
	if *raw {
		fmt.Println("Raw:", count)
	}
}
