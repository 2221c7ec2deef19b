// Command luxctl queries a running light service.
//
//	luxctl [flags] current|measure|record LUX|history DURATION
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/quentinrf/bh1750/pkg/pb"
	"github.com/quentinrf/bh1750/pkg/tlsconfig"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	addr := flag.String("addr", "localhost:50051", "light service address")
	cert := flag.String("tls-cert", "", "client certificate, enables mTLS")
	key := flag.String("tls-key", "", "client private key")
	ca := flag.String("tls-ca", "", "CA certificate")
	timeout := flag.Duration("timeout", 5*time.Second, "request timeout")
	flag.Parse()

	creds := insecure.NewCredentials()
	if *cert != "" {
		tlsCfg, err := tlsconfig.LoadClientTLS(*cert, *key, *ca)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load TLS config")
		}
		creds = credentials.NewTLS(tlsCfg)
	}

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(creds))
	if err != nil {
		log.Fatal().Err(err).Str("addr", *addr).Msg("failed to dial")
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, pb.NewLightServiceClient(conn), flag.Args()); err != nil {
		log.Fatal().Err(err).Msg("request failed")
	}
}

func run(ctx context.Context, client pb.LightServiceClient, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command: current, measure, record or history")
	}

	switch args[0] {
	case "current":
		resp, err := client.GetCurrentLight(ctx, &pb.GetCurrentLightRequest{})
		if err != nil {
			return err
		}
		printReading(resp.Reading)
	case "measure":
		resp, err := client.MeasureLight(ctx, &pb.MeasureLightRequest{})
		if err != nil {
			return err
		}
		printReading(resp.Reading)
	case "record":
		if len(args) != 2 {
			return fmt.Errorf("usage: record LUX")
		}
		lux, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid lux %q: %w", args[1], err)
		}
		resp, err := client.RecordReading(ctx, &pb.RecordReadingRequest{Lux: lux})
		if err != nil {
			return err
		}
		printReading(resp.Reading)
	case "history":
		window := 24 * time.Hour
		if len(args) > 1 {
			d, err := time.ParseDuration(args[1])
			if err != nil {
				return fmt.Errorf("invalid duration %q: %w", args[1], err)
			}
			window = d
		}
		now := time.Now()
		resp, err := client.GetHistory(ctx, &pb.GetHistoryRequest{
			StartTime: now.Add(-window).Unix(),
			EndTime:   now.Unix() + 1,
		})
		if err != nil {
			return err
		}
		for _, r := range resp.Readings {
			printReading(r)
		}
		fmt.Printf("%d readings  avg %.1f  min %.1f  max %.1f lux\n",
			len(resp.Readings), resp.AverageLux, resp.MinLux, resp.MaxLux)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
	return nil
}

func printReading(r *pb.LightReading) {
	ts := time.Unix(r.Timestamp, 0).Format(time.DateTime)
	if r.Raw != 0 {
		fmt.Printf("%s  %8.0f lux  (%s, raw %d)\n", ts, r.Lux, r.Category, r.Raw)
		return
	}
	fmt.Printf("%s  %8.0f lux  (%s)\n", ts, r.Lux, r.Category)
}
