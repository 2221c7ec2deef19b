package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/reflection"

	"github.com/quentinrf/bh1750/internal/adapters/bh1750sensor"
	grpcAdapter "github.com/quentinrf/bh1750/internal/adapters/grpc"
	"github.com/quentinrf/bh1750/internal/adapters/memory"
	"github.com/quentinrf/bh1750/internal/adapters/mock"
	"github.com/quentinrf/bh1750/internal/adapters/mysql"
	"github.com/quentinrf/bh1750/internal/adapters/periph"
	"github.com/quentinrf/bh1750/internal/adapters/sqlite"
	"github.com/quentinrf/bh1750/internal/config"
	"github.com/quentinrf/bh1750/internal/domain"
	"github.com/quentinrf/bh1750/internal/ports"
	"github.com/quentinrf/bh1750/pkg/bh1750"
	"github.com/quentinrf/bh1750/pkg/pb"
	"github.com/quentinrf/bh1750/pkg/tlsconfig"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	log.Info().Msg("starting light service")

	repo, closeRepo, err := openRepository(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("repo_type", cfg.RepoType).Msg("failed to open repository")
	}
	defer closeRepo()

	sensor, err := openSensor(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("sensor_type", cfg.SensorType).Msg("failed to open sensor")
	}
	defer sensor.Close()

	handler := grpcAdapter.NewLightServiceHandler(repo, sensor)

	// Configure TLS if certificates are provided
	var serverOpts []grpc.ServerOption
	if cfg.TLSCert != "" {
		tlsCfg, err := tlsconfig.LoadServerTLS(cfg.TLSCert, cfg.TLSKey, cfg.TLSCA)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load TLS config")
		}
		serverOpts = append(serverOpts, grpc.Creds(credentials.NewTLS(tlsCfg)))
		log.Info().Msg("mTLS enabled")
	} else {
		log.Warn().Msg("TLS_CERT not set, starting without TLS (dev mode only)")
	}

	grpcServer := newGRPCServer(handler, serverOpts...)

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Port))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to listen")
	}

	log.Info().Str("port", cfg.Port).Msg("gRPC server listening")

	go func() {
		if err := grpcServer.Serve(listener); err != nil {
			log.Fatal().Err(err).Msg("failed to serve")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	recorder := ports.NewRecorder(sensor, repo, cfg.RecordInterval, cfg.Retention)
	go recorder.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	cancel()
	grpcServer.GracefulStop()

	log.Info().Msg("server stopped")
}

// newGRPCServer registers the light service and reflection for grpcurl
func newGRPCServer(handler pb.LightServiceServer, opts ...grpc.ServerOption) *grpc.Server {
	grpcServer := grpc.NewServer(opts...)
	pb.RegisterLightServiceServer(grpcServer, handler)
	reflection.Register(grpcServer)
	return grpcServer
}

func openRepository(cfg config.Config) (domain.ReadingRepository, func() error, error) {
	switch cfg.RepoType {
	case "sqlite":
		r, err := sqlite.NewReadingRepository(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("db_path", cfg.DBPath).Msg("initialized SQLite repository")
		return r, r.Close, nil
	case "mysql":
		r, err := mysql.NewReadingRepository(cfg.MySQLDSN)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Msg("initialized MySQL repository")
		return r, r.Close, nil
	case "memory":
		log.Info().Msg("initialized in-memory repository")
		return memory.NewReadingRepository(), func() error { return nil }, nil
	}
	return nil, nil, fmt.Errorf("unknown REPO_TYPE %q", cfg.RepoType)
}

func openSensor(cfg config.Config) (ports.LightSensor, error) {
	opts := []bh1750.Option{
		bh1750.WithAddress(cfg.SensorAddr),
		bh1750.WithDomeCompensation(cfg.Dome),
	}

	switch cfg.SensorType {
	case "bh1750":
		bus, err := periph.Open(cfg.I2CBus)
		if err != nil {
			return nil, err
		}
		log.Info().
			Str("bus", bus.String()).
			Uint16("addr", cfg.SensorAddr).
			Bool("dome", cfg.Dome).
			Msg("initialized BH1750 sensor")
		return bh1750sensor.New(bh1750.New(bus, opts...), bus), nil
	case "mock":
		bus := mock.NewBus()
		bus.AddSensor(cfg.SensorAddr, 500, 100) // 500±100 lux (indoor lighting)
		log.Info().Uint16("addr", cfg.SensorAddr).Msg("initialized simulated BH1750 sensor")
		return bh1750sensor.New(bh1750.New(bus, opts...), nil), nil
	}
	return nil, fmt.Errorf("unknown SENSOR_TYPE %q", cfg.SensorType)
}
