package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/quentinrf/bh1750/internal/domain"
	"github.com/quentinrf/bh1750/internal/ports"
	"github.com/quentinrf/bh1750/pkg/pb"
)

// LightServiceHandler implements the gRPC LightService
type LightServiceHandler struct {
	pb.UnimplementedLightServiceServer
	repo   domain.ReadingRepository
	sensor ports.LightSensor
}

// NewLightServiceHandler creates a new gRPC handler
func NewLightServiceHandler(repo domain.ReadingRepository, sensor ports.LightSensor) *LightServiceHandler {
	return &LightServiceHandler{
		repo:   repo,
		sensor: sensor,
	}
}

// GetCurrentLight returns the most recent reading, measuring one if none is stored
func (h *LightServiceHandler) GetCurrentLight(ctx context.Context, req *pb.GetCurrentLightRequest) (*pb.GetCurrentLightResponse, error) {
	log.Info().Msg("GetCurrentLight called")

	reading, err := h.repo.GetLatestReading(ctx)
	if errors.Is(err, domain.ErrReadingNotFound) {
		log.Info().Msg("no readings stored, reading sensor")

		reading, err = h.measure(ctx)
		if err != nil {
			return nil, err
		}
	} else if err != nil {
		log.Error().Err(err).Msg("failed to get latest reading")
		return nil, status.Error(codes.Internal, "failed to get reading")
	}

	return &pb.GetCurrentLightResponse{
		Reading: convertReadingToProto(reading),
	}, nil
}

// MeasureLight runs a fresh measurement and stores it
func (h *LightServiceHandler) MeasureLight(ctx context.Context, req *pb.MeasureLightRequest) (*pb.MeasureLightResponse, error) {
	log.Info().Msg("MeasureLight called")

	reading, err := h.measure(ctx)
	if err != nil {
		return nil, err
	}

	return &pb.MeasureLightResponse{
		Reading: convertReadingToProto(reading),
	}, nil
}

// GetHistory returns readings within time range with statistics
func (h *LightServiceHandler) GetHistory(ctx context.Context, req *pb.GetHistoryRequest) (*pb.GetHistoryResponse, error) {
	log.Info().
		Int64("start", req.StartTime).
		Int64("end", req.EndTime).
		Msg("GetHistory called")

	if req.EndTime < req.StartTime {
		return nil, status.Error(codes.InvalidArgument, domain.ErrInvalidRange.Error())
	}

	start := time.Unix(req.StartTime, 0)
	end := time.Unix(req.EndTime, 0)

	readings, err := h.repo.GetReadingsInRange(ctx, start, end)
	if err != nil {
		log.Error().Err(err).Msg("failed to get readings")
		return nil, status.Error(codes.Internal, "failed to get readings")
	}

	pbReadings := make([]*pb.LightReading, len(readings))
	for i, r := range readings {
		pbReadings[i] = convertReadingToProto(r)
	}

	stats := calculateStatistics(readings)

	return &pb.GetHistoryResponse{
		Readings:   pbReadings,
		AverageLux: stats.average,
		MinLux:     stats.min,
		MaxLux:     stats.max,
	}, nil
}

// RecordReading manually records a reading
func (h *LightServiceHandler) RecordReading(ctx context.Context, req *pb.RecordReadingRequest) (*pb.RecordReadingResponse, error) {
	log.Info().Float64("lux", req.Lux).Msg("RecordReading called")

	reading, err := domain.NewLightReading(req.Lux)
	if err != nil {
		log.Error().Err(err).Msg("invalid lux value")
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := h.repo.SaveReading(ctx, reading); err != nil {
		log.Error().Err(err).Msg("failed to save reading")
		return nil, status.Error(codes.Internal, "failed to save reading")
	}

	return &pb.RecordReadingResponse{
		Reading: convertReadingToProto(reading),
	}, nil
}

// measure reads the sensor and stores the result. A failed save is logged
// but the reading is still returned.
func (h *LightServiceHandler) measure(ctx context.Context) (*domain.LightReading, error) {
	sample, err := h.sensor.ReadLight(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read sensor")
		return nil, sensorStatus(err)
	}

	reading, err := domain.NewLightReadingFromSample(sample)
	if err != nil {
		log.Error().Err(err).Msg("failed to create reading")
		return nil, status.Error(codes.Internal, "failed to create reading")
	}

	if err := h.repo.SaveReading(ctx, reading); err != nil {
		log.Error().Err(err).Msg("failed to save reading")
	}

	return reading, nil
}

func sensorStatus(err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "measurement cancelled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "measurement timed out")
	case errors.Is(err, domain.ErrSensorUnavailable):
		return status.Error(codes.Unavailable, "sensor unavailable")
	}
	return status.Error(codes.Internal, "failed to read sensor")
}

// convertReadingToProto converts domain model to wire form
func convertReadingToProto(r *domain.LightReading) *pb.LightReading {
	return &pb.LightReading{
		Id:        r.ID,
		Lux:       r.Lux,
		Raw:       uint32(r.Raw),
		Timestamp: r.Timestamp.Unix(),
		Category:  r.LightCategory(),
	}
}

// statistics holds calculated statistics
type statistics struct {
	average float64
	min     float64
	max     float64
}

// calculateStatistics computes stats for a set of readings
func calculateStatistics(readings []*domain.LightReading) statistics {
	if len(readings) == 0 {
		return statistics{}
	}

	var sum float64
	min := readings[0].Lux
	max := readings[0].Lux

	for _, r := range readings {
		sum += r.Lux
		if r.Lux < min {
			min = r.Lux
		}
		if r.Lux > max {
			max = r.Lux
		}
	}

	return statistics{
		average: sum / float64(len(readings)),
		min:     min,
		max:     max,
	}
}
