package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/quentinrf/bh1750/internal/adapters/bh1750sensor"
	"github.com/quentinrf/bh1750/internal/adapters/memory"
	"github.com/quentinrf/bh1750/internal/adapters/mock"
	"github.com/quentinrf/bh1750/pkg/bh1750"
	"github.com/quentinrf/bh1750/pkg/pb"
)

// startTestServer creates an in-process gRPC server backed by a simulated
// BH1750 and returns a connected client. The server is stopped when the test ends.
func startTestServer(t *testing.T, bus *mock.Bus) pb.LightServiceClient {
	t.Helper()
	return pb.NewLightServiceClient(dialTestServer(t, bus))
}

func dialTestServer(t *testing.T, bus *mock.Bus) *grpc.ClientConn {
	t.Helper()

	repo := memory.NewReadingRepository()
	sensor := bh1750sensor.New(bh1750.New(bus), nil)
	handler := NewLightServiceHandler(repo, sensor)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}

	srv := grpc.NewServer()
	pb.RegisterLightServiceServer(srv, handler)

	go srv.Serve(lis)
	t.Cleanup(func() {
		srv.GracefulStop()
	})

	conn, err := grpc.NewClient(
		lis.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("failed to dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

// fixedBus is a simulated bus whose sensor always counts raw
func fixedBus(raw uint16) *mock.Bus {
	bus := mock.NewBus()
	bus.SetRaw(bh1750.AddrLow, raw)
	return bus
}

func TestGetCurrentLight_NoReadings(t *testing.T) {
	client := startTestServer(t, fixedBus(600))
	ctx := context.Background()

	resp, err := client.GetCurrentLight(ctx, &pb.GetCurrentLightRequest{})
	if err != nil {
		t.Fatalf("GetCurrentLight failed: %v", err)
	}
	if resp.Reading == nil {
		t.Fatal("expected a reading, got nil")
	}
	// 600 counts / 1.2
	if resp.Reading.Lux != 500.0 {
		t.Errorf("expected lux 500, got %v", resp.Reading.Lux)
	}
	if resp.Reading.Raw != 600 {
		t.Errorf("expected raw 600, got %d", resp.Reading.Raw)
	}
	if resp.Reading.Category != "Medium Light" {
		t.Errorf("expected category 'Medium Light', got %q", resp.Reading.Category)
	}
}

func TestRecordReading_ThenGetCurrent(t *testing.T) {
	client := startTestServer(t, fixedBus(600))
	ctx := context.Background()

	recordResp, err := client.RecordReading(ctx, &pb.RecordReadingRequest{Lux: 100.0})
	if err != nil {
		t.Fatalf("RecordReading failed: %v", err)
	}
	if recordResp.Reading.Lux != 100.0 {
		t.Errorf("expected recorded lux 100, got %v", recordResp.Reading.Lux)
	}

	// GetCurrentLight should now return the stored reading (latest)
	resp, err := client.GetCurrentLight(ctx, &pb.GetCurrentLightRequest{})
	if err != nil {
		t.Fatalf("GetCurrentLight failed: %v", err)
	}
	if resp.Reading.Lux != 100.0 {
		t.Errorf("expected current lux 100, got %v", resp.Reading.Lux)
	}
	if resp.Reading.Category != "Low Light" {
		t.Errorf("expected category 'Low Light', got %q", resp.Reading.Category)
	}
}

func TestMeasureLight_AlwaysReadsSensor(t *testing.T) {
	bus := fixedBus(3600)
	client := startTestServer(t, bus)
	ctx := context.Background()

	if _, err := client.RecordReading(ctx, &pb.RecordReadingRequest{Lux: 10}); err != nil {
		t.Fatalf("RecordReading failed: %v", err)
	}

	resp, err := client.MeasureLight(ctx, &pb.MeasureLightRequest{})
	if err != nil {
		t.Fatalf("MeasureLight failed: %v", err)
	}
	if resp.Reading.Lux != 3000 || resp.Reading.Category != "High Light" {
		t.Errorf("expected 3000 lux High Light, got %v %q", resp.Reading.Lux, resp.Reading.Category)
	}
	if len(bus.Ops()) != 3 {
		t.Errorf("expected one trigger/read cycle, got %d ops", len(bus.Ops()))
	}

	current, err := client.GetCurrentLight(ctx, &pb.GetCurrentLightRequest{})
	if err != nil {
		t.Fatalf("GetCurrentLight failed: %v", err)
	}
	if current.Reading.Id != resp.Reading.Id {
		t.Errorf("expected measured reading to be stored as latest")
	}
}

func TestMeasureLight_SensorMissing(t *testing.T) {
	client := startTestServer(t, mock.NewBus())

	_, err := client.MeasureLight(context.Background(), &pb.MeasureLightRequest{})
	if status.Code(err) != codes.Unavailable {
		t.Errorf("expected Unavailable, got %v", err)
	}
}

func TestGetHistory_TimeRange(t *testing.T) {
	client := startTestServer(t, fixedBus(600))
	ctx := context.Background()

	now := time.Now()

	_, err := client.RecordReading(ctx, &pb.RecordReadingRequest{Lux: 300.0})
	if err != nil {
		t.Fatalf("RecordReading failed: %v", err)
	}
	_, err = client.RecordReading(ctx, &pb.RecordReadingRequest{Lux: 600.0})
	if err != nil {
		t.Fatalf("RecordReading failed: %v", err)
	}

	start := now.Add(-time.Minute)
	end := now.Add(time.Minute)

	resp, err := client.GetHistory(ctx, &pb.GetHistoryRequest{
		StartTime: start.Unix(),
		EndTime:   end.Unix(),
	})
	if err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}
	if len(resp.Readings) != 2 {
		t.Fatalf("expected 2 readings, got %d", len(resp.Readings))
	}

	expectedAvg := (300.0 + 600.0) / 2
	if resp.AverageLux != expectedAvg {
		t.Errorf("expected average %v, got %v", expectedAvg, resp.AverageLux)
	}
	if resp.MinLux != 300.0 {
		t.Errorf("expected min 300, got %v", resp.MinLux)
	}
	if resp.MaxLux != 600.0 {
		t.Errorf("expected max 600, got %v", resp.MaxLux)
	}
}

func TestGetHistory_EmptyRange(t *testing.T) {
	client := startTestServer(t, fixedBus(600))
	ctx := context.Background()

	start := time.Now().Add(-48 * time.Hour)
	end := time.Now().Add(-47 * time.Hour)

	resp, err := client.GetHistory(ctx, &pb.GetHistoryRequest{
		StartTime: start.Unix(),
		EndTime:   end.Unix(),
	})
	if err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}
	if len(resp.Readings) != 0 {
		t.Errorf("expected 0 readings, got %d", len(resp.Readings))
	}
}

func TestGetHistory_InvertedRange(t *testing.T) {
	client := startTestServer(t, fixedBus(600))

	_, err := client.GetHistory(context.Background(), &pb.GetHistoryRequest{StartTime: 10, EndTime: 5})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("expected InvalidArgument, got %v", err)
	}
}

func TestRecordReading_CategoryMapping(t *testing.T) {
	client := startTestServer(t, fixedBus(600))
	ctx := context.Background()

	cases := []struct {
		lux      float64
		category string
	}{
		{50.0, "Low Light"},
		{1000.0, "Medium Light"},
		{3000.0, "High Light"},
	}

	for _, tc := range cases {
		resp, err := client.RecordReading(ctx, &pb.RecordReadingRequest{Lux: tc.lux})
		if err != nil {
			t.Fatalf("RecordReading(%.0f) failed: %v", tc.lux, err)
		}
		if resp.Reading.Category != tc.category {
			t.Errorf("lux %.0f: expected category %q, got %q", tc.lux, tc.category, resp.Reading.Category)
		}
	}
}

func TestRecordReading_InvalidLux(t *testing.T) {
	client := startTestServer(t, fixedBus(600))

	_, err := client.RecordReading(context.Background(), &pb.RecordReadingRequest{Lux: -10.0})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("expected InvalidArgument for negative lux, got %v", err)
	}
}

// A generic client with the default proto codec and no generated stubs
// must interoperate, as grpcurl does.
func TestMeasureLight_PlainProtoClient(t *testing.T) {
	conn := dialTestServer(t, fixedBus(404))

	resp := &pb.MeasureLightResponse{}
	err := conn.Invoke(context.Background(), pb.LightService_MeasureLight_FullMethodName, &emptypb.Empty{}, resp)
	if err != nil {
		t.Fatalf("MeasureLight failed: %v", err)
	}
	if resp.GetReading().GetRaw() != 404 {
		t.Errorf("expected raw 404, got %d", resp.GetReading().GetRaw())
	}

	// The reading must also survive a proto round trip unchanged.
	data, err := proto.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var decoded pb.MeasureLightResponse
	if err := proto.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !proto.Equal(resp, &decoded) {
		t.Errorf("round trip mismatch: %v != %v", resp, &decoded)
	}
}
