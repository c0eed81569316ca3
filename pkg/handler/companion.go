package handler

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/AccelByte/extend-step-companion/pkg/common"
	"github.com/AccelByte/extend-step-companion/pkg/companion"
	"github.com/AccelByte/extend-step-companion/pkg/pipeline"
	"github.com/AccelByte/extend-step-companion/pkg/signal"
)

// Pipeline is the part of the pipeline manager the handler needs.
type Pipeline interface {
	Submit(ctx context.Context, sig signal.Signal) error
	Snapshot() companion.Snapshot
}

// Companion serves step samples, taps and snapshot reads
type Companion struct {
	UnimplementedCompanionServiceServer

	pipelineManager Pipeline
	now             func() time.Time
}

// NewCompanion creates a new companion handler
func NewCompanion(pipelineManager Pipeline) *Companion {
	return &Companion{
		pipelineManager: pipelineManager,
		now:             time.Now,
	}
}

// RecordSteps queues a cumulative step counter sample.
// The counter is cumulative since device boot, so it is never negative.
func (s *Companion) RecordSteps(ctx context.Context, msg *wrapperspb.Int64Value) (*emptypb.Empty, error) {
	scope := common.GetScopeFromContext(ctx, "Companion.RecordSteps")
	defer scope.Finish()

	cumulative := msg.GetValue()
	if cumulative < 0 {
		scope.Log.Warnf("rejected negative step counter %d", cumulative)
		return nil, status.Errorf(codes.InvalidArgument, "step counter must be non-negative, got %d", cumulative)
	}

	scope.SetAttributes("cumulative_steps", cumulative)
	scope.Log.Debugf("received step sample: cumulative=%d", cumulative)

	if err := s.pipelineManager.Submit(scope.Ctx, signal.NewStepSignal(s.now(), int(cumulative))); err != nil {
		scope.TraceError(err)
		return nil, submitError(err)
	}
	scope.TraceEvent("step sample queued")

	return &emptypb.Empty{}, nil
}

// Cry queues a tap. Eggs stay silent.
func (s *Companion) Cry(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	scope := common.GetScopeFromContext(ctx, "Companion.Cry")
	defer scope.Finish()

	if err := s.pipelineManager.Submit(scope.Ctx, signal.NewTapSignal(s.now())); err != nil {
		scope.TraceError(err)
		return nil, submitError(err)
	}
	scope.TraceEvent("tap queued")

	return &emptypb.Empty{}, nil
}

// GetCompanion returns the latest published snapshot.
func (s *Companion) GetCompanion(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	scope := common.GetScopeFromContext(ctx, "Companion.GetCompanion")
	defer scope.Finish()

	snap := s.pipelineManager.Snapshot()
	scope.TraceTag("species_id", snap.SpeciesID)
	scope.Log.Debugf("serving snapshot of %s in span %s", snap.SpeciesID, scope.GetSpanContextString())

	result, err := SnapshotStruct(snap)
	if err != nil {
		scope.TraceError(err)
		logrus.Errorf("failed to encode snapshot: %v", err)
		return nil, status.Errorf(codes.Internal, "failed to encode snapshot: %v", err)
	}

	return result, nil
}

// SnapshotStruct converts a snapshot to a protobuf Struct using the
// snapshot's JSON field names.
func SnapshotStruct(snap companion.Snapshot) (*structpb.Struct, error) {
	fields := map[string]interface{}{
		"species_id":   snap.SpeciesID,
		"name":         snap.Name,
		"is_egg":       snap.IsEgg,
		"is_variant":   snap.IsVariant,
		"experience":   snap.Experience,
		"level":        snap.Level,
		"day":          snap.Day,
		"sprite":       snap.Sprite,
		"exp_progress": snap.ExpProgress,
	}
	if snap.CryAsset != "" {
		fields["cry_asset"] = snap.CryAsset
	}

	return structpb.NewStruct(fields)
}

func submitError(err error) error {
	if errors.Is(err, pipeline.ErrStopped) {
		return status.Error(codes.Unavailable, "companion is shutting down")
	}
	return status.FromContextError(err).Err()
}
