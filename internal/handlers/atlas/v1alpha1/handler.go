// Package v1alpha1 handles the atlas map grpc service interface
package v1alpha1

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/errors"
	"github.com/KirkDiggler/rpg-atlas/internal/geofence"
	"github.com/KirkDiggler/rpg-atlas/internal/mapsync"
	"github.com/KirkDiggler/rpg-atlas/internal/orchestrators/movement"
	"github.com/KirkDiggler/rpg-atlas/internal/orchestrators/skillcheck"
	"github.com/KirkDiggler/rpg-atlas/internal/travel"
)

// AuthorizationHeader is the metadata key carrying the bearer token.
const AuthorizationHeader = "authorization"

// SessionStarter turns a bearer token into the caller's capability.
type SessionStarter interface {
	Start(ctx context.Context, token string) (entities.Capability, error)
}

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	Sessions   SessionStarter
	Rules      *travel.Resolver
	SkillCheck skillcheck.Service
	Movement   movement.Service

	// Map views
	Fetcher     mapsync.Fetcher
	Changes     mapsync.ChangeSource
	Live        mapsync.LiveSource
	EventBuffer int
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Sessions == nil {
		vb.RequiredField("Sessions")
	}
	if c.Rules == nil {
		vb.RequiredField("Rules")
	}
	if c.SkillCheck == nil {
		vb.RequiredField("SkillCheck")
	}
	if c.Movement == nil {
		vb.RequiredField("Movement")
	}
	if c.Fetcher == nil {
		vb.RequiredField("Fetcher")
	}
	if c.Changes == nil {
		vb.RequiredField("Changes")
	}
	if c.Live == nil {
		vb.RequiredField("Live")
	}
	return vb.Build()
}

// Handler implements the MapService gRPC service
type Handler struct {
	UnimplementedMapServiceServer
	sessions    SessionStarter
	rules       *travel.Resolver
	skillCheck  skillcheck.Service
	movement    movement.Service
	fetcher     mapsync.Fetcher
	changes     mapsync.ChangeSource
	live        mapsync.LiveSource
	eventBuffer int
}

var _ MapServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		sessions:    cfg.Sessions,
		rules:       cfg.Rules,
		skillCheck:  cfg.SkillCheck,
		movement:    cfg.Movement,
		fetcher:     cfg.Fetcher,
		changes:     cfg.Changes,
		live:        cfg.Live,
		eventBuffer: cfg.EventBuffer,
	}, nil
}

// capability resolves the caller from the authorization metadata. No
// token means an anonymous caller.
func (h *Handler) capability(ctx context.Context) (entities.Capability, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	values := md.Get(AuthorizationHeader)
	if len(values) == 0 || strings.TrimSpace(values[0]) == "" {
		return entities.Anonymous(), nil
	}
	return h.sessions.Start(ctx, values[0])
}

func (h *Handler) requireSession(ctx context.Context) (entities.Capability, error) {
	c, err := h.capability(ctx)
	if err != nil {
		return c, err
	}
	if c.IsAnonymous() {
		return c, errors.Unauthenticated("a bearer token is required")
	}
	return c, nil
}

// ResolveTravelRule returns the policy the rule table picks for the
// given progression facts
func (h *Handler) ResolveTravelRule(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in ResolveTravelRuleRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(h.rules.Resolve(in.Progression), nil)
}

// EvaluateGeofence classifies a point against ad hoc regions
func (h *Handler) EvaluateGeofence(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in EvaluateGeofenceRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	regions := make([]geofence.Region, 0, len(in.Regions))
	for _, r := range in.Regions {
		regions = append(regions, r.region())
	}

	return respond(geofence.Classify(in.Point, regions), nil)
}

// DecodeOutcome resolves a reference code, journal first
func (h *Handler) DecodeOutcome(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in DecodeOutcomeRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.skillCheck.Resolve(ctx, &skillcheck.ResolveInput{Code: in.Code})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&DecodeOutcomeResponse{
		Outcome: out.Outcome,
		Source:  out.Source,
		Record:  out.Record,
		Decoded: out.Decoded,
	}, nil)
}

// RollSkill rolls a check for the signed-in player
func (h *Handler) RollSkill(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	caller, err := h.requireSession(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	var in RollSkillRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.skillCheck.Roll(ctx, &skillcheck.RollInput{
		Capability:  caller,
		SkillID:     in.SkillID,
		SkillName:   in.SkillName,
		SuccessRate: in.SuccessRate,
		Note:        in.Note,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&RollSkillResponse{Record: out.Record}, nil)
}

// MoveToken moves a token for the signed-in player
func (h *Handler) MoveToken(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	caller, err := h.requireSession(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	var in MoveTokenRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.TokenID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("token_id is required"))
	}

	out, err := h.movement.MoveToken(ctx, &movement.MoveTokenInput{
		Capability: caller,
		TokenID:    in.TokenID,
		MapID:      in.MapID,
		X:          in.X,
		Y:          in.Y,
		Evidence:   in.evidence(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&MoveTokenResponse{
		Token:         out.Token,
		PreviousMapID: out.PreviousMapID,
		MoveType:      out.MoveType,
		Charge:        out.Charge,
	}, nil)
}

// WatchMap streams a map view's events until the client goes away
func (h *Handler) WatchMap(req *structpb.Struct, stream grpc.ServerStreamingServer[structpb.Struct]) error {
	ctx := stream.Context()

	caller, err := h.requireSession(ctx)
	if err != nil {
		return errors.ToGRPCError(err)
	}

	var in WatchMapRequest
	if err := Decode(req, &in); err != nil {
		return errors.ToGRPCError(err)
	}

	engine, err := mapsync.NewEngine(&mapsync.Config{
		Fetcher:     h.fetcher,
		Changes:     h.changes,
		Live:        h.live,
		Capability:  caller,
		EventBuffer: h.eventBuffer,
	})
	if err != nil {
		return errors.ToGRPCError(err)
	}

	view, err := engine.OpenMapView(ctx, in.MapID)
	if err != nil {
		return errors.ToGRPCError(err)
	}
	defer func() {
		if err := view.Close(); err != nil {
			slog.WarnContext(ctx, "failed to close map view", "map_id", in.MapID, "error", err)
		}
	}()

	slog.InfoContext(ctx, "map watch started", "map_id", in.MapID, "player_id", caller.PlayerID)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-view.Events():
			if !ok {
				return nil
			}
			msg, err := Encode(ev)
			if err != nil {
				return errors.ToGRPCError(err)
			}
			if err := stream.Send(msg); err != nil {
				return err
			}
		}
	}
}

func respond(v any, err error) (*structpb.Struct, error) {
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	out, err := Encode(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}
