// Package movement places, moves and removes tokens. It owns the rules that
// decide who may move what, where a move may land and what it costs.
package movement

//go:generate mockgen -destination=mock/mock_service.go -package=movementmock github.com/KirkDiggler/rpg-atlas/internal/orchestrators/movement Service

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/errors"
	"github.com/KirkDiggler/rpg-atlas/internal/geofence"
	"github.com/KirkDiggler/rpg-atlas/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-atlas/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-atlas/internal/realtime"
	"github.com/KirkDiggler/rpg-atlas/internal/repositories/journal"
	"github.com/KirkDiggler/rpg-atlas/internal/repositories/maps"
	"github.com/KirkDiggler/rpg-atlas/internal/repositories/profiles"
	"github.com/KirkDiggler/rpg-atlas/internal/travel"
)

const (
	// DefaultPosition is where a token lands when no position is given.
	DefaultPosition = 50.0

	// MaxInteractionRadius bounds an npc's reach.
	MaxInteractionRadius = 50.0

	errSignIn     = "sign in to move tokens"
	errManageOnly = "only a dm or admin may do this"
)

// Service defines the interface for token movement
type Service interface {
	// MoveToken moves a token within its map or onto another one.
	// Returns errors.PermissionDenied for someone else's token,
	// errors.FailedPrecondition for a locked destination or a short balance
	MoveToken(ctx context.Context, input *MoveTokenInput) (*MoveTokenOutput, error)

	// AddPlayerToMap places a player's token. The first placement is free;
	// bringing a token over from another map is a cross-map move.
	// Returns errors.AlreadyExists if the token is already on the map
	AddPlayerToMap(ctx context.Context, input *AddPlayerToMapInput) (*AddPlayerToMapOutput, error)

	AddNPCToMap(ctx context.Context, input *AddNPCToMapInput) (*AddNPCToMapOutput, error)
	RemoveToken(ctx context.Context, input *RemoveTokenInput) (*RemoveTokenOutput, error)
	UpdateNPCRadius(ctx context.Context, input *UpdateNPCRadiusInput) (*UpdateNPCRadiusOutput, error)

	// ListTravelLogs pages through roleplay moves, newest first.
	// Players only see their own
	ListTravelLogs(ctx context.Context, input *ListTravelLogsInput) (*ListTravelLogsOutput, error)
}

// Config holds the dependencies for the movement orchestrator
type Config struct {
	Maps      maps.Repository
	Profiles  profiles.Repository
	Journal   journal.Repository
	Rules     *travel.Resolver
	Publisher realtime.Publisher
	TokenIDs  idgen.Generator
	TravelIDs idgen.Generator
	Clock     clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Maps == nil {
		vb.RequiredField("Maps")
	}
	if c.Profiles == nil {
		vb.RequiredField("Profiles")
	}
	if c.Journal == nil {
		vb.RequiredField("Journal")
	}
	if c.Rules == nil {
		vb.RequiredField("Rules")
	}
	if c.Publisher == nil {
		vb.RequiredField("Publisher")
	}
	if c.TokenIDs == nil {
		vb.RequiredField("TokenIDs")
	}
	if c.TravelIDs == nil {
		vb.RequiredField("TravelIDs")
	}

	return vb.Build()
}

type orchestrator struct {
	maps      maps.Repository
	profiles  profiles.Repository
	journal   journal.Repository
	rules     *travel.Resolver
	publisher realtime.Publisher
	tokenIDs  idgen.Generator
	travelIDs idgen.Generator
	clock     clock.Clock
}

// NewOrchestrator creates a new movement orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		maps:      cfg.Maps,
		profiles:  cfg.Profiles,
		journal:   cfg.Journal,
		rules:     cfg.Rules,
		publisher: cfg.Publisher,
		tokenIDs:  cfg.TokenIDs,
		travelIDs: cfg.TravelIDs,
		clock:     c,
	}, nil
}

func (o *orchestrator) MoveToken(ctx context.Context, input *MoveTokenInput) (*MoveTokenOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Capability.IsAnonymous() {
		return nil, errors.PermissionDenied(errSignIn)
	}
	if input.TokenID == "" {
		return nil, errors.InvalidArgument("token ID is required")
	}

	got, err := o.maps.GetToken(ctx, maps.GetTokenInput{TokenID: input.TokenID})
	if err != nil {
		return nil, err
	}
	tok := got.Token

	if !input.Capability.CanManage && !ownsToken(input.Capability, tok) {
		return nil, errors.PermissionDeniedf("token %s belongs to someone else", tok.ID)
	}

	target := input.MapID
	if target == "" {
		target = tok.MapID
	}

	return o.move(ctx, input.Capability, tok, target, geofence.Point{X: input.X, Y: input.Y}, input.Evidence)
}

func (o *orchestrator) AddPlayerToMap(ctx context.Context, input *AddPlayerToMapInput) (*AddPlayerToMapOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	caller := input.Capability
	if caller.IsAnonymous() {
		return nil, errors.PermissionDenied(errSignIn)
	}
	if input.MapID == "" {
		return nil, errors.InvalidArgument("map ID is required")
	}

	playerID := input.PlayerID
	if playerID == "" {
		playerID = caller.PlayerID
	}
	if playerID != caller.PlayerID && !caller.CanManage {
		return nil, errors.PermissionDenied("players may only place their own token")
	}

	if _, err := o.maps.GetMap(ctx, maps.GetMapInput{MapID: input.MapID}); err != nil {
		return nil, err
	}

	pos := geofence.Point{X: DefaultPosition, Y: DefaultPosition}
	if input.Position != nil {
		pos = *input.Position
	}

	existing, err := o.maps.FindPlayerToken(ctx, maps.FindPlayerTokenInput{PlayerID: playerID})
	switch {
	case errors.IsNotFound(err):
		return o.placeFirst(ctx, caller, playerID, input.MapID, pos)
	case err != nil:
		return nil, err
	}

	if existing.Token.MapID == input.MapID {
		return nil, errors.AlreadyExistsf("player %s is already on map %s", playerID, input.MapID)
	}

	moved, err := o.move(ctx, caller, existing.Token, input.MapID, pos, input.Evidence)
	if err != nil {
		return nil, err
	}

	return &AddPlayerToMapOutput{
		Token:         moved.Token,
		PreviousMapID: moved.PreviousMapID,
		MoveType:      moved.MoveType,
		Charge:        moved.Charge,
	}, nil
}

func (o *orchestrator) placeFirst(
	ctx context.Context,
	caller entities.Capability,
	playerID, mapID string,
	pos geofence.Point,
) (*AddPlayerToMapOutput, error) {
	if _, err := o.profiles.Get(ctx, profiles.GetInput{PlayerID: playerID}); err != nil {
		return nil, err
	}

	created, err := o.maps.CreateToken(ctx, maps.CreateTokenInput{Token: &entities.Token{
		ID:        o.tokenIDs.Generate(),
		MapID:     mapID,
		Type:      entities.TokenTypePlayer,
		PlayerID:  playerID,
		X:         pos.X,
		Y:         pos.Y,
		CreatedBy: caller.PlayerID,
	}})
	if err != nil {
		return nil, err
	}
	t := created.Token

	slog.InfoContext(ctx, "player placed on map",
		"player_id", playerID,
		"map_id", mapID,
		"token_id", t.ID)

	o.publisher.Publish(ctx, entities.LiveEvent{Kind: entities.LiveTokenAdded, MapID: mapID, TokenID: t.ID, X: t.X, Y: t.Y})

	return &AddPlayerToMapOutput{Token: t, MoveType: entities.MoveTypeFirstEntry}, nil
}

// move applies every rule for one relocation and commits it. Anything taken
// from a balance is handed back if the write fails.
func (o *orchestrator) move(
	ctx context.Context,
	caller entities.Capability,
	tok *entities.Token,
	targetMapID string,
	dest geofence.Point,
	evidence *RoleplayEvidence,
) (*MoveTokenOutput, error) {
	crossMap := targetMapID != tok.MapID
	if crossMap {
		if _, err := o.maps.GetMap(ctx, maps.GetMapInput{MapID: targetMapID}); err != nil {
			return nil, err
		}
	}

	dest = geofence.Point{X: entities.ClampPosition(dest.X), Y: entities.ClampPosition(dest.Y)}
	moveType := entities.MoveTypeSameMap
	if crossMap {
		moveType = entities.MoveTypeCrossMap
	}

	var (
		charge *Charge
		log    *entities.TravelLog
	)
	if !caller.CanManage {
		got, err := o.profiles.Get(ctx, profiles.GetInput{PlayerID: caller.PlayerID})
		if err != nil {
			return nil, err
		}
		policy := o.rules.Resolve(got.Profile.Progression)

		if !policy.CanBypassLockedZones {
			if err := o.checkLockedZones(ctx, targetMapID, dest, caller.PlayerID); err != nil {
				return nil, err
			}
		}

		if evidence != nil {
			if err := validateEvidence(evidence); err != nil {
				return nil, err
			}
			log = &entities.TravelLog{
				ID:             o.travelIDs.Generate(),
				PlayerID:       caller.PlayerID,
				TokenID:        tok.ID,
				FromMapID:      tok.MapID,
				ToMapID:        targetMapID,
				FromX:          tok.X,
				FromY:          tok.Y,
				ToX:            dest.X,
				ToY:            dest.Y,
				MoveType:       moveType,
				OriginURL:      strings.TrimSpace(evidence.OriginURL),
				DestinationURL: strings.TrimSpace(evidence.DestinationURL),
				CreatedAt:      o.clock.Now(),
			}
		} else if cost := policy.Cost(crossMap); cost > 0 {
			spent, err := o.profiles.Spend(ctx, profiles.SpendInput{
				PlayerID: caller.PlayerID,
				Resource: policy.Resource,
				Amount:   cost,
			})
			if err != nil {
				return nil, err
			}
			charge = &Charge{Resource: policy.Resource, Amount: cost, Remaining: spent.Remaining}
		}
	}

	next := tok.Clone()
	next.MapID = targetMapID
	next.X = dest.X
	next.Y = dest.Y

	updated, err := o.maps.UpdateToken(ctx, maps.UpdateTokenInput{Token: next})
	if err != nil {
		o.refund(ctx, caller.PlayerID, charge)
		return nil, err
	}
	t := updated.Token

	if log != nil {
		if _, err := o.journal.RecordTravel(ctx, journal.RecordTravelInput{Log: log}); err != nil {
			slog.ErrorContext(ctx, "failed to journal roleplay travel",
				"token_id", t.ID,
				"travel_id", log.ID,
				"error", err)
		}
	}

	if crossMap {
		o.publisher.Publish(ctx, entities.LiveEvent{Kind: entities.LiveTokenRemoved, MapID: updated.PreviousMapID, TokenID: t.ID})
		o.publisher.Publish(ctx, entities.LiveEvent{Kind: entities.LiveTokenAdded, MapID: t.MapID, TokenID: t.ID, X: t.X, Y: t.Y})
	} else {
		o.publisher.Publish(ctx, entities.LiveEvent{Kind: entities.LiveTokenMoved, MapID: t.MapID, TokenID: t.ID, X: t.X, Y: t.Y})
	}

	slog.InfoContext(ctx, "token moved",
		"token_id", t.ID,
		"from_map", updated.PreviousMapID,
		"to_map", t.MapID,
		"move_type", moveType,
		"by", caller.PlayerID)

	return &MoveTokenOutput{
		Token:         t,
		PreviousMapID: updated.PreviousMapID,
		MoveType:      moveType,
		Charge:        charge,
		TravelLog:     log,
	}, nil
}

func (o *orchestrator) refund(ctx context.Context, playerID string, charge *Charge) {
	if charge == nil {
		return
	}
	_, err := o.profiles.Refund(ctx, profiles.RefundInput{
		PlayerID: playerID,
		Resource: charge.Resource,
		Amount:   charge.Amount,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to refund move",
			"player_id", playerID,
			"resource", charge.Resource,
			"amount", charge.Amount,
			"error", err)
	}
}

func (o *orchestrator) checkLockedZones(ctx context.Context, mapID string, dest geofence.Point, playerID string) error {
	zones, err := o.maps.ListZones(ctx, maps.ListZonesInput{MapID: mapID})
	if err != nil {
		return err
	}

	for _, z := range zones.Zones {
		if !z.Contains(dest) || z.Exempts(playerID) {
			continue
		}
		msg := z.Message
		if msg == "" {
			msg = entities.DefaultLockedZoneMessage
		}
		return errors.FailedPrecondition(msg).WithMeta("zone_id", z.ID)
	}

	return nil
}

func (o *orchestrator) AddNPCToMap(ctx context.Context, input *AddNPCToMapInput) (*AddNPCToMapOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Capability.CanManage {
		return nil, errors.PermissionDenied(errManageOnly)
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("map_id", input.MapID, vb)
	errors.ValidateRequired("name", strings.TrimSpace(input.Name), vb)
	errors.ValidateRequired("image_url", strings.TrimSpace(input.ImageURL), vb)
	if input.InteractionRadius < 0 || input.InteractionRadius > MaxInteractionRadius {
		vb.InvalidField("interaction_radius", "must be between 0 and 50")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.maps.GetMap(ctx, maps.GetMapInput{MapID: input.MapID}); err != nil {
		return nil, err
	}

	created, err := o.maps.CreateToken(ctx, maps.CreateTokenInput{Token: &entities.Token{
		ID:                o.tokenIDs.Generate(),
		MapID:             input.MapID,
		Type:              entities.TokenTypeNPC,
		NPCName:           strings.TrimSpace(input.Name),
		NPCImageURL:       strings.TrimSpace(input.ImageURL),
		X:                 input.X,
		Y:                 input.Y,
		InteractionRadius: input.InteractionRadius,
		CreatedBy:         input.Capability.PlayerID,
	}})
	if err != nil {
		return nil, err
	}
	t := created.Token

	o.publisher.Publish(ctx, entities.LiveEvent{Kind: entities.LiveTokenAdded, MapID: t.MapID, TokenID: t.ID, X: t.X, Y: t.Y})

	return &AddNPCToMapOutput{Token: t}, nil
}

func (o *orchestrator) RemoveToken(ctx context.Context, input *RemoveTokenInput) (*RemoveTokenOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Capability.CanManage {
		return nil, errors.PermissionDenied(errManageOnly)
	}

	deleted, err := o.maps.DeleteToken(ctx, maps.DeleteTokenInput{TokenID: input.TokenID})
	if err != nil {
		return nil, err
	}
	t := deleted.Token

	o.publisher.Publish(ctx, entities.LiveEvent{Kind: entities.LiveTokenRemoved, MapID: t.MapID, TokenID: t.ID})

	slog.InfoContext(ctx, "token removed", "token_id", t.ID, "map_id", t.MapID, "by", input.Capability.PlayerID)

	return &RemoveTokenOutput{Token: t}, nil
}

func (o *orchestrator) UpdateNPCRadius(ctx context.Context, input *UpdateNPCRadiusInput) (*UpdateNPCRadiusOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Capability.CanManage {
		return nil, errors.PermissionDenied(errManageOnly)
	}
	if input.Radius < 0 || input.Radius > MaxInteractionRadius {
		return nil, errors.InvalidArgumentf("radius %.1f must be between 0 and 50", input.Radius)
	}

	got, err := o.maps.GetToken(ctx, maps.GetTokenInput{TokenID: input.TokenID})
	if err != nil {
		return nil, err
	}
	if got.Token.Type != entities.TokenTypeNPC {
		return nil, errors.InvalidArgumentf("token %s is not an npc", input.TokenID)
	}

	next := got.Token.Clone()
	next.InteractionRadius = input.Radius

	updated, err := o.maps.UpdateToken(ctx, maps.UpdateTokenInput{Token: next})
	if err != nil {
		return nil, err
	}

	return &UpdateNPCRadiusOutput{Token: updated.Token}, nil
}

func (o *orchestrator) ListTravelLogs(ctx context.Context, input *ListTravelLogsInput) (*ListTravelLogsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	caller := input.Capability
	if caller.IsAnonymous() {
		return nil, errors.PermissionDenied("sign in to read travel logs")
	}

	playerID := input.PlayerID
	if !caller.CanManage {
		if playerID != "" && playerID != caller.PlayerID {
			return nil, errors.PermissionDenied("players may only read their own travel logs")
		}
		playerID = caller.PlayerID
	}

	out, err := o.journal.ListTravelLogs(ctx, journal.ListTravelLogsInput{PlayerID: playerID, Page: input.Page})
	if err != nil {
		return nil, err
	}

	return &ListTravelLogsOutput{Logs: out.Logs, HasMore: out.HasMore}, nil
}

func ownsToken(c entities.Capability, t *entities.Token) bool {
	return t.Type == entities.TokenTypePlayer && t.PlayerID == c.PlayerID
}

func validateEvidence(e *RoleplayEvidence) error {
	vb := errors.NewValidationBuilder()
	if !isWebURL(e.OriginURL) {
		vb.InvalidField("origin_url", "must be an http or https link")
	}
	if !isWebURL(e.DestinationURL) {
		vb.InvalidField("destination_url", "must be an http or https link")
	}
	return vb.Build()
}

func isWebURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
