package mapsync

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/errors"
	"github.com/KirkDiggler/rpg-atlas/internal/world"
)

type fetchResult struct {
	seq      uint64
	reason   string
	snapshot *entities.MapSnapshot
	err      error
}

type requestKind int

const (
	requestSnapshot requestKind = iota + 1
	requestRefresh
)

type request struct {
	kind requestKind
	resp chan *entities.MapSnapshot
}

// View is one open map. Its model is owned by the run loop; every other
// method talks to the loop through channels.
type View struct {
	mapID      string
	capability entities.Capability
	fetcher    Fetcher
	tracer     trace.Tracer
	changes    ChangeSubscription
	live       LiveSubscription

	// owned by run
	model    *world.Model
	inflight int
	issued   uint64
	synced   bool // a fetch has been applied; the map may since have been deleted

	state    atomic.Int32
	dropped  atomic.Uint64
	cancel   context.CancelFunc
	results  chan fetchResult
	requests chan request
	events   chan Event
	loopDone chan struct{}

	closeOnce sync.Once
	closeErr  error
}

// MapID returns the map this view follows
func (v *View) MapID() string {
	return v.mapID
}

// State returns the current lifecycle state.
func (v *View) State() State {
	return State(v.state.Load())
}

// Events delivers snapshots, patches and failures. The channel is closed
// after Close; a consumer that falls behind loses events, never the model.
func (v *View) Events() <-chan Event {
	return v.events
}

// Dropped counts events discarded because the consumer fell behind.
func (v *View) Dropped() uint64 {
	return v.dropped.Load()
}

// Snapshot returns a copy of the current model.
func (v *View) Snapshot(ctx context.Context) (*entities.MapSnapshot, error) {
	req := request{kind: requestSnapshot, resp: make(chan *entities.MapSnapshot, 1)}
	if err := v.send(ctx, req); err != nil {
		return nil, err
	}

	select {
	case snap := <-req.resp:
		return snap, nil
	case <-ctx.Done():
		return nil, errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "wait for snapshot")
	case <-v.loopDone:
		return nil, errors.FailedPrecondition("map view is closed")
	}
}

// Refresh asks for a full refetch, the manual recovery path after a
// failed sync.
func (v *View) Refresh(ctx context.Context) error {
	return v.send(ctx, request{kind: requestRefresh})
}

func (v *View) send(ctx context.Context, req request) error {
	select {
	case v.requests <- req:
		return nil
	case <-ctx.Done():
		return errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "send view request")
	case <-v.loopDone:
		return errors.FailedPrecondition("map view is closed")
	}
}

// Close stops the loop and releases both subscriptions, reporting every
// release failure. In-flight fetches are left to finish and discarded.
func (v *View) Close() error {
	v.closeOnce.Do(func() {
		v.cancel()
		<-v.loopDone
		v.state.Store(int32(StateClosed))

		var errs []error
		if err := v.changes.Close(); err != nil {
			errs = append(errs, errors.Wrap(err, "close change subscription"))
		}
		if err := v.live.Close(); err != nil {
			errs = append(errs, errors.Wrap(err, "close live subscription"))
		}
		v.closeErr = errors.Join(errs...)
		close(v.events)

		if v.closeErr != nil {
			slog.Warn("map view closed with errors", "map_id", v.mapID, "error", v.closeErr)
		} else {
			slog.Info("map view closed", "map_id", v.mapID, "dropped_events", v.dropped.Load())
		}
	})
	return v.closeErr
}

func (v *View) run(ctx context.Context) {
	defer close(v.loopDone)

	changes := v.changes.Changes()
	live := v.live.Events()

	v.startFetch(ctx, "initial")

	for {
		select {
		case <-ctx.Done():
			return

		case change, ok := <-changes:
			if !ok {
				slog.Warn("change feed ended", "map_id", v.mapID)
				changes = nil
				continue
			}
			if change.MapID != "" && change.MapID != v.mapID {
				continue
			}
			v.startFetch(ctx, "change:"+string(change.Table))

		case ev, ok := <-live:
			if !ok {
				slog.Warn("live channel ended", "map_id", v.mapID)
				live = nil
				continue
			}
			v.applyLive(ctx, ev)

		case res := <-v.results:
			v.applyFetch(res)

		case req := <-v.requests:
			switch req.kind {
			case requestSnapshot:
				req.resp <- v.model.Snapshot()
			case requestRefresh:
				v.startFetch(ctx, "refresh")
			}
		}
	}
}

func (v *View) applyLive(ctx context.Context, ev entities.LiveEvent) {
	if ev.MapID != "" && ev.MapID != v.mapID {
		return
	}

	switch ev.Kind {
	case entities.LiveTokenMoved:
		if v.model.PatchTokenPosition(ev.TokenID, ev.X, ev.Y) {
			v.emit(Event{Kind: EventTokenMoved, TokenID: ev.TokenID, X: ev.X, Y: ev.Y})
		}
	case entities.LiveTokenRemoved:
		if v.model.RemoveToken(ev.TokenID) {
			v.emit(Event{Kind: EventTokenRemoved, TokenID: ev.TokenID})
		}
	case entities.LiveTokenAdded:
		if ev.TokenID != "" && v.model.Loaded() {
			stub := &entities.Token{ID: ev.TokenID, MapID: v.mapID, X: ev.X, Y: ev.Y}
			if err := v.model.UpsertTokenStub(stub); err != nil {
				slog.Debug("skip token stub", "map_id", v.mapID, "token_id", ev.TokenID, "error", err)
			}
		}
		v.startFetch(ctx, "token_added")
	default:
		slog.Debug("unknown live event", "map_id", v.mapID, "kind", ev.Kind)
	}
}

func (v *View) startFetch(ctx context.Context, reason string) {
	v.inflight++
	v.issued++
	seq := v.issued

	switch v.State() {
	case StateUninitialized:
		v.setState(StateLoading)
	case StateLive:
		v.setState(StateReconciling)
	}

	opts := FetchOptions{IncludeRoster: v.capability.CanManage}

	// the fetch runs to completion even if the view closes meanwhile
	fetchParent := context.WithoutCancel(ctx)

	go func() {
		fetchCtx, span := v.tracer.Start(fetchParent, "mapsync.fetch_snapshot", trace.WithAttributes(
			attribute.String("map.id", v.mapID),
			attribute.String("sync.reason", reason),
			attribute.Int64("sync.seq", int64(seq)), // nolint:gosec // sequence stays small
		))
		snap, err := v.fetcher.FetchSnapshot(fetchCtx, v.mapID, opts)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "fetch failed")
		}
		span.End()

		select {
		case v.results <- fetchResult{seq: seq, reason: reason, snapshot: snap, err: err}:
		case <-ctx.Done():
			// closed while fetching; the result is discarded
		}
	}()
}

func (v *View) applyFetch(res fetchResult) {
	v.inflight--

	err := res.err
	if err == nil {
		err = v.model.ReplaceAll(v.redact(res.snapshot))
	}

	if err != nil {
		slog.Warn("map sync failed, keeping last snapshot",
			"map_id", v.mapID, "reason", res.reason, "seq", res.seq, "error", err)
		v.emit(Event{Kind: EventSyncFailed, Error: errors.GetMessage(err)})
	} else {
		v.synced = true
		v.emit(Event{Kind: EventSnapshot, Snapshot: v.model.Snapshot()})
	}

	if v.inflight == 0 && v.synced {
		v.setState(StateLive)
	}
}

// redact strips what a non-manager should not see: other players' zone
// exemptions and the roster.
func (v *View) redact(snap *entities.MapSnapshot) *entities.MapSnapshot {
	if snap == nil {
		return nil
	}
	snap = snap.Clone()
	if snap.FetchedAt.IsZero() {
		snap.FetchedAt = time.Now()
	}
	if v.capability.CanManage {
		return snap
	}

	snap.Roster = nil
	for _, z := range snap.Zones {
		if z == nil {
			continue
		}
		if z.Exempts(v.capability.PlayerID) {
			z.ExemptPlayerIDs = []string{v.capability.PlayerID}
		} else {
			z.ExemptPlayerIDs = nil
		}
	}
	return snap
}

func (v *View) setState(s State) {
	if State(v.state.Swap(int32(s))) == s {
		return
	}
	v.emit(Event{Kind: EventState, State: s.String()})
}

func (v *View) emit(ev Event) {
	select {
	case v.events <- ev:
	default:
		v.dropped.Add(1)
	}
}
