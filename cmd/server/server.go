package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	atlasv1alpha1 "github.com/KirkDiggler/rpg-atlas/internal/handlers/atlas/v1alpha1"
	"github.com/KirkDiggler/rpg-atlas/internal/orchestrators/mapadmin"
	"github.com/KirkDiggler/rpg-atlas/internal/orchestrators/movement"
	"github.com/KirkDiggler/rpg-atlas/internal/orchestrators/presence"
	"github.com/KirkDiggler/rpg-atlas/internal/orchestrators/skillcheck"
	"github.com/KirkDiggler/rpg-atlas/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-atlas/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-atlas/internal/realtime"
	redisclient "github.com/KirkDiggler/rpg-atlas/internal/redis"
	"github.com/KirkDiggler/rpg-atlas/internal/repositories/journal"
	"github.com/KirkDiggler/rpg-atlas/internal/repositories/maps"
	"github.com/KirkDiggler/rpg-atlas/internal/repositories/profiles"
	"github.com/KirkDiggler/rpg-atlas/internal/services/session"
	"github.com/KirkDiggler/rpg-atlas/internal/services/snapshot"
	"github.com/KirkDiggler/rpg-atlas/internal/transport/web"
	"github.com/KirkDiggler/rpg-atlas/internal/travel"
)

const shutdownTimeout = 30 * time.Second

var (
	grpcPort int
	httpPort int
	envFile  string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC and websocket servers",
	Long:  `Start the atlas gRPC server and the HTTP server for live map views and embeds.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides ATLAS_GRPC_PORT)")
	serverCmd.Flags().IntVar(&httpPort, "http-port", 0, "HTTP server port (overrides ATLAS_HTTP_PORT)")
	serverCmd.Flags().StringVar(&envFile, "env-file", ".env", "Optional dotenv file loaded before the environment")
}

// services is everything the transports are built from.
type services struct {
	redis    redisclient.Client
	journal  journal.Repository
	maps     maps.Repository
	sessions *session.Service
	rules    *travel.Resolver

	skillCheck skillcheck.Service
	movement   movement.Service
	mapAdmin   mapadmin.Service
	presence   presence.Service

	fetcher *snapshot.Fetcher
	changes *realtime.ChangeFeed
	live    *realtime.LiveSource
}

func (s *services) Close() {
	if err := s.journal.Close(); err != nil {
		slog.Warn("failed to close journal", "error", err)
	}
	if err := s.redis.Close(); err != nil {
		slog.Warn("failed to close redis", "error", err)
	}
}

func buildServices(cfg *Config) (*services, error) {
	clk := clock.New()

	redis, err := redisclient.NewClientFromURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	journalRepo, err := journal.NewSQLite(&journal.SQLiteConfig{Path: cfg.JournalDB})
	if err != nil {
		_ = redis.Close()
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	svc := &services{redis: redis, journal: journalRepo}
	fail := func(msg string, err error) (*services, error) {
		svc.Close()
		return nil, fmt.Errorf("%s: %w", msg, err)
	}

	svc.maps, err = maps.NewRedis(&maps.RedisConfig{Client: redis, Clock: clk})
	if err != nil {
		return fail("failed to create map repository", err)
	}

	profileRepo, err := profiles.NewRedis(&profiles.RedisConfig{Client: redis, Clock: clk})
	if err != nil {
		return fail("failed to create profile repository", err)
	}

	rulesCfg := &travel.Config{}
	if cfg.RulesFile != "" {
		rulesCfg, err = travel.LoadRules(cfg.RulesFile)
		if err != nil {
			return fail("failed to load travel rules", err)
		}
	}
	svc.rules, err = travel.NewResolver(rulesCfg)
	if err != nil {
		return fail("failed to create travel resolver", err)
	}

	svc.sessions, err = session.New(&session.Config{
		Secret:   []byte(cfg.JWTSecret),
		Issuer:   cfg.JWTIssuer,
		Profiles: profileRepo,
		Clock:    clk,
	})
	if err != nil {
		return fail("failed to create session service", err)
	}

	broadcaster, err := realtime.NewBroadcaster(&realtime.BroadcasterConfig{Client: redis})
	if err != nil {
		return fail("failed to create broadcaster", err)
	}

	svc.changes, err = realtime.NewChangeFeed(&realtime.ChangeFeedConfig{Client: redis, Block: cfg.ChangeBlock})
	if err != nil {
		return fail("failed to create change feed", err)
	}

	svc.live, err = realtime.NewLiveSource(&realtime.LiveSourceConfig{Client: redis, Buffer: cfg.EventBuffer})
	if err != nil {
		return fail("failed to create live source", err)
	}

	svc.fetcher, err = snapshot.NewFetcher(&snapshot.Config{Maps: svc.maps, Profiles: profileRepo, Clock: clk})
	if err != nil {
		return fail("failed to create snapshot fetcher", err)
	}

	svc.skillCheck, err = skillcheck.NewOrchestrator(&skillcheck.Config{
		Journal:     journalRepo,
		IDGenerator: idgen.NewPrefixed(idgen.PrefixOutcome),
		Clock:       clk,
	})
	if err != nil {
		return fail("failed to create skill check orchestrator", err)
	}

	svc.movement, err = movement.NewOrchestrator(&movement.Config{
		Maps:      svc.maps,
		Profiles:  profileRepo,
		Journal:   journalRepo,
		Rules:     svc.rules,
		Publisher: broadcaster,
		TokenIDs:  idgen.NewUUID(idgen.PrefixToken),
		TravelIDs: idgen.NewUUID(idgen.PrefixTravel),
		Clock:     clk,
	})
	if err != nil {
		return fail("failed to create movement orchestrator", err)
	}

	svc.mapAdmin, err = mapadmin.NewOrchestrator(&mapadmin.Config{
		Maps:        svc.maps,
		IDGenerator: idgen.NewUUID(""),
	})
	if err != nil {
		return fail("failed to create map admin orchestrator", err)
	}

	svc.presence, err = presence.NewOrchestrator(&presence.Config{
		Maps:        svc.maps,
		Profiles:    profileRepo,
		Journal:     journalRepo,
		IDGenerator: idgen.NewUUID(idgen.PrefixPrayer),
		Clock:       clk,
	})
	if err != nil {
		return fail("failed to create presence orchestrator", err)
	}

	return svc, nil
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	if grpcPort != 0 {
		cfg.GRPCPort = grpcPort
	}
	if httpPort != 0 {
		cfg.HTTPPort = httpPort
	}

	logCloser := setupLogger(cfg)
	defer func() {
		_ = logCloser.Close()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := buildServices(cfg)
	if err != nil {
		return err
	}
	defer svc.Close()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	mapHandler, err := atlasv1alpha1.NewHandler(&atlasv1alpha1.HandlerConfig{
		Sessions:    svc.sessions,
		Rules:       svc.rules,
		SkillCheck:  svc.skillCheck,
		Movement:    svc.movement,
		Fetcher:     svc.fetcher,
		Changes:     svc.changes,
		Live:        svc.live,
		EventBuffer: cfg.EventBuffer,
	})
	if err != nil {
		return fmt.Errorf("failed to create map handler: %w", err)
	}

	atlasv1alpha1.RegisterMapServiceServer(srv, mapHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(atlasv1alpha1.MapServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	webServer, err := web.NewServer(&web.Config{
		Sessions:       svc.sessions,
		Maps:           svc.maps,
		SkillCheck:     svc.skillCheck,
		MapAdmin:       svc.mapAdmin,
		Movement:       svc.movement,
		Presence:       svc.presence,
		Fetcher:        svc.fetcher,
		Changes:        svc.changes,
		Live:           svc.live,
		EventBuffer:    cfg.EventBuffer,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	if err != nil {
		return fmt.Errorf("failed to create web server: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	httpSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           webServer.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 2)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve grpc: %w", err)
		}
	}()
	go func() {
		slog.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("failed to serve http: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("received shutdown signal, gracefully stopping")
	case err := <-errChan:
		srv.Stop()
		_ = httpSrv.Close()
		return err
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	healthServer.Shutdown()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP shutdown incomplete", "error", err)
	}

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		slog.Warn("graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		slog.Info("server stopped gracefully")
	}

	return nil
}
