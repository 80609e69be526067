// Command circuitd runs one node of the circuit admin service.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/devghori1264/aerophoenix/circuitd/internal/admin"
	"github.com/devghori1264/aerophoenix/circuitd/internal/api"
	"github.com/devghori1264/aerophoenix/circuitd/internal/config"
	"github.com/devghori1264/aerophoenix/circuitd/internal/logger"
	"github.com/devghori1264/aerophoenix/circuitd/internal/metrics"
	"github.com/devghori1264/aerophoenix/circuitd/internal/natsclient"
	"github.com/devghori1264/aerophoenix/circuitd/internal/server"
	"github.com/devghori1264/aerophoenix/circuitd/internal/signing"
	"github.com/devghori1264/aerophoenix/circuitd/internal/storage"
	"github.com/devghori1264/aerophoenix/circuitd/internal/telemetry"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var configFile string

	cmd := &cobra.Command{
		Use:           "circuitd",
		Short:         "Circuit admin daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfg)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&configFile, "config", "c", "", "path to config file (yaml, json or toml)")
	fs.String("node-id", "", "this node's id within circuits")
	fs.String("data-dir", "data", "storage directory")
	fs.String("engine", "badger", "storage engine: badger or leveldb")
	fs.String("nats-url", "nats://127.0.0.1:4222", "NATS server URL")
	fs.String("grpc-addr", ":50051", "gRPC listen address")
	fs.String("http-addr", ":8085", "HTTP listen address")
	fs.String("log-level", "info", "debug, info, warn or error")
	if err := config.BindFlags(v, fs); err != nil {
		panic(err)
	}
	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	log, err := logger.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()
	log = log.With(zap.String("node_id", cfg.Node.ID))

	shutdownTracing, err := telemetry.Setup("circuitd", cfg.Node.ID, cfg.Tracing.Enabled, os.Stderr)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracing shutdown", zap.Error(err))
		}
	}()

	kv, err := storage.Open(cfg.Storage.Engine, cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("open %s store at %s: %w", cfg.Storage.Engine, cfg.Storage.Path, err)
	}
	defer kv.Close()

	nc, err := natsclient.Connect(cfg.NATS.URL, "circuitd-"+cfg.Node.ID, log)
	if err != nil {
		return fmt.Errorf("connect nats %s: %w", cfg.NATS.URL, err)
	}
	pub := natsclient.NewPublisher(nc)
	defer pub.Close()
	transport := natsclient.NewTransport(nc, cfg.NATS.SubjectPrefix, cfg.Node.ID, log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	sm, err := admin.New(admin.Config{
		NodeID:           cfg.Node.ID,
		StorageRetries:   cfg.Admin.StorageRetries,
		RetryInterval:    cfg.Admin.RetryInterval,
		PendingVoteLimit: cfg.Admin.PendingVoteLimit,
	},
		storage.NewProposalStore(kv),
		storage.NewCircuitDirectory(kv),
		signing.NKeyVerifier{},
		transport,
		admin.WithLogger(log),
		admin.WithEvents(natsclient.NewEventPublisher(pub, cfg.NATS.EventSubject)),
		admin.WithMetrics(metrics.New(reg)),
		admin.WithTracer(otel.Tracer("circuitd/admin")),
		admin.WithFatalHandler(func(circuitID string, err error) {
			log.Error("circuit halted after storage failures", zap.String("circuit_id", circuitID), zap.Error(err))
		}),
	)
	if err != nil {
		return err
	}
	if err := sm.Recover(ctx); err != nil {
		return fmt.Errorf("recover proposals: %w", err)
	}
	if err := transport.Listen(ctx, sm.Router()); err != nil {
		return fmt.Errorf("listen for admin messages: %w", err)
	}
	defer transport.Close()

	lis, err := net.Listen("tcp", cfg.GRPC.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.GRPC.Addr, err)
	}
	grpcServer := grpc.NewServer()
	server.New(sm, log).RegisterGRPC(grpcServer)

	errc := make(chan error, 3)
	go func() {
		log.Info("gRPC server listening", zap.String("addr", cfg.GRPC.Addr))
		if err := grpcServer.Serve(lis); err != nil {
			errc <- fmt.Errorf("grpc serve: %w", err)
		}
	}()

	router := mux.NewRouter()
	api.RegisterRoutes(router, api.NewHandler(sm, log))
	servers := []*http.Server{{Addr: cfg.HTTP.Addr, Handler: router}}
	if cfg.Metrics.Addr == "" {
		api.RegisterMetrics(router, reg)
	} else {
		servers = append(servers, &http.Server{Addr: cfg.Metrics.Addr, Handler: api.MetricsHandler(reg)})
	}
	for _, hs := range servers {
		go func() {
			log.Info("HTTP server listening", zap.String("addr", hs.Addr))
			if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errc <- fmt.Errorf("http listen %s: %w", hs.Addr, err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		log.Info("shutdown initiated")
	case err = <-errc:
		log.Error("server failed", zap.Error(err))
	}

	grpcServer.GracefulStop()
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, hs := range servers {
		if serr := hs.Shutdown(sctx); serr != nil {
			log.Warn("http server shutdown", zap.String("addr", hs.Addr), zap.Error(serr))
		}
	}
	log.Info("shutdown complete")
	return err
}
