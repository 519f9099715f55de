package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"graphtrace/internal/config"
	"graphtrace/internal/core"
	"graphtrace/internal/db"
	"graphtrace/internal/http/handler"
	"graphtrace/internal/http/handler/middleware"
	"graphtrace/internal/http/payload"
	"graphtrace/internal/http/server"
	"graphtrace/internal/repository"
	"graphtrace/pkg/log"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	config, err := config.NewApp()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level, err := zapcore.ParseLevel(config.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	logger := log.NewZapLogger("graphtrace", level)

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewGraphRepository(dbConn)

	if err := repo.MigrateTables(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// tracer
	tracer := core.NewTracer(
		logger,
		repo,
		repo,
		repo,
		repo)

	// handler
	traceHlr := handler.NewTraceHandler(
		logger,
		payload.DecodeValidator{},
		tracer)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.CreateGraph, traceHlr.HandleCreateGraph)
	mux.HandleFunc(handler.ReplaceGraph, traceHlr.HandleReplaceGraph)
	mux.HandleFunc(handler.AddToGraph, traceHlr.HandleAddToGraph)
	mux.HandleFunc(handler.GetGraph, traceHlr.HandleGetGraph)
	mux.HandleFunc(handler.ListGraphs, traceHlr.HandleListGraphs)
	mux.HandleFunc(handler.GetWalletGraph, traceHlr.HandleGetWalletGraph)
	mux.HandleFunc(handler.GetNode, traceHlr.HandleGetNode)
	mux.HandleFunc(handler.GetNodeConnections, traceHlr.HandleGetNodeConnections)
	mux.HandleFunc(handler.ApplyTag, traceHlr.HandleApplyTag)
	mux.HandleFunc(handler.ListTags, traceHlr.HandleListTags)
	mux.HandleFunc(handler.GetWalletProfile, traceHlr.HandleGetWalletProfile)
	mux.HandleFunc(handler.SearchWallets, traceHlr.HandleSearchWallets)
	mux.HandleFunc(handler.GetStats, traceHlr.HandleGetStats)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
