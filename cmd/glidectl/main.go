package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/glidelabs/glidectl/internal/config"
	"github.com/glidelabs/glidectl/internal/control"
	"github.com/glidelabs/glidectl/internal/httpd"
	"github.com/glidelabs/glidectl/internal/logging"
	"github.com/glidelabs/glidectl/internal/observability"
	"github.com/glidelabs/glidectl/internal/panel"
	"github.com/glidelabs/glidectl/internal/webpage"
)

func main() {
	configPath := flag.String("config", "cmd/glidectl/config.toml", "path to glidectl config.toml")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "glidectl: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	profile := logging.ConfigureRuntime()
	logger := observability.InitLogger(cfg.Name, logging.Level(profile))
	observability.RegisterMetrics()

	// One ControlState instance, shared by reference between the serving
	// task and the control task. No ambient globals.
	state := panel.NewControlState()
	bridge := panel.NewBridge(state, webpage.New(cfg.Title))
	table := bridge.Routes()

	server := httpd.NewServer(httpd.Options{
		Name:        cfg.Name,
		Addr:        cfg.Addr,
		CorsOrigins: cfg.CorsOrigins,
	}, table)

	task := control.NewTask(state, control.NewLogSurface(), cfg.ControlPeriod)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		task.Run(ctx)
	}()

	err = server.Run(ctx)

	stop()
	wg.Wait()

	if cfg.DisarmOnShutdown {
		state.Armed.Put(false)
	}
	logger.Info().Msg("glidectl_exit")
	return err
}
