package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/hugodevelopr/hugodeveloper/internal/site/config"
	"github.com/hugodevelopr/hugodeveloper/internal/site/content"
	"github.com/hugodevelopr/hugodeveloper/internal/site/export"
	"github.com/hugodevelopr/hugodeveloper/internal/site/httpserver"
	"github.com/hugodevelopr/hugodeveloper/internal/site/observability"
	"github.com/hugodevelopr/hugodeveloper/internal/site/templates/home"
	"github.com/hugodevelopr/hugodeveloper/internal/site/templates/layout"
	"github.com/hugodevelopr/hugodeveloper/public"
)

const (
	shutdownTimeout = 10 * time.Second
	devAssetsDir    = "public/static"
)

type appOptions struct {
	fs     afero.Fs
	stdout io.Writer
	// env replaces the process environment when non-nil.
	env map[string]string
	// listening is called with the bound address once the server accepts connections.
	listening func(addr string)
}

// siteRuntime is everything a command needs, resolved from configuration.
type siteRuntime struct {
	cfg      config.Config
	logger   *zap.Logger
	platform *layout.Platform
	content  home.PageData
	assets   fs.FS
}

func newApp(opts appOptions) *cli.App {
	return &cli.App{
		Name:    "site",
		Usage:   "Serve, export and check the engineering blog landing page",
		Version: version,
		Writer:  opts.stdout,
		// exit codes are decided by main
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
				Usage: "dotenv file with configuration overrides",
			},
			&cli.StringFlag{
				Name:  "site-file",
				Usage: "site identity document (defaults to the embedded site.yaml)",
			},
		},
		Commands: []*cli.Command{
			serveCmd(opts),
			exportCmd(opts),
			checkCmd(opts),
		},
	}
}

func serveCmd(opts appOptions) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP server",
		Action: func(c *cli.Context) error {
			rt, err := loadRuntime(c, opts)
			if err != nil {
				return err
			}
			defer func() { _ = rt.logger.Sync() }()

			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, rt, opts.listening)
		},
	}
}

func serve(ctx context.Context, rt siteRuntime, listening func(addr string)) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	logIssues(rt)

	server := httpserver.New(httpserver.Config{
		Address:      rt.cfg.Server.Address,
		BasePath:     rt.cfg.Server.BasePath,
		Environment:  rt.cfg.Server.Environment,
		Logger:       rt.logger,
		Platform:     rt.platform,
		Content:      rt.content,
		Assets:       rt.assets,
		Registry:     registry,
		ReadTimeout:  rt.cfg.Server.ReadTimeout,
		WriteTimeout: rt.cfg.Server.WriteTimeout,
		IdleTimeout:  rt.cfg.Server.IdleTimeout,
	})

	listener, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return fmt.Errorf("http listen: %w", err)
	}
	addr := listener.Addr().String()

	serverLogger := rt.logger.Named("http").With(zap.String("addr", addr))
	errCh := make(chan error, 1)
	go func() {
		serverLogger.Info("site listening",
			zap.String("base_path", rt.cfg.Server.BasePath),
			zap.Bool("dev", rt.cfg.Server.Dev),
		)
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	if listening != nil {
		listening(addr)
	}

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	rt.logger.Info("shutdown signal received; draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		rt.logger.Error("graceful shutdown failed", zap.Error(err))
		return err
	}
	return nil
}

func exportCmd(opts appOptions) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "render the site to static files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Value:   "build",
				Usage:   "output directory",
			},
		},
		Action: func(c *cli.Context) error {
			rt, err := loadRuntime(c, opts)
			if err != nil {
				return err
			}
			defer func() { _ = rt.logger.Sync() }()

			logIssues(rt)
			ctx := observability.WithLogger(c.Context, rt.logger.Named("export"))
			report, err := export.Run(ctx, export.Options{
				Fs:       opts.fs,
				OutDir:   c.String("out"),
				Platform: rt.platform,
				Content:  rt.content,
				Assets:   rt.assets,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "exported %d pages and %d assets to %s (%d bytes)\n",
				len(report.Pages), len(report.Assets), c.String("out"), report.Bytes)
			return nil
		},
	}
}

func checkCmd(opts appOptions) *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "validate content destinations and assets",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "exit with a non-zero status when issues are found",
			},
		},
		Action: func(c *cli.Context) error {
			rt, err := loadRuntime(c, opts)
			if err != nil {
				return err
			}
			defer func() { _ = rt.logger.Sync() }()

			issues := content.Validate(rt.content, rt.platform, rt.assets)
			fmt.Fprintf(c.App.Writer, "checked content against %d routes\n", len(rt.platform.Routes().Paths()))
			for _, issue := range issues {
				fmt.Fprintln(c.App.Writer, issue.String())
			}
			if len(issues) == 0 {
				fmt.Fprintln(c.App.Writer, "content ok")
				return nil
			}
			if c.Bool("strict") {
				return cli.Exit(fmt.Sprintf("%d content issues", len(issues)), 1)
			}
			return nil
		},
	}
}

func loadRuntime(c *cli.Context, opts appOptions) (siteRuntime, error) {
	loadOpts := []config.Option{
		config.WithFs(opts.fs),
		config.WithEnvFile(c.String("env-file")),
		config.WithSiteFile(c.String("site-file")),
	}
	if opts.env != nil {
		loadOpts = append(loadOpts, config.WithEnvMap(opts.env), config.WithoutSystemEnv())
	}
	cfg, err := config.Load(c.Context, loadOpts...)
	if err != nil {
		return siteRuntime{}, err
	}

	logger, err := observability.NewLogger(cfg.Logging.Level)
	if err != nil {
		return siteRuntime{}, fmt.Errorf("initialise logger: %w", err)
	}
	logger = logger.Named("site").With(zap.String("environment", cfg.Server.Environment))

	data, err := content.Home()
	if err != nil {
		return siteRuntime{}, err
	}

	assets, err := assetsFS(cfg, opts.fs)
	if err != nil {
		return siteRuntime{}, err
	}

	return siteRuntime{
		cfg:      cfg,
		logger:   logger,
		platform: layout.FromConfig(cfg.Site, cfg.Server.Environment),
		content:  data,
		assets:   assets,
	}, nil
}

// assetsFS serves the embedded bundle, or the working tree copy in dev mode so
// stylesheet edits show up without a rebuild.
func assetsFS(cfg config.Config, fsys afero.Fs) (fs.FS, error) {
	if cfg.Server.Dev {
		if ok, _ := afero.DirExists(fsys, devAssetsDir); ok {
			return afero.NewIOFS(afero.NewBasePathFs(fsys, devAssetsDir)), nil
		}
	}
	assets, err := public.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("embed static: %w", err)
	}
	return assets, nil
}

func logIssues(rt siteRuntime) {
	for _, issue := range content.Validate(rt.content, rt.platform, rt.assets) {
		rt.logger.Warn("content issue", zap.String("field", issue.Field), zap.String("issue", issue.Message))
	}
}
