package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/jasonwu001t/taicfg/config"
	"github.com/jasonwu001t/taicfg/internal/doctor"
	"github.com/jasonwu001t/taicfg/internal/httpserver"
	"github.com/jasonwu001t/taicfg/internal/status"
	"github.com/jasonwu001t/taicfg/pkg/logger"
)

func main() {
	app := kingpin.New("taicfg", "Settings resolution and credential checks for the TAI toolkit")
	configPath := app.Flag("config", "Path to the INI settings file").Short('c').Default("settings.ini").String()
	logLevel := app.Flag("log-level", "Log level (debug, info, warn, error)").Default("info").String()
	env := app.Flag("env", "Environment name; prod switches to JSON logs").Default("dev").String()

	getCmd := app.Command("get", "Resolve a single setting and print it.")
	getSection := getCmd.Arg("section", "Settings section").Required().String()
	getKey := getCmd.Arg("key", "Key within the section").Required().String()

	checkCmd := app.Command("check", "Verify provider credentials once.")
	checkProviders := checkCmd.Arg("providers", "Providers to check (default: all)").Strings()
	checkPing := checkCmd.Flag("ping", "Also dial each provider").Bool()
	checkTimeout := checkCmd.Flag("timeout", "Per-provider deadline").Default("10s").Duration()

	serveCmd := app.Command("serve", "Re-run checks periodically and serve their status over HTTP.")
	serveProviders := serveCmd.Arg("providers", "Providers to watch (default: all)").Strings()
	serveAddr := serveCmd.Flag("addr", "Status endpoint listen address").Default(":8390").String()
	serveInterval := serveCmd.Flag("interval", "Delay between check runs").Default("1m").Duration()
	servePing := serveCmd.Flag("ping", "Also dial each provider").Bool()
	serveTimeout := serveCmd.Flag("timeout", "Per-provider deadline").Default("10s").Duration()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	log := logger.New(*logLevel, false, *env)
	resolver := config.New(*configPath, log)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	switch command {
	case getCmd.FullCommand():
		os.Exit(runGet(os.Stdout, os.Stderr, resolver, *getSection, *getKey))

	case checkCmd.FullCommand():
		opts := doctor.Options{Ping: *checkPing, Timeout: *checkTimeout}
		os.Exit(runCheck(ctx, os.Stdout, resolver, *checkProviders, opts, log))

	case serveCmd.FullCommand():
		opts := doctor.Options{Ping: *servePing, Timeout: *serveTimeout}
		if err := runServe(ctx, resolver, *serveProviders, opts, *serveAddr, *serveInterval, log); err != nil {
			log.Error("serve failed", slog.Any("err", err))
			os.Exit(1)
		}
	}
}

// runGet prints the resolved value, or explains on stderr how to supply a
// missing one. Absence maps to exit code 1; the resolver itself never
// treats it as an error.
func runGet(out, errOut io.Writer, r *config.Resolver, section, key string) int {
	val, ok := r.Get(section, key)
	if !ok {
		fmt.Fprintf(errOut, "%s.%s is not set (export %s or add it to the settings file)\n",
			section, key, config.EnvName(section, key))
		return 1
	}

	fmt.Fprintln(out, val)
	return 0
}

func runCheck(ctx context.Context, out io.Writer, r *config.Resolver, providers []string, opts doctor.Options, log *slog.Logger) int {
	checks := doctor.Run(ctx, r, providers, opts, log)
	printChecks(out, checks)

	for _, c := range checks {
		if !c.OK {
			return 1
		}
	}
	return 0
}

func printChecks(w io.Writer, checks []doctor.Check) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PROVIDER\tSTAGE\tRESULT\tDETAIL")

	for _, c := range checks {
		result, detail := "ok", ""
		if !c.OK {
			result, detail = "fail", c.Error
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Provider, c.Stage, result, detail)
	}

	tw.Flush()
}

func runServe(
	ctx context.Context,
	r *config.Resolver,
	providers []string,
	opts doctor.Options,
	addr string,
	interval time.Duration,
	log *slog.Logger,
) error {
	collector := status.NewCollector(16, log)
	collector.Start(ctx)

	srv, err := httpserver.New(addr, setupRouter(collector))
	if err != nil {
		return err
	}

	go doctor.Watch(ctx, r, providers, opts, interval, collector.Publish, log)

	srvErrCh := make(chan error, 1)
	go func() {
		srvErrCh <- srv.Start()
	}()

	log.Info("status endpoint listening", slog.String("addr", addr))

	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
		return srv.Shutdown(context.Background())

	case err := <-srvErrCh:
		return err
	}
}
