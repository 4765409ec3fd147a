package doctor

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jasonwu001t/taicfg/config"
	"github.com/jasonwu001t/taicfg/internal/creds"
)

// Stage names how far a check got before stopping.
type Stage string

const (
	StageCredentials Stage = "credentials"
	StageValidate    Stage = "validate"
	StagePing        Stage = "ping"
)

// Check is the outcome of one provider check.
type Check struct {
	Provider  string        `json:"provider"`
	Stage     Stage         `json:"stage"`
	OK        bool          `json:"ok"`
	Error     string        `json:"error,omitempty"`
	Duration  time.Duration `json:"duration"`
	CheckedAt time.Time     `json:"checked_at"`
}

// Options controls a run.
type Options struct {
	// Ping dials each provider after validation. Without it a check stops
	// at the validate stage, which needs no network access.
	Ping bool
	// Timeout bounds each individual provider check, not the whole run.
	// Zero means no deadline beyond the caller's context.
	Timeout time.Duration
}

type probeFn func(ctx context.Context, r *config.Resolver, ping bool) Check

// probe builds the uniform three-stage check for one provider. dial is
// expected to construct the client, verify connectivity, and release any
// resources before returning.
func probe[T creds.Credentials](name string, load func(*config.Resolver) (T, error), dial func(context.Context, T) error) probeFn {
	return func(ctx context.Context, r *config.Resolver, ping bool) Check {
		c := Check{Provider: name, Stage: StageCredentials}

		cfg, err := load(r)
		if err != nil {
			c.Error = err.Error()
			return c
		}

		c.Stage = StageValidate
		if err := cfg.Validate(); err != nil {
			c.Error = err.Error()
			return c
		}

		if !ping {
			c.OK = true
			return c
		}

		c.Stage = StagePing
		if err := dial(ctx, cfg); err != nil {
			c.Error = err.Error()
			return c
		}

		c.OK = true
		return c
	}
}

var registry = map[string]probeFn{
	"mysql":    probe("mysql", creds.LoadMySQL, dialMySQL),
	"redshift": probe("redshift", creds.LoadRedshift, dialRedshift),
	"dynamodb": probe("dynamodb", creds.LoadAWS, dialDynamoDB),
	"openai":   probe("openai", creds.LoadOpenAI, dialOpenAI),
	"alpaca":   probe("alpaca", creds.LoadAlpaca, dialAlpaca),
	"ib":       probe("ib", creds.LoadIB, dialIB),
	"bls":      probe("bls", creds.LoadBLS, dialBLS),
}

// Providers lists every known provider name in sorted order.
func Providers() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run checks the named providers concurrently and returns their results
// sorted by provider name. An empty providers slice means all of them.
// Unknown names produce a failed check rather than an error, so a typo in
// one name does not hide results for the rest.
func Run(ctx context.Context, r *config.Resolver, providers []string, opts Options, log *slog.Logger) []Check {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(slog.String("run_id", uuid.NewString()))

	if len(providers) == 0 {
		providers = Providers()
	}

	results := make(chan Check, len(providers))
	var wg sync.WaitGroup

	for _, name := range providers {
		fn, ok := registry[name]
		if !ok {
			results <- Check{
				Provider:  name,
				Stage:     StageCredentials,
				Error:     "unknown provider",
				CheckedAt: time.Now(),
			}
			continue
		}

		wg.Add(1)
		go func(name string, fn probeFn) {
			defer wg.Done()
			results <- runOne(ctx, name, fn, r, opts, log)
		}(name, fn)
	}

	wg.Wait()
	close(results)

	checks := make([]Check, 0, len(providers))
	for c := range results {
		checks = append(checks, c)
	}
	sort.Slice(checks, func(i, j int) bool { return checks[i].Provider < checks[j].Provider })

	return checks
}

func runOne(ctx context.Context, name string, fn probeFn, r *config.Resolver, opts Options, log *slog.Logger) Check {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	c := fn(ctx, r, opts.Ping)
	c.Duration = time.Since(start)
	c.CheckedAt = time.Now()

	if c.OK {
		log.Info("check passed",
			slog.String("provider", name),
			slog.String("stage", string(c.Stage)),
			slog.Duration("duration", c.Duration))
	} else {
		log.Warn("check failed",
			slog.String("provider", name),
			slog.String("stage", string(c.Stage)),
			slog.String("error", c.Error))
	}

	return c
}

// Watch re-runs the checks on a fixed interval until the context ends,
// handing each batch to publish. The first run happens immediately.
func Watch(
	ctx context.Context,
	r *config.Resolver,
	providers []string,
	opts Options,
	interval time.Duration,
	publish func([]Check),
	log *slog.Logger,
) {
	if log == nil {
		log = slog.Default()
	}

	publish(Run(ctx, r, providers, opts, log))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("credential watch stopped")
			return

		case <-ticker.C:
			publish(Run(ctx, r, providers, opts, log))
		}
	}
}
