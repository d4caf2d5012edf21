// Copyright (c) 2026 Coinbase Agent Authors

package subcmds

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/nightlyone/lockfile"
	"github.com/visvasity/cli"
	"github.com/visvasity/sglog"

	"coinbase-agent/coinbase"
	"coinbase-agent/ctxutil"
	"coinbase-agent/httputil"
	"coinbase-agent/server"
	"coinbase-agent/telegram"
)

type Run struct {
	ServerFlags

	restart         bool
	shutdownTimeout time.Duration

	noPprof bool

	enableTrading bool
	sandbox       bool

	secretsPath string
	dataDir     string
}

func (c *Run) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("run", flag.ContinueOnError)
	c.ServerFlags.SetFlags(fset)
	fset.BoolVar(&c.restart, "restart", false, "when true, kills any old instance")
	fset.DurationVar(&c.shutdownTimeout, "shutdown-timeout", 30*time.Second, "max timeout for shutdown when restarting")
	fset.BoolVar(&c.noPprof, "no-pprof", false, "when true net/http/pprof handler is not registered")
	fset.BoolVar(&c.enableTrading, "enable-trading", false, "when true order creation endpoints are unlocked")
	fset.BoolVar(&c.sandbox, "sandbox", false, "when true orders are simulated against an in-memory wallet")
	fset.StringVar(&c.secretsPath, "secrets-file", "", "path to credentials file")
	fset.StringVar(&c.dataDir, "data-dir", "", "path to the data directory")
	return "run", fset, cli.CmdFunc(c.run)
}

func (c *Run) Purpose() string {
	return "Runs the coinbase agent endpoint in foreground"
}

func (c *Run) CommandHelp() string {
	return `

Command "run" starts the agent's local http endpoint. Trading operations are
served as json POST apis; an AI agent (or the companion subcommands) talks to
this endpoint instead of holding exchange credentials itself.

Order creation is locked unless -enable-trading is given. With -sandbox orders
never reach the exchange; they are simulated against an in-memory wallet and
appended to a trades.csv audit file in the data directory.

SECRETS FILE

Trading operations require Coinbase API keys. Users are expected to create a
secrets file with the API keys in JSON format. An example secrets file is
given below:

    {
        "coinbase":{
            "key":"111111111",
            "secret":"2222222222"
        }
    }

An optional "telegram" section with "bot_token" and "chat_id" fields turns on
trade notifications.

`
}

func (c *Run) run(ctx context.Context, args []string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(c.dataDir) == 0 {
		c.dataDir = filepath.Join(os.Getenv("HOME"), ".coinbase-agent")
	}
	if _, err := os.Stat(c.dataDir); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("could not stat data directory %q: %w", c.dataDir, err)
		}
		if err := os.MkdirAll(c.dataDir, 0700); err != nil {
			return fmt.Errorf("could not create data directory %q: %w", c.dataDir, err)
		}
	}
	dataDir, err := filepath.Abs(c.dataDir)
	if err != nil {
		return fmt.Errorf("could not determine data-dir %q absolute path: %w", c.dataDir, err)
	}

	if len(c.secretsPath) == 0 {
		c.secretsPath = filepath.Join(dataDir, "secrets.json")
	}
	secrets, err := server.SecretsFromFile(c.secretsPath)
	if err != nil {
		return err
	}
	if err := secrets.Check(); err != nil {
		return err
	}

	if ip := net.ParseIP(c.ip); ip == nil {
		return fmt.Errorf("invalid ip address")
	}
	if c.port <= 0 {
		return fmt.Errorf("invalid port number")
	}
	addr := &net.TCPAddr{
		IP:   net.ParseIP(c.ip),
		Port: c.port,
	}

	backend := sglog.NewBackend(&sglog.Options{
		LogDirs: []string{dataDir},
	})
	slog.SetDefault(slog.New(backend.Handler()))

	log.SetFlags(log.Flags() | log.Lmicroseconds)
	log.Printf("using data directory %s and secrets file %s", dataDir, c.secretsPath)

	lockPath := filepath.Join(dataDir, "coinbase-agent.lock")
	flock, err := lockfile.New(lockPath)
	if err != nil {
		return fmt.Errorf("could not create lock file %q: %w", lockPath, err)
	}
	if err := flock.TryLock(); err != nil {
		if !c.restart {
			return fmt.Errorf("could not get lock on file %q: %w", lockPath, err)
		}
		owner, err := flock.GetOwner()
		if err != nil {
			return fmt.Errorf("could not get current owner of the lock file: %w", err)
		}
		if err := owner.Signal(os.Interrupt); err == nil {
			log.Printf("waiting for the previous instance to shutdown")
			if err := ctxutil.RetryTimeout(ctx, time.Second, c.shutdownTimeout, flock.TryLock); err != nil {
				if err := owner.Signal(os.Kill); err != nil {
					return fmt.Errorf("could not kill current owner of the lock file: %w", err)
				}
				ctxutil.Sleep(ctx, time.Millisecond)
			}
		}
		if err := flock.TryLock(); err != nil {
			return fmt.Errorf("could not get lock on file %q after killing previous instance: %w", lockPath, err)
		}
	}
	defer flock.Unlock()

	// Create the exchange client and the optional telegram notifier.
	exchange, err := coinbase.New(secrets.Coinbase, nil /* opts */)
	if err != nil {
		return fmt.Errorf("could not create coinbase client: %w", err)
	}

	var notifier *telegram.Client
	if secrets.Telegram != nil {
		notifier, err = telegram.New(secrets.Telegram)
		if err != nil {
			return fmt.Errorf("could not create telegram client: %w", err)
		}
	}

	// Start the HTTP server.
	s, err := httputil.New(nil /* opts */)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.StartTCP(ctx, addr); err != nil {
		return fmt.Errorf("could not start http server on %s: %w", addr, err)
	}

	if !c.noPprof {
		s.AddHandler("/debug/pprof/heap", pprof.Handler("heap"))
		s.AddHandler("/debug/pprof/goroutine", pprof.Handler("goroutine"))
		s.AddHandler("/debug/pprof/allocs", pprof.Handler("allocs"))
		s.AddHandler("/debug/pprof/block", pprof.Handler("block"))
		s.AddHandler("/debug/pprof/mutex", pprof.Handler("mutex"))
	}

	// Start the trading service.
	sopts := &server.Options{
		EnableTrading:  c.enableTrading,
		Sandbox:        c.sandbox,
		SandboxDataDir: dataDir,
	}
	svc, err := server.New(exchange, notifier, sopts)
	if err != nil {
		return err
	}
	if err := svc.Start(ctx); err != nil {
		return err
	}

	apiHandlers := svc.HandlerMap()
	for k, v := range apiHandlers {
		s.AddHandler(k, v)
	}
	defer func() {
		for k := range apiHandlers {
			s.RemoveHandler(k)
		}
	}()

	log.Printf("started coinbase agent endpoint at %s", addr)
	s.AddHandler("/pid", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, fmt.Sprintf("%d", os.Getpid()))
	}))

	<-ctx.Done()
	log.Printf("coinbase agent endpoint is shutting down")
	return nil
}
