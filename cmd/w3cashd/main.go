// Command w3cashd hosts one or more execution domains in a single
// process and serves the first domain's dispatcher and registry over
// gRPC.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"

	"github.com/Tora-Build/w3cash-sdk-sub001/adapter/catalog"
	"github.com/Tora-Build/w3cash-sdk-sub001/adapter/relay"
	"github.com/Tora-Build/w3cash-sdk-sub001/dispatch"
	"github.com/Tora-Build/w3cash-sdk-sub001/events"
	"github.com/Tora-Build/w3cash-sdk-sub001/grpcdispatch"
	"github.com/Tora-Build/w3cash-sdk-sub001/model"
	"github.com/Tora-Build/w3cash-sdk-sub001/progress"
	progsqlite "github.com/Tora-Build/w3cash-sdk-sub001/progress/sqlite"
	"github.com/Tora-Build/w3cash-sdk-sub001/registry"
	"github.com/Tora-Build/w3cash-sdk-sub001/substrate/memsub"

	_ "github.com/Tora-Build/w3cash-sdk-sub001/adapter/timecond"
	_ "github.com/Tora-Build/w3cash-sdk-sub001/adapter/transfer"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("w3cashd", flag.ExitOnError)
	configPath := fs.String("config", "w3cashd.toml", "config file path")
	listen := fs.String("listen", "", "listen address (overrides config)")
	listAdapters := fs.Bool("list-adapters", false, "list supported adapters and exit")
	_ = fs.Parse(args)

	if *listAdapters {
		for _, f := range catalog.List() {
			if f.Description == "" {
				fmt.Fprintln(os.Stdout, f.Name)
				continue
			}
			fmt.Fprintf(os.Stdout, "%s\t%s\n", f.Name, f.Description)
		}
		return 0
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if *listen != "" {
		cfg.Listen = *listen
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || cfg.LogLevel == "" {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	owner, err := model.ParseAddress(cfg.Owner)
	if err != nil {
		log.Error().Err(err).Msg("invalid owner address")
		return 2
	}

	var store progress.Store
	if cfg.ProgressDB != "" {
		s, err := progsqlite.Open(cfg.ProgressDB)
		if err != nil {
			log.Error().Err(err).Msg("open progress store")
			return 1
		}
		defer s.Close()
		store = s
	}

	domains, err := buildDomains(cfg, owner, store, log)
	if err != nil {
		log.Error().Err(err).Msg("wire domains")
		return 1
	}

	primary := domains[0]
	lis, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		log.Error().Err(err).Msg("listen")
		return 1
	}
	defer lis.Close()

	s := grpc.NewServer()
	srv := &grpcdispatch.Server{Proc: primary.proc, Reg: primary.reg}
	grpcdispatch.RegisterDispatchServer(s, srv)
	grpcdispatch.RegisterAdminServer(s, srv)

	log.Info().
		Str("listen", lis.Addr().String()).
		Str("domain", cfg.Domains[0].Name).
		Uint64("domain_id", cfg.Domains[0].ID).
		Msg("w3cashd listening")
	if err := s.Serve(lis); err != nil {
		log.Error().Err(err).Msg("serve")
		return 1
	}
	return 0
}

// hostedDomain is one wired execution domain.
type hostedDomain struct {
	cfg  DomainConfig
	env  *memsub.Env
	reg  *registry.Registry
	proc *dispatch.Processor
}

// buildDomains constructs environments, registries, and processors for
// every configured domain, instantiates adapters, seeds registry
// entries, and wires loopback relays between domains.
func buildDomains(cfg *Config, owner model.Address, store progress.Store, log zerolog.Logger) ([]*hostedDomain, error) {
	sink := events.ZerologSink{Log: log}

	domains := make([]*hostedDomain, 0, len(cfg.Domains))
	for i, dc := range cfg.Domains {
		dispatcher, err := model.ParseAddress(dc.Dispatcher)
		if err != nil {
			return nil, fmt.Errorf("domain %q: dispatcher: %w", dc.Name, err)
		}
		env := memsub.New(dc.ID)
		reg, err := registry.New(owner, sink)
		if err != nil {
			return nil, fmt.Errorf("domain %q: %w", dc.Name, err)
		}
		opts := dispatch.Options{
			Self:        dispatcher,
			Registry:    reg,
			Environment: env,
			Sink:        sink,
		}
		if i == 0 {
			opts.Progress = store
		}
		proc, err := dispatch.New(opts)
		if err != nil {
			return nil, fmt.Errorf("domain %q: %w", dc.Name, err)
		}
		domains = append(domains, &hostedDomain{cfg: dc, env: env, reg: reg, proc: proc})
	}

	// Every registry learns every hosted domain index.
	for _, d := range domains {
		for _, o := range domains {
			if err := d.reg.SetDomain(owner, o.cfg.Index, o.cfg.ID); err != nil {
				return nil, fmt.Errorf("domain %q: set domain %d: %w", d.cfg.Name, o.cfg.Index, err)
			}
		}
	}

	for _, d := range domains {
		for _, ac := range d.cfg.Adapters {
			loc, err := model.ParseAddress(ac.Location)
			if err != nil {
				return nil, fmt.Errorf("domain %q: adapter %q: %w", d.cfg.Name, ac.Name, err)
			}
			prov, err := catalog.Open(ac.Name, catalog.Config{
				Dispatcher: d.proc.Self(),
				Ledger:     d.env,
				Now:        d.env.Now,
				Params:     ac.Params,
			})
			if err != nil {
				return nil, fmt.Errorf("domain %q: %w", d.cfg.Name, err)
			}
			d.env.Bind(loc, prov)
			if ac.Register != nil {
				if err := d.reg.SetProvider(owner, *ac.Register, loc); err != nil {
					return nil, fmt.Errorf("domain %q: register adapter %q: %w", d.cfg.Name, ac.Name, err)
				}
			}
			log.Info().Str("domain", d.cfg.Name).Str("adapter", ac.Name).Str("location", loc.String()).Msg("adapter bound")
		}
	}

	// Loopback relays and inbound allowlists.
	for _, d := range domains {
		if d.cfg.Relay == nil {
			continue
		}
		loc, err := model.ParseAddress(d.cfg.Relay.Location)
		if err != nil {
			return nil, fmt.Errorf("domain %q: relay: %w", d.cfg.Name, err)
		}
		endpoint := dispatch.EndpointHash(d.cfg.Name)
		routes := make(map[uint8]relay.Route)
		for _, o := range domains {
			if o == d {
				continue
			}
			routes[o.cfg.Index] = relay.Route{
				Target:   o.proc,
				Endpoint: endpoint,
				BaseFee:  d.cfg.Relay.BaseFee,
				PerGas:   d.cfg.Relay.PerGas,
			}
			if err := o.proc.SetAuthorizedEndpoint(owner, endpoint, true); err != nil {
				return nil, fmt.Errorf("domain %q: allowlist %q: %w", o.cfg.Name, d.cfg.Name, err)
			}
		}
		d.env.Bind(loc, relay.New(d.proc.Self(), routes))
		if err := d.reg.SetProvider(owner, d.cfg.Relay.Register, loc); err != nil {
			return nil, fmt.Errorf("domain %q: register relay: %w", d.cfg.Name, err)
		}
		log.Info().Str("domain", d.cfg.Name).Str("location", loc.String()).Msg("relay bound")
	}

	return domains, nil
}
