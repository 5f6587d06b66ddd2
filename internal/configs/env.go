package configs

import (
	"flag"
	"github.com/caarlos0/env/v6"
	"github.com/pkg/errors"
	"go-link-shortener/internal/app/registry"
	"net"
	"os"
	"time"
)

type Config struct {
	ServerAddress   string        `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	BaseURL         string        `env:"BASE_URL" envDefault:"http://localhost:8080"`
	TrustedSubnet   string        `env:"TRUSTED_SUBNET"`
	CollisionPolicy string        `env:"COLLISION_POLICY" envDefault:"overwrite"`
	RegistryShards  int           `env:"REGISTRY_SHARDS" envDefault:"32"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// ReadConfig reads the environment and then the command line flags.
func ReadConfig() (*Config, error) {
	return readConfig(os.Args[1:])
}

func readConfig(args []string) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}

	fs := flag.NewFlagSet("shortener", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerAddress, "a", cfg.ServerAddress, "server address")
	fs.StringVar(&cfg.BaseURL, "b", cfg.BaseURL, "base url of short links")
	fs.StringVar(&cfg.TrustedSubnet, "t", cfg.TrustedSubnet, "trusted subnet for internal stats")
	fs.StringVar(&cfg.CollisionPolicy, "p", cfg.CollisionPolicy, "key collision policy: overwrite or retry")
	fs.IntVar(&cfg.RegistryShards, "n", cfg.RegistryShards, "registry lock stripes")
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "parse flags")
	}

	if _, ok := registry.ParsePolicy(cfg.CollisionPolicy); !ok {
		return nil, errors.Errorf("unknown collision policy %q", cfg.CollisionPolicy)
	}
	if cfg.RegistryShards < 1 || cfg.RegistryShards > registry.MaxShards {
		return nil, errors.Errorf("registry shards must be in [1, %d], got %d", registry.MaxShards, cfg.RegistryShards)
	}
	if _, err := cfg.Network(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Network returns the trusted subnet, nil when none is configured.
func (c *Config) Network() (*net.IPNet, error) {
	if c.TrustedSubnet == "" {
		return nil, nil
	}
	_, network, err := net.ParseCIDR(c.TrustedSubnet)
	if err != nil {
		return nil, errors.Wrapf(err, "parse trusted subnet %q", c.TrustedSubnet)
	}
	return network, nil
}

// Policy returns the configured collision policy.
func (c *Config) Policy() registry.Policy {
	p, _ := registry.ParsePolicy(c.CollisionPolicy)
	return p
}
