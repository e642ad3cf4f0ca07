/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	storeMemory = "memory"
	storeSQLite = "sqlite"
)

type Config struct {
	bind          string
	database      string
	playerTimeout time.Duration
	port          int
	prefix        string
	profile       bool
	store         string
	tlsCert       string
	tlsKey        string
	verbose       bool
	version       bool
	wordCount     int
	words         string
}

func (c *Config) validate() error {
	if (c.tlsCert == "") != (c.tlsKey == "") {
		return errors.New("both --tls-cert and --tls-key must be provided together")
	}
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.playerTimeout <= 0 {
		return fmt.Errorf("invalid player timeout (must be positive): %s", c.playerTimeout)
	}
	if c.wordCount < 1 {
		return fmt.Errorf("invalid word count (must be at least 1): %d", c.wordCount)
	}
	switch c.store {
	case storeMemory:
	case storeSQLite:
		if c.database == "" {
			return errors.New("--database must be set when --store=sqlite")
		}
	default:
		return fmt.Errorf("invalid store (must be %q or %q): %q", storeMemory, storeSQLite, c.store)
	}
	return nil
}

func (c *Config) scheme() string {
	if c.tlsCert != "" && c.tlsKey != "" {
		return "https"
	}
	return "http"
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("SPELLINGBEE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "spellingbee",
		Short:         "A multiplayer spelling game, taking turns over websockets.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return ServePage(cmd.Context(), cfg, args)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: SPELLINGBEE_BIND)")
	fs.StringVar(&cfg.database, "database", "spellingbee.db", "path to sqlite database, used with --store=sqlite (env: SPELLINGBEE_DATABASE)")
	fs.DurationVar(&cfg.playerTimeout, "player-timeout", 10*time.Minute, "time before silent connections are dropped (env: SPELLINGBEE_PLAYER_TIMEOUT)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: SPELLINGBEE_PORT)")
	fs.StringVar(&cfg.prefix, "prefix", "", "path to prepend to all URLs, for use behind reverse proxy (env: SPELLINGBEE_PREFIX)")
	fs.BoolVar(&cfg.profile, "profile", false, "register net/http/pprof handlers (env: SPELLINGBEE_PROFILE)")
	fs.StringVar(&cfg.store, "store", storeMemory, "session store backend, memory or sqlite (env: SPELLINGBEE_STORE)")
	fs.StringVar(&cfg.tlsCert, "tls-cert", "", "path to tls certificate (env: SPELLINGBEE_TLS_CERT)")
	fs.StringVar(&cfg.tlsKey, "tls-key", "", "path to tls keyfile (env: SPELLINGBEE_TLS_KEY)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: SPELLINGBEE_VERBOSE)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: SPELLINGBEE_VERSION)")
	fs.IntVar(&cfg.wordCount, "word-count", 100, "number of words dealt to each new room (env: SPELLINGBEE_WORD_COUNT)")
	fs.StringVar(&cfg.words, "words", "", "newline-delimited word list to use instead of the built-in one (env: SPELLINGBEE_WORDS)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("spellingbee v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
