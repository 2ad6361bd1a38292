package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"ttwebclient/pkg/core"
	"ttwebclient/pkg/webapi"
)

// duration lets TOML carry Go duration strings like "10s".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

type fileConfig struct {
	Server struct {
		URL     string   `toml:"url"`
		Timeout duration `toml:"timeout"`
	} `toml:"server"`

	Credentials struct {
		ID     string `toml:"id"`
		Key    string `toml:"key"`
		Secret string `toml:"secret"`
	} `toml:"credentials"`

	RateLimit struct {
		Requests int      `toml:"requests"`
		Period   duration `toml:"period"`
	} `toml:"ratelimit"`

	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

// resolveConfig merges the TOML file (when given) with command-line flags,
// flags winning. For private commands a missing secret is prompted on a TTY.
func resolveConfig(private bool) (*core.Config, error) {
	var fc fileConfig
	if flagConfig != "" {
		if _, err := toml.DecodeFile(flagConfig, &fc); err != nil {
			return nil, fmt.Errorf("load config %s: %w", flagConfig, err)
		}
	}

	baseURL := firstNonEmpty(flagURL, fc.Server.URL)
	if baseURL == "" {
		return nil, errors.New("no base URL: set --url or server.url in the config file")
	}

	cfg := core.DefaultConfig(baseURL)
	if fc.Server.Timeout.Duration > 0 {
		cfg.WithTimeout(fc.Server.Timeout.Duration)
	}
	if flagTimeout > 0 {
		cfg.WithTimeout(flagTimeout)
	}
	if fc.RateLimit.Requests > 0 {
		cfg.WithRateLimit(fc.RateLimit.Requests, fc.RateLimit.Period.Duration)
	}
	cfg.WithLogLevel(firstNonEmpty(flagLogLevel, fc.Log.Level, "warn"))

	id := firstNonEmpty(flagID, fc.Credentials.ID)
	key := firstNonEmpty(flagKey, fc.Credentials.Key)
	secret := firstNonEmpty(flagSecret, fc.Credentials.Secret)

	if private {
		if id == "" || key == "" {
			return nil, errors.New("account commands need credentials: set --id/--key or the [credentials] section")
		}
		if secret == "" {
			prompted, err := promptSecret()
			if err != nil {
				return nil, err
			}
			secret = prompted
		}
	}
	if id != "" || key != "" || secret != "" {
		cfg.WithCredentials(id, key, secret)
	}
	return cfg, nil
}

// promptSecret reads the Web API secret without echoing it.
func promptSecret() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("no secret configured and stdin is not a terminal")
	}
	fmt.Fprint(os.Stderr, "Web API secret: ")
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}
	secret := strings.TrimSpace(string(raw))
	if secret == "" {
		return "", errors.New("empty secret")
	}
	return secret, nil
}

// hasCredentials reports whether a full triple is available without
// prompting. Market data commands use it to pick the signed endpoints.
func hasCredentials() bool {
	var fc fileConfig
	if flagConfig != "" {
		if _, err := toml.DecodeFile(flagConfig, &fc); err != nil {
			return false
		}
	}
	return firstNonEmpty(flagID, fc.Credentials.ID) != "" &&
		firstNonEmpty(flagKey, fc.Credentials.Key) != "" &&
		firstNonEmpty(flagSecret, fc.Credentials.Secret) != ""
}

func newClient(private bool) (*webapi.Client, error) {
	cfg, err := resolveConfig(private)
	if err != nil {
		return nil, err
	}
	return webapi.New(cfg, webapi.WithLogger(newLogger(cfg.LogLevel)))
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(output).Level(lvl).With().Timestamp().Logger()
}

func printJSON(v any) error {
	data, err := sonic.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
