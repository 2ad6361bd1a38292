package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagURL      string
	flagID       string
	flagKey      string
	flagSecret   string
	flagTimeout  time.Duration
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "ttweb",
	Short: "Command-line client for the trading venue Web API",
	Long: `ttweb talks to a trading venue's Web API over HTTPS. Market data
commands work without credentials against the public endpoints; account and
trading commands sign every request with the HMAC credential triple from the
config file, flags, or an interactive secret prompt.

Example usage:
  ttweb ticks EURUSD --url https://marginalttdemowebapi.fxopen.net
  ttweb account --config ttweb.toml
  ttweb trade create --symbol EURUSD --side Buy --type Limit --amount 1000 --price 1.0950`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagConfig, "config", "c", "", "path to a TOML config file")
	pf.StringVar(&flagURL, "url", "", "Web API base URL (overrides config)")
	pf.StringVar(&flagID, "id", "", "Web API id (overrides config)")
	pf.StringVar(&flagKey, "key", "", "Web API key (overrides config)")
	pf.StringVar(&flagSecret, "secret", "", "Web API secret (overrides config; prompted when absent)")
	pf.DurationVar(&flagTimeout, "timeout", 0, "per-request timeout (overrides config)")
	pf.StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error (default warn)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
