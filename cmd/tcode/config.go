package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AdamBeresnev/lol-tournament-code/internal/tournamentcode"
	"github.com/AdamBeresnev/lol-tournament-code/internal/utils"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultReportURL = "http://example.com/report"
	defaultExtraData = "example"
)

type Config struct {
	CommandMode bool
	Verbose     bool
	ResultFile  string

	// Nil when neither flag, env nor config file provided a value
	Map        *tournamentcode.Map
	PickMode   *tournamentcode.PickMode
	TeamSize   *int
	Spectators *tournamentcode.SpectatorPolicy
	Name       *string
	Password   *string

	ReportURL string
	ExtraData string

	// Path of the tcode.yaml that was read, empty when none was found
	ConfigFile string
}

// usageError marks a command line the flag parser rejected
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("tcode", pflag.ContinueOnError)

	flags.BoolP("command", "c", false, "Use commandline mode.")
	flags.Int("team_size", 0, "The team size you want")
	flags.Int("map", 0, "The map")
	flags.Int("gm", 0, "The game mode")
	flags.String("spec", "", "Spectating rule")

	flags.String("name", "", "Game name")
	flags.String("password", "", "Game password")
	flags.String("report_url", defaultReportURL, "Reportback url")
	flags.String("extra_data", defaultExtraData, "Passback data packet")

	flags.StringP("result", "r", "", "Summarize a game result JSON file instead of creating a code")
	flags.BoolP("verbose", "v", false, "Enable debug logging")

	return flags
}

// LoadConfig resolves settings with flag > TCODE_* env > tcode.yaml > default precedence
func LoadConfig(args []string) (Config, error) {
	var config Config

	flags := newFlagSet()
	if err := flags.Parse(args); err != nil {
		return config, &usageError{err: err}
	}

	v := viper.New()
	v.SetConfigName("tcode")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/tcode")
	v.SetEnvPrefix("TCODE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.BindPFlags(flags); err != nil {
		return config, err
	}

	config.ConfigFile = v.ConfigFileUsed()
	config.CommandMode = v.GetBool("command")
	config.Verbose = v.GetBool("verbose")
	config.ResultFile = v.GetString("result")
	config.ReportURL = v.GetString("report_url")
	config.ExtraData = v.GetString("extra_data")

	if v.IsSet("map") {
		config.Map = utils.Ptr(tournamentcode.Map(v.GetInt("map")))
	}
	if v.IsSet("gm") {
		config.PickMode = utils.Ptr(tournamentcode.PickMode(v.GetInt("gm")))
	}
	if v.IsSet("team_size") {
		config.TeamSize = utils.Ptr(v.GetInt("team_size"))
	}
	if v.IsSet("spec") {
		config.Spectators = utils.Ptr(tournamentcode.SpectatorPolicy(v.GetString("spec")))
	}
	if v.IsSet("name") {
		config.Name = utils.Ptr(v.GetString("name"))
	}
	if v.IsSet("password") {
		config.Password = utils.Ptr(v.GetString("password"))
	}

	return config, nil
}

// Options only carries what was set, so Generate fills in its own defaults for the rest
func (c Config) Options() []tournamentcode.Option {
	var opts []tournamentcode.Option
	if c.Map != nil {
		opts = append(opts, tournamentcode.WithMap(*c.Map))
	}
	if c.PickMode != nil {
		opts = append(opts, tournamentcode.WithPickMode(*c.PickMode))
	}
	if c.TeamSize != nil {
		opts = append(opts, tournamentcode.WithTeamSize(*c.TeamSize))
	}
	if c.Spectators != nil {
		opts = append(opts, tournamentcode.WithSpectators(*c.Spectators))
	}
	return opts
}

// Missing values go through the setter as nil, the same as typing None in the wizard
func optionalValue(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
