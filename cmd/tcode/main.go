package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AdamBeresnev/lol-tournament-code/internal/logging"
	"github.com/AdamBeresnev/lol-tournament-code/internal/result"
	"github.com/AdamBeresnev/lol-tournament-code/internal/tournamentcode"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const (
	exitOK         = 0
	exitUnexpected = 1
	exitValidation = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	// .env has to be in the environment before viper reads TCODE_* vars
	envErr := godotenv.Load()

	config, err := LoadConfig(args)
	if err != nil {
		var usageErr *usageError
		switch {
		case errors.Is(err, pflag.ErrHelp):
			return exitOK
		case errors.As(err, &usageErr):
			// pflag has already written the flag list to stderr
			fmt.Fprintf(stdout, "Usage ERROR: %s\n", err)
			return exitValidation
		default:
			return reportError(stdout, err)
		}
	}

	logging.Bootstrap(config.Verbose)
	defer logging.Sync()

	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		logging.Warn("Failed to load .env file", zap.Error(envErr))
	}
	if config.ConfigFile != "" {
		logging.Info("Loaded config file", zap.String("path", config.ConfigFile))
	}

	switch {
	case config.ResultFile != "":
		return runResult(config.ResultFile, stdout)
	case config.CommandMode:
		return runCommand(config, stdout)
	default:
		return newWizard(stdin, stdout).Run()
	}
}

func runCommand(config Config, stdout io.Writer) int {
	gameConfig := tournamentcode.NewGameConfig(defaultLobbyName(), "", "", nil)

	values := []struct {
		attr  string
		value any
	}{
		{tournamentcode.AttrName, optionalValue(config.Name)},
		{tournamentcode.AttrPassword, optionalValue(config.Password)},
		{tournamentcode.AttrReportURL, config.ReportURL},
		{tournamentcode.AttrExtraData, config.ExtraData},
	}

	for _, v := range values {
		if err := gameConfig.SetConfigValue(v.attr, v.value); err != nil {
			return reportError(stdout, err)
		}
	}

	code, err := tournamentcode.Generate(gameConfig, config.Options()...)
	if err != nil {
		return reportError(stdout, err)
	}

	logging.Debug("Generated tournament code", zap.String("name", gameConfig.Name))
	fmt.Fprintln(stdout, code)
	return exitOK
}

func runResult(path string, stdout io.Writer) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return reportError(stdout, fmt.Errorf("failed to read result file: %w", err))
	}

	game, err := result.ParseGameResult(data)
	if err != nil {
		return reportError(stdout, err)
	}

	logging.Debug("Parsed game result",
		zap.String("file", path),
		zap.Int("blue", len(game.Blue)),
		zap.Int("purple", len(game.Purple)),
	)
	printGameResult(stdout, game)
	return exitOK
}

// reportError prints err for the user and picks the exit code for it
func reportError(stdout io.Writer, err error) int {
	if isKnownError(err) {
		logging.Debug("Validation failed", zap.Error(err))
		fmt.Fprintf(stdout, "TournamentCode ERROR: %s\n", err)
		return exitValidation
	}

	logging.Error("Unexpected failure", zap.Error(err))
	fmt.Fprintf(stdout, "General ERROR: %s\n", err)
	return exitUnexpected
}

func isKnownError(err error) bool {
	return tournamentcode.IsValidationError(err) ||
		errors.Is(err, result.ErrMalformedInput) ||
		errors.Is(err, result.ErrUnsupportedInputType)
}

// Long enough to pass the name check, unique enough not to collide with another lobby
func defaultLobbyName() string {
	return "lobby-" + uuid.NewString()[:8]
}
