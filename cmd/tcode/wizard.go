package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/AdamBeresnev/lol-tournament-code/internal/logging"
	"github.com/AdamBeresnev/lol-tournament-code/internal/tournamentcode"
	"go.uber.org/zap"
)

const (
	heavyRule = "========================================"
	lightRule = "----------------------------------------"

	noneInput = "None"
)

var errInputClosed = errors.New("input closed")

type menuOption struct {
	Key   string
	Label string
}

// Wizard walks the user through building a tournament code one prompt at a time
type Wizard struct {
	in  *bufio.Scanner
	out io.Writer
}

func newWizard(in io.Reader, out io.Writer) *Wizard {
	return &Wizard{in: bufio.NewScanner(in), out: out}
}

func (w *Wizard) Run() int {
	code, err := w.run()
	if err != nil {
		if errors.Is(err, errInputClosed) {
			logging.Debug("Wizard aborted, input closed")
			fmt.Fprintln(w.out)
			fmt.Fprintln(w.out, "Aborted.")
			return exitUnexpected
		}
		return reportError(w.out, err)
	}
	return code
}

func (w *Wizard) run() (int, error) {
	fmt.Fprintln(w.out, "TournamentCode Creator Tool")
	fmt.Fprintln(w.out, heavyRule)
	fmt.Fprintln(w.out)

	fmt.Fprintln(w.out, "Doing configuration (Note: Enter None to set an empty value, when pressing enter we use the default)")
	fmt.Fprintln(w.out, lightRule)

	config := tournamentcode.NewGameConfig(defaultLobbyName(), "", "", nil)
	if err := w.configure(config, tournamentcode.Attributes()); err != nil {
		return exitUnexpected, err
	}

	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, "Game configuration Done")
	fmt.Fprintln(w.out)

	mapKey, err := w.menuQuestion("Select Map", mapOptions(), true)
	if err != nil {
		return exitUnexpected, err
	}
	selectedMap := tournamentcode.Map(mustAtoi(mapKey))

	pickKey, err := w.menuQuestion("Select Game Mode", pickModeOptions(), true)
	if err != nil {
		return exitUnexpected, err
	}
	pickMode := tournamentcode.PickMode(mustAtoi(pickKey))

	specKey, err := w.menuQuestion("Spectating", spectatorOptions(), false)
	if err != nil {
		return exitUnexpected, err
	}
	spectators := tournamentcode.SpectatorPolicy(specKey)

	sizeKey, err := w.menuQuestion("Team size", teamSizeOptions(selectedMap), true)
	if err != nil {
		return exitUnexpected, err
	}
	teamSize := mustAtoi(sizeKey)

	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, "Game info: ")
	fmt.Fprintln(w.out, lightRule)
	fmt.Fprintf(w.out, "Name:          %s\n", config.Name)
	fmt.Fprintf(w.out, "Password:      %s\n", config.Password)
	fmt.Fprintf(w.out, "Report url:    %s\n", config.ReportURL)
	fmt.Fprintf(w.out, "Extra data:    %s\n", jsonValue(config.ExtraData))
	fmt.Fprintln(w.out)
	fmt.Fprintf(w.out, "Map:           %s\n", selectedMap)
	fmt.Fprintf(w.out, "Game Mode:     %s\n", pickMode)
	fmt.Fprintf(w.out, "Spectators:    %s\n", spectators.Label())
	fmt.Fprintf(w.out, "Team size:     %d\n", teamSize)
	fmt.Fprintln(w.out)

	code, err := tournamentcode.Generate(config,
		tournamentcode.WithMap(selectedMap),
		tournamentcode.WithPickMode(pickMode),
		tournamentcode.WithSpectators(spectators),
		tournamentcode.WithTeamSize(teamSize),
	)
	if err != nil {
		return exitUnexpected, err
	}

	fmt.Fprintln(w.out, "TournamentCode: ")
	fmt.Fprintln(w.out, lightRule)
	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, code)
	fmt.Fprintln(w.out)

	return exitOK, nil
}

// configure prompts for each attribute until the setter accepts the value or the user keeps the current one
func (w *Wizard) configure(config *tournamentcode.GameConfig, attrs []string) error {
	for _, attr := range attrs {
		for {
			current, err := config.Value(attr)
			if err != nil {
				return err
			}

			input, err := w.readLine(fmt.Sprintf("Enter game %s [%s]: ", attr, displayValue(current)))
			if err != nil {
				return err
			}
			if input == "" {
				break
			}

			var value any = input
			if input == noneInput {
				value = nil
			}

			if err := config.SetConfigValue(attr, value); err != nil {
				logging.Debug("Rejected config value", zap.String("attr", attr), zap.Error(err))
				fmt.Fprintf(w.out, "ERROR: %s\n", err)
				continue
			}
			break
		}
	}
	return nil
}

// menuQuestion lists the options and returns the key of the one picked
func (w *Wizard) menuQuestion(label string, options []menuOption, numeric bool) (string, error) {
	fmt.Fprintln(w.out, label)
	fmt.Fprintln(w.out, lightRule)
	for _, opt := range options {
		fmt.Fprintf(w.out, "    %s - %s\n", opt.Key, opt.Label)
	}
	fmt.Fprintln(w.out, lightRule)
	fmt.Fprintln(w.out)

	for {
		input, err := w.readLine(">>> ")
		if err != nil {
			return "", err
		}

		key := input
		if numeric {
			if n, err := strconv.Atoi(strings.TrimSpace(input)); err == nil {
				key = strconv.Itoa(n)
			}
		}

		idx := slices.IndexFunc(options, func(opt menuOption) bool { return opt.Key == key })
		if idx != -1 {
			fmt.Fprintf(w.out, "Selected %s\n", options[idx].Label)
			fmt.Fprintln(w.out)
			return options[idx].Key, nil
		}

		fmt.Fprintln(w.out, "Try again...")
	}
}

func (w *Wizard) readLine(prompt string) (string, error) {
	fmt.Fprint(w.out, prompt)
	if !w.in.Scan() {
		if err := w.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimRight(w.in.Text(), "\r"), nil
}

func mapOptions() []menuOption {
	var options []menuOption
	for _, m := range tournamentcode.Maps() {
		options = append(options, menuOption{Key: strconv.Itoa(int(m)), Label: m.String()})
	}
	return options
}

func pickModeOptions() []menuOption {
	var options []menuOption
	for _, p := range tournamentcode.PickModes() {
		options = append(options, menuOption{Key: strconv.Itoa(int(p)), Label: p.String()})
	}
	return options
}

func spectatorOptions() []menuOption {
	var options []menuOption
	for _, s := range tournamentcode.SpectatorPolicies() {
		options = append(options, menuOption{Key: string(s), Label: s.Label()})
	}
	slices.SortFunc(options, func(a, b menuOption) int { return strings.Compare(a.Key, b.Key) })
	return options
}

func teamSizeOptions(m tournamentcode.Map) []menuOption {
	var options []menuOption
	for size := tournamentcode.MinTeamSize; size <= m.MaxTeamSize(); size++ {
		options = append(options, menuOption{Key: strconv.Itoa(size), Label: strconv.Itoa(size)})
	}
	return options
}

// Keys come from the option tables built above, so they always parse
func mustAtoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		panic(fmt.Sprintf("menu key %q is not a number", s))
	}
	return n
}

func displayValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return jsonValue(v)
}

func jsonValue(v any) string {
	encoded, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(encoded)
}
