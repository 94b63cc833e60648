package tournamentcode

import (
	"fmt"
	"reflect"
	"unicode/utf8"
)

const (
	AttrName      = "name"
	AttrPassword  = "password"
	AttrReportURL = "reportUrl"
	AttrExtraData = "extraData"
)

const (
	minNameLength     = 5
	minPasswordLength = 4

	defaultExtraDataKey = "game"
)

// GameConfig holds the lobby settings that end up base64 encoded in the code.
// Fields are exported for reading; SetConfigValue is the validated way to change them.
type GameConfig struct {
	Name      string
	Password  string
	ReportURL string

	// A map when built through NewGameConfig, a raw string when set through SetConfigValue
	ExtraData any
}

// NewGameConfig builds a config the way library callers do: an extra data value that is
// not a map gets wrapped as {"game": value}, and nil falls back to {"game": 1}.
func NewGameConfig(name, password, reportURL string, extraData any) *GameConfig {
	return &GameConfig{
		Name:      name,
		Password:  password,
		ReportURL: reportURL,
		ExtraData: wrapExtraData(extraData),
	}
}

func wrapExtraData(extraData any) any {
	if extraData == nil {
		return map[string]any{defaultExtraDataKey: 1}
	}
	// Any map type counts, not just map[string]any
	if reflect.ValueOf(extraData).Kind() == reflect.Map {
		return extraData
	}
	return map[string]any{defaultExtraDataKey: extraData}
}

func Attributes() []string {
	return []string{AttrName, AttrPassword, AttrReportURL, AttrExtraData}
}

// Value returns the current value of a settable attribute
func (c *GameConfig) Value(attr string) (any, error) {
	switch attr {
	case AttrName:
		return c.Name, nil
	case AttrPassword:
		return c.Password, nil
	case AttrReportURL:
		return c.ReportURL, nil
	case AttrExtraData:
		return c.ExtraData, nil
	}
	return nil, fmt.Errorf("%w: %q is not a game config attribute", ErrInvalidAttribute, attr)
}

// SetConfigValue is the interactive mutation path. Unlike NewGameConfig it requires extra
// data to be a string and stores it as is.
func (c *GameConfig) SetConfigValue(attr string, value any) error {
	switch attr {
	case AttrName:
		name, err := nonEmptyString(attr, value)
		if err != nil {
			return err
		}
		if utf8.RuneCountInString(name) < minNameLength {
			return fmt.Errorf("%w: name must be at least %d characters", ErrInvalidValue, minNameLength)
		}
		c.Name = name

	case AttrPassword:
		if value == nil {
			c.Password = ""
			return nil
		}
		password, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: password must be a string", ErrInvalidValue)
		}
		if password != "" && utf8.RuneCountInString(password) < minPasswordLength {
			return fmt.Errorf("%w: password must be empty or at least %d characters", ErrInvalidValue, minPasswordLength)
		}
		c.Password = password

	case AttrReportURL:
		reportURL, err := nonEmptyString(attr, value)
		if err != nil {
			return err
		}
		c.ReportURL = reportURL

	case AttrExtraData:
		extra, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: extraData must be a string", ErrInvalidValue)
		}
		c.ExtraData = extra

	default:
		return fmt.Errorf("%w: %q is not a game config attribute", ErrInvalidAttribute, attr)
	}

	return nil
}

func nonEmptyString(attr string, value any) (string, error) {
	s, ok := value.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("%w: %s must be a non-empty string", ErrInvalidValue, attr)
	}
	return s, nil
}

// Validate checks the invariants SetConfigValue enforces, for configs built any other way
func (c *GameConfig) Validate() error {
	if utf8.RuneCountInString(c.Name) < minNameLength {
		return fmt.Errorf("%w: name must be at least %d characters", ErrInvalidValue, minNameLength)
	}
	if c.Password != "" && utf8.RuneCountInString(c.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be empty or at least %d characters", ErrInvalidValue, minPasswordLength)
	}
	return nil
}
