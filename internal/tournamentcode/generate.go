package tournamentcode

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
)

const codeTemplate = "pvpnet://lol/customgame/joinorcreate/map%d/pick%d/team%d/spec%s/%s"

// Request is the set of lobby rules encoded next to the game config
type Request struct {
	Map        Map
	PickMode   PickMode
	TeamSize   int
	Spectators SpectatorPolicy
}

type Option func(*Request)

func WithMap(m Map) Option {
	return func(r *Request) { r.Map = m }
}

func WithPickMode(p PickMode) Option {
	return func(r *Request) { r.PickMode = p }
}

func WithTeamSize(size int) Option {
	return func(r *Request) { r.TeamSize = size }
}

func WithSpectators(s SpectatorPolicy) Option {
	return func(r *Request) { r.Spectators = s }
}

func DefaultRequest() Request {
	return Request{
		Map:        SummonersRift,
		PickMode:   BlindPick,
		TeamSize:   MaxTeamSize,
		Spectators: SpectatorAll,
	}
}

// Validate returns the first violated rule, checked in map, pick mode, spectators, team size order
func (r Request) Validate() error {
	if !r.Map.Valid() {
		return fmt.Errorf("%w: map %d is not a known map", ErrInvalidRequest, r.Map)
	}
	if !r.PickMode.Valid() {
		return fmt.Errorf("%w: pick mode %d is not a known pick mode", ErrInvalidRequest, r.PickMode)
	}
	if !r.Spectators.Valid() {
		return fmt.Errorf("%w: spectator policy %q is not a known policy", ErrInvalidRequest, string(r.Spectators))
	}
	if r.TeamSize < MinTeamSize || r.TeamSize > MaxTeamSize {
		return fmt.Errorf("%w: team size must be between %d and %d, got %d", ErrInvalidRequest, MinTeamSize, MaxTeamSize, r.TeamSize)
	}
	if r.TeamSize > r.Map.MaxTeamSize() {
		return fmt.Errorf("%w: team size on %s can be at most %d", ErrInvalidRequest, r.Map, r.Map.MaxTeamSize())
	}
	return nil
}

// Wire format of the last path segment, before base64
type codePayload struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Report   string `json:"report"`
	Extra    string `json:"extra"`
}

// Generate validates the request built from opts and returns the tournament code URL.
// Options that are not given keep the DefaultRequest values.
func Generate(config *GameConfig, opts ...Option) (string, error) {
	if config == nil {
		return "", fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	req := DefaultRequest()
	for _, opt := range opts {
		opt(&req)
	}

	if err := req.Validate(); err != nil {
		return "", err
	}

	encoded, err := encodeConfig(config)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(codeTemplate, req.Map, req.PickMode, req.TeamSize, req.Spectators, encoded), nil
}

func encodeConfig(config *GameConfig) (string, error) {
	extra, err := marshalJSON(config.ExtraData)
	if err != nil {
		return "", fmt.Errorf("%w: extra data is not JSON serializable: %w", ErrInvalidConfig, err)
	}

	raw, err := marshalJSON(codePayload{
		Name:     config.Name,
		Password: config.Password,
		Report:   config.ReportURL,
		Extra:    string(extra),
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode game config: %w", err)
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}

// Same as json.Marshal but leaves &, < and > alone so report URLs keep their query strings readable
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
