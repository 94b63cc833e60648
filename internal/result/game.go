package result

import (
	"encoding/json"

	"github.com/AdamBeresnev/lol-tournament-code/internal/utils"
)

type TeamID int

const (
	TeamBlue   TeamID = 100
	TeamPurple TeamID = 200
)

const passbackKey = "passbackDataPacket"

// GameResult is the post game report sent to a tournament code's report URL
type GameResult struct {
	Version    *int
	Metadata   map[string]any
	GameID     *int64
	GameLength *int
	GameType   *string
	GameMode   *string
	Ranked     *bool

	// Nil when no player on either roster is flagged as a winner
	WinningTeamID *TeamID

	Blue   []PlayerRecord
	Purple []PlayerRecord
}

type gameJSON struct {
	Version      *int           `json:"version"`
	Metadata     map[string]any `json:"tournamentMetaData"`
	GameID       *int64         `json:"gameId"`
	GameLength   *int           `json:"gameLength"`
	GameType     *string        `json:"gameType"`
	GameMode     *string        `json:"gameMode"`
	Ranked       *bool          `json:"ranked"`
	TeamPlayers  []PlayerRecord `json:"teamPlayerParticipantsSummaries"`
	OtherPlayers []PlayerRecord `json:"otherTeamPlayerParticipantsSummaries"`
}

func (g *GameResult) UnmarshalJSON(data []byte) error {
	var raw gameJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if packet, ok := raw.Metadata[passbackKey]; ok {
		raw.Metadata[passbackKey] = decodeNested(packet)
	}

	*g = GameResult{
		Version:    raw.Version,
		Metadata:   raw.Metadata,
		GameID:     raw.GameID,
		GameLength: raw.GameLength,
		GameType:   raw.GameType,
		GameMode:   raw.GameMode,
		Ranked:     raw.Ranked,
		Blue:       make([]PlayerRecord, 0, len(raw.TeamPlayers)),
		Purple:     make([]PlayerRecord, 0, len(raw.OtherPlayers)),
	}

	// Blue goes first so a winner on purple overrides one on blue
	for _, player := range raw.TeamPlayers {
		if player.Won() {
			g.WinningTeamID = utils.Ptr(TeamBlue)
		}
		g.Blue = append(g.Blue, player)
	}
	for _, player := range raw.OtherPlayers {
		if player.Won() {
			g.WinningTeamID = utils.Ptr(TeamPurple)
		}
		g.Purple = append(g.Purple, player)
	}

	return nil
}

// Team returns the roster for the given side, nil for an unknown team id
func (g *GameResult) Team(id TeamID) []PlayerRecord {
	switch id {
	case TeamBlue:
		return g.Blue
	case TeamPurple:
		return g.Purple
	}
	return nil
}
