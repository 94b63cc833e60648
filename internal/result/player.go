package result

import (
	"bytes"
	"encoding/json"
)

// PlayerRecord is one participant of a finished game. Every field is optional since
// the upstream payload is not guaranteed to carry any of them.
type PlayerRecord struct {
	Level         *int
	TeamID        *int
	SummonerName  *string
	SkinName      *string
	ProfileIconID *int
	Spell1ID      *int
	Spell2ID      *int
	IsWinner      *bool
	IsLeaver      *bool
	IsBot         *bool

	// Flattened from the statistics list, keyed by statTypeName
	Statistics map[string]float64
}

type statEntry struct {
	StatTypeName *string `json:"statTypeName"`
	Value        float64 `json:"value"`
}

type playerJSON struct {
	Level         *int        `json:"level"`
	TeamID        *int        `json:"teamId"`
	SummonerName  *string     `json:"summonerName"`
	SkinName      *string     `json:"skinName"`
	ProfileIconID *int        `json:"profileIconId"`
	Spell1ID      *int        `json:"spell1Id"`
	Spell2ID      *int        `json:"spell2Id"`
	IsWinningTeam *bool       `json:"isWinningTeam"`
	Leaver        *bool       `json:"leaver"`
	BotPlayer     *bool       `json:"botPlayer"`
	Statistics    []statEntry `json:"statistics"`
}

func (p *PlayerRecord) UnmarshalJSON(data []byte) error {
	// Roster entries may arrive as JSON encoded strings
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			return err
		}
		data = []byte(inner)
	}

	var raw playerJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = PlayerRecord{
		Level:         raw.Level,
		TeamID:        raw.TeamID,
		SummonerName:  raw.SummonerName,
		SkinName:      raw.SkinName,
		ProfileIconID: raw.ProfileIconID,
		Spell1ID:      raw.Spell1ID,
		Spell2ID:      raw.Spell2ID,
		IsWinner:      raw.IsWinningTeam,
		IsLeaver:      raw.Leaver,
		IsBot:         raw.BotPlayer,
		Statistics:    flattenStatistics(raw.Statistics),
	}
	return nil
}

// Later entries overwrite earlier ones with the same name
func flattenStatistics(entries []statEntry) map[string]float64 {
	stats := make(map[string]float64, len(entries))
	for _, e := range entries {
		if e.StatTypeName == nil {
			continue
		}
		stats[*e.StatTypeName] = e.Value
	}
	return stats
}

func (p PlayerRecord) Won() bool {
	return p.IsWinner != nil && *p.IsWinner
}
