package tournamentcode

type Map int

const (
	SummonersRift   Map = 1
	TwistedTreeline Map = 4
	ProvingGrounds  Map = 7
	CrystalScar     Map = 8
)

type PickMode int

const (
	BlindPick       PickMode = 1
	DraftMode       PickMode = 2
	AllRandom       PickMode = 4
	TournamentDraft PickMode = 6
)

type SpectatorPolicy string

const (
	SpectatorNone      SpectatorPolicy = "NONE"
	SpectatorAll       SpectatorPolicy = "ALL"
	SpectatorLobbyOnly SpectatorPolicy = "LOBBYONLY"
	SpectatorFriends   SpectatorPolicy = "DROPINONLY"
)

const (
	MinTeamSize = 1
	MaxTeamSize = 5

	// Twisted Treeline is a 3v3 map
	MaxTwistedTreelineTeamSize = 3
)

// Display labels live apart from the constants so validation never depends on them
var mapLabels = map[Map]string{
	SummonersRift:   "Summoners Rift",
	TwistedTreeline: "Twisted Treeline",
	ProvingGrounds:  "Proving Grounds",
	CrystalScar:     "Crystal Scar",
}

var pickModeLabels = map[PickMode]string{
	BlindPick:       "Blind Pick",
	DraftMode:       "Draft Mode",
	AllRandom:       "All Random",
	TournamentDraft: "Tournament Draft",
}

var spectatorLabels = map[SpectatorPolicy]string{
	SpectatorNone:      "No spectators",
	SpectatorAll:       "All",
	SpectatorLobbyOnly: "Lobby only",
	SpectatorFriends:   "Friends only",
}

func Maps() []Map {
	return []Map{SummonersRift, TwistedTreeline, ProvingGrounds, CrystalScar}
}

func PickModes() []PickMode {
	return []PickMode{BlindPick, DraftMode, AllRandom, TournamentDraft}
}

func SpectatorPolicies() []SpectatorPolicy {
	return []SpectatorPolicy{SpectatorNone, SpectatorAll, SpectatorLobbyOnly, SpectatorFriends}
}

func (m Map) Valid() bool {
	switch m {
	case SummonersRift, TwistedTreeline, ProvingGrounds, CrystalScar:
		return true
	}
	return false
}

func (m Map) String() string {
	if label, ok := mapLabels[m]; ok {
		return label
	}
	return "Unknown map"
}

// MaxTeamSize returns the largest team size the map allows
func (m Map) MaxTeamSize() int {
	if m == TwistedTreeline {
		return MaxTwistedTreelineTeamSize
	}
	return MaxTeamSize
}

func (p PickMode) Valid() bool {
	switch p {
	case BlindPick, DraftMode, AllRandom, TournamentDraft:
		return true
	}
	return false
}

func (p PickMode) String() string {
	if label, ok := pickModeLabels[p]; ok {
		return label
	}
	return "Unknown pick mode"
}

func (s SpectatorPolicy) Valid() bool {
	switch s {
	case SpectatorNone, SpectatorAll, SpectatorLobbyOnly, SpectatorFriends:
		return true
	}
	return false
}

// Label is the human readable name, String stays the literal wire value
func (s SpectatorPolicy) Label() string {
	if label, ok := spectatorLabels[s]; ok {
		return label
	}
	return "Unknown spectator policy"
}
