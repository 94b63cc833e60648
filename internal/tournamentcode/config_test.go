package tournamentcode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameConfigWrapsExtraData(t *testing.T) {
	testCases := []struct {
		name      string
		extraData any
		expected  any
	}{
		{
			name:      "Map is kept",
			extraData: map[string]any{"round": 1},
			expected:  map[string]any{"round": 1},
		},
		{
			name:      "String keyed typed map is kept",
			extraData: map[string]string{"round": "2"},
			expected:  map[string]string{"round": "2"},
		},
		{
			name:      "Int valued typed map is kept",
			extraData: map[string]int{"round": 2},
			expected:  map[string]int{"round": 2},
		},
		{
			name:      "Nil defaults to game 1",
			extraData: nil,
			expected:  map[string]any{"game": 1},
		},
		{
			name:      "String is wrapped",
			extraData: "example",
			expected:  map[string]any{"game": "example"},
		},
		{
			name:      "Number is wrapped",
			extraData: 42,
			expected:  map[string]any{"game": 42},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := NewGameConfig("Test Lobby", "", "", tc.extraData)
			assert.Equal(t, tc.expected, config.ExtraData)
		})
	}
}

func TestSetConfigValue(t *testing.T) {
	testCases := []struct {
		name        string
		attr        string
		value       any
		expectedErr error
	}{
		{name: "Valid name", attr: AttrName, value: "Finals Game 1"},
		{name: "Name exactly 5 characters", attr: AttrName, value: "abcde"},
		{name: "Short name", attr: AttrName, value: "abcd", expectedErr: ErrInvalidValue},
		{name: "Empty name", attr: AttrName, value: "", expectedErr: ErrInvalidValue},
		{name: "Nil name", attr: AttrName, value: nil, expectedErr: ErrInvalidValue},
		{name: "Non-string name", attr: AttrName, value: 12345, expectedErr: ErrInvalidValue},
		{name: "Valid password", attr: AttrPassword, value: "hunter2"},
		{name: "Empty password", attr: AttrPassword, value: ""},
		{name: "Nil password", attr: AttrPassword, value: nil},
		{name: "Short password", attr: AttrPassword, value: "abc", expectedErr: ErrInvalidValue},
		{name: "Valid report URL", attr: AttrReportURL, value: "http://example.com/report"},
		{name: "Empty report URL", attr: AttrReportURL, value: "", expectedErr: ErrInvalidValue},
		{name: "String extra data", attr: AttrExtraData, value: "example"},
		{name: "Map extra data", attr: AttrExtraData, value: map[string]any{"game": 1}, expectedErr: ErrInvalidValue},
		{name: "Nil extra data", attr: AttrExtraData, value: nil, expectedErr: ErrInvalidValue},
		{name: "Unknown attribute", attr: "region", value: "EUW", expectedErr: ErrInvalidAttribute},
		{name: "Snake case attribute", attr: "report_url", value: "http://example.com", expectedErr: ErrInvalidAttribute},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := NewGameConfig("Default Lobby", "", "http://example.com/default", nil)
			before := *config

			err := config.SetConfigValue(tc.attr, tc.value)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.expectedErr), "expected %v, got %v", tc.expectedErr, err)
				assert.Equal(t, before, *config, "Config should be untouched on error")
				return
			}
			require.NoError(t, err)

			got, err := config.Value(tc.attr)
			require.NoError(t, err)
			if tc.value == nil {
				assert.Equal(t, "", got)
			} else {
				assert.Equal(t, tc.value, got)
			}
		})
	}
}

func TestSetExtraDataIsStoredVerbatim(t *testing.T) {
	config := NewGameConfig("Test Lobby", "", "", map[string]any{"round": 1})

	require.NoError(t, config.SetConfigValue(AttrExtraData, `{"round": 2}`))

	// Not parsed and not wrapped, unlike the constructor
	assert.Equal(t, `{"round": 2}`, config.ExtraData)
}

func TestValueUnknownAttribute(t *testing.T) {
	config := NewGameConfig("Test Lobby", "", "", nil)

	_, err := config.Value("region")
	assert.ErrorIs(t, err, ErrInvalidAttribute)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Twisted Treeline", TwistedTreeline.String())
	assert.Equal(t, "Tournament Draft", TournamentDraft.String())
	assert.Equal(t, "Friends only", SpectatorFriends.Label())
	assert.Equal(t, "Unknown map", Map(2).String())

	assert.False(t, Map(2).Valid())
	assert.False(t, PickMode(3).Valid())
	assert.False(t, SpectatorPolicy("BOGUS").Valid())

	assert.Equal(t, 3, TwistedTreeline.MaxTeamSize())
	assert.Equal(t, 5, SummonersRift.MaxTeamSize())
}
