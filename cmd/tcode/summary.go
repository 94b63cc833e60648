package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/AdamBeresnev/lol-tournament-code/internal/result"
	"github.com/AdamBeresnev/lol-tournament-code/internal/utils"
)

const unknown = "unknown"

func printGameResult(out io.Writer, game *result.GameResult) {
	fmt.Fprintln(out, "Game result: ")
	fmt.Fprintln(out, lightRule)

	if game.GameID != nil {
		fmt.Fprintf(out, "Game id:       %d\n", *game.GameID)
	} else {
		fmt.Fprintf(out, "Game id:       %s\n", unknown)
	}
	fmt.Fprintf(out, "Game mode:     %s (%s)\n", utils.OrDefault(game.GameMode, unknown), utils.OrDefault(game.GameType, unknown))
	if game.GameLength != nil {
		fmt.Fprintf(out, "Game length:   %s\n", time.Duration(*game.GameLength)*time.Second)
	}
	fmt.Fprintf(out, "Ranked:        %t\n", utils.OrZero(game.Ranked))
	fmt.Fprintf(out, "Winner:        %s\n", winnerLabel(game.WinningTeamID))
	if packet, ok := game.Metadata["passbackDataPacket"]; ok {
		fmt.Fprintf(out, "Passback data: %s\n", jsonValue(packet))
	}
	fmt.Fprintln(out)

	printRoster(out, "Blue", result.TeamBlue, game.Blue)
	printRoster(out, "Purple", result.TeamPurple, game.Purple)
}

func printRoster(out io.Writer, name string, id result.TeamID, players []result.PlayerRecord) {
	fmt.Fprintf(out, "%s team (%d)\n", name, id)
	fmt.Fprintln(out, lightRule)
	for _, p := range players {
		var flags []string
		if p.Won() {
			flags = append(flags, "winner")
		}
		if utils.OrZero(p.IsLeaver) {
			flags = append(flags, "leaver")
		}
		if utils.OrZero(p.IsBot) {
			flags = append(flags, "bot")
		}

		line := fmt.Sprintf("    %-20s level %-3s", utils.OrDefault(p.SummonerName, unknown), optionalInt(p.Level))
		if len(flags) > 0 {
			line += " [" + strings.Join(flags, ", ") + "]"
		}
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out)
}

func winnerLabel(id *result.TeamID) string {
	if id == nil {
		return unknown
	}
	switch *id {
	case result.TeamBlue:
		return fmt.Sprintf("Blue (%d)", *id)
	case result.TeamPurple:
		return fmt.Sprintf("Purple (%d)", *id)
	}
	return fmt.Sprintf("%d", *id)
}

func optionalInt(v *int) string {
	if v == nil {
		return "?"
	}
	return fmt.Sprintf("%d", *v)
}
