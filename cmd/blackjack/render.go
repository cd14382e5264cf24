package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
	"github.com/fadedpez/blackjack/pkg/services/strategy"
	"github.com/fadedpez/blackjack/pkg/table"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	goodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	badStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func describe(cards []entities.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return fmt.Sprintf("[%s] (%d)", strings.Join(parts, " "), blackjack.Total(cards))
}

// render is a one-line view of the table for debug logs
func render(snap table.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-15s dealer %s", snap.Phase, describe(snap.DealerCards))
	for _, p := range snap.Players {
		if !p.Playing {
			continue
		}
		marker := " "
		if snap.HasTurn && snap.TurnPlayerID == p.ID {
			marker = "*"
		}
		fmt.Fprintf(&b, " |%sseat %d %s chips %d stake %d", marker, p.ID, describe(p.Cards), p.Chips, p.Stake)
	}
	fmt.Fprintf(&b, " | shoe %d/%d", snap.ShoeRemaining, snap.ShoeDiscarded)
	return b.String()
}

func renderAdvice(move blackjack.Move, advice strategy.Advice) string {
	switch {
	case advice.Suboptimal:
		return badStyle.Render("Suboptimal: " + advice.Reason)
	case advice.Optimal == blackjack.MoveNone:
		return mutedStyle.Render("Not evaluated: " + advice.Reason)
	case move != advice.Optimal:
		return badStyle.Render(fmt.Sprintf("%s: should %s, not %s", advice.Reason, advice.Optimal, move))
	case advice.Reason != "":
		return goodStyle.Render(fmt.Sprintf("%s is correct (%s)", move, advice.Reason))
	default:
		return goodStyle.Render(fmt.Sprintf("%s is correct", move))
	}
}

func renderStatistics(stats []entities.PlayerStatistics) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Seat  Hands  Win%   BJ  Busts  Doubles  Accuracy  Net"))
	for i := range stats {
		s := &stats[i]
		net := goodStyle
		if s.NetWinnings < 0 {
			net = badStyle
		}
		fmt.Fprintf(&b, "\n%-4d  %5d  %5.1f  %3d  %5d  %7d  %7.1f%%  %s",
			s.PlayerID, s.HandsPlayed, s.WinRate(), s.Blackjacks, s.Busts, s.DoubleDowns, s.Accuracy(),
			net.Render(fmt.Sprintf("%+d", s.NetWinnings)))
	}
	return b.String()
}
