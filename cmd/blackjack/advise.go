package main

import (
	"fmt"
	"strings"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
	"github.com/fadedpez/blackjack/pkg/services/strategy"
)

type AdviseCmd struct {
	Player string `required:"" help:"Player cards as ranks, e.g. A,7"`
	Dealer string `required:"" help:"Dealer up card rank"`
	Action string `help:"Move that was made (hit|stand|double|split)"`
}

func (c *AdviseCmd) Run(logger *logging.Logger) error {
	player, err := parseCards(c.Player)
	if err != nil {
		return err
	}
	dealer, err := parseCards(c.Dealer)
	if err != nil {
		return err
	}

	move := blackjack.Move(strings.ToLower(strings.TrimSpace(c.Action)))
	if move == blackjack.MoveNone {
		fmt.Printf("%s vs %s: %s\n", describe(player), describe(dealer), strategy.Optimal(player, dealer))
		return nil
	}

	advice := strategy.Evaluate(player, dealer, move)
	logger.Debug("Advice for %s: %+v", c.Player, advice)
	fmt.Println(renderAdvice(move, advice))
	return nil
}

// parseCards reads comma or space separated ranks as face-up cards
func parseCards(s string) ([]entities.Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) == 0 {
		return nil, fmt.Errorf("no cards in %q", s)
	}

	cards := make([]entities.Card, 0, len(fields))
	for i, f := range fields {
		rank, err := entities.ParseRank(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, entities.Card{
			Suit:   entities.Suits[i%len(entities.Suits)],
			Rank:   rank,
			FaceUp: true,
		})
	}
	return cards, nil
}
