package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"showdown/internal/config"
	"showdown/internal/rng"
	"showdown/pkg/deck"
	"showdown/pkg/evaluator"
)

const defaultPlayers = 4

// Version is the dealer version
var Version = "v0.0.0-dev"

var (
	playersFlag = flag.Int("players", 0, "number of five-card hands to deal (overrides config)")
	seedFlag    = flag.Int64("seed", 0, "shuffle seed; 0 picks one (overrides config)")
)

func main() {
	flag.Parse()
	setupLogger()

	players := *playersFlag
	if players == 0 {
		players = config.Instance().Players
	}
	if players == 0 {
		players = defaultPlayers
	}

	if players < 1 || players*5 > 52 {
		logrus.WithField("players", players).Fatal("cannot deal that many five-card hands from one deck")
	}

	seed := *seedFlag
	if seed == 0 {
		seed = config.Instance().Seed
	}

	d := deck.New()
	d.Shuffle(seed)

	button := rng.Crypto{}.Intn(players)

	logrus.WithFields(logrus.Fields{
		"version": Version,
		"players": players,
		"seed":    d.GetSeed(),
		"button":  button,
	}).Info("dealing")

	hands := make([]deck.Hand, players)
	for i := range hands {
		hand, err := d.DrawHand(5)
		if err != nil {
			logrus.WithError(err).Fatal("could not deal")
		}

		hand.SortHighToLow()
		hands[i] = hand
	}

	renderTable(hands, button)
	renderShowdown(hands)
}

func renderTable(hands []deck.Hand, button int) {
	box := pterm.DefaultBox.WithLeftPadding(2).WithRightPadding(2)

	panels := make([]pterm.Panel, len(hands))
	for i, hand := range hands {
		title := fmt.Sprintf("Seat %d", i+1)
		if i == button {
			title += " (button)"
		}

		score := evaluator.ScoreOf(hand)
		body := pterm.Sprintf("%s\n%s %v", handGlyphs(hand), evaluator.HandRankOf(hand), score)
		panels[i] = pterm.Panel{Data: box.WithTitle(title).Sprint(body)}
	}

	_ = pterm.DefaultPanel.WithPanels([][]pterm.Panel{panels}).Render()
}

func renderShowdown(hands []deck.Hand) {
	winners := []int{0}
	for i := 1; i < len(hands); i++ {
		switch evaluator.Compare(hands[winners[0]], hands[i]) {
		case 1:
			// right hand outranks the current best
			winners = []int{i}
		case 0:
			winners = append(winners, i)
		}
	}

	var result string
	if len(winners) == 1 {
		w := winners[0]
		result = pterm.Sprintf("Seat %d wins with %s", w+1, pterm.LightCyan(evaluator.HandRankOf(hands[w])))
	} else {
		seats := make([]string, len(winners))
		for i, w := range winners {
			seats[i] = fmt.Sprintf("Seat %d", w+1)
		}
		result = pterm.Sprintf("Split between %s", strings.Join(seats, ", "))
	}

	box := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	pterm.Println(box.WithTitle(pterm.LightGreen("|SHOWDOWN|")).WithTitleTopCenter().Sprint(result))
}

func handGlyphs(hand deck.Hand) string {
	cards := make([]string, len(hand))
	for i, card := range hand {
		cards[i] = card.String()
	}

	return strings.Join(cards, " ")
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
