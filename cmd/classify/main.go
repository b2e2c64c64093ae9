package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"pokerdrills-server/pkg/deck"
	"pokerdrills-server/pkg/poker"
)

var showMatches = flag.Bool("matches", false, "also list every category the cards satisfy")

func main() {
	flag.Parse()

	if flag.NArg() > 0 {
		if err := classifyLine(strings.Join(flag.Args(), " ")); err != nil {
			os.Exit(1)
		}
		return
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	failed := false

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print("cards> ")
		}

		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if err := classifyLine(line); err != nil {
			failed = true
		}
	}

	if err := scanner.Err(); err != nil {
		logrus.WithError(err).Fatal("could not read cards")
	}

	if failed && !interactive {
		os.Exit(1)
	}
}

// splitTokens splits a line of cards separated by commas and/or whitespace
func splitTokens(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

func classifyLine(line string) error {
	cards, err := deck.ParseCards(splitTokens(line)...)
	if err != nil {
		pterm.Error.Println(err)
		return err
	}

	analyzer := poker.NewHandAnalyzer(cards)
	pterm.Success.Printfln("%s: %s", render(cards), analyzer.GetHand())

	if *showMatches {
		data := pterm.TableData{{"category", "present"}}
		for _, c := range poker.Categories() {
			data = append(data, []string{c.String(), fmt.Sprint(analyzer.Has(c))})
		}

		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			logrus.WithError(err).Warn("could not render matches")
		}
	}

	return nil
}

func render(cards []deck.Card) string {
	s := make([]string, len(cards))
	for i, card := range cards {
		if card.Suit == deck.Hearts || card.Suit == deck.Diamonds {
			s[i] = pterm.LightRed(card.Symbol())
		} else {
			s[i] = card.Symbol()
		}
	}

	return strings.Join(s, " ")
}
