package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iudanet/wordcards/internal/client/iocli"
	"github.com/iudanet/wordcards/internal/client/session"
	"github.com/iudanet/wordcards/internal/models"
)

const studyHelp = "[n]ext  [p]revious  [r]andom  [f]lip  [q]uit"

type studyView struct {
	Card     models.Flashcard
	Position int
	Total    int
}

func (c *Cli) newStudyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "study",
		Short: "Review flashcards one at a time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStudy(cmd.Context())
		},
	}
}

func (c *Cli) runStudy(ctx context.Context) error {
	if err := c.sessionError(); err != nil {
		return err
	}

	s := c.app.Session
	if !s.HasCards() {
		c.io.Println("No flashcards to study yet. Add some with 'wordcards add'.")
		return nil
	}

	s.SetMode(session.ModeStudy)
	c.io.Println(studyHelp)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.showCurrent(); err != nil {
			return err
		}

		input, err := c.io.ReadInput("> ")
		if errors.Is(err, iocli.ErrNoInput) {
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.ToLower(input) {
		case "n", "next", "":
			s.Next()
		case "p", "prev", "previous":
			if !s.Previous() {
				c.io.Println("This is the first card in your history.")
			}
		case "r", "random":
			s.Random()
		case "f", "flip":
			s.Flip()
		case "q", "quit", "exit":
			history, _ := s.History()
			c.io.Printf("Reviewed %d card(s). Bye!\n", len(history))
			return nil
		default:
			c.io.Println(studyHelp)
		}
	}
}

func (c *Cli) showCurrent() error {
	card, ok := c.app.Session.CurrentCard()
	if !ok {
		return nil
	}

	st := c.app.Session.State()
	view := studyView{Card: card, Position: st.CurrentIndex + 1, Total: len(st.Cards)}

	var b strings.Builder
	tmpl := frontTemplate
	if st.IsFlipped {
		tmpl = backTemplate
	}
	if err := tmpl.Execute(&b, view); err != nil {
		return err
	}
	c.io.Printf("%s", b.String())
	return nil
}
