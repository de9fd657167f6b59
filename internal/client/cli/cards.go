package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/iudanet/wordcards/internal/client/lookup"
	"github.com/iudanet/wordcards/internal/models"
)

// cardFlags значения флагов add и update
type cardFlags struct {
	word          string
	meaning       string
	pronunciation string
	partOfSpeech  string
	notes         string
	audioURL      string
	examples      []string
	synonyms      []string
	antonyms      []string
}

func (f *cardFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.word, "word", "", "the word")
	fs.StringVar(&f.meaning, "meaning", "", "primary meaning")
	fs.StringVar(&f.pronunciation, "pronunciation", "", "pronunciation, e.g. /kæt/")
	fs.StringVar(&f.partOfSpeech, "part-of-speech", "", "noun, verb, ...")
	fs.StringVar(&f.notes, "notes", "", "personal notes")
	fs.StringVar(&f.audioURL, "audio-url", "", "pronunciation audio URL")
	fs.StringArrayVar(&f.examples, "example", nil, "usage example (repeatable)")
	fs.StringArrayVar(&f.synonyms, "synonym", nil, "synonym (repeatable)")
	fs.StringArrayVar(&f.antonyms, "antonym", nil, "antonym (repeatable)")
}

func (f *cardFlags) draft() models.Draft {
	return models.Draft{
		Word:          f.word,
		Meaning:       f.meaning,
		Pronunciation: f.pronunciation,
		PartOfSpeech:  f.partOfSpeech,
		PersonalNotes: f.notes,
		AudioURL:      f.audioURL,
		Examples:      f.examples,
		Synonyms:      f.synonyms,
		Antonyms:      f.antonyms,
	}
}

// patch берет только явно переданные флаги
func (f *cardFlags) patch(fs *pflag.FlagSet) models.Patch {
	var p models.Patch
	str := func(name string, v string) *string {
		if fs.Changed(name) {
			return &v
		}
		return nil
	}
	list := func(name string, v []string) *[]string {
		if fs.Changed(name) {
			return &v
		}
		return nil
	}

	p.Word = str("word", f.word)
	p.Meaning = str("meaning", f.meaning)
	p.Pronunciation = str("pronunciation", f.pronunciation)
	p.PartOfSpeech = str("part-of-speech", f.partOfSpeech)
	p.PersonalNotes = str("notes", f.notes)
	p.AudioURL = str("audio-url", f.audioURL)
	p.Examples = list("example", f.examples)
	p.Synonyms = list("synonym", f.synonyms)
	p.Antonyms = list("antonym", f.antonyms)
	return p
}

func (c *Cli) newListCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List flashcards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runList(verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show every field")
	return cmd
}

func (c *Cli) runList(verbose bool) error {
	if err := c.sessionError(); err != nil {
		return err
	}

	cards := c.app.Session.State().Cards
	if len(cards) == 0 {
		c.io.Println("No flashcards yet.")
		c.io.Println("Use 'wordcards add --word <word> --meaning <meaning>' to add your first one.")
		return nil
	}

	c.io.Printf("%d flashcard(s):\n", len(cards))
	for i, card := range cards {
		if verbose {
			var b strings.Builder
			if err := cardTemplate.Execute(&b, card); err != nil {
				return err
			}
			c.io.Printf("%s", b.String())
			continue
		}

		c.io.Printf("%d. %s", i+1, card.Word)
		if card.PartOfSpeech != "" {
			c.io.Printf(" (%s)", card.PartOfSpeech)
		}
		c.io.Printf(": %s\n", card.Meaning)
		c.io.Printf("   ID: %s\n", card.ID)
	}
	return nil
}

func (c *Cli) newAddCommand() *cobra.Command {
	var (
		f        cardFlags
		noLookup bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a flashcard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAdd(cmd.Context(), f.draft(), !noLookup)
		},
	}
	f.register(cmd.Flags())
	cmd.Flags().BoolVar(&noLookup, "no-lookup", false, "do not fill missing fields from known words")
	_ = cmd.MarkFlagRequired("word")
	return cmd
}

func (c *Cli) runAdd(ctx context.Context, draft models.Draft, useLookup bool) error {
	if useLookup && lookup.IsValidWord(draft.Word) {
		filled, err := lookup.PrefillFrom(ctx, c.app.Lookup, draft)
		if err == nil {
			draft = filled
		}
		if draft.Meaning == lookup.PlaceholderMeaning {
			draft.Meaning = ""
			if s := lookup.Suggestions(draft.Word); len(s) > 0 {
				c.io.Printf("No definition found for %q. Did you mean: %s?\n", draft.Word, strings.Join(s, ", "))
			}
		}
	}

	before := len(c.app.Session.State().Cards)
	if err := c.app.Session.Add(ctx, draft); err != nil {
		return err
	}
	if err := c.sessionError(); err != nil {
		return err
	}

	st := c.app.Session.State()
	if len(st.Cards) > before {
		card := st.Cards[len(st.Cards)-1]
		c.io.Printf("✓ Added %q (ID: %s)\n", card.Word, card.ID)
	}
	return nil
}

func (c *Cli) newUpdateCommand() *cobra.Command {
	var f cardFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a flashcard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := f.patch(cmd.Flags())
			if p.IsEmpty() {
				return errors.New("nothing to update: pass at least one field flag")
			}
			return c.runUpdate(cmd.Context(), args[0], p)
		},
	}
	f.register(cmd.Flags())
	return cmd
}

func (c *Cli) runUpdate(ctx context.Context, id string, p models.Patch) error {
	if err := c.app.Session.Update(ctx, id, p); err != nil {
		return err
	}
	if err := c.sessionError(); err != nil {
		return err
	}
	c.io.Printf("✓ Updated %s\n", id)
	return nil
}

func (c *Cli) newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a flashcard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Session.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			if err := c.sessionError(); err != nil {
				return err
			}
			c.io.Printf("✓ Deleted %s\n", args[0])
			return nil
		},
	}
}
