package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/wordcards/internal/client/prefs"
)

func (c *Cli) newPrefsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := c.app.Prefs
			c.io.Printf("File:              %s\n", c.app.PrefsPath())
			c.io.Printf("theme:             %s\n", p.Theme)
			c.io.Printf("voice_source:      %s\n", p.VoiceSource)
			c.io.Printf("dictionary_source: %s\n", p.DictionarySource)
			c.io.Printf("default_mode:      %s\n", p.DefaultMode)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a preference",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := setPref(c.app.Prefs, args[0], args[1])
			if err != nil {
				return err
			}
			if err := c.app.SavePrefs(p); err != nil {
				return err
			}
			c.io.Printf("✓ %s = %s\n", args[0], args[1])
			return nil
		},
	})
	return cmd
}

func setPref(p prefs.Prefs, key, value string) (prefs.Prefs, error) {
	switch key {
	case "theme":
		p.Theme = value
	case "voice_source":
		p.VoiceSource = value
	case "dictionary_source":
		p.DictionarySource = value
	case "default_mode":
		p.DefaultMode = value
	default:
		return p, fmt.Errorf("unknown preference %q", key)
	}
	return p, nil
}
