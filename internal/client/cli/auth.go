package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/wordcards/internal/client/auth"
	"github.com/iudanet/wordcards/internal/client/migration"
)

// healthTimeout ограничивает проверку сервера в status
const healthTimeout = 3 * time.Second

func (c *Cli) newLoginCommand() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with an access token and move local flashcards to the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLogin(cmd.Context(), token)
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "access token (prompted when omitted)")
	return cmd
}

func (c *Cli) runLogin(ctx context.Context, token string) error {
	if token == "" {
		var err error
		token, err = c.io.ReadSecret("Access token: ")
		if err != nil {
			return err
		}
	}
	if token == "" {
		return errors.New("access token cannot be empty")
	}

	st, res, err := c.app.Login(ctx, token)
	if err != nil && !st.IsSignedIn {
		return err
	}

	c.io.Printf("✓ Signed in as %s\n", st.UserID)
	if err != nil {
		c.io.Printf("Warning: local flashcards were not moved: %v\n", err)
		c.io.Println("Run 'wordcards migrate' to retry.")
		return nil
	}
	c.printMigration(res)
	return nil
}

func (c *Cli) newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Logout(cmd.Context()); err != nil {
				return err
			}
			c.io.Println("Signed out. Flashcards are stored on this device until you sign in again.")
			return nil
		},
	}
}

func (c *Cli) newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show sign-in status and where flashcards are stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStatus(cmd.Context())
		},
	}
}

func (c *Cli) runStatus(ctx context.Context) error {
	st := c.app.Identity.Status(ctx)
	count := len(c.app.Session.State().Cards)

	c.io.Println("=== Status ===")
	if !st.IsSignedIn {
		c.io.Println("Account:    not signed in")
		c.io.Printf("Flashcards: %d (stored on this device)\n", count)
		c.io.Println()
		c.io.Println("Run 'wordcards login' to keep flashcards in your account.")
		return nil
	}

	c.io.Printf("Account:    %s\n", st.UserID)
	c.io.Printf("Flashcards: %d (stored in your account)\n", count)

	if token, err := c.app.Identity.Credential(ctx); err == nil && token != "" {
		if claims, err := auth.ParseToken(token); err == nil && claims.ExpiresAt != nil {
			c.io.Printf("Token expires: %s\n", claims.ExpiresAt.Format(time.RFC3339))
		}
	}

	hctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()
	health, err := c.app.API.Health(hctx)
	if err != nil {
		c.io.Println("Server:     unavailable")
	} else {
		c.io.Printf("Server:     %s (version %s)\n", health.Status, health.Version)
	}

	if msg := c.app.Session.State().Error; msg != "" {
		c.io.Printf("Warning: %s\n", msg)
	}
	return nil
}

func (c *Cli) newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Move flashcards stored on this device to your account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.app.Migrate(cmd.Context())
			if err != nil {
				return err
			}
			c.printMigration(res)
			return nil
		},
	}
}

func (c *Cli) printMigration(res migration.Result) {
	switch {
	case res.AlreadyDone:
		c.io.Println("Local flashcards were already moved to your account.")
	case res.NothingToMove:
		c.io.Println("No local flashcards to move.")
	default:
		c.io.Printf("Moved %d flashcard(s) to your account", res.Migrated)
		if res.Skipped > 0 {
			c.io.Printf(", %d already there", res.Skipped)
		}
		if res.Merged > 0 {
			c.io.Printf(" (%d updated with local details)", res.Merged)
		}
		c.io.Println(".")
	}
}
