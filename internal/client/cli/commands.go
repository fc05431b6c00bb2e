package cli

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/notevault/internal/client/client"
	"github.com/dmitrijs2005/notevault/internal/common"
)

// getSimpleText, getPassword and getNewPassword are swapped in tests.
var (
	getSimpleText  = GetSimpleText
	getPassword    = GetPassword
	getNewPassword = GetNewPassword
	getMultiline   = GetMultiline
)

func (a *App) argOrPrompt(args []string, i int, prompt string) (string, error) {
	if len(args) > i && args[i] != "" {
		return args[i], nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}

// Register creates an account, signs in and sets up this device.
func (a *App) Register(ctx context.Context, args []string) error {
	username, err := a.argOrPrompt(args, 0, "Enter username")
	if err != nil {
		return err
	}
	email, err := a.argOrPrompt(args, 1, "Enter email (empty to skip)")
	if err != nil {
		return err
	}
	answer, err := getSimpleText(a.reader, "Enable authenticator app codes? (y/N)", a.out)
	if err != nil {
		return err
	}
	enableTOTP := strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")

	passphrase, err := getNewPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(passphrase)

	res, err := a.vault.Register(ctx, username, email, enableTOTP, passphrase)
	if err != nil {
		return err
	}
	a.userName = common.NormalizeUsername(username)

	fmt.Fprintf(a.out, "Registered account %s\n", res.AccountID)
	if res.TOTPSecret != "" {
		fmt.Fprintf(a.out, "Authenticator secret: %s\n%s\n", res.TOTPSecret, res.TOTPURI)
	}
	return nil
}

func (a *App) RequestLink(ctx context.Context, args []string) error {
	email, err := a.argOrPrompt(args, 0, "Enter email")
	if err != nil {
		return err
	}
	expires, err := a.vault.RequestLoginLink(ctx, email)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "If the address is registered, a login link is on its way (valid until %s)\n",
		expires.Local().Format(time.Kitchen))
	return nil
}

// linkToken accepts either the emailed URL or the bare token from it.
func linkToken(s string) string {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return s
	}
	if t := u.Query().Get("t"); t != "" {
		return t
	}
	return s
}

func (a *App) VerifyLink(ctx context.Context, args []string) error {
	link, err := a.argOrPrompt(args, 0, "Paste the login link")
	if err != nil {
		return err
	}
	sess, err := a.vault.VerifyLoginLink(ctx, linkToken(link))
	if err != nil {
		return err
	}
	a.userName = sess.Username
	fmt.Fprintf(a.out, "Signed in as %s\n", sess.Username)
	return nil
}

func (a *App) CodeLogin(ctx context.Context, args []string) error {
	username, err := a.argOrPrompt(args, 0, "Enter username")
	if err != nil {
		return err
	}
	code, err := a.argOrPrompt(args, 1, "Enter the 6-digit code")
	if err != nil {
		return err
	}
	sess, err := a.vault.LoginWithCode(ctx, username, code)
	if err != nil {
		return err
	}
	a.userName = sess.Username
	fmt.Fprintf(a.out, "Signed in as %s\n", sess.Username)
	return nil
}

// Unlock asks for the passphrase and keeps the DEK in memory.
func (a *App) Unlock(ctx context.Context) error {
	passphrase, err := getPassword("Enter passphrase", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(passphrase)

	dek, err := a.vault.Unlock(ctx, passphrase)
	if err != nil {
		if errors.Is(err, common.ErrorCryptoFailure) {
			return errors.New("wrong passphrase")
		}
		return err
	}
	common.WipeByteArray(a.dek)
	a.dek = dek
	fmt.Fprintln(a.out, "Unlocked")
	return nil
}

func (a *App) ensureUnlocked(ctx context.Context) error {
	if a.isUnlocked() {
		return nil
	}
	return a.Unlock(ctx)
}

func (a *App) ChangePassphrase(ctx context.Context) error {
	current, err := getPassword("Current passphrase", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	next, err := getNewPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)

	if err := a.vault.ChangePassphrase(ctx, current, next); err != nil {
		if errors.Is(err, common.ErrorCryptoFailure) {
			return errors.New("wrong passphrase")
		}
		return err
	}
	fmt.Fprintln(a.out, "Passphrase changed")
	return nil
}

func (a *App) AddNote(ctx context.Context, args []string) error {
	if err := a.ensureUnlocked(ctx); err != nil {
		return err
	}

	body := strings.Join(args, " ")
	if body == "" {
		var err error
		if body, err = getMultiline(a.reader, "Enter note", a.out); err != nil {
			return err
		}
	}
	if body == "" {
		return errors.New("empty note")
	}

	id, err := a.vault.AddNote(ctx, a.dek, []byte(body))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved note %s\n", id)
	return nil
}

func (a *App) List(ctx context.Context) error {
	if err := a.ensureUnlocked(ctx); err != nil {
		return err
	}
	notes, err := a.vault.ListNotes(ctx, a.dek)
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		fmt.Fprintln(a.out, "No notes")
		return nil
	}
	for _, n := range notes {
		title, _, _ := strings.Cut(string(n.Body), "\n")
		fmt.Fprintf(a.out, "%s  %s  %s\n", n.ID, n.CreatedAt.Local().Format(time.DateTime), title)
	}
	return nil
}

func (a *App) Status(ctx context.Context) error {
	a.checkOnline(ctx)

	sess, err := a.vault.Resume(ctx)
	switch {
	case errors.Is(err, client.ErrNotSignedIn):
		fmt.Fprintf(a.out, "Not signed in (%s)\n", a.Mode())
	case err != nil:
		return err
	default:
		fmt.Fprintf(a.out, "Signed in as %s (%s)\n", sess.Username, a.Mode())
	}
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.vault.Logout(ctx); err != nil {
		return err
	}
	common.WipeByteArray(a.dek)
	a.dek = nil
	a.userName = ""
	fmt.Fprintln(a.out, "Signed out")
	return nil
}
