// Package cli implements the interactive terminal client: strength checks,
// password generation, session history and clipboard copy.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/securepass/securepass-go/internal/model"
	"github.com/securepass/securepass-go/internal/service"
)

const (
	actionCheck    = "Check password strength"
	actionGenerate = "Generate a password"
	actionHistory  = "Show generated passwords"
	actionCopy     = "Copy a generated password"
	actionTips     = "Password security tips"
	actionQuit     = "Quit"
)

var menu = []string{actionCheck, actionGenerate, actionHistory, actionCopy, actionTips, actionQuit}

// Copier places text on the system clipboard.
type Copier func(text string) error

// SystemClipboard copies through the platform clipboard.
func SystemClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// App is the menu-driven terminal client.
type App struct {
	prompter  Prompter
	strength  *service.StrengthService
	generator *service.GeneratorService
	copy      Copier
	out       io.Writer
	logger    *slog.Logger
}

// Options configures an App.
type Options struct {
	Prompter  Prompter
	Strength  *service.StrengthService
	Generator *service.GeneratorService
	Copy      Copier
	Out       io.Writer
	Logger    *slog.Logger
}

// New creates an App.
func New(opts Options) *App {
	if opts.Copy == nil {
		opts.Copy = SystemClipboard
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &App{
		prompter:  opts.Prompter,
		strength:  opts.Strength,
		generator: opts.Generator,
		copy:      opts.Copy,
		out:       opts.Out,
		logger:    opts.Logger,
	}
}

// Run shows the menu until the user quits, interrupts, or ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.printf("SecurePass Manager\nCheck the strength of your password and generate secure passwords.\n\n")

	for {
		choice, err := a.prompter.Select(ctx, "What would you like to do?", menu)
		if err != nil {
			return a.exitErr(err)
		}

		switch choice {
		case actionCheck:
			err = a.check(ctx)
		case actionGenerate:
			err = a.generate(ctx)
		case actionHistory:
			a.showHistory()
		case actionCopy:
			err = a.copyFromHistory(ctx)
		case actionTips:
			a.showTips()
		case actionQuit:
			return nil
		default:
			err = fmt.Errorf("cli: unknown menu choice %q", choice)
		}
		if err != nil {
			return a.exitErr(err)
		}
		a.printf("\n")
	}
}

func (a *App) exitErr(err error) error {
	if errors.Is(err, ErrAborted) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *App) check(ctx context.Context) error {
	pw, err := a.prompter.Password(ctx, "Enter your password")
	if err != nil {
		return err
	}

	resp, err := a.strength.Check(model.StrengthRequest{Password: pw})
	if errors.Is(err, service.ErrPasswordRequired) {
		a.printf("Please enter a password!\n")
		return nil
	}
	if err != nil {
		return err
	}

	a.printf("Password Strength: %s\n", resp.Strength)
	for _, hint := range resp.Hints {
		a.printf("  - %s\n", hint)
	}
	return nil
}

func (a *App) generate(ctx context.Context) error {
	settings := a.generator.Settings()

	length, err := a.prompter.Int(ctx, "Select password length", settings.DefaultLength, settings.MinLength, settings.MaxLength)
	if err != nil {
		return err
	}
	specials, err := a.prompter.Confirm(ctx, "Include special characters?", settings.DefaultSpecials)
	if err != nil {
		return err
	}

	resp, err := a.generator.Generate(model.GenerateRequest{Length: length, IncludeSpecials: &specials})
	if errors.Is(err, service.ErrLengthTooShort) || errors.Is(err, service.ErrLengthTooLong) {
		a.printf("%v\n", err)
		return nil
	}
	if err != nil {
		return err
	}

	a.printf("Generated password: %s\n", resp.Password)

	copyIt, err := a.prompter.Confirm(ctx, "Copy it to the clipboard?", false)
	if err != nil {
		return err
	}
	if copyIt {
		a.copyPassword(resp.Password)
	}
	return nil
}

func (a *App) showHistory() {
	entries := a.generator.History().Entries
	if len(entries) == 0 {
		a.printf("No passwords generated yet.\n")
		return
	}
	for i, e := range entries {
		a.printf("%2d. %s  (%d chars, %s)\n", i+1, e.Password, e.Length, e.CreatedAt.Local().Format("15:04:05"))
	}
}

func (a *App) copyFromHistory(ctx context.Context) error {
	entries := a.generator.History().Entries
	if len(entries) == 0 {
		a.printf("No passwords generated yet.\n")
		return nil
	}

	options := make([]string, len(entries))
	for i, e := range entries {
		options[i] = e.Password
	}
	choice, err := a.prompter.Select(ctx, "Which password?", options)
	if err != nil {
		return err
	}

	a.copyPassword(choice)
	return nil
}

func (a *App) copyPassword(pw string) {
	if err := a.copy(pw); err != nil {
		a.logger.Warn("clipboard copy failed", "error", err)
		a.printf("Could not copy to the clipboard: %v\n", err)
		return
	}
	a.printf("Password copied to clipboard!\n")
}

func (a *App) showTips() {
	a.printf("Password Security Tips\n")
	for _, tip := range model.Tips {
		a.printf("  - %s\n", tip)
	}
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
