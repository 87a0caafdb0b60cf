package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securepass/securepass-go/internal/password"
	"github.com/securepass/securepass-go/internal/service"
)

// scriptedPrompter answers prompts from fixed queues in order.
type scriptedPrompter struct {
	selects   []string
	passwords []string
	ints      []int
	confirms  []bool

	selectOptions [][]string
}

func (p *scriptedPrompter) Select(_ context.Context, _ string, options []string) (string, error) {
	p.selectOptions = append(p.selectOptions, options)
	if len(p.selects) == 0 {
		return "", ErrAborted
	}
	v := p.selects[0]
	p.selects = p.selects[1:]
	if v == "#0" {
		return options[0], nil
	}
	return v, nil
}

func (p *scriptedPrompter) Password(context.Context, string) (string, error) {
	if len(p.passwords) == 0 {
		return "", ErrAborted
	}
	v := p.passwords[0]
	p.passwords = p.passwords[1:]
	return v, nil
}

func (p *scriptedPrompter) Int(_ context.Context, _ string, def, _, _ int) (int, error) {
	if len(p.ints) == 0 {
		return def, nil
	}
	v := p.ints[0]
	p.ints = p.ints[1:]
	return v, nil
}

func (p *scriptedPrompter) Confirm(_ context.Context, _ string, def bool) (bool, error) {
	if len(p.confirms) == 0 {
		return def, nil
	}
	v := p.confirms[0]
	p.confirms = p.confirms[1:]
	return v, nil
}

type fakeClipboard struct {
	copied []string
	err    error
}

func (c *fakeClipboard) Copy(text string) error {
	if c.err != nil {
		return c.err
	}
	c.copied = append(c.copied, text)
	return nil
}

func newTestApp(p Prompter, clip *fakeClipboard) (*App, *bytes.Buffer, *service.GeneratorService) {
	var out bytes.Buffer
	gen := service.NewGeneratorService(
		password.NewGenerator(password.MathSource{}),
		service.NewHistory(10),
		service.DefaultGeneratorSettings(),
	)
	app := New(Options{
		Prompter:  p,
		Strength:  service.NewStrengthService(),
		Generator: gen,
		Copy:      clip.Copy,
		Out:       &out,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return app, &out, gen
}

func TestRun_CheckStrength(t *testing.T) {
	p := &scriptedPrompter{
		selects:   []string{actionCheck, actionCheck, actionQuit},
		passwords: []string{"Password1!", ""},
	}
	app, out, _ := newTestApp(p, &fakeClipboard{})

	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), "Password Strength: Moderate")
	assert.Contains(t, out.String(), password.HintCommonWords)
	assert.Contains(t, out.String(), "Please enter a password!")
}

func TestRun_GenerateAndCopy(t *testing.T) {
	clip := &fakeClipboard{}
	p := &scriptedPrompter{
		selects:  []string{actionGenerate, actionQuit},
		ints:     []int{20},
		confirms: []bool{false, true},
	}
	app, out, gen := newTestApp(p, clip)

	require.NoError(t, app.Run(context.Background()))

	entries := gen.History().Entries
	require.Len(t, entries, 1)
	assert.Len(t, entries[0].Password, 20)
	assert.False(t, entries[0].IncludeSpecials)
	assert.NotContains(t, entries[0].Password, "@")
	assert.Equal(t, []string{entries[0].Password}, clip.copied)
	assert.Contains(t, out.String(), "Generated password: "+entries[0].Password)
	assert.Contains(t, out.String(), "Password copied to clipboard!")
}

func TestRun_HistoryAndCopyFromHistory(t *testing.T) {
	clip := &fakeClipboard{}
	p := &scriptedPrompter{
		selects:  []string{actionHistory, actionCopy, actionGenerate, actionHistory, actionCopy, "#0", actionQuit},
		confirms: []bool{true, false},
	}
	app, out, gen := newTestApp(p, clip)

	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), "No passwords generated yet.")

	entries := gen.History().Entries
	require.Len(t, entries, 1)
	assert.Len(t, entries[0].Password, 12)
	assert.Contains(t, out.String(), " 1. "+entries[0].Password)
	assert.Equal(t, []string{entries[0].Password}, clip.copied)
}

func TestRun_ClipboardFailure(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("no display")}
	p := &scriptedPrompter{
		selects:  []string{actionGenerate, actionQuit},
		confirms: []bool{true, true},
	}
	app, out, _ := newTestApp(p, clip)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "Could not copy to the clipboard: no display")
}

func TestRun_Tips(t *testing.T) {
	p := &scriptedPrompter{selects: []string{actionTips, actionQuit}}
	app, out, _ := newTestApp(p, &fakeClipboard{})

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "Enable Two-Factor Authentication (2FA).")
}

func TestRun_AbortExitsCleanly(t *testing.T) {
	app, _, _ := newTestApp(&scriptedPrompter{}, &fakeClipboard{})
	assert.NoError(t, app.Run(context.Background()))
}

func TestRun_UnknownChoice(t *testing.T) {
	p := &scriptedPrompter{selects: []string{"Dance"}}
	app, _, _ := newTestApp(p, &fakeClipboard{})

	assert.Error(t, app.Run(context.Background()))
}

func TestIntInRange(t *testing.T) {
	validate := intInRange(8, 30)

	assert.NoError(t, validate("12"))
	assert.NoError(t, validate(" 30 "))
	assert.Error(t, validate("7"))
	assert.Error(t, validate("31"))
	assert.Error(t, validate("twelve"))
}

func TestTranslateSurveyErr(t *testing.T) {
	other := errors.New("boom")
	assert.Equal(t, other, translateSurveyErr(other))
}
