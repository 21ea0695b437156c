package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/passgen-go/internal/clipboard"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func run(t *testing.T, d Deps, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	if args == nil {
		// cobra falls back to os.Args on nil.
		args = []string{}
	}
	root := NewRootCommand(d)
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func testDeps(cb *fakeClipboard) Deps {
	return Deps{Generator: crypto.NewGenerator(crypto.NewMathSource(3)), Clipboard: cb}
}

func TestGeneratePlain(t *testing.T) {
	out, _, err := run(t, testDeps(&fakeClipboard{}), "", "generate", "-o", "plain", "-c", "3", "-l", "12", "-L", "-n")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	for _, pw := range lines {
		assert.Len(t, pw, 12)
		for _, ch := range pw {
			assert.True(t, crypto.Lowercase.Contains(ch) || crypto.Digit.Contains(ch), "unexpected %q in %q", ch, pw)
		}
	}
}

func TestGenerateDefaultsAreUppercaseOnly(t *testing.T) {
	out, _, err := run(t, testDeps(&fakeClipboard{}), "", "generate", "-o", "plain")
	require.NoError(t, err)

	pw := strings.TrimSpace(out)
	assert.Len(t, pw, crypto.DefaultLength)
	for _, ch := range pw {
		assert.True(t, crypto.Uppercase.Contains(ch))
	}
}

func TestGenerateJSON(t *testing.T) {
	out, _, err := run(t, testDeps(&fakeClipboard{}), "", "generate", "-o", "json", "-l", "8", "-U", "-L", "-n")
	require.NoError(t, err)

	var resp model.GenerateResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, crypto.Strong, resp.Strength)
	assert.Equal(t, "green", resp.Color)
	assert.Len(t, resp.Password, 8)
}

func TestGenerateTable(t *testing.T) {
	out, _, err := run(t, testDeps(&fakeClipboard{}), "", "generate", "-c", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "PASSWORD")
	assert.Contains(t, out, "weak (red)")
}

func TestGenerateSeedIsReproducible(t *testing.T) {
	a, _, err := run(t, Deps{}, "", "generate", "-o", "plain", "--seed", "99", "-U", "-L", "-s")
	require.NoError(t, err)
	b, _, err := run(t, Deps{}, "", "generate", "-o", "plain", "--seed", "99", "-U", "-L", "-s")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateNoClasses(t *testing.T) {
	_, _, err := run(t, testDeps(&fakeClipboard{}), "", "generate", "--uppercase=false")

	var cfgErr *crypto.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
	assert.ErrorIs(t, err, crypto.ErrNoCharacterTypes)
}

func TestGenerateCopy(t *testing.T) {
	cb := &fakeClipboard{}
	out, errOut, err := run(t, testDeps(cb), "", "generate", "-o", "plain", "--copy")
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(out), cb.text)
	assert.Contains(t, errOut, "Password copied!")
}

func TestGenerateCopyFailureIsReported(t *testing.T) {
	cb := &fakeClipboard{err: errors.New("no display")}
	_, errOut, err := run(t, testDeps(cb), "", "generate", "--copy")
	require.NoError(t, err)
	assert.Contains(t, errOut, "failed to copy password")
}

func TestGenerateHash(t *testing.T) {
	out, _, err := run(t, testDeps(&fakeClipboard{}), "", "generate", "-o", "plain", "--hash")
	require.NoError(t, err)

	parts := strings.Split(strings.TrimSpace(out), "\t")
	require.Len(t, parts, 2)
	ok, err := crypto.VerifyPassword(parts[0], parts[1])
	require.NoError(t, err)
	assert.True(t, ok)

	verifyOut, _, err := run(t, Deps{}, "", "verify", parts[0], parts[1])
	require.NoError(t, err)
	assert.Equal(t, "match\n", verifyOut)

	_, _, err = run(t, Deps{}, "", "verify", parts[0]+"!", parts[1])
	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestGenerateUnknownFormat(t *testing.T) {
	_, _, err := run(t, testDeps(&fakeClipboard{}), "", "generate", "-o", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestStrength(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"strength"}, "Strength: weak (red)"},
		{[]string{"strength", "-l", "8", "-U", "-L", "-n"}, "Strength: strong (green)"},
		{[]string{"strength", "-l", "6", "-L", "-s"}, "Strength: medium (yellow)"},
		{[]string{"strength", "--uppercase=false"}, "Strength: weak (red)"},
	}
	for _, tt := range tests {
		out, _, err := run(t, Deps{}, "", tt.args...)
		require.NoError(t, err)
		assert.Equal(t, tt.want+"\n", out)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := run(t, Deps{}, "", "strength", "--log-level", "loud")
	assert.ErrorContains(t, err, "invalid log level")
}

func TestInteractive(t *testing.T) {
	cb := &fakeClipboard{}
	input := strings.Join([]string{
		"copy",
		"length 8",
		"t lower",
		"t numbers",
		"g",
		"c",
		"length 30",
		"t emoji",
		"dance",
		"q",
	}, "\n")

	out, _, err := run(t, testDeps(cb), input, "interactive")
	require.NoError(t, err)

	assert.Contains(t, out, "first generate a password to copy")
	assert.Contains(t, out, "length 8 | uppercase [x] lowercase [x] numbers [x] symbols [ ] | strength strong (green)")
	assert.Contains(t, out, "Strength: strong (green)")
	assert.Contains(t, out, "Password copied!")
	assert.Contains(t, out, "length must be between 1 and 20")
	assert.Contains(t, out, `unknown character class "emoji"`)
	assert.Contains(t, out, `unknown command "dance"`)
	assert.Len(t, cb.text, 8)
}

func TestInteractiveNoClasses(t *testing.T) {
	s := service.NewSession(crypto.NewGenerator(crypto.NewMathSource(5)), nil)
	var out bytes.Buffer

	err := RunInteractive(context.Background(), strings.NewReader("t upper\ng\n"), &out, s)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "error: invalid character types: at least one character type must be selected")
	assert.Empty(t, s.Password())
}

type blockingClipboard struct {
	release chan struct{}
}

func (b *blockingClipboard) WriteAll(string) error {
	<-b.release
	return nil
}

func TestInteractiveCopyTimesOut(t *testing.T) {
	old := copyTimeout
	copyTimeout = 20 * time.Millisecond
	t.Cleanup(func() { copyTimeout = old })

	cb := &blockingClipboard{release: make(chan struct{})}
	defer close(cb.release)

	s := service.NewSession(crypto.NewGenerator(crypto.NewMathSource(5)), clipboard.NewCopier(cb))
	var out bytes.Buffer

	done := make(chan error, 1)
	go func() {
		done <- RunInteractive(context.Background(), strings.NewReader("g\nc\nq\n"), &out, s)
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("interactive copy did not give up on a hung clipboard")
	}
	assert.Contains(t, out.String(), "error: failed to copy password: context deadline exceeded")
	assert.NotContains(t, out.String(), "Password copied!")
}

func TestRootWithoutArgsRunsInteractive(t *testing.T) {
	out, _, err := run(t, testDeps(&fakeClipboard{}), "q\n")
	require.NoError(t, err)
	assert.Contains(t, out, "interactive mode")
}
