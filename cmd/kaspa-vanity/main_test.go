package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/kaspa-vanity/internal/config"
	"github.com/usestring/kaspa-vanity/internal/generator"
)

// stubGenerator writes a paper wallet for each address in turn, repeating the
// last one.
type stubGenerator struct {
	bin       string
	addresses []string
	calls     int
	onCall    func(call int)
}

func (g *stubGenerator) Generate(_ context.Context, path string) error {
	addr := g.addresses[min(g.calls, len(g.addresses)-1)]
	g.calls++
	html := fmt.Sprintf("<html><body><div class=\"addr\">%s<br>\n</div></body></html>", addr)
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return err
	}
	if g.onCall != nil {
		g.onCall(g.calls)
	}
	return nil
}

type harness struct {
	app    *app
	gen    *stubGenerator
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	dir    string
}

func newHarness(t *testing.T, addresses ...string) *harness {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	h := &harness{
		gen:    &stubGenerator{addresses: addresses},
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		dir:    t.TempDir(),
	}
	h.app = &app{
		cfg:    &config.Config{WorkDir: h.dir, LogLevel: "error"},
		goos:   "linux",
		stdout: h.stdout,
		stderr: h.stderr,
		newInvoker: func(bin string) generator.Invoker {
			h.gen.bin = bin
			return h.gen
		},
	}
	return h
}

func (h *harness) files(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(h.dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestRun_PrefixAndSuffix(t *testing.T) {
	h := newHarness(t, "kaspa:qzzz", "kaspa:qas42yz")

	code := h.app.run(context.Background(), []string{"--prefix", "as", "--suffix", "yz"})
	require.Equal(t, 0, code, h.stderr.String())

	assert.Equal(t, 2, h.gen.calls)
	assert.Equal(t, "./kaspaper-linux", h.gen.bin)
	assert.Equal(t, []string{"qas...yz.html"}, h.files(t))

	out := h.stdout.String()
	assert.Contains(t, out, "Searching for addresses with prefix 'as' and suffix 'yz'...")
	assert.Contains(t, out, "Success! Address found: kaspa:qas42yz after 2 attempts in 0.00 minutes.")
	assert.Contains(t, out, "Result saved to "+filepath.Join(h.dir, "qas...yz.html"))
	assert.NotContains(t, out, "Generated address:")
}

func TestRun_ShortFlags(t *testing.T) {
	h := newHarness(t, "kaspa:qx", "kaspa:qkas0")

	code := h.app.run(context.Background(), []string{"-p", "kas", "-s", "0", "-v"})
	require.Equal(t, 0, code)

	out := h.stdout.String()
	assert.Contains(t, out, "Generated address: kaspa:qx\n")
	assert.Contains(t, out, "Generated address: kaspa:qkas0\n")
	assert.Equal(t, []string{"qkas...0.html"}, h.files(t))
}

func TestRun_Unconstrained(t *testing.T) {
	h := newHarness(t, "kaspa:qfirst", "kaspa:qsecond")

	code := h.app.run(context.Background(), nil)
	require.Equal(t, 0, code)

	assert.Equal(t, 1, h.gen.calls)
	assert.Equal(t, []string{"kaspa:qfirst.html"}, h.files(t))
}

func TestRun_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"prefix", []string{"-p", "abc"}, "Invalid prefix: abc. Allowed characters: qpzry9x8gf2tvdw0s3jn54khce6mua7l"},
		{"suffix", []string{"-s", "XYZ"}, "Invalid suffix: XYZ. Allowed characters: qpzry9x8gf2tvdw0s3jn54khce6mua7l"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, "kaspa:qnever")

			code := h.app.run(context.Background(), tt.args)
			assert.Equal(t, 1, code)
			assert.Contains(t, h.stdout.String(), tt.want)
			assert.Zero(t, h.gen.calls)
			assert.Empty(t, h.files(t))
		})
	}
}

func TestRun_InvalidInputBeforePlatformCheck(t *testing.T) {
	h := newHarness(t, "kaspa:qnever")
	h.app.goos = "plan9"

	code := h.app.run(context.Background(), []string{"--prefix", "b"})
	assert.Equal(t, 1, code)
	assert.Contains(t, h.stdout.String(), "Invalid prefix: b.")
	assert.NotContains(t, h.stdout.String(), "Unsupported")
}

func TestRun_UnsupportedPlatform(t *testing.T) {
	h := newHarness(t, "kaspa:qnever")
	h.app.goos = "plan9"

	code := h.app.run(context.Background(), []string{"-p", "q"})
	assert.Equal(t, 1, code)
	assert.Equal(t, "Unsupported operating system: plan9\n", h.stdout.String())
	assert.Zero(t, h.gen.calls)
	assert.Empty(t, h.files(t))
}

func TestRun_GeneratorOverride(t *testing.T) {
	h := newHarness(t, "kaspa:qany")
	h.app.cfg.GeneratorBin = "/opt/kaspaper/kaspaper-custom"

	require.Equal(t, 0, h.app.run(context.Background(), nil))
	assert.Equal(t, "/opt/kaspaper/kaspaper-custom", h.gen.bin)
}

func TestRun_Interrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := newHarness(t, "kaspa:qmiss")
	h.gen.onCall = func(call int) {
		if call == 4 {
			cancel()
		}
	}

	code := h.app.run(ctx, []string{"-p", "zzzz"})
	assert.Equal(t, 0, code)
	assert.Equal(t, 4, h.gen.calls)
	assert.Empty(t, h.files(t), "artifact is removed on interruption")
	assert.Contains(t, h.stdout.String(), "Process interrupted by user. Cleaning up...")
	assert.Contains(t, h.stdout.String(), "deleted.")
}

func TestRun_UsageErrors(t *testing.T) {
	for _, args := range [][]string{{"--bogus"}, {"extra-arg"}, {"-p"}} {
		h := newHarness(t, "kaspa:qnever")

		code := h.app.run(context.Background(), args)
		assert.Equal(t, 2, code, args)
		assert.Contains(t, h.stderr.String(), "kaspa-vanity --help")
		assert.Zero(t, h.gen.calls)
	}
}

func TestRun_Help(t *testing.T) {
	h := newHarness(t, "kaspa:qnever")

	code := h.app.run(context.Background(), []string{"--help"})
	assert.Equal(t, 0, code)
	assert.Contains(t, h.stdout.String(), "--prefix")
	assert.Contains(t, h.stdout.String(), "Prefix to match after 'kaspa:q'")
	assert.Zero(t, h.gen.calls)
}

func TestRun_SaveFailure(t *testing.T) {
	h := newHarness(t, "kaspa:qas")
	require.NoError(t, os.MkdirAll(filepath.Join(h.dir, "qas....html", "occupied"), 0o755))

	code := h.app.run(context.Background(), []string{"-p", "as"})
	assert.Equal(t, 1, code)
	assert.Contains(t, h.stderr.String(), "save result")
}
