package content

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `
profile:
  name: Test
hero:
  phrases: [one, two]
about:
  body: "Hello **world**"
  skills:
    - { name: Go, color: accent }
projects:
  items:
    - { id: 1, title: First, tech: [Go] }
`

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Pritam", c.Profile.Name)
	assert.Equal(t, []string{"love coding", "build websites", "create animations", "solve problems"}, c.Hero.Phrases)
	assert.Equal(t, 3*time.Second, c.Hero.PhraseInterval)
	assert.Empty(t, c.Projects.Items)
	assert.Equal(t, "pritam", c.Discord.Username)
	assert.Equal(t, "discord.gg/zAtZEhhKnn", c.Discord.InviteLabel())
	assert.Len(t, c.About.Skills, 8)
	assert.Contains(t, string(c.About.HTML), "<p>I")
}

func TestParse_Defaults(t *testing.T) {
	c, err := Parse([]byte(minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, DefaultPhraseInterval, c.Hero.PhraseInterval)
	assert.Equal(t, "<p>Hello <strong>world</strong></p>\n", string(c.About.HTML))
	require.Len(t, c.Projects.Items, 1)
	assert.Equal(t, "First", c.Projects.Items[0].Title)
}

func TestParse_StripsRawHTML(t *testing.T) {
	src := strings.Replace(minimalYAML, `"Hello **world**"`, `"<script>alert(1)</script>"`, 1)
	c, err := Parse([]byte(src))
	require.NoError(t, err)
	assert.NotContains(t, string(c.About.HTML), "<script>")
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "missing name",
			yaml: "hero:\n  phrases: [a]\n",
			want: "profile.name is required",
		},
		{
			name: "no phrases",
			yaml: "profile:\n  name: x\n",
			want: "hero.phrases must not be empty",
		},
		{
			name: "unknown color",
			yaml: "profile:\n  name: x\nhero:\n  phrases: [a]\nabout:\n  skills:\n    - { name: Go, color: mauve }\n",
			want: `unknown color "mauve"`,
		},
		{
			name: "duplicate project",
			yaml: "profile:\n  name: x\nhero:\n  phrases: [a]\nprojects:\n  items:\n    - { id: 2 }\n    - { id: 2 }\n",
			want: "duplicate id 2",
		},
		{
			name: "bad yaml",
			yaml: "profile: [",
			want: "decode content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#6C63FF", Hex(ColorPrimary))
	assert.Equal(t, "#FF5A5F", Hex(ColorEnergy))
	assert.Empty(t, Hex("mauve"))
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func TestStore_Embedded(t *testing.T) {
	s, err := NewStore("", slog.Default())
	require.NoError(t, err)

	assert.Empty(t, s.Path())
	assert.Equal(t, "Pritam", s.Get().Profile.Name)
	assert.Equal(t, 1, s.Version())

	require.NoError(t, s.Reload(context.Background()))
	assert.Equal(t, 2, s.Version())
}

func TestStore_ReloadKeepsPreviousOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	writeFile(t, path, minimalYAML)

	s, err := NewStore(path, slog.Default())
	require.NoError(t, err)
	assert.Equal(t, "Test", s.Get().Profile.Name)

	var seen []string
	s.OnChange(func(c *Content) { seen = append(seen, c.Profile.Name) })

	writeFile(t, path, strings.Replace(minimalYAML, "name: Test", "name: Updated", 1))
	require.NoError(t, s.Reload(context.Background()))
	assert.Equal(t, "Updated", s.Get().Profile.Name)
	assert.Equal(t, []string{"Updated"}, seen)

	writeFile(t, path, "profile: [")
	require.Error(t, s.Reload(context.Background()))
	assert.Equal(t, "Updated", s.Get().Profile.Name)
	assert.Equal(t, 2, s.Version())
	assert.Len(t, seen, 1)
}

func TestStore_ReloadCancelled(t *testing.T) {
	s, err := NewStore("", slog.Default())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Reload(ctx), context.Canceled)
	assert.Equal(t, 1, s.Version())
}

func TestNewStore_MissingFile(t *testing.T) {
	_, err := NewStore(filepath.Join(t.TempDir(), "nope.yaml"), slog.Default())
	require.Error(t, err)
}

func TestWatcher_RequiresFile(t *testing.T) {
	s, err := NewStore("", slog.Default())
	require.NoError(t, err)

	_, err = NewWatcher(s, 0, slog.Default())
	assert.Error(t, err)
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	writeFile(t, path, minimalYAML)

	s, err := NewStore(path, slog.Default())
	require.NoError(t, err)

	w, err := NewWatcher(s, 10*time.Millisecond, slog.Default())
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	require.NoError(t, w.Start(context.Background()))
	t.Cleanup(func() { _ = w.Stop() })

	writeFile(t, path, strings.Replace(minimalYAML, "name: Test", "name: Watched", 1))

	assert.Eventually(t, func() bool {
		return s.Get().Profile.Name == "Watched"
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}
