package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/iudanet/wordcards/internal/models"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	p := Load(filepath.Join(t.TempDir(), "nope.toml"), zap.New(core))

	assert.Equal(t, Defaults(), p)
	assert.Zero(t, logs.Len())
}

func TestLoad_CorruptFileGivesDefaultsAndWarns(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("theme = [unterminated"), 0o600))
	core, logs := observer.New(zapcore.WarnLevel)

	p := Load(path, zap.New(core))

	assert.Equal(t, Defaults(), p)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "Corrupt prefs file, using defaults", logs.All()[0].Message)
}

func TestLoad_InvalidValueGivesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(`theme = "neon"`), 0o600))
	core, logs := observer.New(zapcore.WarnLevel)

	assert.Equal(t, Defaults(), Load(path, zap.New(core)))
	assert.Equal(t, 1, logs.Len())
}

func TestLoad_PartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("theme = \"dark\"\ndefault_mode = \"study\"\n"), 0o600))

	p := Load(path, zap.NewNop())

	assert.Equal(t, "dark", p.Theme)
	assert.Equal(t, "study", p.DefaultMode)
	assert.Equal(t, Defaults().VoiceSource, p.VoiceSource)
	assert.Equal(t, Defaults().DictionarySource, p.DictionarySource)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", FileName)
	want := Prefs{
		Theme:            "light",
		VoiceSource:      "none",
		DictionarySource: "wordnik",
		DefaultMode:      "study",
	}

	require.NoError(t, Save(path, want))
	assert.Equal(t, want, Load(path, zap.NewNop()))
}

func TestSave_RejectsInvalid(t *testing.T) {
	p := Defaults()
	p.DefaultMode = "exam"

	err := Save(filepath.Join(t.TempDir(), FileName), p)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestPathNear(t *testing.T) {
	assert.Equal(t, filepath.Join("data", FileName), PathNear(filepath.Join("data", "client.db")))
}
