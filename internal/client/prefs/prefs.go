// Package prefs хранит настройки клиента в TOML файле рядом с базой.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"github.com/iudanet/wordcards/internal/validation"
)

// FileName имя файла настроек по умолчанию
const FileName = "prefs.toml"

// Prefs настройки клиента
type Prefs struct {
	Theme            string `toml:"theme" validate:"oneof=light dark system"`
	VoiceSource      string `toml:"voice_source" validate:"oneof=browser dictionary none"`
	DictionarySource string `toml:"dictionary_source" validate:"oneof=free wordnik merriam"`
	DefaultMode      string `toml:"default_mode" validate:"oneof=study management"`
}

// Defaults returns the built-in preferences.
func Defaults() Prefs {
	return Prefs{
		Theme:            "system",
		VoiceSource:      "browser",
		DictionarySource: "free",
		DefaultMode:      "management",
	}
}

// PathNear returns the prefs path next to the client database.
func PathNear(dbPath string) string {
	return filepath.Join(filepath.Dir(dbPath), FileName)
}

// Load читает настройки. Отсутствующий файл дает значения по умолчанию,
// битый файл дает значения по умолчанию и предупреждение в лог.
// Пустые поля файла заменяются значениями по умолчанию.
func Load(path string, logger *zap.Logger) Prefs {
	defaults := Defaults()

	resolved, err := expandPath(path)
	if err != nil {
		logger.Warn("Cannot resolve prefs path, using defaults", zap.Error(err))
		return defaults
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("Cannot read prefs, using defaults",
				zap.String("path", resolved), zap.Error(err))
		}
		return defaults
	}

	var p Prefs
	if err := toml.Unmarshal(data, &p); err != nil {
		logger.Warn("Corrupt prefs file, using defaults",
			zap.String("path", resolved), zap.Error(err))
		return defaults
	}

	p = p.withDefaults(defaults)
	if err := validation.Struct(p); err != nil {
		logger.Warn("Invalid prefs values, using defaults",
			zap.String("path", resolved), zap.Error(err))
		return defaults
	}
	return p
}

// Save пишет настройки, создавая каталог при необходимости.
func Save(path string, p Prefs) error {
	if err := validation.Struct(p); err != nil {
		return err
	}

	resolved, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, data, 0o600); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func (p Prefs) withDefaults(d Prefs) Prefs {
	or := func(v, def string) string {
		if strings.TrimSpace(v) == "" {
			return def
		}
		return strings.TrimSpace(v)
	}
	return Prefs{
		Theme:            or(p.Theme, d.Theme),
		VoiceSource:      or(p.VoiceSource, d.VoiceSource),
		DictionarySource: or(p.DictionarySource, d.DictionarySource),
		DefaultMode:      or(p.DefaultMode, d.DefaultMode),
	}
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
