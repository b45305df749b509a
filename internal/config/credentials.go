package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/Taichi-iskw/cheta/internal/errors"
)

const (
	YouTubeAPIKeyEnv = "YT_API_KEY"
	GeminiAPIKeyEnv  = "GEMINI_API_KEY"
)

// Credentials holds the API keys. They are never logged.
type Credentials struct {
	YouTubeAPIKey string
	GeminiAPIKey  string
}

// LoadCredentials reads API keys from the environment after loading the
// given dotenv files (".env" when none are given). Missing dotenv files are
// ignored; variables already set in the environment win.
func LoadCredentials(envFiles ...string) (*Credentials, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(err, errors.CodeInvalidArg, fmt.Sprintf("failed to load %s", f))
		}
	}

	creds := &Credentials{
		YouTubeAPIKey: os.Getenv(YouTubeAPIKeyEnv),
		GeminiAPIKey:  os.Getenv(GeminiAPIKeyEnv),
	}
	if creds.YouTubeAPIKey == "" {
		return nil, errors.New(errors.CodeInvalidArg, YouTubeAPIKeyEnv+" is not set")
	}
	if creds.GeminiAPIKey == "" {
		return nil, errors.New(errors.CodeInvalidArg, GeminiAPIKeyEnv+" is not set")
	}
	return creds, nil
}

func (c Credentials) String() string {
	return "Credentials{YouTubeAPIKey: [redacted], GeminiAPIKey: [redacted]}"
}

// LogValue keeps the keys out of structured logs
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("youtube_api_key_set", c.YouTubeAPIKey != ""),
		slog.Bool("gemini_api_key_set", c.GeminiAPIKey != ""),
	)
}
