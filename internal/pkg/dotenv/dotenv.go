package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const defaultFile = ".env"

// Load подтягивает переменные из .env, если файл есть, и применяет флаги командной строки.
// Переменные окружения, заданные явно, .env не перетирает.
func Load(args []string, files ...string) error {
	if len(files) == 0 {
		files = []string{defaultFile}
	}
	for _, file := range files {
		err := godotenv.Load(file)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}

	flags := flag.NewFlagSet("booking", flag.ContinueOnError)
	port := flags.String("port", "", "Server port (overrides PORT environment variable)")
	draftStore := flags.String("draft-store", "", "Draft store: postgres, redis or memory (overrides DRAFT_STORE)")
	err := flags.Parse(args)
	if err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	overrides := map[string]string{
		"PORT":        *port,
		"DRAFT_STORE": *draftStore,
	}
	for key, value := range overrides {
		if value == "" {
			continue
		}
		err := os.Setenv(key, value)
		if err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", key, err)
		}
	}
	return nil
}
