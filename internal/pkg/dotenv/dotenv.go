package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

var ErrNoEnvFile = errors.New("env file not found")

// Load подгружает переменные из файла. Уже заданные переменные окружения не перезаписываются.
func Load(path string) error {
	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNoEnvFile
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	err = godotenv.Load(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyFlags разбирает флаги командной строки, флаг -port перекрывает PORT.
func ApplyFlags(name string, args []string) error {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)

	var portFlag string
	flags.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")

	err := flags.Parse(args)
	if err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	if portFlag != "" {
		err := os.Setenv("PORT", portFlag)
		if err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return nil
}
