package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// LoadDotenv loads a .env file into the process environment. Variables
// already present in the environment win over file values. A missing file
// is not an error.
func LoadDotenv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			log.Warn().Err(err).Str("file", file).Msg("Failed to load dotenv file")
			continue
		}
		log.Debug().Str("file", file).Msg("Loaded environment from dotenv file")
	}
}
