package translate

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// APIKeyEnvVar names the environment variable holding the translation API
// key.
const APIKeyEnvVar = "TRANSLATE_API_KEY"

// LoadAPIKey resolves the API key from the environment, falling back to a
// .env file in the working directory. A missing .env file is not an error;
// a missing key is.
func LoadAPIKey() (string, error) {
	if key := os.Getenv(APIKeyEnvVar); key != "" {
		return key, nil
	}

	// Best effort: the key may live in a local .env file.
	_ = godotenv.Load()

	if key := os.Getenv(APIKeyEnvVar); key != "" {
		return key, nil
	}
	return "", errors.New(APIKeyEnvVar + " is not set (and no .env file provides it)")
}
