// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads the NewsAPI credential from local configuration.
// The key is read from the API_NEWS environment variable; a .env file in
// the working directory is loaded first so the key never has to live in
// the shell profile or the repository.
package secrets

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/pdiddy/newswire/pkg/types"
)

// EnvVar is the environment variable holding the NewsAPI key.
const EnvVar = "API_NEWS"

// APIKey returns the NewsAPI key from .env or the environment. A missing
// .env file is not an error; a missing or empty key is, with remediation
// text telling the user where to put it. This is a precondition check:
// the pipeline cannot proceed without a credential.
func APIKey() (string, error) {
	// .env is optional when the variable is already exported.
	_ = godotenv.Load()

	key := strings.TrimSpace(os.Getenv(EnvVar))
	if key == "" {
		return "", types.NewError(types.ErrConfig,
			"NewsAPI key not found: add a line %s=<your key> to a .env file in the working directory, or export the variable, and run again", EnvVar)
	}
	return key, nil
}
