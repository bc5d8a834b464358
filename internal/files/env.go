package files

import (
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
)

const (
	// DefaultDirName defines the folder under the user's home directory.
	DefaultDirName = ".productify"

	// HomeEnv overrides where productify keeps its data, config and log.
	HomeEnv = "PRODUCTIFY_HOME"
)

// ResolveBasePath determines where productify stores its state, defaulting to ~/.productify.
// The location can be overridden by exporting PRODUCTIFY_HOME.
func ResolveBasePath() (string, error) {
	if override, ok := os.LookupEnv(HomeEnv); ok {
		override = strings.TrimSpace(override)
		if override != "" {
			return normalizePath(override)
		}
	}

	home, err := userHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName), nil
}

func normalizePath(input string) (string, error) {
	if !strings.HasPrefix(input, "~") {
		return input, nil
	}
	// go-homedir caches the home directory; tests move HOME around.
	homedir.DisableCache = true
	return homedir.Expand(input)
}

func userHome() (string, error) {
	homedir.DisableCache = true
	return homedir.Dir()
}
