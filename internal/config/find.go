package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const appName = "tagaudit"

var configExts = []string{".yaml", ".yml", ".toml", ".json"}

// Where values returned by Find.
const (
	FoundExplicit = "explicit"
	FoundCwdUp    = "cwd-up"
	FoundXDG      = "xdg"
	FoundHome     = "home"
)

// searchDir is one place Find looks for "<base>.<ext>".
type searchDir struct {
	dir   string
	base  string
	where string
}

// Find resolves the config file: the explicit path first, then .tagaudit.* from
// startDir upwards, then $XDG_CONFIG_HOME/tagaudit/config.*, then ~/.tagaudit.*.
// The second return value names where the file was found; both are empty when
// nothing exists.
func Find(startDir, explicitPath, xdgHome, home string) (string, string, error) {
	if explicit := strings.TrimSpace(explicitPath); explicit != "" {
		abs, err := checkExplicit(explicit)
		if err != nil {
			return "", "", err
		}
		return abs, FoundExplicit, nil
	}

	dirs, err := searchPath(startDir, xdgHome, home)
	if err != nil {
		return "", "", err
	}
	for _, d := range dirs {
		for _, ext := range configExts {
			if candidate := filepath.Join(d.dir, d.base+ext); isRegularFile(candidate) {
				return candidate, d.where, nil
			}
		}
	}
	return "", "", nil
}

func checkExplicit(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%sCONFIG %q points to a directory", EnvPrefix, abs)
	}
	return abs, nil
}

func searchPath(startDir, xdgHome, home string) ([]searchDir, error) {
	start := strings.TrimSpace(startDir)
	if start == "" {
		start = "."
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return nil, err
	}

	var dirs []searchDir
	for {
		dirs = append(dirs, searchDir{dir: dir, base: "." + appName, where: FoundCwdUp})
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	home = strings.TrimSpace(home)
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	xdg := strings.TrimSpace(xdgHome)
	if xdg == "" && home != "" {
		xdg = filepath.Join(home, ".config")
	}
	if xdg != "" {
		dirs = append(dirs, searchDir{dir: filepath.Join(xdg, appName), base: "config", where: FoundXDG})
	}
	if home != "" {
		dirs = append(dirs, searchDir{dir: home, base: "." + appName, where: FoundHome})
	}
	return dirs, nil
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
