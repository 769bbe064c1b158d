// Package appinfo exposes build metadata and well-known filesystem paths
// of the host application.
package appinfo

import (
	"os"
	"path/filepath"
)

// Version is stamped at build time via
// -ldflags "-X github.com/avolkovs/vitrina/internal/host/appinfo.Version=...".
var Version = "dev"

const appDirName = "vitrina"

// PathFor resolves a named well-known path. Unknown names and resolution
// failures yield an empty string rather than an error, so callers on the
// other side of the bridge never have to branch on failure kind.
func PathFor(name string) string {
	switch name {
	case "home":
		return userHomeDir()
	case "appData":
		return userConfigDir()
	case "userData":
		if dir := userConfigDir(); dir != "" {
			return filepath.Join(dir, appDirName)
		}
		return ""
	case "temp":
		return os.TempDir()
	case "desktop", "documents", "downloads", "music", "pictures", "videos":
		if home := userHomeDir(); home != "" {
			return filepath.Join(home, titled(name))
		}
		return ""
	default:
		return ""
	}
}

func userHomeDir() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return dir
}

func userConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return dir
}

func titled(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
