package assets

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed icon.png
var Icon []byte

// WriteIcon materializes the embedded icon under the user cache dir so it can
// be referenced by path from desktop notifications.
func WriteIcon(appID string) (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("locating user cache dir: %w", err)
	}
	return writeIcon(filepath.Join(cacheDir, appID))
}

func writeIcon(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("creating icon dir: %w", err)
	}
	path := filepath.Join(dir, "icon.png")
	if err := os.WriteFile(path, Icon, 0o600); err != nil {
		return "", fmt.Errorf("writing icon: %w", err)
	}
	return path, nil
}
