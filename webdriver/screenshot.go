package webdriver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var screenshotNameReplacer = strings.NewReplacer("/", "_", " ", "_", string(filepath.Separator), "_")

// SaveScreenshot writes a PNG of the current viewport into dir, creating it
// if needed, and returns the file's path. name is made filesystem safe and
// suffixed so repeated captures never overwrite each other.
func SaveScreenshot(d Driver, dir, name string) (string, error) {
	png, err := d.Screenshot()
	if err != nil {
		return "", fmt.Errorf("taking screenshot: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("%s-%s.png", screenshotNameReplacer.Replace(name), uuid.New().String()[:8]))
	if err := os.WriteFile(path, png, 0644); err != nil {
		return "", err
	}
	return path, nil
}
