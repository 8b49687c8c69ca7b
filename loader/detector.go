package loader

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Detector identifies web package root folders and package metadata.
type Detector struct {
	markers []string
}

// NewDetector creates a detector recognizing the common package markers.
func NewDetector() *Detector {
	return &Detector{
		markers: []string{
			"bower.json",   // legacy component packages
			"package.json", // npm packages
			".git",         // generic VCS marker
		},
	}
}

// PackageInfo describes a detected package.
type PackageInfo struct {
	RootPath string // absolute path to the package root
	Name     string // name from bower.json/package.json when present
}

// DetectPackage walks up from filePath looking for a package marker and
// returns the package info, defaulting to the start directory when no
// marker is found.
func (d *Detector) DetectPackage(filePath string) (*PackageInfo, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}
	startDir := absPath
	if info, err := os.Stat(absPath); err == nil && !info.IsDir() {
		startDir = filepath.Dir(absPath)
	}
	info := &PackageInfo{RootPath: startDir}
	dir := startDir
	for {
		for _, marker := range d.markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				info.RootPath = dir
				info.Name = packageName(dir)
				return info, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return info, nil
		}
		dir = parent
	}
}

// packageName extracts the name field from bower.json or package.json.
func packageName(dir string) string {
	for _, file := range []string{"bower.json", "package.json"} {
		data, err := os.ReadFile(filepath.Join(dir, file))
		if err != nil {
			continue
		}
		var manifest struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(data, &manifest); err != nil {
			continue
		}
		if manifest.Name != "" {
			return manifest.Name
		}
	}
	return ""
}
