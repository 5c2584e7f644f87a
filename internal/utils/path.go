package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver finds input files relative to the binary, the working
// directory and the user's config directory.
type PathResolver struct {
	executableDir string
	workingDir    string
	configDir     string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	// Resolve any symlinks to get the actual binary location
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not determine working directory: %v", err)
		cwd = "."
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		workingDir:    cwd,
		configDir:     getConfigDir(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, cwd=%s, configDir=%s",
		pr.executableDir, pr.workingDir, pr.configDir)
	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "numeronym")
		}
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "numeronym")
		}
	}
	return filepath.Join(homeDir, ".config", "numeronym")
}

// Candidates lists where a relative input file is looked for, in order:
// the working directory, the executable directory, then the config directory.
// Absolute paths are returned unchanged.
func (pr *PathResolver) Candidates(name string) []string {
	if filepath.IsAbs(name) {
		return []string{name}
	}
	return []string{
		filepath.Join(pr.workingDir, name),
		filepath.Join(pr.executableDir, name),
		filepath.Join(pr.configDir, name),
	}
}

// ResolveInput returns the first existing candidate for name. When none
// exists the working directory candidate is returned so errors name a sensible path.
func (pr *PathResolver) ResolveInput(name string) string {
	candidates := pr.Candidates(name)
	for _, path := range candidates {
		if FileExists(path) {
			log.Debugf("Resolved %s to %s", name, path)
			return path
		}
		log.Debugf("Input candidate not found: %s", path)
	}
	return candidates[0]
}

// ResolveOutput places a relative output path in the working directory
func (pr *PathResolver) ResolveOutput(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(pr.workingDir, name)
}

// GetConfigDir returns the config directory
func (pr *PathResolver) GetConfigDir() string {
	return pr.configDir
}
