// ABOUTME: Standard filesystem paths for mockcase configuration
// ABOUTME: Resolves ~/.mockcase/config.yaml (global) and ./.mockcase.yaml (project)

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName   = ".mockcase"
	globalFileName  = "config.yaml"
	projectFileName = ".mockcase.yaml"
	configDirEnvVar = "MOCKCASE_CONFIG_DIR"
)

// GlobalDir returns the user-global config directory (~/.mockcase/).
// MOCKCASE_CONFIG_DIR overrides it.
func GlobalDir() string {
	if dir := os.Getenv(configDirEnvVar); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), globalFileName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(projectRoot, projectFileName)
}
