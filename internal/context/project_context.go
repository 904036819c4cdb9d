package context

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/klaybind/klaybind/internal/constants"
)

// SetProjectContext changes the working directory to the project root.
// An explicit --project-root wins. Otherwise the closest parent holding klaybind.yaml is used,
// and when none exists the current directory is kept as the project root.
func SetProjectContext(projectRootFlag string, logger *zerolog.Logger) (string, error) {
	if projectRootFlag != "" {
		resolvedPath, err := filepath.Abs(projectRootFlag)
		if err != nil {
			return "", fmt.Errorf("failed to resolve project root path '%s': %w", projectRootFlag, err)
		}

		info, err := os.Stat(resolvedPath)
		if os.IsNotExist(err) {
			return "", fmt.Errorf("project root path does not exist: %s", resolvedPath)
		} else if err != nil {
			return "", fmt.Errorf("failed to check project root path '%s': %w", resolvedPath, err)
		}
		if !info.IsDir() {
			return "", fmt.Errorf("project root path is not a directory: %s", resolvedPath)
		}

		return resolvedPath, chdir(resolvedPath)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	settingsPath, found, err := FindProjectSettingsPath(cwd)
	if err != nil {
		return "", fmt.Errorf("failed to find project settings: %w", err)
	}
	if !found {
		logger.Debug().Str("dir", cwd).Msgf("No %s found, using the current directory as project root", constants.DefaultProjectSettingsFileName)
		return cwd, nil
	}

	projectRoot := filepath.Dir(settingsPath)
	return projectRoot, chdir(projectRoot)
}

func chdir(dir string) error {
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("failed to change directory to project root %s: %w", dir, err)
	}
	return nil
}

// FindProjectSettingsPath walks up from startDir looking for klaybind.yaml.
func FindProjectSettingsPath(startDir string) (string, bool, error) {
	if startDir == "" {
		return "", false, fmt.Errorf("starting directory cannot be empty")
	}

	dir := startDir
	for {
		filePath := filepath.Join(dir, constants.DefaultProjectSettingsFileName)
		if _, err := os.Stat(filePath); err == nil {
			return filePath, true, nil
		} else if !os.IsNotExist(err) {
			return "", false, fmt.Errorf("error checking project settings: %w", err)
		}

		parentDir := filepath.Dir(dir)
		if parentDir == dir {
			break
		}
		dir = parentDir
	}

	return "", false, nil
}
