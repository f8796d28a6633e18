package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/viper"
)

const (
	appName     = "journal"
	storageFile = "db"
)

// Config resolves where the journal lives.
type Config interface {
	// Path is the storage file location.
	Path() string
	// ConfigFile is the config file that was read, empty if none was found.
	ConfigFile() string
}

// LoadConfig resolves the storage location. A non-empty override wins over
// JOURNAL_PATH and the "path" key of a .journal config file; with none of
// them set the journal goes to the user data directory.
func LoadConfig(override string) (Config, error) {
	v := viper.New()
	v.SetDefault("path", "")
	v.SetConfigName(".journal") // .yaml is implicit
	v.SetEnvPrefix("JOURNAL")
	v.AutomaticEnv()

	if dir := os.Getenv("JOURNAL_CONFIG_PATH"); dir != "" {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath("./")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, appName))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: read config file: %v", ErrConfig, err)
		}
	}

	path := override
	if path == "" {
		path = v.GetString("path")
	}

	var err error
	if path == "" {
		path, err = Locate()
	} else {
		path, err = expand(path)
	}
	if err != nil {
		return nil, err
	}

	return &fileConfig{path: path, file: v.ConfigFileUsed()}, nil
}

// Locate returns the default storage file inside the user data directory,
// $XDG_DATA_HOME/journal/db on Linux.
func Locate() (string, error) {
	scope := gap.NewScope(gap.User, appName)
	path, err := scope.DataPath(storageFile)
	if err != nil {
		return "", fmt.Errorf("%w: locate data directory: %v", ErrConfig, err)
	}
	return path, nil
}

func expand(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("%w: expand %q: %v", ErrConfig, path, err)
	}
	return expanded, nil
}

type fileConfig struct {
	path string
	file string
}

func (f *fileConfig) Path() string {
	return f.path
}

func (f *fileConfig) ConfigFile() string {
	return f.file
}
