package config

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

var Opts *Options

func GetConfig() (*Options, error) {
	GetDefaultOptions()

	dataDir, err := checkDataDir(Opts.Data)
	if err != nil {
		return nil, errors.Wrap(err, "error checking data directory")
	}

	Opts.Data = dataDir
	Opts.DSN = filepath.Join(Opts.Data, "/bookmate.db")

	return Opts, nil
}

func checkDataDir(dataDir string) (string, error) {
	// Convert to absolute path if relative path is supplied.
	if !filepath.IsAbs(dataDir) {
		relativeDir := filepath.Join(filepath.Dir(os.Args[0]), dataDir)
		absDir, err := filepath.Abs(relativeDir)
		if err != nil {
			return "", err
		}
		dataDir = absDir
	}

	// Trim trailing \ or / in case user supplies
	dataDir = strings.TrimRight(dataDir, "\\/")
	if _, err := os.Stat(dataDir); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return "", errors.Wrapf(err, "unable to access data folder %s", dataDir)
		}
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			if errors.Is(err, os.ErrPermission) {
				// Permission denied, fall back to the user's home directory
				currentUser, err := user.Current()
				if err != nil {
					return "", errors.Wrap(err, "unable to get current user")
				}
				homeDir := currentUser.HomeDir
				if homeDir == "" {
					return "", errors.New("unable to get home directory")
				}

				homeData := filepath.Join(homeDir, "/.bookmate")
				if _, err := os.Stat(homeData); err == nil {
					return homeData, nil
				}
				if err := os.MkdirAll(homeData, 0755); err != nil {
					return "", errors.Wrapf(err, "unable to create data folder %s", homeData)
				}
				return homeData, nil
			}
			return "", errors.Wrapf(err, "unable to create data folder %s", dataDir)
		}
	}
	return dataDir, nil
}

func ParseFile(file string) (*Options, error) {
	// Check if file exists
	if _, err := os.Stat(file); err != nil {
		return nil, errors.Wrapf(err, "unable to access config file %s", file)
	}

	viper.SetConfigFile(file)
	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}
	if err := viper.Unmarshal(Opts); err != nil {
		return nil, err
	}
	return Opts, nil
}
