package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrAlreadyParsed is returned when attempting to parse the
// configuration more than once
var ErrAlreadyParsed = errors.New("configuration already parsed")

// ErrParseFlags is returned when the command line flags
// cannot be parsed
type ErrParseFlags struct {
	Cause error
}

func (e ErrParseFlags) Error() string {
	return fmt.Sprintf("failed to parse flags: %s", e.Cause.Error())
}

func (e ErrParseFlags) Unwrap() error {
	return e.Cause
}

// Binder defines a group of configuration parameters. Bind declares
// the flags of the group and binds them to viper keys, and Configure
// reads the final values, which may come from flags, environment
// variables or the configuration file, back into the group
type Binder interface {
	Bind(v *viper.Viper, cmd *cobra.Command) error
	Configure(v *viper.Viper) error
}

// ConfigFile is the Binder for the optional configuration file. Any
// format supported by viper is accepted and the format is taken from
// the file extension
type ConfigFile struct {
	Path string
}

// Bind is the implementation of Binder for ConfigFile
func (f *ConfigFile) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String("config", "", "path to the configuration file")
	return v.BindPFlag("config", cmd.PersistentFlags().Lookup("config"))
}

// Configure is the implementation of Binder for ConfigFile
func (f *ConfigFile) Configure(v *viper.Viper) error {
	f.Path = v.GetString("config")
	if f.Path == "" {
		return nil
	}

	v.SetConfigFile(f.Path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", f.Path, err)
	}

	return nil
}
