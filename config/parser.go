package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the configuration of an application
type Config interface {
	// Use is the name of the application command
	Use() string

	// EnvPrefix is the prefix of the environment variables
	// that can override configuration parameters
	EnvPrefix() string

	// Binders are the groups of configuration parameters
	Binders() []Binder
}

// Parser reads the configuration of an application from, in order of
// precedence, command line flags, environment variables and the
// configuration file
type Parser struct {
	Config Config

	file   *ConfigFile
	parsed bool

	cmd *cobra.Command
	v   *viper.Viper
}

// Command returns the root command of the application, which holds
// the flags of every Binder as persistent flags so that they are
// accepted by any subcommand added to it
func (p *Parser) Command() *cobra.Command {
	return p.cmd
}

// Parse parses the arguments and configures all the binders
func (p *Parser) Parse(args []string) error {
	if p.parsed {
		return ErrAlreadyParsed
	}

	if err := p.cmd.PersistentFlags().Parse(args); err != nil {
		return ErrParseFlags{err}
	}

	return p.Load()
}

// Load configures all the binders from flags that have already been
// parsed, which is the case inside cobra run hooks
func (p *Parser) Load() error {
	if p.parsed {
		return ErrAlreadyParsed
	}

	// keep file first so that any parameters read from the file are used
	// as defaults for the other flags
	var binders []Binder
	binders = append(binders, p.file)
	binders = append(binders, p.Config.Binders()...)

	for _, c := range binders {
		if err := c.Configure(p.v); err != nil {
			return err
		}
	}

	p.parsed = true
	return nil
}

func (p *Parser) Usage() error {
	return p.cmd.Usage()
}

// Generate creates the Parser for the application, declaring the flags
// of every binder on the root command
func Generate(config Config) (*Parser, error) {
	v := viper.New()
	// all environment variables start with prefix `prefix` and are set
	// by replacing `.` and `-` to _.
	v.SetEnvPrefix(config.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{Use: config.Use(), SilenceUsage: true}
	file := ConfigFile{}
	var binders []Binder
	binders = append(binders, &file)
	binders = append(binders, config.Binders()...)

	for _, c := range binders {
		if err := c.Bind(v, cmd); err != nil {
			return nil, fmt.Errorf("failed to bind flags %s", err.Error())
		}
	}

	return &Parser{file: &file, Config: config, cmd: cmd, v: v}, nil
}
