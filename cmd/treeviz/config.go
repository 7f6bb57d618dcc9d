package main

import (
	"os"

	"github.com/csePriyanshu/tree-visualizer/config"
	"github.com/csePriyanshu/tree-visualizer/container/tree"
	"github.com/csePriyanshu/tree-visualizer/logs"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "TREEVIZ"

// ServerConfig are the parameters of the playground server
type ServerConfig struct {
	Address   string
	BodyLimit uint
	Origins   []string
}

func (c *ServerConfig) Bind(v *viper.Viper, cmd *cobra.Command) error {
	flags := cmd.PersistentFlags()
	flags.String("server.address", "127.0.0.1:8080", "address the playground server listens on")
	flags.Uint("server.body-limit", 1<<14, "maximum size in bytes of a request body")
	flags.StringSlice("server.origins", []string{"*"}, "origins allowed to call the playground server")

	for _, key := range []string{"server.address", "server.body-limit", "server.origins"} {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			return err
		}
	}
	return nil
}

func (c *ServerConfig) Configure(v *viper.Viper) error {
	c.Address = v.GetString("server.address")
	c.BodyLimit = v.GetUint("server.body-limit")
	c.Origins = v.GetStringSlice("server.origins")
	return nil
}

// LogConfig are the parameters of the application logger
type LogConfig struct {
	Level string
	JSON  bool
}

func (c *LogConfig) Bind(v *viper.Viper, cmd *cobra.Command) error {
	flags := cmd.PersistentFlags()
	flags.String("log.level", "info", "log level")
	flags.Bool("log.json", false, "log in json format")

	if err := v.BindPFlag("log.level", flags.Lookup("log.level")); err != nil {
		return err
	}
	return v.BindPFlag("log.json", flags.Lookup("log.json"))
}

func (c *LogConfig) Configure(v *viper.Viper) error {
	c.Level = v.GetString("log.level")
	c.JSON = v.GetBool("log.json")
	_, err := logs.ParseLevel(c.Level)
	return err
}

// TreeConfig are the parameters of the trees created by the application
type TreeConfig struct {
	Kind tree.Kind
}

func (c *TreeConfig) Bind(v *viper.Viper, cmd *cobra.Command) error {
	flags := cmd.PersistentFlags()
	flags.String("tree.kind", tree.Balanced.String(), "tree variant: binary, bst or avl")
	return v.BindPFlag("tree.kind", flags.Lookup("tree.kind"))
}

func (c *TreeConfig) Configure(v *viper.Viper) error {
	kind, err := tree.ParseKind(v.GetString("tree.kind"))
	if err != nil {
		return err
	}

	c.Kind = kind
	return nil
}

// AppConfig is the configuration of treeviz
type AppConfig struct {
	Server ServerConfig
	Log    LogConfig
	Tree   TreeConfig
}

func (c *AppConfig) Use() string {
	return "treeviz"
}

func (c *AppConfig) EnvPrefix() string {
	return envPrefix
}

func (c *AppConfig) Binders() []config.Binder {
	return []config.Binder{&c.Server, &c.Log, &c.Tree}
}

// Logger creates the application logger. Logs go to stderr so that
// the output of the commands is not mixed with them
func (c *AppConfig) Logger() logs.Logger {
	level, err := logs.ParseLevel(c.Log.Level)
	if err != nil {
		panic(err)
	}

	return logs.NewLogrus(logs.LogrusLoggerProperties{
		Level:  level,
		Output: os.Stderr,
		JSON:   c.Log.JSON,
	})
}
