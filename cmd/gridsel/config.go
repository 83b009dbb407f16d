package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hnimtadd/gridsel/logger"
)

const envPrefix = "GRIDSEL"

type config struct {
	Rows      int
	Cols      int
	LogLevel  string
	LogFormat string
}

func addConfigFlags(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.PersistentFlags()
	flags.Int("rows", 20, "Number of grid rows.")
	flags.Int("cols", 10, "Number of grid columns.")
	flags.String("log-level", "warn", "Log level: debug, info, warn or error.")
	flags.String("log-format", "text", "Log format: text or json.")
	flags.String("config", "", "Config file (default: ./.gridsel.yaml when present).")

	for _, name := range []string{"rows", "cols", "log-level", "log-format"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}
}

// loadConfig merges, in increasing priority, the config file, GRIDSEL_*
// environment variables and flags given on the command line.
func loadConfig(cmd *cobra.Command, v *viper.Viper) (config, error) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".gridsel")
		if override := os.Getenv(envPrefix + "_CONFIG_PATH"); override != "" {
			v.AddConfigPath(override)
		}
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return config{}, fmt.Errorf("read config: %w", err)
		}
	}

	c := config{
		Rows:      v.GetInt("rows"),
		Cols:      v.GetInt("cols"),
		LogLevel:  v.GetString("log-level"),
		LogFormat: v.GetString("log-format"),
	}
	if c.Rows < 1 || c.Cols < 1 {
		return config{}, fmt.Errorf("grid must have at least one row and column, got %dx%d", c.Cols, c.Rows)
	}
	return c, nil
}

func (c config) logger(w io.Writer) logger.Logger {
	t := logger.TypeText
	if c.LogFormat == "json" {
		t = logger.TypeJSON
	}
	return logger.New(logger.Options{
		Buffer: w,
		Level:  logger.ParseLevel(c.LogLevel),
		Type:   t,
	})
}
