package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newOptionsLoader binds the command flags, the environment, and an optional
// config file into a single viper instance. Flags take precedence over
// environment variables, which take precedence over the config file. The
// environment variable for a flag is the prefix plus the flag name upcased,
// with hyphens replaced by underscores (ex: VERIDIA_SERVER_DB_FILE).
func newOptionsLoader(cmd *cobra.Command, envPrefix string) (*viper.Viper, error) {
	v := viper.New()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if configFile := cmd.Flags().Lookup("config-file").Value.String(); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	return v, nil
}
