package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/veridia/identity/internal/server"
	"github.com/veridia/identity/internal/server/redis"
)

func newServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the identity server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			options, err := serverOptions(cmd)
			if err != nil {
				return err
			}

			srv, err := server.New(options)
			if err != nil {
				return fmt.Errorf("creating server: %w", err)
			}
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringP("config-file", "f", "", "Server configuration file")
	cmd.Flags().String("addr-http", ":8080", "HTTP listen address")
	cmd.Flags().String("addr-metrics", ":9090", "Metrics listen address")
	cmd.Flags().String("db-file", "$HOME/.veridia/sqlite3.db", "Path to SQLite 3 database")
	cmd.Flags().String("db-connection-string", "", "Postgres connection string, takes precedence over db-file")
	cmd.Flags().Duration("session-duration", 12*time.Hour, "User session duration")
	cmd.Flags().Duration("password-reset-duration", 1*time.Hour, "Validity window of password reset links")
	cmd.Flags().String("redis-host", "", "Redis host for rate limiting, empty disables limiting")
	cmd.Flags().Int("redis-port", 6379, "Redis port")
	cmd.Flags().String("redis-username", "", "Redis username")
	cmd.Flags().String("redis-password", "", "Redis password (secret)")
	cmd.Flags().String("email-app-domain", "", "Base URL used in password reset links")
	cmd.Flags().String("email-from-address", "", "From address for outgoing email")
	cmd.Flags().String("email-from-name", "", "From name for outgoing email")
	cmd.Flags().String("sendgrid-api-key", "", "SendGrid API key (secret)")

	return cmd
}

func serverOptions(cmd *cobra.Command) (server.Options, error) {
	v, err := newOptionsLoader(cmd, "VERIDIA_SERVER")
	if err != nil {
		return server.Options{}, err
	}

	dbFile, err := canonicalPath(v.GetString("db-file"))
	if err != nil {
		return server.Options{}, err
	}

	return server.Options{
		SessionDuration:       v.GetDuration("session-duration"),
		PasswordResetDuration: v.GetDuration("password-reset-duration"),
		DBFile:                dbFile,
		DBConnectionString:    v.GetString("db-connection-string"),
		Redis: redis.Options{
			Host:     v.GetString("redis-host"),
			Port:     v.GetInt("redis-port"),
			Username: v.GetString("redis-username"),
			Password: v.GetString("redis-password"),
		},
		Email: server.EmailOptions{
			AppDomain:      v.GetString("email-app-domain"),
			FromAddress:    v.GetString("email-from-address"),
			FromName:       v.GetString("email-from-name"),
			SendgridAPIKey: v.GetString("sendgrid-api-key"),
		},
		Addr: server.ListenerOptions{
			HTTP:    v.GetString("addr-http"),
			Metrics: v.GetString("addr-metrics"),
		},
	}, nil
}
