package cmd

import (
	"path/filepath"
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

func TestServerOptions_Defaults(t *testing.T) {
	cmd := newServerCmd()
	assert.NilError(t, cmd.ParseFlags(nil))

	options, err := serverOptions(cmd)
	assert.NilError(t, err)

	assert.Equal(t, options.SessionDuration, 12*time.Hour)
	assert.Equal(t, options.PasswordResetDuration, 1*time.Hour)
	assert.Equal(t, options.Addr.HTTP, ":8080")
	assert.Equal(t, options.Addr.Metrics, ":9090")
	assert.Equal(t, filepath.Base(options.DBFile), "sqlite3.db")
}

func TestServerOptions_FromFlags(t *testing.T) {
	cmd := newServerCmd()
	assert.NilError(t, cmd.ParseFlags([]string{
		"--addr-http", ":7070",
		"--password-reset-duration", "30m",
		"--redis-host", "cache.internal",
	}))

	options, err := serverOptions(cmd)
	assert.NilError(t, err)

	assert.Equal(t, options.Addr.HTTP, ":7070")
	assert.Equal(t, options.PasswordResetDuration, 30*time.Minute)
	assert.Equal(t, options.Redis.Host, "cache.internal")
	assert.Equal(t, options.Redis.Port, 6379)
}

func TestServerOptions_FromEnv(t *testing.T) {
	t.Setenv("VERIDIA_SERVER_DB_CONNECTION_STRING", "host=db.internal user=identity")
	t.Setenv("VERIDIA_SERVER_SENDGRID_API_KEY", "SG.fake")

	cmd := newServerCmd()
	assert.NilError(t, cmd.ParseFlags(nil))

	options, err := serverOptions(cmd)
	assert.NilError(t, err)

	assert.Equal(t, options.DBConnectionString, "host=db.internal user=identity")
	assert.Equal(t, options.Email.SendgridAPIKey, "SG.fake")
}
