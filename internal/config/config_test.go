package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("APP_PORT", "9090")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	assert.Equal(t, "farmdash", cfg.MongoDB.DBName)
	assert.Equal(t, "0 20 * * *", cfg.Reporting.CronSchedule)
	assert.False(t, cfg.Sheets.Enabled())
}

func TestLoadRequiresMongoURI(t *testing.T) {
	t.Setenv("MONGODB_URI", "")

	_, err := Load("")
	assert.Error(t, err)
}

func TestValidateRejectsHalfConfiguredSheets(t *testing.T) {
	cfg := &Config{
		Server:    ServerConfig{Port: "8080"},
		MongoDB:   MongoDBConfig{URI: "mongodb://localhost:27017", DBName: "farmdash"},
		Reporting: ReportingConfig{CronSchedule: "0 20 * * *", Timezone: "UTC"},
		Sheets:    SheetsConfig{CredentialsPath: "/tmp/creds.json"},
	}
	assert.Error(t, cfg.Validate())

	cfg.Sheets.SpreadsheetID = "sheet-id"
	assert.NoError(t, cfg.Validate())
}

func TestSheetsEnabled(t *testing.T) {
	assert.False(t, SheetsConfig{}.Enabled())
	assert.False(t, SheetsConfig{CredentialsPath: "x"}.Enabled())
	assert.True(t, SheetsConfig{CredentialsPath: "x", SpreadsheetID: "y"}.Enabled())
}
