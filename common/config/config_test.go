package config

import (
	"os"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withPath(t *testing.T, p string) {
	old := Path
	Path = p
	t.Cleanup(func() {
		Path = old
	})
}

func TestReloadConfig_GeneratesDefault(t *testing.T) {
	p := path.Join(t.TempDir(), "portfolio-repo.yaml")
	withPath(t, p)

	c, err := reloadConfig()
	require.NoError(t, err)
	assert.FileExists(t, p)
	assert.Equal(t, 8000, c.General.Port)
	assert.Equal(t, "7d", c.Auth.TokenLifetime)
	assert.Equal(t, 12, c.Auth.BcryptCost)
	assert.Equal(t, 100, c.Auth.RateLimit.MaxRequests)
	assert.Equal(t, 60, c.Auth.RateLimit.WindowSeconds)
	assert.Equal(t, int64(5242880), c.Uploads.MaxImageBytes)
	assert.Equal(t, int64(10485760), c.Uploads.MaxDocumentBytes)
}

func TestReloadConfig_DirectoryMergesInOrder(t *testing.T) {
	dir := t.TempDir()
	withPath(t, dir)

	require.NoError(t, os.WriteFile(path.Join(dir, "00-base.yaml"), []byte("repo:\n  port: 9001\n  bindAddress: 0.0.0.0\n"), 0644))
	require.NoError(t, os.WriteFile(path.Join(dir, "10-override.yaml"), []byte("repo:\n  port: 9002\nauth:\n  allowRegistration: false\n"), 0644))

	c, err := reloadConfig()
	require.NoError(t, err)
	assert.Equal(t, 9002, c.General.Port)
	assert.Equal(t, "0.0.0.0", c.General.BindAddress)
	assert.False(t, c.Auth.AllowRegistration)
	assert.True(t, c.Auth.RateLimit.Enabled)
}

func TestReloadConfig_EnvironmentOverrides(t *testing.T) {
	p := path.Join(t.TempDir(), "config.yaml")
	withPath(t, p)
	require.NoError(t, os.WriteFile(p, []byte("database:\n  type: memory\n"), 0644))

	t.Setenv("DATABASE_URL", "postgres://env@localhost/portfolio")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("JWT_EXPIRES_IN", "12h")
	t.Setenv("APP_URL", "https://portfolio.example.org/")
	t.Setenv("S3_BUCKET", "uploads")
	t.Setenv("S3_ENDPOINT", "s3.example.org")

	c, err := reloadConfig()
	require.NoError(t, err)
	assert.Equal(t, DatabaseTypePostgres, c.Database.Type)
	assert.Equal(t, "postgres://env@localhost/portfolio", c.Database.Postgres)
	assert.Equal(t, "from-env", c.Auth.JwtSecret)
	assert.Equal(t, 12*time.Hour, c.Auth.TokenLifetimeDuration())
	assert.Equal(t, "https://portfolio.example.org", c.General.PublicBaseUrl)
	assert.Equal(t, DatastoreTypeS3, c.Uploads.Datastore.Type)
	assert.Equal(t, "uploads", c.Uploads.Datastore.Options["bucketName"])
	assert.Equal(t, "s3.example.org", c.Uploads.Datastore.Options["endpoint"])
}

func TestReloadConfig_RejectsBadValues(t *testing.T) {
	p := path.Join(t.TempDir(), "config.yaml")
	withPath(t, p)

	require.NoError(t, os.WriteFile(p, []byte("auth:\n  tokenLifetime: forever\n"), 0644))
	_, err := reloadConfig()
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(p, []byte("database:\n  type: sqlite\n"), 0644))
	_, err = reloadConfig()
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(p, []byte("uploads:\n  datastore:\n    type: ipfs\n"), 0644))
	_, err = reloadConfig()
	assert.Error(t, err)
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	f := path.Join(dir, ".env")
	require.NoError(t, os.WriteFile(f, []byte("PORTFOLIO_TEST_VALUE=hello\n"), 0644))
	t.Cleanup(func() {
		_ = os.Unsetenv("PORTFOLIO_TEST_VALUE")
	})

	require.NoError(t, LoadEnvFiles(path.Join(dir, "missing.env"), f))
	assert.Equal(t, "hello", os.Getenv("PORTFOLIO_TEST_VALUE"))
}

func TestParseLifetime(t *testing.T) {
	cases := map[string]time.Duration{
		"7d":  7 * 24 * time.Hour,
		"1d":  24 * time.Hour,
		"12h": 12 * time.Hour,
		"90m": 90 * time.Minute,
	}
	for val, expected := range cases {
		d, err := ParseLifetime(val)
		assert.NoError(t, err, val)
		assert.Equal(t, expected, d, val)
	}

	for _, val := range []string{"", "d", "0d", "-1d", "week", "-5m"} {
		_, err := ParseLifetime(val)
		assert.Error(t, err, val)
	}
}

func TestChangedSections(t *testing.T) {
	a := NewDefaultMainConfig()
	b := NewDefaultMainConfig()
	assert.Empty(t, ChangedSections(&a, &b))

	b.General.Port = 8001
	b.Metrics.Enabled = true
	b.Uploads.NumWorkers = 8
	b.Redis.Enabled = true
	assert.ElementsMatch(t, []Section{SectionWeb, SectionMetrics, SectionWorkers, SectionRedis}, ChangedSections(&a, &b))

	c := NewDefaultMainConfig()
	c.Database.Pool = &DbPoolConfig{MaxConnections: 1, MaxIdle: 1}
	c.Uploads.Datastore.Options = map[string]string{"path": "/srv/media"}
	assert.ElementsMatch(t, []Section{SectionDatabase, SectionDatastore}, ChangedSections(&a, &c))
}
