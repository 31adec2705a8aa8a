package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/t2bot/portfolio-repo/common/config"
	"github.com/t2bot/portfolio-repo/storage"
)

func run(t *testing.T, args ...string) (string, error) {
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseUrl(t *testing.T) {
	out, err := run(t, "parse-url", "https://instagram.com/p/XYZ789/")
	require.NoError(t, err)

	parsed := make(map[string]string)
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "instagram", parsed["platform"])
	assert.Equal(t, "XYZ789", parsed["contentId"])
	assert.Equal(t, "post", parsed["contentType"])
	assert.Equal(t, "https://www.instagram.com/p/XYZ789/embed", parsed["embedUrl"])
	assert.Equal(t, "https://picsum.photos/400/500?random=XYZ789&blur=0", parsed["previewThumbnailUrl"])
}

func TestParseUrl_RequiresArgument(t *testing.T) {
	_, err := run(t, "parse-url")
	assert.Error(t, err)
}

func TestCreateAdmin(t *testing.T) {
	c := config.NewDefaultMainConfig()
	c.Auth.AllowRegistration = false
	c.Auth.BcryptCost = 4
	config.Set(&c)
	storage.Set(storage.NewMemoryStores())

	out, err := run(t, "create-admin", "--email", "Owner@Example.org", "--password", "hunter22", "--first-name", "Owner")
	require.NoError(t, err)
	assert.Contains(t, out, "owner@example.org")

	_, err = run(t, "create-admin", "--email", "owner@example.org", "--password", "hunter22", "--first-name", "Owner")
	assert.Error(t, err)

	_, err = run(t, "create-admin", "--email", "x@example.org")
	assert.Error(t, err)
}

func TestMigrate_MemoryDatabase(t *testing.T) {
	c := config.NewDefaultMainConfig()
	c.Database.Type = config.DatabaseTypeMemory
	config.Set(&c)

	_, err := run(t, "migrate")
	assert.Error(t, err)
}
