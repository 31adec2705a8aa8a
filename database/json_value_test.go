package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/t2bot/portfolio-repo/types"
)

func TestJsonValue_NilPointerIsNull(t *testing.T) {
	var about *types.AboutContent
	v, err := jsonValue{about}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = jsonValue{nil}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestJsonValue_RoundTrip(t *testing.T) {
	about := &types.AboutContent{
		Title:       "About Me",
		Description: "Editor",
		Skills:      []types.Skill{{Title: "Cuts", Description: "Fast", Icon: "scissors"}},
	}
	v, err := jsonValue{about}.Value()
	require.NoError(t, err)

	var scanned *types.AboutContent
	require.NoError(t, jsonValue{&scanned}.Scan(v))
	assert.Equal(t, about, scanned)

	var fromString *types.AboutContent
	require.NoError(t, jsonValue{&fromString}.Scan(string(v.([]byte))))
	assert.Equal(t, about, fromString)
}

func TestJsonValue_ScanNullLeavesTarget(t *testing.T) {
	var contact *types.ContactContent
	require.NoError(t, jsonValue{&contact}.Scan(nil))
	assert.Nil(t, contact)

	assert.Error(t, jsonValue{&contact}.Scan(42))
}
