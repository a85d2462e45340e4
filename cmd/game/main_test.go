package main

import (
	"testing"

	"go-defense-tower/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionsStartsFromMenu(t *testing.T) {
	opts, err := parseOptions(config.Env{BalancePath: "balance.yaml", Mute: true}, nil)
	require.NoError(t, err)

	assert.False(t, opts.skipMenu)
	assert.Equal(t, "balance.yaml", opts.balancePath)
	assert.True(t, opts.mute)
}

func TestParseOptionsOverridesEnv(t *testing.T) {
	opts, err := parseOptions(config.Env{Mute: true}, []string{"-skip-menu", "-mute=false", "-balance", "b.yaml"})
	require.NoError(t, err)

	assert.True(t, opts.skipMenu)
	assert.False(t, opts.mute)
	assert.Equal(t, "b.yaml", opts.balancePath)
}

func TestParseOptionsRejectsUnknownFlag(t *testing.T) {
	_, err := parseOptions(config.Env{}, []string{"-fullscreen"})
	assert.Error(t, err)
}
