package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvValuesReachFlagVariables(t *testing.T) {
	t.Setenv("SOLSCRAPE_INCLUDE_TEST", "true")
	t.Setenv("SOLSCRAPE_LANG", "go")
	t.Setenv("SOLSCRAPE_NO_HEADERS", "true")
	t.Cleanup(func() {
		includeTest = false
		langName = "solidity"
		noHeaders = false
	})

	initConfig()

	assert.True(t, includeTest)
	assert.True(t, noHeaders)
	assert.Equal(t, "go", langName)
}

func TestExplicitFlagBeatsEnv(t *testing.T) {
	t.Setenv("SOLSCRAPE_LANG", "go")
	require.NoError(t, rootCmd.Flags().Set("lang", "rust"))
	t.Cleanup(func() { langName = "solidity" })

	initConfig()

	assert.Equal(t, "rust", langName)
}
