package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunCmd_RequiredFlagsAreRegistered(t *testing.T) {
	assert.NotNil(t, runCmd.Flags().Lookup("config"))
	assert.NotNil(t, runCmd.Flags().Lookup("userstate"))
}

func TestRunCmd_DefaultLogLevel(t *testing.T) {
	flag := runCmd.Flags().Lookup("log")
	assert.NotNil(t, flag)
	assert.Equal(t, "info", flag.DefValue)
}

func TestRunCmd_DefaultStartIdx(t *testing.T) {
	flag := runCmd.Flags().Lookup("start-idx")
	assert.NotNil(t, flag)
	assert.Equal(t, "0", flag.DefValue)
}
