package cmd

import (
	"bytes"
	"testing"

	goversion "github.com/hashicorp/go-version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionIsValidSemver(t *testing.T) {
	_, err := goversion.NewVersion(version)
	require.NoError(t, err)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	t.Cleanup(func() { versionCmd.SetOut(nil) })

	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "scalc version "+version+"\n", out.String())
}
