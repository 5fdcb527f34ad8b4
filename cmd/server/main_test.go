package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestRootCommandSubcommands(t *testing.T) {
	root := newRootCommand()

	var names []string
	for _, cmd := range root.Commands {
		names = append(names, cmd.Name)
	}
	assert.ElementsMatch(t, []string{"serve", "migrate", "docs"}, names)
}

func TestDocsCommandRuns(t *testing.T) {
	root := newRootCommand()

	var docs *cli.Command
	for _, cmd := range root.Commands {
		if cmd.Name == "docs" {
			docs = cmd
		}
	}
	require.NotNil(t, docs)
	assert.NoError(t, docs.Action(context.Background(), docs))
}
