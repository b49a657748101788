package cmd

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reservedFlags are registered by the dispatcher on every leaf; registry
// entries must not redeclare them.
var reservedFlags = map[string]bool{
	"limit":   true,
	"offset":  true,
	"all":     true,
	"format":  true,
	"verbose": true,
}

func TestRegistry_GroupNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, group := range registry {
		assert.False(t, seen[group.use], "duplicate group %q", group.use)
		seen[group.use] = true
		assert.NotEmpty(t, group.short)
	}
}

func TestRegistry_CommandsWellFormed(t *testing.T) {
	for _, group := range registry {
		seen := map[string]bool{}
		for _, spec := range group.commands {
			name := fmt.Sprintf("%s %s", group.use, spec.use)

			assert.False(t, seen[spec.use], "duplicate command %q", name)
			seen[spec.use] = true

			assert.NotEmpty(t, spec.short, "%s has no description", name)
			require.NotEmpty(t, spec.endpoint, "%s has no endpoint", name)
			assert.Contains(t, spec.endpoint, ".", "%s endpoint %q is not resource.operation", name, spec.endpoint)
			assert.False(t, strings.Contains(spec.endpoint, "/"), "%s endpoint %q contains a slash", name, spec.endpoint)
		}
	}
}

func TestRegistry_FlagsWellFormed(t *testing.T) {
	for _, group := range registry {
		for _, spec := range group.commands {
			name := fmt.Sprintf("%s %s", group.use, spec.use)
			seen := map[string]bool{}
			for _, f := range spec.flags {
				assert.False(t, seen[f.name], "%s declares --%s twice", name, f.name)
				seen[f.name] = true

				assert.NotEmpty(t, f.param, "%s --%s has no wire parameter", name, f.name)
				assert.NotEmpty(t, f.usage, "%s --%s has no usage text", name, f.name)
				assert.False(t, reservedFlags[f.name], "%s redeclares reserved --%s", name, f.name)
			}
		}
	}
}

func TestRegistry_KnownEntries(t *testing.T) {
	byUse := map[string]groupSpec{}
	for _, group := range registry {
		byUse[group.use] = group
	}

	docs, ok := byUse["documents"]
	require.True(t, ok)

	var search, importCmd, trash *commandSpec
	for i := range docs.commands {
		switch docs.commands[i].use {
		case "search":
			search = &docs.commands[i]
		case "import":
			importCmd = &docs.commands[i]
		case "empty-trash":
			trash = &docs.commands[i]
		}
	}

	require.NotNil(t, search)
	assert.Equal(t, "documents.search", search.endpoint)
	assert.True(t, search.paginated)

	require.NotNil(t, importCmd)
	// --data and --file both feed the data parameter; --file is declared
	// after --data so the file contents win when both are given.
	var dataIdx, fileIdx = -1, -1
	for i, f := range importCmd.flags {
		if f.param == "data" {
			if f.typ == flagFile {
				fileIdx = i
			} else {
				dataIdx = i
			}
		}
	}
	require.GreaterOrEqual(t, dataIdx, 0)
	require.GreaterOrEqual(t, fileIdx, 0)
	assert.Greater(t, fileIdx, dataIdx)

	require.NotNil(t, trash)
	assert.Equal(t, "documents.empty_trash", trash.endpoint)
	assert.Empty(t, trash.flags)

	shares, ok := byUse["shares"]
	require.True(t, ok)
	for _, spec := range shares.commands {
		if spec.use != "update" {
			continue
		}
		for _, f := range spec.flags {
			if f.name == "published" {
				assert.Equal(t, flagOptBool, f.typ, "shares update --published must only transmit when set")
			}
		}
	}
}
