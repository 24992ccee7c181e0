package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllTools_Schemas(t *testing.T) {
	all := GetAllTools()

	byName := map[string]map[string]interface{}{}
	for _, tool := range all {
		assert.Equal(t, "function", tool.Type)
		assert.NotEmpty(t, tool.Function.Description)
		assert.Equal(t, "object", tool.Function.Parameters["type"])
		byName[tool.Function.Name] = tool.Function.Parameters
	}

	require.Len(t, byName, 3)
	require.Contains(t, byName, ToolGetAccessToken)
	require.Contains(t, byName, ToolSearchSubredditNames)
	require.Contains(t, byName, ToolGetAuthorizeURL)

	search := byName[ToolSearchSubredditNames]
	props, ok := search["properties"].(map[string]interface{})
	require.True(t, ok)
	for _, name := range []string{"query", "exact", "include_over_18", "include_unadvertisable", "type_ahead", "access_token"} {
		assert.Contains(t, props, name)
	}
	assert.ElementsMatch(t, []string{"query", "access_token"}, search["required"])

	tokenProps, ok := byName[ToolGetAccessToken]["properties"].(map[string]interface{})
	require.True(t, ok)
	assert.Empty(t, tokenProps)
}
