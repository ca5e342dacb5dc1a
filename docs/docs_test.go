package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocIsValidJSON(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed struct {
		Swagger string                    `json:"swagger"`
		Info    map[string]any            `json:"info"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))

	assert.Equal(t, "2.0", parsed.Swagger)
	assert.Equal(t, "Idea Board API", parsed.Info["title"])
	for path, method := range map[string]string{
		"/token":      "post",
		"/users/":     "post",
		"/users/me":   "get",
		"/users/{id}": "delete",
		"/ideas/":     "get",
		"/ideas/{id}": "delete",
		"/healthz":    "get",
	} {
		require.Contains(t, parsed.Paths, path)
		assert.Contains(t, parsed.Paths[path], method, path)
	}
}
