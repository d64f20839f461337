package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestDocumentListsItemRoutes(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	for _, path := range []string{"/guests/{id}", "/gifts/{id}", "/wishes/{id}", "/gallery/{id}"} {
		require.Contains(t, doc.Paths, path)
		for _, method := range []string{"get", "put", "patch", "delete"} {
			assert.Contains(t, doc.Paths[path], method, path)
		}
	}
	assert.Contains(t, doc.Definitions, "serializers.GiftInput")
}
