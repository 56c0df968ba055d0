package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobRecordSchema_ValidJSON(t *testing.T) {
	data, err := os.ReadFile("job_record.schema.json")
	require.NoError(t, err, "should be able to read schema file")

	var v interface{}
	err = json.Unmarshal(data, &v)
	assert.NoError(t, err, "schema file should be valid JSON")
}

func TestJobRecordSchema_ValidJSONSchema(t *testing.T) {
	data, err := os.ReadFile("job_record.schema.json")
	require.NoError(t, err)

	var schemaObj map[string]interface{}
	err = json.Unmarshal(data, &schemaObj)
	require.NoError(t, err)

	_, hasType := schemaObj["type"]
	_, hasSchema := schemaObj["$schema"]
	_, hasProps := schemaObj["properties"]
	assert.True(t, hasType && hasSchema && hasProps,
		"schema should declare type, $schema, and properties")
}

func TestJobRecordSchema_MatchesEmbeddedCopy(t *testing.T) {
	authoring, err := os.ReadFile("job_record.schema.json")
	require.NoError(t, err)

	embedded, err := os.ReadFile(filepath.Join("..", "internal", "schemas", "job_record.schema.json"))
	require.NoError(t, err)

	assert.Equal(t, string(embedded), string(authoring),
		"authoring copy and embedded copy must stay in sync")
}
