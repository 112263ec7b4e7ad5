package boardtests

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/stretchr/testify/require"
)

// Response shapes are validated against JSON schemas rather than by spot
// checks on individual fields, so that a test asserting one field equality
// still notices when the rest of the resource comes back malformed. Schemas
// live in schemas/ and are compiled once at startup.

//go:embed schemas/*.json
var schemaFiles embed.FS

var responseSchemas = mustCompileSchemas()

func mustCompileSchemas() map[string]*jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	entries, err := schemaFiles.ReadDir("schemas")
	if err != nil {
		panic(fmt.Sprintf("could not read embedded schemas: %s", err))
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".json")
		f, err := schemaFiles.Open("schemas/" + entry.Name())
		if err != nil {
			panic(fmt.Sprintf("could not open embedded schema %s: %s", entry.Name(), err))
		}
		if err := compiler.AddResource(name+".json", f); err != nil {
			panic(fmt.Sprintf("could not add schema resource %s: %s", entry.Name(), err))
		}
		names = append(names, name)
	}
	schemas := make(map[string]*jsonschema.Schema, len(names))
	for _, name := range names {
		compiled, err := compiler.Compile(name + ".json")
		if err != nil {
			panic(fmt.Sprintf("schema %s does not compile: %s", name, err))
		}
		schemas[name] = compiled
	}
	return schemas
}

func validateShape(schemaName string, value interface{}) error {
	schema := responseSchemas[schemaName]
	if schema == nil {
		return fmt.Errorf("no such response schema %q", schemaName)
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("response value cannot be re-marshaled: %w", err)
	}
	var instance interface{}
	if err := json.Unmarshal(data, &instance); err != nil {
		return err
	}
	return schema.Validate(instance)
}

// RequireShape fails the test immediately if the value does not match the
// named response schema.
func (t *T) RequireShape(schemaName string, value interface{}) {
	if err := validateShape(schemaName, value); err != nil {
		require.Fail(t, "response shape mismatch",
			"value did not match schema %q: %s", schemaName, err)
	}
}

// RequirePageShape validates a paginated response: the envelope against the
// page schema and each element of data against the named item schema.
func (t *T) RequirePageShape(itemSchemaName string, page interface{}) {
	t.RequireShape("page", page)

	data, err := json.Marshal(page)
	require.NoError(t, err)
	var envelope struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(data, &envelope))
	for i, item := range envelope.Data {
		if err := validateShape(itemSchemaName, item); err != nil {
			require.Fail(t, "response shape mismatch",
				"data[%d] did not match schema %q: %s", i, itemSchemaName, err)
		}
	}
}
