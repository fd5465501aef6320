package schema_test

import (
	"reflect"
	"testing"

	"github.com/effective-security/wayfarer/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lookupRequest struct {
	City string `json:"city" jsonschema:"title=city,description=The city to query."`
}

func Test_New(t *testing.T) {
	sc, err := schema.New(reflect.TypeOf(lookupRequest{}))
	require.NoError(t, err)
	require.NotNil(t, sc.Parameters)

	exp := `{
	"properties": {
		"city": {
			"type": "string",
			"title": "city",
			"description": "The city to query."
		}
	},
	"type": "object",
	"required": [
		"city"
	]
}`
	assert.Equal(t, exp, sc.String())

	// cached per type
	sc2, err := schema.New(reflect.TypeOf(lookupRequest{}))
	require.NoError(t, err)
	assert.Same(t, sc, sc2)
}
