// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Settings
	}{
		{
			name: "unset variables keep values",
			want: DefaultSettings(),
		},
		{
			name: "overrides",
			env: map[string]string{
				"BASIC_TYPES_FROM":               "@acme/types",
				"BOUNDED_CONTEXTS_PARENT_FOLDER": "libs",
			},
			want: Settings{
				BasicTypesFrom:              "@acme/types",
				BasicErrorTypesFrom:         DefaultRuntimePackage,
				BoundedContextsParentFolder: "libs",
				DynamoDBConfigurationFrom:   DefaultRuntimePackage,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got, err := DefaultSettings().FromEnv()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSettingsWithDefaults(t *testing.T) {
	got := Settings{DynamoDBConfigurationFrom: "./dynamo"}.WithDefaults()

	assert.Equal(t, "./dynamo", got.DynamoDBConfigurationFrom)
	assert.Equal(t, DefaultParentFolder, got.BoundedContextsParentFolder)
	assert.NoError(t, got.Validate())
}

func TestLocationFile(t *testing.T) {
	loc := DefaultSettings().at("orders", LayerApplication)

	assert.Equal(t, "packages/domainlogic/orders/application/test/Order.spec.ts", loc.file(folderTest, "Order.spec.ts"))
}

func TestComposite(t *testing.T) {
	assert.Equal(t, "'id'", composite(KeyDefinition{Field: "id"}))
	assert.Equal(t, "'tenant', 'id'", composite(KeyDefinition{Field: "pk", Composite: []string{"tenant", "id"}}))
}

func TestWatchLiteral(t *testing.T) {
	assert.Equal(t, "", watchLiteral(""))
	assert.Equal(t, "'*'", watchLiteral("*"))
	assert.Equal(t, "['status']", watchLiteral("status"))
}

func TestEquality(t *testing.T) {
	assert.Equal(t, "true", equality(nil))
}
