// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package format_test

import (
	"testing"

	"github.com/mattes3/mcp4ddd/src/internal/scaffold/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var transferParams = []format.Field{
	{Name: "fromAccount", Type: "Account"},
	{Name: "toAccount", Type: "Account"},
	{Name: "amount", Type: "Money"},
}

func TestParameterFormatting(t *testing.T) {
	tests := []struct {
		name   string
		fields []format.Field
		fn     func([]format.Field) string
		want   string
	}{
		{"list", transferParams, format.ParameterList, "fromAccount: Account, toAccount: Account, amount: Money"},
		{"list empty", nil, format.ParameterList, ""},
		{"any typed", transferParams, format.AnyTypedParameterList, "fromAccount: any, toAccount: any, amount: any"},
		{"names", transferParams, format.ParameterNames, "fromAccount, toAccount, amount"},
		{"destructured", []format.Field{{Name: "userId", Type: "string"}}, format.Destructured, "{ userId }"},
		{"destructured empty", nil, format.Destructured, "{  }"},
		{"params object", []format.Field{{Name: "name", Type: "string"}}, format.ParamsObject, "params: { name: string }"},
		{"params object empty", nil, format.ParamsObject, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.fields))
		})
	}
}

func TestZodType(t *testing.T) {
	tests := map[string]string{
		"string":    "string",
		"number":    "number",
		"boolean":   "boolean",
		"Date":      "date",
		"Money":     "unknown",
		"string[]":  "unknown",
		"":          "unknown",
		" number  ": "number",
	}

	for in, want := range tests {
		assert.Equal(t, want, format.ZodType(in), "ZodType(%q)", in)
	}
}

func TestZodFields(t *testing.T) {
	got := format.ZodFields([]format.Field{
		{Name: "amount", Type: "number"},
		{Name: "from", Type: "Account"},
	})
	assert.Equal(t, []string{"amount: z.number()", "from: z.unknown()"}, got)
}

func TestMethodSignature(t *testing.T) {
	m := format.Method{Name: "close", Parameters: []format.Field{{Name: "absolute", Type: "boolean"}}}
	assert.Equal(t, "void", m.Result())
	assert.Equal(t, "close(absolute: boolean): void", m.Signature())

	m.ResultType = "Order[]"
	assert.Equal(t, "close(absolute: boolean): Order[]", m.Signature())
}

func TestNormalizeMethodsDoesNotMutateInput(t *testing.T) {
	in := []format.Method{{Name: "findAll"}}
	out := format.NormalizeMethods(in)

	require.Len(t, out, 1)
	assert.Equal(t, "void", out[0].ResultType)
	assert.NotNil(t, out[0].Parameters)
	assert.Empty(t, in[0].ResultType)
	assert.Nil(t, in[0].Parameters)
}

func TestMethodViews(t *testing.T) {
	views := format.MethodViews([]format.Method{
		{Name: "findByUserId", Parameters: []format.Field{{Name: "userId", Type: "string"}}, ResultType: "Order[]"},
		{Name: "findPendingOrders"},
	})

	require.Len(t, views, 2)
	assert.Equal(t, "{ userId }", views[0]["destructured"])
	assert.Equal(t, "params: { userId: string }", views[0]["paramsObject"])
	assert.Equal(t, "Order[]", views[0]["resultType"])
	assert.Equal(t, "{  }", views[1]["destructured"])
	assert.Equal(t, "void", views[1]["resultType"])
	assert.Equal(t, "findPendingOrders(): void", views[1]["signature"])
}

func TestValueObjectImports(t *testing.T) {
	fields := []format.Field{
		{Name: "items", Type: "OrderItem[]", ValueObject: true},
		{Name: "total", Type: "Money", ValueObject: true},
		{Name: "discount", Type: "Money", ValueObject: true},
		{Name: "note", Type: "string"},
		{Name: "matrix", Type: "Cell[][]", ValueObject: true},
	}

	assert.Equal(t, []string{"OrderItem", "Money", "Cell"}, format.ValueObjectImports(fields))
	assert.Empty(t, format.ValueObjectImports(nil))
}

func TestHasField(t *testing.T) {
	fields := []format.Field{{Name: "id", Type: "string"}}
	assert.True(t, format.HasField(fields, "id"))
	assert.False(t, format.HasField(fields, "name"))
}
