// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/modelcontextprotocol/go-sdk/jsonrpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTrip writes request to the transport and reads the next message.
func roundTrip(t *testing.T, transport *InMemoryTransport, request any) map[string]any {
	t.Helper()

	var data []byte
	switch r := request.(type) {
	case string:
		data = []byte(r)
	default:
		var err error
		data, err = json.Marshal(r)
		require.NoError(t, err)
	}
	require.NoError(t, transport.WriteMessage(data))

	type readResult struct {
		data []byte
		err  error
	}
	ch := make(chan readResult, 1)
	go func() {
		d, err := transport.ReadMessage()
		ch <- readResult{d, err}
	}()

	select {
	case r := <-ch:
		require.NoError(t, r.err)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(r.data, &resp))
		return resp
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for response")
		return nil
	}
}

func newScaffoldTransport(t *testing.T) *InMemoryTransport {
	t.Helper()
	pinSettingsEnv(t)

	transport, err := NewTransportBuilder().
		WithVersion("1.0.0").
		WithDefaultTools().
		WithDefaultResources().
		WithDefaultPrompts().
		WithDefaultInstructions().
		BuildInMemoryTransport(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { transport.Close() })

	resp := roundTrip(t, transport, map[string]any{
		"jsonrpc": "2.0",
		"id":      0,
		"method":  "initialize",
		"params": map[string]any{
			"protocolVersion": mcp.LATEST_PROTOCOL_VERSION,
			"capabilities":    map[string]any{},
			"clientInfo":      map[string]any{"name": "adk", "version": "1.0.0"},
		},
	})
	require.Nil(t, resp["error"], "initialize failed: %v", resp["error"])
	return transport
}

func TestInMemoryTransport_JSONRPC(t *testing.T) {
	transport := newScaffoldTransport(t)

	tests := []struct {
		name      string
		request   any
		wantID    any
		wantCode  float64
		checkBody func(t *testing.T, result map[string]any)
	}{
		{
			name:    "ping",
			request: map[string]any{"jsonrpc": "2.0", "id": 1, "method": "ping"},
			wantID:  float64(1),
		},
		{
			name:    "tools/list",
			request: map[string]any{"jsonrpc": "2.0", "id": 2, "method": "tools/list"},
			wantID:  float64(2),
			checkBody: func(t *testing.T, result map[string]any) {
				assert.Len(t, result["tools"], 7)
			},
		},
		{
			name: "tools/call",
			request: map[string]any{
				"jsonrpc": "2.0", "id": "call-1", "method": "tools/call",
				"params": map[string]any{
					"name":      "generateEntity",
					"arguments": map[string]any{"entityName": "Order", "boundedContext": "orders"},
				},
			},
			wantID: "call-1",
			checkBody: func(t *testing.T, result map[string]any) {
				content := result["content"].([]any)
				require.NotEmpty(t, content)
				text := content[0].(map[string]any)["text"].(string)
				assert.Contains(t, text, "packages/domainlogic/orders/domain/src/domainmodel/Order.ts")
				assert.NotEqual(t, true, result["isError"])
			},
		},
		{
			name: "tools/call without name",
			request: map[string]any{
				"jsonrpc": "2.0", "id": 4, "method": "tools/call",
				"params": map[string]any{"arguments": map[string]any{}},
			},
			wantID:   float64(4),
			wantCode: codeInvalidParams,
		},
		{
			name: "tools/call with non-object arguments",
			request: map[string]any{
				"jsonrpc": "2.0", "id": 5, "method": "tools/call",
				"params": map[string]any{"name": "generateEntity", "arguments": "nope"},
			},
			wantID:   float64(5),
			wantCode: codeInvalidParams,
		},
		{
			name: "resources/read",
			request: map[string]any{
				"jsonrpc": "2.0", "id": 6, "method": "resources/read",
				"params": map[string]any{"uri": "info://version"},
			},
			wantID: float64(6),
			checkBody: func(t *testing.T, result map[string]any) {
				assert.Len(t, result["contents"], 1)
			},
		},
		{
			name: "prompts/get",
			request: map[string]any{
				"jsonrpc": "2.0", "id": 7, "method": "prompts/get",
				"params": map[string]any{
					"name":      "domain-service",
					"arguments": map[string]any{"serviceName": "placeOrder", "boundedContext": "orders"},
				},
			},
			wantID: float64(7),
			checkBody: func(t *testing.T, result map[string]any) {
				assert.NotEmpty(t, result["messages"])
			},
		},
		{
			name:     "unknown method",
			request:  map[string]any{"jsonrpc": "2.0", "id": 8, "method": "sampling/createMessage"},
			wantID:   float64(8),
			wantCode: codeMethodNotFound,
		},
		{
			name:     "missing method",
			request:  map[string]any{"jsonrpc": "2.0", "id": 9},
			wantID:   float64(9),
			wantCode: codeInvalidRequest,
		},
		{
			name:     "parse error",
			request:  "{not json",
			wantID:   nil,
			wantCode: codeParseError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := roundTrip(t, transport, tt.request)
			assert.Equal(t, tt.wantID, resp["id"])

			if tt.wantCode != 0 {
				errObj, ok := resp["error"].(map[string]any)
				require.True(t, ok, "expected error, got %v", resp)
				assert.Equal(t, tt.wantCode, errObj["code"])
				return
			}

			require.Nil(t, resp["error"])
			result, ok := resp["result"].(map[string]any)
			require.True(t, ok, "expected result object, got %v", resp["result"])
			if tt.checkBody != nil {
				tt.checkBody(t, result)
			}
		})
	}
}

func TestInMemoryTransport_ConnectTwice(t *testing.T) {
	pinSettingsEnv(t)
	s, err := NewServerBuilder().Build()
	require.NoError(t, err)

	transport := NewInMemoryTransport(context.Background())
	t.Cleanup(func() { transport.Close() })

	require.NoError(t, transport.ConnectServer(context.Background(), s))
	err = transport.ConnectServer(context.Background(), s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already connected")
}

func TestADKTransportConnection(t *testing.T) {
	transport := newScaffoldTransport(t)
	ctx := context.Background()

	conn, err := transport.Connect(ctx)
	require.NoError(t, err)
	assert.Equal(t, "in-memory-transport", conn.SessionID())

	msg, err := jsonrpc.DecodeMessage([]byte(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, msg))

	reply, err := conn.Read(ctx)
	require.NoError(t, err)
	resp, ok := reply.(*jsonrpc.Response)
	require.True(t, ok, "expected response, got %T", reply)
	assert.Nil(t, resp.Error)
	assert.Contains(t, string(resp.Result), "generateModule")

	require.NoError(t, conn.Close())

	_, err = conn.Read(ctx)
	assert.Error(t, err)
	assert.Error(t, conn.Write(ctx, msg))
}

func TestADKTransportBuilder(t *testing.T) {
	pinSettingsEnv(t)

	builder := NewADKTransportBuilder()
	assert.Equal(t, GetVersion(), builder.config.Version)
	assert.Equal(t, transportInMemory, builder.config.TransportType)
	assert.Empty(t, builder.config.MCPConfigFile)

	builder.WithVersion("2.0.0").WithMCPConfig("/custom/config.json")
	assert.Equal(t, "2.0.0", builder.config.Version)
	assert.Equal(t, "/custom/config.json", builder.config.MCPConfigFile)

	_, err := builder.BuildTransport(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load MCP config")

	builder.config.TransportType = "http"
	assert.Error(t, builder.ValidateConfig())
	assert.NoError(t, builder.WithInMemoryTransport().ValidateConfig())

	transport, err := builder.WithMCPConfig("").BuildTransport(context.Background())
	require.NoError(t, err)
	assert.NoError(t, transport.Close())
}
