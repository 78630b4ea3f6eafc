// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/modelcontextprotocol/go-sdk/jsonrpc"
	mcptransport "github.com/modelcontextprotocol/go-sdk/mcp"

	jsonrpcInternal "github.com/mattes3/mcp4ddd/src/internal/helper/jsonrpc"
)

// JSON-RPC 2.0 error codes used by the bridge.
const (
	codeParseError     = -32700
	codeInvalidRequest = -32600
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeInternalError  = -32603
)

// errInvalidParams marks request errors answered with codeInvalidParams.
var errInvalidParams = errors.New("invalid params")

// errMethodNotFound marks requests for methods the bridge does not forward.
var errMethodNotFound = errors.New("method not supported")

// jsonRPCError represents a JSON-RPC 2.0 error object
type jsonRPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// jsonRPCResponse represents a JSON-RPC 2.0 response object
type jsonRPCResponse struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      any           `json:"id"`
	Result  any           `json:"result,omitempty"`
	Error   *jsonRPCError `json:"error,omitempty"`
}

// methodHandler forwards the params of one JSON-RPC method to the client.
type methodHandler func(t *InMemoryTransport, params map[string]any) (any, error)

// methodHandlers maps the forwarded MCP methods to their handlers.
var methodHandlers = map[string]methodHandler{
	string(mcp.MethodInitialize):    (*InMemoryTransport).initialize,
	string(mcp.MethodPing):          (*InMemoryTransport).ping,
	string(mcp.MethodToolsList):     (*InMemoryTransport).listTools,
	string(mcp.MethodToolsCall):     (*InMemoryTransport).callTool,
	string(mcp.MethodResourcesList): (*InMemoryTransport).listResources,
	string(mcp.MethodResourcesRead): (*InMemoryTransport).readResource,
	string(mcp.MethodPromptsList):   (*InMemoryTransport).listPrompts,
	string(mcp.MethodPromptsGet):    (*InMemoryTransport).getPrompt,
}

// InMemoryTransport implements the ADK SDK mcp.Transport interface.
// It bridges between [Official MCP SDK] transport expectations and a
// [mark3labs/mcp-go] in-process client.
//
// [mark3labs/mcp-go]: https://pkg.go.dev/github.com/mark3labs/mcp-go
// [Official MCP SDK]: https://pkg.go.dev/github.com/modelcontextprotocol/go-sdk
type InMemoryTransport struct {
	client     *client.Client // mark3labs in-process client
	started    bool
	mu         sync.Mutex
	recvCh     chan []byte // messages for ReadMessage
	sendCh     chan []byte // messages from WriteMessage
	ctx        context.Context
	cancel     context.CancelFunc
	sem        chan struct{}  // limits concurrent requests
	shutdownWg sync.WaitGroup // in-flight requests
	processWg  sync.WaitGroup // message processing loop
}

// NewInMemoryTransport creates a new in-memory transport that implements mcp.Transport.
// It is designed to work with ADK's [mcptoolset.New] expectations.
func NewInMemoryTransport(ctx context.Context) *InMemoryTransport {
	ctx, cancel := context.WithCancel(ctx)
	return &InMemoryTransport{
		recvCh: make(chan []byte, 1),
		sendCh: make(chan []byte, 1),
		ctx:    ctx,
		cancel: cancel,
		sem:    make(chan struct{}, 100),
	}
}

// SendJSONRPCNotification sends a JSON-RPC notification to the receive channel.
func (t *InMemoryTransport) SendJSONRPCNotification(method string, params any) {
	t.sendResponse(map[string]any{
		"jsonrpc": mcp.JSONRPC_VERSION,
		"method":  method,
		"params":  params,
	})
}

// ReadMessage blocks until a message for the ADK side is available or the
// transport is closed, in which case it returns io.EOF.
func (t *InMemoryTransport) ReadMessage() ([]byte, error) {
	select {
	case msg := <-t.recvCh:
		return msg, nil
	case <-t.ctx.Done():
		return nil, io.EOF
	}
}

// WriteMessage queues a JSON-RPC message from the ADK side.
func (t *InMemoryTransport) WriteMessage(data []byte) error {
	if err := t.ctx.Err(); err != nil {
		return err
	}
	select {
	case t.sendCh <- data:
		return nil
	case <-t.ctx.Done():
		return t.ctx.Err()
	}
}

// Close stops message processing and waits for in-flight requests.
func (t *InMemoryTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
	}

	t.processWg.Wait()
	t.shutdownWg.Wait()

	// Channels stay open; goroutines exit on context cancellation.
	t.started = false
	return nil
}

// Connect implements the ADK SDK mcp.Transport interface.
func (t *InMemoryTransport) Connect(ctx context.Context) (mcptransport.Connection, error) {
	return &ADKTransportConnection{transport: t}, nil
}

// ConnectServer connects a mark3labs MCP server to this transport using an
// in-process client and forwards server notifications to the ADK side.
func (t *InMemoryTransport) ConnectServer(ctx context.Context, srv *server.MCPServer) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return fmt.Errorf("transport already connected")
	}

	c, err := client.NewInProcessClient(srv)
	if err != nil {
		return fmt.Errorf("failed to create in-process client: %w", err)
	}
	t.client = c

	t.client.OnNotification(func(n mcp.JSONRPCNotification) {
		t.SendJSONRPCNotification(n.Method, n.Params)
	})

	if err := t.client.Start(t.ctx); err != nil {
		return fmt.Errorf("failed to start client: %w", err)
	}

	t.processWg.Add(1)
	go t.processMessages()

	t.started = true
	return nil
}

// processMessages dispatches queued messages until the transport is closed.
// Each request is handled in its own goroutine so a slow tool call does not
// hold up pings or other requests.
func (t *InMemoryTransport) processMessages() {
	defer t.processWg.Done()

	for {
		select {
		case <-t.ctx.Done():
			return
		case data := <-t.sendCh:
			select {
			case t.sem <- struct{}{}:
				t.shutdownWg.Add(1)
				go func(data []byte) {
					defer func() {
						<-t.sem
						t.shutdownWg.Done()
					}()
					t.handleMessage(data)
				}(data)
			case <-t.ctx.Done():
				return
			}
		}
	}
}

// handleMessage answers one raw JSON-RPC message.
func (t *InMemoryTransport) handleMessage(data []byte) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.sendResponse(jsonRPCResponse{
			JSONRPC: mcp.JSONRPC_VERSION,
			Error:   &jsonRPCError{Code: codeParseError, Message: "Parse error"},
		})
		return
	}

	req := jsonrpcInternal.Map(raw)
	id := req["id"]

	method, ok := req["method"].(string)
	if !ok {
		// Responses from the ADK side carry no method and need no answer.
		if id != nil && req["result"] == nil && req["error"] == nil {
			t.sendError(id, codeInvalidRequest, fmt.Errorf("invalid method: expected string, got %T", req["method"]))
		}
		return
	}

	handler, known := methodHandlers[method]
	if id == nil {
		// Notifications such as notifications/initialized need no action here.
		return
	}
	if !known {
		t.sendError(id, codeMethodNotFound, fmt.Errorf("%w: %s", errMethodNotFound, method))
		return
	}

	params, _ := req["params"].(map[string]any)
	result, err := handler(t, params)
	if err != nil {
		code := codeInternalError
		if errors.Is(err, errInvalidParams) {
			code = codeInvalidParams
		}
		t.sendError(id, code, err)
		return
	}

	t.sendResponse(jsonRPCResponse{JSONRPC: mcp.JSONRPC_VERSION, ID: id, Result: result})
}

// sendError answers request id with a JSON-RPC error.
func (t *InMemoryTransport) sendError(id any, code int, err error) {
	t.sendResponse(jsonRPCResponse{
		JSONRPC: mcp.JSONRPC_VERSION,
		ID:      id,
		Error:   &jsonRPCError{Code: code, Message: err.Error()},
	})
}

func (t *InMemoryTransport) initialize(params map[string]any) (any, error) {
	protocolVersion, err := getStringParam(params, string(mcp.MethodInitialize), "protocolVersion")
	if err != nil {
		return nil, err
	}

	var capabilities mcp.ClientCapabilities
	if caps, ok := params["capabilities"]; ok {
		_ = jsonrpcInternal.UnmarshalFromMap(caps, &capabilities)
	}

	var clientInfo mcp.Implementation
	if info, ok := params["clientInfo"]; ok {
		_ = jsonrpcInternal.UnmarshalFromMap(info, &clientInfo)
	}

	resp, err := t.client.Initialize(t.ctx, mcp.InitializeRequest{
		Params: mcp.InitializeParams{
			ProtocolVersion: protocolVersion,
			Capabilities:    capabilities,
			ClientInfo:      clientInfo,
		},
	})
	if err != nil {
		if mcp.IsUnsupportedProtocolVersion(err) {
			return nil, fmt.Errorf("unsupported protocol version: %w", err)
		}
		return nil, err
	}
	return resp, nil
}

func (t *InMemoryTransport) ping(map[string]any) (any, error) {
	if err := t.client.Ping(t.ctx); err != nil {
		return nil, err
	}
	return map[string]any{}, nil
}

func (t *InMemoryTransport) listTools(params map[string]any) (any, error) {
	req := mcp.ListToolsRequest{}
	if cursor, err := getOptionalStringParam(params, string(mcp.MethodToolsList), "cursor"); err == nil {
		req.Params.Cursor = mcp.Cursor(cursor)
	}
	return t.client.ListTools(t.ctx, req)
}

func (t *InMemoryTransport) callTool(params map[string]any) (any, error) {
	method := string(mcp.MethodToolsCall)
	name, err := getStringParam(params, method, "name")
	if err != nil {
		return nil, err
	}
	args, err := getMapParam(params, method, "arguments")
	if err != nil {
		return nil, err
	}

	return t.client.CallTool(t.ctx, mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	})
}

func (t *InMemoryTransport) listResources(params map[string]any) (any, error) {
	req := mcp.ListResourcesRequest{}
	if cursor, err := getOptionalStringParam(params, string(mcp.MethodResourcesList), "cursor"); err == nil {
		req.Params.Cursor = mcp.Cursor(cursor)
	}
	return t.client.ListResources(t.ctx, req)
}

func (t *InMemoryTransport) readResource(params map[string]any) (any, error) {
	uri, err := getStringParam(params, string(mcp.MethodResourcesRead), "uri")
	if err != nil {
		return nil, err
	}
	return t.client.ReadResource(t.ctx, mcp.ReadResourceRequest{
		Params: mcp.ReadResourceParams{URI: uri},
	})
}

func (t *InMemoryTransport) listPrompts(params map[string]any) (any, error) {
	req := mcp.ListPromptsRequest{}
	if cursor, err := getOptionalStringParam(params, string(mcp.MethodPromptsList), "cursor"); err == nil {
		req.Params.Cursor = mcp.Cursor(cursor)
	}
	return t.client.ListPrompts(t.ctx, req)
}

func (t *InMemoryTransport) getPrompt(params map[string]any) (any, error) {
	name, err := getStringParam(params, string(mcp.MethodPromptsGet), "name")
	if err != nil {
		return nil, err
	}

	var arguments map[string]string
	if args, ok := params["arguments"].(map[string]any); ok {
		arguments = make(map[string]string, len(args))
		for k, v := range args {
			arguments[k] = fmt.Sprint(v)
		}
	}

	return t.client.GetPrompt(t.ctx, mcp.GetPromptRequest{
		Params: mcp.GetPromptParams{Name: name, Arguments: arguments},
	})
}

// sendResponse marshals resp onto the receive channel. It is dropped once the
// transport is closed.
func (t *InMemoryTransport) sendResponse(resp any) {
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	select {
	case t.recvCh <- data:
	case <-t.ctx.Done():
	}
}

// ADKTransportConnection wraps InMemoryTransport for the ADK SDK.
type ADKTransportConnection struct {
	transport *InMemoryTransport
}

// Read implements [mcptransport.Connection.Read].
func (c *ADKTransportConnection) Read(ctx context.Context) (jsonrpc.Message, error) {
	data, err := c.transport.ReadMessage()
	if err != nil {
		return nil, err
	}

	msg, err := jsonrpc.DecodeMessage(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode JSON-RPC message: %w", err)
	}
	return msg, nil
}

// Write implements [mcptransport.Connection.Write].
func (c *ADKTransportConnection) Write(ctx context.Context, msg jsonrpc.Message) error {
	data, err := jsonrpc.EncodeMessage(msg)
	if err != nil {
		return err
	}
	return c.transport.WriteMessage(data)
}

// Close implements [mcptransport.Connection.Close].
func (c *ADKTransportConnection) Close() error {
	return c.transport.Close()
}

// SessionID implements [mcptransport.Connection.SessionID].
func (c *ADKTransportConnection) SessionID() string {
	return "in-memory-transport"
}

// TransportBuilder builds the scaffolding server and connects it to an
// in-memory transport for embedding scenarios such as Google ADK.
type TransportBuilder struct {
	serverBuilder *ServerBuilder
}

// NewTransportBuilder creates a new transport builder
func NewTransportBuilder() *TransportBuilder {
	return &TransportBuilder{serverBuilder: NewServerBuilder()}
}

// WithConfig sets the server configuration
func (tb *TransportBuilder) WithConfig(config *Config) *TransportBuilder {
	tb.serverBuilder.WithConfig(config)
	return tb
}

// WithVersion sets the server version
func (tb *TransportBuilder) WithVersion(version string) *TransportBuilder {
	tb.serverBuilder.WithVersion(version)
	return tb
}

// WithDefaultTools adds the scaffolding tools
func (tb *TransportBuilder) WithDefaultTools() *TransportBuilder {
	tb.serverBuilder.WithDefaultTools()
	return tb
}

// WithDefaultResources adds the default resources
func (tb *TransportBuilder) WithDefaultResources() *TransportBuilder {
	tb.serverBuilder.WithDefaultResources()
	return tb
}

// WithDefaultPrompts adds the default prompts
func (tb *TransportBuilder) WithDefaultPrompts() *TransportBuilder {
	tb.serverBuilder.WithDefaultPrompts()
	return tb
}

// WithDefaultInstructions renders the default instructions
func (tb *TransportBuilder) WithDefaultInstructions() *TransportBuilder {
	tb.serverBuilder.WithDefaultInstructions()
	return tb
}

// BuildInMemoryTransport builds the server and returns a connected
// transport for use with [mcptoolset.New].
func (tb *TransportBuilder) BuildInMemoryTransport(ctx context.Context) (*InMemoryTransport, error) {
	srv, err := tb.serverBuilder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build server: %w", err)
	}

	transport := NewInMemoryTransport(ctx)
	if err := transport.ConnectServer(ctx, srv); err != nil {
		return nil, fmt.Errorf("failed to connect server to transport: %w", err)
	}
	return transport, nil
}
