package lsp

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/leapstack-labs/mysqlparse/internal/testutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// session builds the framed client side of a conversation.
type session struct {
	buf    bytes.Buffer
	nextID int
}

func (c *session) request(method string, params any) int {
	c.nextID++
	c.write(map[string]any{"jsonrpc": "2.0", "id": c.nextID, "method": method, "params": params})
	return c.nextID
}

func (c *session) notify(method string, params any) {
	c.write(map[string]any{"jsonrpc": "2.0", "method": method, "params": params})
}

func (c *session) write(msg map[string]any) {
	body, _ := json.Marshal(msg)
	fmt.Fprintf(&c.buf, "Content-Length: %d\r\n\r\n%s", len(body), body)
}

// run feeds the session to a fresh server and returns everything it wrote.
func run(t *testing.T, c *session) []JSONRPCMessage {
	t.Helper()
	var out bytes.Buffer
	s := NewServerWithLogger(&c.buf, &out, testutil.NewTestLogger(t))
	require.NoError(t, s.Run())
	return readFrames(t, &out)
}

func readFrames(t *testing.T, r io.Reader) []JSONRPCMessage {
	t.Helper()
	br := bufio.NewReader(r)
	var msgs []JSONRPCMessage
	for {
		line, err := br.ReadString('\n')
		if err == io.EOF {
			return msgs
		}
		require.NoError(t, err)
		n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "Content-Length: ")))
		require.NoError(t, err)
		_, err = br.ReadString('\n')
		require.NoError(t, err)
		body := make([]byte, n)
		_, err = io.ReadFull(br, body)
		require.NoError(t, err)

		var msg JSONRPCMessage
		require.NoError(t, json.Unmarshal(body, &msg))
		msgs = append(msgs, msg)
	}
}

func response(t *testing.T, msgs []JSONRPCMessage, id int) JSONRPCMessage {
	t.Helper()
	for _, m := range msgs {
		if m.ID != nil && string(*m.ID) == strconv.Itoa(id) {
			return m
		}
	}
	t.Fatalf("no response for request %d", id)
	return JSONRPCMessage{}
}

func notifications(msgs []JSONRPCMessage, method string) []JSONRPCMessage {
	var out []JSONRPCMessage
	for _, m := range msgs {
		if m.ID == nil && m.Method == method {
			out = append(out, m)
		}
	}
	return out
}

func openDoc(c *session, uri, text string) {
	c.notify("textDocument/didOpen", DidOpenTextDocumentParams{
		TextDocument: TextDocumentItem{URI: uri, LanguageID: "sql", Version: 1, Text: text},
	})
}

func TestServer_Lifecycle(t *testing.T) {
	c := &session{}
	initID := c.request("initialize", map[string]any{"processId": 1, "rootUri": "file:///work"})
	c.notify("initialized", map[string]any{})
	shutdownID := c.request("shutdown", nil)
	c.notify("exit", nil)

	msgs := run(t, c)

	initResp := response(t, msgs, initID)
	require.Nil(t, initResp.Error)
	var result InitializeResult
	require.NoError(t, json.Unmarshal(initResp.Result, &result))
	assert.Equal(t, TextDocumentSyncKindFull, result.Capabilities.TextDocumentSync.Change)
	assert.True(t, result.Capabilities.HoverProvider)
	require.NotNil(t, result.ServerInfo)
	assert.Equal(t, "mysqlparse", result.ServerInfo.Name)

	shown := notifications(msgs, "window/showMessage")
	require.Len(t, shown, 1)
	assert.Contains(t, string(shown[0].Params), "8.0.19")

	assert.Nil(t, response(t, msgs, shutdownID).Error)
}

func TestServer_RequestBeforeInitialize(t *testing.T) {
	c := &session{}
	id := c.request("textDocument/hover", HoverParams{})

	msgs := run(t, c)

	resp := response(t, msgs, id)
	require.NotNil(t, resp.Error)
	assert.Equal(t, codeServerNotInitialized, resp.Error.Code)
}

func TestServer_UnknownMethod(t *testing.T) {
	c := &session{}
	c.request("initialize", map[string]any{})
	id := c.request("workspace/symbol", map[string]any{})

	msgs := run(t, c)

	resp := response(t, msgs, id)
	require.NotNil(t, resp.Error)
	assert.Equal(t, codeMethodNotFound, resp.Error.Code)
}

func TestServer_InitializationOptions(t *testing.T) {
	c := &session{}
	c.request("initialize", map[string]any{"initializationOptions": map[string]any{"serverVersion": "5.7.30"}})
	openDoc(c, "file:///a.sql", "SELECT * FROM JSON_TABLE('[]', '$[*]' COLUMNS (a INT PATH '$')) AS jt")

	msgs := run(t, c)

	published := notifications(msgs, "textDocument/publishDiagnostics")
	require.Len(t, published, 1)
	var params PublishDiagnosticsParams
	require.NoError(t, json.Unmarshal(published[0].Params, &params))
	assert.Len(t, params.Diagnostics, 1)
}

func TestServer_InvalidInitializationOptions(t *testing.T) {
	c := &session{}
	id := c.request("initialize", map[string]any{"initializationOptions": map[string]any{"sqlMode": "NOPE"}})

	msgs := run(t, c)

	resp := response(t, msgs, id)
	require.NotNil(t, resp.Error)
	assert.Equal(t, codeInvalidParams, resp.Error.Code)
}

func TestServer_DiagnosticsFollowEdits(t *testing.T) {
	uri := "file:///work/q.sql"
	c := &session{}
	c.request("initialize", map[string]any{})
	openDoc(c, uri, "SELECT 1;\nSELECT 2 )")
	c.notify("textDocument/didChange", DidChangeTextDocumentParams{
		TextDocument:   VersionedTextDocumentIdentifier{TextDocumentIdentifier: TextDocumentIdentifier{URI: uri}, Version: 2},
		ContentChanges: []TextDocumentContentChangeEvent{{Text: "SELECT 1;\nSELECT 2;"}},
	})
	c.notify("textDocument/didClose", DidCloseTextDocumentParams{TextDocument: TextDocumentIdentifier{URI: uri}})

	msgs := run(t, c)

	published := notifications(msgs, "textDocument/publishDiagnostics")
	require.Len(t, published, 3)

	var first PublishDiagnosticsParams
	require.NoError(t, json.Unmarshal(published[0].Params, &first))
	require.Len(t, first.Diagnostics, 1)
	d := first.Diagnostics[0]
	assert.Equal(t, "Unexpected token: )", d.Message)
	assert.Equal(t, Range{Start: Position{Line: 1, Character: 9}, End: Position{Line: 1, Character: 10}}, d.Range)
	assert.Equal(t, DiagnosticSeverityError, d.Severity)
	assert.Equal(t, "mysqlparse", d.Source)

	for _, m := range published[1:] {
		var p PublishDiagnosticsParams
		require.NoError(t, json.Unmarshal(m.Params, &p))
		assert.NotNil(t, p.Diagnostics)
		assert.Empty(t, p.Diagnostics)
	}
}

func TestServer_CodeAction(t *testing.T) {
	uri := "file:///work/t.sql"
	c := &session{}
	c.request("initialize", map[string]any{})
	openDoc(c, uri, "CREATE TABLE t (a INT")
	id := c.request("textDocument/codeAction", CodeActionParams{TextDocument: TextDocumentIdentifier{URI: uri}})

	msgs := run(t, c)

	var actions []CodeAction
	require.NoError(t, json.Unmarshal(response(t, msgs, id).Result, &actions))
	require.Len(t, actions, 1)
	assert.Equal(t, "Insert ')'", actions[0].Title)
	edits := actions[0].Edit.Changes[uri]
	require.Len(t, edits, 1)
	end := Position{Line: 0, Character: 21}
	assert.Equal(t, TextEdit{Range: Range{Start: end, End: end}, NewText: ")"}, edits[0])
}

func TestServer_CompletionAndHover(t *testing.T) {
	uri := "file:///work/c.sql"
	c := &session{}
	c.request("initialize", map[string]any{})
	openDoc(c, uri, "SEL")
	complID := c.request("textDocument/completion", CompletionParams{
		TextDocumentPositionParams: TextDocumentPositionParams{TextDocument: TextDocumentIdentifier{URI: uri}, Position: Position{Character: 3}},
	})
	hoverID := c.request("textDocument/hover", HoverParams{
		TextDocumentPositionParams: TextDocumentPositionParams{TextDocument: TextDocumentIdentifier{URI: uri}, Position: Position{Character: 1}},
	})

	msgs := run(t, c)

	var list CompletionList
	require.NoError(t, json.Unmarshal(response(t, msgs, complID).Result, &list))
	var labels []string
	for _, item := range list.Items {
		labels = append(labels, item.Label)
	}
	assert.Equal(t, []string{"SELECT"}, labels)

	// "SEL" is not a keyword, so there is nothing to describe.
	assert.Equal(t, "null", string(response(t, msgs, hoverID).Result))
}

func TestServer_AfterShutdown(t *testing.T) {
	c := &session{}
	c.request("initialize", map[string]any{})
	c.request("shutdown", nil)
	id := c.request("textDocument/hover", HoverParams{})
	c.notify("exit", nil)
	c.request("shutdown", nil) // never read, the server has exited

	msgs := run(t, c)

	resp := response(t, msgs, id)
	require.NotNil(t, resp.Error)
	assert.Equal(t, codeInvalidRequest, resp.Error.Code)
	assert.Len(t, msgs, 3)
}
