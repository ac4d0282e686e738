// ABOUTME: Tests for MCP server creation and validation.
// ABOUTME: Verifies the server requires a session opener and applies options.
package mcp

import (
	"path/filepath"
	"testing"
)

func TestNewServerRequiresOpener(t *testing.T) {
	_, err := NewServer(nil)
	if err == nil {
		t.Error("expected error when opener is nil")
	}
}

func TestNewServerSuccess(t *testing.T) {
	server, err := NewServer(testOpener(filepath.Join(t.TempDir(), "j.json")))
	if err != nil {
		t.Fatalf("NewServer error: %v", err)
	}
	if server == nil {
		t.Fatal("expected non-nil server")
	}
	if server.newestFirst {
		t.Error("expected oldest-first by default")
	}
}

func TestNewServerWithNewestFirst(t *testing.T) {
	server, err := NewServer(testOpener(filepath.Join(t.TempDir(), "j.json")), WithNewestFirst(true))
	if err != nil {
		t.Fatalf("NewServer error: %v", err)
	}
	if !server.newestFirst {
		t.Error("expected newestFirst to be set")
	}
}
