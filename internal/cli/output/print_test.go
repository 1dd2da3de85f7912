package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"

	"pocket/internal/domain"
)

type greeting struct {
	Name string `json:"name"`
}

func (g greeting) RenderHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w, "hello %s\n", g.Name)
	return err
}

func TestPrintHumanUsesRenderer(t *testing.T) {
	t.Cleanup(ResetProcessExitCode)

	var out bytes.Buffer
	if err := Print(&out, FormatHuman, NewSuccessEnvelope("pocket", greeting{Name: "pocket"}, nil)); err != nil {
		t.Fatalf("print human: %v", err)
	}
	if out.String() != "hello pocket\n" {
		t.Fatalf("expected rendered line only, got %q", out.String())
	}
}

func TestPrintHumanFallsBackToJSONData(t *testing.T) {
	t.Cleanup(ResetProcessExitCode)

	var out bytes.Buffer
	if err := Print(&out, FormatHuman, NewSuccessEnvelope("pocket", map[string]any{"note": "unchanged"}, nil)); err != nil {
		t.Fatalf("print human: %v", err)
	}
	if !strings.Contains(out.String(), `"note": "unchanged"`) {
		t.Fatalf("expected json data fallback, got %s", out.String())
	}
}

func TestPrintHumanWarningsAndErrors(t *testing.T) {
	t.Cleanup(ResetProcessExitCode)

	env := NewErrorEnvelope("pocket add", CodeStoreWriteError, "store write failed", nil, []domain.Warning{
		{Code: "STORE_UNREADABLE", Message: "store unreadable"},
	})

	var out bytes.Buffer
	if err := Print(&out, FormatHuman, env); err != nil {
		t.Fatalf("print human: %v", err)
	}

	want := "warning[STORE_UNREADABLE]: store unreadable\nerror[STORE_WRITE_ERROR]: store write failed\n"
	if out.String() != want {
		t.Fatalf("expected %q, got %q", want, out.String())
	}
	if got := CurrentProcessExitCode(); got != 5 {
		t.Fatalf("expected exit code 5, got %d", got)
	}
}

func TestPrintJSONEnvelope(t *testing.T) {
	t.Cleanup(ResetProcessExitCode)

	var out bytes.Buffer
	if err := Print(&out, " JSON ", NewSuccessEnvelope("pocket", greeting{Name: "pocket"}, nil)); err != nil {
		t.Fatalf("print json: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(out.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal: %v raw=%s", err, out.String())
	}
	if ok, _ := payload["ok"].(bool); !ok {
		t.Fatalf("expected ok=true, got %v", payload)
	}
	data, _ := payload["data"].(map[string]any)
	if data["name"] != "pocket" {
		t.Fatalf("expected data.name=pocket, got %v", payload["data"])
	}
}

func TestPrintRejectsUnknownFormat(t *testing.T) {
	t.Cleanup(ResetProcessExitCode)

	if err := Print(&bytes.Buffer{}, "yaml", NewSuccessEnvelope("pocket", nil, nil)); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}
