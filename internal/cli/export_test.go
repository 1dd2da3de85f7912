package cli

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportWritesHeaderAndOneLinePerRecord(t *testing.T) {
	storePath := testStorePath(t)
	exportPath := filepath.Join(t.TempDir(), "expenses.csv")

	mustRunOK(t, storePath, "add", "12.50", "coffee", "food")
	mustRunOK(t, storePath, "add", "3.00", "bus", "transport")

	run := mustRunOK(t, storePath, "export", "--path", exportPath)
	if run.stdout != "Exported to "+exportPath+"\n" {
		t.Fatalf("unexpected confirmation %q", run.stdout)
	}

	content, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	want := []string{
		"date,amount,category,description",
		"2026-02-11,12.5,food,coffee",
		"2026-02-11,3,transport,bus",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), content)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestExportEmptyStoreWritesHeaderOnly(t *testing.T) {
	exportPath := filepath.Join(t.TempDir(), "expenses.csv")

	mustRunOK(t, testStorePath(t), "export", "--path", exportPath)

	content, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if string(content) != "date,amount,category,description\n" {
		t.Fatalf("expected header only, got %q", content)
	}
}

func TestExportQuotesCommaInDescription(t *testing.T) {
	storePath := testStorePath(t)
	exportPath := filepath.Join(t.TempDir(), "expenses.csv")

	mustRunOK(t, storePath, "add", "8", "pizza, large", "food")
	mustRunOK(t, storePath, "export", "--path", exportPath)

	file, err := os.Open(exportPath)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("parse export: %v", err)
	}
	if len(rows) != 2 || rows[1][3] != "pizza, large" {
		t.Fatalf("expected description kept in one column, got %v", rows)
	}
}

func TestExportQuotesLeadingSpaceInDescription(t *testing.T) {
	storePath := testStorePath(t)
	exportPath := filepath.Join(t.TempDir(), "expenses.csv")

	mustRunOK(t, storePath, "add", "1", " coffee", "food")
	mustRunOK(t, storePath, "export", "--path", exportPath)

	content, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	want := "date,amount,category,description\n2026-02-11,1,food,\" coffee\"\n"
	if string(content) != want {
		t.Fatalf("expected %q, got %q", want, content)
	}
}

func TestExportJSONFormat(t *testing.T) {
	storePath := testStorePath(t)
	exportPath := filepath.Join(t.TempDir(), "expenses-export.json")

	mustRunOK(t, storePath, "add", "5", "book", "leisure")
	payload := decodeEnvelope(t, mustRunOK(t, storePath, "export", "--format", "json", "--path", exportPath, "--output", "json").stdout)

	data := mustMap(t, payload["data"])
	if data["format"] != "json" || int(data["exported"].(float64)) != 1 || data["file"] != exportPath {
		t.Fatalf("unexpected export data %v", data)
	}

	content, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(content), `"description": "book"`) {
		t.Fatalf("expected json export content, got %s", content)
	}
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	exportPath := filepath.Join(t.TempDir(), "expenses.xml")

	run := executeCLI(t, testStorePath(t), "export", "--format", "xml", "--path", exportPath)
	if run.err == nil || run.exit != 2 {
		t.Fatalf("expected usage error exit 2, got err=%v exit=%d", run.err, run.exit)
	}
	if _, err := os.Stat(exportPath); !os.IsNotExist(err) {
		t.Fatalf("expected no export file, stat err=%v", err)
	}
}

func TestExportWriteFailureExitsNonZero(t *testing.T) {
	exportPath := filepath.Join(t.TempDir(), "missing", "expenses.csv")

	run := executeCLI(t, testStorePath(t), "export", "--path", exportPath)
	if run.exit != 6 {
		t.Fatalf("expected exit 6, got %d (err=%v)", run.exit, run.err)
	}
	if !strings.Contains(run.stderr, "error[EXPORT_ERROR]") {
		t.Fatalf("expected export error on stderr, got %q", run.stderr)
	}
}
