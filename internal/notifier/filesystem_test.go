package notifier

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"admin/internal/models"
)

func newTestFilesystemNotifier(t *testing.T) (*FilesystemNotifier, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "notifications")
	config := models.FilesystemNotifierConfiguration{
		Directory: dir,
	}
	n := NewFilesystemNotifier(config)
	return n, dir
}

func TestFilesystemNotifyFromTemplate_WritesFile(t *testing.T) {
	n, dir := newTestFilesystemNotifier(t)

	data := map[string]string{
		"Title": "High flagged ad volume",
		"Body":  "42 flagged ads in the latest refresh",
	}

	err := n.NotifyFromTemplate("oncall@example.com", "High flagged ad volume", "alert", data)
	if err != nil {
		t.Fatalf("NotifyFromTemplate failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read directory: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 file, got %d", len(entries))
	}

	content, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}

	var result map[string]any
	if err = json.Unmarshal(content, &result); err != nil {
		t.Fatalf("failed to unmarshal JSON: %v", err)
	}

	if result["to"] != "oncall@example.com" {
		t.Errorf("expected to=oncall@example.com, got %v", result["to"])
	}
	if result["subject"] != "High flagged ad volume" {
		t.Errorf("expected subject='High flagged ad volume', got %v", result["subject"])
	}
	if result["template_name"] != "alert" {
		t.Errorf("expected template_name=alert, got %v", result["template_name"])
	}
	if result["args"] == nil {
		t.Error("expected non-nil args")
	}
	if result["timestamp"] == nil || result["timestamp"] == "" {
		t.Error("expected non-empty timestamp")
	}
}

func TestFilesystemNotifyFromTemplate_MultipleNotifications(t *testing.T) {
	n, dir := newTestFilesystemNotifier(t)

	for i := range 3 {
		err := n.NotifyFromTemplate("oncall@example.com", "Alert", "alert", nil)
		if err != nil {
			t.Fatalf("NotifyFromTemplate call %d failed: %v", i, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read directory: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 files, got %d", len(entries))
	}
}

func TestFilesystemNotifier_DirectoryCreation(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "deep", "notifications")
	config := models.FilesystemNotifierConfiguration{
		Directory: dir,
	}

	_ = NewFilesystemNotifier(config)

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("directory was not created: %v", err)
	}
	if !info.IsDir() {
		t.Fatal("expected a directory")
	}
}
