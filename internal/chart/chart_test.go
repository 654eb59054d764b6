package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mentalift/mentalift/internal/models"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G'}

func TestRenderTrend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alice_graph.png")
	dates := []time.Time{
		time.Date(2026, 8, 28, 10, 0, 0, 0, time.Local),
		time.Date(2026, 8, 29, 10, 0, 0, 0, time.Local),
		time.Date(2026, 8, 30, 10, 0, 0, 0, time.Local),
	}
	scores := []int{-11, 4, 16}

	if err := RenderTrend("alice", dates, scores, path); err != nil {
		t.Fatalf("RenderTrend() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("chart file not written: %v", err)
	}
	if !bytes.HasPrefix(data, pngHeader) {
		t.Error("chart file is not a PNG")
	}
}

func TestRenderTrendEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alice_graph.png")

	if err := RenderTrend("alice", nil, nil, path); err == nil {
		t.Error("RenderTrend() with no points should fail")
	}
}

func TestRenderTrendSinglePoint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alice_graph.png")
	one := []time.Time{time.Date(2026, 8, 30, 10, 0, 0, 0, time.Local)}

	if err := RenderTrend("alice", one, []int{3}, path); err != nil {
		t.Fatalf("RenderTrend() with one point failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("chart file not written: %v", err)
	}
	if !bytes.HasPrefix(data, pngHeader) {
		t.Error("single-point chart file is not a PNG")
	}
}

func TestRenderTrendLengthMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alice_graph.png")
	dates := []time.Time{time.Now(), time.Now()}
	if err := RenderTrend("alice", dates, []int{1}, path); err == nil {
		t.Error("RenderTrend() with mismatched lengths should fail")
	}
}

func TestRenderHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alice_graph.png")
	history := []models.Entry{
		{Date: "2026-08-28 10:00", Score: -2},
		{Date: "2026-08-29 10:00", Score: 3},
	}

	if err := RenderHistory("alice", history, path); err != nil {
		t.Fatalf("RenderHistory() failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("chart file not written: %v", err)
	}
}

func TestRenderHistoryOverwritesPreviousChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alice_graph.png")
	if err := os.WriteFile(path, []byte("stale"), 0600); err != nil {
		t.Fatalf("failed to write stale file: %v", err)
	}

	history := []models.Entry{
		{Date: "2026-08-28 10:00", Score: 0},
		{Date: "2026-08-29 10:00", Score: 5},
	}
	if err := RenderHistory("alice", history, path); err != nil {
		t.Fatalf("RenderHistory() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("chart file not readable: %v", err)
	}
	if !bytes.HasPrefix(data, pngHeader) {
		t.Error("stale chart was not overwritten with a PNG")
	}
}

func TestRenderHistorySkipsUnparsableDates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alice_graph.png")
	history := []models.Entry{
		{Date: "garbage", Score: 1},
		{Date: "2026-08-29 10:00", Score: 3},
	}

	// The unparsable entry is dropped; the remaining point still renders.
	if err := RenderHistory("alice", history, path); err != nil {
		t.Fatalf("RenderHistory() failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("chart file not written: %v", err)
	}
	if !bytes.HasPrefix(data, pngHeader) {
		t.Error("chart file is not a PNG")
	}

	if err := RenderHistory("alice", []models.Entry{{Date: "garbage", Score: 1}}, path); err == nil {
		t.Error("RenderHistory() with no usable points should fail")
	}
}
