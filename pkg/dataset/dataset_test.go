package dataset

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/spencer-p/tidestations/pkg/noaa"
)

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stations.json")

	records := []noaa.Station{
		{"id": "9414290", "name": "San Francisco", "lat": json.Number("37.806305"), "type": noaa.Subordinate},
	}
	if err := Write(path, records); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read dataset: %v", err)
	}
	want := `[
  {
    "id": "9414290",
    "lat": 37.806305,
    "name": "San Francisco",
    "type": "subordinate"
  }
]
`
	if diff := cmp.Diff(string(buf), want); diff != "" {
		t.Errorf("dataset (-got,+want): %s", diff)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %v", entries)
	}
}

func TestWriteEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stations.json")
	if err := Write(path, nil); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	buf, _ := os.ReadFile(path)
	if strings.TrimSpace(string(buf)) != "[]" {
		t.Errorf("got %q, wanted empty array", buf)
	}
}

func TestWriteMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "stations.json")
	if err := Write(path, nil); err == nil {
		t.Errorf("expected error writing into a missing directory")
	}
}
