package loader

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("cannot write temp file: %v", err)
	}
	return path
}

func TestLoadNamesTrimsAndSkipsBlank(t *testing.T) {
	path := writeTemp(t, "  Hà Nội  \n\nĐà Nẵng\n   \nCần Thơ\n")
	names, err := LoadNames(path)
	if err != nil {
		t.Fatalf("LoadNames: %v", err)
	}
	want := []string{"Hà Nội", "Đà Nẵng", "Cần Thơ"}
	if len(names) != len(want) {
		t.Fatalf("got %d names, want %d: %v", len(names), len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestLoadNamesMissingFile(t *testing.T) {
	if _, err := LoadNames("/nonexistent/path/list.txt"); err == nil {
		t.Error("expected an error for a missing dictionary file")
	}
}

func TestLoadReferenceRecordsDropsWrongArity(t *testing.T) {
	content := "Long Bình, Gò Công Tây, Tiền Giang\n" +
		"malformed, only two fields\n" +
		"\n" +
		"Nga Thạnh, Nga Sơn, Thanh Hóa, extra field\n" +
		"Phú Mỹ, Thủ Dầu Một, Bình Dương\n"
	path := writeTemp(t, content)

	records, err := LoadReferenceRecords(path)
	if err != nil {
		t.Fatalf("LoadReferenceRecords: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2 (malformed lines dropped): %+v", len(records), records)
	}
	if records[0].Ward != "Long Bình" || records[0].District != "Gò Công Tây" || records[0].Province != "Tiền Giang" {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if records[1].Ward != "Phú Mỹ" {
		t.Errorf("unexpected second record: %+v", records[1])
	}
}

func TestLoadReferenceRecordsMissingFile(t *testing.T) {
	if _, err := LoadReferenceRecords("/nonexistent/path/reference.txt"); err == nil {
		t.Error("expected an error for a missing reference file")
	}
}
