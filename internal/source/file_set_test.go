package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddVirtual(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("test.calc", []byte("1 + 2\n"))
	file := fs.Get(id)

	if file.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
	if string(file.Content) != "1 + 2\n" {
		t.Errorf("Expected content %q, got %q", "1 + 2\n", string(file.Content))
	}
	if fs.Len() != 1 {
		t.Errorf("Expected 1 file, got %d", fs.Len())
	}
}

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "input.calc")

	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("1 + 2\r\n3\r\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	file := fs.Get(id)
	if file.Flags&FileHadBOM == 0 {
		t.Error("Expected FileHadBOM flag to be set")
	}
	if file.Flags&FileNormalizedCRLF == 0 {
		t.Error("Expected FileNormalizedCRLF flag to be set")
	}
	if string(file.Content) != "1 + 2\n3\n" {
		t.Errorf("Expected normalized content %q, got %q", "1 + 2\n3\n", string(file.Content))
	}
}

func TestGetByPath(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("a.calc", []byte("a"))

	if _, ok := fs.GetByPath("a.calc"); !ok {
		t.Error("Expected file to be found by path")
	}
	if _, ok := fs.GetByPath("missing.calc"); ok {
		t.Error("Expected missing path to not be found")
	}
}

// TestResolveUTF8 проверяет разрешение позиций в UTF-8 тексте
func TestResolveUTF8(t *testing.T) {
	fs := NewFileSet()

	// "α\n": α занимает 2 байта
	id := fs.AddVirtual("test.calc", []byte("α\n"))

	span := Span{File: id, Start: 0, End: 1}
	start, end := fs.Resolve(span)

	if want := (LineCol{Line: 1, Col: 1}); start != want {
		t.Errorf("Expected start %+v, got %+v", want, start)
	}
	if want := (LineCol{Line: 1, Col: 2}); end != want {
		t.Errorf("Expected end %+v, got %+v", want, end)
	}
}

// TestResolveLineBoundaries проверяет позиции вокруг \n: сам перевод
// строки принадлежит своей строке, следующий байт — началу следующей.
func TestResolveLineBoundaries(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.calc", []byte("ab\ncd\n"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{1, LineCol{Line: 1, Col: 2}},
		{2, LineCol{Line: 1, Col: 3}}, // сам \n
		{3, LineCol{Line: 2, Col: 1}}, // первый байт второй строки
		{4, LineCol{Line: 2, Col: 2}},
		{5, LineCol{Line: 2, Col: 3}},
	}

	for _, tt := range tests {
		got, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off + 1})
		if got != tt.want {
			t.Errorf("Offset %d: expected %+v, got %+v", tt.off, tt.want, got)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.calc", []byte("one\ntwo\nthree"))
	file := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "one"},
		{2, "two"},
		{3, "three"},
		{4, ""},
	}

	for _, tt := range tests {
		if got := file.GetLine(tt.line); got != tt.want {
			t.Errorf("Line %d: expected %q, got %q", tt.line, tt.want, got)
		}
	}
}

func TestFileVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.calc", []byte("version 1"), 0)
	id2 := fs.Add("test.calc", []byte("version 2"), 0)

	if id2 == id1 {
		t.Error("Expected a new FileID for the second Add")
	}

	// индекс указывает на последнюю версию
	file, ok := fs.GetByPath("test.calc")
	if !ok {
		t.Fatal("Expected file to exist")
	}
	if string(file.Content) != "version 2" {
		t.Errorf("Expected latest content, got %q", string(file.Content))
	}
}
