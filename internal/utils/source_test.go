package utils

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/funvibe/funlang/internal/config"
)

func TestLookupEncoding_SupportedNames(t *testing.T) {
	for _, name := range config.SupportedEncodings {
		if _, err := LookupEncoding(name); err != nil {
			t.Errorf("LookupEncoding(%q) failed: %v", name, err)
		}
	}
	if _, err := LookupEncoding("ebcdic"); err == nil {
		t.Error("expected error for unsupported encoding")
	}
}

func TestDecodeSource(t *testing.T) {
	const program = "// コメント\nprintln(1)\n"

	sjis, _, err := transform.String(japanese.ShiftJIS.NewEncoder(), program)
	if err != nil {
		t.Fatalf("encode shift_jis: %v", err)
	}
	eucjp, _, err := transform.String(japanese.EUCJP.NewEncoder(), program)
	if err != nil {
		t.Fatalf("encode euc-jp: %v", err)
	}
	utf16, _, err := transform.String(unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder(), program)
	if err != nil {
		t.Fatalf("encode utf-16: %v", err)
	}
	latin1, _, err := transform.String(charmap.ISO8859_1.NewEncoder(), "// café\nprintln(2)\n")
	if err != nil {
		t.Fatalf("encode latin1: %v", err)
	}

	tests := []struct {
		name     string
		data     []byte
		encoding string
		want     string
	}{
		{"utf-8", []byte(program), "utf-8", program},
		{"utf-8 with BOM", append([]byte{0xEF, 0xBB, 0xBF}, program...), "utf-8", program},
		{"default encoding", []byte(program), "", program},
		{"shift_jis", []byte(sjis), "shift_jis", program},
		{"euc-jp", []byte(eucjp), "euc-jp", program},
		{"utf-16", []byte(utf16), "utf-16", program},
		{"iso-8859-1", []byte(latin1), "iso-8859-1", "// café\nprintln(2)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeSource(tt.data, tt.encoding)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DecodeSource() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeSource_InvalidUTF8(t *testing.T) {
	if _, err := DecodeSource([]byte{'v', 'a', 'r', 0xFF}, "utf-8"); err == nil {
		t.Error("expected error for invalid UTF-8 input")
	}
}

func TestReadSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.fun")
	if err := os.WriteFile(path, []byte("println(7)\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadSource(path, "utf-8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "println(7)\n" {
		t.Errorf("ReadSource() = %q", got)
	}

	if _, err := ReadSource(filepath.Join(dir, "missing.fun"), "utf-8"); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestProgramName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"examples/fib.fun", "fib"},
		{"/tmp/script.txt", "script.txt"},
		{"", "<stdin>"},
	}
	for _, tt := range tests {
		if got := ProgramName(tt.path); got != tt.want {
			t.Errorf("ProgramName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestConfigPathFor(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.fun")

	if got := ConfigPathFor("", src); got != "" {
		t.Errorf("expected no config, got %q", got)
	}
	cfgPath := filepath.Join(dir, config.ConfigFileName)
	if err := os.WriteFile(cfgPath, []byte("color: never\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := ConfigPathFor("", src); got != cfgPath {
		t.Errorf("ConfigPathFor() = %q, want %q", got, cfgPath)
	}
	if got := ConfigPathFor("other.yaml", src); got != "other.yaml" {
		t.Errorf("explicit path should win, got %q", got)
	}
}
