package config

import "strings"

const SourceFileExt = ".fun"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".fun"}

// Version is reported by the CLI -version flag.
const Version = "0.3.0"

// ConfigFileName is looked up next to the source file when no -config is given.
const ConfigFileName = "fun.yaml"

// Built-in function names
const (
	PrintFuncName = "println"
)

// Source encodings accepted by the encoding setting.
const (
	EncodingUTF8        = "utf-8"
	EncodingUTF16       = "utf-16"
	EncodingShiftJIS    = "shift_jis"
	EncodingEUCJP       = "euc-jp"
	EncodingISO88591    = "iso-8859-1"
	EncodingWindows1252 = "windows-1252"
)

var SupportedEncodings = []string{
	EncodingUTF8,
	EncodingUTF16,
	EncodingShiftJIS,
	EncodingEUCJP,
	EncodingISO88591,
	EncodingWindows1252,
}

var encodingAliases = map[string]string{
	"utf8":   EncodingUTF8,
	"utf16":  EncodingUTF16,
	"sjis":   EncodingShiftJIS,
	"eucjp":  EncodingEUCJP,
	"latin1": EncodingISO88591,
	"cp1252": EncodingWindows1252,
}

// CanonicalEncoding lowercases name and resolves short aliases such as
// "sjis" or "latin1". Unknown names are returned lowercased.
func CanonicalEncoding(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := encodingAliases[name]; ok {
		return canonical
	}
	return name
}

// Color modes for diagnostics on stderr.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// HasSourceExt checks if path ends with a recognized source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) > len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// TrimSourceExt removes a recognized source extension from path.
func TrimSourceExt(path string) string {
	for _, ext := range SourceFileExtensions {
		if len(path) > len(ext) && path[len(path)-len(ext):] == ext {
			return path[:len(path)-len(ext)]
		}
	}
	return path
}
