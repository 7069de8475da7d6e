// Package langdetect decides whether a file is written in an
// indentation-delimited language. It uses go-enry to identify the
// language from the file name and content, with a small pattern
// fallback for extensionless scripts.
package langdetect

import (
	"regexp"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Language constants for the detected languages we care about.
const (
	LangPython       = "python"
	LangCoffeeScript = "coffeescript"
	LangNim          = "nim"
	LangSass         = "sass"
	LangUnknown      = ""
)

// indentLangs maps enry language names to our identifiers. Only
// languages whose block structure is carried by indentation appear
// here.
var indentLangs = map[string]string{
	"Python":       LangPython,
	"Cython":       LangPython,
	"CoffeeScript": LangCoffeeScript,
	"Nim":          LangNim,
	"Sass":         LangSass,
}

// pythonHintRe matches constructs that strongly suggest Python in
// extensionless files.
var pythonHintRe = regexp.MustCompile(`(?m)^[ \t]*(?:def|class)[ \t]+[A-Za-z_][A-Za-z0-9_]*|^import[ \t]+[A-Za-z_]|^from[ \t]+[A-Za-z_.]+[ \t]+import[ \t]`)

// Detect returns the indentation language of the file, or LangUnknown
// when the file is not indentation-delimited.
func Detect(path string, content []byte) string {
	// Shebang first, it overrides the extension.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		if normalized, ok := indentLangs[lang]; ok {
			return normalized
		}
		return LangUnknown
	}

	if lang := enry.GetLanguage(path, content); lang != "" && lang != enry.OtherLanguage {
		if normalized, ok := indentLangs[lang]; ok {
			return normalized
		}
		return LangUnknown
	}

	// Extensionless file with no shebang: fall back to a cheap
	// structural sniff.
	if pythonHintRe.Match(content) {
		return LangPython
	}
	return LangUnknown
}

// IsIndentLanguage reports whether the file should be handed to the
// extractor.
func IsIndentLanguage(path string, content []byte) bool {
	return Detect(path, content) != LangUnknown
}

// IsSupportedExtension reports whether ext (with or without the
// leading dot) belongs to a known indentation language. Used for
// cheap filtering before file contents are read.
func IsSupportedExtension(ext string) bool {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	switch ext {
	case "py", "pyi", "coffee", "nim", "sass":
		return true
	}
	return false
}
