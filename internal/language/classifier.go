package language

import (
	"bufio"
	"bytes"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Yzy888666/fuckucodepy/domain"
)

// extensionMap maps file extensions to language tags
var extensionMap = map[string]domain.Language{
	".py":  domain.LangPython,
	".pyw": domain.LangPython,
	".pyi": domain.LangPython,

	".js":  domain.LangJavaScript,
	".jsx": domain.LangJavaScript,
	".mjs": domain.LangJavaScript,
	".cjs": domain.LangJavaScript,

	".ts":  domain.LangTypeScript,
	".tsx": domain.LangTypeScript,
	".mts": domain.LangTypeScript,
	".cts": domain.LangTypeScript,

	".java": domain.LangJava,

	".c": domain.LangC,
	".h": domain.LangC,

	".cpp": domain.LangCPP,
	".cxx": domain.LangCPP,
	".cc":  domain.LangCPP,
	".hpp": domain.LangCPP,
	".hxx": domain.LangCPP,

	".go": domain.LangGo,

	".rs": domain.LangRust,
}

// shebangMap maps interpreter names found on a shebang line to languages
var shebangMap = map[string]domain.Language{
	"python":  domain.LangPython,
	"python3": domain.LangPython,
	"node":    domain.LangJavaScript,
}

// contentPatterns sniff a language from the first lines of extensionless files
var contentPatterns = []struct {
	lang domain.Language
	re   *regexp.Regexp
}{
	{domain.LangPython, regexp.MustCompile(`(?m)^\s*def\s+\w+\s*\(`)},
	{domain.LangPython, regexp.MustCompile(`(?m)^\s*from\s+\w+\s+import\s`)},
	{domain.LangJavaScript, regexp.MustCompile(`(?m)^\s*function\s+\w+\s*\(`)},
	{domain.LangJavaScript, regexp.MustCompile(`(?m)module\.exports\s*=`)},
	{domain.LangGo, regexp.MustCompile(`(?m)^package\s+\w+$`)},
}

// sniffLimit is the number of leading lines inspected for content detection
const sniffLimit = 50

// Classify maps a file path (and optionally its content, for extensionless
// files) to a language tag. It is pure and deterministic: the same path and
// content always yield the same tag.
func Classify(path string, content []byte) domain.Language {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := extensionMap[ext]; ok {
		return lang
	}
	if ext != "" {
		return domain.LangUnsupported
	}
	return sniff(content)
}

// ClassifyPath maps a file path to a language by extension alone, without
// reading content. Extensionless files come back unsupported here; callers
// holding the content use Classify so shebang scripts still resolve.
func ClassifyPath(path string) domain.Language {
	if lang, ok := extensionMap[strings.ToLower(filepath.Ext(path))]; ok {
		return lang
	}
	return domain.LangUnsupported
}

// sniff detects a language from a shebang line or leading content
func sniff(content []byte) domain.Language {
	if len(content) == 0 {
		return domain.LangUnsupported
	}

	head := leadingLines(content, sniffLimit)

	if strings.HasPrefix(head, "#!") {
		line := head
		if i := strings.IndexByte(line, '\n'); i >= 0 {
			line = line[:i]
		}
		for name, lang := range shebangMap {
			if strings.Contains(line, name) {
				return lang
			}
		}
	}

	for _, p := range contentPatterns {
		if p.re.MatchString(head) {
			return p.lang
		}
	}

	return domain.LangUnsupported
}

// leadingLines returns up to limit lines from the start of content
func leadingLines(content []byte, limit int) string {
	var sb strings.Builder
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for i := 0; i < limit && scanner.Scan(); i++ {
		sb.Write(scanner.Bytes())
		sb.WriteByte('\n')
	}
	return sb.String()
}
