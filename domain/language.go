package domain

// Language is the tag assigned to a source file by the classifier
type Language string

const (
	LangPython      Language = "python"
	LangJavaScript  Language = "javascript"
	LangTypeScript  Language = "typescript"
	LangJava        Language = "java"
	LangC           Language = "c"
	LangCPP         Language = "cpp"
	LangGo          Language = "go"
	LangRust        Language = "rust"
	LangUnsupported Language = "unsupported"
)

// SupportedLanguages lists every language with an extractor, in a fixed order
func SupportedLanguages() []Language {
	return []Language{
		LangPython,
		LangJavaScript,
		LangTypeScript,
		LangJava,
		LangC,
		LangCPP,
		LangGo,
		LangRust,
	}
}

// Supported reports whether the language has an extractor
func (l Language) Supported() bool {
	return l != LangUnsupported && l != ""
}
