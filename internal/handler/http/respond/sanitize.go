package respond

import (
	"regexp"
)

// Applied in order; the more specific key formats must run first.
var secretPatterns = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`sk-ant-[a-zA-Z0-9-_]+`), "sk-ant-****"},
	{regexp.MustCompile(`sk-proj-[a-zA-Z0-9-_]+`), "sk-proj-****"},
	{regexp.MustCompile(`sk-[a-zA-Z0-9]{10,}`), "sk-****"},
	{regexp.MustCompile(`(?i)(bearer\s+)[a-zA-Z0-9._~+/=-]+`), "${1}****"},
	{regexp.MustCompile(`(?i)(x-api-key:\s*)\S+`), "${1}****"},
	{regexp.MustCompile(`://([^:/@\s]+):([^@\s]+)@`), "://$1:****@"},
}

// SanitizeError returns err's message with API keys and credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return SanitizeString(err.Error())
}

// SanitizeString masks API keys and credentials in msg.
func SanitizeString(msg string) string {
	for _, p := range secretPatterns {
		msg = p.pattern.ReplaceAllString(msg, p.replacement)
	}
	return msg
}
