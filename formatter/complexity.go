package formatter

import (
	"fmt"
	"strings"
)

// ComplexityHotspotFormatter adds a complexity summary line under the
// snippet so the number is visible without reading the full message.
type ComplexityHotspotFormatter struct{}

func (f *ComplexityHotspotFormatter) IssueTemplate() string {
	return `{{header .Rule .Severity .MaxLineNumWidth .Filename .StartLine .StartColumn}}
{{snippet .SnippetLines .StartLine .EndLine .MaxLineNumWidth .CommonIndent .Padding -}}
{{underlineAndMessage .Message .Padding .StartLine .EndLine .StartColumn .EndColumn .SnippetLines .CommonIndent -}}
{{complexityInfo .Padding .Message}}
{{- if .Suggestion }}
{{suggestion .Suggestion .Padding .MaxLineNumWidth .StartLine}}
{{- end }}
{{- if .Note }}
{{note .Note}}
{{- end }}
`
}

func complexityInfo(padding string, message string) string {
	var endString string
	info := fmt.Sprintf("Cyclomatic complexity: %s", strings.TrimPrefix(message, "function "))
	endString = lineStyle.Sprintf("%s| ", padding)
	endString += messageStyle.Sprintf("%s\n", info)

	return endString
}
