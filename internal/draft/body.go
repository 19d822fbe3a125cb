package draft

import (
	"bytes"
	"encoding/json"
	"strings"
)

const bodyIndent = "    "

// FormatBody trims the body and pretty-prints it when it looks like a JSON object.
// Text that is not valid JSON is returned trimmed and otherwise untouched.
func FormatBody(raw string) string {
	body := strings.TrimSpace(raw)
	if !strings.HasPrefix(body, "{") || !strings.HasSuffix(body, "}") {
		return body
	}

	buf := new(bytes.Buffer)
	if err := json.Indent(buf, []byte(body), "", bodyIndent); err != nil {
		return body
	}
	return buf.String()
}
