package plan

import "strings"

// Render substitutes one batch into the command template. A batch with
// several arguments is joined with single spaces first, then every
// occurrence of the replacement token is replaced. A template that does not
// contain the token runs unmodified, once per pane.
func Render(template, repstr string, batch []string) string {
	if repstr == "" || !strings.Contains(template, repstr) {
		return template
	}
	return strings.ReplaceAll(template, repstr, strings.Join(batch, " "))
}
