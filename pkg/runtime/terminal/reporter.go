package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/instance-isolator/pkg/models/api"
)

// Reporter prints isolation outcomes to the console
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(result api.IsolationResponse) error {
	tmpl := `Instance: {{.InstanceID}}
Region:   {{.Region}}
Status:   {{.Status}}
{{- if .Error}}
Error:    {{.Error}}
{{- end}}
`
	t, err := template.New("isolation").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, result)
}
