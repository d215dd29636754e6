package export

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/guardline/price-sentry/pkg/models/domain"
)

type TableConfig struct {
	NameWidth    int
	StatusWidth  int
	PriceWidth   int
	PercentWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:    32,
		StatusWidth:  14,
		PriceWidth:   12,
		PercentWidth: 10,
	}
}

// Reporter renders audit reports to the console in a formatted text form.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(report *domain.AuditReport) error {
	funcMap := template.FuncMap{
		"formatRow": func(name, status, listed, calculated, percent string) string {
			return fmt.Sprintf("| %-*s | %-*s | %*s | %*s | %*s |",
				c.config.NameWidth, name,
				c.config.StatusWidth, status,
				c.config.PriceWidth, listed,
				c.config.PriceWidth, calculated,
				c.config.PercentWidth, percent)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.StatusWidth+2),
				strings.Repeat("-", c.config.PriceWidth+2),
				strings.Repeat("-", c.config.PriceWidth+2),
				strings.Repeat("-", c.config.PercentWidth+2))
		},
		"price": func(v int64) string {
			return strconv.FormatInt(v, 10)
		},
		"percent": func(v float64) string {
			return fmt.Sprintf("%.1f", v)
		},
	}

	tmpl := `
Package Price Audit (amounts in minor currency units)

Packages: {{.Summary.Total}}  OK: {{.Summary.OK}}  Too Low: {{.Summary.TooLow}}  Too High: {{.Summary.TooHigh}}  Missing Data: {{.Summary.MissingData}}

{{separator}}
{{formatRow "Package" "Status" "Listed" "Calculated" "Diff %"}}
{{separator}}
{{range .Results}}{{formatRow .PackageName (printf "%s" .Status) (price .CurrentPrice) (price .CalculatedPrice) (percent .DifferencePercent)}}
{{end}}{{separator}}
{{range .Results}}{{if .Issues}}
{{.PackageID}}:
{{- range .Issues}}
  - {{.}}
{{- end}}
{{end}}{{end}}`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
