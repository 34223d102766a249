package renderer

import (
	"bytes"
	"fmt"
	"io"

	equitywise "github.com/basant-kumar/EquityWise"
	md "github.com/nao1215/markdown"
)

// ComplianceMarkdown renders the multi-year Foreign Assets overview:
// one row per covered year plus any balance continuity findings.
func ComplianceMarkdown(summaries []equitywise.YearSummary, findings []string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Foreign Assets Compliance Overview")

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		required := "no"
		if s.DeclarationRequired {
			required = "yes"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", s.Year),
			s.Opening.ValueINR.String(),
			s.Peak.ValueINR.String(),
			s.Peak.On.String(),
			s.Closing.ValueINR.String(),
			required,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Year", "Opening (INR)", "Peak (INR)", "Peak Date", "Closing (INR)", "Declaration"},
		Rows:   rows,
	})
	buf.WriteString(doc.String())

	ConditionalBlock(&buf, func(w io.Writer) bool {
		if len(findings) == 0 {
			return false
		}
		sec := md.NewMarkdown(w)
		sec.H2("Findings")
		sec.BulletList(findings...)
		io.WriteString(w, sec.String())
		return true
	})

	return buf.String()
}

// IssuesMarkdown renders data validation findings as a bullet list.
func IssuesMarkdown(issues []equitywise.Issue) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Data Validation")
	if len(issues) == 0 {
		doc.PlainText("No issues found.")
		return doc.String()
	}
	items := make([]string, 0, len(issues))
	for _, i := range issues {
		items = append(items, i.String())
	}
	doc.BulletList(items...)
	return doc.String()
}
