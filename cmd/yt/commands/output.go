package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/valksor/go-youtrack/youtrack"
)

var titleCaser = cases.Title(language.English)

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printIssue writes a human-readable issue summary.
func printIssue(w io.Writer, issue *youtrack.Issue) {
	fmt.Fprintf(w, "%s  %s\n", issue.IDReadable.Or(issue.ID.Or("?")), issue.Summary.Or(""))
	if project, ok := issue.Project.Value(); ok {
		fmt.Fprintf(w, "  Project:  %s\n", project.Name.Or(project.ShortName.Or("")))
	}
	if reporter, ok := issue.Reporter.Value(); ok {
		fmt.Fprintf(w, "  Reporter: %s\n", reporter.Name.Or(reporter.Login.Or("")))
	}
	if created, ok := issue.Created.Value(); ok {
		fmt.Fprintf(w, "  Created:  %s\n", created.Format("2006-01-02 15:04"))
	}
	if tags, ok := issue.Tags.Value(); ok && len(tags) > 0 {
		fmt.Fprintf(w, "  Tags:     ")
		for i, tag := range tags {
			if i > 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprint(w, tag.Name.Or(""))
		}
		fmt.Fprintln(w)
	}
	if fields, ok := issue.CustomFields.Value(); ok {
		for _, f := range fields {
			name, ok := f.CustomFieldName()
			if !ok {
				continue
			}
			fmt.Fprintf(w, "  %s: %s\n", titleCaser.String(name), fieldValueLabel(f))
		}
	}
	if description, ok := issue.Description.Value(); ok && description != "" {
		fmt.Fprintf(w, "\n%s\n", description)
	}
}

// fieldValueLabel renders a custom field value for display.
func fieldValueLabel(f youtrack.IssueCustomField) string {
	switch field := f.(type) {
	case *youtrack.StateIssueCustomField:
		if v, ok := field.Value.Value(); ok {
			return v.Name.Or("")
		}
	case *youtrack.SingleEnumIssueCustomField:
		if v, ok := field.Value.Value(); ok {
			return v.Name.Or("")
		}
	case *youtrack.SingleUserIssueCustomField:
		if v, ok := field.Value.Value(); ok {
			return v.Name.Or(v.Login.Or(""))
		}
	case *youtrack.MultiEnumIssueCustomField:
		if vs, ok := field.Value.Value(); ok {
			label := ""
			for i, v := range vs {
				if i > 0 {
					label += ", "
				}
				label += v.Name.Or("")
			}
			return label
		}
	case *youtrack.PeriodIssueCustomField:
		if v, ok := field.Value.Value(); ok {
			return v.Presentation.Or("")
		}
	case *youtrack.DateIssueCustomField:
		if v, ok := field.Value.Value(); ok {
			return v.String()
		}
	case *youtrack.TextIssueCustomField:
		if v, ok := field.Value.Value(); ok {
			return v.Text.Or("")
		}
	case *youtrack.SimpleIssueCustomField:
		if v, ok := field.Value.Value(); ok {
			if s, ok := v.String(); ok {
				return s
			}
			if n, ok := v.Int(); ok {
				return fmt.Sprintf("%d", n)
			}
			if fl, ok := v.Float(); ok {
				return fmt.Sprintf("%g", fl)
			}
			if ts, ok := v.DateTime(); ok {
				return ts.Format("2006-01-02 15:04")
			}
		}
	}
	return "-"
}
