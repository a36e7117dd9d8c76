package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/valksor/go-youtrack/youtrack"
)

func TestFieldValueLabel(t *testing.T) {
	tests := []struct {
		name  string
		field youtrack.IssueCustomField
		want  string
	}{
		{
			name: "state",
			field: &youtrack.StateIssueCustomField{
				Value: youtrack.Set(youtrack.StateBundleElement{Name: youtrack.Set("In Progress")}),
			},
			want: "In Progress",
		},
		{
			name: "multi enum joins values",
			field: &youtrack.MultiEnumIssueCustomField{
				Value: youtrack.Set([]youtrack.EnumBundleElement{
					{Name: youtrack.Set("2024.1")},
					{Name: youtrack.Set("2024.2")},
				}),
			},
			want: "2024.1, 2024.2",
		},
		{
			name: "user falls back to login",
			field: &youtrack.SingleUserIssueCustomField{
				Value: youtrack.Set(youtrack.User{Login: youtrack.Set("alice")}),
			},
			want: "alice",
		},
		{
			name:  "unset value",
			field: &youtrack.StateIssueCustomField{},
			want:  "-",
		},
		{
			name: "simple integer",
			field: &youtrack.SimpleIssueCustomField{
				Value: youtrack.Set(youtrack.SimpleInt(12)),
			},
			want: "12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fieldValueLabel(tt.field); got != tt.want {
				t.Errorf("fieldValueLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintIssue(t *testing.T) {
	issue := &youtrack.Issue{
		IDReadable: youtrack.Set("HD-99"),
		Summary:    youtrack.Set("Site is down"),
		Project:    youtrack.Set(youtrack.Project{Name: youtrack.Set("Help Desk")}),
		Tags:       youtrack.Set([]youtrack.Tag{{Name: youtrack.Set("incident")}}),
	}

	var buf bytes.Buffer
	printIssue(&buf, issue)

	out := buf.String()
	for _, want := range []string{"HD-99", "Site is down", "Help Desk", "incident"} {
		if !strings.Contains(out, want) {
			t.Errorf("printIssue() output missing %q:\n%s", want, out)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)

	if !strings.Contains(buf.String(), "yt dev") {
		t.Errorf("version output = %q, want it to contain yt dev", buf.String())
	}
}
