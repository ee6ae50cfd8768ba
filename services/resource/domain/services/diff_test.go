package services

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ghuser/communityhub/services/resource/domain/models"
)

func fields(t *testing.T, js string) models.Fields {
	t.Helper()
	var f models.Fields
	if err := json.Unmarshal([]byte(js), &f); err != nil {
		t.Fatalf("bad fixture %s: %v", js, err)
	}
	return f
}

func TestDescribeChanges(t *testing.T) {
	tests := []struct {
		name   string
		before string
		after  string
		want   string
	}{
		{
			name:   "single numeric change omits unchanged title",
			before: `{"title":"A","target":100}`,
			after:  `{"title":"A","target":200}`,
			want:   "target: 100 → 200",
		},
		{
			name:   "identical documents",
			before: `{"title":"A","target":100}`,
			after:  `{"title":"A","target":100}`,
			want:   NoVisibleChange,
		},
		{
			name:   "strings are unquoted and fields sorted",
			before: `{"title":"A","summary":"old"}`,
			after:  `{"title":"B","summary":"new"}`,
			want:   "summary: old → new, title: A → B",
		},
		{
			name:   "whitespace and key order are not changes",
			before: `{"meta":{"b":1, "a":2}}`,
			after:  `{"meta":{"a":2,"b":1}}`,
			want:   NoVisibleChange,
		},
		{
			name:   "integers beyond float64 precision",
			before: `{"target":9007199254740992}`,
			after:  `{"target":9007199254740993}`,
			want:   "target: 9007199254740992 → 9007199254740993",
		},
		{
			name:   "appended image url",
			before: `{"imageUrls":["u1"]}`,
			after:  `{"imageUrls":["u1","u2"]}`,
			want:   `imageUrls: ["u1"] → ["u1","u2"]`,
		},
		{
			name:   "added and removed fields",
			before: `{"location":"Masjid"}`,
			after:  `{"published":true}`,
			want:   "location: Masjid → (none), published: (none) → true",
		},
		{
			name:   "reserved fields ignored",
			before: `{"id":"a","version":1,"activities":[]}`,
			after:  `{"id":"b","version":2,"activities":[{"type":"add"}]}`,
			want:   NoVisibleChange,
		},
		{
			name:   "html is not escaped",
			before: `{"summary":"<p>a</p>"}`,
			after:  `{"summary":"<p>b</p>"}`,
			want:   "summary: <p>a</p> → <p>b</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DescribeChanges(fields(t, tt.before), fields(t, tt.after))
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescribeChanges_NilInputs(t *testing.T) {
	if got := DescribeChanges(nil, nil); got != NoVisibleChange {
		t.Fatalf("got %q, want sentinel", got)
	}
}

func TestAddedAndDeletedDescriptions(t *testing.T) {
	if got := AddedDescription("Kajian Bulanan"); !strings.Contains(got, "Kajian Bulanan") || !strings.HasPrefix(got, "added") {
		t.Errorf("unexpected add description %q", got)
	}
	if got := DeletedDescription("Kajian Bulanan"); !strings.Contains(got, "Kajian Bulanan") || !strings.HasPrefix(got, "deleted") {
		t.Errorf("unexpected delete description %q", got)
	}
}
