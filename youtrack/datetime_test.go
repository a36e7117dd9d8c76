package youtrack

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestDateTimeRoundTrip(t *testing.T) {
	in := NewDateTime(time.Date(2021, time.June, 26, 1, 2, 45, 326e6, time.UTC))

	encoded, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(encoded) != "1624669365326" {
		t.Errorf("Marshal() = %s, want 1624669365326", encoded)
	}

	var out DateTime
	if err := json.Unmarshal(encoded, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !out.Equal(in.Time) {
		t.Errorf("round trip changed instant: got %v, want %v", out, in)
	}
}

func TestDateTimeRejectsNonNumber(t *testing.T) {
	var out DateTime
	err := json.Unmarshal([]byte(`"2021-06-26"`), &out)

	var mismatch *TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Unmarshal() error = %v, want TypeMismatchError", err)
	}
}

func TestDateEncodesAsNoonUTC(t *testing.T) {
	d := NewDate(2021, time.June, 26)

	encoded, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	noon := time.Date(2021, time.June, 26, 12, 0, 0, 0, time.UTC).UnixMilli()
	if string(encoded) != "1624708800000" || noon != 1624708800000 {
		t.Errorf("Marshal() = %s, want %d", encoded, noon)
	}
}

func TestDateDecode(t *testing.T) {
	tests := []struct {
		name string
		ms   int64
		want Date
	}{
		{
			name: "noon maps to the same date",
			ms:   time.Date(2021, time.June, 26, 12, 0, 0, 0, time.UTC).UnixMilli(),
			want: NewDate(2021, time.June, 26),
		},
		{
			name: "late evening maps to the same date",
			ms:   time.Date(2021, time.June, 26, 23, 30, 0, 0, time.UTC).UnixMilli(),
			want: NewDate(2021, time.June, 26),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Date
			if err := got.UnmarshalJSON([]byte(jsonInt(tt.ms))); err != nil {
				t.Fatalf("UnmarshalJSON() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("decoded %s, want %s", got, tt.want)
			}
		})
	}
}

func jsonInt(n int64) string {
	b, _ := json.Marshal(n)
	return string(b)
}
