package fault

import (
	"encoding/json"
	"testing"
)

func TestSeverityOrder(t *testing.T) {
	order := []Severity{SeverityInfo, SeverityMinor, SeverityShould, SeverityMust, SeverityCritical}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Fatalf("severity order violated: %s >= %s", order[i-1], order[i])
		}
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		name    string
		want    Severity
		wantErr bool
	}{
		{"info", SeverityInfo, false},
		{"minor", SeverityMinor, false},
		{"should", SeverityShould, false},
		{"must", SeverityMust, false},
		{"critical", SeverityCritical, false},
		{"fatal", 0, true},
		{"", 0, true},
		{"MUST", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseSeverity(tc.name)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseSeverity(%q): expected error", tc.name)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSeverity(%q): %v", tc.name, err)
			}
			if got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSeverityJSONRoundTrip(t *testing.T) {
	for s := SeverityInfo; s <= SeverityCritical; s++ {
		data, err := json.Marshal(s)
		if err != nil {
			t.Fatalf("marshal %s: %v", s, err)
		}
		var back Severity
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if back != s {
			t.Errorf("round trip changed %s to %s", s, back)
		}
	}
}

func TestSeverityMarshalInvalid(t *testing.T) {
	if _, err := json.Marshal(Severity(42)); err == nil {
		t.Fatal("expected error marshalling invalid severity")
	}
}
