package translate

import "testing"

func TestDefaultLabeler(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"", ""},
		{"title", "Title"},
		{"start_date", "Start Date"},
		{"maxRetries", "Max Retries"},
		{"some-field-name", "Some Field Name"},
		{"HTTPPort", "Httpport"},
		{"field2", "Field 2"},
	}
	for _, tc := range cases {
		if got := DefaultLabeler(tc.name); got != tc.want {
			t.Errorf("DefaultLabeler(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
