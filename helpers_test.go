package showcase

import "testing"

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		expected string
	}{
		{"https://site.test", nil, "https://site.test"},
		{"https://site.test", []string{"examples"}, "https://site.test/examples/"},
		{"https://site.test/docs", []string{"/examples/nodes/a"}, "https://site.test/docs/examples/nodes/a/"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segments...); got != tt.expected {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.expected)
		}
	}
}

func TestHookName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"use-nodes-data", "useNodesData"},
		{"Use-Store", "useStore"},
		{"use", "use"},
	}
	for _, tt := range tests {
		if got := HookName(tt.input); got != tt.expected {
			t.Errorf("HookName(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
