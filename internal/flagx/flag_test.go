package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		allowed  []string
		expected []string
	}{
		{
			name:     "separate flag and value",
			args:     []string{"-a", "https://example.org", "-x", "junk"},
			allowed:  []string{"-a"},
			expected: []string{"-a", "https://example.org"},
		},
		{
			name:     "equals form",
			args:     []string{"--config=conf.json", "-other=1"},
			allowed:  []string{"--config"},
			expected: []string{"--config=conf.json"},
		},
		{
			name:     "flag without value followed by another flag",
			args:     []string{"-eager-kit", "-a", "url"},
			allowed:  []string{"-eager-kit"},
			expected: []string{"-eager-kit"},
		},
		{
			name:     "nothing allowed",
			args:     []string{"-a", "url"},
			allowed:  []string{"-b"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowed)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"cmd", "-c", "conf.json", "-a", "ignored"}
	assert.Equal(t, "conf.json", ConfigFileFlag())

	os.Args = []string{"cmd", "-config=other.json"}
	assert.Equal(t, "other.json", ConfigFileFlag())

	os.Args = []string{"cmd", "-a", "url"}
	assert.Equal(t, "", ConfigFileFlag())
}
