package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate flag and value",
			args:    []string{"-a", "localhost:8080", "-x", "ignored"},
			allowed: []string{"-a"},
			want:    []string{"-a", "localhost:8080"},
		},
		{
			name:    "combined flag=value",
			args:    []string{"--config=conf.json", "-b=5"},
			allowed: []string{"--config"},
			want:    []string{"--config=conf.json"},
		},
		{
			name:    "flag without value before another flag",
			args:    []string{"-v", "-a", "addr"},
			allowed: []string{"-v", "-a"},
			want:    []string{"-v", "-a", "addr"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "b", "-c=d"},
			allowed: []string{},
			want:    []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FilterArgs(tc.args, tc.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"cmd", "-c", "settings.json"}
	assert.Equal(t, "settings.json", JsonConfigFlags())

	os.Args = []string{"cmd", "-config=other.json"}
	assert.Equal(t, "other.json", JsonConfigFlags())

	os.Args = []string{"cmd", "-a", "localhost:9090"}
	assert.Equal(t, "", JsonConfigFlags())
}
