package gate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifier_SensitiveExactMatch(t *testing.T) {
	c := NewClassifier(DefaultSensitiveNames())

	tests := []struct {
		name      string
		path      string
		sensitive bool
	}{
		{name: "bare env file", path: ".env", sensitive: true},
		{name: "env file in home", path: "/home/user/.env", sensitive: true},
		{name: "env local", path: "project/.env.local", sensitive: true},
		{name: "ssh private key", path: "/home/user/.ssh/id_rsa", sensitive: true},
		{name: "pem key", path: "keys/private_key.pem", sensitive: true},
		{name: "non-ascii name", path: "/home/user/docs/重要資訊.txt", sensitive: true},
		{name: "aws credentials", path: "/home/user/.aws/credentials", sensitive: true},
		{name: "plain text file", path: "/home/user/notes.txt", sensitive: false},
		{name: "source file", path: "main.go", sensitive: false},
		{name: "near miss suffix", path: "config.json.bak", sensitive: false},
		{name: "near miss prefix", path: "myconfig.json", sensitive: false},
		{name: "near miss env", path: ".environment", sensitive: false},
		{name: "sensitive name as directory", path: ".env/readme.md", sensitive: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sensitive, c.Sensitive(tt.path), "path %q", tt.path)
		})
	}
}

func TestClassifier_CaseInsensitive(t *testing.T) {
	c := NewClassifier(DefaultSensitiveNames())

	// Every denylist entry must match under arbitrary casing.
	for _, name := range DefaultSensitiveNames() {
		runes := []rune(name)
		half := len(runes)/2 + 1
		mixed := strings.ToUpper(string(runes[:half])) + strings.ToLower(string(runes[half:]))
		assert.True(t, c.Sensitive(name), "as authored: %q", name)
		assert.True(t, c.Sensitive(strings.ToUpper(name)), "upper: %q", name)
		assert.True(t, c.Sensitive(mixed), "mixed: %q", mixed)
	}

	assert.True(t, c.Sensitive("/home/user/.ENV"))
	assert.True(t, c.Sensitive("C:\\Users\\user\\.Env"))
	assert.True(t, c.Sensitive("ID_RSA"))
}

func TestClassifier_SeparatorInvariance(t *testing.T) {
	c := NewClassifier(DefaultSensitiveNames())

	paths := []string{
		".env",
		"a/b/.env",
		"a\\b\\.env",
		"/a/b/.env",
		"C:\\a\\b\\.env",
		"a/b\\.env",
	}
	for _, path := range paths {
		assert.True(t, c.Sensitive(path), "path %q", path)
	}
}

func TestClassifier_NoFilenameComponent(t *testing.T) {
	c := NewClassifier(DefaultSensitiveNames())

	assert.False(t, c.Sensitive(""))
	assert.False(t, c.Sensitive("/"))
	assert.False(t, c.Sensitive("a/b/"))
	assert.False(t, c.Sensitive("a\\b\\"))
	assert.False(t, c.Sensitive("/home/user/.env/"))
}

func TestClassifier_SkipsEmptyEntries(t *testing.T) {
	c := NewClassifier([]string{"", "secret.yaml"})

	assert.False(t, c.Sensitive(""))
	assert.True(t, c.Sensitive("secret.yaml"))
	assert.Len(t, c.Names(), 1)
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "", want: ""},
		{path: "/", want: ""},
		{path: "a/b/", want: ""},
		{path: "a\\b\\", want: ""},
		{path: ".env", want: ".env"},
		{path: "/home/user/.env", want: ".env"},
		{path: "C:\\Users\\user\\secrets.json", want: "secrets.json"},
		{path: "relative/path/notes.txt", want: "notes.txt"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BaseName(tt.path), "path %q", tt.path)
	}
}
