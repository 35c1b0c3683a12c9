package mcpserver

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeSlice(t *testing.T) {
	assert.Nil(t, makeSlice[string](0))
	s := makeSlice[string](3)
	assert.NotNil(t, s)
	assert.Empty(t, s)
	assert.Equal(t, 3, cap(s))
}

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error returns empty string",
			err:  nil,
			want: "",
		},
		{
			name: "strips absolute path",
			err:  fmt.Errorf("failed to open /home/user/secret/api.yaml: no such file"),
			want: "failed to open <path>: no such file",
		},
		{
			name: "preserves non-path content",
			err:  fmt.Errorf("invalid JSON at line 5"),
			want: "invalid JSON at line 5",
		},
		{
			name: "strips multiple paths",
			err:  fmt.Errorf("write /tmp/out/Models/Pet.cs and /tmp/out/README.md failed"),
			want: "write <path> and <path> failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeError(tt.err))
		})
	}
}

func TestErrResult(t *testing.T) {
	res := errResult(fmt.Errorf("cannot read /root/spec.yaml"))
	require.NotNil(t, res)
	assert.True(t, res.IsError)
	assert.Equal(t, "cannot read <path>", textContent(t, res))
}

func TestResolveOutputDir(t *testing.T) {
	root := t.TempDir()
	saved := cfg.OutputRoot
	t.Cleanup(func() { cfg.OutputRoot = saved })

	cfg.OutputRoot = ""
	got, err := resolveOutputDir("some/dir")
	require.NoError(t, err)
	assert.Equal(t, "some/dir", got)

	_, err = resolveOutputDir("")
	assert.ErrorContains(t, err, "output_dir is required")

	cfg.OutputRoot = root
	tests := []struct {
		name    string
		dir     string
		want    string
		wantErr bool
	}{
		{"relative", "client", filepath.Join(root, "client"), false},
		{"root itself", root, root, false},
		{"absolute inside", filepath.Join(root, "a", "b"), filepath.Join(root, "a", "b"), false},
		{"escapes upward", "../elsewhere", "", true},
		{"absolute outside", filepath.Join(filepath.Dir(root), "other"), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveOutputDir(tt.dir)
			if tt.wantErr {
				assert.ErrorContains(t, err, "inside the configured output root")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
