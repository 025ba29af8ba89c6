package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFileType(t *testing.T) {
	tests := []struct {
		path string
		want FileType
	}{
		{"app.py", FileTypePython},
		{"lib.rs", FileTypeRust},
		{"Main.java", FileTypeJava},
		{"index.php", FileTypePHP},
		{"values.yaml", FileTypeYAML},
		{"values.yml", FileTypeYAML},
		{"package.json", FileTypeJSON},
		{"Dockerfile", FileTypeDockerfile},
		{"Dockerfile.prod", FileTypeDockerfile},
		{"/srv/app/Dockerfile", FileTypeDockerfile},
		{"README.md", FileTypeGeneric},
		{"noext", FileTypeGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFileType(tt.path))
		})
	}
}

func TestFileIR_Suppression(t *testing.T) {
	f := NewFileIR("a.py", FileTypePython)
	assert.False(t, f.IsSuppressed(10))
	f.Suppressed[10] = struct{}{}
	assert.True(t, f.IsSuppressed(10))
}

func TestFileIR_MarkParseError(t *testing.T) {
	f := NewFileIR("a.py", FileTypePython)
	f.MarkParseError()
	assert.True(t, f.FailedParse)
	assert.Contains(t, f.Symbols, "__parse_error__")
	assert.Equal(t, SymbolSpecial, f.SymbolTypes["__parse_error__"])
}

func TestHashFile_PrefersSourceOverNodes(t *testing.T) {
	f1 := NewFileIR("a.py", FileTypePython)
	f1.SetSource("print(1)")
	f2 := NewFileIR("a.py", FileTypePython)
	f2.SetSource("print(2)")
	assert.NotEqual(t, HashFile(f1), HashFile(f2))

	f3 := NewFileIR("a.py", FileTypePython)
	f3.SetSource("print(1)")
	assert.Equal(t, HashFile(f1), HashFile(f3))
}

func TestHashFile_FallsBackToNodesWithoutSource(t *testing.T) {
	f := NewFileIR("a.yaml", FileTypeYAML)
	f.Nodes = append(f.Nodes, NewIRNode("yaml", "a", "b", Location{File: "a.yaml", Line: 1}))
	h1 := HashFile(f)

	f2 := NewFileIR("a.yaml", FileTypeYAML)
	f2.Nodes = append(f2.Nodes, NewIRNode("yaml", "a", "c", Location{File: "a.yaml", Line: 1}))
	h2 := HashFile(f2)

	assert.NotEqual(t, h1, h2)
}
