package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/autodeps/internal/core/domain"
)

func TestNewTarget_Naming(t *testing.T) {
	tests := []struct {
		name      string
		output    string
		wantName  string
		wantExt   string
		wantDir   string
		isLibrary bool
		isTest    bool
	}{
		{
			name:      "shared library strips lib prefix",
			output:    "/build/lib/libfoo.so",
			wantName:  "foo",
			wantExt:   ".so",
			wantDir:   "/build/lib",
			isLibrary: true,
		},
		{
			name:     "plain program",
			output:   "run_thing",
			wantName: "run_thing",
		},
		{
			name:     "test program by tst",
			output:   "bin/run_tst_thing",
			wantName: "run_tst_thing",
			wantDir:  "bin",
			isTest:   true,
		},
		{
			name:      "library named like a test is still a library",
			output:    "libtest_helpers.so",
			wantName:  "test_helpers",
			wantExt:   ".so",
			isLibrary: true,
		},
		{
			name:     "executable with lib prefix loses it",
			output:   "libtool_main",
			wantName: "tool_main",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := domain.NewTarget(tt.output, "mod", "mod", "/src/", nil, nil)
			assert.Equal(t, tt.wantName, target.Name)
			assert.Equal(t, tt.wantExt, target.Extension)
			assert.Equal(t, tt.wantDir, target.OutputDir)
			assert.Equal(t, tt.isLibrary, target.IsLibrary())
			assert.Equal(t, !tt.isLibrary, target.IsExecutable())
			assert.Equal(t, tt.isTest, target.IsTest())
		})
	}
}

func TestTarget_AddLibraries(t *testing.T) {
	target := domain.NewTarget("libfoo.so", "m", "m", "/src/", nil, []string{"z", "a"})
	target.AddLibraries("b", "a")

	assert.Equal(t, []string{"a", "b", "z"}, target.Libraries)
}

func TestTarget_Entry(t *testing.T) {
	target := domain.NewTarget(
		"/build/modA/libfoo.so",
		"modA",
		"modA",
		"/src/",
		[]string{"/src/modA/a.cpp", "/src/modA/sub/b.cpp", "gen/c.cpp", "/src/modAB/d.cpp"},
		[]string{"bar"},
	)
	target.IncludePaths = []string{"include"}

	entry := target.Entry()

	assert.Equal(t, domain.TargetEntry{
		Name:             "foo",
		Sources:          []string{"a.cpp", "sub/b.cpp", "../modAB/d.cpp"},
		Location:         "/build/modA",
		GeneratedSources: []string{"gen/c.cpp", "/src/modAB/d.cpp"},
		IncludePaths:     []string{"include"},
		Dependencies:     []string{"bar"},
	}, entry)
}

func TestTarget_EntryMinimal(t *testing.T) {
	target := domain.NewTarget("tool", "", ".", "/src/", []string{"/src/tool.c"}, nil)

	assert.Equal(t, domain.TargetEntry{
		Name:    "tool",
		Sources: []string{"tool.c"},
	}, target.Entry())
}
