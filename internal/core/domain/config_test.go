package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/forge/internal/core/domain"
)

func TestConfig_CompileArgs(t *testing.T) {
	cfg := &domain.Config{
		Optimization: "-O2",
		Defines:      []string{"DEBUG", "VERSION=2"},
		Includes:     []string{"/proj/include"},
		Warnings:     []string{"-Wall"},
		ExtraCompile: []string{"-fPIC"},
	}

	assert.Equal(t,
		[]string{"-O2", "-DDEBUG", "-DVERSION=2", "-I/proj/include", "-Wall", "-fPIC"},
		cfg.CompileArgs(),
	)
}

func TestConfig_LinkArgs(t *testing.T) {
	cfg := &domain.Config{Strip: true, ConsoleDisabled: true, ExtraLink: []string{"-pthread"}}

	assert.Equal(t, []string{"-s", "-pthread"}, cfg.LinkArgs("linux"))
	assert.Equal(t, []string{"-Wl,-x", "-pthread"}, cfg.LinkArgs("darwin"))
	assert.Equal(t, []string{"-s", "-mwindows", "-pthread"}, cfg.LinkArgs("windows"))
}

func TestConfig_LibraryArgs(t *testing.T) {
	cfg := &domain.Config{Libraries: []string{"/proj/lib"}, LibNames: []string{"SDL2", "m"}}
	assert.Equal(t, []string{"-L/proj/lib", "-lSDL2", "-lm"}, cfg.LibraryArgs())
}

func TestConfig_Compiler(t *testing.T) {
	cfg := &domain.Config{CompilerC: "gcc", StdC: "c17", CompilerCPP: "g++", StdCPP: "c++20"}

	prog, std := cfg.Compiler(domain.KindC)
	assert.Equal(t, "gcc", prog)
	assert.Equal(t, "c17", std)

	prog, std = cfg.Compiler(domain.KindCXX)
	assert.Equal(t, "g++", prog)
	assert.Equal(t, "c++20", std)
}

func TestConfig_Paths(t *testing.T) {
	cfg := &domain.Config{
		ProgramName: "game",
		BuildDir:    "/proj/build",
		BinDirName:  "bin",
		ObjDirName:  "obj",
		LibsOutput:  "libs",
	}

	assert.Equal(t, filepath.Join("/proj/build", "obj"), cfg.ObjDir())
	assert.Equal(t, filepath.Join("/proj/build", "bin", "game"), cfg.BinaryPath())
	assert.Equal(t, filepath.Join("/proj/build", "bin", "libs"), cfg.LibsDir())
	assert.Equal(t, filepath.Join("/proj/build", domain.StateFileName), cfg.StatePath())
}

func TestConfig_WatchRoots(t *testing.T) {
	cfg := &domain.Config{SourceDirs: []string{"/p/src", "/p/include"}, Includes: []string{"/p/include", "/p/vendor"}}
	assert.Equal(t, []string{"/p/src", "/p/include", "/p/vendor"}, cfg.WatchRoots())
}

func TestConfig_WatchExcludes(t *testing.T) {
	cfg := &domain.Config{SourceDirs: []string{"/p"}, BuildDir: "/p/build"}
	assert.Equal(t, []string{"/p/build"}, cfg.WatchExcludes())
}
