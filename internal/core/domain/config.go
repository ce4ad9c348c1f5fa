package domain

import (
	"path/filepath"
	"slices"
)

// Config is the validated project configuration.
// All paths are absolute once produced by the config loader.
type Config struct {
	// Root is the directory containing the configuration file.
	Root string `json:"-"`

	ProgramName     string   `json:"program-name"`
	ProgramIcon     string   `json:"program-icon,omitempty"`
	SourceDirs      []string `json:"source-dirs"`
	BuildDir        string   `json:"build-dir"`
	BinDirName      string   `json:"bin-dir-name"`
	ObjDirName      string   `json:"obj-dir-name"`
	LibsOutput      string   `json:"libs-output"`
	BuildLogging    bool     `json:"build-logging"`
	MultiThreads    bool     `json:"multi-threads"`
	Strip           bool     `json:"strip"`
	ProgressPercent bool     `json:"progress-percent"`
	ConsoleDisabled bool     `json:"console-disabled"`
	Defines         []string `json:"defines"`
	Includes        []string `json:"includes"`
	Libraries       []string `json:"libraries"`
	LibNames        []string `json:"libnames"`
	Optimization    string   `json:"optimization"`
	StdC            string   `json:"std-c"`
	StdCPP          string   `json:"std-cpp"`
	CompilerC       string   `json:"compiler-c"`
	CompilerCPP     string   `json:"compiler-cpp"`
	Linker          string   `json:"linker"`
	Warnings        []string `json:"warnings"`
	ExtraCompile    []string `json:"compile-flags"`
	ExtraLink       []string `json:"linker-flags"`
}

// ObjDir is where object artifacts live.
func (c *Config) ObjDir() string {
	return filepath.Join(c.BuildDir, c.ObjDirName)
}

// BinDir is where the linked program and its libraries are placed.
func (c *Config) BinDir() string {
	return filepath.Join(c.BuildDir, c.BinDirName)
}

// BinaryPath is the output path handed to the linker.
func (c *Config) BinaryPath() string {
	return filepath.Join(c.BinDir(), c.ProgramName)
}

// LibsDir is where runtime libraries are copied.
func (c *Config) LibsDir() string {
	return filepath.Join(c.BinDir(), c.LibsOutput)
}

// StatePath is the location of the persisted build state.
func (c *Config) StatePath() string {
	return filepath.Join(c.BuildDir, StateFileName)
}

// Compiler returns the program and language standard used for kind.
func (c *Config) Compiler(kind SourceKind) (program, std string) {
	if kind == KindCXX {
		return c.CompilerCPP, c.StdCPP
	}
	return c.CompilerC, c.StdC
}

// CompileArgs returns the flags shared by every compile invocation:
// optimisation, defines, include directories, warnings and extra flags.
func (c *Config) CompileArgs() []string {
	args := make([]string, 0, 1+len(c.Defines)+len(c.Includes)+len(c.Warnings)+len(c.ExtraCompile))
	if c.Optimization != "" {
		args = append(args, c.Optimization)
	}
	for _, d := range c.Defines {
		args = append(args, "-D"+d)
	}
	for _, inc := range c.Includes {
		args = append(args, "-I"+inc)
	}
	args = append(args, c.Warnings...)
	return append(args, c.ExtraCompile...)
}

// LinkArgs returns the linker flags for the target platform goos.
func (c *Config) LinkArgs(goos string) []string {
	var args []string
	if c.Strip {
		if goos == "darwin" {
			args = append(args, "-Wl,-x")
		} else {
			args = append(args, "-s")
		}
	}
	if c.ConsoleDisabled && goos == "windows" {
		args = append(args, "-mwindows")
	}
	return append(args, c.ExtraLink...)
}

// LibraryArgs returns the -L and -l flags for the configured libraries.
func (c *Config) LibraryArgs() []string {
	args := make([]string, 0, len(c.Libraries)+len(c.LibNames))
	for _, dir := range c.Libraries {
		args = append(args, "-L"+dir)
	}
	for _, name := range c.LibNames {
		args = append(args, "-l"+name)
	}
	return args
}

// WatchExcludes returns the directories whose changes a build causes itself.
func (c *Config) WatchExcludes() []string {
	return []string{c.BuildDir}
}

// WatchRoots returns the directories whose changes can affect a build.
func (c *Config) WatchRoots() []string {
	roots := slices.Clone(c.SourceDirs)
	for _, inc := range c.Includes {
		if !slices.Contains(roots, inc) {
			roots = append(roots, inc)
		}
	}
	return roots
}
