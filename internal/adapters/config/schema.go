package config

// Forgefile represents the structure of the forge.yaml configuration file.
// Pointer fields distinguish an absent key from an explicit zero value.
type Forgefile struct {
	ProgramName     string   `yaml:"program-name"`
	ProgramIcon     string   `yaml:"program-icon"`
	SourceDirs      []string `yaml:"source-dirs"`
	BuildDir        *string  `yaml:"build-dir"`
	BinDirName      *string  `yaml:"bin-dir-name"`
	ObjDirName      *string  `yaml:"obj-dir-name"`
	LibsOutput      *string  `yaml:"libs-output"`
	BuildLogging    *bool    `yaml:"build-logging"`
	MultiThreads    *bool    `yaml:"multi-threads"`
	Strip           *bool    `yaml:"strip"`
	ProgressPercent *bool    `yaml:"progress-percent"`
	ConsoleDisabled *bool    `yaml:"console-disabled"`
	Defines         []string `yaml:"defines"`
	Includes        []string `yaml:"includes"`
	Libraries       []string `yaml:"libraries"`
	LibNames        []string `yaml:"libnames"`
	Optimization    *string  `yaml:"optimization"`
	StdC            *string  `yaml:"std-c"`
	StdCPP          *string  `yaml:"std-cpp"`
	CompilerC       *string  `yaml:"compiler-c"`
	CompilerCPP     *string  `yaml:"compiler-cpp"`
	Linker          *string  `yaml:"linker"`
	Warnings        []string `yaml:"warnings"`
	CompileFlags    []string `yaml:"compile-flags"`
	LinkerFlags     []string `yaml:"linker-flags"`
}

// Defaults applied to keys missing from forge.yaml.
const (
	DefaultBuildDir     = "build"
	DefaultBinDirName   = "bin"
	DefaultObjDirName   = "obj"
	DefaultLibsOutput   = "libs"
	DefaultOptimization = "-O0"
	DefaultStdC         = "c17"
	DefaultStdCPP       = "c++17"
	DefaultCompilerC    = "gcc"
	DefaultCompilerCPP  = "g++"
	DefaultLinker       = "g++"
)

var knownKeys = map[string]struct{}{
	"program-name": {}, "program-icon": {}, "source-dirs": {}, "build-dir": {},
	"bin-dir-name": {}, "obj-dir-name": {}, "libs-output": {}, "build-logging": {},
	"multi-threads": {}, "strip": {}, "progress-percent": {}, "console-disabled": {},
	"defines": {}, "includes": {}, "libraries": {}, "libnames": {}, "optimization": {},
	"std-c": {}, "std-cpp": {}, "compiler-c": {}, "compiler-cpp": {}, "linker": {},
	"warnings": {}, "compile-flags": {}, "linker-flags": {},
}
