// Package config provides the configuration loader for forge.
package config

import (
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration at path. A directory (or an empty path,
// meaning the working directory) is searched upwards for forge.yaml.
func (l *Loader) Load(path string) (*domain.Config, error) {
	configPath, err := l.findConfiguration(path)
	if err != nil {
		return nil, err
	}

	//nolint:gosec // config path is chosen by the user
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}
	for _, key := range slices.Sorted(maps.Keys(raw)) {
		if _, ok := knownKeys[key]; !ok {
			l.Logger.Warn("ignoring unknown config key " + key)
		}
	}

	var file Forgefile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	cfg := toDomain(&file, filepath.Dir(configPath))
	if err := validate(cfg); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	return cfg, nil
}

func (l *Loader) findConfiguration(path string) (string, error) {
	if path == "" {
		path = "."
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", abs)
	}
	if !info.IsDir() {
		return abs, nil
	}

	for dir := abs; ; {
		candidate := filepath.Join(dir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", zerr.With(zerr.Wrap(fs.ErrNotExist, domain.ErrConfigReadFailed.Error()), "path", filepath.Join(abs, domain.ConfigFileName))
}

func toDomain(f *Forgefile, root string) *domain.Config {
	return &domain.Config{
		Root:            root,
		ProgramName:     f.ProgramName,
		ProgramIcon:     absPath(root, f.ProgramIcon),
		SourceDirs:      absPaths(root, f.SourceDirs),
		BuildDir:        absPath(root, str(f.BuildDir, DefaultBuildDir)),
		BinDirName:      str(f.BinDirName, DefaultBinDirName),
		ObjDirName:      str(f.ObjDirName, DefaultObjDirName),
		LibsOutput:      str(f.LibsOutput, DefaultLibsOutput),
		BuildLogging:    boolean(f.BuildLogging, true),
		MultiThreads:    boolean(f.MultiThreads, true),
		Strip:           boolean(f.Strip, false),
		ProgressPercent: boolean(f.ProgressPercent, true),
		ConsoleDisabled: boolean(f.ConsoleDisabled, false),
		Defines:         nonEmpty(f.Defines),
		Includes:        absPaths(root, f.Includes),
		Libraries:       absPaths(root, f.Libraries),
		LibNames:        nonEmpty(f.LibNames),
		Optimization:    str(f.Optimization, DefaultOptimization),
		StdC:            str(f.StdC, DefaultStdC),
		StdCPP:          str(f.StdCPP, DefaultStdCPP),
		CompilerC:       str(f.CompilerC, DefaultCompilerC),
		CompilerCPP:     str(f.CompilerCPP, DefaultCompilerCPP),
		Linker:          str(f.Linker, DefaultLinker),
		Warnings:        nonEmpty(f.Warnings),
		ExtraCompile:    nonEmpty(f.CompileFlags),
		ExtraLink:       nonEmpty(f.LinkerFlags),
	}
}

func validate(cfg *domain.Config) error {
	switch {
	case strings.TrimSpace(cfg.ProgramName) == "":
		return zerr.With(domain.ErrConfigInvalid, "field", "program-name")
	case strings.ContainsAny(cfg.ProgramName, `/\`):
		return zerr.With(zerr.With(domain.ErrConfigInvalid, "field", "program-name"), "value", cfg.ProgramName)
	case len(cfg.SourceDirs) == 0:
		return zerr.With(domain.ErrConfigInvalid, "field", "source-dirs")
	case cfg.CompilerC == "":
		return zerr.With(domain.ErrConfigInvalid, "field", "compiler-c")
	case cfg.CompilerCPP == "":
		return zerr.With(domain.ErrConfigInvalid, "field", "compiler-cpp")
	case cfg.Linker == "":
		return zerr.With(domain.ErrConfigInvalid, "field", "linker")
	case cfg.ObjDirName == "":
		return zerr.With(domain.ErrConfigInvalid, "field", "obj-dir-name")
	case cfg.BinDirName == "":
		return zerr.With(domain.ErrConfigInvalid, "field", "bin-dir-name")
	}
	return nil
}

func str(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

func boolean(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func absPath(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

func absPaths(root string, in []string) []string {
	out := nonEmpty(in)
	for i, p := range out {
		out[i] = absPath(root, p)
	}
	return out
}
