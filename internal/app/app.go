// Package app implements the application layer for forge.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"go.trai.ch/forge/internal/build"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/engine/scheduler"
	"go.trai.ch/forge/internal/engine/staleness"
	"go.trai.ch/zerr"
)

// Dependencies are the collaborators an App orchestrates.
type Dependencies struct {
	ConfigLoader ports.ConfigLoader
	Locator      ports.SourceLocator
	Analyzers    ports.AnalyzerFactory
	Store        ports.StateStore
	Artifacts    ports.ArtifactStore
	Toolchain    ports.Toolchain
	Linker       ports.Linker
	Embedder     ports.ResourceEmbedder
	Libraries    ports.LibraryResolver
	Renderer     ports.Renderer
	Telemetry    ports.Telemetry
	Logger       ports.Logger
	Scheduler    *scheduler.Scheduler
	Watcher      ports.Watcher
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	locator      ports.SourceLocator
	analyzers    ports.AnalyzerFactory
	store        ports.StateStore
	artifacts    ports.ArtifactStore
	toolchain    ports.Toolchain
	linker       ports.Linker
	embedder     ports.ResourceEmbedder
	libraries    ports.LibraryResolver
	renderer     ports.Renderer
	telemetry    ports.Telemetry
	logger       ports.Logger
	scheduler    *scheduler.Scheduler
	watcher      ports.Watcher
	platform     string
	version      string
}

// New creates a new App instance.
func New(deps Dependencies) *App {
	return &App{
		configLoader: deps.ConfigLoader,
		locator:      deps.Locator,
		analyzers:    deps.Analyzers,
		store:        deps.Store,
		artifacts:    deps.Artifacts,
		toolchain:    deps.Toolchain,
		linker:       deps.Linker,
		embedder:     deps.Embedder,
		libraries:    deps.Libraries,
		renderer:     deps.Renderer,
		telemetry:    deps.Telemetry,
		logger:       deps.Logger,
		scheduler:    deps.Scheduler,
		watcher:      deps.Watcher,
		platform:     runtime.GOOS,
		version:      build.Version,
	}
}

// WithPlatform overrides the platform recorded in the build state and used
// for platform specific link flags.
func (a *App) WithPlatform(goos string) *App {
	a.platform = goos
	return a
}

// WithVersion overrides the tool version recorded in the build state.
func (a *App) WithVersion(version string) *App {
	a.version = version
	return a
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	ConfigPath string
	Clear      bool
}

// BuildReport describes a successful build.
type BuildReport struct {
	Decision  domain.RebuildDecision
	Compiled  []string
	Binary    string
	Libraries []string
}

// Build runs one incremental build cycle. The state record is only written
// when every step succeeded.
func (a *App) Build(ctx context.Context, opts BuildOptions) (*BuildReport, error) {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return a.build(ctx, cfg, opts.Clear)
}

//nolint:cyclop,funlen // orchestration function
func (a *App) build(ctx context.Context, cfg *domain.Config, reset bool) (*BuildReport, error) {
	start := time.Now()
	a.configure(cfg)

	mode := scheduler.ModeSequential
	if cfg.MultiThreads {
		mode = scheduler.ModeParallel
	}
	pool := a.scheduler.Pool(mode)

	// 1. Discover sources and libraries
	var units []domain.SourceUnit
	if err := a.step(ctx, "locate sources", func(context.Context) error {
		var err error
		units, err = a.locator.Locate(cfg.SourceDirs)
		return err
	}); err != nil {
		return nil, err
	}

	var libs []string
	if err := a.step(ctx, "resolve libraries", func(context.Context) error {
		var err error
		libs, err = a.libraries.Resolve(cfg.Libraries, cfg.LibNames)
		return err
	}); err != nil {
		return nil, err
	}

	compileFlags := cfg.CompileArgs()
	linkFlags := cfg.LinkArgs(a.platform)
	libFlags := cfg.LibraryArgs()
	a.logHeader(compileFlags, linkFlags, libFlags, libs, cfg.MultiThreads, pool.Workers())

	// 2. Analyse header dependencies
	headers := make([]domain.HeaderSet, len(units))
	if err := a.step(ctx, "analysis", func(ctx context.Context) error {
		analyzer := a.analyzers.NewAnalyzer(cfg.Includes)
		_, err := pool.Run(ctx, "analysis", len(units), func(_ context.Context, _ *scheduler.Phase, i int) error {
			set, err := analyzer.Closure(units[i].Path)
			if err != nil {
				return err
			}
			headers[i] = set
			return nil
		})
		return err
	}); err != nil {
		return nil, err
	}

	// 3. Compare with the previous build
	prev, status, err := a.store.Load(cfg.StatePath(), a.version)
	if err != nil {
		return nil, err
	}

	curr, err := a.currentState(cfg, units, headers)
	if err != nil {
		return nil, err
	}

	decision := staleness.Detect(prev, curr, status, reset)
	a.logResets(decision)

	// 4. Prepare the output tree
	if err := prepareDirs(cfg); err != nil {
		return nil, err
	}

	var mustBuild []string
	if err := a.step(ctx, "reconcile artifacts", func(ctx context.Context) error {
		var err error
		mustBuild, err = staleness.Reconcile(ctx, decision, curr, cfg.ObjDir(), cfg.Root, a.artifacts)
		return err
	}); err != nil {
		return nil, err
	}

	if err := a.step(ctx, "embed resources", func(ctx context.Context) error {
		_, err := a.embedder.Embed(ctx, cfg.ProgramIcon, cfg.ObjDir())
		return err
	}); err != nil {
		return nil, err
	}

	// 5. Compile
	byPath := make(map[string]domain.SourceUnit, len(units))
	for _, u := range units {
		byPath[u.Path] = u
	}

	if err := a.step(ctx, "compile", func(ctx context.Context) error {
		_, err := pool.Run(ctx, "compile", len(mustBuild), func(ctx context.Context, ph *scheduler.Phase, i int) error {
			unit := byPath[mustBuild[i]]
			ph.Log(displayPath(cfg.Root, unit.Path))

			compiler, std := cfg.Compiler(unit.Kind)
			_, err := a.toolchain.Compile(ctx, ports.CompileRequest{
				Dir:      cfg.Root,
				Source:   unit,
				Object:   domain.ObjectPath(cfg.ObjDir(), cfg.Root, unit.Path),
				Compiler: compiler,
				Std:      std,
				Flags:    compileFlags,
			})
			return err
		})
		return err
	}); err != nil {
		return nil, err
	}

	// 6. Link and ship runtime libraries
	var binary string
	if err := a.step(ctx, "link", func(ctx context.Context) error {
		objects, err := a.artifacts.List(cfg.ObjDir())
		if err != nil {
			return err
		}

		linkStart := time.Now()
		binary, err = a.linker.Link(ctx, ports.LinkRequest{
			Dir:      cfg.Root,
			Linker:   cfg.Linker,
			Objects:  objects,
			Flags:    linkFlags,
			LibFlags: libFlags,
			Output:   cfg.BinaryPath(),
		})
		if err != nil {
			return err
		}
		a.logger.Info(fmt.Sprintf("Linking finished: %s", seconds(time.Since(linkStart))))
		return nil
	}); err != nil {
		return nil, err
	}

	if len(libs) > 0 {
		if err := a.step(ctx, "copy libraries", func(context.Context) error {
			copyStart := time.Now()
			if err := a.libraries.Copy(libs, cfg.LibsDir()); err != nil {
				return err
			}
			a.logger.Info(fmt.Sprintf("Copying libs finished: %s", seconds(time.Since(copyStart))))
			return nil
		}); err != nil {
			return nil, err
		}
	}

	// 7. Persist
	if err := a.store.Save(cfg.StatePath(), curr); err != nil {
		return nil, err
	}
	a.logger.Info(fmt.Sprintf("Build finished: %s", seconds(time.Since(start))))

	return &BuildReport{
		Decision:  decision,
		Compiled:  mustBuild,
		Binary:    binary,
		Libraries: libs,
	}, nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	ConfigPath string
}

// Clean removes the object directory, the bin directory and the state record.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	var errs error
	remove := func(path, name string) {
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, domain.ErrArtifactCleanupFailed.Error()), "path", path))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	remove(cfg.ObjDir(), "object directory")
	remove(cfg.BinDir(), "bin directory")

	if err := a.store.Remove(cfg.StatePath()); err != nil {
		errs = errors.Join(errs, err)
	} else {
		a.logger.Info("removed build state")
	}

	return errs
}

// Watch builds once and then rebuilds whenever a source or header below the
// configured directories changes. Build failures are logged and watching
// continues. It returns when ctx is cancelled.
func (a *App) Watch(ctx context.Context, opts BuildOptions) error {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if _, err := a.build(ctx, cfg, opts.Clear); err != nil {
		a.logger.Error(err)
	}

	if err := a.watcher.Start(ctx, cfg.WatchRoots(), cfg.WatchExcludes()); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Close()
	}()
	a.logger.Info("Watching for changes...")

	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-a.watcher.Events():
			a.logger.Info(fmt.Sprintf("%d file(s) changed, rebuilding", len(paths)))
			if _, err := a.Build(ctx, BuildOptions{ConfigPath: opts.ConfigPath}); err != nil {
				a.logger.Error(err)
			}
		}
	}
}

// Close flushes the telemetry recording.
func (a *App) Close() error {
	if a.telemetry == nil {
		return nil
	}
	return a.telemetry.Close()
}

func (a *App) configure(cfg *domain.Config) {
	if v, ok := a.logger.(interface{ SetVerbose(bool) }); ok {
		v.SetVerbose(cfg.BuildLogging)
	}
	a.renderer.Configure(ports.RenderOptions{
		Verbose: cfg.BuildLogging,
		Percent: cfg.ProgressPercent,
	})
}

// step records fn as a telemetry vertex.
func (a *App) step(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, vertex := a.telemetry.Record(ctx, name)
	err := fn(ctx)
	vertex.Complete(err)
	return err
}

func (a *App) currentState(cfg *domain.Config, units []domain.SourceUnit, headers []domain.HeaderSet) (*domain.BuildState, error) {
	snapshot, err := json.Marshal(cfg)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigInvalid.Error())
	}

	curr := domain.NewBuildState(domain.Fingerprint{
		OS:          a.platform,
		ToolVersion: a.version,
		Config:      snapshot,
	})
	for i, u := range units {
		curr.Files[u.Path] = domain.FileEntry{Time: u.ModTime, Headers: headers[i].Clone()}
	}
	return curr, nil
}

func (a *App) logHeader(compileFlags, linkFlags, libFlags, libs []string, multi bool, workers int) {
	a.logger.Info(fmt.Sprintf("Compile flags: %q", strings.Join(compileFlags, " ")))
	a.logger.Info(fmt.Sprintf("Linker flags: %q", strings.Join(append(append([]string(nil), linkFlags...), libFlags...), " ")))
	if len(libs) > 0 {
		names := make([]string, len(libs))
		for i, l := range libs {
			names[i] = filepath.Base(l)
		}
		a.logger.Info(fmt.Sprintf("Dynamic libs (%d): [%s]", len(libs), strings.Join(names, ", ")))
	}
	if multi {
		a.logger.Info(fmt.Sprintf("Using %d cpu threads.", workers))
	}
}

func (a *App) logResets(d domain.RebuildDecision) {
	for _, r := range d.Resets {
		switch r.Kind {
		case domain.ResetClearRequested:
			a.logger.Warn("Used clear flag for reset build.")
		case domain.ResetNoPreviousState:
			a.logger.Warn("No previous build state found.")
		case domain.ResetIncompatibleState:
			a.logger.Warn("Build state was written by another version.")
		case domain.ResetConfigChanged:
			a.logger.Warn("Build config edited.")
		case domain.ResetPlatformChanged:
			a.logger.Warn(fmt.Sprintf("Build on a new system (%s).", r.Detail))
		}
	}
	if d.WholeReset() {
		a.logger.Info("Recompiling all files.")
	}
}

// prepareDirs creates the object directory and recreates the bin directory.
func prepareDirs(cfg *domain.Config) error {
	if err := os.MkdirAll(cfg.ObjDir(), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputDirFailed.Error()), "path", cfg.ObjDir())
	}
	if err := os.RemoveAll(cfg.BinDir()); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputDirFailed.Error()), "path", cfg.BinDir())
	}
	if err := os.MkdirAll(cfg.BinDir(), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputDirFailed.Error()), "path", cfg.BinDir())
	}
	return nil
}

func displayPath(root, path string) string {
	if root == "" {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}
