package domain

const (
	// ConfigFileName is the default name of the project configuration file.
	ConfigFileName = "forge.yaml"

	// StateFileName is the name of the persisted build state inside the build directory.
	StateFileName = "forge-state.json"

	// ObjectExt is the extension of every object artifact.
	ObjectExt = ".o"

	// ResourceObjectName is the object produced by resource embedding.
	ResourceObjectName = "icon" + ObjectExt

	// ResourceScriptName is the resource script handed to the resource compiler.
	ResourceScriptName = "icon.rc"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
