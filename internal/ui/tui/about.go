package tui

import (
	"fmt"
	"runtime"

	"vault/internal/buildinfo"
)

// AppName is shown in the about dialog and the menu bar.
const AppName = "The Vault"

// About describes the running program and its environment.
type About struct {
	Version       string
	GoVersion     string
	GormVersion   string
	SQLiteVersion string
	OS            string
	Arch          string
	Width         int
	Height        int
}

// CollectAbout gathers build and runtime details. sqliteVersion comes from
// the open database.
func CollectAbout(sqliteVersion string) About {
	if sqliteVersion == "" {
		sqliteVersion = buildinfo.Unknown
	}
	return About{
		Version:       buildinfo.String(),
		GoVersion:     buildinfo.GoVersion(),
		GormVersion:   buildinfo.ModuleVersion("gorm.io/gorm"),
		SQLiteVersion: sqliteVersion,
		OS:            runtime.GOOS,
		Arch:          runtime.GOARCH,
	}
}

// Lines renders the details one per line. The terminal size is left out when
// unknown.
func (a About) Lines() []string {
	lines := []string{
		fmt.Sprintf("Version: %s", a.Version),
		fmt.Sprintf("Go: %s", a.GoVersion),
		fmt.Sprintf("GORM: %s", a.GormVersion),
		fmt.Sprintf("SQLite: %s", a.SQLiteVersion),
		fmt.Sprintf("Operating System: %s (%s)", a.OS, a.Arch),
	}
	if a.Width > 0 && a.Height > 0 {
		lines = append(lines, fmt.Sprintf("Terminal: %dx%d", a.Width, a.Height))
	}
	return lines
}
