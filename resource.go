package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/josephspurrier/goversioninfo"
	"golang.org/x/mod/semver"
)

var sysoArchs = []string{"386", "amd64", "arm", "arm64"}

// ValidSysoArch reports whether arch is a target goversioninfo can emit.
func ValidSysoArch(arch string) bool {
	for _, a := range sysoArchs {
		if a == arch {
			return true
		}
	}
	return false
}

// parseFileVersion converts a build version such as "v1.2.3" into the
// numeric file version Windows expects. Invalid versions map to 0.0.0.0.
func parseFileVersion(v string) goversioninfo.FileVersion {
	if !semver.IsValid(v) {
		return goversioninfo.FileVersion{}
	}
	core := strings.TrimPrefix(semver.Canonical(v), "v")
	core = strings.TrimSuffix(core, semver.Build(v))
	core = strings.TrimSuffix(core, semver.Prerelease(v))

	var nums [3]int
	for i, part := range strings.SplitN(core, ".", 3) {
		n, err := strconv.Atoi(part)
		if err != nil {
			return goversioninfo.FileVersion{}
		}
		nums[i] = n
	}
	return goversioninfo.FileVersion{Major: nums[0], Minor: nums[1], Patch: nums[2]}
}

// buildVersionInfo describes a Windows resource carrying icoPath as the
// application icon.
func buildVersionInfo(icoPath string) *goversioninfo.VersionInfo {
	fv := parseFileVersion(Version)

	vi := &goversioninfo.VersionInfo{}
	vi.IconPath = icoPath
	vi.FixedFileInfo.FileVersion = fv
	vi.FixedFileInfo.ProductVersion = fv
	vi.FixedFileInfo.FileFlagsMask = "3f"
	vi.FixedFileInfo.FileOS = "040004"
	vi.FixedFileInfo.FileType = "01"
	vi.StringFileInfo.FileDescription = "Arrow cursor icon"
	vi.StringFileInfo.FileVersion = Version
	vi.StringFileInfo.ProductVersion = Version
	vi.StringFileInfo.ProductName = appName
	vi.StringFileInfo.InternalName = appName
	vi.VarFileInfo.Translation.LangID = goversioninfo.LngUSEnglish
	vi.VarFileInfo.Translation.CharsetID = goversioninfo.CsUnicode
	return vi
}

// writeSyso emits a COFF resource object embedding the icon at icoPath.
func writeSyso(path, arch, icoPath string) error {
	if !ValidSysoArch(arch) {
		return fmt.Errorf("unsupported syso arch %q", arch)
	}
	vi := buildVersionInfo(icoPath)
	vi.Build()
	vi.Walk()
	if err := vi.WriteSyso(path, arch); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
