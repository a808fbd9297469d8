package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
)

const appName = "cursor-ico"

// Build-time variables injected via ldflags.
var (
	Version        = "v0.0.0"
	CommitHash     = "dev"
	BuildTimestamp = "1970-01-01T00:00:00Z"
	Builder        = "unknown"
	GithubRepo     = "babs/cursor-ico"
)

func versionString() string {
	return fmt.Sprintf("%s %s-%s", appName, Version, CommitHash)
}

func versionStringLong() string {
	return fmt.Sprintf("%s %s-%s (built %s using %s)\nhttps://github.com/%s\n",
		appName, Version, CommitHash, BuildTimestamp, Builder, GithubRepo)
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmsgprefix)
	log.SetPrefix("[" + appName + "] ")

	showVersion := flag.Bool("version", false, "show version and exit")
	configFile := flag.String("config", "", "optional JSON config file")
	output := flag.String("o", "", "output .ico path, also accepted as first argument (env: CURSOR_ICO_OUTPUT)")
	preview := flag.String("preview", "", "also write an enlarged PNG preview to this path (env: CURSOR_ICO_PREVIEW)")
	previewScale := flag.Int("preview-scale", 0, "preview magnification, 1-64 (env: CURSOR_ICO_PREVIEW_SCALE)")
	syso := flag.String("syso", "", "also write a Windows resource .syso embedding the icon (env: CURSOR_ICO_SYSO)")
	sysoArch := flag.String("syso-arch", "", "syso target arch: 386, amd64, arm, arm64 (env: CURSOR_ICO_SYSO_ARCH)")
	flag.Usage = func() {
		fmt.Print(versionStringLong())
		fmt.Fprintf(os.Stderr, "\nUsage: %s [options] [output.ico]\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Print(versionStringLong())
		return
	}

	outputFlag, err := outputArg(*output, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	cfg := loadConfig(*configFile)
	applyOverrides(&cfg, overrides{
		Output:       outputFlag,
		Preview:      *preview,
		PreviewScale: *previewScale,
		Syso:         *syso,
		SysoArch:     *sysoArch,
	})

	if err := run(cfg); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// run draws the cursor and writes every configured artifact.
func run(cfg Config) error {
	grid := drawArrow()

	if err := saveICO(cfg.Output, grid); err != nil {
		return err
	}
	log.Printf("Wrote %s", cfg.Output)

	if cfg.Preview != "" {
		if err := savePreview(cfg.Preview, grid, cfg.PreviewScale); err != nil {
			return err
		}
		log.Printf("Wrote preview %s (x%d)", cfg.Preview, cfg.PreviewScale)
	}

	if cfg.Syso != "" {
		if err := writeSyso(cfg.Syso, cfg.SysoArch, cfg.Output); err != nil {
			return err
		}
		log.Printf("Wrote resource %s (%s, %s)", cfg.Syso, cfg.SysoArch, versionString())
	}
	return nil
}

// outputArg resolves the output path from -o and the optional positional
// argument. Both may be given only if they agree.
func outputArg(flagVal string, args []string) (string, error) {
	switch {
	case len(args) == 0:
		return flagVal, nil
	case len(args) > 1:
		return "", fmt.Errorf("expected at most one output path, got %d", len(args))
	case flagVal != "" && flagVal != args[0]:
		return "", fmt.Errorf("conflicting output paths: -o %q and %q", flagVal, args[0])
	}
	return args[0], nil
}

// overrides holds CLI flag values for config overrides.
type overrides struct {
	Output       string
	Preview      string
	PreviewScale int
	Syso         string
	SysoArch     string
}

// applyIntOverride sets a numeric option such as the preview scale. An env
// value that does not parse or fails valid is logged and skipped; a flag of 0
// means unset.
func applyIntOverride(target *int, envKey string, flagVal int, valid func(int) bool) {
	if v := os.Getenv(envKey); v != "" {
		if i, err := strconv.Atoi(v); err != nil || !valid(i) {
			log.Printf("Ignoring invalid %s=%q", envKey, v)
		} else {
			*target = i
		}
	}
	if valid(flagVal) {
		*target = flagVal
	}
}

// applyStringOverride sets a path or arch option. flagName is only used in
// the log line for a rejected flag value.
func applyStringOverride(target *string, envKey, flagName, flagVal string, valid func(string) bool) {
	if v := os.Getenv(envKey); v != "" {
		if !valid(v) {
			log.Printf("Ignoring invalid %s=%q", envKey, v)
		} else {
			*target = v
		}
	}
	if flagVal != "" {
		if !valid(flagVal) {
			log.Printf("Ignoring invalid -%s=%q", flagName, flagVal)
		} else {
			*target = flagVal
		}
	}
}

func anyPath(string) bool { return true }

// applyOverrides applies env vars and flags to config. Priority: flag > env > config file.
func applyOverrides(cfg *Config, o overrides) {
	applyStringOverride(&cfg.Output, "CURSOR_ICO_OUTPUT", "o", o.Output, anyPath)
	applyStringOverride(&cfg.Preview, "CURSOR_ICO_PREVIEW", "preview", o.Preview, anyPath)
	applyIntOverride(&cfg.PreviewScale, "CURSOR_ICO_PREVIEW_SCALE", o.PreviewScale, validPreviewScale)
	applyStringOverride(&cfg.Syso, "CURSOR_ICO_SYSO", "syso", o.Syso, anyPath)
	applyStringOverride(&cfg.SysoArch, "CURSOR_ICO_SYSO_ARCH", "syso-arch", o.SysoArch, ValidSysoArch)
}
