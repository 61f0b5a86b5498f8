// Package release stamps a versioned, integrity-hashed copy of the static
// bundle into a build directory.
package release

import (
	"context"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	_ "time/tzdata" // release ids are always stamped in US Central time

	"github.com/mcoot/linkboard/internal/dependencies/clock"
)

const (
	// BuildDirName is the output directory under the project root
	BuildDirName = "00_build"
	// ReleaseIDPlaceholder is replaced in index.html with the release id
	ReleaseIDPlaceholder = "$$release-id$$"
	// ScriptTag is the unhashed script reference in index.html
	ScriptTag = `<script src="js/main.js">`
	// TimeZone is the zone release timestamps are written in
	TimeZone = "America/Chicago"
	// ShortHashLength is the number of commit hash characters in a release id
	ShortHashLength = 10
	// FileHashLength is the number of sha256 hex characters in the script name
	FileHashLength = 32

	timestampLayout = "2006-01-02-150405"
)

var (
	// ErrCompile is returned when the compile command fails
	ErrCompile = errors.New("compile failed")
	// ErrHash is returned when the script cannot be hashed
	ErrHash = errors.New("hashing assets failed")

	timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-\d{6}$`)
)

// Config holds settings for a release build
type Config struct {
	// Root is the project root containing public/
	Root string
	// CompileCommand produces public/js/main.js; empty skips compilation
	CompileCommand []string
}

// DefaultConfig returns a Config for the current directory
func DefaultConfig() Config {
	return Config{Root: "."}
}

// Result describes a finished build
type Result struct {
	ReleaseID  string
	BuildDir   string
	IndexFile  string
	ScriptFile string
	SRIHash    string
	FileHash   string
}

// Stamper produces release builds
type Stamper struct {
	cfg    Config
	runner Runner
	clock  clock.Clock
	logger *slog.Logger
}

// NewStamper creates a Stamper
func NewStamper(cfg Config, runner Runner, clock clock.Clock, logger *slog.Logger) *Stamper {
	return &Stamper{
		cfg:    cfg,
		runner: runner,
		clock:  clock,
		logger: logger.With(slog.String("component", "release")),
	}
}

// Build runs the whole release: read the commit, clear the old build,
// compile, hash the script and write the stamped files.
func (s *Stamper) Build(ctx context.Context) (*Result, error) {
	var shortHash string
	out, err := s.runner.Run(ctx, s.cfg.Root, "git", "rev-parse", "HEAD")
	if err != nil {
		s.logger.Warn("reading git commit failed, release id has no hash", slog.Any("error", err))
	} else {
		shortHash = ShortHash(strings.TrimSpace(string(out)))
	}
	releaseID := ReleaseID(s.clock.Now(), shortHash)

	buildDir := filepath.Join(s.cfg.Root, BuildDirName)
	if err := os.RemoveAll(buildDir); err != nil {
		return nil, fmt.Errorf("removing previous build: %w", err)
	}

	if len(s.cfg.CompileCommand) > 0 {
		s.logger.Info("compiling", slog.String("command", strings.Join(s.cfg.CompileCommand, " ")))
		if _, err := s.runner.Run(ctx, s.cfg.Root, s.cfg.CompileCommand[0], s.cfg.CompileCommand[1:]...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCompile, err)
		}
	}

	scriptPath := filepath.Join(s.cfg.Root, "public", "js", "main.js")
	script, err := os.ReadFile(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHash, err)
	}
	sri := SRIHash(script)
	fileHash := FileHash(script)
	scriptName := "main." + fileHash + ".js"

	index, err := os.ReadFile(filepath.Join(s.cfg.Root, "public", "index.html"))
	if err != nil {
		return nil, fmt.Errorf("reading index.html: %w", err)
	}

	if err := os.MkdirAll(filepath.Join(buildDir, "js"), 0o755); err != nil {
		return nil, fmt.Errorf("creating build dir: %w", err)
	}

	result := &Result{
		ReleaseID:  releaseID,
		BuildDir:   buildDir,
		IndexFile:  filepath.Join(buildDir, "index.html"),
		ScriptFile: filepath.Join(buildDir, "js", scriptName),
		SRIHash:    sri,
		FileHash:   fileHash,
	}

	stamped := StampIndex(string(index), scriptName, sri, releaseID)
	if err := os.WriteFile(result.IndexFile, []byte(stamped), 0o644); err != nil {
		return nil, fmt.Errorf("writing index.html: %w", err)
	}
	if err := os.WriteFile(result.ScriptFile, script, 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", scriptName, err)
	}

	s.logger.Info("created build",
		slog.String("build_dir", buildDir),
		slog.String("release_id", releaseID))
	return result, nil
}

// ShortHash trims a commit hash to its release id form
func ShortHash(full string) string {
	if len(full) > ShortHashLength {
		return full[:ShortHashLength]
	}
	return full
}

// Timestamp formats t in US Central time. It panics if the result is
// not of the form YYYY-MM-DD-HHMMSS.
func Timestamp(t time.Time) string {
	loc, err := time.LoadLocation(TimeZone)
	if err != nil {
		panic(fmt.Sprintf("release: loading %s: %v", TimeZone, err))
	}
	ts := t.In(loc).Format(timestampLayout)
	if !timestampPattern.MatchString(ts) {
		panic("release: release id time part is broken: " + ts)
	}
	return ts
}

// ReleaseID builds the release id for a build started at t
func ReleaseID(t time.Time, shortHash string) string {
	return Timestamp(t) + "." + shortHash
}

// SRIHash returns the base64 sha384 digest used in integrity attributes
func SRIHash(data []byte) string {
	sum := sha512.Sum384(data)
	return base64.StdEncoding.EncodeToString(sum[:])
}

// FileHash returns the sha256 prefix used in the hashed script name
func FileHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:FileHashLength]
}

// StampIndex points index.html at the hashed script and fills in the release id
func StampIndex(index, scriptName, sri, releaseID string) string {
	tag := `<script src="js/` + scriptName + `" integrity="sha384-` + sri + `">`
	index = strings.Replace(index, ScriptTag, tag, 1)
	return strings.Replace(index, ReleaseIDPlaceholder, releaseID, 1)
}
