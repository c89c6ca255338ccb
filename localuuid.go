package localuuid

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Environment variables read at configuration time.
const (
	// EnvNonRandomBase opts in to deterministic UUIDs. Its value must be the
	// path of an existing directory, typically the root of the repository
	// the generated sample data lives in.
	EnvNonRandomBase = "CASE_DEMO_NONRANDOM_UUID_BASE"

	// EnvDeprecatedNonRandom is the retired opt-in trigger. Setting it to
	// NonRandomRequested only produces a deprecation warning.
	EnvDeprecatedNonRandom = "DEMO_UUID_REQUESTING_NONRANDOM"

	// EnvVirtualEnv, when set, is used to relativize the command path
	// component of the deterministic base string.
	EnvVirtualEnv = "VIRTUAL_ENV"

	// NonRandomRequested is the sentinel value of EnvDeprecatedNonRandom.
	NonRandomRequested = "NONRANDOM_REQUESTED"
)

const (
	// demoMarker is the first component of every deterministic base string,
	// an emphasis that the derived UUIDs label example data.
	demoMarker = "example.org"

	separator = "/"
)

var (
	errMissingEnv = errors.New("deterministic UUID requested without " + EnvNonRandomBase + " in environment")
	errNotArmed   = errors.New("deterministic UUID requested but provider has no base string")
)

// Mode tells whether a Provider produces random or deterministic UUIDs.
type Mode int

const (
	ModeRandom Mode = iota
	ModeDeterministic
)

func (m Mode) String() string {
	switch m {
	case ModeDeterministic:
		return "DETERMINISTIC"
	case ModeRandom:
		return "RANDOM"
	default:
		return "UNKNOWN"
	}
}

// Options carries the process-context seams used while configuring a
// Provider. Zero values fall back to the real process context, so
// NewProvider(Options{}) configures from the actual environment.
type Options struct {
	Logger *slog.Logger
	Getenv func(string) string
	Getwd  func() (string, error)
	Args   []string
}

// Provider generates UUID strings.
//
// A provider is configured once, at construction, from a snapshot of the
// environment and argument vector. Later changes to the working directory or
// environment do not alter an armed provider's base string. The counter is
// guarded so concurrent Generate calls never repeat an identifier within the
// deterministic sequence.
type Provider struct {
	logger *slog.Logger
	getenv func(string) string
	mode   Mode
	base   string

	mu      sync.Mutex
	counter uint64
}

// NewProvider inspects the environment and process invocation and returns a
// configured provider.
//
// The safe default is random mode. Deterministic mode is armed only when
// EnvNonRandomBase names an existing directory; every degraded case emits a
// warning on the provider's logger and falls back to random UUIDs.
func NewProvider(opts Options) *Provider {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	getwd := opts.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}
	args := opts.Args
	if args == nil {
		args = os.Args
	}

	p := &Provider{logger: logger, getenv: getenv, mode: ModeRandom}

	if getenv(EnvDeprecatedNonRandom) == NonRandomRequested {
		logger.Warn(
			"environment variable is deprecated, proceeding with random UUIDs",
			"deprecated", EnvDeprecatedNonRandom,
			"replacement", EnvNonRandomBase,
		)
		return p
	}

	baseDir := getenv(EnvNonRandomBase)
	if baseDir == "" {
		return p
	}

	info, err := os.Stat(baseDir)
	if err != nil {
		logger.Warn(
			EnvNonRandomBase+" is expected to refer to an existing directory, proceeding with random UUIDs",
			"path", baseDir,
			"error", err,
		)
		return p
	}
	if !info.IsDir() {
		logger.Warn(
			EnvNonRandomBase+" is expected to refer to a directory, proceeding with random UUIDs",
			"path", baseDir,
		)
		return p
	}

	wd, err := getwd()
	if err != nil {
		logger.Warn("cannot determine working directory, proceeding with random UUIDs", "error", err)
		return p
	}

	parts := []string{demoMarker}

	baseResolved := resolvePath(baseDir)
	wdResolved := resolvePath(wd)
	if rel, ok := relativeTo(wdResolved, baseResolved); ok {
		parts = append(parts, rel)
	} else {
		parts = append(parts, wdResolved)
	}

	command := ""
	if len(args) > 0 {
		command = args[0]
	}
	if venv := getenv(EnvVirtualEnv); venv == "" {
		parts = append(parts, command)
	} else {
		commandResolved := resolvePath(command)
		venvResolved := resolvePath(venv)
		if rel, ok := relativeTo(commandResolved, venvResolved); ok {
			parts = append(parts, rel)
		} else {
			parts = append(parts, commandResolved)
		}
	}

	if len(args) > 1 {
		parts = append(parts, args[1:]...)
	}

	p.mode = ModeDeterministic
	p.base = strings.Join(parts, separator)

	return p
}

// Mode reports whether the provider is armed for deterministic UUIDs.
func (p *Provider) Mode() Mode {
	return p.mode
}

// Generate returns a new UUID string.
//
// In random mode it returns a version-4 UUID and touches no state. In
// deterministic mode it advances the counter and derives a version-5 UUID
// from the base string and the new counter value. Generate itself never
// fails; it panics only if the deterministic path is invoked after the
// opt-in environment variable disappeared, which is a caller bug rather
// than a runtime condition.
func (p *Provider) Generate() string {
	if p.mode != ModeDeterministic {
		return uuid.Must(uuid.NewRandom()).String()
	}

	id, err := p.demo()
	if err != nil {
		panic(err)
	}

	return id
}

// demo derives the next deterministic UUID.
//
// It rejects the call outright when its preconditions do not hold: the
// deterministic path exists only to aid debugging and demo-data generation,
// and silently misbehaving here would be worse than a crash.
func (p *Provider) demo() (string, error) {
	if p.getenv(EnvNonRandomBase) == "" {
		return "", errMissingEnv
	}
	if p.mode != ModeDeterministic || p.base == "" {
		return "", errNotArmed
	}

	p.mu.Lock()
	p.counter++
	next := p.counter
	p.mu.Unlock()

	name := p.base + separator + strconv.FormatUint(next, 10)

	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String(), nil
}

// resolvePath canonicalizes a path: absolute, cleaned, symlinks resolved
// when the path exists.
func resolvePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}

// relativeTo expresses path relative to base only when base is an ancestor
// of path (or the same directory). Both arguments must already be resolved.
func relativeTo(path, base string) (string, bool) {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return "", false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return rel, true
}

// Package-level provider, mirroring the process-wide behavior most callers
// want: Configure once at startup, Generate everywhere else.
//
//nolint:gochecknoglobals // process-wide singleton is the documented contract
var (
	defaultMu       sync.RWMutex
	defaultProvider *Provider
)

// Configure builds the package-level provider from the real process context.
//
// Call it once at startup, before any Generate call, if deterministic UUIDs
// are desired. It is safe to call unconditionally: without the opt-in
// environment variable it arms nothing and Generate stays random.
func Configure() {
	p := NewProvider(Options{})

	defaultMu.Lock()
	defaultProvider = p
	defaultMu.Unlock()
}

// Generate returns a UUID string from the package-level provider, or a
// random version-4 UUID if Configure was never called.
func Generate() string {
	defaultMu.RLock()
	p := defaultProvider
	defaultMu.RUnlock()

	if p == nil {
		return uuid.Must(uuid.NewRandom()).String()
	}

	return p.Generate()
}
