// Package minimalactions provides a go/analysis based analyzer for detecting
// MVC constructs passed to minimal route handlers.
//
// Route-mapping functions such as routing.MapGet(app, pattern, handler) bind
// handler parameters and write handler results on their own. The analyzer
// reports two mistakes in such handlers:
//
// # Binding metadata
//
// A handler parameter typed with MVC binding metadata (mvc.Bind or any type
// implementing binding.BinderTypeProvider) has no effect:
//
//	routing.MapGet(app, "/users", func(q mvc.FromQuery[string]) results.Result { ... })
//
// # Action results
//
// A handler returning an mvc.ActionResult, or a value convertible to one,
// is not executed as the author expects:
//
//	routing.MapGet(app, "/users", func() mvc.ActionResult { return mvc.Ok(users) })
//
// Values that are also results.Result are accepted.
package minimalactions

import (
	"context"
	"errors"
	"flag"
	"go/ast"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/minimalactions/internal/checker"
	"github.com/mpyw/minimalactions/internal/config"
	"github.com/mpyw/minimalactions/internal/directives/ignore"
	"github.com/mpyw/minimalactions/internal/wellknown"
)

// Flags for the analyzer.
var (
	configPath string
	debug      bool

	// Checker enable/disable flags (all enabled by default).
	enableBinding      bool
	enableActionResult bool
)

func init() {
	Analyzer.Flags.StringVar(&configPath, "config", "",
		"path to a TOML file overriding the framework type names")
	Analyzer.Flags.BoolVar(&debug, "debug", false, "log analyzer decisions to stderr")

	// Checker flags (default: all enabled)
	Analyzer.Flags.BoolVar(&enableBinding, "binding", true, "enable binding metadata checker")
	Analyzer.Flags.BoolVar(&enableActionResult, "actionresult", true, "enable action result checker")
}

const name = "minimalactions"

// Analyzer is the main analyzer for minimalactions.
var Analyzer = &analysis.Analyzer{
	Name:     name,
	Doc:      "checks that minimal route handlers do not use MVC binding metadata or action results",
	URL:      "https://pkg.go.dev/github.com/mpyw/minimalactions",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
	Flags:    flag.FlagSet{},
}

var ErrNoInspector = errors.New("inspector analyzer result not found")

func run(pass *analysis.Pass) (any, error) {
	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, ErrNoInspector
	}

	logger := newLogger()

	names, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	// Packages that do not depend on the framework have nothing to check.
	set, ok := wellknown.Resolve(pass.Pkg, names)
	if !ok {
		logger.Debug("framework types not resolved, skipping package",
			"package", pass.Pkg.Path(),
			"routing", names.Routing,
		)
		return nil, nil
	}

	// Build set of files to skip
	skipFiles := buildSkipFiles(pass)

	// Collect ignore directives (excluding skipped files)
	ignores := collectIgnores(pass, skipFiles)

	// Build enabled checkers map
	enabled := buildEnabledCheckers()

	// go/analysis offers no cancellation signal to analyzers.
	ctx := context.Background()

	if err := checker.New(set, enabled, ignores, skipFiles).Run(ctx, pass, insp); err != nil {
		return nil, err
	}

	// Report unused ignore directives
	reportUnusedIgnores(pass, ignores, enabled)

	return nil, nil
}

func newLogger() *slog.Logger {
	if !debug {
		return slog.New(slog.DiscardHandler)
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With("analyzer", name)
}

// buildSkipFiles creates a set of filenames to skip.
// Generated files are always skipped.
// Test files can be skipped via the driver's built-in -test flag.
func buildSkipFiles(pass *analysis.Pass) map[string]bool {
	skipFiles := make(map[string]bool)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename

		// Always skip generated files
		if ast.IsGenerated(file) {
			skipFiles[filename] = true
		}
	}

	return skipFiles
}

// collectIgnores gathers the ignore directives of the files that are not skipped.
func collectIgnores(pass *analysis.Pass, skipFiles map[string]bool) *ignore.Set {
	files := make([]*ast.File, 0, len(pass.Files))

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename
		if skipFiles[filename] {
			continue
		}
		files = append(files, file)
	}

	return ignore.Collect(pass.Fset, files)
}

// buildEnabledCheckers creates a map of which checkers are enabled.
func buildEnabledCheckers() ignore.Enabled {
	enabled := make(ignore.Enabled)

	if enableBinding {
		enabled[ignore.Binding] = true
	}

	if enableActionResult {
		enabled[ignore.ActionResult] = true
	}

	return enabled
}

// reportUnusedIgnores reports any ignore directives that were not used.
func reportUnusedIgnores(pass *analysis.Pass, ignores *ignore.Set, enabled ignore.Enabled) {
	for _, unused := range ignores.Unused(enabled) {
		if len(unused.Checkers) == 0 {
			pass.Reportf(unused.Pos, "unused %s directive", ignore.Directive)
			continue
		}

		checkerNames := make([]string, len(unused.Checkers))
		for i, c := range unused.Checkers {
			checkerNames[i] = string(c)
		}
		pass.Reportf(unused.Pos, "unused %s directive for checker(s): %s", ignore.Directive, strings.Join(checkerNames, ", "))
	}
}
