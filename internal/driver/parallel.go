package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"vhdlparse/internal/ast"
	"vhdlparse/internal/diag"
	"vhdlparse/internal/parser"
	"vhdlparse/internal/source"
	"vhdlparse/internal/token"
)

// TokenizeDirResult holds the tokens and diagnostics of one file.
type TokenizeDirResult struct {
	Path   string
	FileID source.FileID
	Tokens []token.Token
	Bag    *diag.Bag
}

// ParseDirResult holds the declarations and diagnostics of one file.
type ParseDirResult struct {
	Path         string
	FileID       source.FileID
	Declarations []ast.Declaration
	Bag          *diag.Bag
}

// listSourceFiles returns the sorted list of *.vhd and *.vhdl files
// under dir.
func listSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".vhd") || strings.HasSuffix(path, ".vhdl") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// loadDir preloads every source file under dir into one FileSet. Files
// that fail to load are kept in the error map so workers can report
// them per file.
func loadDir(dir string) (*source.FileSet, []string, map[string]source.FileID, map[string]error, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error)
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}
	return fileSet, files, fileIDs, loadErrors, nil
}

func jobLimit(jobs, work int) int {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > work {
		jobs = work
	}
	return jobs
}

// TokenizeDir tokenizes every source file under dir in parallel.
// Result order follows the sorted file list regardless of scheduling.
func TokenizeDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, []TokenizeDirResult, error) {
	fileSet, files, fileIDs, loadErrors, err := loadDir(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	results := make([]TokenizeDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobLimit(jobs, len(files)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			bag := diag.NewBag(maxDiagnostics)
			result := TokenizeDirResult{Path: path, Bag: bag}

			if loadErr, ok := loadErrors[path]; ok {
				diag.ReportError(diag.BagReporter{Bag: bag}, diag.IOLoadFileError,
					source.Span{}, loadErr.Error())
				results[i] = result
				return nil
			}

			result.FileID = fileIDs[path]
			result.Tokens = tokenizeFile(fileSet.Get(result.FileID), bag)
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fileSet, results, nil
}

// ParseDir parses every source file under dir in parallel.
func ParseDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, []ParseDirResult, error) {
	fileSet, files, fileIDs, loadErrors, err := loadDir(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	results := make([]ParseDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobLimit(jobs, len(files)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			bag := diag.NewBag(maxDiagnostics)
			result := ParseDirResult{Path: path, Bag: bag}

			if loadErr, ok := loadErrors[path]; ok {
				diag.ReportError(diag.BagReporter{Bag: bag}, diag.IOLoadFileError,
					source.Span{}, loadErr.Error())
				results[i] = result
				return nil
			}

			result.FileID = fileIDs[path]
			result.Declarations = parser.ParseFile(fileSet.Get(result.FileID), diag.BagReporter{Bag: bag})
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fileSet, results, nil
}
