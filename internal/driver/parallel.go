package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"plexer/internal/diag"
	"plexer/internal/rulefile"
	"plexer/internal/source"
)

// TokenizeDirResult содержит результат токенизации одного файла.
type TokenizeDirResult struct {
	Path    string        // относительный путь к файлу
	FileID  source.FileID // ID файла в FileSet (0 при ошибке загрузки)
	Tokens  []Token       // токены файла
	Bag     *diag.Bag     // лексические ошибки
	LoadErr error         // ошибка чтения файла, если была
}

// listFiles возвращает отсортированный список всех файлов с данным
// расширением в директории.
func listFiles(dir, ext string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// сортировка даёт детерминированный порядок результатов
	sort.Strings(files)
	return files, nil
}

// TokenizeDir tokenizes every file with the given extension under dir,
// in parallel, against one shared rule set. Results come back in sorted
// file order regardless of scheduling; a file that fails to load gets a
// result with LoadErr set instead of aborting the whole run.
func TokenizeDir(ctx context.Context, dir, ext string, rules *rulefile.Set, maxErrors, jobs int) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := listFiles(dir, ext)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// FileSet не потокобезопасен: загружаем все файлы до запуска горутин,
	// дальше он только читается.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индекс i уникален для каждой горутины, мьютекс не нужен
	results := make([]TokenizeDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, hadError := loadErrors[path]; hadError {
				results[i] = TokenizeDirResult{
					Path:    path,
					Bag:     diag.NewBag(maxErrors),
					LoadErr: loadErr,
				}
				return nil
			}

			fileID := fileIDs[path]
			res := tokenizeLoaded(fileSet, fileID, rules, maxErrors)
			results[i] = TokenizeDirResult{
				Path:   path,
				FileID: fileID,
				Tokens: res.Tokens,
				Bag:    res.Bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fileSet, results, nil
}
