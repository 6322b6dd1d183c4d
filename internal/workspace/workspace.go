// Package workspace is the filesystem adapter used by the schema commands.
// Every file it touches lives directly inside a single root directory.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-zix/internal/logging"
	"github.com/goliatone/go-zix/pkg/interfaces"
)

const (
	SchemaExtension = "json"
	docsSuffix      = "_docs.md"
	htmlSuffix      = "_docs.html"
)

const defaultFileMode fs.FileMode = 0o644

var (
	// ErrNotFound is returned by Read when the file does not exist.
	ErrNotFound = errors.New("workspace: file not found")
	// ErrInvalidName is returned for empty filenames or names that would
	// leave the workspace root.
	ErrInvalidName = errors.New("workspace: invalid file name")
)

// SchemaFilename returns "<name>.json".
func SchemaFilename(name string) string {
	return name + "." + SchemaExtension
}

// DocsFilename returns "<name>_docs.md".
func DocsFilename(name string) string {
	return name + docsSuffix
}

// HTMLFilename returns "<name>_docs.html".
func HTMLFilename(name string) string {
	return name + htmlSuffix
}

// Workspace reads and writes whole files under root.
type Workspace struct {
	root   string
	logger interfaces.Logger
}

var _ interfaces.Workspace = (*Workspace)(nil)

// New returns a Workspace rooted at root ("." when blank).
func New(root string, logger interfaces.Logger) *Workspace {
	if strings.TrimSpace(root) == "" {
		root = "."
	}
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Workspace{root: root, logger: logger}
}

// Root returns the directory the workspace is bound to.
func (w *Workspace) Root() string {
	return w.root
}

// Read returns the content of filename. A missing file yields an error
// matching ErrNotFound; other failures are returned wrapped.
func (w *Workspace) Read(ctx context.Context, filename string) ([]byte, error) {
	path, err := w.resolve(filename)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, filename)
		}
		return nil, fmt.Errorf("workspace read %s: %w", filename, err)
	}

	w.logger.Debug("workspace.read", "file", filename, "bytes", len(data))
	return data, nil
}

// Write creates or truncates filename and writes data in full. The file is
// closed before Write returns, on success and on failure.
func (w *Workspace) Write(ctx context.Context, filename string, data []byte) (err error) {
	path, err := w.resolve(filename)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, defaultFileMode)
	if err != nil {
		return fmt.Errorf("workspace write %s: %w", filename, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("workspace close %s: %w", filename, closeErr)
		}
	}()

	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("workspace write %s: %w", filename, err)
	}

	w.logger.Debug("workspace.write", "file", filename, "bytes", len(data))
	return nil
}

// List returns the entries of the root directory whose extension is exactly
// ext, ordered by name. Directories are not filtered out. A leading dot on
// ext is ignored; a file named only ".<ext>" has no extension and is skipped.
func (w *Workspace) List(ctx context.Context, ext string) ([]interfaces.WorkspaceEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	suffix := "." + strings.TrimPrefix(ext, ".")

	entries, err := os.ReadDir(w.root)
	if err != nil {
		return nil, fmt.Errorf("workspace list %s: %w", w.root, err)
	}

	out := make([]interfaces.WorkspaceEntry, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !hasExtension(name, suffix) {
			continue
		}
		out = append(out, interfaces.WorkspaceEntry{
			Name:        name,
			DisplayPath: w.displayPath(name),
			IsDir:       entry.IsDir(),
		})
	}

	w.logger.Debug("workspace.list", "extension", ext, "matches", len(out))
	return out, nil
}

func (w *Workspace) resolve(filename string) (string, error) {
	if filename == "" || filename == "." || filename == ".." || strings.ContainsAny(filename, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, filename)
	}
	return filepath.Join(w.root, filename), nil
}

// displayPath mirrors how directory enumeration reports children: the root
// as given, a separator, then the name ("./users.json").
func (w *Workspace) displayPath(name string) string {
	if strings.HasSuffix(w.root, string(filepath.Separator)) {
		return w.root + name
	}
	return w.root + string(filepath.Separator) + name
}

func hasExtension(name, suffix string) bool {
	stem, ok := strings.CutSuffix(name, suffix)
	return ok && stem != ""
}
