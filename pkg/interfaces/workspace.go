package interfaces

import "context"

// WorkspaceEntry describes a directory entry yielded by Workspace.List.
type WorkspaceEntry struct {
	// Name is the bare file name, e.g. "users.json".
	Name string
	// DisplayPath joins the workspace root and Name the way directory
	// enumeration reports it, e.g. "./users.json".
	DisplayPath string
	// IsDir reports whether the entry is a directory. Directories are still
	// yielded when their name carries the requested extension.
	IsDir bool
}

// Workspace is the filesystem contract used by the schema command handlers.
// Filenames are relative to the workspace root and must not contain path
// separators.
type Workspace interface {
	// Read returns the whole file. Implementations return an error matching
	// workspace.ErrNotFound when the file does not exist.
	Read(ctx context.Context, filename string) ([]byte, error)
	// Write creates or truncates filename and writes data in full.
	Write(ctx context.Context, filename string, data []byte) error
	// List yields entries whose extension is exactly ext (without the dot).
	List(ctx context.Context, ext string) ([]WorkspaceEntry, error)
}
