package listings

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// LoadProjectFile reads, parses and casts a project description file. The
// optional format argument defaults to DefaultFormat.
func (s *Service) LoadProjectFile(ctx context.Context, filePath string, format ...FileFormat) (Project, error) {
	return load[Project](ctx, s, filePath, format)
}

// LoadCollectionFile reads, parses and casts a collection description file.
// The optional format argument defaults to DefaultFormat.
func (s *Service) LoadCollectionFile(ctx context.Context, filePath string, format ...FileFormat) (Collection, error) {
	return load[Collection](ctx, s, filePath, format)
}

// LoadProjects loads every project file under root matching the doublestar
// pattern, inferring each file's format from its extension. The first
// failure aborts the load.
func (s *Service) LoadProjects(ctx context.Context, root, pattern string) ([]Project, error) {
	return loadGlob[Project](ctx, s, root, pattern)
}

// LoadCollections loads every collection file under root matching the
// doublestar pattern.
func (s *Service) LoadCollections(ctx context.Context, root, pattern string) ([]Collection, error) {
	return loadGlob[Collection](ctx, s, root, pattern)
}

func load[T Record](ctx context.Context, s *Service, filePath string, format []FileFormat) (T, error) {
	var zero T

	f := DefaultFormat
	if len(format) > 0 {
		f = format[0]
	}

	if err := ctx.Err(); err != nil {
		return zero, err
	}
	data, err := s.readFile(filePath)
	if err != nil {
		return zero, err
	}
	value, err := s.decode(data, f)
	if err != nil {
		return zero, err
	}
	return cast[T](s, value)
}

func loadGlob[T Record](ctx context.Context, s *Service, root, pattern string) ([]T, error) {
	fsys, join, err := s.globRoot(root)
	if err != nil {
		return nil, err
	}
	matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}

	records := make([]T, 0, len(matches))
	for _, match := range matches {
		rec, err := load[T](ctx, s, join(match), []FileFormat{FormatForPath(match)})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", match, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// globRoot resolves root against the configured filesystem and returns the
// fs.FS to glob over plus a function mapping a match back to a loadable path.
func (s *Service) globRoot(root string) (fs.FS, func(string) string, error) {
	if s.fileFS == nil {
		return os.DirFS(root), func(m string) string { return filepath.Join(root, m) }, nil
	}
	if root == "" || root == "." {
		return s.fileFS, func(m string) string { return m }, nil
	}
	sub, err := fs.Sub(s.fileFS, root)
	if err != nil {
		return nil, nil, err
	}
	return sub, func(m string) string { return path.Join(root, m) }, nil
}

func (s *Service) readFile(filePath string) ([]byte, error) {
	if s.fileFS != nil {
		return fs.ReadFile(s.fileFS, filePath)
	}
	return os.ReadFile(filePath)
}

// decode dispatches on the closed FileFormat enum. New builds the decoder
// table from every declared format, so a miss here means a format variant
// was added without updating the table: an unreachable state, not bad data.
func (s *Service) decode(data []byte, format FileFormat) (map[string]any, error) {
	dec, ok := s.decoders[format]
	if !ok {
		panic(fmt.Sprintf("unhandled file format %s", format))
	}
	return dec.Decode(data)
}
