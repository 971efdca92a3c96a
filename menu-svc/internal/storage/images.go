package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"desi-beats/menu-svc/internal/domain"

	"github.com/disintegration/imaging"
)

// maxImageWidth bounds stored menu images; smaller uploads keep their size.
const maxImageWidth = 800

type LocalImageStore struct {
	Dir       string
	URLPrefix string
}

func NewLocalImageStore(dir, urlPrefix string) *LocalImageStore {
	return &LocalImageStore{Dir: dir, URLPrefix: strings.TrimRight(urlPrefix, "/")}
}

// SaveImage decodes src, shrinks it to maxImageWidth and writes it under Dir.
// The returned URL is URLPrefix joined with the file name.
func (s *LocalImageStore) SaveImage(ctx context.Context, name string, src io.Reader) (string, error) {
	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, domain.ErrInvalidImage)
	}
	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}

	name = filepath.Base(name)
	ext := strings.ToLower(filepath.Ext(name))
	if _, err := imaging.FormatFromExtension(ext); err != nil {
		name = strings.TrimSuffix(name, filepath.Ext(name)) + ".jpg"
	}
	if err := imaging.Save(img, filepath.Join(s.Dir, name)); err != nil {
		return "", err
	}
	return s.URLPrefix + "/" + name, nil
}
