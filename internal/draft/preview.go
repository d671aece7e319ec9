package draft

import (
	"fmt"
	"os"
	"sync"
)

// Preview is a locally held preview resource for a staged image. The draft
// that staged the image owns its preview until Release is called; Release
// must be safe to call exactly once per handle, and the draft guarantees it
// is never called twice.
type Preview interface {
	Path() string
	Release() error
}

// PreviewFactory creates a preview for freshly staged image bytes.
type PreviewFactory func(filename string, data []byte) (Preview, error)

type filePreview struct {
	path string
	once sync.Once
	err  error
}

func (p *filePreview) Path() string {
	return p.path
}

func (p *filePreview) Release() error {
	p.once.Do(func() {
		p.err = os.Remove(p.path)
	})
	return p.err
}

// TempFilePreview materializes the image into a temp file so the terminal UI
// can hand the path to an external viewer.
func TempFilePreview(filename string, data []byte) (Preview, error) {
	f, err := os.CreateTemp("", "dormigo-preview-*")
	if err != nil {
		return nil, fmt.Errorf("create preview file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("write preview file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("close preview file: %w", err)
	}

	return &filePreview{path: f.Name()}, nil
}
