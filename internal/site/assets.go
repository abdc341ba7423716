package site

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ziadkadry99/folio/internal/walker"
)

// StaticPrefix is the output subdirectory static files are copied into,
// so content can link to /static/resume.pdf.
const StaticPrefix = "static"

// AssetStats counts the outcome of CopyStatic.
type AssetStats struct {
	Copied    int `json:"copied"`
	Unchanged int `json:"unchanged"`
}

// CopyStatic copies the files under srcDir that pass include and exclude
// into outputDir/static. Files whose content already matches are left
// alone so watch rebuilds stay cheap.
func CopyStatic(srcDir, outputDir string, include, exclude []string) (AssetStats, error) {
	var stats AssetStats
	if srcDir == "" {
		return stats, nil
	}

	files, err := walker.Walk(walker.WalkerConfig{
		RootDir: srcDir,
		Include: include,
		Exclude: exclude,
	})
	if err != nil {
		return stats, fmt.Errorf("listing static files: %w", err)
	}

	for _, f := range files {
		dst := filepath.Join(outputDir, StaticPrefix, filepath.FromSlash(f.RelPath))
		if hash, err := walker.HashFile(dst); err == nil && hash == f.ContentHash {
			stats.Unchanged++
			continue
		}
		if err := copyFile(f.Path, dst); err != nil {
			return stats, fmt.Errorf("copying %s: %w", f.RelPath, err)
		}
		stats.Copied++
	}
	return stats, nil
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
