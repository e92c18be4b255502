package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// timestampLayout gives second resolution; the collision suffix below covers
// runs that land inside the same second.
const timestampLayout = "20060102T150405"

// Artifact describes one written output file.
type Artifact struct {
	// Path is the final artifact location on disk.
	Path string
	// Bytes is the number of bytes written.
	Bytes int
}

// artifactPath builds `<base>-<timestamp>.<ext>` inside dir, bumping a
// numeric suffix (`-2`, `-3`, …) while the candidate already exists so
// repeated runs never silently overwrite each other.
func artifactPath(dir, base, ext string, now time.Time) string {
	stamp := now.Format(timestampLayout)
	candidate := filepath.Join(dir, fmt.Sprintf("%s-%s.%s", base, stamp, ext))
	for n := 2; ; n++ {
		if _, err := os.Stat(candidate); err != nil {
			return candidate
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s-%s-%d.%s", base, stamp, n, ext))
	}
}

// writeArtifact creates the destination directory if needed and writes the
// payload. Failures come back as *WriteError; a partial file left by a failed
// write is removed best-effort.
func writeArtifact(path string, data []byte) (Artifact, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Artifact{}, NewWriteError(path, err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		_ = os.Remove(path)
		return Artifact{}, NewWriteError(path, err)
	}
	return Artifact{Path: path, Bytes: len(data)}, nil
}
