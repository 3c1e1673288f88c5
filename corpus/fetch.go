package corpus

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
)

// Figshare download links for the Wikipedia detox attack corpus.
const (
	CommentsURL    = "https://ndownloader.figshare.com/files/7554634"
	AnnotationsURL = "https://ndownloader.figshare.com/files/7554637"

	CommentsFile    = "attack_annotated_comments.tsv"
	AnnotationsFile = "attack_annotations.tsv"
)

// Fetch downloads the comments and annotations files into dir and
// returns their local paths. Files already present on disk are kept
// as-is, so repeat runs do not hit the network.
func Fetch(ctx context.Context, dir string) (string, string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("corpus: create data dir %s: %w", dir, err)
	}
	commentsPath := filepath.Join(dir, CommentsFile)
	annotationsPath := filepath.Join(dir, AnnotationsFile)

	if err := download(ctx, CommentsURL, commentsPath); err != nil {
		return "", "", err
	}
	if err := download(ctx, AnnotationsURL, annotationsPath); err != nil {
		return "", "", err
	}
	return commentsPath, annotationsPath, nil
}

func download(ctx context.Context, url, path string) error {
	if _, err := os.Stat(path); err == nil {
		log.Printf("Fetch: %s already present, skipping download", filepath.Base(path))
		return nil
	}

	log.Printf("Fetch: downloading %s", url)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("corpus: build request for %s: %w", url, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("corpus: download %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("corpus: download %s: unexpected status %s", url, resp.Status)
	}

	// Write to a temp file first so a failed download never leaves a
	// truncated corpus file behind.
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("corpus: create temp file: %w", err)
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("corpus: write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("corpus: close %s: %w", path, err)
	}
	return os.Rename(tmp.Name(), path)
}
