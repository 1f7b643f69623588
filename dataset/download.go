// Copyright 2025 Talentfold
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package dataset

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/talentfold/ingest/embeddings"
)

const (
	downloadMaxRetries = 3
	downloadBaseDelay  = time.Second
)

// sampleFiles maps a dataset type to its bundled offline sample.
var sampleFiles = map[Type]string{
	TypeListings:  "listings_sample.csv",
	TypeSkills:    "skills_sample.csv",
	TypeResumes:   "resumes_sample.csv",
	TypeCompanies: "companies_sample.csv",
}

// Downloader fetches datasets through the kaggle CLI, falling back to
// bundled samples so offline runs still complete.
type Downloader struct {
	rawDir     string
	samplesDir string
	username   string
	key        string
	logger     *slog.Logger
}

// DownloaderOption configures a Downloader.
type DownloaderOption func(*Downloader)

// WithCredentials sets the kaggle API credentials. Without them every
// dataset falls back to its bundled sample.
func WithCredentials(username, key string) DownloaderOption {
	return func(d *Downloader) {
		d.username = username
		d.key = key
	}
}

// WithDownloadLogger sets a custom logger.
func WithDownloadLogger(logger *slog.Logger) DownloaderOption {
	return func(d *Downloader) {
		if logger != nil {
			d.logger = logger.With("component", "dataset")
		}
	}
}

// NewDownloader creates a Downloader writing into rawDir and reading
// fallback samples from samplesDir.
func NewDownloader(rawDir, samplesDir string, opts ...DownloaderOption) *Downloader {
	d := &Downloader{
		rawDir:     rawDir,
		samplesDir: samplesDir,
		logger:     slog.Default().With("component", "dataset"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Download fetches one dataset into rawDir/<alias>. Failures never
// propagate: after the retry budget the bundled sample is copied instead,
// so the pipeline always has input to work with.
func (d *Downloader) Download(ctx context.Context, spec Spec) error {
	destDir := filepath.Join(d.rawDir, spec.Alias)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return err
	}

	if d.username == "" || d.key == "" {
		d.logger.Warn("kaggle credentials missing; using sample data", "dataset", spec.Alias)
		return d.copySample(spec, destDir)
	}

	attempt := 0
	err := embeddings.RetryWithBackoff(ctx, func() error {
		attempt++
		d.logger.Info("downloading dataset", "slug", spec.Slug, "attempt", attempt)
		return d.fetch(ctx, spec, destDir)
	}, downloadMaxRetries, downloadBaseDelay)
	if err != nil {
		d.logger.Error("giving up on dataset; copying sample", "dataset", spec.Alias, "err", err)
		return d.copySample(spec, destDir)
	}
	return nil
}

// DownloadAll fetches every dataset in specs.
func (d *Downloader) DownloadAll(ctx context.Context, specs []Spec) error {
	for _, spec := range specs {
		if err := d.Download(ctx, spec); err != nil {
			return err
		}
	}
	return nil
}

func (d *Downloader) fetch(ctx context.Context, spec Spec, destDir string) error {
	cmd := exec.CommandContext(ctx, "kaggle", "datasets", "download",
		"-d", spec.Slug, "-p", destDir, "--force")
	cmd.Env = append(os.Environ(),
		"KAGGLE_USERNAME="+d.username,
		"KAGGLE_KEY="+d.key,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("kaggle download %s: %w: %s", spec.Slug, err, strings.TrimSpace(string(out)))
	}
	return d.extractArchives(destDir)
}

// extractArchives unpacks and removes every zip the kaggle CLI left behind.
func (d *Downloader) extractArchives(destDir string) error {
	entries, err := os.ReadDir(destDir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".zip") {
			continue
		}
		archive := filepath.Join(destDir, entry.Name())
		if err := unzip(archive, destDir); err != nil {
			return fmt.Errorf("extracting %s: %w", entry.Name(), err)
		}
		if err := os.Remove(archive); err != nil {
			return err
		}
	}
	return nil
}

func (d *Downloader) copySample(spec Spec, destDir string) error {
	name, ok := sampleFiles[spec.Type]
	if !ok {
		return fmt.Errorf("no bundled sample for dataset type %q", spec.Type)
	}
	src, err := os.Open(filepath.Join(d.samplesDir, name))
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(destDir, name))
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return err
	}
	d.logger.Warn("fell back to bundled sample", "dataset", spec.Alias)
	return nil
}

func unzip(archive, destDir string) error {
	reader, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer reader.Close()

	for _, file := range reader.File {
		target := filepath.Join(destDir, filepath.Clean(file.Name))
		if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
			return fmt.Errorf("zip entry %q escapes destination", file.Name)
		}
		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}
		if err := extractFile(file, target); err != nil {
			return err
		}
	}
	return nil
}

func extractFile(file *zip.File, target string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(target)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
