// Package staticgen pre-renders the most requested pages to disk.
package staticgen

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/philly/spacetraveling/internal/adapters/web"
	"github.com/philly/spacetraveling/internal/platform/logger"
	"github.com/philly/spacetraveling/internal/platform/validator"
	"github.com/philly/spacetraveling/internal/posts/application"
	"golang.org/x/sync/errgroup"
)

const (
	indexFile       = "index.html"
	defaultParallel = 4
)

// Config controls what is generated and where.
type Config struct {
	OutputDir    string
	PathsLimit   int
	HomePageSize int
	// Parallelism bounds concurrent post renders; zero means 4.
	Parallelism int
}

// Result lists the files written, relative to the output directory.
type Result struct {
	Files   []string
	Skipped []string
}

// Builder renders the home page and the most recent posts.
type Builder struct {
	posts  *application.PostsService
	pages  *web.Pages
	config Config
	logger logger.Logger
}

// NewBuilder creates a builder.
func NewBuilder(posts *application.PostsService, pages *web.Pages, config Config, logger logger.Logger) *Builder {
	return &Builder{
		posts:  posts,
		pages:  pages,
		config: config,
		logger: logger,
	}
}

// Build writes index.html and post/{uid}/index.html for the configured
// number of recent posts. Any failure aborts the build.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	if b.config.OutputDir == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	if err := os.MkdirAll(b.config.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	res := &Result{}
	var mu sync.Mutex
	record := func(file string) {
		mu.Lock()
		defer mu.Unlock()
		res.Files = append(res.Files, file)
	}

	list, err := b.posts.LoadInitial(ctx, b.config.HomePageSize, "")
	if err != nil {
		return nil, fmt.Errorf("load home page: %w", err)
	}
	var home bytes.Buffer
	if err := b.pages.RenderHome(&home, list, false); err != nil {
		return nil, err
	}
	if err := b.writeFile(indexFile, home.Bytes()); err != nil {
		return nil, err
	}
	record(indexFile)

	uids, err := b.posts.StaticPaths(ctx, b.config.PathsLimit)
	if err != nil {
		return nil, fmt.Errorf("list static paths: %w", err)
	}

	parallel := b.config.Parallelism
	if parallel <= 0 {
		parallel = defaultParallel
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for _, uid := range uids {
		if err := validator.ValidateSlug(uid); err != nil {
			b.logger.Warn(ctx, "skipping post with unusable uid", "uid", uid, "error", err)
			res.Skipped = append(res.Skipped, uid)
			continue
		}

		g.Go(func() error {
			view, err := b.posts.GetPostView(gctx, uid, "")
			if err != nil {
				return fmt.Errorf("load post %s: %w", uid, err)
			}
			var page bytes.Buffer
			if err := b.pages.RenderPost(&page, view, false); err != nil {
				return err
			}
			file := filepath.Join("post", uid, indexFile)
			if err := b.writeFile(file, page.Bytes()); err != nil {
				return err
			}
			record(file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(res.Files)
	b.logger.Info(ctx, "static build finished",
		"output_dir", b.config.OutputDir,
		"files", len(res.Files),
		"skipped", len(res.Skipped),
	)
	return res, nil
}

// writeFile replaces rel under the output directory atomically.
func (b *Builder) writeFile(rel string, data []byte) error {
	path := filepath.Join(b.config.OutputDir, rel)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*.html")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", rel, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", rel, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", rel, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename %s: %w", rel, err)
	}
	return nil
}
