package cmd

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Zachkp/cyber-portfolio/internal/config"
	"github.com/Zachkp/cyber-portfolio/internal/web"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	buildWatch bool
	buildDump  bool
)

//nolint:gochecknoglobals // Cobra boilerplate
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the site as static files",
	Long: `build renders the page once and writes index.html, the static assets, the
images directory and the resume to the configured output directory. The contact
form needs the server, so an exported site only shows it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if buildDump {
			content, err := loadContent(appConfig)
			if err != nil {
				return err
			}
			return content.Dump(cmd.OutOrStdout())
		}

		if err := runBuild(appConfig); err != nil {
			return err
		}
		if !buildWatch {
			return nil
		}
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		return watch(ctx, appConfig, runBuild)
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	buildCmd.Flags().BoolVarP(&buildWatch, "watch", "w", false, "rebuild when the content file or images change")
	buildCmd.Flags().BoolVar(&buildDump, "dump", false, "print the effective content as YAML and exit")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cfg config.Config) error {
	log.Printf("Building site into %s", cfg.OutputDir)

	content, err := loadContent(cfg)
	if err != nil {
		return err
	}
	srv, err := web.New(cfg, content, nil)
	if err != nil {
		return err
	}

	var page bytes.Buffer
	if err := srv.RenderPage(&page); err != nil {
		return err
	}

	if err := os.RemoveAll(cfg.OutputDir); err != nil {
		return errors.Wrapf(err, "failed to clean output directory %s", cfg.OutputDir)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create output directory %s", cfg.OutputDir)
	}
	if err := os.WriteFile(filepath.Join(cfg.OutputDir, "index.html"), page.Bytes(), 0o644); err != nil {
		return errors.Wrap(err, "failed to write index.html")
	}

	if err := copyFS(web.StaticFS(), filepath.Join(cfg.OutputDir, "static")); err != nil {
		return err
	}
	if isDir(cfg.ImagesDir) {
		if err := copyFS(os.DirFS(cfg.ImagesDir), filepath.Join(cfg.OutputDir, "images")); err != nil {
			return err
		}
	}
	if _, err := os.Stat(cfg.ResumePath); err == nil {
		if err := copyFile(os.DirFS(filepath.Dir(cfg.ResumePath)), filepath.Base(cfg.ResumePath), filepath.Join(cfg.OutputDir, "resume.pdf")); err != nil {
			return err
		}
	}

	log.Println("Site built successfully.")
	return nil
}

func copyFS(src fs.FS, dst string) error {
	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(src, path, target)
	})
}

func copyFile(src fs.FS, name, dst string) error {
	in, err := src.Open(name)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", name)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create %s", filepath.Dir(dst))
	}
	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", dst)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return errors.Wrapf(err, "failed to copy %s", name)
	}
	return out.Close()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// watchSet is the set of paths whose changes trigger a rebuild. All paths
// are absolute so they compare equal to fsnotify event names.
type watchSet struct {
	content string
	images  string
	output  string
}

func newWatchSet(cfg config.Config) (ws watchSet, err error) {
	abs := func(p string) (string, error) {
		if p == "" {
			return "", nil
		}
		a, err := filepath.Abs(p)
		if err != nil {
			return "", errors.Wrapf(err, "failed to resolve %s", p)
		}
		return a, nil
	}
	if ws.content, err = abs(cfg.ContentFile); err != nil {
		return ws, err
	}
	if isDir(cfg.ImagesDir) {
		if ws.images, err = abs(cfg.ImagesDir); err != nil {
			return ws, err
		}
	}
	ws.output, err = abs(cfg.OutputDir)
	return ws, err
}

// relevant reports whether a change to name should trigger a rebuild.
// Anything under the output directory is the build's own work.
func (ws watchSet) relevant(name string) bool {
	name = filepath.Clean(name)
	if ws.output != "" && within(ws.output, name) {
		return false
	}
	if name == ws.content {
		return true
	}
	return ws.images != "" && within(ws.images, name)
}

func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// newWatcher watches the directory of the content file and the images
// directory.
func newWatcher(ws watchSet) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create file watcher")
	}

	var paths []string
	if ws.content != "" {
		// Editors replace files on save, so watch the directory.
		paths = append(paths, filepath.Dir(ws.content))
	}
	if ws.images != "" {
		paths = append(paths, ws.images)
	}
	for _, p := range paths {
		if err := watcher.Add(p); err != nil {
			log.Printf("Failed to watch %s: %v", p, err)
			continue
		}
		log.Printf("Watching %s for changes", p)
	}
	if len(watcher.WatchList()) == 0 {
		watcher.Close()
		return nil, errors.New("nothing to watch: set contentFile or imagesDir")
	}
	return watcher, nil
}

// watch rebuilds the site whenever a watched path changes, debounced so a
// burst of editor writes causes a single rebuild. It returns when ctx ends.
func watch(ctx context.Context, cfg config.Config, rebuild func(config.Config) error) error {
	ws, err := newWatchSet(cfg)
	if err != nil {
		return err
	}
	watcher, err := newWatcher(ws)
	if err != nil {
		return err
	}
	return watchLoop(ctx, watcher, ws, func() error { return rebuild(cfg) })
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, ws watchSet, rebuild func() error) error {
	defer watcher.Close()

	var buildTimer *time.Timer
	debounceDuration := 500 * time.Millisecond
	defer func() {
		if buildTimer != nil {
			buildTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !ws.relevant(event.Name) {
				continue
			}
			log.Printf("Change detected: %s (%s)", event.Name, event.Op.String())

			if buildTimer != nil {
				buildTimer.Stop()
			}
			buildTimer = time.AfterFunc(debounceDuration, func() {
				if err := rebuild(); err != nil {
					log.Printf("Error during rebuild: %v", err)
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}
