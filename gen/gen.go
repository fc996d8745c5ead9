package gen

import (
	"bytes"
	"embed"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vickyqiu/riak-pb/catalog"
	"github.com/vickyqiu/riak-pb/logger"
)

//go:embed templates/*.tmpl
var templates embed.FS

var ErrFileExists = errors.New("file exists")

type Output struct {
	Path      string
	Verbose   bool
	Overwrite bool
}

// Generator renders the message mapping artifact from a compiled catalog.
type Generator struct {
	Package string
	Verbose bool

	logger *zap.Logger
	tmpl   *template.Template
	now    func() time.Time
}

func New(pkg string) *Generator {
	return &Generator{
		Package: pkg,
		tmpl:    template.Must(template.ParseFS(templates, "templates/messages.go.tmpl")),
	}
}

func (g *Generator) init() {
	if g.logger == nil {
		g.logger = logger.Cli
	}
	if g.now == nil {
		g.now = time.Now
	}
}

func (g *Generator) SetLogger(l *zap.Logger) {
	g.logger = l
}

// SetClock overrides the clock used for the license year.
func (g *Generator) SetClock(now func() time.Time) {
	g.now = now
}

// Run renders the artifact fully in memory, then writes it out in a single
// step, so a failed render never leaves a partial file behind.
func (g *Generator) Run(compiled *catalog.Compiled, output *Output) error {
	g.init()

	ctx := &CatalogContext{
		Year:    g.now().Year(),
		Package: g.Package,
		Catalog: compiled,
	}

	g.logger.Debug("render artifact",
		zap.String("package", g.Package),
		zap.Int("messages", len(compiled.Constants)),
		zap.Int("empty", len(compiled.EmptyResponses)))

	var buf bytes.Buffer
	if err := g.tmpl.Execute(&buf, ctx); err != nil {
		return errors.Wrap(err, "render")
	}

	return g.writeTo(output, buf.Bytes())
}

func (g *Generator) writeTo(output *Output, b []byte) error {
	if dir := filepath.Dir(output.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if _, err := os.Stat(output.Path); err == nil && !output.Overwrite {
		return ErrFileExists
	}

	if output.Verbose || g.Verbose {
		os.Stdout.Write(b)
	}

	return os.WriteFile(output.Path, b, 0644)
}

// Clean removes a generated artifact. A missing file is not an error.
func Clean(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	logger.Cli.Info("removing generated file", zap.String("path", path))
	return os.Remove(path)
}

// Stale reports whether the destination is missing or older than any of
// the sources, meaning the artifact should be regenerated.
func Stale(dst string, srcs ...string) bool {
	di, err := os.Stat(dst)
	if err != nil {
		return true
	}

	for _, src := range srcs {
		si, err := os.Stat(src)
		if err != nil {
			continue
		}
		if si.ModTime().After(di.ModTime()) {
			return true
		}
	}

	return false
}
