// Package ui serves the visualizer page.
package ui

import (
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/kellegous/stepsort/api"
	"github.com/kellegous/stepsort/config"
	"github.com/kellegous/stepsort/internal"
	"github.com/kellegous/stepsort/mux"
	"github.com/kellegous/stepsort/sorts"
)

type page struct {
	Algorithms   []sorts.Algorithm
	Default      string
	MaxArraySize int
	RandomSize   int
	SortPath     string
	RandomPath   string
}

// Setup adds the page handler to the mux.Builder.
func Setup(ctx *config.Context, mb *mux.Builder) {
	// the page is the one piece of static content embedded in the server.
	t := template.Must(template.New("index.html").Parse(rootTmpl))

	e := sorts.Engine{Fallback: ctx.DefaultAlgorithm}
	def, _ := e.Resolve("")

	p := &page{
		Algorithms:   sorts.All(),
		Default:      def.Name,
		MaxArraySize: ctx.MaxArraySize,
		RandomSize:   ctx.Random.Size,
		SortPath:     api.SortPath,
		RandomPath:   api.RandomPath,
	}

	// "/" catches every unmatched path, so the method is checked only once the
	// path is known to be the page itself.
	mb.ForHost(ctx.Host).Handle("/",
		internal.AddSecurityHeadersFunc(ctx.Info,
			func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/" {
					http.NotFound(w, r)
					return
				}

				if r.Method != http.MethodGet && r.Method != http.MethodHead {
					w.Header().Set("Allow", "GET, HEAD")
					http.Error(w,
						http.StatusText(http.StatusMethodNotAllowed),
						http.StatusMethodNotAllowed)
					return
				}

				w.Header().Set("Content-Type", "text/html;charset=utf-8")
				if err := t.Execute(w, p); err != nil {
					zap.L().Error("unable to render page",
						zap.Error(err))
				}
			}))
}
