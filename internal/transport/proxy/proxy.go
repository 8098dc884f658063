package proxy

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jortega-dev/tienda-admin/pkg/http/middleware/trace"
	"github.com/jortega-dev/tienda-admin/pkg/logger"
	"github.com/spf13/viper"
)

// ProxyTransport is the local dev proxy: it strips a path prefix and
// forwards everything else to the configured backend, the way the
// front-end dev server did.
type ProxyTransport struct {
	server *http.Server
	router *chi.Mux
}

// MustNewProxyTransport creates the proxy from config. Panics when the
// target URL is absent or unparseable.
func MustNewProxyTransport() *ProxyTransport {
	target := viper.GetString("proxy.target")
	if target == "" {
		panic("proxy.target is not configured")
	}

	targetURL, err := url.Parse(target)
	if err != nil {
		panic("proxy.target is not a valid URL: " + err.Error())
	}

	prefix := viper.GetString("proxy.strip_prefix")
	if prefix == "" {
		prefix = "/api"
	}

	router := newRouter()
	router.Handle("/*", newForwarder(targetURL, prefix))

	server := &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("proxy.port"),
		Handler: router,
	}

	return &ProxyTransport{
		server: server,
		router: router,
	}
}

// Run starts the proxy server.
func (p *ProxyTransport) Run() error {
	return p.server.ListenAndServe()
}

// Shutdown gracefully stops the proxy server.
func (p *ProxyTransport) Shutdown(ctx context.Context) error {
	return p.server.Shutdown(ctx)
}

func newForwarder(target *url.URL, prefix string) http.Handler {
	forwarder := &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(target)
			r.Out.URL.Path = target.Path + strings.TrimPrefix(r.In.URL.Path, prefix)
			r.Out.Host = target.Host
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			slog.Error("Proxy request failed", "path", r.URL.Path, "error", err)
			http.Error(w, "backend unreachable", http.StatusBadGateway)
		},
	}

	return forwarder
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))

	if viper.GetBool("tracing.enabled") {
		router.Use(trace.NewTraceMiddleware)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: viper.GetStringSlice("proxy.cors.allowed_origins"),
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})

	router.Use(c.Handler)

	return router
}
