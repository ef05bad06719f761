package server

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/html-web/wise-mvp/internal/config"
	"github.com/html-web/wise-mvp/internal/product"
	"github.com/html-web/wise-mvp/internal/static"
)

const API_PATH string = "/api/data"

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	cfg     config.Config
	files   *static.Resolver
	summary []byte
	router  *Router
}

// New builds the server and encodes the product summary once; every API
// response reuses those bytes.
func New(cfg config.Config) (*Server, error) {
	summary, err := codec.Marshal(product.Default())
	if err != nil {
		return nil, errors.Wrap(err, "encode product summary")
	}

	s := &Server{
		cfg:     cfg,
		files:   static.New(cfg.StaticRoot),
		summary: summary,
	}

	s.router = NewRouter(s.files)
	s.router.HandleAny(API_PATH, http.HandlerFunc(s.handleData))

	return s, nil
}

func (s *Server) Router() http.Handler {
	return s.router
}

// Routes lists the API paths the router answers itself.
func (s *Server) Routes() []string {
	return s.router.Routes()
}

func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(http.StatusOK)
	w.Write(s.summary)
}

// ListenAndServe binds addr, calls onListen with the bound address, then
// serves until ctx is done. A shutdown triggered by ctx returns nil.
func (s *Server) ListenAndServe(ctx context.Context, addr string, onListen func(net.Addr)) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "listen on %s", addr)
	}

	if onListen != nil {
		onListen(ln.Addr())
	}

	srv := &http.Server{Handler: s.Router()}

	idle := make(chan struct{})
	go func() {
		defer close(idle)
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("server: shutdown: %v", err)
		}
	}()

	err = srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		<-idle
		return nil
	}
	return err
}

// Announce writes the single startup line for the bound address.
func Announce(w io.Writer, addr net.Addr) {
	port := addr.String()
	if tcp, ok := addr.(*net.TCPAddr); ok {
		port = fmt.Sprint(tcp.Port)
	}
	color.New(color.FgGreen).Fprintf(w, "Server running at http://localhost:%s/\n", port)
}
