package main

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/crypto/ssh/terminal"
	"golang.org/x/sync/errgroup"

	"github.com/kellegous/stepsort/api"
	"github.com/kellegous/stepsort/config"
	"github.com/kellegous/stepsort/internal"
	"github.com/kellegous/stepsort/metrics"
	"github.com/kellegous/stepsort/mux"
	"github.com/kellegous/stepsort/ui"
)

const shutdownTimeout = 10 * time.Second

// buildMux creates a mux for serving all http routes.
func buildMux(ctx *config.Context) http.Handler {
	mb := mux.Create()

	// setup routes for the sort api
	api.Setup(ctx, mb)

	// setup the visualizer page
	ui.Setup(ctx, mb)

	mb.ForHost(ctx.Host).HandleMethods("/metrics", metrics.Handler(), http.MethodGet)

	return internal.WithAccessLog(mb.Build())
}

// LoadCertificate loads the TLS certificate from the specified files. The key file can be an encrypted
// PEM so long as it carries the appropriate headers (Proc-Type and Dek-Info) and the
// password will be requested interactively.
func LoadCertificate(crtFile, keyFile string) (tls.Certificate, error) {
	crtBytes, err := os.ReadFile(crtFile)
	if err != nil {
		return tls.Certificate{}, err
	}

	keyBytes, err := os.ReadFile(keyFile)
	if err != nil {
		return tls.Certificate{}, err
	}

	keyDer, _ := pem.Decode(keyBytes)
	if keyDer == nil {
		return tls.Certificate{}, fmt.Errorf("%s cannot be decoded", keyFile)
	}

	// http://www.ietf.org/rfc/rfc1421.txt
	if !strings.HasPrefix(keyDer.Headers["Proc-Type"], "4,ENCRYPTED") {
		return tls.X509KeyPair(crtBytes, keyBytes)
	}

	fmt.Printf("%s\nPassword: ", keyFile)
	pwd, err := terminal.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return tls.Certificate{}, err
	}

	keyDec, err := x509.DecryptPEMBlock(keyDer, pwd)
	if err != nil {
		return tls.Certificate{}, err
	}

	return tls.X509KeyPair(crtBytes, pem.EncodeToMemory(&pem.Block{
		Type:    keyDer.Type,
		Headers: map[string]string{},
		Bytes:   keyDec,
	}))
}

func newServer(ctx *config.Context, m http.Handler) (*http.Server, error) {
	s := &http.Server{
		Addr:              ctx.ListenAddr(),
		Handler:           m,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if !ctx.HasCerts() {
		return s, nil
	}

	var certs []tls.Certificate
	for _, item := range ctx.Certs {
		crt, err := LoadCertificate(item.Crt, item.Key)
		if err != nil {
			return nil, fmt.Errorf("load certificate %s: %w", item.Crt, err)
		}

		certs = append(certs, crt)
	}

	s.TLSConfig = &tls.Config{
		NextProtos:   []string{"http/1.1"},
		Certificates: certs,
		MinVersion:   tls.VersionTLS12,
	}

	return s, nil
}

// ListenAndServe binds the listening port and serves traffic until ctx is
// cancelled, at which point the server is shut down gracefully.
func ListenAndServe(ctx context.Context, cfg *config.Context, m http.Handler) error {
	s, err := newServer(cfg, m)
	if err != nil {
		return err
	}

	conn, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}

	if s.TLSConfig != nil {
		conn = tls.NewListener(conn, s.TLSConfig)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.Serve(conn); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		zap.L().Info("shutting down")

		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Shutdown(sctx)
	})

	return g.Wait()
}

func setupLogger(debug bool) error {
	var lg *zap.Logger
	var err error
	if debug {
		lg, err = zap.NewDevelopment()
	} else {
		lg, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(lg)
	return nil
}

// loadConfig reads the config file, if one was named, and validates it.
func loadConfig(filename string) (*config.Info, error) {
	if filename == "" {
		return config.Default(), nil
	}

	var cfg config.Info
	if err := cfg.ReadFile(filename); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return &cfg, nil
}

func serve(flagConf string, flagPort int) {
	cfg, err := loadConfig(flagConf)
	if err != nil {
		zap.L().Fatal("unable to load config",
			zap.String("filename", flagConf),
			zap.Error(err))
	}

	ctx := config.BuildContext(cfg, flagPort)

	zap.L().Info("starting",
		zap.Int("port", ctx.Port),
		zap.String("conf", flagConf),
		zap.String("scheme", ctx.Scheme()),
		zap.Int("max-array-size", ctx.MaxArraySize))

	sctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := ListenAndServe(sctx, ctx, buildMux(ctx)); err != nil {
		zap.L().Fatal("unable to listen and serve",
			zap.Error(err))
	}
}

func newRootCmd() *cobra.Command {
	var flagPort int
	var flagConf string
	var flagDebug bool

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the sorting visualizer and its API",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			serve(flagConf, flagPort)
		},
	}
	serveCmd.Flags().IntVar(&flagPort, "port", 0, "port to listen on (default 80, or 443 with certs)")
	serveCmd.Flags().StringVar(&flagConf, "conf", "", "config file (.json, .yaml or .yml)")

	rootCmd := &cobra.Command{
		Use:   "stepsort",
		Short: "Step by step traces of classic sorting algorithms",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(flagDebug)
		},
		Args: cobra.NoArgs,
		Run:  serveCmd.Run,
	}
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "development logging")
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())

	rootCmd.AddCommand(serveCmd, newTraceCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
