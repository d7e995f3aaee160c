package main

import (
	"context"
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
	"spartoo_api/config"
	"spartoo_api/internal/spartoo/business/models"
	"spartoo_api/internal/spartoo/business/services/documents"
	"spartoo_api/internal/spartoo/business/services/feed"
	"spartoo_api/internal/spartoo/business/xmlnode"
	"spartoo_api/internal/spartoo/pkg/clients"
	"spartoo_api/internal/spartoo/provisioning"
	"spartoo_api/internal/spartoo/storage"
	"spartoo_api/metrics"
	"spartoo_api/migrations/marketplaces/spartoo"
	"spartoo_api/pkg/dbconnect/postgres"
	"spartoo_api/pkg/logger"
)

const (
	modeImport = "import"
	modeStock  = "stock"
	modeStatus = "status"
	modeDryRun = "dry-run"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML configuration")
	feedPath := flag.String("feed", "feed.yaml", "path to the YAML product feed")
	mode := flag.String("mode", modeImport, "import, stock, status or dry-run")
	forceDescription := flag.Bool("force-description", false, "overwrite descriptions already on Spartoo")
	forceOverwrite := flag.Bool("force-overwrite", false, "overwrite every field already on Spartoo")
	metricsAddr := flag.String("metrics", "", "address to expose prometheus metrics on, e.g. :9090")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to load .env: %v", err)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	writer, closeLog := logWriter(cfg.LogFile)
	defer closeLog()
	appLog := logger.NewLogger(writer, "[spartoo]")

	if *metricsAddr != "" {
		go func() {
			http.Handle("/metrics", metrics.MetricsHandler())
			appLog.Log("metrics listening on %s", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, nil); err != nil {
				appLog.Log("metrics server stopped: %v", err)
			}
		}()
	}

	registry := provisioning.NewRegistry(os.DirFS(cfg.Spartoo.ProvisioningDir), appLog.WithPrefix("[provisioning]"))
	catalog, err := registry.Switch(cfg.Spartoo.Language)
	if err != nil {
		log.Fatalf("Error loading provisioning catalog: %v", err)
	}

	listings, err := loadFeed(*feedPath, catalog, appLog.WithPrefix("[feed]"))
	if err != nil {
		log.Fatalf("Error loading feed: %v", err)
	}

	if *mode == modeDryRun {
		if err := write(os.Stdout, documents.Import(listings...)); err != nil {
			log.Fatalf("Error rendering document: %v", err)
		}
		return
	}

	opts := []clients.Option{
		clients.WithBaseURL(cfg.Spartoo.BaseURL),
		clients.WithHTTPClient(&http.Client{Timeout: cfg.Spartoo.Timeout}),
		clients.WithLogger(appLog.WithPrefix("[client]")),
	}
	if n := cfg.Spartoo.RequestsPerMinute; n > 0 {
		opts = append(opts, clients.WithLimiter(rate.NewLimiter(rate.Every(time.Minute/time.Duration(n)), n)))
	}
	if cfg.Journal.Enabled {
		pg := postgres.NewPgConnector(&cfg.Journal.Postgres, appLog.WithPrefix("[postgres]"))
		db, err := pg.Connect()
		if err != nil {
			log.Fatalf("Error connecting to PostgreSQL: %v", err)
		}
		defer pg.Close()
		if err := spartoo.Apply(db, spartoo.All()...); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		opts = append(opts, clients.WithRecorder(storage.NewJournalRepository(db)))
	}

	client, err := clients.NewClient(cfg.Spartoo.Partner, opts...)
	if err != nil {
		log.Fatalf("Error creating client: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var resp *xmlnode.Node
	switch *mode {
	case modeImport:
		resp, err = client.ImportProducts(ctx, listings, *forceDescription, *forceOverwrite)
	case modeStock:
		resp, err = client.UpdateStockBatch(ctx, baseProducts(listings))
	case modeStatus:
		resp, err = client.CheckStatusProducts(ctx, baseProducts(listings))
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatalf("Spartoo %s failed: %v", *mode, err)
	}
	if err := write(os.Stdout, resp); err != nil {
		log.Fatalf("Error rendering response: %v", err)
	}
}

func loadFeed(path string, catalog *provisioning.Catalog, feedLog logger.Logger) ([]models.Listing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return feed.NewLoader(catalog, feedLog).Load(f)
}

func baseProducts(listings []models.Listing) []*models.Product {
	products := make([]*models.Product, 0, len(listings))
	for _, l := range listings {
		products = append(products, l.Base())
	}
	return products
}

func write(w io.Writer, root *xmlnode.Node) error {
	data, err := xmlnode.Document(root)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func logWriter(path string) (io.Writer, func()) {
	if path == "" {
		return os.Stderr, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("failed to open log file %s, logging to stderr: %v", path, err)
		return os.Stderr, func() {}
	}
	return io.MultiWriter(os.Stderr, f), func() { f.Close() }
}
