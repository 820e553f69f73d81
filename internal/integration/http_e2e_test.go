//go:build integration

package integration

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/alicebob/miniredis/v2"
	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"travel_reco/internal/adapters/catalog"
	server "travel_reco/internal/adapters/http_server"
	redisad "travel_reco/internal/adapters/redis"
	"travel_reco/internal/app"
	"travel_reco/internal/pages"
	mysqlrepo "travel_reco/internal/storage/mysql"
)

const upstreamDoc = `{
  "countries": [
    {"id": 1, "name": "Japan", "cities": [
      {"name": "Tokyo, Japan", "imageUrl": "tokyo.jpg", "description": "A city where tradition meets futurism."},
      {"name": "Kyoto, Japan", "imageUrl": "kyoto.jpg", "description": "Known for its historic temples and gardens."}
    ]},
    {"id": 2, "name": "Brazil", "cities": [
      {"name": "Rio de Janeiro, Brazil", "imageUrl": "rio.jpg", "description": "A lively city known for its beaches."}
    ]}
  ],
  "temples": [
    {"id": 1, "name": "Angkor Wat, Cambodia", "imageUrl": "angkor.jpg", "description": "A UNESCO World Heritage site."}
  ],
  "beaches": [
    {"id": 1, "name": "Bora Bora, French Polynesia", "imageUrl": "bora.jpg", "description": "An island known for its stunning turquoise waters."}
  ]
}`

// ---------- helpers ----------
func migrationsDir() string {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return filepath.Join("..", "..", "migrations")
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := migrationsDir()

	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir %s: %v", dir, err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)
	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=travel",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:%s@tcp(127.0.0.1:%s)/%s?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		"root", hostPort, "travel")

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)
	return db
}

// ---------- the test ----------

// Upstream document -> ingestor -> MySQL -> API store -> rendered page.
func TestHTTP_EndToEnd_IngestThenSearch(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(upstreamDoc))
	}))
	defer upstream.Close()

	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	cl, err := catalog.New(upstream.URL+"/travel_recommendation_api.json", 100)
	if err != nil {
		t.Fatalf("catalog client: %v", err)
	}
	ingested, err := app.NewIngestionService(app.NewDocumentSource(cl), repo).Ingest(ctx)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if ingested.Len() != 5 {
		t.Fatalf("expected 5 records, got %d", ingested.Len())
	}

	// API side reads from MySQL with a redis cache in front of searches
	store := app.NewStore(repo, nil)
	if _, err := store.Load(ctx); err != nil {
		t.Fatalf("load from mysql: %v", err)
	}
	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = cache.Close() })

	content, err := pages.Default()
	if err != nil {
		t.Fatalf("content: %v", err)
	}
	h, err := server.NewHandlers(app.NewQueryService(store, cache, time.Minute), store, content)
	if err != nil {
		t.Fatalf("handlers: %v", err)
	}
	srv := server.New()
	srv.MountHandlers(h)
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	for i := 0; i < 2; i++ { // second pass is served from cache
		res, err := http.Get(ts.URL + "/search?q=kyoto")
		if err != nil {
			t.Fatalf("GET: %v", err)
		}
		doc, err := goquery.NewDocumentFromReader(res.Body)
		res.Body.Close()
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if res.StatusCode != http.StatusOK {
			t.Fatalf("status %d", res.StatusCode)
		}
		items := doc.Find(".countries-section > .result-item")
		if items.Length() != 1 || items.Find("h3").Text() != "Japan" {
			t.Fatalf("pass %d: expected Japan, got %q", i, items.Text())
		}
		if n := items.Find(".city-item").Length(); n != 2 {
			t.Fatalf("pass %d: expected both Japanese cities, got %d", i, n)
		}
	}
	if len(mr.Keys()) != 1 {
		t.Fatalf("expected one cached search, got %v", mr.Keys())
	}
}
