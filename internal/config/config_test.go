package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleYAML = `version: "0.2.0"
database:
  endpoints:
    - http://localhost:8529
    - http://localhost:8539
  username: root
  password: secret
  prefix: t_
active_usecases:
  crud:
    on: true
    threads: 4
  graph:
    on: false
    threads: 0
metrics_port: 9101
crud:
  number_of_collections: 3
  number_of_shards: 2
  replication_factor: 2
  number_of_documents: 5000
  document_size: 1024
  drop_first: true
  insert_concurrency: 8
  comment: bulk insert profile
graph:
  number_of_vertices: 100
  number_of_edges: 300
  number_of_shards: 1
  replication_factor: 1
  smart: false
  vertex_size: 128
  edge_size: 64
  drop_first: false
`

const sampleJSON = `{
  "version": "0.2.0",
  "database": {
    "endpoints": ["http://localhost:8529"],
    "username": "root",
    "password": "",
    "prefix": "t_"
  },
  "active_usecases": {
    "crud": {"on": true, "threads": 2},
    "graph": {"on": false, "threads": 0}
  },
  "metrics_port": 0,
  "crud": {
    "number_of_collections": 1,
    "number_of_shards": 1,
    "replication_factor": 1,
    "number_of_documents": 10,
    "document_size": 100,
    "drop_first": false,
    "insert_concurrency": 1
  }
}`

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoadFileYAML(t *testing.T) {
	cfg, err := LoadFile(writeTempConfig(t, "config.yaml", sampleYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Version != "0.2.0" {
		t.Errorf("expected version 0.2.0, got %s", cfg.Version)
	}
	if len(cfg.Database.Endpoints) != 2 {
		t.Errorf("expected 2 endpoints, got %d", len(cfg.Database.Endpoints))
	}
	if cfg.Database.Prefix != "t_" {
		t.Errorf("expected prefix t_, got %s", cfg.Database.Prefix)
	}
	if !cfg.ActiveUseCases.CRUD.On || cfg.ActiveUseCases.CRUD.Threads != 4 {
		t.Errorf("unexpected crud use case config: %+v", cfg.ActiveUseCases.CRUD)
	}
	if cfg.ActiveUseCases.Graph.On {
		t.Error("expected graph use case to be disabled")
	}
	if cfg.MetricsPort != 9101 {
		t.Errorf("expected metrics_port 9101, got %d", cfg.MetricsPort)
	}
	if cfg.CRUD.NumberOfCollections != 3 || cfg.CRUD.NumberOfDocuments != 5000 {
		t.Errorf("unexpected crud config: %+v", cfg.CRUD)
	}
	if !cfg.CRUD.DropFirst {
		t.Error("expected crud.drop_first to be true")
	}
	if cfg.CRUD.Comment != "bulk insert profile" {
		t.Errorf("unexpected crud comment: %s", cfg.CRUD.Comment)
	}
	if cfg.Graph.NumberOfEdges != 300 {
		t.Errorf("unexpected graph config: %+v", cfg.Graph)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected sample config to validate, got: %v", err)
	}
}

func TestLoadFileJSON(t *testing.T) {
	cfg, err := LoadFile(writeTempConfig(t, "config.json", sampleJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.Database.Endpoints) != 1 {
		t.Errorf("expected 1 endpoint, got %d", len(cfg.Database.Endpoints))
	}
	if cfg.ActiveUseCases.CRUD.Threads != 2 {
		t.Errorf("expected 2 threads, got %d", cfg.ActiveUseCases.CRUD.Threads)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected sample config to validate, got: %v", err)
	}
}

func TestLoadFileUnsupportedFormat(t *testing.T) {
	_, err := LoadFile(writeTempConfig(t, "config.toml", "version = \"0.2.0\""))
	if err == nil {
		t.Fatal("expected an error for unsupported format")
	}
	if !strings.Contains(err.Error(), "unsupported config format") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadFileInvalidYAML(t *testing.T) {
	_, err := LoadFile(writeTempConfig(t, "broken.yaml", "database: [unclosed"))
	if err == nil {
		t.Fatal("expected a parse error")
	}
}

func validConfig(t *testing.T) *FileConfig {
	t.Helper()
	cfg, err := LoadFile(writeTempConfig(t, "config.yaml", sampleYAML))
	if err != nil {
		t.Fatalf("failed to load sample config: %v", err)
	}
	return cfg
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*FileConfig)
		wantErr string
	}{
		{
			"no endpoints",
			func(c *FileConfig) { c.Database.Endpoints = nil },
			"endpoints must not be empty",
		},
		{
			"blank endpoint",
			func(c *FileConfig) { c.Database.Endpoints = []string{"http://h1", "   "} },
			"endpoints[1]",
		},
		{
			"metrics port out of range",
			func(c *FileConfig) { c.MetricsPort = 70000 },
			"metrics_port",
		},
		{
			"negative threads",
			func(c *FileConfig) { c.ActiveUseCases.CRUD.Threads = -1 },
			"threads",
		},
		{
			"negative collections",
			func(c *FileConfig) { c.CRUD.NumberOfCollections = -1 },
			"number_of_collections",
		},
		{
			"zero shards",
			func(c *FileConfig) { c.CRUD.NumberOfShards = 0 },
			"number_of_shards",
		},
		{
			"zero replication factor",
			func(c *FileConfig) { c.CRUD.ReplicationFactor = 0 },
			"replication_factor",
		},
		{
			"negative documents",
			func(c *FileConfig) { c.CRUD.NumberOfDocuments = -1 },
			"number_of_documents",
		},
		{
			"negative document size",
			func(c *FileConfig) { c.CRUD.DocumentSize = -1 },
			"document_size",
		},
		{
			"negative insert concurrency",
			func(c *FileConfig) { c.CRUD.InsertConcurrency = -1 },
			"insert_concurrency",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation to fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error mentioning %q, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestToCRUDWorkload(t *testing.T) {
	cfg, err := LoadFile(writeTempConfig(t, "config.yaml", sampleYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wl := cfg.ToCRUDWorkload()
	if wl.Name != "crud" {
		t.Errorf("expected workload name crud, got %s", wl.Name)
	}
	if wl.DatabaseName() != "t_crud" {
		t.Errorf("expected database name t_crud, got %s", wl.DatabaseName())
	}
	if len(wl.Endpoints) != 2 {
		t.Errorf("expected 2 endpoints, got %d", len(wl.Endpoints))
	}
	if wl.Username != "root" || wl.Password != "secret" {
		t.Errorf("credentials not carried over: %s/%s", wl.Username, wl.Password)
	}
	if wl.Collections != 3 || wl.Shards != 2 || wl.ReplicationFactor != 2 {
		t.Errorf("topology not carried over: %+v", wl)
	}
	if wl.Documents != 5000 || wl.DocumentSize != 1024 {
		t.Errorf("insertion settings not carried over: %+v", wl)
	}
	if !wl.DropFirst {
		t.Error("expected drop_first to carry over")
	}
	if wl.InsertConcurrency != 8 || wl.Threads != 4 {
		t.Errorf("concurrency settings not carried over: %+v", wl)
	}
}
