package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"arango-stress/internal/workload"

	"gopkg.in/yaml.v3"
)

// FileConfig は設定ファイルの構造
type FileConfig struct {
	Version        string         `yaml:"version" json:"version"`
	Database       DatabaseConfig `yaml:"database" json:"database"`
	ActiveUseCases ActiveUseCases `yaml:"active_usecases" json:"active_usecases"`
	MetricsPort    int            `yaml:"metrics_port" json:"metrics_port"`
	CRUD           CRUDConfig     `yaml:"crud" json:"crud"`
	Graph          GraphConfig    `yaml:"graph" json:"graph"`
	Comment        string         `yaml:"comment,omitempty" json:"comment,omitempty"`
}

// DatabaseConfig はクラスタ接続設定
type DatabaseConfig struct {
	Endpoints []string `yaml:"endpoints" json:"endpoints"`
	Username  string   `yaml:"username" json:"username"`
	Password  string   `yaml:"password" json:"password"`
	Prefix    string   `yaml:"prefix" json:"prefix"`
}

// ActiveUseCases は有効化するユースケースの設定
type ActiveUseCases struct {
	CRUD  UseCaseConfig `yaml:"crud" json:"crud"`
	Graph UseCaseConfig `yaml:"graph" json:"graph"`
}

// UseCaseConfig はユースケース毎の有効化フラグとスレッド数
type UseCaseConfig struct {
	On      bool `yaml:"on" json:"on"`
	Threads int  `yaml:"threads" json:"threads"`
}

// CRUDConfig はCRUDユースケースの設定
type CRUDConfig struct {
	NumberOfCollections int    `yaml:"number_of_collections" json:"number_of_collections"`
	NumberOfShards      int    `yaml:"number_of_shards" json:"number_of_shards"`
	ReplicationFactor   int    `yaml:"replication_factor" json:"replication_factor"`
	NumberOfDocuments   int    `yaml:"number_of_documents" json:"number_of_documents"`
	DocumentSize        int    `yaml:"document_size" json:"document_size"`
	DropFirst           bool   `yaml:"drop_first" json:"drop_first"`
	InsertConcurrency   int    `yaml:"insert_concurrency" json:"insert_concurrency"`
	Comment             string `yaml:"comment,omitempty" json:"comment,omitempty"`
}

// GraphConfig はGraphユースケースの設定（ユースケース自体は未実装）
type GraphConfig struct {
	NumberOfVertices  int    `yaml:"number_of_vertices" json:"number_of_vertices"`
	NumberOfEdges     int    `yaml:"number_of_edges" json:"number_of_edges"`
	NumberOfShards    int    `yaml:"number_of_shards" json:"number_of_shards"`
	ReplicationFactor int    `yaml:"replication_factor" json:"replication_factor"`
	Smart             bool   `yaml:"smart" json:"smart"`
	VertexSize        int    `yaml:"vertex_size" json:"vertex_size"`
	EdgeSize          int    `yaml:"edge_size" json:"edge_size"`
	DropFirst         bool   `yaml:"drop_first" json:"drop_first"`
	Comment           string `yaml:"comment,omitempty" json:"comment,omitempty"`
}

// LoadFile は設定ファイルを読み込む
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config FileConfig
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}

	return &config, nil
}

// Validate は設定を検証する
func (f *FileConfig) Validate() error {
	if len(f.Database.Endpoints) == 0 {
		return fmt.Errorf("database.endpoints must not be empty")
	}
	for i, ep := range f.Database.Endpoints {
		if strings.TrimSpace(ep) == "" {
			return fmt.Errorf("database.endpoints[%d] must not be empty", i)
		}
	}

	if f.MetricsPort < 0 || f.MetricsPort > 65535 {
		return fmt.Errorf("metrics_port must be between 0 and 65535")
	}

	if f.ActiveUseCases.CRUD.Threads < 0 {
		return fmt.Errorf("active_usecases.crud.threads must be non-negative")
	}
	if f.ActiveUseCases.Graph.Threads < 0 {
		return fmt.Errorf("active_usecases.graph.threads must be non-negative")
	}

	if f.CRUD.NumberOfCollections < 0 {
		return fmt.Errorf("crud.number_of_collections must be non-negative")
	}
	if f.CRUD.NumberOfShards < 1 {
		return fmt.Errorf("crud.number_of_shards must be at least 1")
	}
	if f.CRUD.ReplicationFactor < 1 {
		return fmt.Errorf("crud.replication_factor must be at least 1")
	}
	if f.CRUD.NumberOfDocuments < 0 {
		return fmt.Errorf("crud.number_of_documents must be non-negative")
	}
	if f.CRUD.DocumentSize < 0 {
		return fmt.Errorf("crud.document_size must be non-negative")
	}
	if f.CRUD.InsertConcurrency < 0 {
		return fmt.Errorf("crud.insert_concurrency must be non-negative")
	}

	return nil
}

// ToCRUDWorkload はFileConfigをCRUDユースケースのworkload.Configに変換する
func (f *FileConfig) ToCRUDWorkload() workload.Config {
	return workload.Config{
		Name:              "crud",
		Endpoints:         f.Database.Endpoints,
		Username:          f.Database.Username,
		Password:          f.Database.Password,
		Prefix:            f.Database.Prefix,
		Collections:       f.CRUD.NumberOfCollections,
		Shards:            f.CRUD.NumberOfShards,
		ReplicationFactor: f.CRUD.ReplicationFactor,
		Documents:         f.CRUD.NumberOfDocuments,
		DocumentSize:      f.CRUD.DocumentSize,
		DropFirst:         f.CRUD.DropFirst,
		InsertConcurrency: f.CRUD.InsertConcurrency,
		Threads:           f.ActiveUseCases.CRUD.Threads,
	}
}
