// Package main is the entry point for arango-stress.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"gopkg.in/yaml.v3"

	"arango-stress/internal/config"
	"arango-stress/internal/logger"
	"arango-stress/internal/metrics"
	"arango-stress/internal/workload"
)

var (
	version = "dev"
)

func main() {
	// フラグ定義
	var (
		configFile  = flag.String("config", "config.yaml", "設定ファイルパス (YAML/JSON)")
		idle        = flag.Bool("idle", false, "投入完了後もプロセスを維持する")
		debug       = flag.Bool("debug", false, "デバッグログを有効化")
		dumpConfig  = flag.Bool("dump-config", false, "読み込んだ設定を表示して終了")
		showVersion = flag.Bool("version", false, "バージョンを表示")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `arango-stress - Synthetic Workload Generator for ArangoDB Clusters

Usage:
  arango-stress [options]

Options:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # 設定ファイルから実行
  arango-stress --config config.yaml

  # 投入完了後もプロセスを維持
  arango-stress --config config.yaml --idle

  # 設定の内容を確認
  arango-stress --config config.yaml --dump-config
`)
	}

	flag.Parse()

	// バージョン表示
	if *showVersion {
		fmt.Printf("arango-stress version %s\n", version)
		return
	}

	if *debug {
		logger.SetDebug(true)
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		logger.Errorf("configuration error: %v", err)
		os.Exit(1)
	}

	if *dumpConfig {
		if err := dump(cfg); err != nil {
			logger.Errorf("failed to dump configuration: %v", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg, *idle); err != nil {
		logger.Errorf("run failed: %v", err)
		os.Exit(1)
	}
}

// loadConfig は設定ファイルを読み込んで検証する
func loadConfig(path string) (*config.FileConfig, error) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// dump は読み込んだ設定をYAMLで標準出力へ書き出す
func dump(cfg *config.FileConfig) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}

// run は有効化された全ユースケースを並行実行する
func run(cfg *config.FileConfig, idle bool) error {
	logConfigSummary(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// シグナルハンドリング
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		logger.Infof("interrupt received, shutting down...")
		cancel()
	}()

	// メトリクスエンドポイント
	if cfg.MetricsPort > 0 {
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsPort); err != nil {
				logger.Errorf("metrics server error: %v", err)
			}
		}()
	}

	if !cfg.ActiveUseCases.CRUD.On && !cfg.ActiveUseCases.Graph.On {
		logger.Warnf("no use case is enabled in the configuration, nothing to do")
		return nil
	}

	if cfg.ActiveUseCases.Graph.On {
		logger.Warnf("graph use case is enabled in the configuration but not implemented, skipping")
	}

	var wg sync.WaitGroup
	var failed bool

	// 各ユースケースは独立したゴルーチンで実行し、失敗しても
	// 他のユースケースを巻き込まない
	if cfg.ActiveUseCases.CRUD.On {
		wc := cfg.ToCRUDWorkload()
		wc.IdleAfterCompletion = idle

		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := workload.New(wc).Run(ctx)
			if err != nil {
				logger.Errorf("workload crud failed: %v", err)
				failed = true
				return
			}
			fmt.Println(result.Report())
		}()
	}

	wg.Wait()
	logger.Sync()

	if failed {
		return fmt.Errorf("one or more workloads failed")
	}
	return nil
}

// logConfigSummary は起動時に設定の概要をログへ出力する
func logConfigSummary(cfg *config.FileConfig) {
	logger.Infof("arango-stress version %s (config version %s)", version, cfg.Version)
	logger.Infof("endpoints: %v", cfg.Database.Endpoints)
	logger.Infof("database prefix: %q", cfg.Database.Prefix)
	logger.Infof("use cases: crud=%t (threads=%d), graph=%t (threads=%d)",
		cfg.ActiveUseCases.CRUD.On, cfg.ActiveUseCases.CRUD.Threads,
		cfg.ActiveUseCases.Graph.On, cfg.ActiveUseCases.Graph.Threads)
	if cfg.ActiveUseCases.CRUD.On {
		logger.Infof("crud: collections=%d shards=%d replication=%d documents=%d size=%d drop_first=%t concurrency=%d",
			cfg.CRUD.NumberOfCollections, cfg.CRUD.NumberOfShards, cfg.CRUD.ReplicationFactor,
			cfg.CRUD.NumberOfDocuments, cfg.CRUD.DocumentSize, cfg.CRUD.DropFirst, cfg.CRUD.InsertConcurrency)
	}
	if cfg.MetricsPort > 0 {
		logger.Infof("metrics exposed on :%d/metrics", cfg.MetricsPort)
	}
	if cfg.Comment != "" {
		logger.Infof("config comment: %s", cfg.Comment)
	}
}
