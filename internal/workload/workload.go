package workload

import (
	"context"
	"fmt"
	"sync"
	"time"

	"arango-stress/internal/arango"
	"arango-stress/internal/cluster"
	"arango-stress/internal/loader"
	"arango-stress/internal/logger"
	"arango-stress/internal/topology"

	"go.uber.org/zap"
)

// Config は1ユースケース分の実行設定
type Config struct {
	Name string // ユースケース名（データベース名の導出に使用）

	// クラスタ接続
	Endpoints []string
	Username  string
	Password  string
	Prefix    string // データベース名のプレフィックス

	// トポロジー
	Collections       int
	Shards            int
	ReplicationFactor int
	DropFirst         bool

	// 投入
	Documents         int // コレクション毎の投入ドキュメント数
	DocumentSize      int
	InsertConcurrency int
	Threads           int // ユースケースのワーカープールサイズ（0でCPU数）

	// 完了後もプロセスを維持するかどうか
	IdleAfterCompletion bool
}

// DatabaseName はプレフィックスとユースケース名から導出されるデータベース名
func (c Config) DatabaseName() string {
	return c.Prefix + c.Name
}

// Engine は1ユースケースを実行するエンジン
type Engine struct {
	config   Config
	gw       arango.Gateway
	selector cluster.Selector
	log      *zap.SugaredLogger

	mu      sync.Mutex
	running bool
}

// New は新しいEngineを作成する
func New(config Config) *Engine {
	return &Engine{
		config:   config,
		gw:       arango.NewClient(config.Username, config.Password),
		selector: cluster.Random{},
		log:      logger.Named(config.Name),
	}
}

// SetGateway はGateway実装を差し替える
func (e *Engine) SetGateway(gw arango.Gateway) {
	e.gw = gw
}

// SetSelector はエントリポイント選択戦略を差し替える
func (e *Engine) SetSelector(sel cluster.Selector) {
	e.selector = sel
}

// Run はユースケースを実行する。トポロジーを確立し、作り直した場合は
// 全コレクションへドキュメントを投入して結果を返す。投入完了まで
// ブロックし、IdleAfterCompletionが設定されている場合はさらに
// コンテキストの取り消しまでパークする
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return nil, fmt.Errorf("workload %s is already running", e.config.Name)
	}
	e.running = true
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
	}()

	e.log.Infof("=== Workload '%s' started ===", e.config.Name)

	cl, err := cluster.New(e.config.Endpoints)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Workload:  e.config.Name,
		Database:  e.config.DatabaseName(),
		StartTime: time.Now(),
	}

	// 疎通確認は失敗しても実行を止めない
	if err := cl.PingAll(ctx, e.gw); err != nil {
		e.log.Warnf("entry point probe reported failures: %v", err)
	}

	rec := topology.New(e.gw, cl.First(), e.log)
	preexisting, err := rec.Reconcile(ctx, topology.Spec{
		Database:          result.Database,
		Collections:       e.config.Collections,
		Shards:            e.config.Shards,
		ReplicationFactor: e.config.ReplicationFactor,
		DropFirst:         e.config.DropFirst,
	})
	if err != nil {
		return nil, fmt.Errorf("reconciliation failed: %w", err)
	}
	result.Preexisting = preexisting

	if preexisting {
		e.log.Infof("database %s already existed and was complete, skipping population", result.Database)
	} else {
		result.CollectionsCreated = e.config.Collections
		if err := e.populate(ctx, cl, result); err != nil {
			return nil, err
		}
	}

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)

	e.log.Infof("=== Workload '%s' completed ===", e.config.Name)

	if e.config.IdleAfterCompletion {
		e.log.Infof("idling until cancelled")
		e.idle(ctx)
	}

	return result, nil
}

// populate は今回の調整で作成された全コレクションへ順にドキュメントを投入する
func (e *Engine) populate(ctx context.Context, cl *cluster.Cluster, result *Result) error {
	l := loader.New(e.gw, e.selector, e.log)

	for i := 1; i <= e.config.Collections; i++ {
		name := topology.CollectionName(i)
		err := l.Populate(ctx, loader.Config{
			Database:          result.Database,
			Collection:        name,
			Documents:         e.config.Documents,
			DocumentSize:      e.config.DocumentSize,
			Workers:           e.config.Threads,
			InsertConcurrency: e.config.InsertConcurrency,
			Endpoints:         cl.Endpoints(),
		})
		if err != nil {
			return fmt.Errorf("population of %s/%s failed: %w", result.Database, name, err)
		}
		result.DocumentsInserted += e.config.Documents
	}
	return nil
}

// idle は取り消されるまで1秒間隔でパークする
func (e *Engine) idle(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Second):
		}
	}
}
