package loader

import (
	"context"
	"fmt"
	"time"

	"arango-stress/internal/cluster"
	"arango-stress/internal/document"
	"arango-stress/internal/logger"
	"arango-stress/internal/metrics"
	"arango-stress/internal/worker"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// BatchSize は1バッチの最大ドキュメント数
const BatchSize = 1000

// Batch は連続するシーケンス番号の範囲 [Start, End]（両端を含む）
type Batch struct {
	Start int
	End   int
}

// Size はバッチに含まれるドキュメント数を返す
func (b Batch) Size() int {
	return b.End - b.Start + 1
}

// Partition は[1, documentCount]をbatchSize毎の連続した範囲に分割する。
// 最後のバッチだけが短くなりうる
func Partition(documentCount, batchSize int) []Batch {
	var batches []Batch
	for start := 1; start <= documentCount; start += batchSize {
		end := start + batchSize - 1
		if end > documentCount {
			end = documentCount
		}
		batches = append(batches, Batch{Start: start, End: end})
	}
	return batches
}

// Inserter はバッチ投入に必要なクラスタ操作
type Inserter interface {
	InsertBatch(ctx context.Context, endpoint, database, collection string, docs []document.Document) error
}

// Config は1コレクションに対する投入設定
type Config struct {
	Database          string
	Collection        string
	Documents         int // 投入するドキュメント総数
	DocumentSize      int // 1ドキュメントの目標バイト数（近似）
	Attributes        int // フィラー文字列フィールド数（0以下でデフォルト）
	Workers           int // バッチタスクを実行するワーカー数（0でCPU数）
	InsertConcurrency int // 同時に発行するバッチ投入リクエスト数の上限（0でワーカー数）
	Endpoints         []string
}

// Loader はドキュメント投入のスケジューラ
type Loader struct {
	inserter Inserter
	selector cluster.Selector
	log      *zap.SugaredLogger
}

// New は新しいLoaderを作成する。selectorがnilの場合は一様ランダム選択を使う
func New(inserter Inserter, selector cluster.Selector, log *zap.SugaredLogger) *Loader {
	if selector == nil {
		selector = cluster.Random{}
	}
	if log == nil {
		log = logger.Named("loader")
	}
	return &Loader{inserter: inserter, selector: selector, log: log}
}

// Populate は[1, Documents]をバッチに分割し、ワーカープール上で並行に投入する。
// バッチが失敗しても残りのバッチは最後まで実行され（キャンセルしない）、
// 全バッチ完了後にバッチ順で最初の失敗を報告する。失敗したバッチの
// リトライは行わず、成功済みバッチの挿入はそのまま残る
func (l *Loader) Populate(ctx context.Context, cfg Config) error {
	if cfg.Documents <= 0 {
		l.log.Infof("nothing to populate for %s/%s", cfg.Database, cfg.Collection)
		return nil
	}

	attrs := cfg.Attributes
	if attrs <= 0 {
		attrs = document.DefaultAttributes
	}

	batches := Partition(cfg.Documents, BatchSize)
	results := make([]error, len(batches))

	pool := worker.NewPool(cfg.Workers)
	concurrency := cfg.InsertConcurrency
	if concurrency <= 0 {
		concurrency = pool.NumWorkers()
	}
	sem := semaphore.NewWeighted(int64(concurrency))

	l.log.Infof("populating %s/%s: %d documents in %d batches (workers: %d, insert concurrency: %d)",
		cfg.Database, cfg.Collection, cfg.Documents, len(batches), pool.NumWorkers(), concurrency)

	pool.Start(ctx)
	for i, b := range batches {
		i, b := i, b
		if !pool.Submit(func() {
			results[i] = l.insertBatch(ctx, cfg, b, attrs, sem)
		}) {
			results[i] = fmt.Errorf("batch not dispatched: %w", ctx.Err())
		}
	}
	pool.Drain()

	for i, err := range results {
		if err != nil {
			b := batches[i]
			return fmt.Errorf("batch %d [%d,%d] failed: %w", i+1, b.Start, b.End, err)
		}
	}

	l.log.Infof("populated %s/%s with %d documents", cfg.Database, cfg.Collection, cfg.Documents)
	return nil
}

// insertBatch は1バッチ分のドキュメントを生成して投入する。
// 各バッチは自分のドキュメントバッファと結果のみを所有する
func (l *Loader) insertBatch(ctx context.Context, cfg Config, b Batch, attrs int, sem *semaphore.Weighted) error {
	docs := make([]document.Document, 0, b.Size())
	for i := b.Start; i <= b.End; i++ {
		docs = append(docs, document.Synthesize(i, cfg.DocumentSize, attrs))
	}

	// エントリポイントはバッチ毎に独立に選択する（アフィニティなし）
	endpoint := l.selector.Pick(cfg.Endpoints)

	if err := sem.Acquire(ctx, 1); err != nil {
		return err
	}
	start := time.Now()
	err := l.inserter.InsertBatch(ctx, endpoint, cfg.Database, cfg.Collection, docs)
	sem.Release(1)

	metrics.RecordBatch(cfg.Database, cfg.Collection, len(docs), time.Since(start).Seconds(), err)

	if err != nil {
		l.log.Warnf("batch [%d,%d] against %s failed: %v", b.Start, b.End, endpoint, err)
		return err
	}
	l.log.Debugf("batch [%d,%d] inserted via %s", b.Start, b.End, endpoint)
	return nil
}
