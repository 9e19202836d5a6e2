package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DocumentsInserted は投入に成功したドキュメント数
	DocumentsInserted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arango_stress_documents_inserted_total",
		Help: "Number of documents successfully inserted",
	}, []string{"database", "collection"})

	// Batches はバッチ投入の試行数（成否別）
	Batches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arango_stress_batches_total",
		Help: "Number of insert batches attempted, by outcome",
	}, []string{"database", "collection", "status"})

	// BatchDuration はバッチ投入1回あたりの所要時間
	BatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "arango_stress_batch_duration_seconds",
		Help:    "Latency of a single insert batch request",
		Buckets: prometheus.DefBuckets,
	})

	// DatabasesCreated は作成したデータベース数
	DatabasesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arango_stress_databases_created_total",
		Help: "Number of databases created by reconciliation",
	})

	// CollectionsCreated は作成したコレクション数
	CollectionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arango_stress_collections_created_total",
		Help: "Number of collections created by reconciliation",
	})
)

// バッチ成否ラベルの値
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// RecordBatch は1バッチの結果を記録する
func RecordBatch(database, collection string, docs int, seconds float64, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	} else {
		DocumentsInserted.WithLabelValues(database, collection).Add(float64(docs))
	}
	Batches.WithLabelValues(database, collection, status).Inc()
	BatchDuration.Observe(seconds)
}
