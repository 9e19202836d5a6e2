package topology

import (
	"context"
	"fmt"

	"arango-stress/internal/logger"
	"arango-stress/internal/metrics"

	"go.uber.org/zap"
)

// Spec は1ワークロードが要求するトポロジー
type Spec struct {
	Database          string // 完全なデータベース名（プレフィックス込み）
	Collections       int    // コレクション数（c1..cN）
	Shards            int
	ReplicationFactor int
	DropFirst         bool // 既存データベースを無条件に削除して作り直す
}

// Gateway は調整処理が必要とするクラスタ操作のサブセット
type Gateway interface {
	DatabaseExists(ctx context.Context, endpoint, name string) bool
	CreateDatabase(ctx context.Context, endpoint, name string) error
	DropDatabase(ctx context.Context, endpoint, name string) error
	CollectionExists(ctx context.Context, endpoint, database, name string) bool
	CreateCollection(ctx context.Context, endpoint, database, name string, shards, replicationFactor int) error
}

// CollectionName はi番目（1始まり）のコレクション名を返す
func CollectionName(i int) string {
	return fmt.Sprintf("c%d", i)
}

// Reconciler は設定上のトポロジーと観測されたクラスタ状態を突き合わせ、
// 再利用・削除して再作成・新規作成のいずれかを実行する。
// 同一データベース名に対する複数プロセスからの同時実行は想定しない
// （分散ロックは取得しない）
type Reconciler struct {
	gw       Gateway
	endpoint string
	log      *zap.SugaredLogger
}

// New は新しいReconcilerを作成する。
// エントリポイントは互換なのでいずれか1つを使用する
func New(gw Gateway, endpoint string, log *zap.SugaredLogger) *Reconciler {
	if log == nil {
		log = logger.Named("topology")
	}
	return &Reconciler{gw: gw, endpoint: endpoint, log: log}
}

// Reconcile はトポロジーを確立する。データベースが全コレクションとともに
// 既に存在していた場合はtrue（再利用・投入不要）を返し、
// 作成し直した場合はfalseを返す
func (r *Reconciler) Reconcile(ctx context.Context, spec Spec) (preexisting bool, err error) {
	if r.gw.DatabaseExists(ctx, r.endpoint, spec.Database) {
		if spec.DropFirst {
			r.log.Infof("database %s exists, drop_first is set, dropping", spec.Database)
			if err := r.gw.DropDatabase(ctx, r.endpoint, spec.Database); err != nil {
				return false, fmt.Errorf("failed to drop database %s: %w", spec.Database, err)
			}
			return false, r.create(ctx, spec)
		}

		// 欠けているコレクションが1つでもあれば部分的な修復はせず、
		// データベースごと作り直す
		complete := true
		for i := 1; i <= spec.Collections; i++ {
			if !r.gw.CollectionExists(ctx, r.endpoint, spec.Database, CollectionName(i)) {
				complete = false
				break
			}
		}

		if complete {
			r.log.Infof("database %s already exists with all %d collections, reusing",
				spec.Database, spec.Collections)
			return true, nil
		}

		r.log.Infof("database %s exists but is incomplete, dropping", spec.Database)
		if err := r.gw.DropDatabase(ctx, r.endpoint, spec.Database); err != nil {
			return false, fmt.Errorf("failed to drop database %s: %w", spec.Database, err)
		}
	}

	return false, r.create(ctx, spec)
}

// create はデータベースと全コレクションを順に作成する
func (r *Reconciler) create(ctx context.Context, spec Spec) error {
	if err := r.gw.CreateDatabase(ctx, r.endpoint, spec.Database); err != nil {
		return fmt.Errorf("failed to create database %s: %w", spec.Database, err)
	}
	metrics.DatabasesCreated.Inc()
	r.log.Infof("database %s created", spec.Database)

	for i := 1; i <= spec.Collections; i++ {
		name := CollectionName(i)
		if err := r.gw.CreateCollection(ctx, r.endpoint, spec.Database, name,
			spec.Shards, spec.ReplicationFactor); err != nil {
			return fmt.Errorf("failed to create collection %s: %w", name, err)
		}
		metrics.CollectionsCreated.Inc()
		r.log.Debugf("collection %s created (shards: %d, replication: %d)",
			name, spec.Shards, spec.ReplicationFactor)
	}

	r.log.Infof("created %d collections in %s", spec.Collections, spec.Database)
	return nil
}
