package cluster

import (
	"context"
	"fmt"
	"strings"

	"arango-stress/internal/arango"
	"arango-stress/internal/logger"

	"golang.org/x/sync/errgroup"
)

// Cluster は対象クラスタのエントリポイント集合を保持する。
// エントリポイントは生成後は不変で、どのエントリポイントも
// 任意のリクエストを処理できるものとして扱う
type Cluster struct {
	endpoints []string
}

// New はエントリポイント集合を作成する。アドレスは正規化され、
// 少なくとも1つのエントリポイントが必要
func New(endpoints []string) (*Cluster, error) {
	if len(endpoints) == 0 {
		return nil, fmt.Errorf("at least one entry point is required")
	}

	eps := make([]string, 0, len(endpoints))
	for i, ep := range endpoints {
		ep = strings.TrimRight(strings.TrimSpace(ep), "/")
		if ep == "" {
			return nil, fmt.Errorf("entry point %d is empty", i)
		}
		eps = append(eps, ep)
	}

	return &Cluster{endpoints: eps}, nil
}

// Endpoints は全エントリポイントのコピーを返す
func (c *Cluster) Endpoints() []string {
	eps := make([]string, len(c.endpoints))
	copy(eps, c.endpoints)
	return eps
}

// First は先頭のエントリポイントを返す
func (c *Cluster) First() string {
	return c.endpoints[0]
}

// Size はエントリポイント数を返す
func (c *Cluster) Size() int {
	return len(c.endpoints)
}

// PingAll は全エントリポイントの疎通を並行に確認する。
// 全エントリポイントを試した上で、最初に発生したエラーを返す
func (c *Cluster) PingAll(ctx context.Context, gw arango.Gateway) error {
	logger.Infof("probing %d entry points", len(c.endpoints))

	var g errgroup.Group
	for _, ep := range c.endpoints {
		ep := ep
		g.Go(func() error {
			if err := gw.Ping(ctx, ep); err != nil {
				logger.Warnf("entry point %s is not reachable: %v", ep, err)
				return err
			}
			logger.Debugf("entry point %s is reachable", ep)
			return nil
		})
	}
	return g.Wait()
}
