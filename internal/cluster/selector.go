package cluster

import (
	"math/rand"
	"sync/atomic"
)

// Selector は1リクエストに使用するエントリポイントを選択する。
// 重み付けやヘルスアウェアな戦略はこのインターフェースの実装として
// 差し替えられる
type Selector interface {
	Pick(endpoints []string) string
}

// Ensure the built-in strategies implement Selector
var (
	_ Selector = Random{}
	_ Selector = (*RoundRobin)(nil)
)

// Random は一様ランダムにエントリポイントを選択する。
// リクエスト間のアフィニティは持たない
type Random struct{}

// Pick はエントリポイントを1つ選択する
func (Random) Pick(endpoints []string) string {
	return endpoints[rand.Intn(len(endpoints))]
}

// RoundRobin はエントリポイントを順繰りに選択する
type RoundRobin struct {
	next atomic.Uint64
}

// Pick は次のエントリポイントを返す
func (r *RoundRobin) Pick(endpoints []string) string {
	n := r.next.Add(1) - 1
	return endpoints[n%uint64(len(endpoints))]
}
