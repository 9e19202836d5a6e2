package worker

import (
	"context"
	"runtime"
	"sync"

	"arango-stress/internal/logger"
)

// Job はワーカーが実行するジョブを表す
type Job func()

// Pool は固定数のゴルーチンでジョブを実行するプール。
// キュー容量はワーカー数と同じで、空きが出るまでSubmitはブロックする
type Pool struct {
	numWorkers int
	jobs       chan Job
	wg         sync.WaitGroup

	mu      sync.Mutex
	started bool
	ctx     context.Context
}

// NewPool は新しいプールを作成する。
// numWorkersが0以下の場合はCPU数を使用
func NewPool(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Pool{
		numWorkers: numWorkers,
		jobs:       make(chan Job, numWorkers),
	}
}

// Start はワーカーを起動する
func (p *Pool) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return
	}

	p.ctx = ctx
	p.started = true

	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}

	logger.Debugf("worker pool started with %d workers", p.numWorkers)
}

// worker はジョブチャネルが閉じられるまでジョブを処理し続ける
func (p *Pool) worker() {
	defer p.wg.Done()

	for job := range p.jobs {
		job()
	}
}

// Submit はジョブをプールに送信する。キューに空きが出るまでブロックし、
// コンテキストが取り消されている場合はfalseを返す
func (p *Pool) Submit(job Job) bool {
	select {
	case <-p.ctx.Done():
		return false
	default:
	}

	select {
	case <-p.ctx.Done():
		return false
	case p.jobs <- job:
		return true
	}
}

// Drain は以降の送信を締め切り、送信済みの全ジョブの完了を待つ。
// 実行中のジョブは取り消されない
func (p *Pool) Drain() {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return
	}
	p.started = false
	p.mu.Unlock()

	close(p.jobs)
	p.wg.Wait()

	logger.Debugf("worker pool drained")
}

// NumWorkers はワーカー数を返す
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// QueueSize は現在キューに滞留しているジョブ数を返す
func (p *Pool) QueueSize() int {
	return len(p.jobs)
}
