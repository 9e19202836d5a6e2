package workload

import (
	"fmt"
	"time"
)

// Result は1ユースケースの実行結果
type Result struct {
	Workload string
	Database string

	Preexisting        bool // データベースが完全な状態で既に存在していたか
	CollectionsCreated int
	DocumentsInserted  int

	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// Report は結果をフォーマットして返す
func (r *Result) Report() string {
	return fmt.Sprintf(`
================================================================================
                         WORKLOAD REPORT: %s
================================================================================

EXECUTION SUMMARY
-----------------
  Start Time:     %s
  End Time:       %s
  Duration:       %v

TOPOLOGY
--------
  Database:             %s
  Pre-existing:         %t
  Collections Created:  %d

INSERTION
---------
  Documents Inserted:   %d

================================================================================`,
		r.Workload,
		r.StartTime.Format("2006-01-02 15:04:05"),
		r.EndTime.Format("2006-01-02 15:04:05"),
		r.Duration.Round(time.Millisecond),
		r.Database,
		r.Preexisting,
		r.CollectionsCreated,
		r.DocumentsInserted,
	)
}
