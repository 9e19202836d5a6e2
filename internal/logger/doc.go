// Package logger provides structured logging built on zap.
//
// A single shared logger writes human-readable console output. Workloads
// obtain a tagged sub-logger so their messages can be told apart when
// several use cases run concurrently.
//
// # Basic Usage
//
//	logger.Infof("loaded configuration from %s", path)
//
//	log := logger.Named("crud")
//	log.Infof("database %s created", name)
//
// # Levels
//
// The default level is Info. Debug output is enabled globally:
//
//	logger.SetDebug(true)
package logger
