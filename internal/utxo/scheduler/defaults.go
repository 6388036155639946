package scheduler

import "time"

const (
	defaultBlockCacheSize = 64

	retryInterval    = 5 * time.Second
	maxRetryInterval = 1 * time.Minute

	defaultResyncInterval = 1 * time.Minute

	mempoolBatchSize     = 500
	mempoolFlushInterval = 1 * time.Second
	mempoolFlushRPS      = 10
)
