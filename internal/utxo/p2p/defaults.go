package p2p

import "time"

const (
	defaultRequestTimeout   = 45 * time.Second
	defaultDialTimeout      = 10 * time.Second
	defaultHandshakeTimeout = 30 * time.Second

	eventBufferSize = 256

	userAgentName    = "blockinsight7000-node"
	userAgentVersion = "0.1.0"
)
