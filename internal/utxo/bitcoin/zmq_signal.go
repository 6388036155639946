package bitcoin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/clock"
	"github.com/lightninglabs/gozmq"
	"go.uber.org/zap"
)

const (
	hashBlockTopic  = "hashblock"
	zmqPollInterval = 5 * time.Second
)

// SubscribeBlockSignal subscribes to a bitcoind ZMQ hashblock publisher and emits one signal per
// announced block. Signals are coalesced when the consumer is busy. An empty addr disables the signal.
func SubscribeBlockSignal(ctx context.Context, addr string, logger *zap.Logger) (<-chan struct{}, error) {
	if addr == "" {
		return nil, nil
	}

	conn, err := gozmq.Subscribe(addr, []string{hashBlockTopic}, zmqPollInterval)
	if err != nil {
		return nil, fmt.Errorf("connect zmq: %w", err)
	}

	notify := make(chan struct{}, 1)

	go func() {
		defer conn.Close()

		var (
			topic [len(hashBlockTopic)]byte
			hash  [32]byte
			seq   [4]byte
		)
		for {
			if ctx.Err() != nil {
				return
			}

			msgParts, err := conn.Receive([][]byte{topic[:], hash[:], seq[:]})
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				var netErr net.Error
				if errors.As(err, &netErr) && netErr.Timeout() {
					continue
				}
				logger.Warn("zmq recv failed", zap.Error(err))
				if clock.SleepWithContext(ctx, time.Second) != nil {
					return
				}
				continue
			}
			if len(msgParts) < 2 || string(msgParts[0]) != hashBlockTopic {
				logger.Warn("skip malformed zmq message", zap.Int("parts", len(msgParts)))
				continue
			}

			select {
			case notify <- struct{}{}:
			default:
			}
		}
	}()

	return notify, nil
}
