// Package p2p serves headers and blocks from trusted peers over the bitcoin wire protocol.
package p2p

import (
	"context"
	"errors"
	"fmt"
	"net"
	"slices"
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/peer"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var (
	// ErrNoPeers is returned when no peer is connected and none could be reached.
	ErrNoPeers = errors.New("no connected peers")
	// ErrClosed is returned after Close.
	ErrClosed = errors.New("transport closed")

	errRequestTimeout = errors.New("request timed out")
	errNotFound       = errors.New("not found")
)

// Config lists the trusted peers and request limits.
type Config struct {
	Peers            []string
	RequestTimeout   time.Duration
	DialTimeout      time.Duration
	HandshakeTimeout time.Duration
}

type node struct {
	remote    remote
	ready     chan struct{}
	readyOnce sync.Once

	// headers is the single outstanding getheaders waiter, guarded by Transport.mu.
	headers chan *wire.MsgHeaders
}

type blockResult struct {
	block model.RawBlock
	found bool
}

type blockWaiter struct {
	node *node
	ch   chan blockResult
}

// Transport keeps outbound connections to trusted peers. Requests go to one peer at a time
// and move on to the next peer when a request times out or the peer lacks the data.
type Transport struct {
	params  *chaincfg.Params
	cfg     Config
	metrics Metrics
	logger  *zap.Logger

	mu     sync.Mutex
	nodes  []*node
	next   int
	blocks map[string][]blockWaiter
	events chan model.PeerEvent
	closed bool
}

// New builds a transport for network. Peers are dialed by Connect.
func New(network model.Network, cfg Config, metrics Metrics, logger *zap.Logger) (*Transport, error) {
	params, err := bitcoin.ChainParams(network)
	if err != nil {
		return nil, err
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = defaultDialTimeout
	}
	if cfg.HandshakeTimeout <= 0 {
		cfg.HandshakeTimeout = defaultHandshakeTimeout
	}
	return &Transport{
		params:  params,
		cfg:     cfg,
		metrics: metrics,
		logger:  logger.Named("p2p_transport"),
		blocks:  make(map[string][]blockWaiter),
		events:  make(chan model.PeerEvent, eventBufferSize),
	}, nil
}

// Connect dials every configured peer that is not connected yet. It fails only when no
// peer ends up connected.
func (t *Transport) Connect(ctx context.Context) error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return ErrClosed
	}
	connected := make(map[string]struct{}, len(t.nodes))
	for _, n := range t.nodes {
		connected[n.remote.Addr()] = struct{}{}
	}
	t.mu.Unlock()

	var errs error
	for _, addr := range t.cfg.Peers {
		if _, ok := connected[addr]; ok {
			continue
		}
		n, err := t.dial(ctx, addr)
		if err != nil {
			t.logger.Warn("peer connection failed", zap.String("peer", addr), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("peer %s: %w", addr, err))
			continue
		}
		t.addNode(n)
		t.logger.Info("peer connected", zap.String("peer", addr), zap.Int32("last_block", n.remote.LastBlock()))
	}

	if t.peerCount() == 0 {
		return multierr.Append(ErrNoPeers, errs)
	}
	return nil
}

func (t *Transport) dial(ctx context.Context, addr string) (*node, error) {
	n := &node{ready: make(chan struct{})}
	p, err := peer.NewOutboundPeer(t.peerConfig(n), addr)
	if err != nil {
		return nil, fmt.Errorf("new outbound peer: %w", err)
	}

	dialer := net.Dialer{Timeout: t.cfg.DialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}
	n.remote = p
	p.AssociateConnection(conn)

	timer := time.NewTimer(t.cfg.HandshakeTimeout)
	defer timer.Stop()
	select {
	case <-n.ready:
	case <-timer.C:
		p.Disconnect()
		return nil, errors.New("handshake timed out")
	case <-ctx.Done():
		p.Disconnect()
		return nil, ctx.Err()
	}

	go func() {
		p.WaitForDisconnect()
		t.removeNode(n)
	}()
	return n, nil
}

func (t *Transport) peerConfig(n *node) *peer.Config {
	return &peer.Config{
		Listeners: peer.MessageListeners{
			OnVerAck: func(*peer.Peer, *wire.MsgVerAck) {
				n.readyOnce.Do(func() { close(n.ready) })
			},
			OnInv: func(_ *peer.Peer, msg *wire.MsgInv) {
				t.onInv(n, msg)
			},
			OnHeaders: func(_ *peer.Peer, msg *wire.MsgHeaders) {
				t.onHeaders(n, msg)
			},
			OnBlock: func(_ *peer.Peer, msg *wire.MsgBlock, _ []byte) {
				t.onBlock(n, msg)
			},
			OnTx: func(_ *peer.Peer, msg *wire.MsgTx) {
				t.onTx(n, msg)
			},
			OnNotFound: func(_ *peer.Peer, msg *wire.MsgNotFound) {
				t.onNotFound(n, msg)
			},
		},
		UserAgentName:    userAgentName,
		UserAgentVersion: userAgentVersion,
		ChainParams:      t.params,
		Services:         wire.SFNodeWitness,
	}
}

// BestHeight returns the highest block height advertised by a connected peer.
func (t *Transport) BestHeight() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	var best int32
	for _, n := range t.nodes {
		best = max(best, n.remote.LastBlock())
	}
	return int64(best)
}

// GetHeaders asks one peer at a time for the headers following locator.
func (t *Transport) GetHeaders(ctx context.Context, locator []string) (headers []model.BlockHeader, err error) {
	started := time.Now()
	defer func() {
		t.metrics.ObserveRequest("get_headers", err, started)
	}()

	msg := wire.NewMsgGetHeaders()
	for _, hash := range locator {
		h, err := chainhash.NewHashFromStr(hash)
		if err != nil {
			return nil, fmt.Errorf("locator hash %s: %w", hash, err)
		}
		if err := msg.AddBlockLocatorHash(h); err != nil {
			return nil, err
		}
	}

	nodes, err := t.candidates(ctx)
	if err != nil {
		return nil, err
	}
	var errs error
	for _, n := range nodes {
		ch := make(chan *wire.MsgHeaders, 1)
		t.mu.Lock()
		busy := n.headers != nil
		if !busy {
			n.headers = ch
		}
		t.mu.Unlock()
		if busy {
			continue
		}

		n.remote.QueueMessage(msg, nil)
		reply, err := await(ctx, t.cfg.RequestTimeout, ch)
		if err == nil && reply == nil {
			err = errNotFound
		}
		if err == nil {
			headers = make([]model.BlockHeader, 0, len(reply.Headers))
			for _, h := range reply.Headers {
				headers = append(headers, bitcoin.ConvertHeader(h))
			}
			return headers, nil
		}

		t.mu.Lock()
		if n.headers == ch {
			n.headers = nil
		}
		t.mu.Unlock()
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		t.logger.Warn("headers request failed, trying next peer", zap.String("peer", n.remote.Addr()), zap.Error(err))
		errs = multierr.Append(errs, fmt.Errorf("peer %s: %w", n.remote.Addr(), err))
	}
	if errs == nil {
		errs = ErrNoPeers
	}
	return nil, fmt.Errorf("get headers: %w", errs)
}

// GetBlock asks one peer at a time for the block with hash.
func (t *Transport) GetBlock(ctx context.Context, hash string) (block model.RawBlock, err error) {
	started := time.Now()
	defer func() {
		t.metrics.ObserveRequest("get_block", err, started)
	}()

	h, err := chainhash.NewHashFromStr(hash)
	if err != nil {
		return model.RawBlock{}, fmt.Errorf("block hash %s: %w", hash, err)
	}
	msg := wire.NewMsgGetData()
	if err := msg.AddInvVect(wire.NewInvVect(wire.InvTypeWitnessBlock, h)); err != nil {
		return model.RawBlock{}, err
	}

	nodes, err := t.candidates(ctx)
	if err != nil {
		return model.RawBlock{}, err
	}
	var errs error
	for _, n := range nodes {
		w := blockWaiter{node: n, ch: make(chan blockResult, 1)}
		t.mu.Lock()
		t.blocks[hash] = append(t.blocks[hash], w)
		t.mu.Unlock()

		n.remote.QueueMessage(msg, nil)
		res, err := await(ctx, t.cfg.RequestTimeout, w.ch)
		if err == nil && !res.found {
			err = errNotFound
		}
		if err == nil {
			return res.block, nil
		}

		t.dropWaiter(hash, w)
		if ctx.Err() != nil {
			return model.RawBlock{}, ctx.Err()
		}
		t.logger.Warn("block request failed, trying next peer",
			zap.String("peer", n.remote.Addr()),
			zap.String("hash", hash),
			zap.Error(err),
		)
		errs = multierr.Append(errs, fmt.Errorf("peer %s: %w", n.remote.Addr(), err))
	}
	return model.RawBlock{}, fmt.Errorf("get block %s: %w", hash, errs)
}

// Events delivers unsolicited blocks, transactions, headers and block announcements.
func (t *Transport) Events() <-chan model.PeerEvent {
	return t.events
}

// Close disconnects every peer and closes the event stream.
func (t *Transport) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	nodes := t.nodes
	t.nodes = nil
	close(t.events)
	t.mu.Unlock()

	for _, n := range nodes {
		n.remote.Disconnect()
	}
	t.metrics.SetPeers(0)
	return nil
}

func (t *Transport) onInv(n *node, msg *wire.MsgInv) {
	getData := wire.NewMsgGetData()
	var blocks []string
	for _, iv := range msg.InvList {
		switch iv.Type {
		case wire.InvTypeBlock, wire.InvTypeWitnessBlock:
			blocks = append(blocks, iv.Hash.String())
		case wire.InvTypeTx, wire.InvTypeWitnessTx:
			if err := getData.AddInvVect(wire.NewInvVect(wire.InvTypeWitnessTx, &iv.Hash)); err != nil {
				t.logger.Debug("getdata full", zap.Error(err))
			}
		}
	}
	if len(getData.InvList) > 0 {
		n.remote.QueueMessage(getData, nil)
	}
	if len(blocks) > 0 {
		t.emit(model.PeerEvent{Kind: model.EventInventory, Peer: n.remote.Addr(), Inventory: blocks})
	}
}

func (t *Transport) onHeaders(n *node, msg *wire.MsgHeaders) {
	t.mu.Lock()
	ch := n.headers
	n.headers = nil
	t.mu.Unlock()

	if ch != nil {
		ch <- msg
		return
	}
	if len(msg.Headers) == 0 {
		return
	}
	headers := make([]model.BlockHeader, 0, len(msg.Headers))
	for _, h := range msg.Headers {
		headers = append(headers, bitcoin.ConvertHeader(h))
	}
	t.emit(model.PeerEvent{Kind: model.EventHeaders, Peer: n.remote.Addr(), Headers: headers})
}

func (t *Transport) onBlock(n *node, msg *wire.MsgBlock) {
	block := bitcoin.ConvertBlock(msg)

	t.mu.Lock()
	waiters := t.blocks[block.Hash]
	delete(t.blocks, block.Hash)
	t.mu.Unlock()

	if len(waiters) == 0 {
		t.emit(model.PeerEvent{Kind: model.EventBlock, Peer: n.remote.Addr(), Block: &block})
		return
	}
	for _, w := range waiters {
		w.ch <- blockResult{block: block, found: true}
	}
}

func (t *Transport) onTx(n *node, msg *wire.MsgTx) {
	tx := bitcoin.ConvertTransaction(msg)
	t.emit(model.PeerEvent{Kind: model.EventTransaction, Peer: n.remote.Addr(), Transaction: &tx})
}

func (t *Transport) onNotFound(n *node, msg *wire.MsgNotFound) {
	for _, iv := range msg.InvList {
		if iv.Type != wire.InvTypeBlock && iv.Type != wire.InvTypeWitnessBlock {
			continue
		}
		t.failWaiters(iv.Hash.String(), n)
	}
}

// failWaiters resolves the block waiters of hash that are bound to n as not found.
func (t *Transport) failWaiters(hash string, n *node) {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.blocks[hash][:0]
	for _, w := range t.blocks[hash] {
		if w.node == n {
			w.ch <- blockResult{}
			continue
		}
		kept = append(kept, w)
	}
	if len(kept) == 0 {
		delete(t.blocks, hash)
		return
	}
	t.blocks[hash] = kept
}

func (t *Transport) dropWaiter(hash string, w blockWaiter) {
	t.mu.Lock()
	defer t.mu.Unlock()

	waiters := slices.DeleteFunc(t.blocks[hash], func(o blockWaiter) bool { return o.ch == w.ch })
	if len(waiters) == 0 {
		delete(t.blocks, hash)
		return
	}
	t.blocks[hash] = waiters
}

func (t *Transport) emit(event model.PeerEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}
	select {
	case t.events <- event:
		t.metrics.ObserveEvent(event.Kind)
	default:
		t.logger.Debug("event buffer full, dropping event", zap.String("kind", string(event.Kind)), zap.String("peer", event.Peer))
	}
}

// candidates returns the connected peers rotated so consecutive requests start on different peers.
func (t *Transport) candidates(ctx context.Context) ([]*node, error) {
	if t.peerCount() == 0 {
		if err := t.Connect(ctx); err != nil {
			return nil, err
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil, ErrClosed
	}
	if len(t.nodes) == 0 {
		return nil, ErrNoPeers
	}
	start := t.next % len(t.nodes)
	t.next++
	out := make([]*node, 0, len(t.nodes))
	out = append(out, t.nodes[start:]...)
	out = append(out, t.nodes[:start]...)
	return out, nil
}

func (t *Transport) addNode(n *node) {
	t.mu.Lock()
	t.nodes = append(t.nodes, n)
	count := len(t.nodes)
	t.mu.Unlock()
	t.metrics.SetPeers(count)
}

// removeNode forgets a disconnected peer and fails its outstanding requests.
func (t *Transport) removeNode(n *node) {
	t.mu.Lock()
	t.nodes = slices.DeleteFunc(t.nodes, func(o *node) bool { return o == n })
	count := len(t.nodes)
	if n.headers != nil {
		n.headers <- nil
		n.headers = nil
	}
	hashes := make([]string, 0)
	for hash, waiters := range t.blocks {
		for _, w := range waiters {
			if w.node == n {
				hashes = append(hashes, hash)
				break
			}
		}
	}
	t.mu.Unlock()

	for _, hash := range hashes {
		t.failWaiters(hash, n)
	}
	t.metrics.SetPeers(count)
	t.logger.Info("peer disconnected", zap.String("peer", n.remote.Addr()), zap.Int("peers", count))
}

func (t *Transport) peerCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.nodes)
}

func await[T any](ctx context.Context, timeout time.Duration, ch <-chan T) (T, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	var zero T
	select {
	case v := <-ch:
		return v, nil
	case <-timer.C:
		return zero, errRequestTimeout
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
