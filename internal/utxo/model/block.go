package model

import "time"

// Block is the persisted metadata of a block.
type Block struct {
	Chain            Chain
	Network          Network
	Hash             string
	Height           int64
	PrevHash         string
	NextHash         string
	MerkleRoot       string
	Version          int32
	Nonce            uint32
	Bits             uint32
	Time             time.Time
	TimeNormalized   time.Time
	TransactionCount int
	Size             int
	Reward           int64
	MainChain        bool
	Processed        bool
}

// Tip is the local best block. Exists is false until the first block has been processed.
type Tip struct {
	Block
	Exists bool
}

// BlockHeader is the subset of a block announced by peers during header sync.
type BlockHeader struct {
	Hash     string
	PrevHash string
	Time     time.Time
}
