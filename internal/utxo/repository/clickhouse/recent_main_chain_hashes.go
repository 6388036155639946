package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

const recentMainChainHashesQuery = `
SELECT hash
FROM utxo_blocks FINAL
WHERE chain = ? AND network = ? AND main_chain AND processed
ORDER BY height DESC
LIMIT ?`

// RecentMainChainHashes returns up to limit processed main chain hashes, highest first.
func (r *Repository) RecentMainChainHashes(ctx context.Context, chain model.Chain, network model.Network, limit int) ([]string, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("recent_main_chain_hashes", chain, network, err, start)
	}()

	rows, err := r.conn.Query(ctx, recentMainChainHashesQuery, string(chain), string(network), limit)
	if err != nil {
		err = fmt.Errorf("query recent hashes: %w", err)
		return nil, err
	}
	defer closeRows(rows, &err)

	var hashes []string
	for rows.Next() {
		var hash string
		if err = rows.Scan(&hash); err != nil {
			err = fmt.Errorf("scan hash: %w", err)
			return nil, err
		}
		hashes = append(hashes, hash)
	}
	if err = rows.Err(); err != nil {
		err = fmt.Errorf("iterate recent hashes: %w", err)
		return nil, err
	}
	return hashes, nil
}
