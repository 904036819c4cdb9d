package contract

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// PendingTx is a submitted transaction whose receipt is not known yet.
type PendingTx struct {
	tx      *types.Transaction
	backend bind.DeployBackend
	label   string
}

func (p *PendingTx) Hash() common.Hash {
	return p.tx.Hash()
}

func (p *PendingTx) Transaction() *types.Transaction {
	return p.tx
}

// Wait blocks until the transaction is mined or ctx is done. A reverted
// transaction returns its receipt together with ErrTransactionFailed.
func (p *PendingTx) Wait(ctx context.Context) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, p.backend, p.tx)
	if err != nil {
		return nil, fmt.Errorf("waiting for %s (%s): %w", p.label, p.tx.Hash().Hex(), err)
	}
	if receipt.Status == types.ReceiptStatusFailed {
		return receipt, fmt.Errorf("%s (%s) in block %s: %w", p.label, p.tx.Hash().Hex(), receipt.BlockNumber, ErrTransactionFailed)
	}
	return receipt, nil
}
