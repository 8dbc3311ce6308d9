package finance

import (
	"context"
	"errors"
	"fmt"

	ledgerapp "agencyx/contexts/finance-core/credit-ledger-service/application"
	ledgererrors "agencyx/contexts/finance-core/credit-ledger-service/domain/errors"

	domainerrors "agencyx/contexts/campaign-studio/orchestrator-service/domain/errors"
	"agencyx/contexts/campaign-studio/orchestrator-service/ports"
)

// LedgerAdapter bridges the orchestrator's credit-gate port onto the
// finance-core ledger service, translating between the two contexts' error
// vocabularies.
type LedgerAdapter struct {
	Service ledgerapp.Service
}

var _ ports.CreditLedger = LedgerAdapter{}

func (a LedgerAdapter) Debit(ctx context.Context, userID string, amount int, reason string) error {
	_, err := a.Service.Debit(ctx, userID, amount, reason)
	if err != nil {
		if errors.Is(err, ledgererrors.ErrInsufficientCredits) || errors.Is(err, ledgererrors.ErrAccountNotFound) {
			return fmt.Errorf("%w: %d credits required", domainerrors.ErrInsufficientCredits, amount)
		}
		return err
	}
	return nil
}

func (a LedgerAdapter) Credit(ctx context.Context, userID string, amount int, reason string) error {
	_, err := a.Service.Credit(ctx, userID, amount, reason)
	return err
}
