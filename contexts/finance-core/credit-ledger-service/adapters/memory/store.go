package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"agencyx/contexts/finance-core/credit-ledger-service/domain/entities"
	domainerrors "agencyx/contexts/finance-core/credit-ledger-service/domain/errors"
)

type Store struct {
	mu sync.Mutex

	accounts     map[string]entities.CreditAccount
	transactions []entities.CreditTransaction
}

// NewStore seeds initial balances keyed by user id. Debits against unseeded
// users fail with insufficient credits, matching the ledger contract.
func NewStore(seed map[string]int) *Store {
	accounts := make(map[string]entities.CreditAccount, len(seed))
	now := time.Now().UTC()
	for userID, balance := range seed {
		accounts[userID] = entities.CreditAccount{
			UserID:    userID,
			Balance:   balance,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}
	return &Store{
		accounts:     accounts,
		transactions: make([]entities.CreditTransaction, 0),
	}
}

func (s *Store) GetAccount(_ context.Context, userID string) (entities.CreditAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, exists := s.accounts[strings.TrimSpace(userID)]
	if !exists {
		return entities.CreditAccount{}, domainerrors.ErrAccountNotFound
	}
	return account, nil
}

func (s *Store) ApplyDebit(_ context.Context, tx entities.CreditTransaction) (entities.CreditAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, exists := s.accounts[tx.UserID]
	if !exists || account.Balance < tx.Amount {
		return entities.CreditAccount{}, domainerrors.ErrInsufficientCredits
	}

	account.Balance -= tx.Amount
	account.UpdatedAt = tx.OccurredAt
	s.accounts[tx.UserID] = account

	tx.BalanceAfter = account.Balance
	s.transactions = append(s.transactions, tx)
	return account, nil
}

func (s *Store) ApplyCredit(_ context.Context, tx entities.CreditTransaction) (entities.CreditAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, exists := s.accounts[tx.UserID]
	if !exists {
		account = entities.CreditAccount{
			UserID:    tx.UserID,
			CreatedAt: tx.OccurredAt,
		}
	}

	account.Balance += tx.Amount
	account.UpdatedAt = tx.OccurredAt
	s.accounts[tx.UserID] = account

	tx.BalanceAfter = account.Balance
	s.transactions = append(s.transactions, tx)
	return account, nil
}

func (s *Store) ListTransactions(_ context.Context, userID string, limit int) ([]entities.CreditTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]entities.CreditTransaction, 0)
	for _, tx := range s.transactions {
		if tx.UserID == strings.TrimSpace(userID) {
			items = append(items, tx)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].OccurredAt.After(items[j].OccurredAt)
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// DebitCount reports how many debit transactions a user has accumulated.
// Test helper for asserting the single-debit pipeline invariant.
func (s *Store) DebitCount(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, tx := range s.transactions {
		if tx.UserID == userID && tx.Type == entities.TransactionTypeDebit {
			count++
		}
	}
	return count
}
