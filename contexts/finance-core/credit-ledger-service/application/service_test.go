package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"agencyx/contexts/finance-core/credit-ledger-service/adapters/memory"
	"agencyx/contexts/finance-core/credit-ledger-service/domain/entities"
	domainerrors "agencyx/contexts/finance-core/credit-ledger-service/domain/errors"
)

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

type sequenceIDs struct {
	mu   sync.Mutex
	next int
}

func (g *sequenceIDs) NewID(_ context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("tx-%04d", g.next), nil
}

func newTestService(seed map[string]int) (Service, *memory.Store) {
	store := memory.NewStore(seed)
	return Service{
		Repo:  store,
		Clock: fixedClock{at: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)},
		IDGen: &sequenceIDs{},
	}, store
}

func TestDebitReducesBalance(t *testing.T) {
	service, _ := newTestService(map[string]int{"user-1": 5})

	account, err := service.Debit(context.Background(), "user-1", 2, "campaign generation")
	if err != nil {
		t.Fatalf("debit failed: %v", err)
	}
	if account.Balance != 3 {
		t.Fatalf("expected balance 3, got %d", account.Balance)
	}
}

func TestDebitInsufficientBalance(t *testing.T) {
	service, _ := newTestService(map[string]int{"user-1": 1})

	_, err := service.Debit(context.Background(), "user-1", 2, "campaign generation")
	if !errors.Is(err, domainerrors.ErrInsufficientCredits) {
		t.Fatalf("expected insufficient credits, got %v", err)
	}

	account, err := service.Balance(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("balance failed: %v", err)
	}
	if account.Balance != 1 {
		t.Fatalf("expected failed debit to leave balance untouched, got %d", account.Balance)
	}
}

func TestDebitUnknownAccount(t *testing.T) {
	service, _ := newTestService(nil)

	_, err := service.Debit(context.Background(), "ghost", 1, "campaign generation")
	if !errors.Is(err, domainerrors.ErrInsufficientCredits) {
		t.Fatalf("expected insufficient credits for unseeded account, got %v", err)
	}
}

func TestCreditCreatesAccountOnFirstGrant(t *testing.T) {
	service, _ := newTestService(nil)

	account, err := service.Credit(context.Background(), "user-new", 10, "signup grant")
	if err != nil {
		t.Fatalf("credit failed: %v", err)
	}
	if account.Balance != 10 {
		t.Fatalf("expected balance 10, got %d", account.Balance)
	}
}

func TestDebitRejectsInvalidInput(t *testing.T) {
	service, _ := newTestService(map[string]int{"user-1": 5})

	if _, err := service.Debit(context.Background(), "  ", 1, "x"); !errors.Is(err, domainerrors.ErrInvalidUserID) {
		t.Fatalf("expected invalid user id, got %v", err)
	}
	if _, err := service.Debit(context.Background(), "user-1", 0, "x"); !errors.Is(err, domainerrors.ErrInvalidAmount) {
		t.Fatalf("expected invalid amount, got %v", err)
	}
	if _, err := service.Credit(context.Background(), "user-1", -3, "x"); !errors.Is(err, domainerrors.ErrInvalidAmount) {
		t.Fatalf("expected invalid amount, got %v", err)
	}
}

func TestTransactionsRecordBothDirections(t *testing.T) {
	service, _ := newTestService(map[string]int{"user-1": 5})

	if _, err := service.Debit(context.Background(), "user-1", 1, "campaign generation"); err != nil {
		t.Fatalf("debit failed: %v", err)
	}
	if _, err := service.Credit(context.Background(), "user-1", 1, "campaign generation failed"); err != nil {
		t.Fatalf("credit failed: %v", err)
	}

	transactions, err := service.Transactions(context.Background(), "user-1", 0)
	if err != nil {
		t.Fatalf("transactions failed: %v", err)
	}
	if len(transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(transactions))
	}
	types := map[entities.TransactionType]bool{}
	for _, tx := range transactions {
		types[tx.Type] = true
		if tx.TransactionID == "" {
			t.Fatal("expected transaction ids assigned")
		}
	}
	if !types[entities.TransactionTypeDebit] || !types[entities.TransactionTypeCredit] {
		t.Fatal("expected one debit and one credit in the history")
	}
}

func TestBalanceUnknownAccount(t *testing.T) {
	service, _ := newTestService(nil)

	_, err := service.Balance(context.Background(), "ghost")
	if !errors.Is(err, domainerrors.ErrAccountNotFound) {
		t.Fatalf("expected account not found, got %v", err)
	}
}
