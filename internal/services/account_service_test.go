package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"budgetapi/internal/models"
	"budgetapi/internal/testutil"
)

func TestListAccounts(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewAccountService(db)

		accounts, err := svc.ListAccounts(context.Background())
		testutil.AssertNoError(t, err)

		if accounts == nil || len(accounts) != 0 {
			t.Errorf("expected an empty non-nil slice, got %v", accounts)
		}
	})

	t.Run("ordered_by_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewAccountService(db)
		first := testutil.CreateTestAccount(t, db)
		second := testutil.CreateTestAccount(t, db)
		third := testutil.CreateTestAccount(t, db)

		accounts, err := svc.ListAccounts(context.Background())
		testutil.AssertNoError(t, err)

		if len(accounts) != 3 {
			t.Fatalf("expected 3 accounts, got %d", len(accounts))
		}
		for i, want := range []uint{first.ID, second.ID, third.ID} {
			if accounts[i].ID != want {
				t.Errorf("position %d: expected id %d, got %d", i, want, accounts[i].ID)
			}
		}
	})
}

func TestCreateAccount(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewAccountService(db)

		account, err := svc.CreateAccount(context.Background(), "Cash", "cash", decimal.Zero, "", "")
		testutil.AssertNoError(t, err)

		if account.ID == 0 {
			t.Fatal("expected non-zero account ID")
		}
		if account.Icon != models.DefaultAccountIcon {
			t.Errorf("expected icon %q, got %q", models.DefaultAccountIcon, account.Icon)
		}
		if account.Color != models.DefaultAccountColor {
			t.Errorf("expected color %q, got %q", models.DefaultAccountColor, account.Color)
		}
		testutil.AssertDecimal(t, testutil.ReloadAccount(t, db, account.ID).Balance, "0")
	})

	t.Run("explicit_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewAccountService(db)

		account, err := svc.CreateAccount(context.Background(), "Visa", "card", decimal.RequireFromString("99.90"), "CreditCard", "from-blue-400 to-blue-600")
		testutil.AssertNoError(t, err)

		stored := testutil.ReloadAccount(t, db, account.ID)
		testutil.AssertDecimal(t, stored.Balance, "99.90")
		if stored.Icon != "CreditCard" || stored.Color != "from-blue-400 to-blue-600" {
			t.Errorf("expected explicit icon/color, got %q/%q", stored.Icon, stored.Color)
		}
	})

	t.Run("returns_stored_row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewAccountService(db)

		account, err := svc.CreateAccount(context.Background(), "Savings", "bank", decimal.RequireFromString("10.13"), "", "")
		testutil.AssertNoError(t, err)

		stored := testutil.ReloadAccount(t, db, account.ID)
		if !account.Balance.Equal(stored.Balance) {
			t.Errorf("expected balance %s as stored, got %s", stored.Balance, account.Balance)
		}
		if !account.CreatedAt.Equal(stored.CreatedAt) {
			t.Errorf("expected created_at %v as stored, got %v", stored.CreatedAt, account.CreatedAt)
		}
		if account.Name != stored.Name || account.Type != stored.Type || account.Icon != stored.Icon || account.Color != stored.Color {
			t.Errorf("expected %+v, got %+v", stored, account)
		}
	})

	t.Run("missing_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewAccountService(db)

		_, err := svc.CreateAccount(context.Background(), "", "cash", decimal.Zero, "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("missing_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewAccountService(db)

		_, err := svc.CreateAccount(context.Background(), "Cash", "", decimal.Zero, "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestAdjustBalance(t *testing.T) {
	t.Run("income_adds", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewAccountService(db)
		account := testutil.CreateTestAccountWithBalance(t, db, decimal.NewFromInt(100))

		err := svc.AdjustBalance(db, account.ID, models.TransactionTypeIncome, decimal.RequireFromString("25.50"))
		testutil.AssertNoError(t, err)

		testutil.AssertDecimal(t, testutil.ReloadAccount(t, db, account.ID).Balance, "125.50")
	})

	t.Run("expense_subtracts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewAccountService(db)
		account := testutil.CreateTestAccountWithBalance(t, db, decimal.NewFromInt(100))

		err := svc.AdjustBalance(db, account.ID, models.TransactionTypeExpense, decimal.NewFromInt(130))
		testutil.AssertNoError(t, err)

		testutil.AssertDecimal(t, testutil.ReloadAccount(t, db, account.ID).Balance, "-30")
	})

	t.Run("unknown_account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewAccountService(db)

		err := svc.AdjustBalance(db, 404, models.TransactionTypeIncome, decimal.NewFromInt(1))
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})

	t.Run("invalid_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewAccountService(db)
		account := testutil.CreateTestAccount(t, db)

		err := svc.AdjustBalance(db, account.ID, models.TransactionType("transfer"), decimal.NewFromInt(1))
		testutil.AssertAppError(t, err, "INVALID_TRANSACTION_TYPE")
	})
}
