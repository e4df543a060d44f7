package services

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"vault/internal/testutil"
)

func newAccountInput(t *testing.T, db *gorm.DB, name string, groupID uint) AccountInput {
	t.Helper()
	currency := testutil.CreateTestCurrency(t, db)
	accountType := testutil.CreateTestAccountType(t, db)
	return AccountInput{
		Name:           name,
		CurrencyID:     currency.ID,
		OpenedAt:       testutil.OpenedAt,
		AccountGroupID: groupID,
		AccountTypeID:  accountType.ID,
	}
}

func TestCreateAccount(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		group := testutil.CreateTestGroup(t, db, "Assets", nil)

		in := newAccountInput(t, db, "Wallet", group.ID)
		in.AccountNumber = " 0001 "
		a, err := svc.CreateAccount(in)
		testutil.AssertNoError(t, err)
		if a.AccountNumber != "0001" {
			t.Errorf("expected trimmed account number, got %q", a.AccountNumber)
		}

		got, err := svc.GetAccountByID(a.ID)
		testutil.AssertNoError(t, err)
		if got.AccountGroup.Name != "Assets" {
			t.Errorf("expected preloaded group, got %+v", got.AccountGroup)
		}
		if got.Currency.ID != in.CurrencyID {
			t.Errorf("expected preloaded currency %d, got %d", in.CurrencyID, got.Currency.ID)
		}
	})

	t.Run("closed_before_opened", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		group := testutil.CreateTestGroup(t, db, "Assets", nil)

		in := newAccountInput(t, db, "Wallet", group.ID)
		closed := in.OpenedAt.Add(-time.Hour)
		in.ClosedAt = &closed
		_, err := NewAccountService(db).CreateAccount(in)
		testutil.AssertAppError(t, err, "CLOSED_BEFORE_OPENED")
	})

	t.Run("closed_equal_opened", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		group := testutil.CreateTestGroup(t, db, "Assets", nil)

		in := newAccountInput(t, db, "Wallet", group.ID)
		closed := in.OpenedAt
		in.ClosedAt = &closed
		_, err := NewAccountService(db).CreateAccount(in)
		testutil.AssertNoError(t, err)
	})

	t.Run("missing_references", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		group := testutil.CreateTestGroup(t, db, "Assets", nil)

		in := newAccountInput(t, db, "Wallet", group.ID)
		in.CurrencyID = 999
		_, err := svc.CreateAccount(in)
		testutil.AssertAppError(t, err, "CURRENCY_NOT_FOUND")

		in = newAccountInput(t, db, "Wallet", 999)
		_, err = svc.CreateAccount(in)
		testutil.AssertAppError(t, err, "ACCOUNT_GROUP_NOT_FOUND")

		in = newAccountInput(t, db, "Wallet", group.ID)
		in.AccountTypeID = 999
		_, err = svc.CreateAccount(in)
		testutil.AssertAppError(t, err, "ACCOUNT_TYPE_NOT_FOUND")
	})

	t.Run("required_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		_, err := NewAccountService(db).CreateAccount(AccountInput{Name: "Wallet"})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestUpdateAccount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAccountService(db)
	assets := testutil.CreateTestGroup(t, db, "Assets", nil)
	banks := testutil.CreateTestGroup(t, db, "Banks", &assets.ID)

	in := newAccountInput(t, db, "Checking", assets.ID)
	a, err := svc.CreateAccount(in)
	testutil.AssertNoError(t, err)

	in.AccountGroupID = banks.ID
	in.Description = "main account"
	updated, err := svc.UpdateAccount(a.ID, in)
	testutil.AssertNoError(t, err)
	if updated.AccountGroup.Name != "Banks" || updated.Description != "main account" {
		t.Errorf("unexpected account %+v", updated)
	}

	_, err = svc.UpdateAccount(999, in)
	testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
}

func TestAccountChoices(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	assets := testutil.CreateTestGroup(t, db, "Assets", nil)
	cash := testutil.CreateTestGroup(t, db, "Cash", &assets.ID)
	testutil.CreateTestAccount(t, db, "Wallet", cash.ID)
	testutil.CreateTestAccount(t, db, "Bank", assets.ID)

	choices, err := NewAccountService(db).AccountChoices()
	testutil.AssertNoError(t, err)
	if len(choices) != 2 {
		t.Fatalf("expected 2 choices, got %d", len(choices))
	}
	if choices[0].Label != "Assets>Bank" || choices[1].Label != "Assets>Cash>Wallet" {
		t.Errorf("unexpected labels %+v", choices)
	}
}

func TestListAccounts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	group := testutil.CreateTestGroup(t, db, "Assets", nil)
	testutil.CreateTestAccount(t, db, "wallet", group.ID)
	bank := testutil.CreateTestAccount(t, db, "Bank", group.ID)

	accounts, err := NewAccountService(db).ListAccounts()
	testutil.AssertNoError(t, err)
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	if accounts[0].Name != "Bank" || accounts[1].Name != "wallet" {
		t.Errorf("expected case-insensitive name order, got %s, %s", accounts[0].Name, accounts[1].Name)
	}
	if accounts[0].Currency.ID != bank.CurrencyID || accounts[0].AccountGroup.Name != "Assets" {
		t.Errorf("expected relationships preloaded, got %+v", accounts[0])
	}
}

func TestDeleteAccountCascadesOverdrafts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	group := testutil.CreateTestGroup(t, db, "Assets", nil)
	account := testutil.CreateTestAccount(t, db, "Bank", group.ID)
	testutil.CreateTestOverdraft(t, db, account.ID, "500", testutil.OpenedAt)

	_, err := NewAccountService(db).DeleteAccounts([]uint{account.ID})
	testutil.AssertNoError(t, err)

	list, err := NewAccountOverdraftService(db).ListOverdrafts()
	testutil.AssertNoError(t, err)
	if len(list) != 0 {
		t.Errorf("expected overdrafts to be removed with the account, got %d", len(list))
	}
}

func TestDeleteAccountInUse(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	group := testutil.CreateTestGroup(t, db, "Assets", nil)
	a := testutil.CreateTestAccount(t, db, "A", group.ID)
	b := testutil.CreateTestAccount(t, db, "B", group.ID)
	testutil.CreateTestTransaction(t, db, a.ID, b.ID, "10", testutil.OpenedAt)

	_, err := NewAccountService(db).DeleteAccounts([]uint{a.ID})
	testutil.AssertAppError(t, err, "IN_USE")
}
