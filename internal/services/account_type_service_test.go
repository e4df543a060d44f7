package services

import (
	"testing"

	"vault/internal/models"
	"vault/internal/testutil"
)

func TestCreateAccountType(t *testing.T) {
	t.Run("normal_side_any_case", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		at, err := NewAccountTypeService(db).CreateAccountType(AccountTypeInput{Name: "Asset", NormalSide: "debit"})
		testutil.AssertNoError(t, err)
		if at.NormalSide != models.NormalSideDebit {
			t.Errorf("expected DEBIT, got %s", at.NormalSide)
		}
	})

	t.Run("invalid_normal_side", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		_, err := NewAccountTypeService(db).CreateAccountType(AccountTypeInput{Name: "Asset", NormalSide: "LEFT"})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("duplicate_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountTypeService(db)

		_, err := svc.CreateAccountType(AccountTypeInput{Name: "Liability", NormalSide: models.NormalSideCredit})
		testutil.AssertNoError(t, err)
		_, err = svc.CreateAccountType(AccountTypeInput{Name: "Liability", NormalSide: models.NormalSideDebit})
		testutil.AssertAppError(t, err, "DUPLICATE")
	})
}

func TestSeedDefaultAccountTypes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAccountTypeService(db)

	n, err := svc.SeedDefaultAccountTypes()
	testutil.AssertNoError(t, err)
	if n != len(DefaultAccountTypes) {
		t.Errorf("expected %d seeded types, got %d", len(DefaultAccountTypes), n)
	}

	n, err = svc.SeedDefaultAccountTypes()
	testutil.AssertNoError(t, err)
	if n != 0 {
		t.Errorf("second seed should be a no-op, created %d", n)
	}

	choices, err := svc.AccountTypeChoices()
	testutil.AssertNoError(t, err)
	if len(choices) != 2 || choices[0].Label != "Credit Account" {
		t.Errorf("unexpected choices %+v", choices)
	}
}
