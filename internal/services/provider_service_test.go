package services

import (
	"testing"

	"vault/internal/testutil"
)

func TestProviderService(t *testing.T) {
	t.Run("create_and_list_sorted", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewProviderService(db)

		_, err := svc.CreateProvider(ProviderInput{Name: "zeta bank"})
		testutil.AssertNoError(t, err)
		_, err = svc.CreateProvider(ProviderInput{Name: "Alpha Broker", Description: "stocks"})
		testutil.AssertNoError(t, err)

		list, err := svc.ListProviders()
		testutil.AssertNoError(t, err)
		if len(list) != 2 || list[0].Name != "Alpha Broker" {
			t.Errorf("expected Alpha Broker first, got %+v", list)
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		_, err := NewProviderService(db).CreateProvider(ProviderInput{Name: "  "})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("update_missing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		_, err := NewProviderService(db).UpdateProvider(42, ProviderInput{Name: "Ghost"})
		testutil.AssertAppError(t, err, "PROVIDER_NOT_FOUND")
	})

	t.Run("update_and_delete", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewProviderService(db)

		p, err := svc.CreateProvider(ProviderInput{Name: "Bank"})
		testutil.AssertNoError(t, err)
		p, err = svc.UpdateProvider(p.ID, ProviderInput{Name: "Big Bank", Description: "retail"})
		testutil.AssertNoError(t, err)
		if p.Name != "Big Bank" || p.Description != "retail" {
			t.Errorf("unexpected provider %+v", p)
		}

		n, err := svc.DeleteProviders([]uint{p.ID})
		testutil.AssertNoError(t, err)
		if n != 1 {
			t.Errorf("expected 1 deleted, got %d", n)
		}
	})
}
