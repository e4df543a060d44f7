package views

import (
	"time"

	"vault/internal/models"
	"vault/internal/services"
)

type accountForm struct {
	s       *Services
	current *models.Account
	fields  []Field
}

func newAccountForm(s *Services, current *models.Account) (*accountForm, error) {
	f := &accountForm{s: s, current: current}

	var a models.Account
	opened := time.Now().UTC()
	if current != nil {
		a = *current
		opened = a.OpenedAt
		f.fields = append(f.fields, idField(a.ID))
	}

	group, err := selectField("account_group", "Account Group", s.AccountGroups.GroupChoices, false, a.AccountGroupID)
	if err != nil {
		return nil, err
	}
	currency, err := selectField("currency", "Currency", s.Currencies.CurrencyChoices, false, a.CurrencyID)
	if err != nil {
		return nil, err
	}
	accountType, err := selectField("account_type", "Account Type", s.AccountTypes.AccountTypeChoices, false, a.AccountTypeID)
	if err != nil {
		return nil, err
	}
	accountType.Hint = selectedHint(accountType.Select, f.normalSide)

	f.fields = append(f.fields,
		group,
		textField("name", "Name", a.Name),
		textField("description", "Description", a.Description),
		textField("account_number", "Account Number", a.AccountNumber),
		currency,
		datetimeField("opened_at", "Opened At", s.Location, &opened),
		datetimeField("closed_at", "Closed At", s.Location, a.ClosedAt),
		accountType,
	)
	return f, nil
}

// normalSide shows the normal side of the selected account type.
func (f *accountForm) normalSide(id uint) (string, error) {
	t, err := f.s.AccountTypes.GetAccountTypeByID(id)
	if err != nil {
		return "", err
	}
	return string(t.NormalSide), nil
}

func (f *accountForm) Title() string {
	if f.current != nil {
		return "Edit Account"
	}
	return "New Account"
}

func (f *accountForm) Fields() []Field { return f.fields }

func (f *accountForm) Accept(v Values) error {
	groupID, err := requiredKey(v, "account_group", "Account Group")
	if err != nil {
		return err
	}
	currencyID, err := requiredKey(v, "currency", "Currency")
	if err != nil {
		return err
	}
	typeID, err := requiredKey(v, "account_type", "Account Type")
	if err != nil {
		return err
	}
	opened, err := requiredTime(v, "opened_at", "Opened At")
	if err != nil {
		return err
	}
	closed, err := optionalTime(v, "closed_at", "Closed At")
	if err != nil {
		return err
	}

	in := services.AccountInput{
		Name:           v.Text("name"),
		Description:    v.Text("description"),
		AccountNumber:  v.Text("account_number"),
		CurrencyID:     currencyID,
		OpenedAt:       opened,
		ClosedAt:       closed,
		AccountGroupID: groupID,
		AccountTypeID:  typeID,
	}
	if f.current == nil {
		_, err = f.s.Accounts.CreateAccount(in)
		return err
	}
	_, err = f.s.Accounts.UpdateAccount(f.current.ID, in)
	return err
}
