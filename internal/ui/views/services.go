package views

import (
	"time"

	"gorm.io/gorm"

	"vault/internal/services"
	"vault/internal/ui/widgets"
)

// Services bundles the data services behind the views.
type Services struct {
	Currencies    services.CurrencyServicer
	Providers     services.ProviderServicer
	AccountTypes  services.AccountTypeServicer
	AccountGroups services.AccountGroupServicer
	Accounts      services.AccountServicer
	Overdrafts    services.AccountOverdraftServicer
	Transactions  services.TransactionServicer

	// Location is the time zone timestamps are typed and shown in.
	Location *time.Location
}

// NewServices wires every service to db.
func NewServices(db *gorm.DB, loc *time.Location) *Services {
	if loc == nil {
		loc = time.Local
	}
	return &Services{
		Currencies:    services.NewCurrencyService(db),
		Providers:     services.NewProviderService(db),
		AccountTypes:  services.NewAccountTypeService(db),
		AccountGroups: services.NewAccountGroupService(db),
		Accounts:      services.NewAccountService(db),
		Overdrafts:    services.NewAccountOverdraftService(db),
		Transactions:  services.NewTransactionService(db),
		Location:      loc,
	}
}

func choiceSupplier(load func() ([]services.Choice, error)) widgets.OptionSupplier {
	return func() ([]widgets.Option, error) {
		choices, err := load()
		if err != nil {
			return nil, err
		}
		opts := make([]widgets.Option, len(choices))
		for i, c := range choices {
			opts[i] = widgets.Option{Key: c.ID, Label: c.Label}
		}
		return opts, nil
	}
}

// selectField builds a selector reloaded every time it opens. selected, when
// non-zero, is preselected.
func selectField(key, label string, load func() ([]services.Choice, error), empty bool, selected uint) (Field, error) {
	sel, err := widgets.NewSelector(choiceSupplier(load), empty)
	if err != nil {
		return Field{}, err
	}
	sel.RefreshOnOpen = true
	if selected != 0 {
		sel.SetKey(selected)
	}
	return Field{Key: key, Label: label, Select: sel}, nil
}
