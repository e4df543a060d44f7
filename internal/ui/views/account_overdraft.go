package views

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"vault/internal/models"
	"vault/internal/services"
	"vault/internal/ui/widgets"
)

type overdraftList struct {
	s *Services
}

// NewOverdraftList lists overdrafts ordered by account alias, then start.
func NewOverdraftList(s *Services) ListStrategy {
	return &overdraftList{s: s}
}

func (l *overdraftList) Title() string { return "Account Overdrafts" }

func (l *overdraftList) Columns() []widgets.Column {
	return []widgets.Column{
		{Key: "id", Type: widgets.Int, Align: widgets.AlignRight, Width: 6},
		{Key: "account", Align: widgets.AlignLeft, Width: 40, SortAsc: widgets.Asc, Stretch: true},
		{Key: "limit", Type: widgets.Decimal, Align: widgets.AlignRight, Width: 14},
		{Key: "started_at", Align: widgets.AlignCenter, Width: 19},
		{Key: "ended_at", Align: widgets.AlignCenter, Width: 19},
	}
}

func (l *overdraftList) Rows() ([]widgets.Row, error) {
	overdrafts, err := l.s.Overdrafts.ListOverdrafts()
	if err != nil {
		return nil, err
	}
	forest, err := l.s.AccountGroups.Chart()
	if err != nil {
		return nil, err
	}

	aliases := make([]string, len(overdrafts))
	order := make([]int, len(overdrafts))
	for i, o := range overdrafts {
		aliases[i] = forest.AccountAlias(o.AccountID)
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		x, y := order[a], order[b]
		la, lb := strings.ToLower(aliases[x]), strings.ToLower(aliases[y])
		if la != lb {
			return la < lb
		}
		return overdrafts[x].StartedAt.Before(overdrafts[y].StartedAt)
	})

	rows := make([]widgets.Row, 0, len(overdrafts))
	for _, i := range order {
		o := overdrafts[i]
		rows = append(rows, widgets.Row{Values: map[string]string{
			"id":         formatID(o.ID),
			"account":    aliases[i],
			"limit":      formatMoney(o.Limit),
			"started_at": formatLocal(o.StartedAt, l.s.Location),
			"ended_at":   formatLocalPtr(o.EndedAt, l.s.Location),
		}})
	}
	return rows, nil
}

func (l *overdraftList) NewForm() (FormStrategy, error) {
	return newOverdraftForm(l.s, nil)
}

func (l *overdraftList) EditForm(id uint) (FormStrategy, error) {
	o, err := l.s.Overdrafts.GetOverdraftByID(id)
	if err != nil {
		return nil, err
	}
	return newOverdraftForm(l.s, o)
}

func (l *overdraftList) Delete(ids []uint) (int64, error) {
	return l.s.Overdrafts.DeleteOverdrafts(ids)
}

type overdraftForm struct {
	s       *Services
	current *models.AccountOverdraft
	fields  []Field
}

// newOverdraftForm builds the overdraft dialog. The account of an existing
// overdraft cannot change, and only existing overdrafts can be ended.
func newOverdraftForm(s *Services, current *models.AccountOverdraft) (*overdraftForm, error) {
	f := &overdraftForm{s: s, current: current}

	limit := widgets.NewDecimalEntry("")
	limit.Min = &decimal.Zero

	if current == nil {
		account, err := selectField("account", "Account", s.Accounts.AccountChoices, false, 0)
		if err != nil {
			return nil, err
		}
		now := time.Now().UTC()
		f.fields = []Field{
			account,
			{Key: "limit", Label: "Limit ($)", Entry: limit},
			datetimeField("started_at", "Started At", s.Location, &now),
		}
		return f, nil
	}

	forest, err := s.AccountGroups.Chart()
	if err != nil {
		return nil, err
	}
	limit.SetDecimal(current.Limit)
	f.fields = []Field{
		idField(current.ID),
		{Key: "account", Label: "Account", Static: forest.AccountAlias(current.AccountID)},
		{Key: "limit", Label: "Limit ($)", Entry: limit},
		datetimeField("started_at", "Started At", s.Location, &current.StartedAt),
		datetimeField("ended_at", "Ended At", s.Location, current.EndedAt),
	}
	return f, nil
}

func (f *overdraftForm) Title() string {
	if f.current != nil {
		return "Edit Account Overdraft"
	}
	return "New Account Overdraft"
}

func (f *overdraftForm) Fields() []Field { return f.fields }

func (f *overdraftForm) Accept(v Values) error {
	in := services.OverdraftInput{}
	if f.current != nil {
		in.AccountID = f.current.AccountID
	} else {
		id, err := requiredKey(v, "account", "Account")
		if err != nil {
			return err
		}
		in.AccountID = id
	}

	var err error
	if in.Limit, err = requiredDecimal(v, "limit", "Limit"); err != nil {
		return err
	}
	if in.StartedAt, err = requiredTime(v, "started_at", "Started At"); err != nil {
		return err
	}
	if in.EndedAt, err = optionalTime(v, "ended_at", "Ended At"); err != nil {
		return err
	}

	if f.current == nil {
		_, err = f.s.Overdrafts.CreateOverdraft(in)
		return err
	}
	_, err = f.s.Overdrafts.UpdateOverdraft(f.current.ID, in)
	return err
}
