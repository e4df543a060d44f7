package views

import (
	"fmt"
	"time"

	"vault/internal/coa"
	"vault/internal/ui/widgets"
)

// closedSuffix marks accounts already closed in the name column.
const closedSuffix = " (closed)"

type chartList struct {
	s   *Services
	now func() time.Time
}

// NewChartOfAccounts lists groups and accounts as a tree. Each group shows
// its accounts before its subgroups.
func NewChartOfAccounts(s *Services) MultiListStrategy {
	return &chartList{s: s, now: time.Now}
}

func (l *chartList) Title() string { return "Chart of Accounts" }

func (l *chartList) Columns() []widgets.Column {
	return []widgets.Column{
		{Key: "name", Align: widgets.AlignLeft, Width: 30, Stretch: true},
		{Key: "type", Align: widgets.AlignCenter, Width: 4},
		{Key: "id", Type: widgets.Int, Align: widgets.AlignRight, Width: 6},
		{Key: "description", Align: widgets.AlignLeft, Width: 30},
		{Key: "account_number", Align: widgets.AlignLeft, Width: 20},
		{Key: "currency", Align: widgets.AlignCenter, Width: 8},
		{Key: "opened_at", Align: widgets.AlignCenter, Width: 19},
		{Key: "closed_at", Align: widgets.AlignCenter, Width: 19},
		{Key: "account_type", Align: widgets.AlignLeft, Width: 16},
	}
}

func (l *chartList) Rows() ([]widgets.Row, error) {
	forest, err := l.s.AccountGroups.Chart()
	if err != nil {
		return nil, err
	}
	return l.rows(forest.Tree(), l.now()), nil
}

func (l *chartList) rows(nodes []*coa.Node, now time.Time) []widgets.Row {
	rows := make([]widgets.Row, 0, len(nodes))
	for _, n := range nodes {
		values := map[string]string{
			"name": n.Name(),
			"type": string(n.Kind),
			"id":   formatID(n.ID()),
		}
		if n.Kind == coa.KindAccount {
			a := n.Account
			if a.IsClosedAt(now) {
				values["name"] += closedSuffix
			}
			values["description"] = a.Description
			values["account_number"] = a.AccountNumber
			values["currency"] = a.Currency.Code
			values["opened_at"] = formatLocal(a.OpenedAt, l.s.Location)
			values["closed_at"] = formatLocalPtr(a.ClosedAt, l.s.Location)
			values["account_type"] = a.AccountType.Name
		} else {
			values["description"] = n.Group.Description
		}
		rows = append(rows, widgets.Row{Values: values, Children: l.rows(n.Children, now)})
	}
	return rows
}

func (l *chartList) Actions() []Action {
	return []Action{
		{Label: "New Account", Form: l.NewForm},
		{Label: "New Group", Form: l.newGroupForm},
	}
}

func (l *chartList) NewForm() (FormStrategy, error) {
	return newAccountForm(l.s, nil)
}

func (l *chartList) newGroupForm() (FormStrategy, error) {
	return newAccountGroupForm(l.s.AccountGroups, nil)
}

// EditForm opens an account by id. Groups are edited through EditRecord.
func (l *chartList) EditForm(id uint) (FormStrategy, error) {
	a, err := l.s.Accounts.GetAccountByID(id)
	if err != nil {
		return nil, err
	}
	return newAccountForm(l.s, a)
}

func (l *chartList) EditRecord(r widgets.Record) (FormStrategy, error) {
	id, ok := recordID(r)
	if !ok {
		return nil, ErrNoSelection
	}
	if coa.NodeKind(r["type"]) == coa.KindGroup {
		g, err := l.s.AccountGroups.GetAccountGroupByID(id)
		if err != nil {
			return nil, err
		}
		return newAccountGroupForm(l.s.AccountGroups, g)
	}
	return l.EditForm(id)
}

// Delete removes accounts by id.
func (l *chartList) Delete(ids []uint) (int64, error) {
	return l.s.Accounts.DeleteAccounts(ids)
}

// DeleteRecords removes the selected accounts and groups together. A group
// that still holds accounts or subgroups not in the selection is refused and
// nothing is deleted.
func (l *chartList) DeleteRecords(rs []widgets.Record) (string, error) {
	var accounts, groups []uint
	for _, r := range rs {
		id, ok := recordID(r)
		if !ok {
			continue
		}
		if coa.NodeKind(r["type"]) == coa.KindGroup {
			groups = append(groups, id)
		} else {
			accounts = append(accounts, id)
		}
	}
	na, ng, err := l.s.AccountGroups.DeleteChartItems(accounts, groups)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d accounts and %d groups deleted", na, ng), nil
}
