// Package coa builds the chart of accounts: the account-group tree, the
// aliases derived from it, and the rendering order of groups and accounts.
//
// Groups are kept in an arena indexed by position. Each entry records the
// position of its parent; child lists are derived from those links, so the
// structure never holds owning pointers in both directions.
package coa

import (
	"sort"
	"strings"

	"vault/internal/models"
)

// Separator joins the names of an alias path.
const Separator = ">"

const noParent = -1

type groupNode struct {
	group    models.AccountGroup
	parent   int
	accounts []int
}

// Forest is an immutable snapshot of account groups and accounts.
type Forest struct {
	groups   []groupNode
	byGroup  map[uint]int
	accounts []models.Account
	byAcct   map[uint]int

	children [][]int // derived on first use
}

// NewForest indexes groups and accounts. Relationship fields on the models
// are ignored; only ParentID and AccountGroupID are used.
func NewForest(groups []models.AccountGroup, accounts []models.Account) *Forest {
	f := &Forest{
		groups:   make([]groupNode, len(groups)),
		byGroup:  make(map[uint]int, len(groups)),
		accounts: make([]models.Account, len(accounts)),
		byAcct:   make(map[uint]int, len(accounts)),
	}
	for i, g := range groups {
		g.Parent, g.Children, g.Accounts = nil, nil, nil
		f.groups[i] = groupNode{group: g, parent: noParent}
		f.byGroup[g.ID] = i
	}
	for i := range f.groups {
		if pid := f.groups[i].group.ParentID; pid != nil {
			if p, ok := f.byGroup[*pid]; ok {
				f.groups[i].parent = p
			}
		}
	}
	for i, a := range accounts {
		f.accounts[i] = a
		f.byAcct[a.ID] = i
		if g, ok := f.byGroup[a.AccountGroupID]; ok {
			f.groups[g].accounts = append(f.groups[g].accounts, i)
		}
	}
	return f
}

func (f *Forest) childIndexes(i int) []int {
	if f.children == nil {
		f.children = make([][]int, len(f.groups))
		for j := range f.groups {
			if p := f.groups[j].parent; p != noParent {
				f.children[p] = append(f.children[p], j)
			}
		}
	}
	return f.children[i]
}

// Group returns the group with the given id.
func (f *Forest) Group(id uint) (models.AccountGroup, bool) {
	i, ok := f.byGroup[id]
	if !ok {
		return models.AccountGroup{}, false
	}
	return f.groups[i].group, true
}

// Account returns the account with the given id.
func (f *Forest) Account(id uint) (models.Account, bool) {
	i, ok := f.byAcct[id]
	if !ok {
		return models.Account{}, false
	}
	return f.accounts[i], true
}

// Alias returns the path of group names from the root, joined by Separator.
// A cycle in stored data stops the walk at the first repeated group.
func (f *Forest) Alias(groupID uint) string {
	i, ok := f.byGroup[groupID]
	if !ok {
		return ""
	}
	return f.aliasAt(i)
}

func (f *Forest) aliasAt(i int) string {
	var names []string
	seen := make(map[int]bool)
	for i != noParent && !seen[i] {
		seen[i] = true
		names = append(names, f.groups[i].group.Name)
		i = f.groups[i].parent
	}
	for l, r := 0, len(names)-1; l < r; l, r = l+1, r-1 {
		names[l], names[r] = names[r], names[l]
	}
	return strings.Join(names, Separator)
}

// AccountAlias is the alias of the account's group followed by the account name.
func (f *Forest) AccountAlias(accountID uint) string {
	i, ok := f.byAcct[accountID]
	if !ok {
		return ""
	}
	a := f.accounts[i]
	if g, ok := f.byGroup[a.AccountGroupID]; ok {
		return f.aliasAt(g) + Separator + a.Name
	}
	return a.Name
}

// Descendants returns the ids of every transitive subgroup of groupID, not
// including groupID itself.
func (f *Forest) Descendants(groupID uint) []uint {
	start, ok := f.byGroup[groupID]
	if !ok {
		return nil
	}
	var out []uint
	seen := map[int]bool{start: true}
	var collect func(i int)
	collect = func(i int) {
		for _, c := range f.childIndexes(i) {
			if seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, f.groups[c].group.ID)
			collect(c)
		}
	}
	collect(start)
	return out
}

// Labeled pairs a record id with its alias.
type Labeled struct {
	ID    uint
	Alias string
}

// GroupAliases lists every group except the excluded ids, ordered
// case-insensitively by alias.
func (f *Forest) GroupAliases(exclude ...uint) []Labeled {
	skip := make(map[uint]bool, len(exclude))
	for _, id := range exclude {
		skip[id] = true
	}
	out := make([]Labeled, 0, len(f.groups))
	for i := range f.groups {
		id := f.groups[i].group.ID
		if skip[id] {
			continue
		}
		out = append(out, Labeled{ID: id, Alias: f.aliasAt(i)})
	}
	sortLabeled(out)
	return out
}

// ParentCandidates lists the groups that may become the parent of groupID:
// every group except groupID and its descendants.
func (f *Forest) ParentCandidates(groupID uint) []Labeled {
	return f.GroupAliases(append(f.Descendants(groupID), groupID)...)
}

// AccountAliases lists every account ordered case-insensitively by alias.
func (f *Forest) AccountAliases() []Labeled {
	out := make([]Labeled, 0, len(f.accounts))
	for _, a := range f.accounts {
		out = append(out, Labeled{ID: a.ID, Alias: f.AccountAlias(a.ID)})
	}
	sortLabeled(out)
	return out
}

func sortLabeled(l []Labeled) {
	sort.SliceStable(l, func(i, j int) bool {
		return lessFold(l[i].Alias, l[j].Alias, l[i].ID, l[j].ID)
	})
}

// lessFold orders names case-insensitively, then by id so the order is total.
func lessFold(a, b string, idA, idB uint) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return idA < idB
}
