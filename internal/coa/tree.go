package coa

import (
	"sort"

	"vault/internal/models"
)

// NodeKind tells groups and accounts apart in the rendered tree.
type NodeKind string

const (
	KindGroup   NodeKind = "G"
	KindAccount NodeKind = "A"
)

// Node is one line of the chart of accounts.
type Node struct {
	Kind     NodeKind
	Group    *models.AccountGroup
	Account  *models.Account
	Depth    int
	Children []*Node
}

// ID returns the id of the group or account.
func (n *Node) ID() uint {
	if n.Kind == KindAccount {
		return n.Account.ID
	}
	return n.Group.ID
}

// Name returns the group or account name.
func (n *Node) Name() string {
	if n.Kind == KindAccount {
		return n.Account.Name
	}
	return n.Group.Name
}

// Tree renders the forest. Root groups come first, sorted case-insensitively
// by name. Under each group its own accounts are listed before its subgroups,
// each list sorted case-insensitively by name; siblings are sorted, never the
// whole tree. Groups caught in a stored cycle have no root; they are rendered
// as extra roots after the real ones so nothing disappears.
func (f *Forest) Tree() []*Node {
	seen := make(map[int]bool, len(f.groups))

	var roots []int
	for i := range f.groups {
		if f.groups[i].parent == noParent {
			roots = append(roots, i)
		}
	}
	f.sortGroups(roots)

	var out []*Node
	for _, r := range roots {
		out = append(out, f.build(r, 0, seen))
	}

	var orphans []int
	for i := range f.groups {
		if !seen[i] {
			orphans = append(orphans, i)
		}
	}
	f.sortGroups(orphans)
	for _, o := range orphans {
		if !seen[o] {
			out = append(out, f.build(o, 0, seen))
		}
	}
	return out
}

func (f *Forest) build(i, depth int, seen map[int]bool) *Node {
	seen[i] = true
	g := f.groups[i].group
	node := &Node{Kind: KindGroup, Group: &g, Depth: depth}

	accts := append([]int(nil), f.groups[i].accounts...)
	sort.SliceStable(accts, func(a, b int) bool {
		x, y := f.accounts[accts[a]], f.accounts[accts[b]]
		return lessFold(x.Name, y.Name, x.ID, y.ID)
	})
	for _, a := range accts {
		acct := f.accounts[a]
		node.Children = append(node.Children, &Node{Kind: KindAccount, Account: &acct, Depth: depth + 1})
	}

	subs := append([]int(nil), f.childIndexes(i)...)
	f.sortGroups(subs)
	for _, c := range subs {
		if seen[c] {
			continue
		}
		node.Children = append(node.Children, f.build(c, depth+1, seen))
	}
	return node
}

func (f *Forest) sortGroups(idx []int) {
	sort.SliceStable(idx, func(a, b int) bool {
		x, y := f.groups[idx[a]].group, f.groups[idx[b]].group
		return lessFold(x.Name, y.Name, x.ID, y.ID)
	})
}

// Walk visits the rendered tree depth-first in display order.
func Walk(nodes []*Node, visit func(*Node)) {
	for _, n := range nodes {
		visit(n)
		Walk(n.Children, visit)
	}
}
