package ir

import (
	"errors"
	"testing"
)

func TestContainerBasics(t *testing.T) {
	root := NewRoot()
	if !root.IsContainer() || root.Owner() != nil || root.Name() != "" {
		t.Fatal("bad root")
	}
	a, err := root.NewContainer("a")
	if err != nil {
		t.Fatal(err)
	}
	leaf, err := root.NewLeaf("v")
	if err != nil {
		t.Fatal(err)
	}
	if ln, err := root.Len(); err != nil || ln != 2 {
		t.Fatalf("len = %d, %v", ln, err)
	}
	if c, err := root.Child(0); err != nil || c != a {
		t.Fatalf("child 0 = %v, %v", c, err)
	}
	if got, err := root.Named("a"); err != nil || got != a {
		t.Fatalf("named a = %v, %v", got, err)
	}
	if got, err := root.Named("zz"); err != nil || got != nil {
		t.Fatalf("missing name = %v, %v", got, err)
	}
	if leaf.Owner() != root || !root.Owns(leaf) {
		t.Fatal("bad ownership")
	}
	if a.Root() != root || leaf.Root() != root {
		t.Fatal("bad root lookup")
	}
	if a.Name() != "a" || a.Text() != "a" {
		t.Fatalf("a name %q text %q", a.Name(), a.Text())
	}
	if leaf.Name() != "" || leaf.Text() != "v" {
		t.Fatalf("leaf name %q text %q", leaf.Name(), leaf.Text())
	}
}

func TestAnonymousContainer(t *testing.T) {
	root := NewRoot()
	anon, err := root.NewContainer("")
	if err != nil {
		t.Fatal(err)
	}
	if anon.Name() != "" || !anon.IsContainer() {
		t.Fatal("bad anonymous container")
	}
	if got, _ := root.Named(""); got != nil {
		t.Fatal("anonymous container entered name table")
	}
}

func TestLeafUsageErrors(t *testing.T) {
	root := NewRoot()
	leaf, _ := root.NewLeaf("v")
	if _, err := leaf.Len(); !errors.Is(err, ErrUsage) {
		t.Errorf("Len: %v", err)
	}
	if _, err := leaf.Child(0); !errors.Is(err, ErrUsage) {
		t.Errorf("Child: %v", err)
	}
	if _, err := leaf.Named("x"); !errors.Is(err, ErrUsage) {
		t.Errorf("Named: %v", err)
	}
	if _, err := leaf.NewLeaf("w"); !errors.Is(err, ErrUsage) {
		t.Errorf("NewLeaf: %v", err)
	}
	if _, err := leaf.NewContainer("c"); !errors.Is(err, ErrUsage) {
		t.Errorf("NewContainer: %v", err)
	}
	if leaf.Children() != nil {
		t.Errorf("leaf has children slice")
	}
}

func TestKeyErrors(t *testing.T) {
	root := NewRoot()
	if _, err := root.NewContainer("a"); err != nil {
		t.Fatal(err)
	}
	if _, err := root.NewContainer("a"); !errors.Is(err, ErrKey) {
		t.Errorf("duplicate container: %v", err)
	}
	other := NewRoot()
	b, _ := other.NewContainer("b")
	if err := root.Alias("a", b); !errors.Is(err, ErrKey) {
		t.Errorf("alias over existing name: %v", err)
	}
	if err := root.Alias("", b); !errors.Is(err, ErrKey) {
		t.Errorf("empty alias name: %v", err)
	}
	if err := root.Alias("bb", b); err != nil {
		t.Errorf("alias: %v", err)
	}
	leaf, _ := root.NewLeaf("v")
	if err := root.Alias("l", leaf); !errors.Is(err, ErrUsage) {
		t.Errorf("alias to leaf: %v", err)
	}
}

func TestAliasSlots(t *testing.T) {
	root := NewRoot()
	a, _ := root.NewContainer("a")
	b, _ := root.NewContainer("b")
	if err := b.Alias("a", a); err != nil {
		t.Fatal(err)
	}
	ref, err := b.Child(0)
	if err != nil || ref != a {
		t.Fatalf("slot = %v, %v", ref, err)
	}
	if b.Owns(ref) {
		t.Error("alias slot owned")
	}
	if ref.Owner() != root {
		t.Error("alias changed owner")
	}
	if got, _ := b.Named("a"); got != a {
		t.Error("alias missing from name table")
	}
}

func TestFloat64(t *testing.T) {
	root := NewRoot()
	n, _ := root.NewLeaf("3.25")
	f, err := n.Float64()
	if err != nil || f != 3.25 {
		t.Fatalf("got %v, %v", f, err)
	}
	// cached
	if f2, err := n.Float64(); err != nil || f2 != f {
		t.Fatalf("cached: %v, %v", f2, err)
	}
	bad, _ := root.NewLeaf("zebra")
	if _, err := bad.Float64(); !errors.Is(err, ErrValue) {
		t.Errorf("non-numeric: %v", err)
	}
	if _, err := root.Float64(); !errors.Is(err, ErrUsage) {
		t.Errorf("container: %v", err)
	}
}

func TestVisitSkipsAliases(t *testing.T) {
	root := NewRoot()
	a, _ := root.NewContainer("a")
	a.NewLeaf("1")
	b, _ := root.NewContainer("b")
	b.Alias("a", a)

	got := []string{}
	err := root.Visit(func(n *Node, isPost bool) (bool, error) {
		if !isPost {
			got = append(got, n.Text())
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"", "a", "1", "b"}
	if len(got) != len(want) {
		t.Fatalf("visited %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("visited %v, want %v", got, want)
		}
	}
}
