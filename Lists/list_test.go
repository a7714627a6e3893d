package Lists

import (
	"cmp"
	"errors"
	"math/rand"
	"slices"
	"testing"
)

var rg = rand.New(rand.NewSource(0))

func eqInt(a, b int) bool {
	return a == b
}

func TestDList_InsertPop(t *testing.T) {
	var l DList[int]
	if _, err := l.PopFirst(); err == nil {
		t.Fatal("pop on empty list didn't fail")
	}
	for i := 0; i < 5; i++ {
		l.InsertLast(i)
		l.InsertFirst(-i - 1)
	}
	if l.Size() != 10 || l.IsEmpty() {
		t.Fatalf("size is %d", l.Size())
	}
	want := []int{-5, -4, -3, -2, -1, 0, 1, 2, 3, 4}
	if s := slices.Collect(l.All()); !slices.Equal(s, want) {
		t.Fatalf("got %v", s)
	}
	r := slices.Collect(l.Backward())
	slices.Reverse(r)
	if !slices.Equal(r, want) {
		t.Fatalf("backward got %v", r)
	}
	if v, err := l.PopFirst(); err != nil || v != -5 {
		t.Errorf("pop first %d %v", v, err)
	}
	if v, err := l.PopLast(); err != nil || v != 4 {
		t.Errorf("pop last %d %v", v, err)
	}
	for !l.IsEmpty() {
		l.PopLast()
	}
	_, err := l.PopLast()
	var e *EmptyListError
	if !errors.As(err, &e) {
		t.Errorf("wrong error %v", err)
	}
}

func TestDList_InsertSorted(t *testing.T) {
	l := New[int]()
	content := make([]int, 500)
	for i := range content {
		content[i] = rg.Intn(100)
		l.InsertSorted(content[i], cmp.Compare[int])
	}
	slices.Sort(content)
	if s := slices.Collect(l.All()); !slices.Equal(s, content) {
		t.Fatalf("sorted insert gave %v", s)
	}
}

func TestDList_Index(t *testing.T) {
	l := New[int]()
	for i := range 10 {
		l.InsertLast(i)
	}
	for i := range 10 {
		if l.Get(i) != i {
			t.Errorf("get %d gave %d", i, l.Get(i))
		}
		if l.Get(i-10) != i {
			t.Errorf("get %d gave %d", i-10, l.Get(i-10))
		}
	}
	if old := l.Set(-1, 90); old != 9 || l.Get(9) != 90 {
		t.Error("set failed")
	}
	if v := l.RemoveAt(3); v != 3 {
		t.Errorf("removed %d", v)
	}
	if v := l.RemoveAt(-2); v != 8 {
		t.Errorf("removed %d", v)
	}
	want := []int{0, 1, 2, 4, 5, 6, 7, 90}
	if s := slices.Collect(l.All()); !slices.Equal(s, want) {
		t.Fatalf("got %v", s)
	}
	defer func() {
		var e IndexError
		if err, ok := recover().(error); !ok || !errors.As(err, &e) || e.Index != 8 || e.Size != 8 {
			t.Errorf("wrong panic %v", err)
		}
	}()
	l.Get(8)
}

func TestDList_Equal(t *testing.T) {
	a, b := From(slices.Values([]int{1, 2, 3})), New[int]()
	if a.Equal(b, eqInt) {
		t.Error("lists of different sizes equal")
	}
	b.InsertLast(1)
	b.InsertLast(2)
	b.InsertLast(4)
	if a.Equal(b, eqInt) {
		t.Error("different lists equal")
	}
	b.Set(2, 3)
	if !a.Equal(b, eqInt) || !b.Equal(a, eqInt) {
		t.Error("same lists not equal")
	}
	a.Clear()
	if !a.Equal(&DList[int]{}, eqInt) || a.String() != "(size=0) :" {
		t.Error("cleared list not empty")
	}
	if b.String() != "(size=3) : 1 2 3" {
		t.Errorf("string is %q", b.String())
	}
}
