package main

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/joshuapare/stlkit/cmd/stlctl/logger"
	"github.com/joshuapare/stlkit/stl/alloc"
	"github.com/joshuapare/stlkit/stl/compare"
	"github.com/joshuapare/stlkit/stl/flist"
	"github.com/joshuapare/stlkit/stl/iterator"
	"github.com/joshuapare/stlkit/stl/list"
	"github.com/joshuapare/stlkit/stl/vector"
)

const (
	containerVector = "vector"
	containerFlist  = "flist"
	containerList   = "list"
)

var allContainers = []string{containerVector, containerFlist, containerList}

func checkContainer(name string) error {
	if slices.Contains(allContainers, name) {
		return nil
	}
	return fmt.Errorf("unsupported container %q (want %s)", name, strings.Join(allContainers, ", "))
}

// ordering holds the flags that decide how values are parsed and compared.
type ordering struct {
	numeric bool
	desc    bool
	collate string
}

// flagSet is the part of a cobra flag set that ordering binds to.
type flagSet interface {
	BoolVar(p *bool, name string, value bool, usage string)
	StringVar(p *string, name string, value string, usage string)
}

func (o *ordering) bind(flags flagSet) {
	flags.BoolVar(&o.numeric, "numeric", false, "Parse values as integers")
	flags.BoolVar(&o.desc, "desc", false, "Order from greatest to least")
	flags.StringVar(&o.collate, "collate", "", "Compare strings with the collation of this BCP 47 tag (e.g. de, sv)")
}

func (o ordering) stringLess() (func(a, b string) bool, error) {
	less := compare.Less[string]
	if o.collate != "" {
		tag, err := language.Parse(o.collate)
		if err != nil {
			return nil, fmt.Errorf("invalid collation tag %q: %w", o.collate, err)
		}
		less = compare.Collator(tag)
	}
	if o.desc {
		less = compare.Reverse(less)
	}
	return less, nil
}

func (o ordering) intLess() (func(a, b int64) bool, error) {
	if o.collate != "" {
		return nil, fmt.Errorf("--collate does not apply to --numeric values")
	}
	if o.desc {
		return compare.Greater[int64], nil
	}
	return compare.Less[int64], nil
}

func parseInts(vals []string) ([]int64, error) {
	out := make([]int64, len(vals))
	for i, s := range vals {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out[i] = n
	}
	return out, nil
}

// sequence is what every container hands back to the commands: its values
// in order, after its links or bounds were verified.
type sequence[T any] interface {
	Values() iter.Seq[T]
	Verify() error
}

func drain[T any](s sequence[T]) ([]T, error) {
	if err := s.Verify(); err != nil {
		return nil, err
	}
	out := make([]T, 0)
	for v := range s.Values() {
		out = append(out, v)
	}
	return out, nil
}

func logNodes(container string, st alloc.SlabStats) {
	logger.Debug("node slab",
		"container", container,
		"chunks", st.Chunks,
		"gets", st.Gets,
		"puts", st.Puts,
		"reused", st.Reused,
	)
}

// sortIn sorts vals stably inside the named container.
func sortIn[T any](container string, vals []T, less func(a, b T) bool) ([]T, error) {
	switch container {
	case containerVector:
		v, err := vector.Of(vals...)
		if err != nil {
			return nil, err
		}
		slices.SortStableFunc(v.Data(), compare.ThreeWay(less))
		return drain[T](v)
	case containerFlist:
		l, err := flist.Of(vals...)
		if err != nil {
			return nil, err
		}
		l.SortFunc(less)
		logNodes(container, l.NodeStats())
		return drain[T](l)
	default:
		l, err := list.Of(vals...)
		if err != nil {
			return nil, err
		}
		l.SortFunc(less)
		logNodes(container, l.NodeStats())
		return drain[T](l)
	}
}

// mergeIn merges the sorted sequences a and b, a's elements first on ties.
func mergeIn[T any](container string, a, b []T, less func(a, b T) bool) ([]T, error) {
	switch container {
	case containerVector:
		return mergeVectors(a, b, less)
	case containerFlist:
		la, err := flist.Of(a...)
		if err != nil {
			return nil, err
		}
		lb, err := flist.Of(b...)
		if err != nil {
			return nil, err
		}
		la.MergeFunc(lb, less)
		return drain[T](la)
	default:
		la, err := list.Of(a...)
		if err != nil {
			return nil, err
		}
		lb, err := list.Of(b...)
		if err != nil {
			return nil, err
		}
		la.MergeFunc(lb, less)
		return drain[T](la)
	}
}

func mergeVectors[T any](a, b []T, less func(a, b T) bool) ([]T, error) {
	out := vector.New[T]()
	if err := out.Reserve(len(a) + len(b)); err != nil {
		return nil, err
	}
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		next := a[i]
		if less(b[j], a[i]) {
			next = b[j]
			j++
		} else {
			i++
		}
		if err := out.PushBack(next); err != nil {
			return nil, err
		}
	}
	rest, err := vector.Of(append(a[i:len(a):len(a)], b[j:]...)...)
	if err != nil {
		return nil, err
	}
	if _, err := vector.InsertRange(out, out.End(), rest.Begin(), rest.End()); err != nil {
		return nil, err
	}
	return drain[T](out)
}

// uniqueIn drops consecutive duplicates and reports how many were dropped.
func uniqueIn[T any](container string, vals []T, eq func(a, b T) bool) ([]T, int, error) {
	var (
		out     []T
		removed int
		err     error
	)
	switch container {
	case containerVector:
		var v *vector.Vector[T]
		if v, err = vector.Of(vals...); err != nil {
			return nil, 0, err
		}
		for it := v.Begin().Next(); it.Less(v.End()); {
			if eq(it.Prev().Value(), it.Value()) {
				it = v.Erase(it)
				removed++
			} else {
				it = it.Next()
			}
		}
		out, err = drain[T](v)
	case containerFlist:
		var l *flist.List[T]
		if l, err = flist.Of(vals...); err != nil {
			return nil, 0, err
		}
		removed = l.UniqueFunc(eq)
		logNodes(container, l.NodeStats())
		out, err = drain[T](l)
	default:
		var l *list.List[T]
		if l, err = list.Of(vals...); err != nil {
			return nil, 0, err
		}
		removed = l.UniqueFunc(eq)
		logNodes(container, l.NodeStats())
		out, err = drain[T](l)
	}
	return out, removed, err
}

// spliceIn moves the first count elements of src into dst before index at
// and returns both sequences afterwards.
func spliceIn[T any](container string, dst, src []T, at, count int) ([]T, []T, error) {
	if at < 0 || at > len(dst) {
		return nil, nil, fmt.Errorf("position %d out of range [0, %d]", at, len(dst))
	}
	if count < 0 || count > len(src) {
		return nil, nil, fmt.Errorf("count %d out of range [0, %d]", count, len(src))
	}

	switch container {
	case containerVector:
		d, err := vector.Of(dst...)
		if err != nil {
			return nil, nil, err
		}
		s, err := vector.Of(src...)
		if err != nil {
			return nil, nil, err
		}
		last := s.Begin().Add(count)
		if _, err := vector.InsertRange(d, d.Begin().Add(at), s.Begin(), last); err != nil {
			return nil, nil, err
		}
		s.EraseRange(s.Begin(), last)
		return drainBoth[T](d, s)
	case containerFlist:
		d, err := flist.Of(dst...)
		if err != nil {
			return nil, nil, err
		}
		s, err := flist.Of(src...)
		if err != nil {
			return nil, nil, err
		}
		pos := iterator.Advance[T](d.BeforeBegin(), at)
		d.SpliceAfterRange(pos, s, s.BeforeBegin(), iterator.Advance[T](s.Begin(), count))
		return drainBoth[T](d, s)
	default:
		d, err := list.Of(dst...)
		if err != nil {
			return nil, nil, err
		}
		s, err := list.Of(src...)
		if err != nil {
			return nil, nil, err
		}
		pos := iterator.Advance[T](d.Begin(), at)
		d.SpliceRange(pos, s, s.Begin(), iterator.Advance[T](s.Begin(), count))
		return drainBoth[T](d, s)
	}
}

func drainBoth[T any](a, b sequence[T]) ([]T, []T, error) {
	x, err := drain(a)
	if err != nil {
		return nil, nil, err
	}
	y, err := drain(b)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}
