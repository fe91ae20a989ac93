// Package scene holds the document model for component-based scene
// graphs: nodes, their typed components, and the property values
// inside components.
package scene

import (
	"sort"
	"strconv"
	"strings"
)

// Value is a property value inside a component.  Objects keep their
// fields and values in parallel slices so that declaration order is
// preserved; declaration order defines the field traversal order used
// by [Cursor].
type Value struct {
	Type        Type
	Parent      *Value
	ParentIndex int
	ParentField string
	Fields      []*Value
	Values      []*Value

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (v *Value) Clone() *Value {
	res := &Value{}
	return v.CloneTo(res)
}

func (v *Value) CloneTo(dst *Value) *Value {
	dst.Parent = v.Parent
	dst.ParentIndex = v.ParentIndex
	dst.ParentField = v.ParentField
	dst.Type = v.Type
	dst.Values = make([]*Value, len(v.Values))
	dst.Fields = make([]*Value, len(v.Fields))
	for i, vv := range v.Values {
		dstI := &Value{}
		vv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = vv.ParentField
		dst.Values[i] = dstI
	}
	for i, vf := range v.Fields {
		dstI := &Value{}
		vf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = vf.String
		dst.Fields[i] = dstI
	}
	dst.String = v.String
	dst.Number = v.Number
	if v.Float64 != nil {
		f := *v.Float64
		dst.Float64 = &f
	}
	if v.Int64 != nil {
		i := *v.Int64
		dst.Int64 = &i
	}
	dst.Bool = v.Bool
	return dst
}

// Set overwrites v in place with a deep copy of src, keeping v's
// position in its parent.  It is the write primitive used when a
// "theirs" value is applied onto "ours".
func (v *Value) Set(src *Value) {
	p, pf, pi := v.Parent, v.ParentField, v.ParentIndex
	src.CloneTo(v)
	v.Parent = p
	v.ParentField = pf
	v.ParentIndex = pi
}

func FromString(s string) *Value {
	return &Value{Type: StringType, String: s}
}

func FromInt(i int64) *Value {
	return &Value{Type: NumberType, Int64: &i}
}

func FromFloat(f float64) *Value {
	return &Value{Type: NumberType, Float64: &f}
}

func FromBool(b bool) *Value {
	return &Value{Type: BoolType, Bool: b}
}

func Null() *Value {
	return &Value{Type: NullType}
}

type KeyVal struct {
	Key string
	Val *Value
}

// FromKeyVals builds an object value preserving the given field order.
func FromKeyVals(kvs []KeyVal) *Value {
	res := &Value{Type: ObjectType}
	res.Fields = make([]*Value, len(kvs))
	res.Values = make([]*Value, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		field := &Value{
			Parent:      res,
			ParentIndex: i,
			ParentField: kv.Key,
			Type:        StringType,
			String:      kv.Key,
		}
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Val.ParentField = kv.Key
		res.Fields[i] = field
		res.Values[i] = kv.Val
	}
	return res
}

// FromMap builds an object value from a map, with fields in sorted key
// order.  Use FromKeyVals when the field order matters.
func FromMap(m map[string]*Value) *Value {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	kvs := make([]KeyVal, len(keys))
	for i, k := range keys {
		kvs[i] = KeyVal{Key: k, Val: m[k]}
	}
	return FromKeyVals(kvs)
}

func FromSlice(vals []*Value) *Value {
	res := &Value{Type: ArrayType}
	res.Values = make([]*Value, len(vals))
	for i, v := range vals {
		res.Values[i] = v
		v.Parent = res
		v.ParentIndex = i
	}
	return res
}

func Get(v *Value, field string) *Value {
	n := len(v.Fields)
	for i := range n {
		if v.Fields[i].String == field {
			return v.Values[i]
		}
	}
	return nil
}

func (v *Value) Visit(f func(v *Value, isPost bool) (bool, error)) error {
	dive, err := f(v, false)
	if err != nil {
		return err
	}
	if dive {
		for _, vv := range v.Values {
			if err := vv.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(v, true); err != nil {
		return err
	}
	return nil
}

func (v *Value) Root() *Value {
	res := v
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Path returns a '$'-rooted path string locating v in its document.
func (v *Value) Path() string {
	if v.Parent == nil {
		return "$"
	}
	switch v.Parent.Type {
	case ObjectType:
		f := v.ParentField
		prefix := v.Parent.Path() + "."
		if f != "" && strings.IndexAny(f, "'.*$[]") == -1 {
			return prefix + f
		}
		return prefix + "'" + strings.Replace(f, "'", "\\'", -1) + "'"
	case ArrayType:
		return v.Parent.Path() + "[" + strconv.Itoa(v.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}
