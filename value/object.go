package value

// Member is a key/value pair used to build objects.
type Member struct {
	Key   string
	Value Value
}

// Object is a string-keyed mapping that enumerates its members in insertion
// order. Re-assigning an existing key keeps its original position.
//
// The zero value is not usable; create objects with NewObject or ObjectOf.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject creates an empty object.
func NewObject() *Object {
	return &Object{
		values: make(map[string]Value),
	}
}

// ObjectOf creates an object from members, in order.
func ObjectOf(members ...Member) *Object {
	o := NewObject()

	for _, m := range members {
		o.Set(m.Key, m.Value)
	}

	return o
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}

	return len(o.keys)
}

// Keys returns the member keys in enumeration order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}

	out := make([]string, len(o.keys))
	copy(out, o.keys)

	return out
}

// Has reports whether key is an own member.
func (o *Object) Has(key string) bool {
	if o == nil {
		return false
	}

	_, ok := o.values[key]

	return ok
}

// Get returns the member stored under key. A member may be present with a
// nil (undefined) value; ok distinguishes that from absence.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}

	v, ok := o.values[key]

	return v, ok
}

// Set stores v under key.
func (o *Object) Set(key string, v Value) {
	if o.values == nil {
		o.values = make(map[string]Value)
	}

	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}

	o.values[key] = v
}

// Delete removes key and reports whether it was present.
func (o *Object) Delete(key string) bool {
	if o == nil {
		return false
	}

	if _, ok := o.values[key]; !ok {
		return false
	}

	delete(o.values, key)

	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}

	return true
}

// Range calls fn for each member in order until fn returns false.
func (o *Object) Range(fn func(key string, v Value) bool) {
	if o == nil {
		return
	}

	for _, k := range o.keys {
		if !fn(k, o.values[k]) {
			return
		}
	}
}

// Members returns the members in order.
func (o *Object) Members() []Member {
	if o == nil {
		return nil
	}

	out := make([]Member, 0, len(o.keys))
	for _, k := range o.keys {
		out = append(out, Member{Key: k, Value: o.values[k]})
	}

	return out
}

// Clone returns a shallow copy: member values are shared.
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}

	return ObjectOf(o.Members()...)
}
