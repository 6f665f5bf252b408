package event

import "slices"

// Callback is one entry of a scheduler event's callback list. The scheduler
// calls it with the scheduler event once, when that event is processed.
type Callback func(t Target) error

// Target is a scheduler-owned event whose callback list can be replaced
// before it is processed.
type Target interface {
	Callbacks() CallbackList
	SetCallbacks(list CallbackList)
}

// CallbackList is the ordered, mutable callback sequence of a scheduler
// event. The scheduler invokes the callbacks returned by All, in order.
type CallbackList interface {
	Len() int
	At(i int) (Callback, error)
	Set(i int, cb Callback) error
	Insert(i int, cb Callback) error
	Delete(i int) error
	Append(cbs ...Callback)
	All() []Callback
}

// CallbackSlice is a plain CallbackList.
type CallbackSlice struct {
	list []Callback
}

// NewCallbackSlice creates a list holding cbs.
func NewCallbackSlice(cbs ...Callback) *CallbackSlice {
	s := &CallbackSlice{}
	s.Append(cbs...)
	return s
}

// Len implements CallbackList.
func (s *CallbackSlice) Len() int { return len(s.list) }

// At implements CallbackList.
func (s *CallbackSlice) At(i int) (Callback, error) {
	if err := checkIndex(i, len(s.list)); err != nil {
		return nil, err
	}
	return s.list[i], nil
}

// Set implements CallbackList.
func (s *CallbackSlice) Set(i int, cb Callback) error {
	if cb == nil {
		return ErrNilCallback
	}
	if err := checkIndex(i, len(s.list)); err != nil {
		return err
	}
	s.list[i] = cb
	return nil
}

// Insert implements CallbackList.
func (s *CallbackSlice) Insert(i int, cb Callback) error {
	if cb == nil {
		return ErrNilCallback
	}
	if err := checkInsert(i, len(s.list)); err != nil {
		return err
	}
	s.list = slices.Insert(s.list, i, cb)
	return nil
}

// Delete implements CallbackList.
func (s *CallbackSlice) Delete(i int) error {
	if err := checkIndex(i, len(s.list)); err != nil {
		return err
	}
	s.list = slices.Delete(s.list, i, i+1)
	return nil
}

// Append implements CallbackList. Nil callbacks are skipped.
func (s *CallbackSlice) Append(cbs ...Callback) {
	for _, cb := range cbs {
		if cb != nil {
			s.list = append(s.list, cb)
		}
	}
}

// All implements CallbackList.
func (s *CallbackSlice) All() []Callback {
	return slices.Clone(s.list)
}

// Splice multiplexes hook dispatch onto a scheduler event's callback list.
//
// The original list becomes the raw segment and stays individually
// addressable: every indexed operation of the CallbackList interface goes to
// it. The scheduler iterates before ++ raw ++ after.
type Splice struct {
	before []Callback
	raw    CallbackList
	after  []Callback
}

// SpliceOf returns list itself if it already is a Splice, otherwise a new
// Splice wrapping list. A nil list is replaced by an empty CallbackSlice.
func SpliceOf(list CallbackList) *Splice {
	if s, ok := list.(*Splice); ok {
		return s
	}
	if list == nil {
		list = NewCallbackSlice()
	}
	return &Splice{raw: list}
}

// Raw returns the wrapped ordinary callback list.
func (s *Splice) Raw() CallbackList { return s.raw }

// Before returns a copy of the before segment.
func (s *Splice) Before() []Callback { return slices.Clone(s.before) }

// After returns a copy of the after segment.
func (s *Splice) After() []Callback { return slices.Clone(s.after) }

// AppendBefore appends cb to the before segment.
func (s *Splice) AppendBefore(cb Callback) {
	if cb != nil {
		s.before = append(s.before, cb)
	}
}

// AppendAfter appends cb to the after segment.
func (s *Splice) AppendAfter(cb Callback) {
	if cb != nil {
		s.after = append(s.after, cb)
	}
}

// Len returns the length of the raw segment.
func (s *Splice) Len() int { return s.raw.Len() }

// At returns the raw callback at index i.
func (s *Splice) At(i int) (Callback, error) { return s.raw.At(i) }

// Set replaces the raw callback at index i.
func (s *Splice) Set(i int, cb Callback) error { return s.raw.Set(i, cb) }

// Insert inserts into the raw segment.
func (s *Splice) Insert(i int, cb Callback) error { return s.raw.Insert(i, cb) }

// Delete removes the raw callback at index i.
func (s *Splice) Delete(i int) error { return s.raw.Delete(i) }

// Append appends to the raw segment.
func (s *Splice) Append(cbs ...Callback) { s.raw.Append(cbs...) }

// All returns before ++ raw ++ after.
func (s *Splice) All() []Callback {
	raw := s.raw.All()
	all := make([]Callback, 0, len(s.before)+len(raw)+len(s.after))
	all = append(all, s.before...)
	all = append(all, raw...)
	all = append(all, s.after...)
	return all
}
