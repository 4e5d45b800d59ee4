package task

// Field names used in task field mappings.
const (
	FieldID                  = "id"
	FieldTitle               = "title"
	FieldProjectID           = "project_id"
	FieldColorID             = "color_id"
	FieldColumnID            = "column_id"
	FieldOwnerID             = "owner_id"
	FieldCreatorID           = "creator_id"
	FieldDateDue             = "date_due"
	FieldDescription         = "description"
	FieldCategoryID          = "category_id"
	FieldScore               = "score"
	FieldSwimlaneID          = "swimlane_id"
	FieldPriority            = "priority"
	FieldRecurrenceStatus    = "recurrence_status"
	FieldRecurrenceTrigger   = "recurrence_trigger"
	FieldRecurrenceFactor    = "recurrence_factor"
	FieldRecurrenceTimeframe = "recurrence_timeframe"
	FieldRecurrenceBasedate  = "recurrence_basedate"
	FieldReference           = "reference"
)

// Fields is an insertion-ordered mapping from field name to value. It is
// built per call and discarded afterwards.
type Fields struct {
	keys   []string
	values map[string]any
}

// NewFields returns an empty mapping.
func NewFields() *Fields {
	return &Fields{values: make(map[string]any)}
}

// Set stores v under name. Re-setting a name keeps its original position.
func (f *Fields) Set(name string, v any) *Fields {
	if _, ok := f.values[name]; !ok {
		f.keys = append(f.keys, name)
	}
	f.values[name] = v
	return f
}

// Delete removes name from the mapping.
func (f *Fields) Delete(name string) {
	if _, ok := f.values[name]; !ok {
		return
	}
	delete(f.values, name)
	for i, k := range f.keys {
		if k == name {
			f.keys = append(f.keys[:i], f.keys[i+1:]...)
			break
		}
	}
}

func (f *Fields) Get(name string) (any, bool) {
	v, ok := f.values[name]
	return v, ok
}

func (f *Fields) Has(name string) bool {
	_, ok := f.values[name]
	return ok
}

func (f *Fields) Len() int { return len(f.keys) }

// Keys returns field names in insertion order.
func (f *Fields) Keys() []string {
	out := make([]string, len(f.keys))
	copy(out, f.keys)
	return out
}

// Map returns a copy of the mapping.
func (f *Fields) Map() map[string]any {
	out := make(map[string]any, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// String returns the string stored under name, if any.
func (f *Fields) String(name string) (string, bool) {
	s, ok := f.values[name].(string)
	return s, ok
}

// Int64 returns the integer stored under name, if any. int values are
// widened.
func (f *Fields) Int64(name string) (int64, bool) {
	switch v := f.values[name].(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	}
	return 0, false
}

// Int returns the integer stored under name, if any.
func (f *Fields) Int(name string) (int, bool) {
	switch v := f.values[name].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	}
	return 0, false
}
