package property

// List collects properties while a model is being set up.
type List struct {
	props []Property
}

func (l *List) Add(name Name, value interface{}) {
	l.props = append(l.props, New(name, value))
}

func (l *List) Len() int {
	return len(l.props)
}

// Record freezes the list. Later Adds do not affect the record.
func (l *List) Record(noCommonHeader, noSampleImage bool) Record {
	return Record{
		props:          append([]Property(nil), l.props...),
		noCommonHeader: noCommonHeader,
		noSampleImage:  noSampleImage,
	}
}

// Record is the immutable property set of one model.
type Record struct {
	props          []Property
	noCommonHeader bool
	noSampleImage  bool
}

func NewRecord(props []Property, noCommonHeader, noSampleImage bool) Record {
	return (&List{props: props}).Record(noCommonHeader, noSampleImage)
}

// WithFlags returns r with the group-wide report flags replaced.
func (r Record) WithFlags(noCommonHeader, noSampleImage bool) Record {
	r.noCommonHeader = noCommonHeader
	r.noSampleImage = noSampleImage
	return r
}

func (r Record) Properties() []Property {
	return append([]Property(nil), r.props...)
}

func (r Record) Len() int {
	return len(r.props)
}

// Lookup returns the first property named name. Later duplicates are shadowed.
func (r Record) Lookup(name Name) (Property, bool) {
	for _, p := range r.props {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

func (r Record) NoCommonHeader() bool {
	return r.noCommonHeader
}

func (r Record) NoSampleImage() bool {
	return r.noSampleImage
}

// Columns returns the distinct property names of records in order of first
// appearance.
func Columns(records []Record) []Name {
	var cols []Name
	seen := map[Name]bool{}
	for _, r := range records {
		for _, p := range r.props {
			if !seen[p.Name] {
				seen[p.Name] = true
				cols = append(cols, p.Name)
			}
		}
	}
	return cols
}
