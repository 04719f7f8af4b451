package types

// Quote is the summary line for one symbol.
type Quote struct {
	Symbol    string
	Name      string
	Price     float64
	Change    float64
	ChangePct float64
	Volume    Value
	MarketCap Value
}

// Up reports whether the move is non-negative. A change that rounded to zero
// takes the sign of ChangePct.
func (q Quote) Up() bool {
	if q.Change != 0 {
		return q.Change > 0
	}
	return q.ChangePct >= 0
}

// Company holds the profile fields shown in the company info grid.
type Company struct {
	Sector   string
	Industry string
	Website  string
	CEO      string
}

// Snapshot is everything the data collaborator delivered for one symbol.
// Sections are keyed by section name; tab layouts pick from them.
type Snapshot struct {
	Symbol   string
	Quote    *Quote
	Company  *Company
	Sections map[string]RawMetricGroup
}

// Section returns the named raw group, empty when absent.
func (s Snapshot) Section(name string) RawMetricGroup {
	if g, ok := s.Sections[name]; ok {
		return g
	}
	return RawMetricGroup{Key: name}
}
