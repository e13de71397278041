package attendance

// Day is one employee's attendance for one calendar date. CheckOut is only
// ever set after CheckIn.
type Day struct {
	CheckIn  *string `json:"checkIn"`
	CheckOut *string `json:"checkOut"`
}

// Ledger maps employee key -> date (YYYY-MM-DD) -> Day.
type Ledger map[string]map[string]Day

// Clone returns a deep copy of the ledger.
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for emp, days := range l {
		copied := make(map[string]Day, len(days))
		for date, day := range days {
			copied[date] = day.Clone()
		}
		out[emp] = copied
	}
	return out
}

// Clone returns a copy that shares no pointers with d.
func (d Day) Clone() Day {
	return Day{CheckIn: copyString(d.CheckIn), CheckOut: copyString(d.CheckOut)}
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
