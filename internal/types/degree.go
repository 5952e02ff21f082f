package types

// DegreeLevel is an ordinal education level.
type DegreeLevel string

// Degree levels in ascending order.
const (
	DegreeNone      DegreeLevel = "none"
	DegreeAssociate DegreeLevel = "associate"
	DegreeBachelor  DegreeLevel = "bachelor"
	DegreeMaster    DegreeLevel = "master"
	DegreePhD       DegreeLevel = "phd"
)

// degreeRank maps degree levels to numeric ranks for comparison
var degreeRank = map[DegreeLevel]int{
	DegreeNone:      0,
	DegreeAssociate: 1,
	DegreeBachelor:  2,
	DegreeMaster:    3,
	DegreePhD:       4,
}

// Rank returns the ordinal of the level. Unknown levels rank as none.
func (d DegreeLevel) Rank() int {
	return degreeRank[d]
}

// AtLeast reports whether d meets or exceeds other.
func (d DegreeLevel) AtLeast(other DegreeLevel) bool {
	return d.Rank() >= other.Rank()
}

// String returns the level name, "none" for the zero value.
func (d DegreeLevel) String() string {
	if d == "" {
		return string(DegreeNone)
	}
	return string(d)
}
