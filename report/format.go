package report

import "fmt"

//
// Format is an enum that represents how records are rendered.
//
type Format int

const (
	Table Format = iota
	CSV
)

func (o Format) String() string {
	return [...]string{"table", "csv"}[o]
}

//
// ParseFormat maps a format name (as used in configuration) onto a Format.
//
func ParseFormat(name string) (Format, error) {
	switch name {
	case "table", "":
		return Table, nil
	case "csv":
		return CSV, nil
	default:
		return Table, fmt.Errorf("unknown output format %q", name)
	}
}
