// Package force holds the tunable parameter table of a force-directed layout
// function: a fixed number of named float parameters, each with a current
// value and a [Min, Max] range used by tuning UIs.
//
// Every accessor takes a parameter index. An index outside [0, Count())
// is a caller bug: it returns an error wrapping ErrIndexOutOfRange and
// leaves the table untouched. Indexes are never clamped. Values are not
// clamped to their range either; the range is advisory.
//
// A Parameters value is not safe for concurrent mutation.
package force
