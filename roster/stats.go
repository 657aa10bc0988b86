package roster

import "fmt"

// PassThreshold is the marks value at or above which a record counts
// as passing
const PassThreshold = 40

// Summary holds the statistics derived from one pass over a roster
type Summary struct {
	Count     int
	Average   float64
	Min       int
	Max       int
	PassCount int
	FailCount int
	// PassRate is PassCount as a percentage of Count
	PassRate float64
}

// Stats computes summary statistics over the current records.
// Fails with ErrNoData on an empty roster.
func (r *Roster) Stats() (Summary, error) {
	if len(r.records) == 0 {
		return Summary{}, fmt.Errorf("stats: %w", ErrNoData)
	}
	s := Summary{
		Count: len(r.records),
		Min:   r.records[0].Marks,
		Max:   r.records[0].Marks,
	}
	sum := 0
	for _, rec := range r.records {
		sum += rec.Marks
		if rec.Marks < s.Min {
			s.Min = rec.Marks
		}
		if rec.Marks > s.Max {
			s.Max = rec.Marks
		}
		if rec.Marks >= PassThreshold {
			s.PassCount++
		} else {
			s.FailCount++
		}
	}
	s.Average = float64(sum) / float64(s.Count)
	s.PassRate = float64(s.PassCount) * 100 / float64(s.Count)
	return s, nil
}
