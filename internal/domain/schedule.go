package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// StudentSchedule maps a class day to the set of slot ids the student attends.
// Use NewStudentSchedule or Normalize to collapse duplicates.
type StudentSchedule map[WeekDay][]string

// NewStudentSchedule builds a normalized schedule from raw day -> ids pairs
func NewStudentSchedule(raw map[WeekDay][]string) StudentSchedule {
	return StudentSchedule(raw).Normalize()
}

// Normalize returns a copy with duplicate ids collapsed, ids sorted and
// empty days removed
func (s StudentSchedule) Normalize() StudentSchedule {
	out := make(StudentSchedule, len(s))
	for day, ids := range s {
		seen := make(map[string]struct{}, len(ids))
		unique := make([]string, 0, len(ids))
		for _, id := range ids {
			id = strings.TrimSpace(id)
			if id == "" {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			unique = append(unique, id)
		}
		if len(unique) == 0 {
			continue
		}
		sort.Strings(unique)
		out[day] = unique
	}
	return out
}

// Contains reports whether the schedule has slotID under day
func (s StudentSchedule) Contains(day WeekDay, slotID string) bool {
	for _, id := range s[day] {
		if id == slotID {
			return true
		}
	}
	return false
}

// Pairs returns every (day, slot) pair in calendar order, duplicates collapsed
func (s StudentSchedule) Pairs() []SlotRef {
	normalized := s.Normalize()
	days := make([]WeekDay, 0, len(normalized))
	for day := range normalized {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Index() < days[j].Index()
	})

	pairs := make([]SlotRef, 0)
	for _, day := range days {
		for _, id := range normalized[day] {
			pairs = append(pairs, SlotRef{Day: day, SlotID: id})
		}
	}
	return pairs
}

// IsEmpty returns true when no slot is assigned
func (s StudentSchedule) IsEmpty() bool {
	for _, ids := range s {
		if len(ids) > 0 {
			return false
		}
	}
	return true
}

// ParseSchedule decodes the JSON text stored by the persistence layer,
// e.g. {"monday":["mon-08-09"],"saturday":["sat-09-10"]}.
// Empty text and "null" decode to an empty schedule.
func ParseSchedule(raw string) (StudentSchedule, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return StudentSchedule{}, nil
	}

	var decoded map[string][]string
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	return ScheduleFromMap(decoded)
}

// ScheduleFromMap builds a normalized schedule from weekday names to slot ids,
// as received in JSON bodies. Unknown weekday names are rejected.
func ScheduleFromMap(raw map[string][]string) (StudentSchedule, error) {
	schedule := make(StudentSchedule, len(raw))
	for key, ids := range raw {
		day, err := ParseWeekDay(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
		}
		schedule[day] = append(schedule[day], ids...)
	}

	return schedule.Normalize(), nil
}

// Encode serializes the schedule into its stored JSON form
func (s StudentSchedule) Encode() (string, error) {
	data, err := json.Marshal(s.Normalize())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}
	return string(data), nil
}
