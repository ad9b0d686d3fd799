// Package timeline turns a date range into the columns of a Gantt timeline:
// per-scale calendar metadata, buckets and the grouped header row above them.
package timeline

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/ganttly/internal/domain"
)

// Scale is the granularity of one timeline column. Scales are ordered from
// finest to coarsest.
type Scale int

const (
	Day Scale = iota
	Week
	Month
	Quarter
	Year
)

// None is the grouping of a scale that has no coarser header row.
const None Scale = -1

// ErrUnknownScale is returned by ParseScale.
var ErrUnknownScale = errors.New("unknown time scale")

var scaleNames = [...]string{"day", "week", "month", "quarter", "year"}

// Scales lists every scale from finest to coarsest.
var Scales = []Scale{Day, Week, Month, Quarter, Year}

func (s Scale) String() string {
	if s.Valid() {
		return scaleNames[s]
	}
	if s == None {
		return "none"
	}
	return "Scale(" + strconv.Itoa(int(s)) + ")"
}

// Valid reports whether s is one of the five scales.
func (s Scale) Valid() bool { return s >= Day && s <= Year }

// Finer returns the next finer scale and false when s is already Day.
func (s Scale) Finer() (Scale, bool) {
	if s <= Day {
		return Day, false
	}
	return s - 1, true
}

// Coarser returns the next coarser scale and false when s is already Year.
func (s Scale) Coarser() (Scale, bool) {
	if s >= Year {
		return Year, false
	}
	return s + 1, true
}

// ParseScale resolves a scale name case-insensitively.
func ParseScale(name string) (Scale, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range scaleNames {
		if s == n {
			return Scale(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownScale, name, strings.Join(scaleNames[:], ", "))
}

// meta is the per-scale record of calendar functions. Every scale-dependent
// decision in this package goes through the table below.
type meta struct {
	floor    func(domain.Date) domain.Date
	advance  func(domain.Date) domain.Date
	avgDays  float64
	grouping Scale
	label    func(domain.Date) string
	subLabel func(domain.Date) string
}

var weekdayLetters = [...]string{"S", "M", "T", "W", "T", "F", "S"}

var metas = [...]meta{
	Day: {
		floor:    func(d domain.Date) domain.Date { return d },
		advance:  func(d domain.Date) domain.Date { return d.AddDays(1) },
		avgDays:  1,
		grouping: Month,
		label:    func(d domain.Date) string { return strconv.Itoa(d.Day()) },
		subLabel: func(d domain.Date) string { return weekdayLetters[d.Weekday()] },
	},
	Week: {
		floor:    floorWeek,
		advance:  func(d domain.Date) domain.Date { return d.AddDays(7) },
		avgDays:  7,
		grouping: Month,
		label: func(d domain.Date) string {
			_, w := d.ISOWeek()
			return "W" + strconv.Itoa(w)
		},
		subLabel: func(d domain.Date) string {
			return fmt.Sprintf("%d-%d", d.Day(), d.AddDays(6).Day())
		},
	},
	Month: {
		floor:    func(d domain.Date) domain.Date { return domain.NewDate(d.Year(), d.Month(), 1) },
		advance:  func(d domain.Date) domain.Date { return domain.NewDate(d.Year(), d.Month()+1, 1) },
		avgDays:  30,
		grouping: Year,
		label:    func(d domain.Date) string { return d.Month().String()[:3] },
		subLabel: func(d domain.Date) string { return fmt.Sprintf("%02d", d.Year()%100) },
	},
	Quarter: {
		floor: func(d domain.Date) domain.Date {
			return domain.NewDate(d.Year(), quarterStart(d.Month()), 1)
		},
		advance: func(d domain.Date) domain.Date {
			return domain.NewDate(d.Year(), quarterStart(d.Month())+3, 1)
		},
		avgDays:  91,
		grouping: Year,
		label:    func(d domain.Date) string { return "Q" + strconv.Itoa(int(d.Month()-1)/3+1) },
		subLabel: func(domain.Date) string { return "" },
	},
	Year: {
		floor:    func(d domain.Date) domain.Date { return domain.NewDate(d.Year(), time.January, 1) },
		advance:  func(d domain.Date) domain.Date { return domain.NewDate(d.Year()+1, time.January, 1) },
		avgDays:  365,
		grouping: None,
		label:    func(d domain.Date) string { return strconv.Itoa(d.Year()) },
		subLabel: func(domain.Date) string { return "" },
	},
}

func (s Scale) meta() meta {
	if !s.Valid() {
		panic("timeline: invalid scale " + s.String())
	}
	return metas[s]
}

// Floor rounds d down to the start of its bucket at scale s.
func (s Scale) Floor(d domain.Date) domain.Date { return s.meta().floor(d) }

// Advance returns the start of the bucket after the one starting at d.
func (s Scale) Advance(d domain.Date) domain.Date { return s.meta().advance(d) }

// AverageDays is the nominal bucket length used to derive pixels per day from
// a zoom factor. It is never used for date arithmetic.
func (s Scale) AverageDays() float64 { return s.meta().avgDays }

// Grouping returns the scale of the header row above s, or None.
func (s Scale) Grouping() Scale { return s.meta().grouping }

// floorWeek returns the Monday of d's ISO week.
func floorWeek(d domain.Date) domain.Date {
	back := (int(d.Weekday()) + 6) % 7
	return d.AddDays(-back)
}

func quarterStart(m time.Month) time.Month {
	return (m-1)/3*3 + 1
}
