/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package timex

import (
	"fmt"
	"strings"
	"time"
)

// TimeUnit is a calendar or clock field, as used by EXTRACT, CEIL and FLOOR.
type TimeUnit int

const (
	Year TimeUnit = iota
	Quarter
	Month
	Week
	Day
	Hour
	Minute
	Second
	Millisecond
	// DayOfWeek numbers Sunday as 1 and Saturday as 7.
	DayOfWeek
	DayOfYear
	// Epoch is seconds since 1970-01-01 00:00:00 UTC.
	Epoch
)

var unitNames = map[string]TimeUnit{
	"YEAR":        Year,
	"QUARTER":     Quarter,
	"MONTH":       Month,
	"WEEK":        Week,
	"DAY":         Day,
	"HOUR":        Hour,
	"MINUTE":      Minute,
	"SECOND":      Second,
	"MILLISECOND": Millisecond,
	"DOW":         DayOfWeek,
	"DOY":         DayOfYear,
	"EPOCH":       Epoch,
}

// ParseTimeUnit resolves a unit name case-insensitively.
func ParseTimeUnit(name string) (TimeUnit, error) {
	if u, ok := unitNames[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return u, nil
	}
	return 0, fmt.Errorf("unknown time unit %q", name)
}

func (u TimeUnit) String() string {
	for name, unit := range unitNames {
		if unit == u {
			return name
		}
	}
	return fmt.Sprintf("TimeUnit(%d)", int(u))
}

// CanAlign reports whether Floor and Ceil accept u.
func (u TimeUnit) CanAlign() bool {
	return u <= Millisecond
}

// Floor rounds t down to the start of the unit that contains it. Weeks start on Monday.
func Floor(t time.Time, u TimeUnit) (time.Time, error) {
	y, m, d := t.Date()
	loc := t.Location()
	switch u {
	case Year:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc), nil
	case Quarter:
		return time.Date(y, m-(m-1)%3, 1, 0, 0, 0, 0, loc), nil
	case Month:
		return time.Date(y, m, 1, 0, 0, 0, 0, loc), nil
	case Week:
		offset := (int(t.Weekday()) + 6) % 7
		return time.Date(y, m, d-offset, 0, 0, 0, 0, loc), nil
	case Day:
		return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
	case Hour:
		return AlignTime(t, time.Hour, false), nil
	case Minute:
		return AlignTime(t, time.Minute, false), nil
	case Second:
		return AlignTime(t, time.Second, false), nil
	case Millisecond:
		return AlignTime(t, time.Millisecond, false), nil
	}
	return time.Time{}, fmt.Errorf("cannot align time to %s", u)
}

// Ceil rounds t up to the start of the next unit unless t is already aligned.
func Ceil(t time.Time, u TimeUnit) (time.Time, error) {
	f, err := Floor(t, u)
	if err != nil {
		return time.Time{}, err
	}
	if f.Equal(t) {
		return f, nil
	}
	switch u {
	case Year:
		return f.AddDate(1, 0, 0), nil
	case Quarter:
		return f.AddDate(0, 3, 0), nil
	case Month:
		return f.AddDate(0, 1, 0), nil
	case Week:
		return f.AddDate(0, 0, 7), nil
	case Day:
		return f.AddDate(0, 0, 1), nil
	case Hour:
		return f.Add(time.Hour), nil
	case Minute:
		return f.Add(time.Minute), nil
	case Second:
		return f.Add(time.Second), nil
	}
	return f.Add(time.Millisecond), nil
}

// Extract returns the numeric value of field u of t.
func Extract(t time.Time, u TimeUnit) (int64, error) {
	switch u {
	case Year:
		return int64(t.Year()), nil
	case Quarter:
		return int64((t.Month()-1)/3 + 1), nil
	case Month:
		return int64(t.Month()), nil
	case Week:
		_, w := t.ISOWeek()
		return int64(w), nil
	case Day:
		return int64(t.Day()), nil
	case Hour:
		return int64(t.Hour()), nil
	case Minute:
		return int64(t.Minute()), nil
	case Second:
		return int64(t.Second()), nil
	case Millisecond:
		return int64(t.Second())*1000 + int64(t.Nanosecond()/int(time.Millisecond)), nil
	case DayOfWeek:
		return int64(t.Weekday()) + 1, nil
	case DayOfYear:
		return int64(t.YearDay()), nil
	case Epoch:
		return t.Unix(), nil
	}
	return 0, fmt.Errorf("cannot extract %s", u)
}
