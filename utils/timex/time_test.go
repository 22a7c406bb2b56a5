// Copyright 2021 EMQ Technologies Co., Ltd.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package timex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignTime(t *testing.T) {
	input := time.Date(2024, 1, 1, 12, 35, 56, 789000000, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 1, 12, 35, 0, 0, time.UTC), AlignTime(input, time.Minute, false))
	assert.Equal(t, time.Date(2024, 1, 1, 12, 36, 0, 0, time.UTC), AlignTime(input, time.Minute, true))

	aligned := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, aligned, AlignTime(aligned, time.Hour, true))
}

func TestFloorCeil(t *testing.T) {
	// 2024-05-15 is a Wednesday
	input := time.Date(2024, 5, 15, 13, 45, 30, 250000000, time.UTC)
	tests := []struct {
		unit  TimeUnit
		floor time.Time
		ceil  time.Time
	}{
		{Year, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Quarter, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)},
		{Month, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{Week, time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC), time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)},
		{Day, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC), time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC)},
		{Hour, time.Date(2024, 5, 15, 13, 0, 0, 0, time.UTC), time.Date(2024, 5, 15, 14, 0, 0, 0, time.UTC)},
		{Minute, time.Date(2024, 5, 15, 13, 45, 0, 0, time.UTC), time.Date(2024, 5, 15, 13, 46, 0, 0, time.UTC)},
		{Second, time.Date(2024, 5, 15, 13, 45, 30, 0, time.UTC), time.Date(2024, 5, 15, 13, 45, 31, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.unit.String(), func(t *testing.T) {
			f, err := Floor(input, tt.unit)
			require.NoError(t, err)
			assert.Equal(t, tt.floor, f)
			c, err := Ceil(input, tt.unit)
			require.NoError(t, err)
			assert.Equal(t, tt.ceil, c)
		})
	}

	midnight := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	c, err := Ceil(midnight, Day)
	require.NoError(t, err)
	assert.Equal(t, midnight, c, "aligned input stays put")

	_, err = Floor(input, DayOfWeek)
	assert.Error(t, err)
	assert.False(t, Epoch.CanAlign())
	assert.True(t, Week.CanAlign())
}

func TestExtract(t *testing.T) {
	// 2024-05-19 is a Sunday
	input := time.Date(2024, 5, 19, 8, 7, 6, 5000000, time.UTC)
	tests := []struct {
		unit TimeUnit
		want int64
	}{
		{Year, 2024},
		{Quarter, 2},
		{Month, 5},
		{Week, 20},
		{Day, 19},
		{Hour, 8},
		{Minute, 7},
		{Second, 6},
		{Millisecond, 6005},
		{DayOfWeek, 1},
		{DayOfYear, 140},
		{Epoch, input.Unix()},
	}
	for _, tt := range tests {
		t.Run(tt.unit.String(), func(t *testing.T) {
			got, err := Extract(input, tt.unit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTimeUnit(t *testing.T) {
	u, err := ParseTimeUnit("month")
	require.NoError(t, err)
	assert.Equal(t, Month, u)
	u, err = ParseTimeUnit("DOW")
	require.NoError(t, err)
	assert.Equal(t, DayOfWeek, u)
	_, err = ParseTimeUnit("fortnight")
	assert.Error(t, err)
}

func TestClock(t *testing.T) {
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := FixedClock(fixed)
	assert.Equal(t, fixed, c.Now())
	assert.Equal(t, fixed, c.Now())
	assert.False(t, SystemClock.Now().IsZero())
}

func TestTruncatePrecision(t *testing.T) {
	input := time.Date(2024, 1, 1, 0, 0, 1, 123456789, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 1, 0, time.UTC), TruncatePrecision(input, 0))
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 1, 123000000, time.UTC), TruncatePrecision(input, 3))
	assert.Equal(t, input, TruncatePrecision(input, 9))
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 1, 0, time.UTC), TruncatePrecision(input, -2))
}
