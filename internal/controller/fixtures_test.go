package controller

import (
	"time"

	m "github.com/mouse-blink/almanac/internal/model"
)

func sampleDocument() m.AlmanacDocument {
	return m.AlmanacDocument{
		File:  "almanac.txt",
		Seeds: []uint64{79, 14, 55, 13},
		Stages: []m.StageDocument{
			{
				Name: "seed-to-soil", From: "seed", To: "soil",
				Rules: []m.RuleDocument{
					{Destination: 50, Source: 98, Length: 2},
					{Destination: 52, Source: 50, Length: 48},
				},
				Coverage: 50,
			},
			{
				Name: "soil-to-fertilizer", From: "soil", To: "fertilizer",
				Rules: []m.RuleDocument{
					{Destination: 0, Source: 15, Length: 37},
				},
				Coverage: 37,
			},
		},
	}
}

func sampleHistory() []m.HistoryEntry {
	return []m.HistoryEntry{
		{
			ID:       2,
			File:     "/data/almanac.txt",
			Hash:     "abc",
			Mode:     m.SeedRanges,
			Minimum:  46,
			Duration: 1500 * time.Microsecond,
			SolvedAt: time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:       1,
			File:     "/data/almanac.txt",
			Hash:     "abc",
			Mode:     m.SeedValues,
			Minimum:  35,
			Duration: 200 * time.Microsecond,
			SolvedAt: time.Date(2026, 10, 1, 11, 0, 0, 0, time.UTC),
		},
	}
}
