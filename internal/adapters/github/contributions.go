package github

import (
	"hash/fnv"
	"math/rand"
	"time"
)

// ContributionDay is one cell of the contribution graph
type ContributionDay struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
	Level int    `json:"level"` // 0..4
}

// Contributions builds a 365 day synthetic contribution series for a login.
// GitHub only exposes the real graph over GraphQL with auth scopes we don't
// ask for, so the deck renders a plausible series instead. Seeded by login
// so an item keeps the same graph across refetches
func Contributions(login string, today time.Time) []ContributionDay {
	h := fnv.New64a()
	_, _ = h.Write([]byte(login))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	out := make([]ContributionDay, 0, 365)
	for i := 364; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		wd := date.Weekday()
		weekend := wd == time.Saturday || wd == time.Sunday

		// quieter weekends
		baseActivity := 0.7
		if weekend {
			baseActivity = 0.3
		}

		count, level := 0, 0
		if rng.Float64() < baseActivity {
			switch intensity := rng.Float64(); {
			case intensity < 0.6:
				count = rng.Intn(5) + 1 // 1-5
				level = 1
			case intensity < 0.85:
				count = rng.Intn(10) + 6 // 6-15
				level = 2
			case intensity < 0.95:
				count = rng.Intn(15) + 16 // 16-30
				level = 3
			default:
				count = rng.Intn(20) + 31 // 31+
				level = 4
			}
		}

		out = append(out, ContributionDay{
			Date:  date.Format("2006-01-02"),
			Count: count,
			Level: level,
		})
	}
	return out
}
