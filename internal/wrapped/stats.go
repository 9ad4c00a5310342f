package wrapped

import (
	"sort"

	"github.com/osse101/PollPeak_Go/internal/domain"
)

// VoteCount returns how many options person voted for across all polls.
// Multi-vote polls count once per option, which is what makes it an
// indecision measure.
func VoteCount(ps *domain.PollSet, person string) int {
	count := 0
	for _, poll := range ps.Polls {
		for _, opt := range poll.Options {
			if opt.HasVoter(person) {
				count++
			}
		}
	}
	return count
}

// ParticipationCount returns how many polls person cast at least one vote in.
func ParticipationCount(ps *domain.PollSet, person string) int {
	count := 0
	for _, poll := range ps.Polls {
		for _, opt := range poll.Options {
			if opt.HasVoter(person) {
				count++
				break
			}
		}
	}
	return count
}

// rosterRanking builds entries in roster order and stable-sorts them by
// score descending. Ties keep roster order.
func rosterRanking(ps *domain.PollSet, score func(person string) float64) []domain.RankedEntry {
	entries := make([]domain.RankedEntry, 0, len(ps.People))
	for _, person := range ps.People {
		entries = append(entries, domain.RankedEntry{Name: person, Score: score(person)})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries
}

// ActivityRanking ranks everyone by poll participation, most active first.
func ActivityRanking(ps *domain.PollSet) []domain.RankedEntry {
	return rosterRanking(ps, func(person string) float64 {
		return float64(ParticipationCount(ps, person))
	})
}

// VoteRanking ranks everyone by total options voted for, most first.
func VoteRanking(ps *domain.PollSet) []domain.RankedEntry {
	return rosterRanking(ps, func(person string) float64 {
		return float64(VoteCount(ps, person))
	})
}

// allAtMax returns every name holding the top score in ranking.
func allAtMax(ranking []domain.RankedEntry) []string {
	if len(ranking) == 0 {
		return nil
	}
	max := ranking[0].Score
	var names []string
	for _, e := range ranking {
		if e.Score == max {
			names = append(names, e.Name)
		}
	}
	return names
}

func topNames(ranking []domain.RankedEntry, n int) []string {
	names := make([]string, 0, n)
	for _, e := range ranking {
		if len(names) == n {
			break
		}
		names = append(names, e.Name)
	}
	return names
}

// MostIndecisive returns everyone tied at the highest vote count.
func MostIndecisive(ps *domain.PollSet) []string {
	return allAtMax(VoteRanking(ps))
}

// TopIndecisive returns the n highest vote counters.
func TopIndecisive(ps *domain.PollSet, n int) []string {
	return topNames(VoteRanking(ps), n)
}

// MostActive returns everyone tied at the highest participation count.
func MostActive(ps *domain.PollSet) []string {
	return allAtMax(ActivityRanking(ps))
}

// TopActive returns the n most active participants.
func TopActive(ps *domain.PollSet, n int) []string {
	return topNames(ActivityRanking(ps), n)
}

// LeastActive returns the n least active participants, quietest first.
func LeastActive(ps *domain.PollSet, n int) []string {
	ranking := ActivityRanking(ps)
	for i, j := 0, len(ranking)-1; i < j; i, j = i+1, j-1 {
		ranking[i], ranking[j] = ranking[j], ranking[i]
	}
	return topNames(ranking, n)
}

// MostDecisive returns the n people with the lowest votes-per-poll ratio.
// People who never voted have no ratio and are left out.
func MostDecisive(ps *domain.PollSet, n int) []string {
	entries := make([]domain.RankedEntry, 0, len(ps.People))
	for _, person := range ps.People {
		polls := ParticipationCount(ps, person)
		if polls == 0 {
			continue
		}
		votes := VoteCount(ps, person)
		entries = append(entries, domain.RankedEntry{
			Name:  person,
			Score: float64(votes) / float64(polls),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score < entries[j].Score
	})
	return topNames(entries, n)
}

// trendScores walks polls in document order keeping a running record for
// the option with the most voters seen so far. Each poll, the voters of
// the option currently holding the record are credited, looked up by name
// in that poll. The record never resets between polls.
func trendScores(ps *domain.PollSet) []domain.RankedEntry {
	mostVotes := 0
	recordOption := ""

	counts := make(map[string]int, len(ps.People))
	for _, poll := range ps.Polls {
		for _, opt := range poll.Options {
			if len(opt.Voters) > mostVotes {
				mostVotes = len(opt.Voters)
				recordOption = opt.Name
			}
		}
		creditOption(ps, poll, recordOption, counts)
	}
	return rosterRanking(ps, func(person string) float64 {
		return float64(counts[person])
	})
}

// rebelScores is the mirror image of trendScores: a running record for the
// least voted option, seeded above any realistic voter count.
func rebelScores(ps *domain.PollSet) []domain.RankedEntry {
	leastVotes := rebelSeed
	recordOption := ""

	counts := make(map[string]int, len(ps.People))
	for _, poll := range ps.Polls {
		for _, opt := range poll.Options {
			if len(opt.Voters) < leastVotes {
				leastVotes = len(opt.Voters)
				recordOption = opt.Name
			}
		}
		creditOption(ps, poll, recordOption, counts)
	}
	return rosterRanking(ps, func(person string) float64 {
		return float64(counts[person])
	})
}

func creditOption(ps *domain.PollSet, poll domain.Poll, optionName string, counts map[string]int) {
	if optionName == "" {
		return
	}
	for _, opt := range poll.Options {
		if opt.Name != optionName {
			continue
		}
		for _, voter := range opt.Voters {
			if ps.HasPerson(voter) {
				counts[voter]++
			}
		}
		return
	}
}

// Trendsetters returns the n people whose picks most often set the record
// for the most popular option.
func Trendsetters(ps *domain.PollSet, n int) []string {
	return topNames(trendScores(ps), n)
}

// Rebels returns the n people who most often backed the least popular
// option, excluding anyone already named a trendsetter.
func Rebels(ps *domain.PollSet, trendsetters []string, n int) []string {
	excluded := make(map[string]bool, len(trendsetters))
	for _, t := range trendsetters {
		excluded[t] = true
	}

	names := make([]string, 0, n)
	for _, e := range rebelScores(ps) {
		if excluded[e.Name] {
			continue
		}
		if len(names) == n {
			break
		}
		names = append(names, e.Name)
	}
	return names
}

// BestFriends ranks everyone by how many options they shared with person.
// Person ranks themselves first, so the best friend is the second entry.
func BestFriends(ps *domain.PollSet, person string) []domain.RankedEntry {
	counts := make(map[string]int, len(ps.People))
	for _, poll := range ps.Polls {
		for _, opt := range poll.Options {
			if !opt.HasVoter(person) {
				continue
			}
			for _, voter := range opt.Voters {
				if ps.HasPerson(voter) {
					counts[voter]++
				}
			}
		}
	}
	return rosterRanking(ps, func(p string) float64 {
		return float64(counts[p])
	})
}

// ArchNemeses ranks everyone by how often they voted for options person
// skipped, counting only polls person actually voted in.
func ArchNemeses(ps *domain.PollSet, person string) []domain.RankedEntry {
	counts := make(map[string]int, len(ps.People))
	for _, poll := range ps.Polls {
		voted := false
		current := make(map[string]int)
		for _, opt := range poll.Options {
			if opt.HasVoter(person) {
				voted = true
				continue
			}
			for _, voter := range opt.Voters {
				if ps.HasPerson(voter) {
					current[voter]++
				}
			}
		}
		if voted {
			for p, c := range current {
				counts[p] += c
			}
		}
	}
	return rosterRanking(ps, func(p string) float64 {
		return float64(counts[p])
	})
}

// AllRounder returns the runner-up by unique co-voters agreed with. The
// top spot always goes to whoever shows up everywhere, so the runner-up
// is the interesting one.
func AllRounder(ps *domain.PollSet) string {
	ranking := rosterRanking(ps, func(person string) float64 {
		agreed := make(map[string]bool)
		for _, poll := range ps.Polls {
			for _, opt := range poll.Options {
				if !opt.HasVoter(person) {
					continue
				}
				for _, voter := range opt.Voters {
					if voter != person {
						agreed[voter] = true
					}
				}
			}
		}
		return float64(len(agreed))
	})
	if len(ranking) < 2 {
		return ""
	}
	return ranking[1].Name
}

// TotalPolls returns the number of polls in the set.
func TotalPolls(ps *domain.PollSet) int {
	return len(ps.Polls)
}

// TotalVotes returns the number of votes cast by known members.
func TotalVotes(ps *domain.PollSet) int {
	total := 0
	for _, person := range ps.People {
		total += VoteCount(ps, person)
	}
	return total
}

// Percentile places person in the activity ranking as a rounded
// top-N percentage. Rank 1 of 10 people is the top 10%.
func Percentile(ps *domain.PollSet, person string) int {
	ranking := ActivityRanking(ps)
	for i, e := range ranking {
		if e.Name == person {
			rank := i + 1
			return int(float64(rank)/float64(len(ranking))*100 + 0.5)
		}
	}
	return 0
}
