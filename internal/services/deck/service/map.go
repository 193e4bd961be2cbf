package service

import (
	gh "commitkings/internal/adapters/github"
	"commitkings/internal/services/deck/domain"
)

func userToItem(u gh.User, days []gh.ContributionDay) domain.Item {
	return domain.Item{
		Type: domain.TypeProfile,
		ID:   u.ID,
		Profile: &domain.ProfilePayload{
			Login:     u.Login,
			Name:      u.Name,
			AvatarURL: u.AvatarURL,
			Bio:       u.Bio,
			Company:   u.Company,
			Location:  u.Location,
			Followers: u.Followers,
			Following: u.Following,
			Repos:     u.PublicRepos,
			HTMLURL:   u.HTMLURL,
		},
		Contributions: contribDays(days),
	}
}

func repoToItem(r gh.Repo) domain.Item {
	return domain.Item{
		Type: domain.TypeRepo,
		ID:   r.ID,
		Repo: &domain.RepoPayload{
			FullName:    r.FullName,
			Description: r.Description,
			Language:    r.Language,
			Topics:      r.Topics,
			Stars:       r.Stargazers,
			Forks:       r.ForksCount,
			OwnerLogin:  r.Owner.Login,
			OwnerAvatar: r.Owner.AvatarURL,
			HTMLURL:     r.HTMLURL,
		},
	}
}

func contribDays(days []gh.ContributionDay) []domain.ContributionDay {
	if len(days) == 0 {
		return nil
	}
	out := make([]domain.ContributionDay, len(days))
	for i, d := range days {
		out[i] = domain.ContributionDay{Date: d.Date, Count: d.Count, Level: d.Level}
	}
	return out
}
