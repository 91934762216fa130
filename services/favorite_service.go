package services

import (
	"context"

	"github.com/yunusinal/lezzetlimani-sub001/entity"
	"github.com/yunusinal/lezzetlimani-sub001/repository"
)

// FavoriteService keeps the session's favorite restaurant ids. Membership
// test is the only query; ordering is irrelevant.
type FavoriteService struct {
	Repo     *repository.FavoriteRepository
	Notifier Notifier // optional
}

func NewFavoriteService(repo *repository.FavoriteRepository, n Notifier) *FavoriteService {
	return &FavoriteService{Repo: repo, Notifier: n}
}

func (s *FavoriteService) List(ctx context.Context, session string) ([]uint, error) {
	return s.Repo.Load(ctx, session)
}

func (s *FavoriteService) IsFavorite(ctx context.Context, session string, id uint) (bool, error) {
	ids, err := s.Repo.Load(ctx, session)
	if err != nil {
		return false, err
	}
	for _, v := range ids {
		if v == id {
			return true, nil
		}
	}
	return false, nil
}

// Toggle flips membership and persists the new set in one write. Two
// toggles on the same restaurant cancel out. Returns the new membership.
func (s *FavoriteService) Toggle(ctx context.Context, session string, rest *entity.Restaurant) (bool, error) {
	ids, err := s.Repo.Load(ctx, session)
	if err != nil {
		return false, err
	}

	next := make([]uint, 0, len(ids)+1)
	removed := false
	for _, v := range ids {
		if v == rest.ID {
			removed = true
			continue
		}
		next = append(next, v)
	}
	if !removed {
		next = append(next, rest.ID)
	}

	if err := s.Repo.Save(ctx, session, next); err != nil {
		return false, err
	}
	if s.Notifier != nil {
		s.Notifier.Notify(session, NotifyFavorites)
	}
	return !removed, nil
}
