package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ReviewInput struct {
	RestaurantID string `json:"restaurantId" validate:"notblank"`
	Rating       int    `json:"rating" validate:"min=1,max=5"`
	Comment      string `json:"comment" validate:"max=2000"`
}

type ReviewUpdate struct {
	Rating  int    `json:"rating" validate:"min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

// ReviewService writes reviews and keeps the restaurant rating in step with them.
type ReviewService struct {
	reviews repository.ReviewRepository
	rests   repository.RestaurantRepository
	users   repository.UserRepository
	log     *zap.Logger
}

func NewReviewService(store repository.Store, log *zap.Logger) *ReviewService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ReviewService{
		reviews: store.Reviews(),
		rests:   store.Restaurants(),
		users:   store.Users(),
		log:     log,
	}
}

func (s *ReviewService) ListForRestaurant(ctx context.Context, restaurantID string) ([]entity.Review, error) {
	out, err := s.reviews.ListByRestaurant(ctx, restaurantID)
	return out, storeErr("list reviews", err)
}

func (s *ReviewService) ListForUser(ctx context.Context, userID string) ([]entity.Review, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	out, err := s.reviews.ListByUser(ctx, userID)
	return out, storeErr("list reviews", err)
}

func (s *ReviewService) Create(ctx context.Context, callerID string, in ReviewInput) (*entity.Review, error) {
	if callerID == "" {
		return nil, ErrUnauthenticated
	}
	if err := check(in); err != nil {
		return nil, err
	}
	if _, err := s.rests.Get(ctx, in.RestaurantID); err != nil {
		return nil, storeErr("restaurant", err)
	}

	rev := &entity.Review{
		UserID:       callerID,
		RestaurantID: in.RestaurantID,
		Rating:       in.Rating,
		Comment:      strings.TrimSpace(in.Comment),
	}
	// the author's display details are a snapshot, a missing profile is not fatal
	if u, err := s.users.Get(ctx, callerID); err == nil {
		rev.UserName = u.Name
		rev.UserAvatar = u.Avatar
	}

	if err := s.reviews.Create(ctx, rev); err != nil {
		return nil, storeErr("create review", err)
	}
	s.recomputeAfterWrite(ctx, rev.RestaurantID)
	return rev, nil
}

func (s *ReviewService) Update(ctx context.Context, callerID, reviewID string, in ReviewUpdate) (*entity.Review, error) {
	rev, err := s.owned(ctx, callerID, reviewID)
	if err != nil {
		return nil, err
	}
	if err := check(in); err != nil {
		return nil, err
	}

	rev.Rating = in.Rating
	rev.Comment = strings.TrimSpace(in.Comment)
	if err := s.reviews.Update(ctx, rev); err != nil {
		return nil, storeErr("update review", err)
	}
	s.recomputeAfterWrite(ctx, rev.RestaurantID)
	return rev, nil
}

func (s *ReviewService) Delete(ctx context.Context, callerID, reviewID string) error {
	rev, err := s.owned(ctx, callerID, reviewID)
	if err != nil {
		return err
	}
	return s.remove(ctx, rev)
}

// Moderate deletes any review. Admin only.
func (s *ReviewService) Moderate(ctx context.Context, reviewID string) error {
	rev, err := s.reviews.Get(ctx, reviewID)
	if err != nil {
		return storeErr("review", err)
	}
	return s.remove(ctx, rev)
}

func (s *ReviewService) remove(ctx context.Context, rev *entity.Review) error {
	if err := s.reviews.Delete(ctx, rev.ID); err != nil {
		return storeErr("delete review", err)
	}
	s.recomputeAfterWrite(ctx, rev.RestaurantID)
	return nil
}

// owned loads a review the caller is allowed to change.
func (s *ReviewService) owned(ctx context.Context, callerID, reviewID string) (*entity.Review, error) {
	if callerID == "" {
		return nil, ErrUnauthenticated
	}
	rev, err := s.reviews.Get(ctx, reviewID)
	if err != nil {
		return nil, storeErr("review", err)
	}
	if rev.UserID != callerID {
		return nil, ErrForbidden
	}
	return rev, nil
}

// recomputeAfterWrite never fails the review write that triggered it.
func (s *ReviewService) recomputeAfterWrite(ctx context.Context, restaurantID string) {
	if _, _, err := s.RecomputeRating(ctx, restaurantID); err != nil {
		s.log.Error("rating recompute failed", zap.String("restaurant", restaurantID), zap.Error(err))
	}
}

// RecomputeRating derives the rating (mean rounded to one decimal) and the
// review count of a restaurant from its reviews and writes both back.
// A restaurant with no reviews goes back to 0 and 0.
func (s *ReviewService) RecomputeRating(ctx context.Context, restaurantID string) (float64, int, error) {
	list, err := s.reviews.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return 0, 0, storeErr("list reviews", err)
	}
	ratings := make([]int, len(list))
	for i, r := range list {
		ratings[i] = r.Rating
	}
	rating := AverageRating(ratings)
	if err := s.rests.UpdateRating(ctx, restaurantID, rating, len(list)); err != nil {
		return 0, 0, storeErr("update rating", err)
	}
	return rating, len(list), nil
}

// ReconcileRatings recomputes every restaurant and returns how many were updated.
func (s *ReviewService) ReconcileRatings(ctx context.Context) (int, error) {
	rests, err := s.rests.List(ctx, repository.RestaurantFilter{})
	if err != nil {
		return 0, storeErr("list restaurants", err)
	}
	var errs []error
	n := 0
	for _, r := range rests {
		if _, _, err := s.RecomputeRating(ctx, r.ID); err != nil {
			errs = append(errs, err)
			continue
		}
		n++
	}
	return n, errors.Join(errs...)
}

// AverageRating is the mean of ratings rounded half away from zero to one decimal.
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := decimal.Zero
	for _, r := range ratings {
		sum = sum.Add(decimal.NewFromInt(int64(r)))
	}
	avg, _ := sum.Div(decimal.NewFromInt(int64(len(ratings)))).Round(1).Float64()
	return avg
}
