package market

import (
	"context"
	"fmt"

	"agroportal/internal/domain/notification"
)

// Notifications страница ленты, новые сверху
func (s *Store) Notifications(_ context.Context, userID string, page, limit int) (notification.ListResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.faultLocked(OpNotificationsGet); err != nil {
		return notification.ListResponse{}, err
	}
	acc, err := s.accountLocked(userID)
	if err != nil {
		return notification.ListResponse{}, err
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	start := (page - 1) * limit
	end := start + limit
	if start > len(acc.feed) {
		start = len(acc.feed)
	}
	if end > len(acc.feed) {
		end = len(acc.feed)
	}

	return notification.ListResponse{
		Items:       append([]notification.Notification{}, acc.feed[start:end]...),
		UnreadCount: notification.UnreadCount(acc.feed),
		Page:        page,
		Total:       len(acc.feed),
	}, nil
}

func (s *Store) MarkNotificationRead(_ context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.faultLocked(OpNotificationRead); err != nil {
		return err
	}
	acc, err := s.accountLocked(userID)
	if err != nil {
		return err
	}
	for i := range acc.feed {
		if acc.feed[i].ID == id {
			acc.feed[i].Read = true
			return nil
		}
	}
	return fmt.Errorf("%w: notification %s", ErrNotFound, id)
}

func (s *Store) MarkAllNotificationsRead(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.faultLocked(OpNotificationsRead); err != nil {
		return err
	}
	acc, err := s.accountLocked(userID)
	if err != nil {
		return err
	}
	for i := range acc.feed {
		acc.feed[i].Read = true
	}
	return nil
}

func (s *Store) DeleteNotification(_ context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.faultLocked(OpNotificationDelete); err != nil {
		return err
	}
	acc, err := s.accountLocked(userID)
	if err != nil {
		return err
	}
	for i := range acc.feed {
		if acc.feed[i].ID == id {
			acc.feed = append(acc.feed[:i], acc.feed[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: notification %s", ErrNotFound, id)
}

// Notify добавляет уведомление пользователю, используется для имитации событий
func (s *Store) Notify(_ context.Context, userID, title, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, err := s.accountLocked(userID)
	if err != nil {
		return err
	}
	s.notifyLocked(acc, "system", title, message, notification.PriorityMedium)
	return nil
}
