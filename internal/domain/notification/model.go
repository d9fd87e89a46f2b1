package notification

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("notification not found")

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Notification уведомление пользователя
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
	Priority  Priority  `json:"priority"`
}

// Feed страница уведомлений, как ее отдает сервер.
// ServerUnread - то, что сообщил сервер при последней загрузке; для отображения
// используется UnreadCount, посчитанный по Items.
type Feed struct {
	Items        []Notification `json:"items"`
	ServerUnread int            `json:"server_unread"`
	Page         int            `json:"page"`
	Total        int            `json:"total"`
}

// UnreadCount число непрочитанных уведомлений в наборе
func UnreadCount(items []Notification) int {
	n := 0
	for _, it := range items {
		if !it.Read {
			n++
		}
	}
	return n
}

func (f Feed) Clone() Feed {
	dup := f
	dup.Items = make([]Notification, len(f.Items))
	copy(dup.Items, f.Items)
	return dup
}

// MarkRead помечает одно уведомление прочитанным
func (f Feed) MarkRead(id string) (Feed, bool) {
	out := f.Clone()
	for i := range out.Items {
		if out.Items[i].ID == id {
			out.Items[i].Read = true
			return out, true
		}
	}
	return out, false
}

// MarkAllRead помечает прочитанными все уведомления
func (f Feed) MarkAllRead() Feed {
	out := f.Clone()
	for i := range out.Items {
		out.Items[i].Read = true
	}
	return out
}

// Delete удаляет уведомление из набора
func (f Feed) Delete(id string) (Feed, bool) {
	out := f.Clone()
	for i := range out.Items {
		if out.Items[i].ID == id {
			out.Items = append(out.Items[:i], out.Items[i+1:]...)
			if out.Total > 0 {
				out.Total--
			}
			return out, true
		}
	}
	return out, false
}

// MarkUnread снова помечает уведомления непрочитанными
func (f Feed) MarkUnread(ids ...string) Feed {
	out := f.Clone()
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	for i := range out.Items {
		if _, ok := want[out.Items[i].ID]; ok {
			out.Items[i].Read = false
		}
	}
	return out
}

// UnreadIDs идентификаторы непрочитанных уведомлений
func (f Feed) UnreadIDs() []string {
	var ids []string
	for _, it := range f.Items {
		if !it.Read {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// Find ищет уведомление и его позицию
func (f Feed) Find(id string) (Notification, int, bool) {
	for i, it := range f.Items {
		if it.ID == id {
			return it, i, true
		}
	}
	return Notification{}, -1, false
}

// Insert возвращает уведомление на позицию idx, если его там еще нет
func (f Feed) Insert(idx int, n Notification) Feed {
	if _, _, ok := f.Find(n.ID); ok {
		return f.Clone()
	}
	out := f.Clone()
	if idx < 0 || idx > len(out.Items) {
		idx = len(out.Items)
	}
	out.Items = append(out.Items, Notification{})
	copy(out.Items[idx+1:], out.Items[idx:])
	out.Items[idx] = n
	out.Total++
	return out
}
