package notification

type ListResponse struct {
	Items       []Notification `json:"items"`
	UnreadCount int            `json:"unread_count"`
	Page        int            `json:"page"`
	Total       int            `json:"total"`
}

func (r ListResponse) Feed() Feed {
	items := r.Items
	if items == nil {
		items = []Notification{}
	}
	return Feed{
		Items:        items,
		ServerUnread: r.UnreadCount,
		Page:         r.Page,
		Total:        r.Total,
	}
}
