package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"agroportal/internal/domain/notification"
)

// GetNotifications страница уведомлений
func (c *Client) GetNotifications(ctx context.Context, page, limit int) (notification.Feed, error) {
	q := url.Values{}
	q.Set("page", fmt.Sprint(page))
	q.Set("limit", fmt.Sprint(limit))

	resp, err := c.doRequest(ctx, http.MethodGet, "/api/v1/notifications?"+q.Encode(), nil, true)
	if err != nil {
		return notification.Feed{}, err
	}

	var listResp notification.ListResponse
	if err := c.parseResponse(resp, &listResp); err != nil {
		return notification.Feed{}, err
	}
	return listResp.Feed(), nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	resp, err := c.doRequest(ctx, http.MethodPatch, "/api/v1/notifications/"+url.PathEscape(id)+"/read", nil, true)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, nil)
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodPatch, "/api/v1/notifications/read-all", nil, true)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, nil)
}

func (c *Client) DeleteNotification(ctx context.Context, id string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/api/v1/notifications/"+url.PathEscape(id), nil, true)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, nil)
}
