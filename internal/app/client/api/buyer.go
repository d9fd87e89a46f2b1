package api

import (
	"context"
	"net/http"
	"net/url"

	"agroportal/internal/domain/dashboard"
	"agroportal/internal/domain/directory"
	"agroportal/internal/domain/order"
	"agroportal/internal/domain/weather"
)

func (c *Client) GetDashboardStats(ctx context.Context) (dashboard.Stats, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/v1/dashboard/stats", nil, true)
	if err != nil {
		return dashboard.Stats{}, err
	}

	var stats dashboard.Stats
	if err := c.parseResponse(resp, &stats); err != nil {
		return dashboard.Stats{}, err
	}
	return stats, nil
}

func (c *Client) GetOrders(ctx context.Context) ([]order.Order, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/v1/orders", nil, true)
	if err != nil {
		return nil, err
	}

	var listResp order.ListResponse
	if err := c.parseResponse(resp, &listResp); err != nil {
		return nil, err
	}
	return listResp.Orders, nil
}

// PlaceOrder оформляет заказ и возвращает созданный сервером заказ
func (c *Client) PlaceOrder(ctx context.Context, req order.PlaceRequest) (order.Order, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/v1/orders", req, true)
	if err != nil {
		return order.Order{}, err
	}

	var created order.Order
	if err := c.parseResponse(resp, &created); err != nil {
		return order.Order{}, err
	}
	return created, nil
}

// GetWeather сводка погоды. Пустая location - по профилю на сервере.
func (c *Client) GetWeather(ctx context.Context, location string) (weather.Report, error) {
	path := "/api/v1/weather"
	if location != "" {
		path += "?location=" + url.QueryEscape(location)
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return weather.Report{}, err
	}

	var report weather.Report
	if err := c.parseResponse(resp, &report); err != nil {
		return weather.Report{}, err
	}
	return report, nil
}

func (c *Client) GetUsers(ctx context.Context) ([]directory.User, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/v1/admin/users", nil, true)
	if err != nil {
		return nil, err
	}

	var listResp directory.ListResponse
	if err := c.parseResponse(resp, &listResp); err != nil {
		return nil, err
	}
	return listResp.Users, nil
}
