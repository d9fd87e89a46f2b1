package api

import (
	"context"
	"net/http"
	"net/url"

	"agroportal/internal/domain/cart"
	"agroportal/internal/domain/favorite"
	"agroportal/internal/domain/wallet"
)

// ListProducts каталог товаров, доступен без авторизации
func (c *Client) ListProducts(ctx context.Context) ([]cart.Product, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/v1/products", nil, false)
	if err != nil {
		return nil, err
	}

	var listResp cart.ProductListResponse
	if err := c.parseResponse(resp, &listResp); err != nil {
		return nil, err
	}
	return listResp.Products, nil
}

func (c *Client) GetCart(ctx context.Context) ([]cart.ServerItem, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/v1/cart", nil, true)
	if err != nil {
		return nil, err
	}

	var listResp cart.ListResponse
	if err := c.parseResponse(resp, &listResp); err != nil {
		return nil, err
	}
	return listResp.Items, nil
}

// AddCartItem добавляет строку в серверную корзину
func (c *Client) AddCartItem(ctx context.Context, productID string, quantity int) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/v1/cart", cart.AddRequest{
		ProductID: productID,
		Quantity:  quantity,
	}, true)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, nil)
}

// ClearCart очищает серверную корзину целиком
func (c *Client) ClearCart(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/api/v1/cart", nil, true)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, nil)
}

func (c *Client) GetFavorites(ctx context.Context) (favorite.Set, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/v1/favorites", nil, true)
	if err != nil {
		return nil, err
	}

	var listResp favorite.ListResponse
	if err := c.parseResponse(resp, &listResp); err != nil {
		return nil, err
	}
	return favorite.FromEntries(listResp.Products), nil
}

func (c *Client) AddFavorite(ctx context.Context, productID string) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/v1/favorites/add/"+url.PathEscape(productID), nil, true)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, nil)
}

func (c *Client) RemoveFavorite(ctx context.Context, productID string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/api/v1/favorites/remove/"+url.PathEscape(productID), nil, true)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, nil)
}

func (c *Client) GetWallet(ctx context.Context) (wallet.Balance, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/v1/wallet", nil, true)
	if err != nil {
		return wallet.Balance{}, err
	}

	var balance wallet.Balance
	if err := c.parseResponse(resp, &balance); err != nil {
		return wallet.Balance{}, err
	}
	return balance, nil
}

// TopUp пополняет кошелек и возвращает подтвержденный сервером баланс
func (c *Client) TopUp(ctx context.Context, amount float64) (wallet.Balance, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/v1/wallet/topup", wallet.TopUpRequest{Amount: amount}, true)
	if err != nil {
		return wallet.Balance{}, err
	}

	var balance wallet.Balance
	if err := c.parseResponse(resp, &balance); err != nil {
		return wallet.Balance{}, err
	}
	return balance, nil
}
