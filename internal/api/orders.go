package api

import (
	"context"
	"fmt"
	"net/url"
)

// BuyMilkRequest creates a one-time order against a farm.
type BuyMilkRequest struct {
	FarmID   int64       `json:"farmId"`
	Quantity float64     `json:"quantity"`
	Session  MilkSession `json:"session"`
	Date     string      `json:"date"`
}

// BuyMilk places a one-time order. The path casing is what the backend
// actually serves; do not normalize it.
func (c *Client) BuyMilk(ctx context.Context, req BuyMilkRequest) (*Order, error) {
	var out Order
	if err := c.post(ctx, "/BuyMilk", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyOrders returns the calling buyer's orders.
func (c *Client) MyOrders(ctx context.Context) ([]Order, error) {
	var out []Order
	if err := c.get(ctx, "/orders/my-orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FarmOrders returns all orders placed against a farm.
func (c *Client) FarmOrders(ctx context.Context, farmID int64) ([]Order, error) {
	var out []Order
	if err := c.get(ctx, fmt.Sprintf("/orders/farm/%d", farmID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FarmOrdersByDateRange returns a farm's orders between two dates inclusive.
func (c *Client) FarmOrdersByDateRange(ctx context.Context, farmID int64, from, to string) ([]Order, error) {
	var out []Order
	q := url.Values{"from": {from}, "to": {to}}
	if err := c.get(ctx, fmt.Sprintf("/orders/farm/%d/date-range", farmID), q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PendingFarmOrders returns the orders awaiting owner approval.
func (c *Client) PendingFarmOrders(ctx context.Context, farmID int64) ([]Order, error) {
	var out []Order
	if err := c.get(ctx, fmt.Sprintf("/orders/farm/%d/pending", farmID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ApproveOrder confirms a pending order.
func (c *Client) ApproveOrder(ctx context.Context, orderID int64) (*Order, error) {
	var out Order
	if err := c.patch(ctx, fmt.Sprintf("/orders/%d/approve", orderID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RejectOrder rejects a pending order.
func (c *Client) RejectOrder(ctx context.Context, orderID int64) (*Order, error) {
	var out Order
	if err := c.patch(ctx, fmt.Sprintf("/orders/%d/reject", orderID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
