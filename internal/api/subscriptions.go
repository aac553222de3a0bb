package api

import (
	"context"
	"fmt"
)

// SubscriptionRequest creates a recurring order over a date range.
type SubscriptionRequest struct {
	FarmID    int64       `json:"farmId"`
	Quantity  float64     `json:"quantity"`
	Session   MilkSession `json:"session"`
	StartDate string      `json:"startDate"`
	EndDate   string      `json:"endDate"`
}

// MySubscriptions returns the calling buyer's subscriptions.
func (c *Client) MySubscriptions(ctx context.Context) ([]Subscription, error) {
	var out []Subscription
	if err := c.get(ctx, "/subscriptions/my-subscriptions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FarmSubscriptions returns the subscriptions against a farm.
func (c *Client) FarmSubscriptions(ctx context.Context, farmID int64) ([]Subscription, error) {
	var out []Subscription
	if err := c.get(ctx, fmt.Sprintf("/subscriptions/farm/%d", farmID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSubscription places a new subscription request.
func (c *Client) CreateSubscription(ctx context.Context, req SubscriptionRequest) (*Subscription, error) {
	var out Subscription
	if err := c.post(ctx, "/subscriptions", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelSubscription cancels a subscription as the buyer.
func (c *Client) CancelSubscription(ctx context.Context, id int64) (*Subscription, error) {
	var out Subscription
	if err := c.post(ctx, fmt.Sprintf("/subscriptions/%d/cancel", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApproveSubscription accepts a pending subscription as the owner.
func (c *Client) ApproveSubscription(ctx context.Context, id int64) (*Subscription, error) {
	var out Subscription
	if err := c.post(ctx, fmt.Sprintf("/subscriptions/%d/approve", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RejectSubscription rejects a pending subscription as the owner.
func (c *Client) RejectSubscription(ctx context.Context, id int64) (*Subscription, error) {
	var out Subscription
	if err := c.post(ctx, fmt.Sprintf("/subscriptions/%d/reject", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
