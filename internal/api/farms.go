package api

import (
	"context"
	"fmt"
)

// FarmRequest creates or updates a farm.
type FarmRequest struct {
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	PricePerLiter float64 `json:"pricePerLiter"`
	IsSelling     bool    `json:"isSelling"`
}

type countResponse struct {
	Count int `json:"count"`
}

// ListFarms returns all farms visible to the caller (buyers see selling
// farms).
func (c *Client) ListFarms(ctx context.Context) ([]Farm, error) {
	var out []Farm
	if err := c.get(ctx, "/farms", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MyFarms returns the farms owned by or assigned to the caller.
func (c *Client) MyFarms(ctx context.Context) ([]Farm, error) {
	var out []Farm
	if err := c.get(ctx, "/farms/me", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetFarm fetches one farm by id.
func (c *Client) GetFarm(ctx context.Context, id int64) (*Farm, error) {
	var out Farm
	if err := c.get(ctx, fmt.Sprintf("/farms/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateFarm registers a new farm for the calling owner.
func (c *Client) CreateFarm(ctx context.Context, req FarmRequest) (*Farm, error) {
	var out Farm
	if err := c.post(ctx, "/farms", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateFarm patches farm fields.
func (c *Client) UpdateFarm(ctx context.Context, id int64, req FarmRequest) (*Farm, error) {
	var out Farm
	if err := c.patch(ctx, fmt.Sprintf("/farms/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteFarm removes a farm.
func (c *Client) DeleteFarm(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/farms/%d", id))
}

// HerdCount returns the total number of cattle on a farm.
func (c *Client) HerdCount(ctx context.Context, farmID int64) (int, error) {
	var out countResponse
	if err := c.get(ctx, fmt.Sprintf("/farms/%d/herd-count", farmID), nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

// WorkerCount returns the number of workers assigned to a farm.
func (c *Client) WorkerCount(ctx context.Context, farmID int64) (int, error) {
	var out countResponse
	if err := c.get(ctx, fmt.Sprintf("/farms/%d/worker-count", farmID), nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

// ActiveCattleCount returns the number of cattle with ACTIVE status.
func (c *Client) ActiveCattleCount(ctx context.Context, farmID int64) (int, error) {
	var out countResponse
	if err := c.get(ctx, fmt.Sprintf("/farms/%d/active-cattle-count", farmID), nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}
